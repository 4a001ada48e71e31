package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrPreconditionNotMet = errors.New("precondition not met")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrPriceMismatch      = errors.New("price mismatch")
	ErrConflict           = errors.New("concurrent update conflict")
	ErrUpstream           = errors.New("upstream failure")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Validation wraps ErrValidation with a human-readable reason.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Upstream wraps a collaborator failure so callers can match it with errors.Is.
func Upstream(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrUpstream, op, err)
}

// PreconditionError reports an order transition attempted from a status that
// does not satisfy the transition's required prior state. Matches
// ErrPreconditionNotMet under errors.Is.
type PreconditionError struct {
	Current  string
	Required []string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition not met: order is %q, requires one of [%s]", e.Current, strings.Join(e.Required, ", "))
}

func (e *PreconditionError) Is(target error) bool {
	return target == ErrPreconditionNotMet
}

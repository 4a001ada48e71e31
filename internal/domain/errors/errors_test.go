package errors

import (
	stdErrors "errors"
	"strings"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"validation", ErrValidation},
		{"precondition", ErrPreconditionNotMet},
		{"unauthorized", ErrUnauthorized},
		{"price mismatch", ErrPriceMismatch},
		{"conflict", ErrConflict},
		{"upstream", ErrUpstream},
		{"not found", ErrNotFound},
		{"already exists", ErrAlreadyExists},
		{"invalid credentials", ErrInvalidCredentials},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestValidationWrapsSentinel(t *testing.T) {
	err := Validation("pages must be positive, got %d", -1)
	if !stdErrors.Is(err, ErrValidation) {
		t.Fatalf("expected wrapped validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "pages must be positive, got -1") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestUpstreamWrapsSentinel(t *testing.T) {
	cause := stdErrors.New("connection refused")
	err := Upstream("blob upload", cause)
	if !stdErrors.Is(err, ErrUpstream) {
		t.Fatalf("expected wrapped upstream error, got %v", err)
	}
	if !strings.Contains(err.Error(), "blob upload") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestPreconditionErrorMatchesSentinel(t *testing.T) {
	err := &PreconditionError{Current: "delivered", Required: []string{"paid"}}
	if !stdErrors.Is(err, ErrPreconditionNotMet) {
		t.Fatalf("expected precondition error to match sentinel")
	}

	var pe *PreconditionError
	if !stdErrors.As(err, &pe) {
		t.Fatal("expected errors.As to extract PreconditionError")
	}
	if pe.Current != "delivered" {
		t.Fatalf("unexpected current status %q", pe.Current)
	}
	if !strings.Contains(err.Error(), "requires one of [paid]") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

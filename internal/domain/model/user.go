package model

import (
	"time"

	domainErrors "github.com/attesto/attesto/internal/domain/errors"
)

// Role determines what a principal may do. Authorization always re-derives
// the role from storage, never from client-supplied claims.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleTranslator Role = "translator"
	RoleAdmin      Role = "admin"
)

// ParseRole validates a stored role value.
func ParseRole(v string) (Role, error) {
	switch Role(v) {
	case RoleCustomer, RoleTranslator, RoleAdmin:
		return Role(v), nil
	}
	return "", domainErrors.Validation("unknown role %q", v)
}

// User represents an authenticated principal.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

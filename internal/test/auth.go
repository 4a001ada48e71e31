package test

import (
	"context"
	"errors"

	"github.com/attesto/attesto/internal/domain/model"
	pkgAuth "github.com/attesto/attesto/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(int64) (string, error)
	ParseFn func(string) (int64, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(userID int64) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// AuthenticatorStub implements the middleware authentication contract.
type AuthenticatorStub struct {
	User        *model.User
	ParseErr    error
	ParseFn     func(string) (int64, error)
	PrincipalFn func(context.Context, int64) (*model.User, error)
}

// ParseToken either delegates to the override or returns the stub user's id.
func (s AuthenticatorStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.ParseErr != nil {
		return 0, s.ParseErr
	}
	if s.User != nil {
		return s.User.ID, nil
	}
	return 1, nil
}

// Principal resolves the stub user.
func (s AuthenticatorStub) Principal(ctx context.Context, userID int64) (*model.User, error) {
	if s.PrincipalFn != nil {
		return s.PrincipalFn(ctx, userID)
	}
	if s.User != nil {
		return s.User, nil
	}
	return &model.User{ID: userID, Role: model.RoleCustomer}, nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}

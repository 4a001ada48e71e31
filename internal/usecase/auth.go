package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/attesto/attesto/internal/domain/errors"
	"github.com/attesto/attesto/internal/domain/model"
	"github.com/attesto/attesto/internal/domain/repository"
	pkgAuth "github.com/attesto/attesto/internal/pkg/auth"
)

// AuthUseCase handles user lifecycle and token management. Tokens carry only
// the user id; the role is re-read from storage on every request.
type AuthUseCase struct {
	users       repository.UserRepository
	translators repository.TranslatorRepository
	hasher      pkgAuth.PasswordHasher
	tokens      pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, translators repository.TranslatorRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, translators: translators, hasher: hasher, tokens: strategy}
}

// Register creates a new customer account and returns an auth token.
func (u *AuthUseCase) Register(ctx context.Context, login, password string) (*model.User, string, error) {
	return u.register(ctx, login, password, model.RoleCustomer)
}

// RegisterTranslator creates a translator account with a pending profile.
// Admins activate the profile after review.
func (u *AuthUseCase) RegisterTranslator(ctx context.Context, login, password, contactEmail string, languagePairs []string) (*model.User, string, error) {
	if len(languagePairs) == 0 {
		return nil, "", domainErrors.Validation("at least one language pair is required")
	}

	usr, token, err := u.register(ctx, login, password, model.RoleTranslator)
	if err != nil {
		return nil, "", err
	}

	profile := &model.Translator{
		UserID:        usr.ID,
		ContactEmail:  contactEmail,
		LanguagePairs: languagePairs,
		Status:        model.TranslatorStatusPending,
	}
	if err := u.translators.Create(ctx, profile); err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// Authenticate validates credentials and returns an auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, login, password string) (*model.User, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// ParseToken verifies the token signature and returns the embedded user id.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	return u.tokens.ParseToken(token)
}

// Principal resolves the authenticated user, re-deriving the role from
// storage rather than trusting any client-supplied claim.
func (u *AuthUseCase) Principal(ctx context.Context, userID int64) (*model.User, error) {
	return u.users.GetByID(ctx, userID)
}

func (u *AuthUseCase) register(ctx context.Context, login, password string, role model.Role) (*model.User, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, login, hash, role)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

package usecase

import (
	"context"

	domainErrors "github.com/attesto/attesto/internal/domain/errors"
	"github.com/attesto/attesto/internal/domain/model"
	"github.com/attesto/attesto/internal/domain/repository"
	pkgAuth "github.com/attesto/attesto/internal/pkg/auth"
)

// CreateTranslatorParams is the admin payload for provisioning a translator.
type CreateTranslatorParams struct {
	Login            string   `validate:"required,min=3,max=64"`
	Password         string   `validate:"required,min=8"`
	ContactEmail     string   `validate:"required,email"`
	LanguagePairs    []string `validate:"required,min=1,dive,min=5,max=17"`
	RatePerPageCents int64    `validate:"gte=0"`
	MaxPagesPerDay   int      `validate:"gte=0"`
	CanRush          bool
	CanNotarize      bool
	Public           bool
}

// TranslatorUseCase manages translator profiles.
type TranslatorUseCase struct {
	users       repository.UserRepository
	translators repository.TranslatorRepository
	hasher      pkgAuth.PasswordHasher
	validate    validatorIface
}

type validatorIface interface {
	Struct(s interface{}) error
}

// NewTranslatorUseCase constructs TranslatorUseCase.
func NewTranslatorUseCase(users repository.UserRepository, translators repository.TranslatorRepository, hasher pkgAuth.PasswordHasher) *TranslatorUseCase {
	return &TranslatorUseCase{users: users, translators: translators, hasher: hasher, validate: newValidator()}
}

// Create provisions an active translator account and profile. Admin only.
func (u *TranslatorUseCase) Create(ctx context.Context, params CreateTranslatorParams) (*model.Translator, error) {
	if err := u.validate.Struct(params); err != nil {
		return nil, domainErrors.Validation("invalid translator payload: %v", err)
	}

	hash, err := u.hasher.Hash(params.Password)
	if err != nil {
		return nil, err
	}

	usr, err := u.users.Create(ctx, params.Login, hash, model.RoleTranslator)
	if err != nil {
		return nil, err
	}

	profile := &model.Translator{
		UserID:           usr.ID,
		ContactEmail:     params.ContactEmail,
		LanguagePairs:    params.LanguagePairs,
		Status:           model.TranslatorStatusActive,
		RatePerPageCents: params.RatePerPageCents,
		MaxPagesPerDay:   params.MaxPagesPerDay,
		CanRush:          params.CanRush,
		CanNotarize:      params.CanNotarize,
		Public:           params.Public,
	}
	if err := u.translators.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Get returns one translator profile.
func (u *TranslatorUseCase) Get(ctx context.Context, userID int64) (*model.Translator, error) {
	return u.translators.GetByUserID(ctx, userID)
}

// List returns all profiles for admin review.
func (u *TranslatorUseCase) List(ctx context.Context) ([]model.Translator, error) {
	return u.translators.List(ctx, false)
}

// PublicDirectory returns active profiles that opted into public listing.
func (u *TranslatorUseCase) PublicDirectory(ctx context.Context) ([]model.Translator, error) {
	return u.translators.List(ctx, true)
}

// Update applies an admin edit. Profiles are soft-disabled via status, never
// deleted.
func (u *TranslatorUseCase) Update(ctx context.Context, userID int64, upd model.TranslatorUpdate) error {
	if upd.Status != nil {
		if _, err := model.ParseTranslatorStatus(string(*upd.Status)); err != nil {
			return err
		}
	}
	return u.translators.Update(ctx, userID, upd)
}

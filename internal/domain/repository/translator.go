package repository

import (
	"context"

	"github.com/attesto/attesto/internal/domain/model"
)

// TranslatorRepository describes persistence operations with translator
// profiles.
type TranslatorRepository interface {
	Create(ctx context.Context, translator *model.Translator) error
	GetByUserID(ctx context.Context, userID int64) (*model.Translator, error)
	// List returns all profiles; when publicOnly is set, only active profiles
	// with a public listing flag.
	List(ctx context.Context, publicOnly bool) ([]model.Translator, error)
	Update(ctx context.Context, userID int64, upd model.TranslatorUpdate) error
}

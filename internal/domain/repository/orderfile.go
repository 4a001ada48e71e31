package repository

import (
	"context"

	"github.com/attesto/attesto/internal/domain/model"
)

// OrderFileRepository describes persistence of original source documents.
// Rows are append-only: source documents are never replaced.
type OrderFileRepository interface {
	Add(ctx context.Context, file *model.OrderFile) (*model.OrderFile, error)
	ListByOrder(ctx context.Context, orderID string) ([]model.OrderFile, error)
}

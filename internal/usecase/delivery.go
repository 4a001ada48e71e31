package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/attesto/attesto/internal/domain/errors"
	"github.com/attesto/attesto/internal/domain/model"
	"github.com/attesto/attesto/internal/domain/repository"
)

// BlobStore is the opaque document store holding originals and completed
// translations in separate buckets.
type BlobStore interface {
	Upload(ctx context.Context, bucket, blobPath string, data []byte, contentType string) error
	Delete(ctx context.Context, bucket, blobPath string) error
	SignedURL(ctx context.Context, bucket, blobPath string, ttl time.Duration) (string, error)
}

// DeliveryUseCase manages the single translated-artifact slot per order and
// the original source documents.
type DeliveryUseCase struct {
	orders     repository.OrderRepository
	files      repository.OrderFileRepository
	blobs      BlobStore
	notifier   Notifier
	logger     *slog.Logger
	now        func() time.Time
	maxBytes   int64
	signedTTL  time.Duration
	origBucket string
	trBucket   string
}

// NewDeliveryUseCase constructs DeliveryUseCase.
func NewDeliveryUseCase(orders repository.OrderRepository, files repository.OrderFileRepository, blobs BlobStore, notifier Notifier, logger *slog.Logger, maxBytes int64, signedTTL time.Duration, originalsBucket, translationsBucket string) *DeliveryUseCase {
	return &DeliveryUseCase{
		orders:     orders,
		files:      files,
		blobs:      blobs,
		notifier:   notifier,
		logger:     logger,
		now:        time.Now,
		maxBytes:   maxBytes,
		signedTTL:  signedTTL,
		origBucket: originalsBucket,
		trBucket:   translationsBucket,
	}
}

// Upload accepts a completed translation from the assigned translator. The
// artifact slot holds at most one file: any prior translation is deleted
// before the new one is stored, and the metadata update is guarded by the
// expected status. If the metadata update fails after the blob upload
// succeeded, the just-uploaded blob is deleted to compensate.
func (u *DeliveryUseCase) Upload(ctx context.Context, translatorID int64, orderID, fileName string, data []byte) error {
	if err := ValidateTranslationUpload(fileName, data, u.maxBytes); err != nil {
		return err
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.TranslatorID == nil || *order.TranslatorID != translatorID {
		return domainErrors.ErrUnauthorized
	}
	if _, err := model.Transition(model.ActionDeliver, order.Status); err != nil {
		return err
	}

	newPath := translationPath(orderID, translatorID)

	// Supersede the previous artifact first. If the old blob cannot be
	// removed, reject the delivery rather than leave the slot inconsistent.
	if order.TranslatedFilePath != nil && *order.TranslatedFilePath != newPath {
		if err := u.blobs.Delete(ctx, u.trBucket, *order.TranslatedFilePath); err != nil {
			return domainErrors.Upstream("delete superseded translation", err)
		}
	}

	if err := u.blobs.Upload(ctx, u.trBucket, newPath, data, "application/pdf"); err != nil {
		return domainErrors.Upstream("upload translation", err)
	}

	if err := u.orders.SaveDelivery(ctx, orderID, translatorID, newPath, u.now()); err != nil {
		if delErr := u.blobs.Delete(ctx, u.trBucket, newPath); delErr != nil {
			u.logger.Error("compensating delete failed; orphaned blob",
				slog.String("order_id", orderID),
				slog.String("path", newPath),
				slog.String("error", delErr.Error()))
		}
		return err
	}

	u.notifier.Notify(model.Notification{
		RecipientID: order.CustomerID,
		Kind:        model.NotifyOrderDelivered,
		OrderID:     orderID,
		Message:     "Your translated document is ready for download.",
	})
	return nil
}

// Download returns a signed URL for the translated artifact. The customer's
// first authenticated download stamps FirstViewedAt exactly once; repeats
// never move it.
func (u *DeliveryUseCase) Download(ctx context.Context, caller *model.User, orderID string) (string, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return "", err
	}
	if err := canRead(caller, order); err != nil {
		return "", err
	}
	if order.TranslatedFilePath == nil {
		return "", &domainErrors.PreconditionError{
			Current:  string(order.Status),
			Required: []string{string(model.OrderStatusDelivered), string(model.OrderStatusCompleted)},
		}
	}

	url, err := u.blobs.SignedURL(ctx, u.trBucket, *order.TranslatedFilePath, u.signedTTL)
	if err != nil {
		return "", domainErrors.Upstream("sign download url", err)
	}

	if caller.Role == model.RoleCustomer && order.FirstViewedAt == nil {
		if err := u.orders.SetFirstViewed(ctx, orderID, u.now()); err != nil {
			u.logger.Error("record first view failed",
				slog.String("order_id", orderID),
				slog.String("error", err.Error()))
		}
	}
	return url, nil
}

// UploadOriginal stores a customer source document in the originals bucket
// and records it against the order. Source documents are immutable and
// append-only. For PDF sources it also proposes a page count; the suggestion
// is advisory and pricing always uses the count persisted on the order.
func (u *DeliveryUseCase) UploadOriginal(ctx context.Context, customerID int64, orderID, fileName, contentType string, data []byte) (*model.OrderFile, int, error) {
	if err := ValidateOriginalUpload(fileName, contentType, data, u.maxBytes); err != nil {
		return nil, 0, err
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, 0, err
	}
	if order.CustomerID != customerID {
		return nil, 0, domainErrors.ErrUnauthorized
	}
	if model.Terminal(order.Status) {
		return nil, 0, &domainErrors.PreconditionError{
			Current:  string(order.Status),
			Required: []string{string(model.OrderStatusPendingReview)},
		}
	}

	blobPath := path.Join("orders", orderID, "source", uuid.NewString()+"-"+fileName)
	if err := u.blobs.Upload(ctx, u.origBucket, blobPath, data, contentType); err != nil {
		return nil, 0, domainErrors.Upstream("upload source document", err)
	}

	file, err := u.files.Add(ctx, &model.OrderFile{
		OrderID:     orderID,
		FileName:    fileName,
		Path:        blobPath,
		SizeBytes:   int64(len(data)),
		ContentType: contentType,
	})
	if err != nil {
		if delErr := u.blobs.Delete(ctx, u.origBucket, blobPath); delErr != nil {
			u.logger.Error("compensating delete failed; orphaned blob",
				slog.String("order_id", orderID),
				slog.String("path", blobPath),
				slog.String("error", delErr.Error()))
		}
		return nil, 0, err
	}

	suggestedPages := 0
	if contentType == "application/pdf" {
		suggestedPages = EstimatePages(data)
	}
	return file, suggestedPages, nil
}

// ListOriginals returns the source documents for an order the caller may read.
func (u *DeliveryUseCase) ListOriginals(ctx context.Context, caller *model.User, orderID string) ([]model.OrderFile, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := canRead(caller, order); err != nil {
		return nil, err
	}
	return u.files.ListByOrder(ctx, orderID)
}

// OriginalURL signs a download link for one source document.
func (u *DeliveryUseCase) OriginalURL(ctx context.Context, caller *model.User, orderID string, fileID int64) (string, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return "", err
	}
	if err := canRead(caller, order); err != nil {
		return "", err
	}

	files, err := u.files.ListByOrder(ctx, orderID)
	if err != nil {
		return "", err
	}
	for _, f := range files {
		if f.ID == fileID {
			url, err := u.blobs.SignedURL(ctx, u.origBucket, f.Path, u.signedTTL)
			if err != nil {
				return "", domainErrors.Upstream("sign download url", err)
			}
			return url, nil
		}
	}
	return "", domainErrors.ErrNotFound
}

// translationPath is the deterministic per-order, per-translator slot path.
func translationPath(orderID string, translatorID int64) string {
	return path.Join("orders", orderID, fmt.Sprintf("%d", translatorID), "translation.pdf")
}

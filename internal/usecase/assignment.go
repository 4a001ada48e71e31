package usecase

import (
	"context"
	"errors"
	"log/slog"

	domainErrors "github.com/attesto/attesto/internal/domain/errors"
	"github.com/attesto/attesto/internal/domain/model"
	"github.com/attesto/attesto/internal/domain/repository"
)

// AssignmentUseCase binds translators to orders. At most one translator is
// active per order at any time; every binding is a conditional update so two
// concurrent claimers resolve to a single winner.
type AssignmentUseCase struct {
	orders      repository.OrderRepository
	translators repository.TranslatorRepository
	notifier    Notifier
	logger      *slog.Logger
}

// NewAssignmentUseCase constructs AssignmentUseCase.
func NewAssignmentUseCase(orders repository.OrderRepository, translators repository.TranslatorRepository, notifier Notifier, logger *slog.Logger) *AssignmentUseCase {
	return &AssignmentUseCase{orders: orders, translators: translators, notifier: notifier, logger: logger}
}

// Assign is the admin-mediated path: bind an active, capable translator to a
// paid, unassigned order.
func (u *AssignmentUseCase) Assign(ctx context.Context, orderID string, translatorID int64) error {
	_, translator, err := u.eligible(ctx, orderID, translatorID)
	if err != nil {
		return err
	}

	if err := u.orders.Assign(ctx, orderID, translatorID); err != nil {
		return err
	}

	u.notifier.Notify(model.Notification{
		RecipientID: translator.UserID,
		Kind:        model.NotifyOrderAssigned,
		OrderID:     orderID,
		Message:     "A new order has been assigned to you.",
	})
	return nil
}

// Reassign swaps the assigned translator in one operation. This is a distinct
// admin action, not a repeat assignment.
func (u *AssignmentUseCase) Reassign(ctx context.Context, orderID string, translatorID int64) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.TranslatorID != nil && *order.TranslatorID == translatorID {
		return domainErrors.Validation("order is already assigned to translator %d", translatorID)
	}

	translator, err := u.activeTranslator(ctx, translatorID)
	if err != nil {
		return err
	}
	if !translator.CanServe(order.LanguagePair(), order.Urgency) {
		return domainErrors.Validation("translator %d cannot serve %s %s orders", translatorID, order.LanguagePair(), order.Urgency)
	}

	if err := u.orders.Reassign(ctx, orderID, translatorID); err != nil {
		return err
	}

	u.notifier.Notify(model.Notification{
		RecipientID: translator.UserID,
		Kind:        model.NotifyOrderAssigned,
		OrderID:     orderID,
		Message:     "An order has been reassigned to you.",
	})
	return nil
}

// Claim is the legacy self-assign path: a translator atomically takes any
// unassigned paid order. The conditional update guarantees exactly one of two
// racing claimers wins.
func (u *AssignmentUseCase) Claim(ctx context.Context, translatorID int64, orderID string) error {
	order, _, err := u.eligible(ctx, orderID, translatorID)
	if err != nil {
		return err
	}

	if err := u.orders.Claim(ctx, orderID, translatorID); err != nil {
		return err
	}

	u.notifier.Notify(model.Notification{
		RecipientID: order.CustomerID,
		Kind:        model.NotifyWorkStarted,
		OrderID:     orderID,
		Message:     "A translator has started working on your order.",
	})
	return nil
}

// StartWork moves an assigned order to in_progress. Only the assigned
// translator may do this.
func (u *AssignmentUseCase) StartWork(ctx context.Context, translatorID int64, orderID string) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	if err := u.orders.StartWork(ctx, orderID, translatorID); err != nil {
		return err
	}

	u.notifier.Notify(model.Notification{
		RecipientID: order.CustomerID,
		Kind:        model.NotifyWorkStarted,
		OrderID:     orderID,
		Message:     "Translation of your order is underway.",
	})
	return nil
}

func (u *AssignmentUseCase) eligible(ctx context.Context, orderID string, translatorID int64) (*model.Order, *model.Translator, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	translator, err := u.activeTranslator(ctx, translatorID)
	if err != nil {
		return nil, nil, err
	}

	if !translator.CanServe(order.LanguagePair(), order.Urgency) {
		return nil, nil, domainErrors.Validation("translator %d cannot serve %s %s orders", translatorID, order.LanguagePair(), order.Urgency)
	}
	return order, translator, nil
}

func (u *AssignmentUseCase) activeTranslator(ctx context.Context, translatorID int64) (*model.Translator, error) {
	translator, err := u.translators.GetByUserID(ctx, translatorID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.Validation("no translator profile for user %d", translatorID)
		}
		return nil, err
	}
	if translator.Status != model.TranslatorStatusActive {
		return nil, domainErrors.Validation("translator %d is not active", translatorID)
	}
	return translator, nil
}

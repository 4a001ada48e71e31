package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	domainErrors "github.com/attesto/attesto/internal/domain/errors"
	"github.com/attesto/attesto/internal/domain/model"
	"github.com/attesto/attesto/internal/domain/repository"
)

// Notifier delivers fire-and-forget notifications. Implementations must never
// block the calling transition; failures are logged downstream and swallowed.
type Notifier interface {
	Notify(n model.Notification)
}

// PaymentGateway creates hosted checkout sessions correlated to orders.
type PaymentGateway interface {
	CreateSession(ctx context.Context, orderID string, priceCents int64, description string) (sessionID, sessionURL string, err error)
}

// SubmitOrderParams is the validated payload for a new order.
type SubmitOrderParams struct {
	SourceLang   string `validate:"required,min=2,max=8"`
	TargetLang   string `validate:"required,min=2,max=8"`
	DocumentType string `validate:"required"`
	Urgency      string `validate:"required"`
	Pages        int    `validate:"required,gt=0,lte=10000"`
	Notes        string `validate:"max=2000"`
}

// OrderUseCase owns the order lifecycle: submission, checkout, payment
// confirmation, revision flow, and admin overrides.
type OrderUseCase struct {
	orders   repository.OrderRepository
	pricing  *PricingUseCase
	gateway  PaymentGateway
	notifier Notifier
	validate *validatorv10.Validate
	logger   *slog.Logger
	now      func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, pricing *PricingUseCase, gateway PaymentGateway, notifier Notifier, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{
		orders:   orders,
		pricing:  pricing,
		gateway:  gateway,
		notifier: notifier,
		validate: newValidator(),
		logger:   logger,
		now:      time.Now,
	}
}

// Submit creates a new order in pending_review with a non-authoritative price
// estimate computed from the submitted page count.
func (u *OrderUseCase) Submit(ctx context.Context, customerID int64, params SubmitOrderParams) (*model.Order, error) {
	if err := u.validate.Struct(params); err != nil {
		return nil, domainErrors.Validation("invalid order payload: %v", err)
	}

	docType, err := model.ParseDocumentType(params.DocumentType)
	if err != nil {
		return nil, err
	}
	urgency, err := model.ParseUrgency(params.Urgency)
	if err != nil {
		return nil, err
	}

	estimate, err := u.pricing.PriceCents(params.Pages, urgency)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		ID:           uuid.NewString(),
		CustomerID:   customerID,
		SourceLang:   strings.ToLower(params.SourceLang),
		TargetLang:   strings.ToLower(params.TargetLang),
		DocumentType: docType,
		Urgency:      urgency,
		Pages:        params.Pages,
		Notes:        params.Notes,
		PriceCents:   &estimate,
		Status:       model.OrderStatusPendingReview,
	}

	if err := u.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Get loads an order and enforces read access: the owning customer, the
// assigned translator, or an admin.
func (u *OrderUseCase) Get(ctx context.Context, caller *model.User, orderID string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := canRead(caller, order); err != nil {
		return nil, err
	}
	return order, nil
}

// ListForCustomer returns the caller's orders.
func (u *OrderUseCase) ListForCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	return u.orders.ListByCustomer(ctx, customerID)
}

// ListForTranslator returns orders assigned to the caller.
func (u *OrderUseCase) ListForTranslator(ctx context.Context, translatorID int64) ([]model.Order, error) {
	return u.orders.ListByTranslator(ctx, translatorID)
}

// ListAll returns all orders, optionally filtered by status. Admin only.
func (u *OrderUseCase) ListAll(ctx context.Context, status *model.OrderStatus) ([]model.Order, error) {
	return u.orders.List(ctx, status)
}

// InitiateCheckout recomputes the price from the persisted page count, checks
// it against the client-displayed value, creates a hosted checkout session,
// and moves the order to checkout_initiated.
func (u *OrderUseCase) InitiateCheckout(ctx context.Context, customerID int64, orderID string, clientPriceCents int64) (string, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return "", err
	}
	if order.CustomerID != customerID {
		return "", domainErrors.ErrUnauthorized
	}
	if _, err := model.Transition(model.ActionInitiateCheckout, order.Status); err != nil {
		return "", err
	}

	price, err := u.pricing.Verify(order.Pages, order.Urgency, clientPriceCents)
	if err != nil {
		return "", err
	}

	description := fmt.Sprintf("Certified translation %s→%s, %d page(s), %s",
		order.SourceLang, order.TargetLang, order.Pages, order.Urgency)
	sessionID, sessionURL, err := u.gateway.CreateSession(ctx, order.ID, price, description)
	if err != nil {
		return "", domainErrors.Upstream("create checkout session", err)
	}

	if err := u.orders.InitiateCheckout(ctx, order.ID, price, sessionID); err != nil {
		return "", err
	}
	return sessionURL, nil
}

// ConfirmPayment applies an authoritative payment-completed event from the
// gateway. Replays of an already applied confirmation are no-ops and trigger
// no side effects.
func (u *OrderUseCase) ConfirmPayment(ctx context.Context, sessionID, confirmationID string) error {
	if sessionID == "" || confirmationID == "" {
		return domainErrors.Validation("payment event missing session or confirmation id")
	}

	order, applied, err := u.orders.ConfirmPayment(ctx, sessionID, confirmationID)
	if err != nil {
		return err
	}
	if !applied {
		u.logger.Info("duplicate payment confirmation ignored",
			slog.String("session_id", sessionID))
		return nil
	}

	u.notifier.Notify(model.Notification{
		RecipientID: order.CustomerID,
		Kind:        model.NotifyPaymentReceived,
		OrderID:     order.ID,
		Message:     "Payment received, your order is queued for assignment.",
	})
	return nil
}

// RequestRevision records a customer correction request against a delivered
// order and notifies the translator.
func (u *OrderUseCase) RequestRevision(ctx context.Context, customerID int64, orderID, message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return domainErrors.Validation("revision message must not be empty")
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.CustomerID != customerID {
		return domainErrors.ErrUnauthorized
	}

	if err := u.orders.RequestRevision(ctx, orderID, customerID, message, u.now()); err != nil {
		return err
	}

	if order.TranslatorID != nil {
		u.notifier.Notify(model.Notification{
			RecipientID: *order.TranslatorID,
			Kind:        model.NotifyRevisionRequested,
			OrderID:     orderID,
			Message:     message,
		})
	}
	return nil
}

// Cancel terminates an order before payment.
func (u *OrderUseCase) Cancel(ctx context.Context, customerID int64, orderID string) error {
	return u.orders.Cancel(ctx, orderID, customerID)
}

// Complete marks an order finished. With force set, any non-terminal status
// is accepted; this is the admin override path.
func (u *OrderUseCase) Complete(ctx context.Context, orderID string, force bool) error {
	return u.orders.Complete(ctx, orderID, force)
}

// MarkDeliveredOverride flips an order to delivered without a file, for
// exceptional manual handling. Logged distinctly from normal delivery.
func (u *OrderUseCase) MarkDeliveredOverride(ctx context.Context, adminID int64, orderID string) error {
	if err := u.orders.MarkDeliveredOverride(ctx, orderID, u.now()); err != nil {
		return err
	}
	u.logger.Warn("order marked delivered by admin override",
		slog.String("order_id", orderID),
		slog.Int64("admin_id", adminID))
	return nil
}

// ClearRevision resets a mistaken revision request without a new upload.
func (u *OrderUseCase) ClearRevision(ctx context.Context, orderID string) error {
	return u.orders.ClearRevision(ctx, orderID)
}

// UpdateAdminFields edits the internal note and, as the sole post-checkout
// price mutation, overrides the price. Price overrides are accepted only once
// the order has been paid: before that, checkout recomputes the price from the
// page count and would silently discard the override.
func (u *OrderUseCase) UpdateAdminFields(ctx context.Context, orderID string, upd repository.AdminOrderUpdate) error {
	if upd.PriceCents != nil {
		if *upd.PriceCents <= 0 {
			return domainErrors.Validation("price override must be positive")
		}
		order, err := u.orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		switch order.Status {
		case model.OrderStatusPendingReview, model.OrderStatusCheckoutInitiated:
			return domainErrors.Validation("price can only be overridden after payment; adjust the page count instead")
		}
	}
	return u.orders.UpdateAdminFields(ctx, orderID, upd)
}

func canRead(caller *model.User, order *model.Order) error {
	switch caller.Role {
	case model.RoleAdmin:
		return nil
	case model.RoleCustomer:
		if order.CustomerID == caller.ID {
			return nil
		}
	case model.RoleTranslator:
		if order.TranslatorID != nil && *order.TranslatorID == caller.ID {
			return nil
		}
	}
	return domainErrors.ErrUnauthorized
}

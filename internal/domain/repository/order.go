package repository

import (
	"context"
	"time"

	"github.com/attesto/attesto/internal/domain/model"
)

// AdminOrderUpdate carries admin-editable order fields. Nil fields are left
// unchanged. Price is immutable once set except through this override.
type AdminOrderUpdate struct {
	InternalNote *string
	PriceCents   *int64
}

// OrderRepository describes persistence operations with orders. Every
// status-changing method is a conditional update guarded by the expected
// current status, so concurrent writers racing on the same order resolve to
// exactly one winner.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	GetByCheckoutSession(ctx context.Context, sessionID string) (*model.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error)
	ListByTranslator(ctx context.Context, translatorID int64) ([]model.Order, error)
	List(ctx context.Context, status *model.OrderStatus) ([]model.Order, error)

	// InitiateCheckout records the authoritative price and the payment
	// session, moving pending_review to checkout_initiated.
	InitiateCheckout(ctx context.Context, orderID string, priceCents int64, sessionID string) error

	// ConfirmPayment applies the gateway's paid event. Replays of an already
	// applied confirmation are no-ops: applied is false and err is nil.
	ConfirmPayment(ctx context.Context, sessionID, confirmationID string) (order *model.Order, applied bool, err error)

	// Assign binds a translator to a paid, unassigned order.
	Assign(ctx context.Context, orderID string, translatorID int64) error

	// Reassign swaps the translator in a single statement while work has not
	// been delivered, leaving no transient unassigned state visible.
	Reassign(ctx context.Context, orderID string, translatorID int64) error

	// Claim is the legacy self-assign path: take the order only if it is
	// still paid and unassigned, collapsing straight to in_progress.
	Claim(ctx context.Context, orderID string, translatorID int64) error

	StartWork(ctx context.Context, orderID string, translatorID int64) error

	// SaveDelivery records the translated artifact and clears any pending
	// revision request in the same statement.
	SaveDelivery(ctx context.Context, orderID string, translatorID int64, path string, deliveredAt time.Time) error

	RequestRevision(ctx context.Context, orderID string, customerID int64, message string, requestedAt time.Time) error
	ClearRevision(ctx context.Context, orderID string) error

	Complete(ctx context.Context, orderID string, force bool) error
	MarkDeliveredOverride(ctx context.Context, orderID string, deliveredAt time.Time) error
	Cancel(ctx context.Context, orderID string, customerID int64) error

	// SetFirstViewed stamps the customer's first download once; later calls
	// are silent no-ops.
	SetFirstViewed(ctx context.Context, orderID string, viewedAt time.Time) error

	UpdateAdminFields(ctx context.Context, orderID string, upd AdminOrderUpdate) error
}

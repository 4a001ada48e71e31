package model

import (
	"time"

	domainErrors "github.com/attesto/attesto/internal/domain/errors"
)

// OrderStatus describes the order lifecycle position.
type OrderStatus string

const (
	OrderStatusPendingReview     OrderStatus = "pending_review"
	OrderStatusCheckoutInitiated OrderStatus = "checkout_initiated"
	OrderStatusPaid              OrderStatus = "paid"
	OrderStatusAssigned          OrderStatus = "assigned"
	OrderStatusInProgress        OrderStatus = "in_progress"
	OrderStatusDelivered         OrderStatus = "delivered"
	OrderStatusRevisionRequested OrderStatus = "revision_requested"
	OrderStatusCompleted         OrderStatus = "completed"
	OrderStatusCancelled         OrderStatus = "cancelled"
)

// Urgency is the service tier affecting price and turnaround.
type Urgency string

const (
	UrgencyStandard Urgency = "standard"
	UrgencyRush     Urgency = "rush"
)

// ParseUrgency validates an incoming urgency value.
func ParseUrgency(v string) (Urgency, error) {
	switch Urgency(v) {
	case UrgencyStandard, UrgencyRush:
		return Urgency(v), nil
	}
	return "", domainErrors.Validation("unknown urgency %q", v)
}

// DocumentType classifies the document being translated.
type DocumentType string

const (
	DocumentCertificate DocumentType = "certificate"
	DocumentContract    DocumentType = "contract"
	DocumentAcademic    DocumentType = "academic"
	DocumentLegal       DocumentType = "legal"
	DocumentOther       DocumentType = "other"
)

// ParseDocumentType validates an incoming document type value.
func ParseDocumentType(v string) (DocumentType, error) {
	switch DocumentType(v) {
	case DocumentCertificate, DocumentContract, DocumentAcademic, DocumentLegal, DocumentOther:
		return DocumentType(v), nil
	}
	return "", domainErrors.Validation("unknown document type %q", v)
}

// Order is the unit of work representing one customer's translation request.
type Order struct {
	ID           string
	CustomerID   int64
	TranslatorID *int64

	SourceLang   string
	TargetLang   string
	DocumentType DocumentType
	Urgency      Urgency
	Pages        int
	Notes        string

	PriceCents            *int64
	CheckoutSessionID     *string
	PaymentConfirmationID *string

	Status              OrderStatus
	TranslatedFilePath  *string
	DeliveredAt         *time.Time
	FirstViewedAt       *time.Time
	NeedsRevision       bool
	RevisionMessage     *string
	RevisionRequestedAt *time.Time
	InternalNote        string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LanguagePair renders the order's language combination as stored on
// translator capability lists, e.g. "en-de".
func (o *Order) LanguagePair() string {
	return o.SourceLang + "-" + o.TargetLang
}

// Action names an order lifecycle transition trigger.
type Action string

const (
	ActionInitiateCheckout Action = "initiate_checkout"
	ActionConfirmPayment   Action = "confirm_payment"
	ActionAssign           Action = "assign"
	ActionReassign         Action = "reassign"
	ActionClaim            Action = "claim"
	ActionStartWork        Action = "start_work"
	ActionDeliver          Action = "deliver"
	ActionRequestRevision  Action = "request_revision"
	ActionClearRevision    Action = "clear_revision"
	ActionComplete         Action = "complete"
	ActionMarkDelivered    Action = "mark_delivered"
	ActionCancel           Action = "cancel"
)

// transitionRule fixes the legal prior statuses and the resulting status for
// one action. Illegal transitions are rejected here, in one place, instead of
// being re-checked per endpoint.
type transitionRule struct {
	from []OrderStatus
	to   OrderStatus
}

var transitions = map[Action]transitionRule{
	ActionInitiateCheckout: {from: []OrderStatus{OrderStatusPendingReview}, to: OrderStatusCheckoutInitiated},
	ActionConfirmPayment:   {from: []OrderStatus{OrderStatusCheckoutInitiated}, to: OrderStatusPaid},
	ActionAssign:           {from: []OrderStatus{OrderStatusPaid}, to: OrderStatusAssigned},
	ActionReassign:         {from: []OrderStatus{OrderStatusAssigned, OrderStatusInProgress}, to: OrderStatusAssigned},
	// Legacy self-assign path collapses straight to in_progress.
	ActionClaim:           {from: []OrderStatus{OrderStatusPaid}, to: OrderStatusInProgress},
	ActionStartWork:       {from: []OrderStatus{OrderStatusAssigned}, to: OrderStatusInProgress},
	ActionDeliver:         {from: []OrderStatus{OrderStatusInProgress, OrderStatusRevisionRequested}, to: OrderStatusDelivered},
	ActionRequestRevision: {from: []OrderStatus{OrderStatusDelivered}, to: OrderStatusRevisionRequested},
	ActionClearRevision:   {from: []OrderStatus{OrderStatusRevisionRequested}, to: OrderStatusDelivered},
	ActionComplete:        {from: []OrderStatus{OrderStatusInProgress, OrderStatusDelivered}, to: OrderStatusCompleted},
	// Mark-delivered requires a bound translator, so paid is excluded.
	ActionMarkDelivered:   {from: []OrderStatus{OrderStatusAssigned, OrderStatusInProgress, OrderStatusRevisionRequested}, to: OrderStatusDelivered},
	ActionCancel:          {from: []OrderStatus{OrderStatusPendingReview, OrderStatusCheckoutInitiated}, to: OrderStatusCancelled},
}

// Transition resolves the next status for action applied at current, or a
// PreconditionError naming the required prior states.
func Transition(action Action, current OrderStatus) (OrderStatus, error) {
	rule, ok := transitions[action]
	if !ok {
		return "", domainErrors.Validation("unknown action %q", action)
	}
	for _, s := range rule.from {
		if s == current {
			return rule.to, nil
		}
	}
	return "", &domainErrors.PreconditionError{Current: string(current), Required: statusStrings(rule.from)}
}

// TransitionSources lists statuses from which action may be applied.
func TransitionSources(action Action) []OrderStatus {
	rule, ok := transitions[action]
	if !ok {
		return nil
	}
	out := make([]OrderStatus, len(rule.from))
	copy(out, rule.from)
	return out
}

// TranslatorBound reports whether an order in the given status must carry a
// translator reference.
func TranslatorBound(s OrderStatus) bool {
	switch s {
	case OrderStatusAssigned, OrderStatusInProgress, OrderStatusDelivered, OrderStatusRevisionRequested, OrderStatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are possible.
func Terminal(s OrderStatus) bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

func statusStrings(statuses []OrderStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

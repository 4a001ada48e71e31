package dto

import "time"

// SubmitOrderRequest describes a new translation order payload.
type SubmitOrderRequest struct {
	SourceLang   string `json:"source_lang"`
	TargetLang   string `json:"target_lang"`
	DocumentType string `json:"document_type"`
	Urgency      string `json:"urgency"`
	Pages        int    `json:"pages"`
	Notes        string `json:"notes"`
}

// OrderResponse is the wire representation of an order.
type OrderResponse struct {
	ID           string `json:"id"`
	CustomerID   int64  `json:"customer_id"`
	TranslatorID *int64 `json:"translator_id,omitempty"`

	SourceLang   string `json:"source_lang"`
	TargetLang   string `json:"target_lang"`
	DocumentType string `json:"document_type"`
	Urgency      string `json:"urgency"`
	Pages        int    `json:"pages"`
	Notes        string `json:"notes,omitempty"`

	PriceCents *int64 `json:"price_cents,omitempty"`
	Status     string `json:"status"`

	DeliveredAt         *time.Time `json:"delivered_at,omitempty"`
	FirstViewedAt       *time.Time `json:"first_viewed_at,omitempty"`
	NeedsRevision       bool       `json:"needs_revision"`
	RevisionMessage     *string    `json:"revision_message,omitempty"`
	RevisionRequestedAt *time.Time `json:"revision_requested_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CheckoutRequest carries the price the customer saw when confirming.
type CheckoutRequest struct {
	PriceCents int64 `json:"price_cents"`
}

// CheckoutResponse returns the hosted payment session to redirect to.
type CheckoutResponse struct {
	SessionURL string `json:"session_url"`
}

// RevisionRequest carries the customer's revision message.
type RevisionRequest struct {
	Message string `json:"message"`
}

// AssignRequest names the translator an admin assigns an order to.
type AssignRequest struct {
	TranslatorID int64 `json:"translator_id"`
}

// CompleteRequest optionally forces completion past the delivered check.
type CompleteRequest struct {
	Force bool `json:"force"`
}

// AdminOrderUpdateRequest carries admin-editable order fields.
type AdminOrderUpdateRequest struct {
	InternalNote *string `json:"internal_note"`
	PriceCents   *int64  `json:"price_cents"`
}

// SignedURLResponse wraps a time-limited download link.
type SignedURLResponse struct {
	URL string `json:"url"`
}

// OrderFileResponse describes one uploaded source document.
type OrderFileResponse struct {
	ID          int64     `json:"id"`
	FileName    string    `json:"file_name"`
	SizeBytes   int64     `json:"size_bytes"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
	// SuggestedPages is an advisory page count scanned from PDF sources;
	// zero for non-PDF uploads.
	SuggestedPages int `json:"suggested_pages,omitempty"`
}

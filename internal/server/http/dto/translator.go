package dto

// TranslatorResponse is the wire representation of a translator profile.
type TranslatorResponse struct {
	UserID           int64    `json:"user_id"`
	ContactEmail     string   `json:"contact_email,omitempty"`
	LanguagePairs    []string `json:"language_pairs"`
	Status           string   `json:"status"`
	RatePerPageCents int64    `json:"rate_per_page_cents"`
	MaxPagesPerDay   int      `json:"max_pages_per_day"`
	CanRush          bool     `json:"can_rush"`
	CanNotarize      bool     `json:"can_notarize"`
	Public           bool     `json:"public"`
}

// CreateTranslatorRequest describes admin provisioning of a translator.
type CreateTranslatorRequest struct {
	Login            string   `json:"login"`
	Password         string   `json:"password"`
	ContactEmail     string   `json:"contact_email"`
	LanguagePairs    []string `json:"language_pairs"`
	RatePerPageCents int64    `json:"rate_per_page_cents"`
	MaxPagesPerDay   int      `json:"max_pages_per_day"`
	CanRush          bool     `json:"can_rush"`
	CanNotarize      bool     `json:"can_notarize"`
	Public           bool     `json:"public"`
}

// UpdateTranslatorRequest carries a partial translator profile update.
type UpdateTranslatorRequest struct {
	ContactEmail     *string  `json:"contact_email"`
	LanguagePairs    []string `json:"language_pairs"`
	Status           *string  `json:"status"`
	RatePerPageCents *int64   `json:"rate_per_page_cents"`
	MaxPagesPerDay   *int     `json:"max_pages_per_day"`
	CanRush          *bool    `json:"can_rush"`
	CanNotarize      *bool    `json:"can_notarize"`
	Public           *bool    `json:"public"`
}

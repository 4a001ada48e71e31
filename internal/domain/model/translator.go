package model

import (
	"time"

	domainErrors "github.com/attesto/attesto/internal/domain/errors"
)

// TranslatorStatus describes availability of a translator profile.
type TranslatorStatus string

const (
	TranslatorStatusPending  TranslatorStatus = "pending"
	TranslatorStatusActive   TranslatorStatus = "active"
	TranslatorStatusInactive TranslatorStatus = "inactive"
)

// Translator is the work profile attached to a user with the translator role.
// Profiles are soft-disabled via Status and never deleted while referenced by
// orders.
type Translator struct {
	UserID           int64
	ContactEmail     string
	LanguagePairs    []string
	Status           TranslatorStatus
	RatePerPageCents int64
	MaxPagesPerDay   int
	CanRush          bool
	CanNotarize      bool
	Public           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CanServe reports whether the translator covers the language pair and, for
// rush orders, accepts rush work.
func (t *Translator) CanServe(pair string, urgency Urgency) bool {
	if urgency == UrgencyRush && !t.CanRush {
		return false
	}
	for _, p := range t.LanguagePairs {
		if p == pair {
			return true
		}
	}
	return false
}

// TranslatorUpdate carries the admin-editable subset of a profile. Nil fields
// are left unchanged.
type TranslatorUpdate struct {
	ContactEmail     *string
	LanguagePairs    []string
	Status           *TranslatorStatus
	RatePerPageCents *int64
	MaxPagesPerDay   *int
	CanRush          *bool
	CanNotarize      *bool
	Public           *bool
}

// ParseTranslatorStatus validates an incoming translator status value.
func ParseTranslatorStatus(v string) (TranslatorStatus, error) {
	switch TranslatorStatus(v) {
	case TranslatorStatusPending, TranslatorStatusActive, TranslatorStatusInactive:
		return TranslatorStatus(v), nil
	}
	return "", domainErrors.Validation("unknown translator status %q", v)
}

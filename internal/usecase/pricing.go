package usecase

import (
	"bytes"
	"math"

	domainErrors "github.com/attesto/attesto/internal/domain/errors"
	"github.com/attesto/attesto/internal/domain/model"
)

// priceToleranceCents absorbs client-side rounding of displayed prices.
const priceToleranceCents = 1

// maxOrderPages caps single-order size; it keeps cent arithmetic far from
// integer limits and matches the submission validator.
const maxOrderPages = 10000

// PricingUseCase computes authoritative order prices. Client-submitted prices
// are estimates only; every checkout recomputes from the persisted page count.
type PricingUseCase struct {
	baseRateCents  int64
	rushMultiplier float64
}

// NewPricingUseCase constructs PricingUseCase from configured rates.
func NewPricingUseCase(baseRateCents int64, rushMultiplier float64) *PricingUseCase {
	return &PricingUseCase{baseRateCents: baseRateCents, rushMultiplier: rushMultiplier}
}

// PriceCents computes pages × base rate × urgency multiplier, rounded to a
// whole cent. Prices never leave integer minor units.
func (p *PricingUseCase) PriceCents(pages int, urgency model.Urgency) (int64, error) {
	if pages <= 0 {
		return 0, domainErrors.Validation("page count must be positive, got %d", pages)
	}
	if pages > maxOrderPages {
		return 0, domainErrors.Validation("page count must not exceed %d, got %d", maxOrderPages, pages)
	}

	base := int64(pages) * p.baseRateCents
	if urgency == model.UrgencyRush {
		return int64(math.Round(float64(base) * p.rushMultiplier)), nil
	}
	return base, nil
}

// Verify recomputes the price and compares it against the client-displayed
// value within a one cent tolerance.
func (p *PricingUseCase) Verify(pages int, urgency model.Urgency, clientCents int64) (int64, error) {
	server, err := p.PriceCents(pages, urgency)
	if err != nil {
		return 0, err
	}
	diff := server - clientCents
	if diff < -priceToleranceCents || diff > priceToleranceCents {
		return 0, domainErrors.ErrPriceMismatch
	}
	return server, nil
}

// EstimatePages proposes a page count by scanning for PDF page objects. The
// result is advisory: pricing always uses the page count persisted on the
// order.
func EstimatePages(data []byte) int {
	count := bytes.Count(data, []byte("/Type /Page"))
	count -= bytes.Count(data, []byte("/Type /Pages"))
	if count < 1 {
		return 1
	}
	return count
}

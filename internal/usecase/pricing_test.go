package usecase

import (
	"errors"
	"math"
	"testing"

	domainErrors "github.com/attesto/attesto/internal/domain/errors"
	"github.com/attesto/attesto/internal/domain/model"
)

func TestPriceCentsScenarios(t *testing.T) {
	p := NewPricingUseCase(2900, 1.5)

	standard, err := p.PriceCents(2, model.UrgencyStandard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if standard != 5800 {
		t.Fatalf("expected 5800 cents for 2 standard pages, got %d", standard)
	}

	rush, err := p.PriceCents(2, model.UrgencyRush)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rush != 8700 {
		t.Fatalf("expected 8700 cents for 2 rush pages, got %d", rush)
	}
}

func TestPriceCentsRushIsScaledStandard(t *testing.T) {
	p := NewPricingUseCase(2900, 1.5)

	for pages := 1; pages <= 50; pages++ {
		standard, err := p.PriceCents(pages, model.UrgencyStandard)
		if err != nil {
			t.Fatalf("pages=%d: %v", pages, err)
		}
		rush, err := p.PriceCents(pages, model.UrgencyRush)
		if err != nil {
			t.Fatalf("pages=%d: %v", pages, err)
		}
		expected := int64(math.Round(1.5 * float64(standard)))
		if rush != expected {
			t.Fatalf("pages=%d: rush %d != round(1.5*standard)=%d", pages, rush, expected)
		}
	}
}

func TestPriceCentsDeterministic(t *testing.T) {
	p := NewPricingUseCase(2900, 1.5)

	a, _ := p.PriceCents(7, model.UrgencyRush)
	b, _ := p.PriceCents(7, model.UrgencyRush)
	if a != b {
		t.Fatalf("price not deterministic: %d vs %d", a, b)
	}
}

func TestPriceCentsRejectsNonPositivePages(t *testing.T) {
	p := NewPricingUseCase(2900, 1.5)

	for _, pages := range []int{0, -1, -100} {
		if _, err := p.PriceCents(pages, model.UrgencyStandard); !errors.Is(err, domainErrors.ErrValidation) {
			t.Fatalf("pages=%d: expected validation error, got %v", pages, err)
		}
	}
}

func TestPriceCentsRejectsExcessivePages(t *testing.T) {
	p := NewPricingUseCase(2900, 1.5)

	if _, err := p.PriceCents(maxOrderPages, model.UrgencyStandard); err != nil {
		t.Fatalf("pages at the cap must price: %v", err)
	}
	if _, err := p.PriceCents(maxOrderPages+1, model.UrgencyStandard); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error above the cap, got %v", err)
	}
}

func TestVerifyTolerance(t *testing.T) {
	p := NewPricingUseCase(2900, 1.5)

	cases := []struct {
		name   string
		client int64
		ok     bool
	}{
		{"exact", 5800, true},
		{"one cent under", 5799, true},
		{"one cent over", 5801, true},
		{"two cents off", 5802, false},
		{"stale estimate", 2900, false},
		{"zero", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.Verify(2, model.UrgencyStandard, tc.client)
			if tc.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != 5800 {
					t.Fatalf("expected server price 5800, got %d", got)
				}
				return
			}
			if !errors.Is(err, domainErrors.ErrPriceMismatch) {
				t.Fatalf("expected price mismatch, got %v", err)
			}
		})
	}
}

func TestEstimatePages(t *testing.T) {
	doc := []byte("%PDF-1.7\n1 0 obj\n<< /Type /Pages /Count 2 >>\nendobj\n" +
		"2 0 obj\n<< /Type /Page >>\nendobj\n3 0 obj\n<< /Type /Page >>\nendobj\n%%EOF")
	if got := EstimatePages(doc); got != 2 {
		t.Fatalf("expected 2 pages, got %d", got)
	}

	if got := EstimatePages([]byte("not a pdf")); got != 1 {
		t.Fatalf("expected floor of 1 page, got %d", got)
	}
}

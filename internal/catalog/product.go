package catalog

import (
	"fmt"
	"slices"

	"github.com/kanvah/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Product is an immutable catalog entry.
type Product struct {
	ID            int              `json:"id"`
	Name          string           `json:"name"`
	Category      enums.Category   `json:"category"`
	Gender        enums.Gender     `json:"gender"`
	Colors        []string         `json:"colors"`
	Sizes         []string         `json:"sizes"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Material      string           `json:"material"`
	Image         string           `json:"image"`
	Badge         enums.Badge      `json:"badge,omitempty"`
	IsNew         bool             `json:"is_new"`
}

// HasBadge reports whether any merchandising badge is attached.
func (p Product) HasBadge() bool {
	return p.Badge != ""
}

// IsFresh matches the "new arrivals" restriction: flagged new or carrying the new badge.
func (p Product) IsFresh() bool {
	return p.IsNew || p.Badge == enums.BadgeNew
}

func (p Product) HasSize(size string) bool {
	return slices.Contains(p.Sizes, size)
}

func (p Product) HasColor(color string) bool {
	return slices.Contains(p.Colors, color)
}

// Validate checks the structural invariants of a catalog entry.
func (p Product) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("product id must be positive, got %d", p.ID)
	}
	if p.Name == "" {
		return fmt.Errorf("product %d: name is required", p.ID)
	}
	if !p.Category.IsValid() {
		return fmt.Errorf("product %d: invalid category %q", p.ID, p.Category)
	}
	if !p.Gender.IsValid() {
		return fmt.Errorf("product %d: invalid gender %q", p.ID, p.Gender)
	}
	if p.Badge != "" && !p.Badge.IsValid() {
		return fmt.Errorf("product %d: invalid badge %q", p.ID, p.Badge)
	}
	if len(p.Colors) == 0 || len(p.Sizes) == 0 {
		return fmt.Errorf("product %d: colors and sizes are required", p.ID)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("product %d: price must not be negative", p.ID)
	}
	if p.OriginalPrice != nil && !p.Price.LessThan(*p.OriginalPrice) {
		return fmt.Errorf("product %d: price %s must be below original price %s", p.ID, p.Price, p.OriginalPrice)
	}
	return nil
}

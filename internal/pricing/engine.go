package pricing

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kanvah/storefront-backend/pkg/config"
	"github.com/kanvah/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Rates parameterise the engine.
type Rates struct {
	TaxRate               decimal.Decimal
	FreeShippingThreshold decimal.Decimal
	StandardShipping      decimal.Decimal
	ExpressShipping       decimal.Decimal
}

func DefaultRates() Rates {
	return Rates{
		TaxRate:               decimal.RequireFromString("0.08"),
		FreeShippingThreshold: decimal.NewFromInt(150),
		StandardShipping:      decimal.RequireFromString("12.99"),
		ExpressShipping:       decimal.RequireFromString("24.99"),
	}
}

// RatesFromConfig parses the decimal literals carried by the checkout config.
func RatesFromConfig(cfg config.CheckoutConfig) (Rates, error) {
	var (
		r   Rates
		err error
	)
	if r.TaxRate, err = parseRate("tax rate", cfg.TaxRate); err != nil {
		return Rates{}, err
	}
	if r.FreeShippingThreshold, err = parseRate("free shipping threshold", cfg.FreeShippingThreshold); err != nil {
		return Rates{}, err
	}
	if r.StandardShipping, err = parseRate("standard shipping", cfg.StandardShipping); err != nil {
		return Rates{}, err
	}
	if r.ExpressShipping, err = parseRate("express shipping", cfg.ExpressShipping); err != nil {
		return Rates{}, err
	}
	return r, nil
}

func parseRate(name, raw string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse %s %q: %w", name, raw, err)
	}
	if v.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s must not be negative", name)
	}
	return v, nil
}

// Breakdown is the priced view of a cart. Values are exact; rounding happens
// only when rendered.
type Breakdown struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Taxable  decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// BreakdownView is the two-decimal wire form of a Breakdown.
type BreakdownView struct {
	Subtotal string `json:"subtotal"`
	Discount string `json:"discount"`
	Taxable  string `json:"taxable"`
	Tax      string `json:"tax"`
	Shipping string `json:"shipping"`
	Total    string `json:"total"`
}

func (b Breakdown) View() BreakdownView {
	return BreakdownView{
		Subtotal: b.Subtotal.StringFixed(2),
		Discount: b.Discount.StringFixed(2),
		Taxable:  b.Taxable.StringFixed(2),
		Tax:      b.Tax.StringFixed(2),
		Shipping: b.Shipping.StringFixed(2),
		Total:    b.Total.StringFixed(2),
	}
}

func (b Breakdown) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.View())
}

// FreeShipping reports whether the order qualified for free shipping.
func (b Breakdown) FreeShipping() bool {
	return b.Shipping.IsZero()
}

type Engine struct {
	rates Rates
}

func NewEngine(rates Rates) *Engine {
	return &Engine{rates: rates}
}

func (e *Engine) Rates() Rates {
	return e.rates
}

// ShippingCost is free at or above the threshold, otherwise the method's flat rate.
func (e *Engine) ShippingCost(subtotal decimal.Decimal, method enums.ShippingMethod) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(e.rates.FreeShippingThreshold) {
		return decimal.Zero
	}
	if method == enums.ShippingMethodExpress {
		return e.rates.ExpressShipping
	}
	return e.rates.StandardShipping
}

// Quote prices a subtotal. Shipping is decided on the pre-discount subtotal.
func (e *Engine) Quote(subtotal decimal.Decimal, coupon *Coupon, method enums.ShippingMethod) Breakdown {
	shipping := e.ShippingCost(subtotal, method)
	discount := decimal.Zero
	if coupon != nil {
		discount = subtotal.Mul(coupon.Discount).Div(hundred)
	}
	taxable := subtotal.Sub(discount)
	tax := taxable.Mul(e.rates.TaxRate)
	return Breakdown{
		Subtotal: subtotal,
		Discount: discount,
		Taxable:  taxable,
		Tax:      tax,
		Shipping: shipping,
		Total:    taxable.Add(tax).Add(shipping),
	}
}

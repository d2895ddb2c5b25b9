package pricing

import (
	"strings"

	pkgerrors "github.com/kanvah/storefront-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// Coupon is a percentage discount applied to the cart subtotal.
type Coupon struct {
	Code     string          `json:"code"`
	Discount decimal.Decimal `json:"discount"`
	Label    string          `json:"label"`
}

var (
	ErrEmptyCouponCode   = pkgerrors.Validation("Please enter a coupon code")
	ErrInvalidCouponCode = pkgerrors.Validation("Invalid coupon code")
)

var coupons = []Coupon{
	{Code: "KANVAH10", Discount: decimal.NewFromInt(10), Label: "10% off"},
	{Code: "WELCOME20", Discount: decimal.NewFromInt(20), Label: "20% off"},
	{Code: "VIP30", Discount: decimal.NewFromInt(30), Label: "30% off"},
}

// Coupons returns the allow-list in display order.
func Coupons() []Coupon {
	return append([]Coupon(nil), coupons...)
}

// LookupCoupon resolves user input against the allow-list. Matching is exact
// after trimming and upper-casing.
func LookupCoupon(input string) (Coupon, error) {
	code := strings.ToUpper(strings.TrimSpace(input))
	if code == "" {
		return Coupon{}, ErrEmptyCouponCode
	}
	for _, c := range coupons {
		if c.Code == code {
			return c, nil
		}
	}
	return Coupon{}, ErrInvalidCouponCode
}

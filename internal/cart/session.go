package cart

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kanvah/storefront-backend/pkg/enums"
)

// Session is the per-shopper state that survives between requests: the cart plus
// the checkout selections made against it.
type Session struct {
	ID             string
	Cart           Cart
	CouponCode     string
	ShippingMethod enums.ShippingMethod
	UpdatedAt      time.Time
}

func NewSession(id string) *Session {
	return &Session{ID: id, ShippingMethod: enums.ShippingMethodStandard}
}

// NewSessionID issues an opaque identifier for a new cart session.
func NewSessionID() string {
	return uuid.NewString()
}

// ValidSessionID reports whether id looks like one issued by NewSessionID.
func ValidSessionID(id string) bool {
	_, err := uuid.Parse(strings.TrimSpace(id))
	return err == nil
}

// ResetCheckout clears the cart and the coupon after an order is placed.
// The shipping preference is kept.
func (s *Session) ResetCheckout() {
	s.Cart.Clear()
	s.CouponCode = ""
}

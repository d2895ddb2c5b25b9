package checkout

import (
	"time"

	"github.com/kanvah/storefront-backend/internal/cart"
	"github.com/kanvah/storefront-backend/internal/pricing"
	"github.com/kanvah/storefront-backend/pkg/enums"
	"github.com/kanvah/storefront-backend/pkg/types"
)

// Guidance tells the shopper what to do before an order can be placed.
type Guidance string

const (
	GuidanceSignIn     Guidance = "sign_in"
	GuidanceAddAddress Guidance = "add_address"
)

// Summary is the checkout page: the cart, the selections, and the priced breakdown.
type Summary struct {
	SessionID      string               `json:"session_id"`
	Items          []cart.LineView      `json:"items"`
	ItemCount      int                  `json:"item_count"`
	Coupon         *pricing.Coupon      `json:"coupon,omitempty"`
	ShippingMethod enums.ShippingMethod `json:"shipping_method"`
	FreeShipping   bool                 `json:"free_shipping"`
	Breakdown      pricing.Breakdown    `json:"breakdown"`

	FreeShippingThreshold string           `json:"free_shipping_threshold"`
	ShippingOptions       []ShippingOption `json:"shipping_options"`
}

// ShippingOption is one selectable method priced against the current subtotal.
type ShippingOption struct {
	Method   enums.ShippingMethod `json:"method"`
	Label    string               `json:"label"`
	Delivery string               `json:"delivery"`
	Cost     string               `json:"cost"`
}

// Confirmation describes a placed order. Orders are not persisted; the
// confirmation is the only record the shopper receives.
type Confirmation struct {
	OrderID         string               `json:"order_id"`
	Items           []cart.LineView      `json:"items"`
	ItemCount       int                  `json:"item_count"`
	Coupon          *pricing.Coupon      `json:"coupon,omitempty"`
	ShippingMethod  enums.ShippingMethod `json:"shipping_method"`
	Breakdown       pricing.Breakdown    `json:"breakdown"`
	ShippingAddress types.Address        `json:"shipping_address"`
	PlacedAt        time.Time            `json:"placed_at"`
}

// PlacementResult carries either guidance or a confirmation, never both.
type PlacementResult struct {
	Guidance     Guidance      `json:"guidance,omitempty"`
	Confirmation *Confirmation `json:"confirmation,omitempty"`
}

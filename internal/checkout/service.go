package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kanvah/storefront-backend/internal/cart"
	"github.com/kanvah/storefront-backend/internal/pricing"
	"github.com/kanvah/storefront-backend/internal/users"
	"github.com/kanvah/storefront-backend/pkg/enums"
	pkgerrors "github.com/kanvah/storefront-backend/pkg/errors"
	"github.com/kanvah/storefront-backend/pkg/logger"
	"github.com/kanvah/storefront-backend/pkg/security"
	"github.com/shopspring/decimal"
)

const orderIDLength = 8

var ErrEmptyCart = pkgerrors.Validation("cart is empty")

type Service interface {
	Quote(ctx context.Context, sessionID string) (*Summary, error)
	ApplyCoupon(ctx context.Context, sessionID, code string) (*Summary, error)
	RemoveCoupon(ctx context.Context, sessionID string) (*Summary, error)
	SetShippingMethod(ctx context.Context, sessionID string, method enums.ShippingMethod) (*Summary, error)
	PlaceOrder(ctx context.Context, sessionID string, user *users.User) (*PlacementResult, error)
}

type purchaseRecorder interface {
	RecordPurchase(ctx context.Context, id uuid.UUID, productIDs []int) error
}

type checkoutMetrics interface {
	CouponApplied(result string)
	OrderPlaced(shippingMethod string, total float64, took time.Duration)
}

// ServiceParams bundles the dependencies of the checkout service.
type ServiceParams struct {
	Store           cart.Store
	Engine          *pricing.Engine
	Purchases       purchaseRecorder
	Metrics         checkoutMetrics
	Logger          *logger.Logger
	ProcessingDelay time.Duration
}

type service struct {
	store     cart.Store
	engine    *pricing.Engine
	purchases purchaseRecorder
	metrics   checkoutMetrics
	logg      *logger.Logger
	delay     time.Duration
	now       func() time.Time
	newID     func() (string, error)
}

func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if params.Engine == nil {
		return nil, fmt.Errorf("pricing engine required")
	}
	if params.Purchases == nil {
		return nil, fmt.Errorf("purchase recorder required")
	}
	if params.ProcessingDelay < 0 {
		return nil, fmt.Errorf("processing delay must not be negative")
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	return &service{
		store:     params.Store,
		engine:    params.Engine,
		purchases: params.Purchases,
		metrics:   params.Metrics,
		logg:      logg,
		delay:     params.ProcessingDelay,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     newOrderID,
	}, nil
}

func newOrderID() (string, error) {
	return security.RandomCode(security.Base36Upper, orderIDLength)
}

func (s *service) Quote(ctx context.Context, sessionID string) (*Summary, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.summarize(sess), nil
}

// ApplyCoupon replaces any coupon already on the session.
func (s *service) ApplyCoupon(ctx context.Context, sessionID, code string) (*Summary, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	coupon, err := pricing.LookupCoupon(code)
	if err != nil {
		s.couponMetric(err)
		return nil, err
	}
	sess.CouponCode = coupon.Code
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	s.couponMetric(nil)
	return s.summarize(sess), nil
}

func (s *service) RemoveCoupon(ctx context.Context, sessionID string) (*Summary, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sess.CouponCode = ""
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return s.summarize(sess), nil
}

func (s *service) SetShippingMethod(ctx context.Context, sessionID string, method enums.ShippingMethod) (*Summary, error) {
	if !method.IsValid() {
		return nil, pkgerrors.Validation(fmt.Sprintf("invalid shipping method %q", method))
	}
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sess.ShippingMethod = method
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return s.summarize(sess), nil
}

// PlaceOrder simulates order submission. Missing sign-in or address are reported
// as guidance rather than errors; the cart is left untouched in that case.
func (s *service) PlaceOrder(ctx context.Context, sessionID string, user *users.User) (*PlacementResult, error) {
	started := time.Now()
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	if user == nil {
		return &PlacementResult{Guidance: GuidanceSignIn}, nil
	}
	if !user.HasAddress() {
		return &PlacementResult{Guidance: GuidanceAddAddress}, nil
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	summary := s.summarize(sess)
	orderID, err := s.newID()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate order id")
	}

	if err := s.purchases.RecordPurchase(ctx, user.ID, sess.Cart.ProductIDs()); err != nil {
		return nil, err
	}

	sess.ResetCheckout()
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	confirmation := &Confirmation{
		OrderID:         orderID,
		Items:           summary.Items,
		ItemCount:       summary.ItemCount,
		Coupon:          summary.Coupon,
		ShippingMethod:  summary.ShippingMethod,
		Breakdown:       summary.Breakdown,
		ShippingAddress: *user.Address,
		PlacedAt:        s.now(),
	}

	if s.metrics != nil {
		s.metrics.OrderPlaced(summary.ShippingMethod.String(), summary.Breakdown.Total.InexactFloat64(), time.Since(started))
	}
	logCtx := s.logg.WithOrderID(ctx, orderID)
	logCtx = s.logg.WithFields(logCtx, map[string]any{
		"user_id":    user.ID.String(),
		"item_count": summary.ItemCount,
		"total":      summary.Breakdown.Total.StringFixed(2),
	})
	s.logg.Info(logCtx, "order placed")

	return &PlacementResult{Confirmation: confirmation}, nil
}

// wait holds the request for the configured processing delay. Cancelling ctx
// aborts placement before anything is written.
func (s *service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return pkgerrors.Wrap(pkgerrors.CodeStateConflict, ctx.Err(), "order placement cancelled")
	}
}

func (s *service) summarize(sess *cart.Session) *Summary {
	var coupon *pricing.Coupon
	if sess.CouponCode != "" {
		if c, err := pricing.LookupCoupon(sess.CouponCode); err == nil {
			coupon = &c
		}
	}
	subtotal := sess.Cart.Subtotal()
	breakdown := s.engine.Quote(subtotal, coupon, sess.ShippingMethod)
	return &Summary{
		SessionID:      sess.ID,
		Items:          sess.Cart.Views(),
		ItemCount:      sess.Cart.TotalItems(),
		Coupon:         coupon,
		ShippingMethod: sess.ShippingMethod,
		FreeShipping:   breakdown.FreeShipping(),
		Breakdown:      breakdown,

		FreeShippingThreshold: s.engine.Rates().FreeShippingThreshold.StringFixed(2),
		ShippingOptions:       s.shippingOptions(subtotal),
	}
}

var shippingChoices = []struct {
	method   enums.ShippingMethod
	label    string
	delivery string
}{
	{enums.ShippingMethodStandard, "Standard Shipping", "5-7 Business Days"},
	{enums.ShippingMethodExpress, "Express Shipping", "2-3 Business Days"},
}

func (s *service) shippingOptions(subtotal decimal.Decimal) []ShippingOption {
	out := make([]ShippingOption, 0, len(shippingChoices))
	for _, c := range shippingChoices {
		out = append(out, ShippingOption{
			Method:   c.method,
			Label:    c.label,
			Delivery: c.delivery,
			Cost:     s.engine.ShippingCost(subtotal, c.method).StringFixed(2),
		})
	}
	return out
}

func (s *service) load(ctx context.Context, sessionID string) (*cart.Session, error) {
	if sessionID == "" {
		return nil, pkgerrors.Validation("cart session is required")
	}
	sess, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return sess, nil
}

func (s *service) save(ctx context.Context, sess *cart.Session) error {
	if err := s.store.Save(ctx, sess); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return nil
}

func (s *service) couponMetric(err error) {
	if s.metrics == nil {
		return
	}
	switch {
	case err == nil:
		s.metrics.CouponApplied("valid")
	case errors.Is(err, pricing.ErrEmptyCouponCode):
		s.metrics.CouponApplied("empty")
	default:
		s.metrics.CouponApplied("invalid")
	}
}

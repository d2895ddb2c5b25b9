package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Storefront records business events from the cart, checkout, review, and auth flows.
// A nil *Storefront is valid and records nothing.
type Storefront struct {
	cartMutations  *prometheus.CounterVec
	coupons        *prometheus.CounterVec
	ordersPlaced   *prometheus.CounterVec
	orderTotal     prometheus.Histogram
	placementDelay prometheus.Histogram
	reviews        prometheus.Counter
	authAttempts   *prometheus.CounterVec
}

// NewStorefront registers the storefront metrics on the provided registerer.
func NewStorefront(reg prometheus.Registerer) *Storefront {
	if reg == nil {
		return &Storefront{}
	}
	s := &Storefront{
		cartMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cart_mutations_total",
			Help: "Cart mutations by operation.",
		}, []string{"op"}),
		coupons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "coupon_applications_total",
			Help: "Coupon application attempts by result.",
		}, []string{"result"}),
		ordersPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "Orders confirmed by shipping method.",
		}, []string{"shipping_method"}),
		orderTotal: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "order_total_dollars",
			Help:    "Grand total of confirmed orders.",
			Buckets: []float64{25, 50, 100, 150, 250, 500, 1000, 2500},
		}),
		placementDelay: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "order_placement_duration_seconds",
			Help:    "Time spent placing an order, including simulated processing.",
			Buckets: prometheus.DefBuckets,
		}),
		reviews: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reviews_submitted_total",
			Help: "Product reviews accepted.",
		}),
		authAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Login and signup attempts by result.",
		}, []string{"action", "result"}),
	}
	reg.MustRegister(s.cartMutations, s.coupons, s.ordersPlaced, s.orderTotal, s.placementDelay, s.reviews, s.authAttempts)
	return s
}

func (s *Storefront) CartMutation(op string) {
	if s == nil || s.cartMutations == nil {
		return
	}
	s.cartMutations.WithLabelValues(normalizeLabel(op)).Inc()
}

func (s *Storefront) CouponApplied(result string) {
	if s == nil || s.coupons == nil {
		return
	}
	s.coupons.WithLabelValues(normalizeLabel(result)).Inc()
}

// OrderPlaced records a confirmed order with its grand total and placement latency.
func (s *Storefront) OrderPlaced(shippingMethod string, total float64, took time.Duration) {
	if s == nil || s.ordersPlaced == nil {
		return
	}
	s.ordersPlaced.WithLabelValues(normalizeLabel(shippingMethod)).Inc()
	s.orderTotal.Observe(total)
	s.placementDelay.Observe(took.Seconds())
}

func (s *Storefront) ReviewSubmitted() {
	if s == nil || s.reviews == nil {
		return
	}
	s.reviews.Inc()
}

func (s *Storefront) AuthAttempt(action string, ok bool) {
	if s == nil || s.authAttempts == nil {
		return
	}
	result := "failure"
	if ok {
		result = "success"
	}
	s.authAttempts.WithLabelValues(normalizeLabel(action), result).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}

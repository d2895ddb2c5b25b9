package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kanvah/storefront-backend/api/controllers"
	"github.com/kanvah/storefront-backend/api/middleware"
	"github.com/kanvah/storefront-backend/internal/auth"
	"github.com/kanvah/storefront-backend/internal/cart"
	"github.com/kanvah/storefront-backend/internal/catalog"
	"github.com/kanvah/storefront-backend/internal/checkout"
	"github.com/kanvah/storefront-backend/internal/reviews"
	"github.com/kanvah/storefront-backend/internal/users"
	"github.com/kanvah/storefront-backend/pkg/auth/session"
	"github.com/kanvah/storefront-backend/pkg/config"
	"github.com/kanvah/storefront-backend/pkg/db"
	"github.com/kanvah/storefront-backend/pkg/logger"
	"github.com/kanvah/storefront-backend/pkg/metrics"
	"github.com/kanvah/storefront-backend/pkg/redis"
)

// Params collects everything the HTTP surface is built from.
type Params struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       db.Pinger
	Redis    *redis.Client
	Sessions session.AccessSessionChecker

	Catalog  catalog.Service
	Cart     cart.Service
	Checkout checkout.Service
	Auth     auth.Service
	Users    users.Service
	Reviews  reviews.Service

	// Gatherer backs /metrics; the route is omitted when nil.
	Gatherer    prometheus.Gatherer
	HTTPMetrics *metrics.HTTP
}

func NewRouter(p Params) http.Handler {
	cfg, logg := p.Config, p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg, p.HTTPMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	signupPolicy := middleware.NewAuthRateLimitPolicy(
		"signup",
		cfg.AuthRateLimit.SignupWindow,
		cfg.AuthRateLimit.SignupIPLimit,
		cfg.AuthRateLimit.SignupEmailLimit,
	)

	requireAuth := middleware.Auth(cfg.JWT, p.Sessions, logg)
	optionalAuth := middleware.OptionalAuth(cfg.JWT, p.Sessions, logg)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, readinessDeps(p), logg))
	})

	if p.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", controllers.CatalogList(p.Catalog, logg))
			r.Post("/products/refine", controllers.CatalogRefine(p.Catalog, logg))
			r.Get("/products/{productId}", controllers.CatalogProduct(p.Catalog, logg))
			r.Get("/products/{productId}/related", controllers.CatalogRelated(p.Catalog, logg))
			r.Get("/facets", controllers.CatalogFacets(p.Catalog, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.CartSession(logg))
			r.Get("/", controllers.CartGet(p.Cart, logg))
			r.Delete("/", controllers.CartClear(p.Cart, logg))
			r.Post("/items", controllers.CartAddItem(p.Cart, logg))
			r.Patch("/items/{productId}", controllers.CartUpdateItem(p.Cart, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(p.Cart, logg))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Use(middleware.CartSession(logg))
			r.Get("/", controllers.CheckoutSummary(p.Checkout, logg))
			r.Post("/coupon", controllers.CheckoutApplyCoupon(p.Checkout, logg))
			r.Delete("/coupon", controllers.CheckoutRemoveCoupon(p.Checkout, logg))
			r.Put("/shipping", controllers.CheckoutSetShipping(p.Checkout, logg))
			r.With(optionalAuth).Post("/orders", controllers.CheckoutPlaceOrder(p.Checkout, p.Users, logg))
		})

		r.Route("/auth", func(r chi.Router) {
			r.With(rateLimit(signupPolicy, p.Redis, logg)).Post("/signup", controllers.AuthSignup(p.Auth, logg))
			r.With(rateLimit(loginPolicy, p.Redis, logg)).Post("/login", controllers.AuthLogin(p.Auth, logg))
			r.Post("/logout", controllers.AuthLogout(p.Auth, logg))
			r.Post("/refresh", controllers.AuthRefresh(p.Auth, logg))
		})

		r.Route("/me", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", controllers.Me(p.Users, logg))
			r.Put("/address", controllers.MeUpdateAddress(p.Users, logg))
		})

		r.Route("/products/{productId}/reviews", func(r chi.Router) {
			r.With(optionalAuth).Get("/", controllers.ReviewsPage(p.Reviews, p.Users, logg))
			r.Get("/feed", controllers.ReviewsFeed(p.Reviews, logg))
			r.With(requireAuth).Post("/", controllers.ReviewsSubmit(p.Reviews, p.Users, logg))
		})
	})

	return r
}

func readinessDeps(p Params) map[string]controllers.Pinger {
	deps := map[string]controllers.Pinger{}
	if p.DB != nil {
		deps["db"] = p.DB
	}
	if p.Redis != nil {
		deps["redis"] = p.Redis
	}
	return deps
}

// rateLimit skips throttling entirely when no Redis client is wired.
func rateLimit(policy middleware.AuthRateLimitPolicy, client *redis.Client, logg *logger.Logger) func(http.Handler) http.Handler {
	if client == nil {
		return middleware.AuthRateLimit(policy, nil, logg)
	}
	return middleware.AuthRateLimit(policy, client, logg)
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/kanvah/storefront-backend/api/routes"
	"github.com/kanvah/storefront-backend/internal/auth"
	"github.com/kanvah/storefront-backend/internal/cart"
	"github.com/kanvah/storefront-backend/internal/catalog"
	"github.com/kanvah/storefront-backend/internal/checkout"
	"github.com/kanvah/storefront-backend/internal/pricing"
	"github.com/kanvah/storefront-backend/internal/reviews"
	"github.com/kanvah/storefront-backend/internal/users"
	"github.com/kanvah/storefront-backend/pkg/auth/session"
	"github.com/kanvah/storefront-backend/pkg/config"
	"github.com/kanvah/storefront-backend/pkg/db"
	"github.com/kanvah/storefront-backend/pkg/instance"
	"github.com/kanvah/storefront-backend/pkg/logger"
	"github.com/kanvah/storefront-backend/pkg/metrics"
	"github.com/kanvah/storefront-backend/pkg/migrate"
	"github.com/kanvah/storefront-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		logg.Error(ctx, "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(ctx, cfg.Redis, logg)
	switch {
	case err != nil && cfg.App.IsDev():
		logg.Warn(logg.WithField(ctx, "error", err.Error()), "redis unavailable, using in-process store")
		redisClient = redis.NewInMemory()
	case err != nil:
		logg.Error(ctx, "failed to bootstrap redis", err)
		os.Exit(1)
	}

	userRepo := users.NewRepository(dbClient.DB())
	reviewRepo := reviews.NewRepository(dbClient.DB())
	if cfg.FeatureFlags.SeedDemoData {
		seedDemoData(ctx, logg, cfg, userRepo, reviewRepo)
	}

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(ctx, "failed to create session manager", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	storefrontMetrics := metrics.NewStorefront(registry)

	rates, err := pricing.RatesFromConfig(cfg.Checkout)
	if err != nil {
		logg.Error(ctx, "invalid checkout rates", err)
		os.Exit(1)
	}

	products := catalog.Default()
	cartStore, err := cart.NewRedisStore(redisClient, products, cfg.Checkout.SessionTTL)
	if err != nil {
		logg.Error(ctx, "failed to create cart store", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(products)
	exitOnErr(ctx, logg, "catalog service", err)

	cartService, err := cart.NewService(cartStore, products, storefrontMetrics)
	exitOnErr(ctx, logg, "cart service", err)

	usersService, err := users.NewService(userRepo)
	exitOnErr(ctx, logg, "users service", err)

	checkoutService, err := checkout.NewService(checkout.ServiceParams{
		Store:           cartStore,
		Engine:          pricing.NewEngine(rates),
		Purchases:       usersService,
		Metrics:         storefrontMetrics,
		Logger:          logg,
		ProcessingDelay: cfg.Checkout.ProcessingDelay,
	})
	exitOnErr(ctx, logg, "checkout service", err)

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
		Metrics:        storefrontMetrics,
	})
	exitOnErr(ctx, logg, "auth service", err)

	reviewsService, err := reviews.NewService(reviews.ServiceParams{
		Repo:          reviewRepo,
		Products:      products,
		Metrics:       storefrontMetrics,
		SubmitDelay:   cfg.Reviews.SubmitDelay,
		MaxImageBytes: cfg.Reviews.MaxImageBytes,
	})
	exitOnErr(ctx, logg, "reviews service", err)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	logCtx := logg.WithFields(ctx, map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": instance.GetID(),
	})

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Params{
			Config:      cfg,
			Logger:      logg,
			DB:          dbClient,
			Redis:       redisClient,
			Sessions:    sessionManager,
			Catalog:     catalogService,
			Cart:        cartService,
			Checkout:    checkoutService,
			Auth:        authService,
			Users:       usersService,
			Reviews:     reviewsService,
			Gatherer:    registry,
			HTTPMetrics: metrics.NewHTTP(registry),
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logg.Info(logCtx, "starting api server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	exitCode := 0
	select {
	case err := <-serveErr:
		if err != nil {
			logg.Error(logCtx, "api server stopped unexpectedly", err)
			exitCode = 1
		}
	case <-ctx.Done():
		logg.Info(logCtx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs error
	errs = multierr.Append(errs, server.Shutdown(shutdownCtx))
	errs = multierr.Append(errs, redisClient.Close())
	errs = multierr.Append(errs, dbClient.Close())
	if errs != nil {
		logg.Error(logCtx, "shutdown completed with errors", errs)
		exitCode = 1
	} else {
		logg.Info(logCtx, "api server stopped")
	}
	os.Exit(exitCode)
}

// seedDemoData loads the demo accounts and reviews into empty tables. Failures
// are logged and do not stop the server.
func seedDemoData(ctx context.Context, logg *logger.Logger, cfg *config.Config, userRepo *users.Repository, reviewRepo *reviews.Repository) {
	seeded, err := users.SeedDemo(ctx, userRepo, cfg.Password)
	if err != nil {
		logg.Error(ctx, "failed to seed demo users", err)
		return
	}
	if seeded {
		logg.Info(ctx, "seeded demo users")
	}

	count, err := reviews.SeedDemo(ctx, reviewRepo, userRepo)
	if err != nil {
		logg.Error(ctx, "failed to seed demo reviews", err)
		return
	}
	if count > 0 {
		logg.Info(logg.WithField(ctx, "count", count), "seeded demo reviews")
	}
}

func exitOnErr(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, "failed to create "+resource, err)
	os.Exit(1)
}

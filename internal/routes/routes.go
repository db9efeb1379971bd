package routes

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/clothes-shop/clothes/internal/auth"
	"github.com/clothes-shop/clothes/internal/catalog"
	"github.com/clothes-shop/clothes/internal/config"
	"github.com/clothes-shop/clothes/internal/identity"
	"github.com/clothes-shop/clothes/internal/metrics"
	"github.com/clothes-shop/clothes/internal/middleware"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg      config.Config
	DB       *pgxpool.Pool
	Cache    *redis.Client
	Logger   *slog.Logger
	Registry *prometheus.Registry
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	if d.DB == nil && !d.Cfg.IsDev() {
		return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Registry == nil {
		d.Registry = prometheus.NewRegistry()
	}

	tokens, err := auth.NewTokens([]byte(d.Cfg.JWTSecret))
	if err != nil {
		return fmt.Errorf("token signer: %w", err)
	}
	rec := metrics.NewCollector(d.Registry)

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	if d.Cfg.LogFormat == "text" {
		// Plain text access log: [HH:MM:SS] 200 -  145ms METHOD /path
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
			TimeFormat: "15:04:05",
			TimeZone:   "Local",
		}))
	}
	app.Use(middleware.Audit(d.Logger, rec))

	RegisterHealthRoutes(app, d)
	app.Get("/metrics", metrics.Handler(d.Registry))

	var (
		identityRepo identity.Repository
		catalogRepo  catalog.Repository
	)
	if d.DB != nil {
		identityRepo = identity.NewPostgresRepository(d.DB)
		catalogRepo = catalog.NewPostgresRepository(d.DB)
	} else {
		d.Logger.Warn("no database configured, using in-memory stores")
		identityRepo = identity.NewMemoryRepository()
		catalogRepo = catalog.NewMemoryRepository()
	}
	identityRepo = identity.WithTimeout(identityRepo, d.Cfg.StoreTimeout)
	catalogRepo = catalog.WithTimeout(catalogRepo, d.Cfg.StoreTimeout)

	identitySvc := identity.NewService(
		identityRepo,
		identity.NewBcryptHasher(d.Cfg.BcryptCost),
		tokens,
		d.Cfg.PhoneRegion,
		d.Logger,
	)
	catalogSvc := catalog.NewService(catalogRepo, d.Cache, d.Cfg.CatalogCacheTTL, d.Logger)
	if d.DB == nil {
		if err := catalog.Seed(context.Background(), catalogSvc, catalog.SampleGarments); err != nil {
			return err
		}
	}

	var idempotency fiber.Handler
	if d.Cache != nil {
		idempotency = middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger)
	}
	gate := middleware.JWTAuth(tokens, identityRepo, rec, d.Logger)

	RegisterIdentityRoutes(app, identity.NewHandler(identitySvc, rec), idempotency)
	RegisterAuthRoutes(app, auth.NewHandler(identitySvc, tokens))
	RegisterCatalogRoutes(app, catalog.NewHandler(catalogSvc), gate)

	return nil
}

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SscSPs/currency_exchange_app/internal/core/services"
	"github.com/SscSPs/currency_exchange_app/internal/handlers"
	"github.com/SscSPs/currency_exchange_app/internal/middleware"
	"github.com/SscSPs/currency_exchange_app/internal/platform/config"
	"github.com/SscSPs/currency_exchange_app/internal/platform/server"
	"github.com/SscSPs/currency_exchange_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/currency_exchange_app/internal/validation"
	"github.com/SscSPs/currency_exchange_app/migrations"
	"github.com/SscSPs/currency_exchange_app/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// @title Currency Exchange API
// @version 1.0
// @description Currencies, exchange rates and conversions with inverse and cross rate resolution.

// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// Rates and amounts are written as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	if cfg.RunMigrations {
		if err := database.RunMigrations(cfg.DatabaseURL, migrations.FS, logger); err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	if cfg.RateLimit != "" {
		limiterInstance, err := middleware.NewLimiter(cfg.RateLimit)
		if err != nil {
			logger.Error("Invalid RATE_LIMIT", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
			os.Exit(1)
		}
		r.Use(middleware.RateLimit(limiterInstance))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(repos, validation.NewDefault())
	handlers.RegisterRoutes(r, cfg, serviceContainer)

	if err := server.Start(ctx, ":"+cfg.Port, r, cfg.ShutdownTimeout); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

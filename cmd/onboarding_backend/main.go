package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/smbanking/onboarding_backend/internal/core/services"
	"github.com/smbanking/onboarding_backend/internal/dto"
	"github.com/smbanking/onboarding_backend/internal/handlers"
	"github.com/smbanking/onboarding_backend/internal/middleware"
	"github.com/smbanking/onboarding_backend/internal/platform/config"
	"github.com/smbanking/onboarding_backend/internal/platform/metrics"
	"github.com/smbanking/onboarding_backend/internal/providers/bureau"
	"github.com/smbanking/onboarding_backend/internal/providers/notify"
	"github.com/smbanking/onboarding_backend/internal/providers/registry"
	"github.com/smbanking/onboarding_backend/internal/repositories/database/pgsql"
	"github.com/smbanking/onboarding_backend/pkg/database"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"
	limiterredis "github.com/ulule/limiter/v3/drivers/store/redis"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	portsproviders "github.com/smbanking/onboarding_backend/internal/core/ports/providers"
)

// @title Small Business Onboarding Backend API
// @version 1.0
// @description Decisioning pipeline for small-business checking onboarding and lending origination.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	dto.RegisterValidations()

	appMetrics := metrics.New()

	repos := pgsql.NewRepositoryProvider(dbPool)
	providerSet := services.ProviderSet{
		Verification: registry.NewProvider(),
		Bureau:       bureau.NewProvider(),
		Notifier:     buildNotificationSink(cfg, logger),
	}
	serviceContainer := services.NewServiceContainer(repos, providerSet, appMetrics)

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.Default(),
		appMetrics.HTTPMiddleware(),
		middleware.RateLimit(buildRateLimiter(cfg, logger)),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations through a temporary
// database/sql connection using the pgx stdlib driver.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		logger.Error("Failed to ping database for migrations", slog.String("error", err.Error()))
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		return sourceErr
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// buildRateLimiter uses a shared Redis store when REDIS_URL is configured so
// limits hold across replicas, and an in-memory store otherwise.
func buildRateLimiter(cfg *config.Config, logger *slog.Logger) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT format", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.RedisURL != "" {
		opts, err := goredis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Error("Invalid REDIS_URL", slog.String("error", err.Error()))
			os.Exit(1)
		}
		store, err := limiterredis.NewStore(goredis.NewClient(opts))
		if err != nil {
			logger.Error("Failed to create redis rate limit store", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Rate limiter using redis store")
		return limiter.New(store, rate)
	}

	return limiter.New(limitermemory.NewStore(), rate)
}

// buildNotificationSink publishes to Kafka when brokers are configured and
// falls back to the structured-log sink otherwise.
func buildNotificationSink(cfg *config.Config, logger *slog.Logger) portsproviders.NotificationSink {
	if len(cfg.KafkaBrokers) > 0 {
		logger.Info("Notification sink using kafka", slog.String("topic", cfg.KafkaTopic))
		return notify.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaTopic)
	}
	return notify.NewLogSink()
}

package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/SscSPs/tax_ledger_app/internal/adapters/database/pgsql"
	"github.com/SscSPs/tax_ledger_app/internal/adapters/memory"
	portsrepo "github.com/SscSPs/tax_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/tax_ledger_app/internal/core/services"
	"github.com/SscSPs/tax_ledger_app/internal/handlers"
	"github.com/SscSPs/tax_ledger_app/internal/middleware"
	"github.com/SscSPs/tax_ledger_app/internal/platform/config"
	"github.com/SscSPs/tax_ledger_app/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Tax Ledger API
// @version 1.0
// @description Bank statement import, ledger editing and simplified-regime tax computation.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	repos, closeRepos, err := setupRepositories(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeRepos()

	serviceContainer := services.NewServiceContainer(cfg, repos)

	importLimiter, err := middleware.NewMemoryLimiter(cfg.ImportRateLimit)
	if err != nil {
		logger.Error("Failed to create import rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.AllowedOrigins))
	r.MaxMultipartMemory = cfg.MaxUploadBytes

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, importLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.Bool("production", cfg.IsProduction))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupRepositories connects to Postgres and migrates it when a database URL is
// configured, and falls back to the in-memory store otherwise.
func setupRepositories(cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Warn("PGSQL_URL not set, using in-memory storage; data is lost on restart")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

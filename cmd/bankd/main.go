package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/marchbank/coastal-ledger/internal/adapters/registry"
	portssvc "github.com/marchbank/coastal-ledger/internal/core/ports/services"
	"github.com/marchbank/coastal-ledger/internal/core/services"
	"github.com/marchbank/coastal-ledger/internal/handlers"
	"github.com/marchbank/coastal-ledger/internal/middleware"
	"github.com/marchbank/coastal-ledger/pkg/config"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The bank's state lives for the process lifetime only.
	bank := registry.New(cfg.RegistryCapacity)
	generator := services.NewCredentialGenerator(cfg.RandomSeed)
	ledger := services.NewLedgerService(bank, generator)
	container := &portssvc.ServiceContainer{Ledger: ledger}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLogging(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.Int("registry_capacity", cfg.RegistryCapacity))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

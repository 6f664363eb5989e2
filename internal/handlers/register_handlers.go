package handlers

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	portssvc "github.com/marchbank/coastal-ledger/internal/core/ports/services"
	"github.com/marchbank/coastal-ledger/internal/middleware"
	"github.com/marchbank/coastal-ledger/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	RegisterValidations()

	r.Use(cors.Default())

	// Liveness check
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the
// per-concern route registrations.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")

	if cfg.RateLimit != "" {
		limiterInstance, err := middleware.NewIPRateLimiter(cfg.RateLimit)
		if err != nil {
			slog.Warn("Invalid rate limit, continuing without one", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		} else {
			v1.Use(middleware.RateLimit(limiterInstance))
		}
	}

	registerAccountRoutes(v1, services.Ledger)
	registerTransactionRoutes(v1, services.Ledger)
	registerAdminRoutes(v1, services.Ledger)
}

// Package routes provides HTTP route configurations.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hsaberwal/serunner/internal/infrastructure/ratelimit"
	"github.com/hsaberwal/serunner/internal/interfaces/http/handlers"
	"github.com/hsaberwal/serunner/internal/interfaces/http/middleware"
)

// SetupRouteConfig contains dependencies for setup routes.
type SetupRouteConfig struct {
	SetupHandler        *handlers.SetupHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	CheckMatchPolicy    ratelimit.Policy
	GeneratePolicy      ratelimit.Policy
}

// SetupSetupRoutes configures setup routes.
// Routes: /setups/*
// Generate and refresh share the "generate" scope so both count against
// the same per-user window.
func SetupSetupRoutes(engine *gin.Engine, cfg *SetupRouteConfig) {
	setups := engine.Group("/setups")
	setups.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Named endpoints (must come BEFORE /:id)
		setups.POST("/check-match",
			cfg.RateLimitMiddleware.Limit("check_match", cfg.CheckMatchPolicy),
			cfg.SetupHandler.CheckMatch,
		)
		setups.POST("/generate",
			cfg.RateLimitMiddleware.Limit("generate", cfg.GeneratePolicy),
			cfg.SetupHandler.Generate,
		)
		setups.POST("/reuse/:id", cfg.SetupHandler.Reuse)

		setups.GET("", cfg.SetupHandler.List)
		setups.GET("/:id", cfg.SetupHandler.Get)
		setups.PUT("/:id", cfg.SetupHandler.Update)
		setups.DELETE("/:id", cfg.SetupHandler.Delete)
		setups.POST("/:id/refresh",
			cfg.RateLimitMiddleware.Limit("generate", cfg.GeneratePolicy),
			cfg.SetupHandler.Refresh,
		)

		setups.GET("/:id/corrections", cfg.SetupHandler.ListCorrections)
		setups.PUT("/:id/corrections/:channel", cfg.SetupHandler.PutCorrection)
	}
}

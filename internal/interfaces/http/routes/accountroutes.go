package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hsaberwal/serunner/internal/infrastructure/ratelimit"
	"github.com/hsaberwal/serunner/internal/interfaces/http/handlers"
	"github.com/hsaberwal/serunner/internal/interfaces/http/middleware"
)

// AccountRouteConfig contains dependencies for the caller's subscription and
// learned instrument routes.
type AccountRouteConfig struct {
	SubscriptionHandler *handlers.SubscriptionHandler
	InstrumentHandler   *handlers.InstrumentHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	GeneratePolicy      ratelimit.Policy
}

// SetupAccountRoutes configures /subscription and /instruments routes.
func SetupAccountRoutes(engine *gin.Engine, cfg *AccountRouteConfig) {
	subscription := engine.Group("/subscription")
	subscription.Use(cfg.AuthMiddleware.RequireAuth())
	{
		subscription.GET("/usage", cfg.SubscriptionHandler.Usage)
	}

	instruments := engine.Group("/instruments")
	instruments.Use(cfg.AuthMiddleware.RequireAuth())
	{
		instruments.GET("", cfg.InstrumentHandler.List)
		instruments.POST("/learn",
			cfg.RateLimitMiddleware.Limit("learn", cfg.GeneratePolicy),
			cfg.InstrumentHandler.Learn,
		)
	}
}

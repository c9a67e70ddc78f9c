package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hsaberwal/serunner/internal/interfaces/http/handlers"
	"github.com/hsaberwal/serunner/internal/interfaces/http/middleware"
)

// LocationRouteConfig contains dependencies for location routes.
type LocationRouteConfig struct {
	LocationHandler *handlers.LocationHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupLocationRoutes configures location routes.
func SetupLocationRoutes(engine *gin.Engine, cfg *LocationRouteConfig) {
	locations := engine.Group("/locations")
	locations.Use(cfg.AuthMiddleware.RequireAuth())
	{
		locations.POST("", cfg.LocationHandler.Create)
		locations.GET("", cfg.LocationHandler.List)
		locations.GET("/:id", cfg.LocationHandler.Get)
		locations.GET("/:id/learning-context", cfg.LocationHandler.LearningContext)
	}
}

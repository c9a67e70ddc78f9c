package routes

import (
	"github.com/gin-gonic/gin"

	adminHandlers "github.com/hsaberwal/serunner/internal/interfaces/http/handlers/admin"
	"github.com/hsaberwal/serunner/internal/interfaces/http/middleware"
	"github.com/hsaberwal/serunner/internal/shared/authorization"
)

type AdminRouteConfig struct {
	AdminSubscriptionHandler *adminHandlers.SubscriptionHandler
	AuthMiddleware           *middleware.AuthMiddleware
}

// SetupAdminRoutes mounts /admin. Plan changes stand in for billing
// provider events and require the admin role.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/admin", cfg.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	admin.PUT("/subscriptions/:user_id", cfg.AdminSubscriptionHandler.SetPlan)
}

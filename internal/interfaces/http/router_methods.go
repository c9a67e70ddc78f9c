package http

import (
	"github.com/hsaberwal/serunner/internal/infrastructure/ratelimit"
	"github.com/hsaberwal/serunner/internal/interfaces/http/middleware"
	"github.com/hsaberwal/serunner/internal/interfaces/http/routes"
)

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)

	checkMatchPolicy, generatePolicy := r.rateLimitPolicies()

	routes.SetupSetupRoutes(r.engine, &routes.SetupRouteConfig{
		SetupHandler:        r.hdlrs.setupHandler,
		AuthMiddleware:      r.authMiddleware,
		RateLimitMiddleware: r.rateLimitMiddleware,
		CheckMatchPolicy:    checkMatchPolicy,
		GeneratePolicy:      generatePolicy,
	})

	routes.SetupLocationRoutes(r.engine, &routes.LocationRouteConfig{
		LocationHandler: r.hdlrs.locationHandler,
		AuthMiddleware:  r.authMiddleware,
	})

	routes.SetupAccountRoutes(r.engine, &routes.AccountRouteConfig{
		SubscriptionHandler: r.hdlrs.subscriptionHandler,
		InstrumentHandler:   r.hdlrs.instrumentHandler,
		AuthMiddleware:      r.authMiddleware,
		RateLimitMiddleware: r.rateLimitMiddleware,
		GeneratePolicy:      generatePolicy,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		AdminSubscriptionHandler: r.hdlrs.adminSubscriptionHandler,
		AuthMiddleware:           r.authMiddleware,
	})
}

// rateLimitPolicies returns empty policies when rate limiting is off.
func (r *Router) rateLimitPolicies() (checkMatch, generate ratelimit.Policy) {
	rl := r.cfg.RateLimit
	if !rl.Enabled {
		return ratelimit.Policy{}, ratelimit.Policy{}
	}
	checkMatch = ratelimit.Policy{RequestsPerMinute: rl.CheckMatchPerMinute}
	generate = ratelimit.Policy{
		RequestsPerMinute: rl.GeneratePerMinute,
		RequestsPerHour:   rl.GeneratePerHour,
	}
	return checkMatch, generate
}

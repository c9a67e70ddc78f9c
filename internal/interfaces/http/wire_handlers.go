package http

import (
	"github.com/hsaberwal/serunner/internal/interfaces/http/handlers"
	adminHandlers "github.com/hsaberwal/serunner/internal/interfaces/http/handlers/admin"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler       *handlers.HealthHandler
	setupHandler        *handlers.SetupHandler
	locationHandler     *handlers.LocationHandler
	subscriptionHandler *handlers.SubscriptionHandler
	instrumentHandler   *handlers.InstrumentHandler

	// Admin
	adminSubscriptionHandler *adminHandlers.SubscriptionHandler
}

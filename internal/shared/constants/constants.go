package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Gin context keys set by the auth middleware.
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"

	TableSetups              = "setups"
	TableSetupCorrections    = "setup_corrections"
	TableLocations           = "locations"
	TableSubscriptionQuotas  = "subscription_quotas"
	TableInstrumentProfiles  = "instrument_profiles"

	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgValidationFailed    = "Validation failed"
)

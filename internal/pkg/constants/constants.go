package constants

const (
	ViperListenAddr     = "listen_addr"
	ViperDatabaseURL    = "database_url"
	ViperSecretKey      = "auth_secret"
	ViperAllowedOrigins = "allowed_origins"
	ViperDebug          = "debug"

	CtxKeyUserID    = "user_id"
	CtxKeyIsHOD     = "is_hod"
	CtxKeyRequestID = "request_id"

	CookieKeyAuthToken = "auth_token"

	HeaderRequestID = "X-Request-Id"

	// UnknownLabel is the grouping label for faculties without a
	// department or designation set.
	UnknownLabel = "Unknown"

	// UnknownFacultyLabel is the display fallback when a record's
	// author cannot be resolved.
	UnknownFacultyLabel = "Unknown Faculty"
)

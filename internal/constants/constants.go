package constants

// Session and context keys
const (
	SessionCookieName   = "wellness_session"
	SessionKeyUsername  = "username"
	ContextKeyUsername  = "username"
	ContextKeyRequestID = "request_id"
	HeaderRequestID     = "X-Request-ID"
	AuthLoginPath       = "/api/auth/login"
	DateLayout          = "2006-01-02"
)

// Form ranges
const (
	MinIntensity       = 1
	MaxIntensity       = 10
	DefaultIntensity   = 5
	MinStudyHours      = 0
	MaxStudyHours      = 12
	DefaultStudyHours  = 2
	MinEnergyLevel     = 1
	MaxEnergyLevel     = 10
	DefaultEnergyLevel = 5
	MaxUsernameLength  = 50
	MaxNoteLength      = 2000
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

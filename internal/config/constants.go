package config

// Defaults applied when the environment leaves a value unset
const (
	DefaultPort           = 8080
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultEnvironment    = "dev"
	DefaultDBName         = "journey"
	DefaultTimezone       = "UTC"
	DefaultRabbitExchange = "journey.events"
)

// Environment names
const (
	EnvironmentDev        = "dev"
	EnvironmentStaging    = "staging"
	EnvironmentProduction = "production"
)

// Accepted log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Values shipped in .env.example that must not reach production
const (
	InsecureDBPassword = "change_this_secure_password"
	InsecureJWTSecret  = "generate_with_openssl_rand_hex_32"
)

// MinJWTSecretLength is the shortest HMAC secret accepted outside dev
const MinJWTSecretLength = 32

// Error message formats
const (
	ErrMsgParseEnv        = "parse env: %w"
	ErrMsgMissingRequired = "missing required environment variables: %s"
	ErrMsgInvalidPort     = "invalid PORT value: %d"
	ErrMsgInvalidFormat   = "invalid LOG_FORMAT %q: expected text or json"
	ErrMsgInvalidTimezone = "invalid MISSION_TIMEZONE %q: %w"
	ErrMsgShortSecret     = "JWT_SECRET must be at least %d characters outside dev"
	ErrMsgPartialWebhook  = "DISCORD_WEBHOOK_ID and DISCORD_WEBHOOK_TOKEN must be set together"
	ErrMsgInvalidInterval = "%s must be positive"
)

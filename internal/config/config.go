package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT"         envDefault:"8080"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"journey"`
	LogLevel    string `env:"LOG_LEVEL"    envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT"   envDefault:"text"`
	LogDir      string `env:"LOG_DIR"`
	Environment string `env:"ENVIRONMENT"  envDefault:"dev"`
	Version     string `env:"APP_VERSION"  envDefault:"dev"`

	DBUser            string        `env:"DB_USER"               envDefault:"postgres"`
	DBPassword        string        `env:"DB_PASSWORD"           envDefault:"postgres"`
	DBHost            string        `env:"DB_HOST"               envDefault:"localhost"`
	DBPort            string        `env:"DB_PORT"               envDefault:"5432"`
	DBName            string        `env:"DB_NAME"               envDefault:"journey"`
	DBSSLMode         string        `env:"DB_SSLMODE"            envDefault:"disable"`
	DBMaxConns        int           `env:"DB_MAX_CONNS"          envDefault:"20"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME"  envDefault:"30m"`
	DBAutoMigrate     bool          `env:"DB_AUTO_MIGRATE"       envDefault:"true"`

	JWTSecret       string   `env:"JWT_SECRET"`
	MaxRequestBytes int64    `env:"MAX_REQUEST_BYTES" envDefault:"1048576"`
	TrustedProxies  []string `env:"TRUSTED_PROXIES"   envSeparator:","`

	MissionTimezone           string        `env:"MISSION_TIMEZONE"             envDefault:"UTC"`
	MissionCatalogTTL         time.Duration `env:"MISSION_CATALOG_TTL"          envDefault:"5m"`
	MissionMaxConcurrentReads int           `env:"MISSION_MAX_CONCURRENT_READS" envDefault:"4"`

	LeaderboardSize            int           `env:"LEADERBOARD_SIZE"             envDefault:"100"`
	LeaderboardRefreshInterval time.Duration `env:"LEADERBOARD_REFRESH_INTERVAL" envDefault:"1m"`
	RaffleAutoDrawInterval     time.Duration `env:"RAFFLE_AUTODRAW_INTERVAL"     envDefault:"1m"`

	EventMaxRetries     int           `env:"EVENT_MAX_RETRIES"      envDefault:"5"`
	EventRetryDelay     time.Duration `env:"EVENT_RETRY_DELAY"      envDefault:"2s"`
	EventDeadLetterPath string        `env:"EVENT_DEAD_LETTER_PATH" envDefault:"logs/event_deadletter.jsonl"`
	RabbitMQURL         string        `env:"RABBITMQ_URL"`
	RabbitMQExchange    string        `env:"RABBITMQ_EXCHANGE"      envDefault:"journey.events"`

	DiscordWebhookID    string `env:"DISCORD_WEBHOOK_ID"`
	DiscordWebhookToken string `env:"DISCORD_WEBHOOK_TOKEN"`
	NotifyLanguage      string `env:"NOTIFY_LANGUAGE" envDefault:"en"`

	AuditS3Bucket    string `env:"AUDIT_S3_BUCKET"`
	AuditS3Region    string `env:"AUDIT_S3_REGION"     envDefault:"us-east-1"`
	AuditS3Endpoint  string `env:"AUDIT_S3_ENDPOINT"`
	AuditS3AccessKey string `env:"AUDIT_S3_ACCESS_KEY"`
	AuditS3SecretKey string `env:"AUDIT_S3_SECRET_KEY"`

	OTELEnabled     bool    `env:"OTEL_ENABLED"                envDefault:"false"`
	OTELEndpoint    string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	OTELInsecure    bool    `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"true"`
	OTELSampleRatio float64 `env:"OTEL_SAMPLE_RATIO"           envDefault:"1.0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseEnv, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

// IsProduction reports whether the service runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// AMQPEnabled reports whether events are forwarded to RabbitMQ
func (c *Config) AMQPEnabled() bool {
	return c.RabbitMQURL != ""
}

// DiscordEnabled reports whether raffle results are posted to a webhook
func (c *Config) DiscordEnabled() bool {
	return c.DiscordWebhookID != "" && c.DiscordWebhookToken != ""
}

// AuditEnabled reports whether draw audits are written to object storage
func (c *Config) AuditEnabled() bool {
	return c.AuditS3Bucket != ""
}

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validate checks required values and cross-field constraints
func (c *Config) Validate() error {
	var missing []string
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.DBHost == "" {
		missing = append(missing, "DB_HOST")
	}
	if c.DBName == "" {
		missing = append(missing, "DB_NAME")
	}
	if len(missing) > 0 {
		return fmt.Errorf(ErrMsgMissingRequired, strings.Join(missing, ", "))
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf(ErrMsgInvalidPort, c.Port)
	}

	switch strings.ToLower(c.LogFormat) {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf(ErrMsgInvalidFormat, c.LogFormat)
	}

	if _, err := time.LoadLocation(c.MissionTimezone); err != nil {
		return fmt.Errorf(ErrMsgInvalidTimezone, c.MissionTimezone, err)
	}

	if c.Environment != EnvironmentDev && len(c.JWTSecret) < MinJWTSecretLength {
		return fmt.Errorf(ErrMsgShortSecret, MinJWTSecretLength)
	}

	if (c.DiscordWebhookID == "") != (c.DiscordWebhookToken == "") {
		return errors.New(ErrMsgPartialWebhook)
	}

	intervals := map[string]time.Duration{
		"LEADERBOARD_REFRESH_INTERVAL": c.LeaderboardRefreshInterval,
		"RAFFLE_AUTODRAW_INTERVAL":     c.RaffleAutoDrawInterval,
		"MISSION_CATALOG_TTL":          c.MissionCatalogTTL,
	}
	for name, d := range intervals {
		if d <= 0 {
			return fmt.Errorf(ErrMsgInvalidInterval, name)
		}
	}

	return nil
}

// Warnings returns non-fatal issues such as example secrets left in place
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DBPassword == InsecureDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if c.JWTSecret == InsecureJWTSecret {
		warnings = append(warnings, "JWT_SECRET appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if c.IsProduction() && c.DBSSLMode == "disable" {
		warnings = append(warnings, "DB_SSLMODE is disabled in production")
	}

	return warnings
}

package config

import (
	"fmt"
	"os"
)

// Config holds the full environment-supplied configuration surface
type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string
	SentryDSN string

	// Provider credentials; any of these may be absent, in which case the
	// corresponding notification channel is disabled.
	FCMKey      string
	TwilioSID   string
	TwilioToken string
	TwilioPhone string

	// Optional ML sidecar base URL for safety scoring
	MLBaseURL string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:        os.Getenv("PORT"),
		MongoURI:    os.Getenv("MONGO_URI"),
		DBName:      os.Getenv("DB_NAME"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		SentryDSN:   os.Getenv("SENTRY_DSN"),
		FCMKey:      os.Getenv("FCM_KEY"),
		TwilioSID:   os.Getenv("TWILIO_SID"),
		TwilioToken: os.Getenv("TWILIO_TOKEN"),
		TwilioPhone: os.Getenv("TWILIO_PHONE"),
		MLBaseURL:   os.Getenv("ML_URL"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI not set in environment")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set in environment")
	}
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
	}
	if cfg.DBName == "" {
		cfg.DBName = "toursafe"
	}

	return cfg, nil
}

// SMSConfigured reports whether all Twilio credentials are present
func (c *Config) SMSConfigured() bool {
	return c.TwilioSID != "" && c.TwilioToken != "" && c.TwilioPhone != ""
}

// PushConfigured reports whether FCM credentials are present
func (c *Config) PushConfigured() bool {
	return c.FCMKey != ""
}

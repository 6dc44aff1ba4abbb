package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultLogLevel         = "info"
	defaultDisplayPrecision = 2
	defaultClientName       = "Alice"
)

// Config holds application configuration.
type Config struct {
	LogLevel         string
	IsProduction     bool
	DisplayPrecision int    // Decimal places used when printing money
	ClientName       string // Client used by the sample program
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("DISPLAY_PRECISION", defaultDisplayPrecision)
	v.SetDefault("CLIENT_NAME", defaultClientName)

	// Actual environment variables override .env values and defaults.
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL")))
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", cfg.LogLevel, defaultLogLevel)
		cfg.LogLevel = defaultLogLevel
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")

	cfg.DisplayPrecision = v.GetInt("DISPLAY_PRECISION")
	if cfg.DisplayPrecision < 0 || (cfg.DisplayPrecision == 0 && strings.TrimSpace(v.GetString("DISPLAY_PRECISION")) != "0") {
		log.Printf("Warning: Invalid value for DISPLAY_PRECISION ('%s'). Defaulting to %d.\n", v.GetString("DISPLAY_PRECISION"), defaultDisplayPrecision)
		cfg.DisplayPrecision = defaultDisplayPrecision
	}

	cfg.ClientName = strings.TrimSpace(v.GetString("CLIENT_NAME"))
	if cfg.ClientName == "" {
		cfg.ClientName = defaultClientName
		log.Printf("Warning: CLIENT_NAME not set. Defaulting to %s.\n", cfg.ClientName)
	}

	return cfg, nil
}

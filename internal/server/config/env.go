package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration values from environment variables.
// A .env file in the working directory is loaded first if present, so
// local development does not need to export anything.
//
// Recognized variables:
//
//	ADDRESS          HTTP bind address (e.g. ":8080")
//	DATABASE_DSN     PostgreSQL DSN
//	SECRET_KEY       JWT signing secret
//	ACCESS_TOKEN_TTL access token lifetime as a Go duration ("20m")
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddrHTTP = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("ACCESS_TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenTTL = d
		}
	}
}

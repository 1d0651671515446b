package config

import (
	"errors"
	"os"
	"strings"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	JWTSecret   string
	JWKSURL     string // Takes precedence over JWTSecret when set
	JWTIssuer   string
	CORSOrigins []string
}

// Load reads configuration from the environment. Call godotenv.Load first
// to pick up a local .env file.
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		JWKSURL:     getEnv("JWKS_URL", ""),
		JWTIssuer:   getEnv("JWT_ISSUER", ""),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
	}
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL not set")
	}
	if c.JWKSURL == "" && c.JWTSecret == "" {
		return errors.New("one of JWKS_URL or JWT_SECRET must be set")
	}
	if c.JWKSURL == "" && len(c.JWTSecret) < 16 {
		return errors.New("JWT_SECRET must be at least 16 characters")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "prod"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the client needs from the environment.
type Config struct {
	// BaseURL is the backend origin, trailing slash trimmed.
	BaseURL string
	// HTTPTimeout bounds each request; zero means no timeout.
	HTTPTimeout time.Duration
	// TokenKeys is the credential store lookup order.
	TokenKeys []string
}

// Load reads configuration from the environment. A .env file is
// honored when present but its absence is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		BaseURL:     strings.TrimRight(getEnv("API_BASE", "http://localhost:8000"), "/"),
		HTTPTimeout: getEnvDuration("API_TIMEOUT", 0),
		TokenKeys:   []string{"access_token", "access", "token"},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	parsed, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("API_BASE is not a valid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("API_BASE must use http or https, got %q", c.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("API_BASE is missing a host: %q", c.BaseURL)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("API_TIMEOUT must not be negative")
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultModel   = "gpt-4o-mini"
	defaultPort    = "8080"
	defaultOrigin  = "http://localhost:5173"
	defaultTimeout = 30 * time.Second
)

// Config is the process configuration, read from the environment once at
// startup and never mutated afterwards.
type Config struct {
	APIKey          string
	Model           string
	Port            string
	ClientOrigin    string
	Production      bool
	ProviderTimeout time.Duration
}

func Load() (Config, error) {
	apiKey := getEnv("OPENAI_API_KEY", "")
	if apiKey == "" {
		return Config{}, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	timeout := defaultTimeout
	if raw := getEnv("OPENAI_TIMEOUT", ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid OPENAI_TIMEOUT %q: %w", raw, err)
		}
		timeout = d
	}

	return Config{
		APIKey:          apiKey,
		Model:           getEnv("OPENAI_MODEL", defaultModel),
		Port:            getEnv("PORT", defaultPort),
		ClientOrigin:    getEnv("CLIENT_ORIGIN", defaultOrigin),
		Production:      getEnv("APP_ENV", "") == "production",
		ProviderTimeout: timeout,
	}, nil
}

// getEnv reads a variable with a fallback, trimming stray whitespace.
func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

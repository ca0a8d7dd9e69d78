package config

import (
	"os"
	"strings"
	"sync"
)

type Config struct {
	Port          string
	DatabaseURL   string
	SessionSecret string

	// StrictEngagement gates votes and comments behind full verification
	// (handle + both social accounts). With it off only a handle is
	// required. This is evolving business policy, so it lives here and
	// not in the services.
	StrictEngagement bool

	AllowedOrigins []string
}

var (
	cfg  *Config
	once sync.Once
)

// Get loads configuration from the environment on first use.
func Get() *Config {
	once.Do(func() {
		cfg = &Config{
			Port:             getenv("PORT", "8080"),
			DatabaseURL:      os.Getenv("DATABASE_URL"),
			SessionSecret:    getenv("SESSION_SECRET", "secret_key_change_me"),
			StrictEngagement: getenvBool("STRICT_ENGAGEMENT", true),
			AllowedOrigins:   strings.Split(getenv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
		}
	})
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

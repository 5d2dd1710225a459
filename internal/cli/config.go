package cli

import (
	"os"

	"github.com/finboard/finboard/internal/session"
)

// Config holds CLI configuration
type Config struct {
	BackendURL string
	TokenFile  string
	Output     string
	Verbose    bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		BackendURL: getEnvOrDefault("FINBOARD_BACKEND", "http://localhost:8080"),
		TokenFile:  getEnvOrDefault("FINBOARD_TOKEN_FILE", session.DefaultTokenFile()),
		Output:     "text",
		Verbose:    false,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

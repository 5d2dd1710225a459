package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment names
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Limiter backend names
const (
	LimiterMemory = "memory"
	LimiterRedis  = "redis"
)

// Config holds the frontend's configuration
type Config struct {
	// HTTP server
	Port string

	// Environment ("development" or "production"); production turns on
	// Secure cookies
	Env string

	// BackendURL is the base URL of the remote finance API
	BackendURL string

	// Login rate limiter
	LimiterBackend   string
	RedisURL         string
	LimitMaxAttempts int
	LimitWindow      time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", "3000"),
		Env:        getEnv("FINBOARD_ENV", EnvDevelopment),
		BackendURL: getEnv("BACKEND_URL", "http://localhost:8080"),

		LimiterBackend:   getEnv("LIMITER_BACKEND", LimiterMemory),
		RedisURL:         getEnv("REDIS_URL", ""),
		LimitMaxAttempts: getEnvInt("LOGIN_MAX_ATTEMPTS", 10),
		LimitWindow:      getEnvDuration("LOGIN_ATTEMPT_WINDOW", time.Minute),
	}
}

// IsProduction reports whether the production environment is configured
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Validate checks the configuration and returns an aggregated error
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.Env != EnvDevelopment && c.Env != EnvProduction {
		problems = append(problems, fmt.Sprintf("invalid environment %q: must be %q or %q", c.Env, EnvDevelopment, EnvProduction))
	}

	if u, err := url.Parse(c.BackendURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, fmt.Sprintf("invalid backend URL %q", c.BackendURL))
	}

	switch c.LimiterBackend {
	case LimiterMemory:
	case LimiterRedis:
		if c.RedisURL == "" {
			problems = append(problems, "REDIS_URL required when LIMITER_BACKEND=redis")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid limiter backend %q: must be %q or %q", c.LimiterBackend, LimiterMemory, LimiterRedis))
	}

	if c.LimitMaxAttempts < 1 {
		problems = append(problems, "LOGIN_MAX_ATTEMPTS must be at least 1")
	}
	if c.LimitWindow <= 0 {
		problems = append(problems, "LOGIN_ATTEMPT_WINDOW must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

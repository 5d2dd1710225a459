package factory

import (
	"io"
	"log/slog"

	"github.com/finboard/finboard/internal/backend"
	"github.com/finboard/finboard/internal/config"
	"github.com/finboard/finboard/internal/dependencies/clock"
	"github.com/finboard/finboard/internal/ratelimit"
	"github.com/finboard/finboard/internal/session"
)

// App contains all wired application components
type App struct {
	Config   *config.Config
	Clock    clock.Clock
	Client   *backend.Client
	Sessions *session.Manager
	Limiter  ratelimit.Limiter
}

// Options customizes wiring, mainly for tests
type Options struct {
	// Logger is the application logger; a no-op logger when nil
	Logger *slog.Logger
	// TokenStore overrides the default in-memory store
	TokenStore session.TokenStore
}

// New creates the application with all dependencies wired from config
func New(cfg *config.Config, opts Options) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store := opts.TokenStore
	if store == nil {
		store = session.NewMemoryTokenStore()
	}

	clk := clock.New()

	limitCfg := ratelimit.Config{
		MaxAttempts: cfg.LimitMaxAttempts,
		Window:      cfg.LimitWindow,
	}

	var limiter ratelimit.Limiter
	switch cfg.LimiterBackend {
	case config.LimiterRedis:
		redisCfg := ratelimit.DefaultRedisConfig()
		redisCfg.URL = cfg.RedisURL
		redisLimiter, err := ratelimit.NewRedisLimiter(limitCfg, redisCfg)
		if err != nil {
			return nil, err
		}
		limiter = redisLimiter
	default:
		limiter = ratelimit.NewMemoryLimiter(limitCfg, clk)
	}

	client := backend.New(cfg.BackendURL)
	sessions := session.New(client, store, logger)

	return &App{
		Config:   cfg,
		Clock:    clk,
		Client:   client,
		Sessions: sessions,
		Limiter:  limiter,
	}, nil
}

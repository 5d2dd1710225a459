package factory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finboard/finboard/internal/config"
	"github.com/finboard/finboard/internal/ratelimit"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:             "3000",
		Env:              config.EnvDevelopment,
		BackendURL:       "http://localhost:8080",
		LimiterBackend:   config.LimiterMemory,
		LimitMaxAttempts: 10,
		LimitWindow:      time.Minute,
	}
}

func TestNewWiresAllComponents(t *testing.T) {
	app, err := New(testConfig(), Options{})
	require.NoError(t, err)

	assert.NotNil(t, app.Config)
	assert.NotNil(t, app.Clock)
	assert.NotNil(t, app.Client)
	assert.NotNil(t, app.Sessions)
	assert.NotNil(t, app.Limiter)
	assert.IsType(t, &ratelimit.MemoryLimiter{}, app.Limiter)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Port = "not-a-port"

	_, err := New(cfg, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port")
}

func TestNewStartsAnonymous(t *testing.T) {
	app, err := New(testConfig(), Options{})
	require.NoError(t, err)

	assert.False(t, app.Sessions.IsAuthenticated())
	assert.Empty(t, app.Sessions.Token())
}

package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicenotes/internal/config"
	"voicenotes/pkg/logger"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "development", cfg.Logging.Mode)
	assert.Equal(t, 5, cfg.Shutdown.Timeout)
	assert.Equal(t, time.Second, cfg.Messaging.SendDelay)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("NOTES_HTTP_HOST", "127.0.0.1")
	t.Setenv("NOTES_HTTP_PORT", "9090")
	t.Setenv("NOTES_LOGGER_MODE", "production")
	t.Setenv("NOTES_SHUTDOWN_TIMEOUT", "15")
	t.Setenv("NOTES_MESSAGING_SEND_DELAY", "250ms")

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "127.0.0.1:9090", cfg.HTTP.GetAddress())
	assert.Equal(t, "production", cfg.Logging.Mode)
	assert.Equal(t, 15*time.Second, cfg.Shutdown.GetTimeout())
	assert.Equal(t, 250*time.Millisecond, cfg.Messaging.SendDelay)
}

func TestLoggingEnvironmentMapping(t *testing.T) {
	tests := []struct {
		mode string
		want logger.Environment
	}{
		{"production", logger.Production},
		{"development", logger.Development},
		{"anything-else", logger.Development},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			cfg := config.LoggingConfig{Mode: tt.mode}
			assert.Equal(t, tt.want, cfg.GetEnvironment())
		})
	}
}

package config

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCredentials(t *testing.T) {
	t.Setenv("MPESA_CLIENT_KEY", "key")
	t.Setenv("MPESA_CLIENT_SECRET", "secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setCredentials(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "key", cfg.ClientKey)
	assert.Equal(t, "secret", cfg.ClientSecret)
	assert.Equal(t, "sandbox", cfg.Environment)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "text", cfg.Logger.Format)
	assert.Empty(t, cfg.InitiatorPassword)
}

func TestLoadConfig_Overrides(t *testing.T) {
	setCredentials(t)
	t.Setenv("MPESA_ENVIRONMENT", "production")
	t.Setenv("MPESA_INITIATOR_PASSWORD", "s3cret!")
	t.Setenv("MPESA_PASS_KEY", "passkey")
	t.Setenv("MPESA_HTTP__TIMEOUT", "5s")
	t.Setenv("MPESA_LOGGER__LEVEL", "debug")
	t.Setenv("MPESA_LOGGER__FORMAT", "json")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "s3cret!", cfg.InitiatorPassword)
	assert.Equal(t, "passkey", cfg.PassKey)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing client key",
			env:  map[string]string{"MPESA_CLIENT_SECRET": "secret"},
		},
		{
			name: "unknown environment",
			env: map[string]string{
				"MPESA_CLIENT_KEY":    "key",
				"MPESA_CLIENT_SECRET": "secret",
				"MPESA_ENVIRONMENT":   "staging",
			},
		},
		{
			name: "unknown log format",
			env: map[string]string{
				"MPESA_CLIENT_KEY":     "key",
				"MPESA_CLIENT_SECRET":  "secret",
				"MPESA_LOGGER__FORMAT": "xml",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MPESA_CLIENT_KEY", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoggerConfig_NewLogger(t *testing.T) {
	ctx := context.Background()

	debug := LoggerConfig{Level: "debug", Format: "json"}.NewLogger()
	assert.True(t, debug.Enabled(ctx, slog.LevelDebug))

	def := LoggerConfig{}.NewLogger()
	assert.False(t, def.Enabled(ctx, slog.LevelDebug))
	assert.True(t, def.Enabled(ctx, slog.LevelInfo))

	errOnly := LoggerConfig{Level: "error"}.NewLogger()
	assert.False(t, errOnly.Enabled(ctx, slog.LevelWarn))
}

package config

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every PORTFOLIO_ env var that Load() reads.
var allConfigKeys = []string{
	"PORTFOLIO_LISTEN_ADDR",
	"PORTFOLIO_LOG_LEVEL",
	"PORTFOLIO_LOG_FORMAT",
	"PORTFOLIO_ANIMATIONS",
}

// isolateConfigEnv saves and unsets all PORTFOLIO_ env vars so tests don't
// inherit values from the host environment.
// t.Cleanup restores original values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PORTFOLIO_LISTEN_ADDR", "0.0.0.0:9090")
	t.Setenv("PORTFOLIO_LOG_LEVEL", "debug")
	t.Setenv("PORTFOLIO_LOG_FORMAT", "JSON")
	t.Setenv("PORTFOLIO_ANIMATIONS", "false")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
	assert.False(t, cfg.Animations)
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, LogFormatText, cfg.LogFormat)
	assert.True(t, cfg.Animations)
}

// TestLoad_EmptyValuesUseDefaults verifies that set-but-empty variables are
// treated the same as unset ones.
func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	isolateConfigEnv(t)
	for _, key := range allConfigKeys {
		t.Setenv(key, "")
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.True(t, cfg.Animations)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PORTFOLIO_LOG_LEVEL", "loud")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORTFOLIO_LOG_LEVEL")
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PORTFOLIO_LOG_FORMAT", "xml")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORTFOLIO_LOG_FORMAT")
}

func TestLoad_InvalidAnimations(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PORTFOLIO_ANIMATIONS", "sometimes")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORTFOLIO_ANIMATIONS")
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	cfg := &Config{LogLevel: slog.LevelWarn, LogFormat: LogFormatJSON}

	logger := cfg.NewLogger()

	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, logger.Enabled(t.Context(), slog.LevelWarn))
}

// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// LogFormat selects the slog handler used by the composition root.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr string
	LogLevel   slog.Level
	LogFormat  LogFormat
	Animations bool
}

// Load reads configuration from environment variables and returns a validated Config.
// All variables are optional: PORTFOLIO_LISTEN_ADDR (127.0.0.1:8080),
// PORTFOLIO_LOG_LEVEL (info), PORTFOLIO_LOG_FORMAT (text) and
// PORTFOLIO_ANIMATIONS (true). Setting PORTFOLIO_ANIMATIONS=false serves the
// page without the motion stylesheet; content stays fully visible.
func Load() (*Config, error) {
	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("PORTFOLIO_LISTEN_ADDR"); ok && v != "" {
		listenAddr = v
	}

	level := slog.LevelInfo
	if v, ok := os.LookupEnv("PORTFOLIO_LOG_LEVEL"); ok && v != "" {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("PORTFOLIO_LOG_LEVEL has invalid level %q: %w", v, err)
		}
	}

	format := LogFormatText
	if v, ok := os.LookupEnv("PORTFOLIO_LOG_FORMAT"); ok && v != "" {
		switch LogFormat(strings.ToLower(v)) {
		case LogFormatText:
			format = LogFormatText
		case LogFormatJSON:
			format = LogFormatJSON
		default:
			return nil, fmt.Errorf("PORTFOLIO_LOG_FORMAT must be %q or %q, got %q", LogFormatText, LogFormatJSON, v)
		}
	}

	animations := true
	if v, ok := os.LookupEnv("PORTFOLIO_ANIMATIONS"); ok && v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("PORTFOLIO_ANIMATIONS has invalid boolean %q: %w", v, err)
		}
		animations = parsed
	}

	return &Config{
		ListenAddr: listenAddr,
		LogLevel:   level,
		LogFormat:  format,
		Animations: animations,
	}, nil
}

// NewLogger builds the process logger described by the config.
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

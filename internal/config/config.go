// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all settings read from the environment.
type Config struct {
	DBPath   string // env: OFFLINE_ASSIST_DB, default ~/.offline-assist/assist.db
	Language string // env: OFFLINE_ASSIST_LANG, default english

	LogLevel  string // env: OFFLINE_ASSIST_LOG_LEVEL (debug, info, warn, error)
	LogFormat string // env: OFFLINE_ASSIST_LOG_FORMAT (text, json)

	// Remote chat API. Empty URL means offline only.
	RemoteURL     string        // env: OFFLINE_ASSIST_REMOTE_URL
	RemoteToken   string        // env: OFFLINE_ASSIST_REMOTE_TOKEN
	RemoteTimeout time.Duration // env: OFFLINE_ASSIST_REMOTE_TIMEOUT, default 30s
}

// Load reads a .env file from the working directory if present, then builds
// the configuration from environment variables. Variables already set in the
// environment take precedence over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return FromEnv(), nil
}

// FromEnv builds the configuration from environment variables only.
func FromEnv() *Config {
	return &Config{
		DBPath:        getEnv("OFFLINE_ASSIST_DB", defaultDBPath()),
		Language:      strings.ToLower(getEnv("OFFLINE_ASSIST_LANG", "english")),
		LogLevel:      getEnv("OFFLINE_ASSIST_LOG_LEVEL", "warn"),
		LogFormat:     getEnv("OFFLINE_ASSIST_LOG_FORMAT", "text"),
		RemoteURL:     getEnv("OFFLINE_ASSIST_REMOTE_URL", ""),
		RemoteToken:   getEnv("OFFLINE_ASSIST_REMOTE_TOKEN", ""),
		RemoteTimeout: getDuration("OFFLINE_ASSIST_REMOTE_TIMEOUT", 30*time.Second),
	}
}

// RemoteEnabled reports whether a remote chat API is configured.
func (c *Config) RemoteEnabled() bool {
	return c.RemoteURL != ""
}

// SetupLogger installs the default slog logger. Logs go to w (stderr in the
// CLI) so command output on stdout stays machine-readable.
func (c *Config) SetupLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(c.LogLevel)}

	var handler slog.Handler
	if c.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func defaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".offline-assist", "assist.db")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

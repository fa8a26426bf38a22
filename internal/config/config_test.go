package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{
		"OFFLINE_ASSIST_DB", "OFFLINE_ASSIST_LANG", "OFFLINE_ASSIST_LOG_LEVEL",
		"OFFLINE_ASSIST_LOG_FORMAT", "OFFLINE_ASSIST_REMOTE_URL", "OFFLINE_ASSIST_REMOTE_TIMEOUT",
	} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	if !strings.HasSuffix(cfg.DBPath, filepath.Join(".offline-assist", "assist.db")) {
		t.Errorf("unexpected default db path %q", cfg.DBPath)
	}
	if cfg.Language != "english" {
		t.Errorf("expected english, got %q", cfg.Language)
	}
	if cfg.RemoteEnabled() {
		t.Error("remote should be disabled by default")
	}
	if cfg.RemoteTimeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.RemoteTimeout)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("OFFLINE_ASSIST_DB", "/tmp/x.db")
	t.Setenv("OFFLINE_ASSIST_LANG", "Tagalog")
	t.Setenv("OFFLINE_ASSIST_REMOTE_URL", "http://localhost:8080")
	t.Setenv("OFFLINE_ASSIST_REMOTE_TIMEOUT", "5s")

	cfg := FromEnv()
	if cfg.DBPath != "/tmp/x.db" {
		t.Errorf("unexpected db path %q", cfg.DBPath)
	}
	if cfg.Language != "tagalog" {
		t.Errorf("expected lowercased language, got %q", cfg.Language)
	}
	if !cfg.RemoteEnabled() {
		t.Error("expected remote enabled")
	}
	if cfg.RemoteTimeout != 5*time.Second {
		t.Errorf("expected 5s, got %v", cfg.RemoteTimeout)
	}
}

func TestFromEnv_BadDurationFallsBack(t *testing.T) {
	t.Setenv("OFFLINE_ASSIST_REMOTE_TIMEOUT", "soon")
	if got := FromEnv().RemoteTimeout; got != 30*time.Second {
		t.Errorf("expected fallback 30s, got %v", got)
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("OFFLINE_ASSIST_LANG=bisaya\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Setenv("OFFLINE_ASSIST_LANG", "")
	os.Unsetenv("OFFLINE_ASSIST_LANG")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Language != "bisaya" {
		t.Errorf("expected bisaya from .env, got %q", cfg.Language)
	}
}

func TestLoad_MissingDotEnvIsFine(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := Load(); err != nil {
		t.Errorf("expected no error without .env, got %v", err)
	}
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	cfg := &Config{LogLevel: "info", LogFormat: "json"}
	logger := cfg.SetupLogger(&buf)

	logger.Debug("hidden")
	logger.Info("shown", "k", "v")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug line should be filtered at info level")
	}
	if !strings.Contains(out, `"msg":"shown"`) {
		t.Errorf("expected json output, got %q", out)
	}
}

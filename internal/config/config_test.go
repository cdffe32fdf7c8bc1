package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromPathDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults: %v", err)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Session.TTL.Std() != 720*time.Hour {
		t.Fatalf("unexpected session ttl: %s", cfg.Session.TTL.Std())
	}
	if !cfg.Remote.Seed {
		t.Fatal("fixtures should seed by default")
	}
}

func TestLoadFromPathFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agrilease.yaml")
	body := `
logging:
  level: debug
session:
  path: /var/lib/agrilease/session.json
  secret: file-secret
  ttl: 1h
remote:
  latency: 250ms
  seed: false
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("file level not applied: %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Fatalf("unset file fields should keep defaults: %s", cfg.Logging.Format)
	}
	if cfg.Session.Secret != "file-secret" || cfg.Session.TTL.Std() != time.Hour {
		t.Fatalf("session config not applied: %+v", cfg.Session)
	}
	if cfg.Remote.Latency.Std() != 250*time.Millisecond || cfg.Remote.Seed {
		t.Fatalf("remote config not applied: %+v", cfg.Remote)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agrilease.yaml")
	if err := os.WriteFile(path, []byte("session:\n  ttl: 1h\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("AGRILEASE_SESSION_TTL", "48h")
	t.Setenv("AGRILEASE_LOG_LEVEL", "warn")

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Session.TTL.Std() != 48*time.Hour {
		t.Fatalf("env should win over file: %s", cfg.Session.TTL.Std())
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("env log level not applied: %s", cfg.Logging.Level)
	}
}

func TestRejectsNonPositiveTTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agrilease.yaml")
	if err := os.WriteFile(path, []byte("session:\n  ttl: -1h\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFromPath(path); err == nil {
		t.Fatal("negative ttl should be rejected")
	}
}

func TestRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agrilease.yaml")
	if err := os.WriteFile(path, []byte("logging: ["), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFromPath(path); err == nil {
		t.Fatal("malformed yaml should be rejected")
	}
}

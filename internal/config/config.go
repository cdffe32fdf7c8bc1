// Package config loads application configuration from an optional yaml file
// with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/agrilease/agrilease/pkg/logger"
)

// Duration is a time.Duration that decodes from "300ms" style strings in
// yaml files and environment variables.
type Duration time.Duration

// Std returns the value as a standard time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d *Duration) set(raw string) error {
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Decode implements envdecode.Decoder.
func (d *Duration) Decode(raw string) error { return d.set(raw) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	return d.set(raw)
}

// SessionConfig controls the durable session record.
type SessionConfig struct {
	// Path of the single-record session file.
	Path string `yaml:"path" env:"AGRILEASE_SESSION_PATH"`
	// Secret enables the JWT session validator when non-empty. Empty keeps
	// the legacy trust-the-record behaviour.
	Secret string `yaml:"secret" env:"AGRILEASE_SESSION_SECRET"`
	// TTL bounds the lifetime of issued session tokens.
	TTL Duration `yaml:"ttl" env:"AGRILEASE_SESSION_TTL"`
}

// RemoteConfig controls the bundled in-memory backend.
type RemoteConfig struct {
	// Latency is the simulated per-call delay.
	Latency Duration `yaml:"latency" env:"AGRILEASE_REMOTE_LATENCY"`
	// Seed loads the demo fixtures on startup.
	Seed bool `yaml:"seed" env:"AGRILEASE_REMOTE_SEED"`
}

// Config is the application configuration root.
type Config struct {
	Logging logger.LoggingConfig `yaml:"logging"`
	Session SessionConfig        `yaml:"session"`
	Remote  RemoteConfig         `yaml:"remote"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() Config {
	return Config{
		Logging: logger.LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		Session: SessionConfig{
			Path: filepath.Join(".agrilease", "session.json"),
			TTL:  Duration(720 * time.Hour),
		},
		Remote: RemoteConfig{
			Seed: true,
		},
	}
}

// Load reads configuration from the file named by AGRILEASE_CONFIG (default
// config/agrilease.yaml) when present, then applies .env and environment
// overrides. A missing config file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	path := os.Getenv("AGRILEASE_CONFIG")
	if path == "" {
		path = filepath.Join("config", "agrilease.yaml")
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific yaml file plus
// environment overrides.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults plus environment only.
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := envdecode.Decode(&cfg); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return nil, fmt.Errorf("decode config from env: %w", err)
	}

	if cfg.Session.TTL <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %s", cfg.Session.TTL.Std())
	}
	return &cfg, nil
}

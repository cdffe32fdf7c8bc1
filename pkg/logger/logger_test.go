package logger

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestJSONOutputCarriesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log := New(LoggingConfig{Level: "debug", Format: "json", Output: path})

	log.WithField("operation", "lands.list").WithError(errors.New("boom")).Warn("operation rejected")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("log line is not json: %v (%s)", err, data)
	}
	if entry["operation"] != "lands.list" {
		t.Fatalf("field missing: %v", entry)
	}
	if entry["error"] != "boom" {
		t.Fatalf("error field missing: %v", entry)
	}
	if entry["level"] != "warning" {
		t.Fatalf("unexpected level: %v", entry)
	}
}

func TestLevelFiltersLowerEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log := New(LoggingConfig{Level: "warn", Format: "json", Output: path})

	log.Info("suppressed")
	log.Warn("kept")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("expected exactly one json line, got %q", data)
	}
	if entry["msg"] != "kept" {
		t.Fatalf("wrong entry survived: %v", entry)
	}
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log := New(LoggingConfig{Level: "chatty", Format: "json", Output: path})

	log.Debug("suppressed")
	log.Info("kept")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("expected exactly one json line, got %q", data)
	}
	if entry["msg"] != "kept" {
		t.Fatalf("wrong entry survived: %v", entry)
	}
}

func TestNopDiscards(t *testing.T) {
	log := NewNop()
	log.WithField("k", "v").Debugf("nothing %d", 1)
	log.Info("nothing")
}

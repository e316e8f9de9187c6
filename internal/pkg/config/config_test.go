package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cfg.GetBackendServiceAddr(); got != "localhost:50050" {
		t.Errorf("backend addr = %q, want localhost:50050", got)
	}
	if got := cfg.GetDatabaseServiceAddr(); got != "localhost:50052" {
		t.Errorf("database addr = %q, want localhost:50052", got)
	}
	if got := cfg.GetFrontendServiceAddr(); got != "0.0.0.0:8501" {
		t.Errorf("frontend addr = %q, want 0.0.0.0:8501", got)
	}
	if cfg.Static.Dir != "web" {
		t.Errorf("static dir = %q, want web", cfg.Static.Dir)
	}
	if got := cfg.RPCTimeout(); got != 10*time.Second {
		t.Errorf("rpc timeout = %v, want 10s", got)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "console" {
		t.Errorf("log config = %q/%q, want info/console", cfg.Log.Level, cfg.Log.Format)
	}
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `backend_service:
  host: backend.internal
  port: 50060
rpc:
  timeout_seconds: 3
log:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cfg.GetBackendServiceAddr(); got != "backend.internal:50060" {
		t.Errorf("backend addr = %q, want backend.internal:50060", got)
	}
	if got := cfg.RPCTimeout(); got != 3*time.Second {
		t.Errorf("rpc timeout = %v, want 3s", got)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
	// Sections the file does not mention keep their defaults.
	if got := cfg.GetDatabaseServiceAddr(); got != "localhost:50052" {
		t.Errorf("database addr = %q, want localhost:50052", got)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "backend_service:\n  port: 50060\n")

	t.Setenv("BACKEND_SERVICE_PORT", "60060")
	t.Setenv("DATABASE_SERVICE_HOST", "db.internal")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cfg.GetBackendServiceAddr(); got != "localhost:60060" {
		t.Errorf("backend addr = %q, want localhost:60060", got)
	}
	if got := cfg.GetDatabaseServiceAddr(); got != "db.internal:50052" {
		t.Errorf("database addr = %q, want db.internal:50052", got)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("log format = %q, want json", cfg.Log.Format)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "backend_service: [")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestGet_ReturnsLoadedConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if Get() != cfg {
		t.Error("Get() did not return the last loaded config")
	}
}

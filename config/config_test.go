package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testYAML = `
env:
  env: test
  serviceName: bluecarbon-registry
http:
  port: 9090
postgres:
  host: localhost
  port: 5432
  user: registry
  dbName: bluecarbon
  sslMode: disable
auth:
  bcryptCost: 4
  accessTokenTTL: 5m
uploads:
  bucketUrl: file://./test-uploads
`

func writeTestConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	writeTestConfig(t)

	cfg, err := LoadWithEnv[Config]("config", ".")
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}

	if cfg.HTTP.Port != 9090 {
		t.Errorf("HTTP.Port = %d, want 9090", cfg.HTTP.Port)
	}
	if cfg.Postgres == nil || cfg.Postgres.Host != "localhost" {
		t.Errorf("Postgres.Host not loaded: %+v", cfg.Postgres)
	}
	if cfg.Auth.AccessTokenTTL != 5*time.Minute {
		t.Errorf("Auth.AccessTokenTTL = %s, want 5m", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Uploads.BucketURL != "file://./test-uploads" {
		t.Errorf("Uploads.BucketURL = %q", cfg.Uploads.BucketURL)
	}
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("POSTGRES_HOST", "db.internal")

	cfg, err := LoadWithEnv[Config]("config", ".")
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}

	if cfg.Postgres.Host != "db.internal" {
		t.Errorf("Postgres.Host = %q, want env override db.internal", cfg.Postgres.Host)
	}
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := LoadWithEnv[Config]("config", "."); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	if cfg.HTTP.Port != 8080 {
		t.Errorf("HTTP.Port = %d, want 8080", cfg.HTTP.Port)
	}
	if cfg.Auth.AccessTokenTTL != 15*time.Minute {
		t.Errorf("AccessTokenTTL = %s, want 15m", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Auth.RefreshTokenTTL != 7*24*time.Hour {
		t.Errorf("RefreshTokenTTL = %s, want 168h", cfg.Auth.RefreshTokenTTL)
	}
	if cfg.Uploads.BucketURL != "file://./uploads" {
		t.Errorf("Uploads.BucketURL = %q", cfg.Uploads.BucketURL)
	}
	if cfg.Uploads.MaxSizeBytes != 10<<20 {
		t.Errorf("Uploads.MaxSizeBytes = %d", cfg.Uploads.MaxSizeBytes)
	}
}

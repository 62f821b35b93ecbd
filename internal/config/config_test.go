package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_YAMLThenEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
port: "9090"
db_dsn: postgres://file
log:
  level: debug
rate_limit:
  rps: 5
  burst: 10
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	t.Setenv("DB_DSN", "postgres://env")
	t.Setenv("RATE_LIMIT_BURST", "3")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected port from yaml, got %q", cfg.Port)
	}
	if cfg.DBDSN != "postgres://env" {
		t.Fatalf("expected env to win for DB_DSN, got %q", cfg.DBDSN)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected log config: %#v", cfg.Log)
	}
	if cfg.RateLimit.RPS != 5 || cfg.RateLimit.Burst != 3 {
		t.Fatalf("unexpected rate limit: %#v", cfg.RateLimit)
	}
	if cfg.Addr() != ":9090" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
}

func TestLoad_InvalidEnvNumber(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("RATE_LIMIT_RPS", "fast")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for non-numeric RATE_LIMIT_RPS")
	}
}

func TestValidate_SupabasePair(t *testing.T) {
	cfg := Default()
	cfg.Auth.SupabaseURL = "https://x.supabase.co"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error when anon key is missing")
	}
}

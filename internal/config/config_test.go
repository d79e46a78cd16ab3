package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ZAEON_PORT", "")
	t.Setenv("ZAEON_DB", "")
	t.Setenv("ZAEON_ENV", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.IsDevelopment() {
		t.Error("default env must be production")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ZAEON_PORT", "9090")
	t.Setenv("ZAEON_DB", "/tmp/zaeon.db")
	t.Setenv("ZAEON_ENV", "development")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" || cfg.DBPath != "/tmp/zaeon.db" {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.IsDevelopment() {
		t.Error("expected development mode")
	}
}

func TestLoadRejectsBadEnv(t *testing.T) {
	t.Setenv("ZAEON_ENV", "staging")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown env")
	}
}

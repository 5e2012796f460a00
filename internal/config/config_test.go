package config

import (
	"reflect"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg := Load()

	if cfg.SecretKey == "" || cfg.DatabaseURL == "" {
		t.Error("expected fallback values for unset variables")
	}
	if cfg.IsProduction() {
		t.Error("default environment should be development")
	}
	want := []string{"http://localhost:8080", "http://localhost:3000"}
	if !reflect.DeepEqual(cfg.CORSOrigins, want) {
		t.Errorf("default origins: got %v", cfg.CORSOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://staging.example.com ,")
	t.Setenv("SERVER_PORT", "9000")

	cfg := Load()

	if !cfg.IsProduction() {
		t.Error("APP_ENV=production not picked up")
	}
	want := []string{"https://app.example.com", "https://staging.example.com"}
	if !reflect.DeepEqual(cfg.CORSOrigins, want) {
		t.Errorf("origins not split and trimmed: got %v", cfg.CORSOrigins)
	}
	if cfg.ServerPort != "9000" {
		t.Errorf("port override: got %q", cfg.ServerPort)
	}
}

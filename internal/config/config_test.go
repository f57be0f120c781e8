package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func newViper(env map[string]interface{}) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range env {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newViper(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DBHost != "localhost" || cfg.DBPort != "5432" || cfg.DBName != "compras" {
		t.Fatalf("unexpected db defaults: %+v", cfg)
	}
	if cfg.DBMaxOpenConns != 10 {
		t.Fatalf("expected pool bound 10, got %d", cfg.DBMaxOpenConns)
	}
	if cfg.JWTSecret != devJWTSecret {
		t.Fatalf("expected development secret fallback")
	}
	if cfg.JWTTTL != 24*time.Hour {
		t.Fatalf("expected 24h ttl, got %s", cfg.JWTTTL)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:5173" {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSOrigins)
	}
	if cfg.MailEnabled() {
		t.Fatalf("mail must be disabled without SMTP_HOST")
	}
}

func TestFromViper_Overrides(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]interface{}{
		"DB_HOST":       "db",
		"CORS_ORIGIN":   "http://a.local, http://b.local ,",
		"AUTH_REQUIRED": true,
		"SMTP_HOST":     "smtp.local",
		"JWT_SECRET":    "s3cret",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DSN() != "postgres://postgres:postgres@db:5432/compras?sslmode=disable" {
		t.Fatalf("unexpected dsn: %s", cfg.DSN())
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.local" {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSOrigins)
	}
	if !cfg.AuthRequired || !cfg.MailEnabled() || cfg.JWTSecret != "s3cret" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestFromViper_ReleaseRequiresSecret(t *testing.T) {
	_, err := fromViper(newViper(map[string]interface{}{"GIN_MODE": "release"}))
	if err == nil {
		t.Fatal("expected error without JWT_SECRET in release mode")
	}
}

func TestFromViper_InvalidTTL(t *testing.T) {
	_, err := fromViper(newViper(map[string]interface{}{"JWT_TTL": "forever"}))
	if err == nil {
		t.Fatal("expected error for invalid JWT_TTL")
	}
}

package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "talent-map")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected missing-env error, got %v", err)
	}
	if !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Fatalf("error should name the missing variable: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_ACCESS_EXPIRES_MINUTES", "")
	t.Setenv("DB_POOL_MAX_CONNS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.JWT.AccessExpiresIn != 30*time.Minute {
		t.Fatalf("expected 30m default expiry, got %v", cfg.JWT.AccessExpiresIn)
	}
	if cfg.Database.PoolMaxConns != 0 {
		t.Fatalf("unset pool size should stay zero, got %d", cfg.Database.PoolMaxConns)
	}
}

func TestLoad_ParsesOptionalNumbers(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_ACCESS_EXPIRES_MINUTES", "45")
	t.Setenv("DB_CONNECT_TIMEOUT_SECONDS", "7")
	t.Setenv("DB_POOL_MAX_CONNS", "16")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.JWT.AccessExpiresIn != 45*time.Minute {
		t.Fatalf("expected 45m expiry, got %v", cfg.JWT.AccessExpiresIn)
	}
	if cfg.Database.ConnectTimeout != 7*time.Second {
		t.Fatalf("expected 7s connect timeout, got %v", cfg.Database.ConnectTimeout)
	}
	if cfg.Database.PoolMaxConns != 16 {
		t.Fatalf("expected pool max 16, got %d", cfg.Database.PoolMaxConns)
	}
}

func TestLoad_IgnoresMalformedNumbers(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_ACCESS_EXPIRES_MINUTES", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.JWT.AccessExpiresIn != 30*time.Minute {
		t.Fatalf("malformed value should fall back to default, got %v", cfg.JWT.AccessExpiresIn)
	}
}

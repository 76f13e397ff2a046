package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
	PoolMinConns   int32
}

type JWTConfig struct {
	Secret          string
	AccessExpiresIn time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	// A missing .env is fine: real deployments inject the environment.
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST"),
		DBPort:         opt("DB_PORT"),
		DBName:         opt("DB_NAME"),
		DBUser:         opt("DB_USER"),
		DBPassword:     opt("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE"),
		ConnectTimeout: durationSeconds(opt("DB_CONNECT_TIMEOUT_SECONDS")),
		PoolMaxConns:   int32Env(opt("DB_POOL_MAX_CONNS")),
		PoolMinConns:   int32Env(opt("DB_POOL_MIN_CONNS")),
	}

	cfg.JWT = JWTConfig{
		Secret:          req("JWT_SECRET"),
		AccessExpiresIn: durationMinutes(opt("JWT_ACCESS_EXPIRES_MINUTES")),
	}
	if cfg.JWT.AccessExpiresIn <= 0 {
		cfg.JWT.AccessExpiresIn = 30 * time.Minute
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func durationSeconds(raw string) time.Duration {
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0
	}
	return time.Duration(v) * time.Second
}

func durationMinutes(raw string) time.Duration {
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0
	}
	return time.Duration(v) * time.Minute
}

func int32Env(raw string) int32 {
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v <= 0 {
		return 0
	}
	return int32(v)
}

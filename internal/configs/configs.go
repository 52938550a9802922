package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	RateLimit              int
	RedisAddr              string
	FlashTTLSeconds        int
	CompletionStatus       string
	Timezone               string
	OTLPEndpoint           string
	ServiceName            string
	Environment            string
	ShutdownTimeoutSeconds int
}

func Load() Config {
	cfg, err := FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	return cfg
}

// FromEnv reads the configuration from environment variables, falling back
// to defaults for unset keys.
func FromEnv() (Config, error) {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")

	rateLimit, err := getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120)
	if err != nil {
		return Config{}, err
	}
	flashTTL, err := getEnvAsInt("FLASH_TTL_SECONDS", 60)
	if err != nil {
		return Config{}, err
	}
	shutdownTimeout, err := getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20)
	if err != nil {
		return Config{}, err
	}

	return Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "tasks.db"),
		RateLimit:              rateLimit,
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		FlashTTLSeconds:        flashTTL,
		CompletionStatus:       getEnv("TASK_COMPLETION_STATUS", "done"),
		Timezone:               getEnv("TIMEZONE", "UTC"),
		OTLPEndpoint:           os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:            getEnv("OTEL_SERVICE_NAME", "task-manager"),
		Environment:            getEnv("ENVIRONMENT", "development"),
		ShutdownTimeoutSeconds: shutdownTimeout,
	}, nil
}

func (cfg Config) Validate() error {
	if cfg.AppURL == "" || cfg.AppURL == ":" {
		return errors.New("APP_HOST/APP_PORT must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.FlashTTLSeconds <= 0 {
		return errors.New("FLASH_TTL_SECONDS must be greater than 0")
	}
	if cfg.CompletionStatus == "" {
		return errors.New("TASK_COMPLETION_STATUS must not be empty")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return fmt.Errorf("TIMEZONE %q is not a known location: %w", cfg.Timezone, err)
	}
	return nil
}

func (cfg Config) Location() *time.Location {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (cfg Config) FlashTTL() time.Duration {
	return time.Duration(cfg.FlashTTLSeconds) * time.Second
}

func (cfg Config) ShutdownTimeout() time.Duration {
	return time.Duration(cfg.ShutdownTimeoutSeconds) * time.Second
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s", key)
		}
		return i, nil
	}
	return defaultVal, nil
}

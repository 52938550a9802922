package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_HOST", "APP_PORT", "DATABASE_DSN", "RATE_LIMIT_PER_MINUTE", "REDIS_ADDR",
		"FLASH_TTL_SECONDS", "TASK_COMPLETION_STATUS", "TIMEZONE", "OTEL_EXPORTER_OTLP_ENDPOINT",
		"OTEL_SERVICE_NAME", "ENVIRONMENT", "SHUTDOWN_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "127.0.0.1:8080", cfg.AppURL)
	assert.Equal(t, "tasks.db", cfg.DatabaseDSN)
	assert.Equal(t, "done", cfg.CompletionStatus)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.OTLPEndpoint)
	assert.Equal(t, time.Minute, cfg.FlashTTL())
	assert.Equal(t, 20*time.Second, cfg.ShutdownTimeout())
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("APP_HOST", "0.0.0.0")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("TASK_COMPLETION_STATUS", "完了")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "10")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.AppURL)
	assert.Equal(t, "完了", cfg.CompletionStatus)
	assert.Equal(t, 10, cfg.RateLimit)
}

func TestFromEnv_InvalidInteger(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "many")

	_, err := FromEnv()
	assert.EqualError(t, err, "invalid integer value for RATE_LIMIT_PER_MINUTE")
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		AppURL:                 "127.0.0.1:8080",
		DatabaseDSN:            "tasks.db",
		RateLimit:              60,
		FlashTTLSeconds:        60,
		CompletionStatus:       "done",
		Timezone:               "UTC",
		ShutdownTimeoutSeconds: 5,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty dsn", mutate: func(c *Config) { c.DatabaseDSN = "" }},
		{name: "zero rate limit", mutate: func(c *Config) { c.RateLimit = 0 }},
		{name: "zero flash ttl", mutate: func(c *Config) { c.FlashTTLSeconds = 0 }},
		{name: "empty completion status", mutate: func(c *Config) { c.CompletionStatus = "" }},
		{name: "zero shutdown timeout", mutate: func(c *Config) { c.ShutdownTimeoutSeconds = 0 }},
		{name: "unknown timezone", mutate: func(c *Config) { c.Timezone = "Mars/Olympus" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

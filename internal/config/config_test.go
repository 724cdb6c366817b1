package config_test

import (
	"testing"
	"time"

	"cortesec-admin/internal/config"

	"github.com/stretchr/testify/assert"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := config.FromEnv(env(map[string]string{
		"BACKEND_URL": "http://backend:8000",
		"JWT_SECRET":  "s3cret",
	}))

	assert.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.BackendTimeout)
	assert.Equal(t, 10, cfg.Audit.BatchSize)
	assert.Equal(t, 5*time.Second, cfg.Audit.FlushInterval)
	assert.Equal(t, 1000, cfg.Audit.MaxQueue)
	assert.Equal(t, "backend", cfg.Audit.Sink)
	assert.False(t, cfg.IsProd())
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := config.FromEnv(env(map[string]string{
		"BACKEND_URL":          "http://backend:8000",
		"JWT_SECRET":           "s3cret",
		"APP_ENV":              "PROD",
		"AUDIT_SINK":           "kafka",
		"KAFKA_BROKER":         "kafka:9092",
		"AUDIT_BATCH_SIZE":     "25",
		"AUDIT_FLUSH_INTERVAL": "2s",
		"CACHE_TTL":            "1m",
	}))

	assert.NoError(t, err)
	assert.True(t, cfg.IsProd())
	assert.Equal(t, 25, cfg.Audit.BatchSize)
	assert.Equal(t, 2*time.Second, cfg.Audit.FlushInterval)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
}

func TestFromEnv_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing backend", map[string]string{"JWT_SECRET": "x"}},
		{"missing secret", map[string]string{"BACKEND_URL": "http://b"}},
		{"bad batch size", map[string]string{"BACKEND_URL": "http://b", "JWT_SECRET": "x", "AUDIT_BATCH_SIZE": "diez"}},
		{"bad duration", map[string]string{"BACKEND_URL": "http://b", "JWT_SECRET": "x", "CACHE_TTL": "-1s"}},
		{"kafka without broker", map[string]string{"BACKEND_URL": "http://b", "JWT_SECRET": "x", "AUDIT_SINK": "kafka"}},
		{"unknown sink", map[string]string{"BACKEND_URL": "http://b", "JWT_SECRET": "x", "AUDIT_SINK": "s3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.FromEnv(env(tt.env))
			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	l, err := config.NewLogger(config.Config{AppEnv: "prod", LogLevel: "warn"})
	assert.NoError(t, err)
	assert.False(t, l.Core().Enabled(-1))
	assert.True(t, l.Core().Enabled(1))
}

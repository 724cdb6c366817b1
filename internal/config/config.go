package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	BackendURL     string
	BackendTimeout time.Duration
	ServiceToken   string

	JWTSecret string
	RedisAddr string
	CacheTTL  time.Duration

	RBACModelPath  string
	RBACPolicyPath string

	Audit AuditConfig
}

type AuditConfig struct {
	Sink          string
	KafkaBroker   string
	Topic         string
	BatchSize     int
	FlushInterval time.Duration
	MaxQueue      int
}

// Load reads .env when present and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration from getenv. Missing values take their
// defaults; BACKEND_URL and JWT_SECRET are required.
func FromEnv(getenv func(string) string) (Config, error) {
	r := reader{getenv: getenv}

	cfg := Config{
		Port:     r.str("PORT", "3000"),
		AppEnv:   strings.ToLower(r.str("APP_ENV", "dev")),
		LogLevel: r.str("LOG_LEVEL", "info"),

		BackendURL:     r.str("BACKEND_URL", ""),
		BackendTimeout: r.duration("BACKEND_TIMEOUT", 15*time.Second),
		ServiceToken:   r.str("BACKEND_SERVICE_TOKEN", ""),

		JWTSecret: r.str("JWT_SECRET", ""),
		RedisAddr: r.str("REDIS_ADDR", ""),
		CacheTTL:  r.duration("CACHE_TTL", 5*time.Minute),

		RBACModelPath:  r.str("RBAC_MODEL_PATH", "internal/rbac/infra/model.conf"),
		RBACPolicyPath: r.str("RBAC_POLICY_PATH", "internal/rbac/infra/policy.csv"),

		Audit: AuditConfig{
			Sink:          strings.ToLower(r.str("AUDIT_SINK", "backend")),
			KafkaBroker:   r.str("KAFKA_BROKER", ""),
			Topic:         r.str("AUDIT_TOPIC", "audit.frontend"),
			BatchSize:     r.integer("AUDIT_BATCH_SIZE", 10),
			FlushInterval: r.duration("AUDIT_FLUSH_INTERVAL", 5*time.Second),
			MaxQueue:      r.integer("AUDIT_MAX_QUEUE", 1000),
		},
	}

	if r.err != nil {
		return Config{}, r.err
	}
	if cfg.BackendURL == "" {
		return Config{}, fmt.Errorf("BACKEND_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	switch cfg.Audit.Sink {
	case "backend", "log":
	case "kafka":
		if cfg.Audit.KafkaBroker == "" {
			return Config{}, fmt.Errorf("KAFKA_BROKER is required when AUDIT_SINK=kafka")
		}
	default:
		return Config{}, fmt.Errorf("AUDIT_SINK must be backend, kafka or log, got %q", cfg.Audit.Sink)
	}
	return cfg, nil
}

func (c Config) IsProd() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production"
}

// reader keeps the first parse error so FromEnv can report it once.
type reader struct {
	getenv func(string) string
	err    error
}

func (r *reader) str(key, def string) string {
	if v := strings.TrimSpace(r.getenv(key)); v != "" {
		return v
	}
	return def
}

func (r *reader) integer(key string, def int) int {
	v := strings.TrimSpace(r.getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		r.fail(fmt.Errorf("%s must be a positive integer, got %q", key, v))
		return def
	}
	return n
}

func (r *reader) duration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(r.getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		r.fail(fmt.Errorf("%s must be a positive duration, got %q", key, v))
		return def
	}
	return d
}

func (r *reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

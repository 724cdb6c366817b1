package app

import (
	"context"
	"net/http"

	"cortesec-admin/internal/audit"
	"cortesec-admin/internal/config"
	"cortesec-admin/internal/messaging/kafka/producer"
	"cortesec-admin/internal/metrics"
	"cortesec-admin/internal/middleware"
	"cortesec-admin/internal/rbac"
	"cortesec-admin/internal/rbac/infra"
	"cortesec-admin/internal/role"
	"cortesec-admin/internal/shared/backend"
	"cortesec-admin/internal/shared/cache"
	"cortesec-admin/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const serviceName = "cortesec-admin"

// App is the wired console: its router plus what must be released on exit.
type App struct {
	Router   *gin.Engine
	Recorder *audit.Recorder

	closers []func() error
}

// Close releases the Redis and Kafka connections. The recorder is closed
// separately, after the HTTP server stops.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			zap.L().Warn("close dependency failed", zap.Error(err))
		}
	}
}

func BuildApp(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	a := &App{}

	// 1. Setup Infrastructure
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics, err := metrics.NewHTTP(registry)
	if err != nil {
		return nil, err
	}
	auditMetrics, err := audit.NewMetrics(registry)
	if err != nil {
		return nil, err
	}

	client, err := backend.NewClient(cfg.BackendURL, cfg.BackendTimeout, logger)
	if err != nil {
		return nil, err
	}

	var (
		rdb       *redis.Client
		store     cache.Cache
		expansion role.ExpansionStore
	)
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, rdb.Close)
		store = cache.NewRedis(rdb)
		expansion = role.NewRedisExpansionStore(rdb)
	} else {
		logger.Info("REDIS_ADDR not set, using in-memory cache")
		store = cache.NewMemory(cfg.CacheTTL)
		expansion = role.NewMemoryExpansionStore()
	}
	loader := cache.NewLoader(store, cfg.CacheTTL, logger)

	sink, err := buildAuditSink(cfg, client, logger, a)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Recorder = audit.NewRecorder(sink, audit.Config{
		BatchSize: cfg.Audit.BatchSize,
		Interval:  cfg.Audit.FlushInterval,
		MaxQueue:  cfg.Audit.MaxQueue,
	}, auditMetrics, logger)
	a.Recorder.Start(ctx)

	// 2. RBAC Core
	enforcer, err := infra.NewEnforcer(cfg.RBACModelPath, cfg.RBACPolicyPath)
	if err != nil {
		a.Close()
		return nil, err
	}
	rbacService := rbac.NewService(enforcer, logger)

	// 3. Router
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), httpMetrics.Middleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "service": serviceName})
	})
	router.GET("/metrics", metrics.Handler(registry))

	api := router.Group("/api/v1")
	api.Use(
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.ContextLogger(logger),
		middleware.Idempotency(rdb),
		audit.RecordMutations(a.Recorder),
	)

	registerModules(api, modules{
		client:    client,
		loader:    loader,
		expansion: expansion,
		rbac:      rbacService,
		recorder:  a.Recorder,
		logger:    logger,
	})

	a.Router = router
	return a, nil
}

func buildAuditSink(cfg config.Config, client *backend.Client, logger *zap.Logger, a *App) (audit.Sink, error) {
	switch cfg.Audit.Sink {
	case "kafka":
		writer, err := connection.ConnectKafkaWithRetry(cfg.Audit.KafkaBroker, cfg.Audit.Topic, 5)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, writer.Close)
		return audit.NewKafkaSink(producer.NewPublisher(writer), serviceName), nil
	case "log":
		return audit.NewLogSink(logger), nil
	default:
		return audit.NewHTTPSink(client, cfg.ServiceToken), nil
	}
}

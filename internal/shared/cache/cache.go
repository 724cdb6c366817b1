package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultTTL is used for master data lists (role types, cargos, ...).
const DefaultTTL = 30 * time.Minute

//go:generate mockgen -source=cache.go -destination=mock/cache_mock.go -package=mock
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Key builds "<prefix>:<scope>:<tenant>" keys so tenants never share entries.
func Key(prefix, scope, tenant string) string {
	if tenant == "" {
		tenant = "default"
	}
	return prefix + ":" + scope + ":" + tenant
}

// Loader reads through c, collapsing concurrent misses on the same key.
type Loader struct {
	cache  Cache
	sf     singleflight.Group
	ttl    time.Duration
	logger *zap.Logger
}

func NewLoader(c Cache, ttl time.Duration, logger ...*zap.Logger) *Loader {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	l := zap.L().Named("cache.loader")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cache.loader")
	}
	return &Loader{cache: c, ttl: ttl, logger: l}
}

// Invalidate drops keys; failures are logged, never returned, so a cache
// outage does not fail the mutation that triggered it.
func (l *Loader) Invalidate(ctx context.Context, keys ...string) {
	if l == nil || l.cache == nil || len(keys) == 0 {
		return
	}
	if err := l.cache.Del(ctx, keys...); err != nil {
		l.logger.Error("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

// GetOrLoad returns the cached JSON value at key, or calls load and stores
// its result. A nil loader always calls load.
func GetOrLoad[T any](ctx context.Context, l *Loader, key string, load func(ctx context.Context) (T, error)) (T, error) {
	if l == nil || l.cache == nil {
		return load(ctx)
	}

	if raw, ok, err := l.cache.Get(ctx, key); err == nil && ok {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			return v, nil
		}
	} else if err != nil {
		l.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	v, err, _ := l.sf.Do(key, func() (interface{}, error) {
		res, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if data, err := json.Marshal(res); err == nil {
			if err := l.cache.Set(ctx, key, data, l.ttl); err != nil {
				l.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
		return res, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

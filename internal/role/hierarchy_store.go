package role

import (
	"context"
	"sort"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// expandedTTL keeps a user's tree layout for a month of inactivity.
const expandedTTL = 30 * 24 * time.Hour

// ExpansionStore keeps the set of expanded hierarchy nodes per key.
//
//go:generate mockgen -source=hierarchy_store.go -destination=mock/hierarchy_store_mock.go -package=mock
type ExpansionStore interface {
	Members(ctx context.Context, key string) ([]string, error)
	// Toggle flips id in the set and reports whether it is now expanded.
	Toggle(ctx context.Context, key, id string) (bool, error)
	Replace(ctx context.Context, key string, ids []string) error
	Clear(ctx context.Context, key string) error
}

type redisExpansionStore struct {
	rdb *redis.Client
}

func NewRedisExpansionStore(rdb *redis.Client) ExpansionStore {
	return &redisExpansionStore{rdb: rdb}
}

func (s *redisExpansionStore) Members(ctx context.Context, key string) ([]string, error) {
	ids, err := s.rdb.SMembers(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *redisExpansionStore) Toggle(ctx context.Context, key, id string) (bool, error) {
	removed, err := s.rdb.SRem(ctx, key, id).Result()
	if err != nil {
		return false, err
	}
	if removed > 0 {
		return false, nil
	}
	if err := s.rdb.SAdd(ctx, key, id).Err(); err != nil {
		return false, err
	}
	if err := s.rdb.Expire(ctx, key, expandedTTL).Err(); err != nil {
		return true, err
	}
	return true, nil
}

func (s *redisExpansionStore) Replace(ctx context.Context, key string, ids []string) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(ids) > 0 {
			members := make([]interface{}, len(ids))
			for i, id := range ids {
				members[i] = id
			}
			pipe.SAdd(ctx, key, members...)
			pipe.Expire(ctx, key, expandedTTL)
		}
		return nil
	})
	return err
}

func (s *redisExpansionStore) Clear(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

type memoryExpansionStore struct {
	mu    sync.Mutex
	items *gocache.Cache
}

// NewMemoryExpansionStore is used when Redis is not configured; state is
// lost on restart.
func NewMemoryExpansionStore() ExpansionStore {
	return &memoryExpansionStore{items: gocache.New(expandedTTL, time.Hour)}
}

func (s *memoryExpansionStore) set(key string) map[string]struct{} {
	if v, ok := s.items.Get(key); ok {
		return v.(map[string]struct{})
	}
	return map[string]struct{}{}
}

func (s *memoryExpansionStore) Members(_ context.Context, key string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.set(key)
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *memoryExpansionStore) Toggle(_ context.Context, key, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.set(key)
	_, expanded := set[id]
	if expanded {
		delete(set, id)
	} else {
		set[id] = struct{}{}
	}
	s.items.SetDefault(key, set)
	return !expanded, nil
}

func (s *memoryExpansionStore) Replace(_ context.Context, key string, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	s.items.SetDefault(key, set)
	return nil
}

func (s *memoryExpansionStore) Clear(_ context.Context, key string) error {
	s.items.Delete(key)
	return nil
}

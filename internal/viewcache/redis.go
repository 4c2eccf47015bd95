package viewcache

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisKeyPrefix = "viewcache:"

// RedisStore shares rendered views across replicas. Cache operations are best
// effort; a redis failure degrades to a recompute, never to a request failure.
type RedisStore struct {
	client  *redis.Client
	log     *zap.Logger
	timeout time.Duration
}

func NewRedisStore(client *redis.Client, log *zap.Logger) *RedisStore {
	return &RedisStore{
		client:  client,
		log:     log.Named("viewcache.redis"),
		timeout: 250 * time.Millisecond,
	}
}

func (s *RedisStore) Get(path string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	payload, err := s.client.Get(ctx, redisKeyPrefix+path).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn("cache read failed", zap.String("path", path), zap.Error(err))
		}
		return nil, false
	}
	return payload, true
}

func (s *RedisStore) Set(path string, payload []byte, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.client.Set(ctx, redisKeyPrefix+path, payload, ttl).Err(); err != nil {
		s.log.Warn("cache write failed", zap.String("path", path), zap.Error(err))
	}
}

func (s *RedisStore) Invalidate(path string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.client.Del(ctx, redisKeyPrefix+path).Err(); err != nil {
		s.log.Warn("cache invalidate failed", zap.String("path", path), zap.Error(err))
	}
}

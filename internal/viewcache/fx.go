package viewcache

import (
	"context"

	"github.com/finboard/finboard/internal/config"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("viewcache",
	fx.Provide(NewStore),
	fx.Provide(func(store Store) Invalidator { return store }),
)

// NewStore picks the cache backend from configuration. The redis client is
// only dialed when that backend is selected.
func NewStore(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) Store {
	if cfg.CacheBackend != config.CacheBackendRedis {
		return NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
	}

	return NewRedisStore(client, log)
}

package verification

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/fatflowers/gemcashier/internal/platform/cache"
	"github.com/fatflowers/gemcashier/pkg/config"
)

// NewCache connects the result cache when redis.url is set and returns nil
// otherwise.
func NewCache(cfg *config.Config, lc fx.Lifecycle, log *zap.SugaredLogger) (Cache, error) {
	if cfg.Redis.URL == "" {
		log.Infow("verification cache disabled")
		return nil, nil
	}
	c, err := cache.NewRedisCache(context.Background(), cfg.Redis.URL, "gemcashier:verify:")
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{OnStop: func(context.Context) error { return c.Close() }})
	log.Infow("verification cache enabled", "ttl", cfg.Redis.ResultTTL.String())
	return c, nil
}

var Module = fx.Options(
	fx.Provide(NewCache),
	fx.Provide(NewService),
)

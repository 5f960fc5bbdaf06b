package cookiecache

import (
	"context"

	"github.com/hubgate/hubgate/pkg/config"
	"github.com/hubgate/hubgate/pkg/hub"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func ProvideCache() *Cache { return New() }

func ProvideJanitor(cache *Cache, s config.Settings, log *zap.Logger) *Janitor {
	return NewJanitor(cache, s.Cache.MaxAge(), log)
}

func registerHooks(lc fx.Lifecycle, j *Janitor) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error { j.Start(); return nil },
		OnStop:  func(context.Context) error { j.Stop(); return nil },
	})
}

var Module = fx.Options(
	fx.Provide(ProvideCache),
	fx.Provide(func(c *Cache) hub.Cache { return c }),
	fx.Provide(ProvideJanitor),
	fx.Invoke(registerHooks),
)

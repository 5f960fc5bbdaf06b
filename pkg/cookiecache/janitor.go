// cookiecache/janitor.go
package cookiecache

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Janitor clears the whole cache on a fixed interval, bounding how long a
// revoked session stays trusted. A zero interval leaves entries alive for
// the process lifetime.
type Janitor struct {
	cache    *Cache
	interval time.Duration
	log      *zap.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func NewJanitor(cache *Cache, interval time.Duration, log *zap.Logger) *Janitor {
	return &Janitor{cache: cache, interval: interval, log: log}
}

// Start spawns the clear loop. No-op when the interval is zero.
func (j *Janitor) Start() {
	if j.interval <= 0 {
		j.log.Info("cookie cache expiry disabled; entries live until shutdown")
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel
	j.done = make(chan struct{})

	go func() {
		defer close(j.done)
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				n := j.cache.Len()
				j.cache.Clear()
				cacheClears.Inc()
				j.log.Debug("cookie cache cleared", zap.Int("dropped", n))
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (j *Janitor) Stop() {
	if j.cancel == nil {
		return
	}
	j.cancel()
	<-j.done
}

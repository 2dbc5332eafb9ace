package hub

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Refresher rebuilds the cached dataset on a cron schedule.
type Refresher struct {
	engine *cron.Cron
	cache  *Cache
	logger *zap.Logger
}

// NewRefresher registers a refresh job for spec. The job runs once Start is called.
func NewRefresher(cache *Cache, spec string, logger *zap.Logger) (*Refresher, error) {
	r := &Refresher{
		engine: cron.New(cron.WithLocation(time.Local)),
		cache:  cache,
		logger: logger,
	}

	if _, err := r.engine.AddFunc(spec, r.refresh); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}
	return r, nil
}

func (r *Refresher) refresh() {
	start := time.Now()
	d, err := r.cache.Refresh(context.Background())
	if err != nil {
		r.logger.Error("Scheduled refresh failed", zap.Error(err))
		return
	}
	r.logger.Info("Scheduled refresh completed",
		zap.Int("lessons", len(d.Lessons)),
		zap.Duration("elapsed", time.Since(start)),
	)
}

// Start runs the scheduler in the background.
func (r *Refresher) Start() {
	r.engine.Start()
}

// Stop halts the scheduler and waits for a running refresh to finish.
func (r *Refresher) Stop() {
	<-r.engine.Stop().Done()
}

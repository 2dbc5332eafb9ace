package hub

import (
	"context"
	"sync"
	"time"

	"tvgu-data-hub/feature/hub/models"

	"golang.org/x/sync/singleflight"
)

const cacheKey = "dataset"

// Runner builds a fresh dataset.
type Runner interface {
	Run(ctx context.Context) (*Result, error)
}

// Cache holds the most recent dataset for a TTL.
type Cache struct {
	runner Runner
	ttl    time.Duration

	mu      sync.RWMutex
	dataset *models.Dataset
	built   time.Time

	sf singleflight.Group
}

// NewCache creates a cache in front of runner. A zero TTL disables caching.
func NewCache(runner Runner, ttl time.Duration) *Cache {
	return &Cache{runner: runner, ttl: ttl}
}

func (c *Cache) fresh() (*models.Dataset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.dataset == nil || c.ttl == 0 || time.Since(c.built) > c.ttl {
		return nil, false
	}
	return c.dataset, true
}

// Get returns the cached dataset, building it when missing or expired.
// Concurrent callers share one build.
func (c *Cache) Get(ctx context.Context) (*models.Dataset, error) {
	if d, ok := c.fresh(); ok {
		return d, nil
	}

	result, err, _ := c.sf.Do(cacheKey, func() (interface{}, error) {
		if d, ok := c.fresh(); ok {
			return d, nil
		}
		return c.build(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Dataset), nil
}

// Refresh drops the cached dataset and rebuilds it.
// On failure the previous dataset is gone.
func (c *Cache) Refresh(ctx context.Context) (*models.Dataset, error) {
	c.Invalidate()

	result, err, _ := c.sf.Do(cacheKey, func() (interface{}, error) {
		return c.build(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Dataset), nil
}

// Invalidate removes the cached dataset.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.dataset = nil
	c.mu.Unlock()
}

func (c *Cache) build(ctx context.Context) (*models.Dataset, error) {
	res, err := c.runner.Run(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.dataset = res.Dataset
	c.built = time.Now()
	c.mu.Unlock()

	return res.Dataset, nil
}

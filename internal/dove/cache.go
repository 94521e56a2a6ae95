package dove

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/patrickmn/go-cache"

	"bellmetal/doveguide/internal/metrics"
)

// Cache keeps parsed guides in memory so repeated loads of an unchanged
// source skip re-parsing. File keys include mtime and size, so a replaced
// export misses naturally.
type Cache struct {
	cache   *cache.Cache
	loader  *Loader
	metrics *metrics.MetricsRegistry
}

// NewCache creates a guide cache with the given TTL. reg may be nil.
func NewCache(ttl time.Duration, loader *Loader, reg *metrics.MetricsRegistry) *Cache {
	return &Cache{
		cache:   cache.New(ttl, 2*ttl),
		loader:  loader,
		metrics: reg,
	}
}

// GetOrLoad returns the cached guide for key, or runs load and caches the
// result for the default TTL.
func (c *Cache) GetOrLoad(source, key string, load func() (*Doves, error)) (*Doves, error) {
	if val, found := c.cache.Get(key); found {
		c.hit(source)
		return val.(*Doves), nil
	}
	c.miss(source)

	doves, err := load()
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, doves, cache.DefaultExpiration)
	return doves, nil
}

// LoadFile loads a CSV export from disk through the cache.
func (c *Cache) LoadFile(ctx context.Context, path string) (*Doves, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat export: %w", err)
	}
	key := fmt.Sprintf("%s|%d|%d", path, info.ModTime().UnixNano(), info.Size())

	return c.GetOrLoad(path, key, func() (*Doves, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open export: %w", err)
		}
		defer f.Close()
		return c.loader.Load(ctx, f, path)
	})
}

func (c *Cache) hit(source string) {
	if c.metrics != nil {
		c.metrics.CacheHitsTotal.WithLabelValues(source).Inc()
	}
}

func (c *Cache) miss(source string) {
	if c.metrics != nil {
		c.metrics.CacheMissesTotal.WithLabelValues(source).Inc()
	}
}

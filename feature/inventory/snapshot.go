package inventory

import (
	"context"
	"sync"
	"time"

	"shortage-tracker/feature/inventory/models"

	"golang.org/x/sync/singleflight"
)

// snapshotCache holds the last full inventory snapshot with a TTL.
// Engine operations always run against a snapshot, never the live table;
// the cache only spares back-to-back reads from refetching. Uses
// singleflight so concurrent expirations trigger a single store read.
type snapshotCache struct {
	mu      sync.RWMutex
	records []models.Record
	built   time.Time
	ttl     time.Duration
	sf      singleflight.Group
}

func newSnapshotCache(ttl time.Duration) *snapshotCache {
	return &snapshotCache{ttl: ttl}
}

func (c *snapshotCache) expired() bool {
	if c.ttl == 0 {
		return true
	}
	return time.Since(c.built) > c.ttl
}

// get returns the cached snapshot, or loads a fresh one through fetch.
func (c *snapshotCache) get(ctx context.Context, fetch func(context.Context) ([]models.Record, error)) ([]models.Record, error) {
	c.mu.RLock()
	if !c.expired() {
		records := c.records
		c.mu.RUnlock()
		return records, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.sf.Do("snapshot", func() (interface{}, error) {
		// Double-check after winning the singleflight slot.
		c.mu.RLock()
		if !c.expired() {
			records := c.records
			c.mu.RUnlock()
			return records, nil
		}
		c.mu.RUnlock()

		records, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.records = records
		c.built = time.Now()
		c.mu.Unlock()

		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.Record), nil
}

// invalidate drops the cached snapshot. Called after every mutation so the
// next validation never runs against data this process knows is stale.
func (c *snapshotCache) invalidate() {
	c.mu.Lock()
	c.built = time.Time{}
	c.records = nil
	c.mu.Unlock()
}

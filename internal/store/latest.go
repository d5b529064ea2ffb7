package store

import (
	"errors"
	"sync"

	"github.com/breatheaware/aqi-service/internal/aqi"
)

// ErrEmpty is returned when no assessment has been cached yet.
var ErrEmpty = errors.New("no assessment available yet")

// LatestCache is a concurrency-safe holder for the single most recent
// assessment. Only the latest value is retained; there is no history.
type LatestCache struct {
	mu      sync.RWMutex
	current *aqi.Assessment
}

// NewLatestCache creates an empty cache.
func NewLatestCache() *LatestCache {
	return &LatestCache{}
}

// Put replaces the cached assessment.
func (c *LatestCache) Put(a aqi.Assessment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = &a
}

// Latest returns the cached assessment, or ErrEmpty before the first Put.
func (c *LatestCache) Latest() (aqi.Assessment, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.current == nil {
		return aqi.Assessment{}, ErrEmpty
	}
	return *c.current, nil
}

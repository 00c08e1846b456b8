package schedule

import (
	"sync"
	"time"

	"github.com/Solara-Media-LLC/helios/internal/model"
)

// DefaultResultTTL bounds how stale a viewer-facing answer may be between
// monitor ticks.
const DefaultResultTTL = 5 * time.Second

// ResultCache holds the most recent ResolutionResult. Entries are immutable
// and swapped whole under the lock, so an in-flight reader can never observe
// a half-written result.
type ResultCache struct {
	ttl   time.Duration
	clock Clock

	mu       sync.RWMutex
	result   *model.ResolutionResult
	storedAt time.Time
}

func NewResultCache(ttl time.Duration, clock Clock) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultResultTTL
	}
	return &ResultCache{ttl: ttl, clock: clock}
}

// Get returns the cached result and whether it is still within the TTL.
func (c *ResultCache) Get() (*model.ResolutionResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.result == nil {
		return nil, false
	}
	return c.result, c.clock.Now().Sub(c.storedAt) <= c.ttl
}

// Last returns whatever the cache holds regardless of age. Used to serve
// stale-but-available answers when a refresh fails.
func (c *ResultCache) Last() *model.ResolutionResult {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.result
}

// Put atomically replaces the cached result.
func (c *ResultCache) Put(result model.ResolutionResult) {
	c.mu.Lock()
	c.result = &result
	c.storedAt = c.clock.Now()
	c.mu.Unlock()
}

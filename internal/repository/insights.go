package repository

import (
	"fmt"
	"sync"

	"monastery-guide/internal/domain"
)

// InsightKey identifies one topic tab of one catalog entity.
type InsightKey struct {
	EntityID int
	Topic    domain.TopicKind
}

func (k InsightKey) String() string {
	return fmt.Sprintf("%d-%s", k.EntityID, k.Topic)
}

// InsightCache maps insight keys to rendered HTML. Entries never expire and
// are written once.
type InsightCache struct {
	mu      sync.RWMutex
	entries map[InsightKey]string
}

func NewInsightCache() *InsightCache {
	return &InsightCache{entries: make(map[InsightKey]string)}
}

func (c *InsightCache) Get(key InsightKey) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Put stores html for key unless an entry already exists, and returns the
// value now cached.
func (c *InsightCache) Put(key InsightKey, html string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[key]; ok {
		return existing
	}
	c.entries[key] = html
	return html
}

func (c *InsightCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

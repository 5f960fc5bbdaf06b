// cookiecache/cache.go
package cookiecache

import (
	"sync"

	"github.com/hubgate/hubgate/pkg/hub"
)

// Cache maps opaque cookie values to verification outcomes. A stored nil
// user means the hub was asked and said "no such session"; that negative
// answer is worth caching too, so garbage cookies do not hammer the hub.
//
// Entries are only ever removed wholesale by Clear; there is no per-entry
// eviction.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*hub.User
}

func New() *Cache {
	return &Cache{entries: make(map[string]*hub.User)}
}

// Get returns the cached outcome for a cookie value. ok distinguishes a
// cached Absent (nil, true) from a plain miss (nil, false).
func (c *Cache) Get(cookieValue string) (*hub.User, bool) {
	c.mu.RLock()
	u, ok := c.entries[cookieValue]
	c.mu.RUnlock()
	return u, ok
}

// Set records an outcome. nil caches "no such session".
func (c *Cache) Set(cookieValue string, u *hub.User) {
	c.mu.Lock()
	c.entries[cookieValue] = u
	c.mu.Unlock()
}

// Clear atomically replaces the contents with an empty map. Lookups racing
// the swap see either the old map or an empty one; both are fine.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*hub.User)
	c.mu.Unlock()
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

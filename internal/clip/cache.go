package clip

import (
	"path/filepath"

	gocache "github.com/patrickmn/go-cache"
)

// Factory builds a handle for a clip located at locator. The handle should start
// loading in the background.
type Factory func(id ID, locator string) Handle

// Cache memoizes one handle per clip ID. Entries never expire.
type Cache struct {
	basePath string
	factory  Factory
	items    *gocache.Cache
}

// NewCache creates a cache resolving clips under basePath.
func NewCache(basePath string, factory Factory) *Cache {
	return &Cache{
		basePath: basePath,
		factory:  factory,
		items:    gocache.New(gocache.NoExpiration, 0),
	}
}

// Get returns the handle for id, creating it on first use.
func (c *Cache) Get(id ID) Handle {
	if h, ok := c.items.Get(string(id)); ok {
		return h.(Handle)
	}

	h := c.factory(id, c.Locator(id))
	if err := c.items.Add(string(id), h, gocache.NoExpiration); err != nil {
		// Lost a race with another Get; keep the first handle
		if existing, ok := c.items.Get(string(id)); ok {
			return existing.(Handle)
		}
	}
	return h
}

// Preload creates the handles for ids so their resources start loading.
func (c *Cache) Preload(ids ...ID) {
	for _, id := range ids {
		c.Get(id)
	}
}

// Locator returns the resource path for id.
func (c *Cache) Locator(id ID) string {
	return filepath.Join(c.basePath, string(id))
}

// Len returns the number of cached handles.
func (c *Cache) Len() int {
	return c.items.ItemCount()
}

// WithVolume wraps f so new handles start at level.
func WithVolume(f Factory, level float64) Factory {
	return func(id ID, locator string) Handle {
		h := f(id, locator)
		h.SetVolume(level)
		return h
	}
}

package database

import "github.com/bradfitz/gomemcache/memcache"

// Cache keeps short-lived denormalized values, follow counts
// mostly, out of the storage hot path via Memcached.
type Cache struct {
	mem *memcache.Client
}

// NewCache returns a cache client; an empty address disables
// caching and every operation becomes a no-op.
func NewCache(address string) *Cache {
	if address == "" {
		return &Cache{}
	}

	return &Cache{mem: memcache.New(address)}
}

// Set permits to set a temporary value on the cache
func (c *Cache) Set(key string, value []byte, seconds int32) {
	if c == nil || c.mem == nil {
		return
	}

	c.mem.Set(&memcache.Item{
		Key:        key,
		Value:      value,
		Expiration: seconds,
	})
}

// Get returns the cached value, if any
func (c *Cache) Get(key string) ([]byte, bool) {
	if c == nil || c.mem == nil {
		return nil, false
	}

	item, err := c.mem.Get(key)
	if err != nil {
		return nil, false
	}

	return item.Value, true
}

// Delete drops a key, a missing key is fine
func (c *Cache) Delete(key string) {
	if c == nil || c.mem == nil {
		return
	}

	c.mem.Delete(key)
}

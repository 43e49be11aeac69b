// Package cache provides a small generic LRU cache with a soft limit.
//
//	c := cache.New[string, int](100)
//	value := c.GetOrCreate("key", func() int { return expensive("key") })
//
// When the cache grows past its soft limit, the least recently used
// quarter of the entries is evicted in one pass.
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache

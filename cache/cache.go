package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const tableListKey = "schema:tables"

type Cache struct {
	cache *cache.Cache
}

func New(defaultTTL time.Duration) *Cache {
	if defaultTTL <= 0 {
		defaultTTL = 5 * time.Minute
	}
	return &Cache{
		cache: cache.New(defaultTTL, 10*time.Minute),
	}
}

// GetTables returns the cached schema table list, if present.
func (c *Cache) GetTables() ([]string, bool) {
	v, found := c.cache.Get(tableListKey)
	if !found {
		return nil, false
	}
	tables, ok := v.([]string)
	return tables, ok
}

func (c *Cache) SetTables(tables []string) {
	c.cache.Set(tableListKey, tables, cache.DefaultExpiration)
}

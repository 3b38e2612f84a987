package mask

import "sync"

// Cache memoises compiled masks by format and notations. The zero value is
// ready to use and a Cache may be shared between goroutines.
type Cache struct {
	mu    sync.RWMutex
	masks map[string]*Mask
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{masks: make(map[string]*Mask)}
}

// Get returns the cached mask for format, compiling it on first use. Compile
// errors are not cached.
func (c *Cache) Get(format string, notations ...Notation) (*Mask, error) {
	key := format + "\x00" + notationKey(notations)

	c.mu.RLock()
	m, ok := c.masks[key]
	c.mu.RUnlock()
	if ok {
		return m, nil
	}

	compiled, err := Compile(format, notations...)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.masks == nil {
		c.masks = make(map[string]*Mask)
	}
	if existing, ok := c.masks[key]; ok {
		return existing, nil
	}
	c.masks[key] = compiled
	return compiled, nil
}

// Len reports the number of cached masks.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.masks)
}

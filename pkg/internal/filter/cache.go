package filter

import (
	"sync"
	"sync/atomic"
)

// Key identifies one filter design. High is zero for low and high pass.
type Key struct {
	Kind  Kind
	Order int
	Low   float64
	High  float64
}

func keyOf(kind Kind, order int, corners []float64) Key {
	k := Key{Kind: kind, Order: order}
	if len(corners) > 0 {
		k.Low = corners[0]
	}
	if len(corners) > 1 {
		k.High = corners[1]
	}
	return k
}

type entry struct {
	once   sync.Once
	coeffs Coefficients
	err    error
}

// Cache memoizes Butterworth designs. Each key is designed exactly once even
// when many goroutines ask for it at the same time; every caller then sees
// the same coefficients. The cache is unbounded.
type Cache struct {
	mu      sync.Mutex
	entries map[Key]*entry

	designs atomic.Uint64
	hits    atomic.Uint64
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[Key]*entry)}
}

// Butterworth returns the cached design for (order, kind, corners), designing
// it on first use. The returned slices are copies.
func (c *Cache) Butterworth(order int, kind Kind, corners ...float64) (Coefficients, error) {
	key := keyOf(kind, order, corners)

	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	c.mu.Unlock()

	if ok {
		c.hits.Add(1)
	}
	e.once.Do(func() {
		e.coeffs, e.err = Butterworth(order, kind, corners...)
		c.designs.Add(1)
	})
	if e.err != nil {
		return Coefficients{}, e.err
	}
	return Coefficients{
		B: append([]float64(nil), e.coeffs.B...),
		A: append([]float64(nil), e.coeffs.A...),
	}, nil
}

// Designs returns how many filters were actually designed.
func (c *Cache) Designs() uint64 { return c.designs.Load() }

// Hits returns how many lookups found an existing entry.
func (c *Cache) Hits() uint64 { return c.hits.Load() }

// Len returns the number of cached keys.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

package cache

import (
	"github.com/dgraph-io/ristretto/v2"
	"github.com/pkg/errors"
)

// RistrettoCache is a concurrent, admission-controlled cache. Writes are
// buffered: a Put may not be visible to Get until Wait returns, and may be
// rejected outright under contention.
type RistrettoCache struct {
	c *ristretto.Cache[string, interface{}]
}

func NewRistrettoCache(maxItems int64) (*RistrettoCache, error) {
	if maxItems < 1 {
		maxItems = 1
	}
	c, err := ristretto.NewCache(&ristretto.Config[string, interface{}]{
		NumCounters:        maxItems * 10,
		MaxCost:            maxItems,
		BufferItems:        64,
		Metrics:            true,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating ristretto cache")
	}
	return &RistrettoCache{c: c}, nil
}

func (r *RistrettoCache) Get(key string) (interface{}, bool) {
	return r.c.Get(key)
}

func (r *RistrettoCache) Put(key string, value interface{}) {
	r.c.Set(key, value, 1)
}

// Len is approximate: it counts admitted keys minus evicted keys.
func (r *RistrettoCache) Len() int {
	m := r.c.Metrics
	if m == nil {
		return 0
	}
	return int(m.KeysAdded() - m.KeysEvicted())
}

func (r *RistrettoCache) Clear() {
	r.c.Clear()
}

func (r *RistrettoCache) Wait() {
	r.c.Wait()
}

func (r *RistrettoCache) Close() {
	r.c.Close()
}

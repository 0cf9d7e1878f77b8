package state

import (
	"fmt"

	"github.com/slideworks/atomix/cas"
	"github.com/slideworks/atomix/grid"
)

// Cache maps configurations to their canonical State. It belongs to a single
// search run and is not safe for concurrent use.
type Cache struct {
	buckets map[cas.Hash][]*State
	size    int
}

func NewCache() *Cache {
	return &Cache{buckets: make(map[cas.Hash][]*State)}
}

// Canonical returns the State registered for cfg, creating and registering a
// fresh one when cfg has not been seen. The boolean is true when the state
// already existed.
func (c *Cache) Canonical(cfg grid.Configuration) (*State, bool, error) {
	h, _, err := cas.HashOf(cfg)
	if err != nil {
		return nil, false, fmt.Errorf("hashing configuration %s: %w", cfg, err)
	}
	for _, s := range c.buckets[h] {
		if s.Config.Equal(cfg) {
			return s, true, nil
		}
	}
	s := New(cfg)
	c.buckets[h] = append(c.buckets[h], s)
	c.size++
	return s, false, nil
}

// Lookup returns the canonical State for cfg without registering anything.
func (c *Cache) Lookup(cfg grid.Configuration) (*State, bool) {
	h, _, err := cas.HashOf(cfg)
	if err != nil {
		return nil, false
	}
	for _, s := range c.buckets[h] {
		if s.Config.Equal(cfg) {
			return s, true
		}
	}
	return nil, false
}

func (c *Cache) Len() int {
	return c.size
}

// Reset forgets every registered state.
func (c *Cache) Reset() {
	c.buckets = make(map[cas.Hash][]*State)
	c.size = 0
}

// Expand returns the canonical successor of s for every single-piece slide
// available on g, in the order produced by g.Successors. The second result
// counts successors that were already known to the cache.
func (c *Cache) Expand(g *grid.Grid, s *State) ([]*State, int, error) {
	moves := g.Successors(s.Config)
	out := make([]*State, 0, len(moves))
	seen := 0
	for _, m := range moves {
		n, existed, err := c.Canonical(m.Result)
		if err != nil {
			return nil, 0, err
		}
		if existed {
			seen++
		}
		out = append(out, n)
	}
	return out, seen, nil
}

package web

import "sync"

type cacheEntry struct {
	hash uint64
	data []byte
}

// cache is a ring of recently sent frames, so that frames a program
// alternates between are only sent once.
type cache struct {
	cache []*cacheEntry
	idx   int
	size  int
	sync.RWMutex
}

func newCache(size int) *cache {
	c := &cache{
		cache: make([]*cacheEntry, size),
		size:  size,
	}
	for i := 0; i < size; i++ {
		c.cache[i] = &cacheEntry{}
	}

	return c
}

// add stores output under hash, evicting the oldest entry, and returns
// its index.
func (c *cache) add(hash uint64, output []byte) int {
	i := c.idx
	c.cache[i].data = output
	c.cache[i].hash = hash

	c.idx = (c.idx + 1) % c.size
	return i
}

// index returns the index of hash, or -1 when it is not cached.
func (c *cache) index(hash uint64) int {
	for i, e := range c.cache {
		if e.hash == hash && len(e.data) > 0 {
			return i
		}
	}

	return -1
}

// sync encodes every cached entry as index, length and data.
func (c *cache) sync() []byte {
	var data []byte
	for i, e := range c.cache {
		if len(e.data) == 0 {
			continue
		}
		data = append(data, uint8(i), uint8(len(e.data)), uint8(len(e.data)>>8))
		data = append(data, e.data...)
	}
	return data
}

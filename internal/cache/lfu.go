package cache

import (
	"container/heap"
	"sync"
)

type cacheItem struct {
	key   string
	value interface{}
	freq  int
	tick  uint64 // last touch, breaks frequency ties in favour of recent keys
	index int
}

type PriorityQueue []*cacheItem

func (pq PriorityQueue) Len() int { return len(pq) }

func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].freq == pq[j].freq {
		return pq[i].tick < pq[j].tick
	}
	return pq[i].freq < pq[j].freq
}

func (pq PriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *PriorityQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*cacheItem)
	item.index = n
	*pq = append(*pq, item)
}

func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[0 : n-1]
	return item
}

// LFUCache evicts the least frequently used key; among keys used equally
// often the one touched longest ago goes first.
type LFUCache struct {
	mu       sync.Mutex
	capacity int
	clock    uint64
	items    map[string]*cacheItem
	queue    PriorityQueue
}

func NewLFUCache(capacity int) *LFUCache {
	if capacity < 1 {
		capacity = 1
	}
	return &LFUCache{
		capacity: capacity,
		items:    make(map[string]*cacheItem, capacity),
		queue:    make(PriorityQueue, 0, capacity),
	}
}

func (c *LFUCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.touch(item)
	return item.value, true
}

func (c *LFUCache) Put(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if item, ok := c.items[key]; ok {
		item.value = value
		c.touch(item)
		return
	}
	if len(c.items) >= c.capacity {
		evicted := heap.Pop(&c.queue).(*cacheItem)
		delete(c.items, evicted.key)
	}
	c.clock++
	item := &cacheItem{key: key, value: value, freq: 1, tick: c.clock}
	c.items[key] = item
	heap.Push(&c.queue, item)
}

func (c *LFUCache) touch(item *cacheItem) {
	c.clock++
	item.freq++
	item.tick = c.clock
	heap.Fix(&c.queue, item.index)
}

func (c *LFUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *LFUCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*cacheItem, c.capacity)
	c.queue = make(PriorityQueue, 0, c.capacity)
}

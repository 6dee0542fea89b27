package cache

import "sync"

// lru cache
// technically requirement :
// 1.O(1) get element use a key
// 2.O(1) to put element use a key
// 3.fixed size, the least recently used entry leaves first
//
// A hashtable maps the key to its list node; the list head marks the hot
// key and the tail the least recently used one.

type EvictedCallback = func(string, interface{})
type MissCallback = func(string) interface{}

type lruEntry struct {
	key   string
	value interface{}
}

type LruCache struct {
	mu       sync.Mutex
	capacity int64
	onMissed MissCallback
	onEvited EvictedCallback
	maps     map[string]*LinkedListNode
	dList    *List
}

func Default(cap int64) *LruCache {
	return NewLruCache(cap, nil, nil)
}

func NewLruCache(cap int64, tt MissCallback, callback EvictedCallback) *LruCache {
	if cap < 1 {
		cap = 1
	}
	return &LruCache{
		capacity: cap,
		maps:     make(map[string]*LinkedListNode, cap),
		dList:    NewList(),
		onMissed: tt,
		onEvited: callback,
	}
}

func (l *LruCache) AttchMissCaller(caller MissCallback) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onMissed = caller
}

func (l *LruCache) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.maps)
}

func (l *LruCache) Clear() {
	l.mu.Lock()
	old := l.maps
	l.maps = make(map[string]*LinkedListNode, l.capacity)
	l.dList = NewList()
	evicted := l.onEvited
	l.mu.Unlock()

	if evicted != nil {
		for k, v := range old {
			evicted(k, v.Value.(*lruEntry).value)
		}
	}
}

// Get returns the cached value. On a miss the miss callback, if any, loads
// the value outside the lock and the result is cached.
func (l *LruCache) Get(key string) (interface{}, bool) {
	l.mu.Lock()
	if pv, ok := l.maps[key]; ok {
		l.dList.toHead(pv)
		v := pv.Value.(*lruEntry).value
		l.mu.Unlock()
		return v, true
	}
	missed := l.onMissed
	l.mu.Unlock()

	if missed == nil {
		return nil, false
	}
	dt := missed(key)
	if dt == nil {
		return nil, false
	}
	l.Put(key, dt)
	return dt, true
}

func (l *LruCache) Put(key string, value interface{}) {
	l.mu.Lock()
	if n, ok := l.maps[key]; ok {
		n.Value.(*lruEntry).value = value
		l.dList.toHead(n)
		l.mu.Unlock()
		return
	}

	var victim *lruEntry
	if l.dList.Len() >= l.capacity {
		tail := l.dList.Back()
		victim = tail.Value.(*lruEntry)
		l.dList.Remove(tail)
		delete(l.maps, victim.key)
	}
	l.maps[key] = l.dList.PushFront(&lruEntry{key: key, value: value})
	evicted := l.onEvited
	l.mu.Unlock()

	if victim != nil && evicted != nil {
		evicted(victim.key, victim.value)
	}
}

package cache

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trfts/internal/types"
)

var (
	_ types.Cache = (*LruCache)(nil)
	_ types.Cache = (*RistrettoCache)(nil)
	_ types.Cache = (*LFUCache)(nil)
)

func TestLruEviction(t *testing.T) {
	var evicted []string
	l := NewLruCache(2, nil, func(k string, _ interface{}) {
		evicted = append(evicted, k)
	})

	l.Put("kitap", 1)
	l.Put("okul", 2)
	_, ok := l.Get("kitap")
	require.True(t, ok)
	l.Put("ev", 3)

	_, ok = l.Get("okul")
	assert.False(t, ok)
	assert.Equal(t, []string{"okul"}, evicted)
	assert.Equal(t, 2, l.Len())

	v, ok := l.Get("ev")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestLruUpdate(t *testing.T) {
	l := Default(2)
	l.Put("a", 1)
	l.Put("a", 2)

	v, ok := l.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, l.Len())
}

func TestLruMissCallback(t *testing.T) {
	calls := 0
	l := NewLruCache(4, func(k string) interface{} {
		calls++
		if k == "yok" {
			return nil
		}
		return k + "!"
	}, nil)

	v, ok := l.Get("var")
	assert.True(t, ok)
	assert.Equal(t, "var!", v)
	_, _ = l.Get("var")
	assert.Equal(t, 1, calls)

	_, ok = l.Get("yok")
	assert.False(t, ok)
}

func TestLruClear(t *testing.T) {
	var evicted int
	l := NewLruCache(4, nil, func(string, interface{}) { evicted++ })
	l.Put("a", 1)
	l.Put("b", 2)
	l.Clear()

	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 2, evicted)
	l.Put("c", 3)
	assert.Equal(t, 1, l.Len())
}

func TestLruParallel(t *testing.T) {
	l := Default(64)
	wg := sync.WaitGroup{}
	cores := 5
	wg.Add(cores)
	for i := 0; i < cores; i++ {
		go func(seq int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				k := strconv.Itoa((seq * 200) + j)
				l.Put(k, j)
				l.Get(k)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 64, l.Len())
}

func TestListOrder(t *testing.T) {
	d := NewList()
	assert.Nil(t, d.Back())
	a := d.PushBack("a")
	d.PushFront("b")
	assert.Equal(t, "b", d.Front().Value)
	d.toHead(a)
	assert.Equal(t, "a", d.Front().Value)
	assert.Equal(t, "b", d.Back().Value)
	d.Remove(a)
	assert.Equal(t, int64(1), d.Len())
}

func TestRistretto(t *testing.T) {
	r, err := NewRistrettoCache(100)
	require.NoError(t, err)
	defer r.Close()

	r.Put("kitap", []string{"kitap"})
	r.Wait()

	v, ok := r.Get("kitap")
	require.True(t, ok)
	assert.Equal(t, []string{"kitap"}, v)

	r.Clear()
	_, ok = r.Get("kitap")
	assert.False(t, ok)
}

func TestLFUEviction(t *testing.T) {
	c := NewLFUCache(2)
	c.Put("kitap", 1)
	c.Put("ev", 2)
	c.Get("kitap")
	c.Get("kitap")
	c.Put("okul", 3) // ev has the lowest frequency

	_, ok := c.Get("ev")
	assert.False(t, ok)
	v, ok := c.Get("kitap")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, c.Len())

	// okul and a fresh key tie at one use: the older one goes
	c.Put("gel", 4)
	_, ok = c.Get("okul")
	assert.False(t, ok)
	_, ok = c.Get("gel")
	assert.True(t, ok)

	c.Put("kitap", 5)
	v, _ = c.Get("kitap")
	assert.Equal(t, 5, v)

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestLFUParallel(t *testing.T) {
	c := NewLFUCache(16)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(seq int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				k := strconv.Itoa((seq + j) % 32)
				c.Put(k, j)
				c.Get(k)
			}
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 16)
}

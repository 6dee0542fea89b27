package bloom

import (
	"math"

	"github.com/spaolacci/murmur3"
)

// Filter is a fixed-size bloom filter. It is not synchronized: fill it once,
// then share it read-only.
type Filter struct {
	bits []uint64
	m    uint64
	k    uint64
	keys uint64
}

// New returns a filter with m bits and k probes. m is rounded up to a
// multiple of 64.
func New(m uint64, k uint64) *Filter {
	if m < 64 {
		m = 64
	}
	if k == 0 {
		k = 1
	}
	words := (m + 63) / 64
	return &Filter{
		bits: make([]uint64, words),
		m:    words * 64,
		k:    k,
	}
}

// NewWithEstimates sizes a filter for n keys at false positive rate p.
func NewWithEstimates(n uint64, p float64) *Filter {
	if n == 0 {
		n = 1
	}
	if p <= 0 || p >= 1 {
		p = 0.01
	}
	m := math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2))
	k := math.Round(m / float64(n) * math.Ln2)
	return New(uint64(m), uint64(math.Max(k, 1)))
}

func (f *Filter) locations(data []byte) (uint64, uint64) {
	return murmur3.Sum128(data)
}

func (f *Filter) Add(data []byte) {
	h1, h2 := f.locations(data)
	for i := uint64(0); i < f.k; i++ {
		loc := (h1 + i*h2) % f.m
		f.bits[loc>>6] |= 1 << (loc & 63)
	}
	f.keys++
}

func (f *Filter) AddString(s string) {
	f.Add([]byte(s))
}

// Test reports false only if data was never added.
func (f *Filter) Test(data []byte) bool {
	h1, h2 := f.locations(data)
	for i := uint64(0); i < f.k; i++ {
		loc := (h1 + i*h2) % f.m
		if f.bits[loc>>6]&(1<<(loc&63)) == 0 {
			return false
		}
	}
	return true
}

func (f *Filter) TestString(s string) bool {
	return f.Test([]byte(s))
}

func (f *Filter) KeySize() uint64 {
	return f.keys
}

func (f *Filter) Cap() uint64 {
	return f.m
}

package index

import (
	"sort"
	"unicode/utf8"
)

// Trie is a rune-keyed term dictionary. It is not synchronized; Index
// guards it.
type Trie struct {
	root *trieNode
	size int
}

type trieNode struct {
	ch     rune
	childs []*trieNode
	ref    int // number of keys below and including this node
	end    bool
	data   interface{}
}

type Tuple struct {
	Key  string
	Data interface{}
}

func NewTrie() *Trie {
	return &Trie{root: &trieNode{}}
}

func (t *Trie) Len() int {
	return t.size
}

func (n *trieNode) child(r rune) *trieNode {
	for _, c := range n.childs {
		if c.ch == r {
			return c
		}
	}
	return nil
}

// Insert stores data under key, replacing any previous value.
func (t *Trie) Insert(key string, data interface{}) {
	_, exists := t.Search(key)
	p := t.root
	path := []*trieNode{p}
	for _, r := range key {
		next := p.child(r)
		if next == nil {
			next = &trieNode{ch: r}
			p.childs = append(p.childs, next)
		}
		p = next
		path = append(path, p)
	}
	p.end = true
	p.data = data
	if !exists {
		t.size++
		for _, n := range path {
			n.ref++
		}
	}
}

func (t *Trie) find(key string) *trieNode {
	p := t.root
	for _, r := range key {
		if p = p.child(r); p == nil {
			return nil
		}
	}
	return p
}

func (t *Trie) Search(key string) (interface{}, bool) {
	p := t.find(key)
	if p == nil || !p.end {
		return nil, false
	}
	return p.data, true
}

// StartWith returns every key with the given prefix, the prefix itself
// included, in lexical order.
func (t *Trie) StartWith(prefix string) []Tuple {
	p := t.find(prefix)
	if p == nil {
		return nil
	}
	res := make([]Tuple, 0, p.ref)
	if p.end {
		res = append(res, Tuple{Key: prefix, Data: p.data})
	}
	res = collect(p, []byte(prefix), res)
	sort.Slice(res, func(i, j int) bool { return res[i].Key < res[j].Key })
	return res
}

func collect(n *trieNode, path []byte, res []Tuple) []Tuple {
	for _, c := range n.childs {
		next := utf8.AppendRune(path, c.ch)
		if c.end {
			res = append(res, Tuple{Key: string(next), Data: c.data})
		}
		res = collect(c, next, res)
	}
	return res
}

func (t *Trie) Delete(key string) bool {
	if _, ok := t.Search(key); !ok {
		return false
	}
	t.size--
	t.root.ref--
	p := t.root
	for _, r := range key {
		next := p.child(r)
		next.ref--
		if next.ref == 0 {
			// fast delete: nothing else lives below
			for i, c := range p.childs {
				if c == next {
					p.childs = append(p.childs[:i], p.childs[i+1:]...)
					break
				}
			}
			return true
		}
		p = next
	}
	p.end = false
	p.data = nil
	return true
}

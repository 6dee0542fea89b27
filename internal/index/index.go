package index

import (
	"sort"
	"sync"

	"trfts/internal/common"
)

// Postings lists the documents a term occurs in, with the term positions
// inside each document. Doc ids are kept ascending.
type Postings struct {
	Docs      []int64
	Positions map[int64][]int
}

func (p *Postings) add(doc int64, pos int) {
	i := sort.Search(len(p.Docs), func(i int) bool { return p.Docs[i] >= doc })
	if i == len(p.Docs) || p.Docs[i] != doc {
		p.Docs = append(p.Docs, 0)
		copy(p.Docs[i+1:], p.Docs[i:])
		p.Docs[i] = doc
	}
	p.Positions[doc] = append(p.Positions[doc], pos)
}

func (p *Postings) remove(doc int64) bool {
	i := sort.Search(len(p.Docs), func(i int) bool { return p.Docs[i] >= doc })
	if i == len(p.Docs) || p.Docs[i] != doc {
		return false
	}
	p.Docs = append(p.Docs[:i], p.Docs[i+1:]...)
	delete(p.Positions, doc)
	return true
}

// Index is an in-memory inverted index: one term dictionary per field,
// each term pointing at its postings. It is safe for concurrent use.
type Index struct {
	mu     sync.RWMutex
	fields map[string]*Trie
	terms  map[int64]map[string][]string // doc -> field -> distinct terms
}

func New() *Index {
	return &Index{
		fields: make(map[string]*Trie),
		terms:  make(map[int64]map[string][]string),
	}
}

// Occurrence is one analyzed term at its absolute position in a field.
type Occurrence struct {
	Term     string
	Position int
}

// AddField records every occurrence of a document field. Adding the same
// document and field again replaces the earlier postings.
func (ix *Index) AddField(doc int64, field string, occs []Occurrence) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.removeFieldLocked(doc, field)

	tr, ok := ix.fields[field]
	if !ok {
		tr = NewTrie()
		ix.fields[field] = tr
	}
	seen := make(map[string]struct{}, len(occs))
	distinct := make([]string, 0, len(occs))
	for _, o := range occs {
		var p *Postings
		if v, ok := tr.Search(o.Term); ok {
			p = v.(*Postings)
		} else {
			p = &Postings{Positions: make(map[int64][]int)}
			tr.Insert(o.Term, p)
		}
		p.add(doc, o.Position)
		if _, ok := seen[o.Term]; !ok {
			seen[o.Term] = struct{}{}
			distinct = append(distinct, o.Term)
		}
	}
	if ix.terms[doc] == nil {
		ix.terms[doc] = make(map[string][]string)
	}
	ix.terms[doc][field] = distinct
	common.DINFO("doc %d field %s: %d occurrences, %d terms", doc, field, len(occs), len(distinct))
}

// Remove drops a document from every field.
func (ix *Index) Remove(doc int64) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	for field := range ix.terms[doc] {
		ix.removeFieldLocked(doc, field)
	}
	delete(ix.terms, doc)
}

func (ix *Index) removeFieldLocked(doc int64, field string) {
	tr := ix.fields[field]
	if tr == nil {
		return
	}
	for _, term := range ix.terms[doc][field] {
		v, ok := tr.Search(term)
		if !ok {
			continue
		}
		p := v.(*Postings)
		p.remove(doc)
		if len(p.Docs) == 0 {
			tr.Delete(term)
		}
	}
	if m := ix.terms[doc]; m != nil {
		delete(m, field)
	}
}

// Docs returns the ascending ids of documents whose field contains term.
func (ix *Index) Docs(field, term string) []int64 {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	p := ix.postingsLocked(field, term)
	if p == nil {
		return nil
	}
	return append([]int64(nil), p.Docs...)
}

// Positions returns the positions of term in one document field.
func (ix *Index) Positions(field, term string, doc int64) []int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	p := ix.postingsLocked(field, term)
	if p == nil {
		return nil
	}
	return append([]int(nil), p.Positions[doc]...)
}

func (ix *Index) postingsLocked(field, term string) *Postings {
	tr := ix.fields[field]
	if tr == nil {
		return nil
	}
	v, ok := tr.Search(term)
	if !ok {
		return nil
	}
	return v.(*Postings)
}

// Terms lists the terms of a field that start with prefix.
func (ix *Index) Terms(field, prefix string) []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	tr := ix.fields[field]
	if tr == nil {
		return nil
	}
	tuples := tr.StartWith(prefix)
	r := make([]string, len(tuples))
	for i, t := range tuples {
		r[i] = t.Key
	}
	return r
}

// Union returns the documents containing any of terms, ascending.
func (ix *Index) Union(field string, terms []string) []int64 {
	var r []int64
	for _, t := range terms {
		r = common.GetUnionSet(r, ix.Docs(field, t))
	}
	return r
}

// Intersect returns the documents containing all of terms, ascending.
func (ix *Index) Intersect(field string, terms []string) []int64 {
	if len(terms) == 0 {
		return nil
	}
	r := ix.Docs(field, terms[0])
	for _, t := range terms[1:] {
		if len(r) == 0 {
			break
		}
		r = common.CommonSubset(r, ix.Docs(field, t))
	}
	return r
}

func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.terms)
}

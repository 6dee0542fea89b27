package index

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func occ(terms ...string) []Occurrence {
	r := make([]Occurrence, len(terms))
	for i, t := range terms {
		r[i] = Occurrence{Term: t, Position: i}
	}
	return r
}

func TestIndexDocs(t *testing.T) {
	ix := New()
	ix.AddField(3, "title", occ("kitap", "oku"))
	ix.AddField(1, "title", occ("kitap", "tam", "oku"))
	ix.AddField(2, "title", occ("kitap", "kitap", "pikap"))

	assert.Equal(t, []int64{1, 2, 3}, ix.Docs("title", "kitap"))
	assert.Equal(t, []int{0, 1}, ix.Positions("title", "kitap", 2))
	assert.Empty(t, ix.Docs("title", "sayfa"))
	assert.Empty(t, ix.Docs("body", "kitap"))
	assert.Equal(t, 3, ix.Len())
}

func TestIndexSetOps(t *testing.T) {
	ix := New()
	ix.AddField(1, "title", occ("kitap", "oku"))
	ix.AddField(2, "title", occ("kitap", "pikap"))
	ix.AddField(3, "title", occ("sayfa"))

	assert.Equal(t, []int64{1, 2, 3}, ix.Union("title", []string{"oku", "pikap", "sayfa"}))
	assert.Equal(t, []int64{1}, ix.Intersect("title", []string{"kitap", "oku"}))
	assert.Empty(t, ix.Intersect("title", []string{"oku", "sayfa"}))
	assert.Empty(t, ix.Intersect("title", nil))
	assert.Empty(t, ix.Union("title", nil))
}

func TestIndexReplaceAndRemove(t *testing.T) {
	ix := New()
	ix.AddField(1, "title", occ("kitap", "oku"))
	ix.AddField(1, "title", occ("pikap"))

	assert.Empty(t, ix.Docs("title", "kitap"))
	assert.Equal(t, []int64{1}, ix.Docs("title", "pikap"))
	assert.Equal(t, []string{"pikap"}, ix.Terms("title", ""))

	ix.Remove(1)
	assert.Empty(t, ix.Docs("title", "pikap"))
	assert.Equal(t, 0, ix.Len())
}

func TestIndexTermsPrefix(t *testing.T) {
	ix := New()
	ix.AddField(1, "title", occ("kitap", "kitaplık", "kim"))
	assert.Equal(t, []string{"kitap", "kitaplık"}, ix.Terms("title", "kit"))
	assert.Empty(t, ix.Terms("body", ""))
}

func TestIndexParallel(t *testing.T) {
	ix := New()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(doc int64) {
			defer wg.Done()
			ix.AddField(doc, "title", occ("kitap", "oku"))
			_ = ix.Docs("title", "kitap")
		}(int64(i))
	}
	wg.Wait()

	docs := ix.Docs("title", "kitap")
	assert.Len(t, docs, 16)
	for i := 1; i < len(docs); i++ {
		assert.Less(t, docs[i-1], docs[i])
	}
}

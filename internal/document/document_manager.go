package document

import (
	"sort"
	"sync"

	"trfts/internal/types"
)

// DocumentManager keeps the indexed documents in memory, keyed by id.
type DocumentManager struct {
	mu   sync.RWMutex
	docs map[int64]types.Document
}

func NewDocumentManager() *DocumentManager {
	return &DocumentManager{docs: make(map[int64]types.Document)}
}

// AddDoc stores doc and reports whether it replaced an earlier version.
func (dm *DocumentManager) AddDoc(doc types.Document) bool {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	_, ok := dm.docs[doc.ID]
	dm.docs[doc.ID] = doc
	return ok
}

func (dm *DocumentManager) GetDocument(id int64) (types.Document, bool) {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	doc, ok := dm.docs[id]
	return doc, ok
}

// GetDocuments resolves ids in order, skipping unknown ones.
func (dm *DocumentManager) GetDocuments(ids []int64) []types.Document {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	r := make([]types.Document, 0, len(ids))
	for _, id := range ids {
		if doc, ok := dm.docs[id]; ok {
			r = append(r, doc)
		}
	}
	return r
}

func (dm *DocumentManager) RemoveDoc(id int64) bool {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	_, ok := dm.docs[id]
	delete(dm.docs, id)
	return ok
}

func (dm *DocumentManager) Docs() int64 {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	return int64(len(dm.docs))
}

func (dm *DocumentManager) DumpAllDocsID() []int64 {
	dm.mu.RLock()
	sl := make([]int64, 0, len(dm.docs))
	for id := range dm.docs {
		sl = append(sl, id)
	}
	dm.mu.RUnlock()
	sort.Slice(sl, func(i, j int) bool { return sl[i] < sl[j] })
	return sl
}

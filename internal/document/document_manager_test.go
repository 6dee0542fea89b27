package document

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trfts/internal/types"
)

func TestDocumentManager(t *testing.T) {
	dm := NewDocumentManager()
	assert.False(t, dm.AddDoc(types.Document{ID: 2, Fields: map[string]string{"title": "O kitap"}}))
	assert.False(t, dm.AddDoc(types.Document{ID: 1, Fields: map[string]string{"title": "Bu Kitap"}}))
	assert.True(t, dm.AddDoc(types.Document{ID: 2, Fields: map[string]string{"title": "Şu Pikap"}}))

	doc, ok := dm.GetDocument(2)
	assert.True(t, ok)
	title, _ := doc.FetchField("title")
	assert.Equal(t, "Şu Pikap", title)

	assert.Equal(t, int64(2), dm.Docs())
	assert.Equal(t, []int64{1, 2}, dm.DumpAllDocsID())
	assert.Len(t, dm.GetDocuments([]int64{2, 9, 1}), 2)

	assert.True(t, dm.RemoveDoc(1))
	assert.False(t, dm.RemoveDoc(1))
	_, ok = dm.GetDocument(1)
	assert.False(t, ok)
}

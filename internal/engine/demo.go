package engine

import (
	"trfts/internal/morph"
	"trfts/internal/types"
)

const DemoField = "title"

// DemoDocuments is a tiny corpus of Turkish titles, three of which contain a
// form of "kitap".
func DemoDocuments() []types.Document {
	titles := []string{
		"Bu Kitabı Okuyorum",
		"Bu Kitaplar Tam Okumalık",
		"O kitap Bu Kitap Şu Pikap",
		"Kitabın 5. sayfası",
	}
	docs := make([]types.Document, len(titles))
	for i, t := range titles {
		docs[i] = types.Document{ID: int64(i + 1), Fields: map[string]string{DemoField: t}}
	}
	return docs
}

// DemoLexicon knows the roots of the words in DemoDocuments except
// "kitabın". On its own it makes only the first three titles match "kitap".
func DemoLexicon() *morph.Lexicon {
	return morph.NewLexicon(map[string][]string{
		"kitabı":   {"kitap", "kitabı"},
		"kitaplar": {"kitap"},
		"kitap":    {"kitap"},
		"okuyorum": {"oku"},
		"okumalık": {"oku", "okumalık"},
		"sayfası":  {"sayfa"},
		"pikap":    {"pikap"},
	})
}

package dic

import (
	"bufio"
	"bytes"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"trfts/internal/bloom"
	"trfts/internal/codec"
	"trfts/internal/common"
)

// WordSet is an immutable set of words. Case sensitivity is fixed when the
// set is built; after that it is safe for concurrent readers.
type WordSet struct {
	words      map[string]struct{}
	bloom      *bloom.Filter
	ignoreCase bool
}

func NewWordSet(words []string, ignoreCase bool) *WordSet {
	ws := &WordSet{
		words:      make(map[string]struct{}, len(words)),
		bloom:      bloom.NewWithEstimates(uint64(len(words)), 0.01),
		ignoreCase: ignoreCase,
	}
	for _, w := range words {
		if ignoreCase {
			w = strings.ToLower(w)
		}
		if _, ok := ws.words[w]; ok {
			continue
		}
		ws.words[w] = struct{}{}
		ws.bloom.AddString(w)
	}
	return ws
}

// LoadWordSet reads one word per line. Lines are trimmed; blank lines and
// lines starting with '#' are skipped.
func LoadWordSet(r io.Reader, ignoreCase bool) (*WordSet, error) {
	words := []string{}
	sc := bufio.NewScanner(r)
	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading word list")
	}
	return NewWordSet(words, ignoreCase), nil
}

// LoadWordSetFile reads a word list from path. Gzip or zstd compressed
// lists are decompressed on the fly.
func LoadWordSetFile(path string, ignoreCase bool) (*WordSet, error) {
	f, format, err := codec.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "word list")
	}
	defer f.Close()

	ws, err := LoadWordSet(f, ignoreCase)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %q", path)
	}
	common.INFO("loaded %d words from %s (%s)", ws.Len(), path, format)
	return ws, nil
}

func (ws *WordSet) Contains(term []byte) bool {
	if ws.ignoreCase {
		term = bytes.ToLower(term)
	}
	if !ws.bloom.Test(term) {
		return false
	}
	_, ok := ws.words[string(term)]
	return ok
}

func (ws *WordSet) ContainsString(s string) bool {
	return ws.Contains([]byte(s))
}

func (ws *WordSet) IgnoreCase() bool {
	return ws.ignoreCase
}

func (ws *WordSet) Len() int {
	return len(ws.words)
}

// Words returns the members in sorted order.
func (ws *WordSet) Words() []string {
	r := make([]string, 0, len(ws.words))
	for w := range ws.words {
		r = append(r, w)
	}
	sort.Strings(r)
	return r
}

var (
	turkishOnce sync.Once
	turkishSet  *WordSet
)

// TurkishStopWords returns the built-in Turkish stop-word set. Every caller
// shares the same instance.
//
// The list is in UTF-8. Text whose Turkish letters were mangled by a
// Latin-1 or CP1254 round trip ("mý", "nasýl", "ţu") does not match it;
// load such text through a custom stopwords_file instead.
func TurkishStopWords() *WordSet {
	turkishOnce.Do(func() {
		turkishSet = NewWordSet(turkishStopWords, false)
	})
	return turkishSet
}

var turkishStopWords = []string{
	"a", "acaba", "ama", "ancak", "az", "b", "bazen", "bazı", "bile", "bir",
	"biri", "bu", "buna", "bunda", "bundan", "bunu", "bunun", "çok", "çünkü",
	"da", "daha", "de", "değil", "diye", "dolayı", "en", "fakat", "falan",
	"felan", "filan", "gene", "gibi", "hâlâ", "hani", "hatta", "hem", "henüz",
	"hep", "hepsi", "hepsine", "hepsini", "her", "hiç", "hiçbiri", "hiçbirine",
	"hiçbirini", "için", "ile", "ise", "işte", "kaç", "kadar", "ki", "kim",
	"kime", "kimi", "kimin", "kimisi", "madem", "mı", "mi", "mu", "mü",
	"nasıl", "ne", "nesi", "o", "ona", "onu", "onun", "oysa", "oysaki",
	"öbürü", "ön", "öyle", "sen", "şayet", "şey", "şeyden", "şeye", "şeyi",
	"şeyler", "şöyle", "şu", "şuna", "şunda", "şundan", "şunlar", "şunu",
	"şunun", "tabi", "üzere", "ve", "veya", "veyahut", "ya", "yada", "yani",
	"yine", "zaten", "zira",
}

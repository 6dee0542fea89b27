package morph

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"trfts/internal/codec"
	"trfts/internal/common"
)

var ErrMalformedLexicon = errors.New("malformed lexicon line")

// Lexicon is a dictionary engine. Each entry maps a surface form to its
// roots in preference order. It is read-only once built.
type Lexicon struct {
	entries map[string][]string
}

func NewLexicon(entries map[string][]string) *Lexicon {
	lx := &Lexicon{entries: make(map[string][]string, len(entries))}
	for k, v := range entries {
		lx.entries[k] = append([]string(nil), v...)
	}
	return lx
}

// LoadLexicon reads lines of the form
//
//	surface root1 [root2 ...]
//
// separated by spaces or tabs. Blank lines and '#' comments are skipped.
// A surface listed twice keeps the roots of its first line.
func LoadLexicon(r io.Reader) (*Lexicon, error) {
	lx := &Lexicon{entries: make(map[string][]string)}
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, errors.Wrapf(ErrMalformedLexicon, "line %d: %q", n, line)
		}
		if _, ok := lx.entries[fields[0]]; ok {
			continue
		}
		lx.entries[fields[0]] = fields[1:]
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading lexicon")
	}
	return lx, nil
}

// LoadLexiconFile reads a lexicon from path, decompressing gzip or zstd
// files on the fly.
func LoadLexiconFile(path string) (*Lexicon, error) {
	f, format, err := codec.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "lexicon")
	}
	defer f.Close()

	cr := codec.NewCountReader(f)
	lx, err := LoadLexicon(cr)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %q", path)
	}
	common.INFO("loaded %d lexicon entries from %s (%s, %d bytes)", lx.Len(), path, format, cr.Count())
	return lx, nil
}

func (lx *Lexicon) Analyze(surface string) ([]string, error) {
	roots, ok := lx.entries[surface]
	if !ok {
		return nil, nil
	}
	return append([]string(nil), roots...), nil
}

func (lx *Lexicon) Len() int {
	return len(lx.entries)
}

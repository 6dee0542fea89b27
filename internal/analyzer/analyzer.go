package analyzer

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"trfts/internal/config"
	"trfts/internal/filter/dic"
	"trfts/internal/filter/tr"
	"trfts/internal/morph"
	"trfts/internal/tokenizer"
	"trfts/internal/types"
)

// TurkishAnalyzer turns Turkish text into index terms. Every stream it opens
// runs the same chain:
//
//	WordTokenizer -> ShapeFilter -> LowercaseFilter -> StopWordFilter -> StemmerFilter
//
// The analyzer is immutable once built and safe for concurrent use as long
// as its engine is.
type TurkishAnalyzer struct {
	cfg   config.Config
	stop  *dic.WordSet
	tk    *tokenizer.Tokenizer
	roots *morph.RootFinder
}

type Option func(*TurkishAnalyzer)

// WithStopWords overrides the stop-word set named by the configuration.
func WithStopWords(ws *dic.WordSet) Option {
	return func(a *TurkishAnalyzer) {
		a.stop = ws
	}
}

// New validates cfg and builds an analyzer around engine. A nil engine makes
// every token its own root.
func New(cfg config.Config, engine morph.Engine, opts ...Option) (*TurkishAnalyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &TurkishAnalyzer{cfg: cfg, roots: morph.NewRootFinder(engine)}
	for _, opt := range opts {
		opt(a)
	}
	if a.stop == nil {
		ws, err := cfg.StopWords()
		if err != nil {
			return nil, err
		}
		a.stop = ws
	}

	tk, err := tokenizer.New(cfg.MaxTokenLength)
	if err != nil {
		return nil, errors.Wrapf(config.ErrInvalidConfig, "%v", err)
	}
	tk.UseFilter(tr.ShapeFilter{ReplaceInvalidAcronym: cfg.ReplaceInvalidAcronym})
	tk.UseFilter(tr.LowercaseFilter{Turkish: cfg.TurkishCasing})
	tk.UseFilter(tr.StopWordFilter{Words: a.stop})
	tk.UseFilter(tr.StemmerFilter{Finder: a.roots})
	a.tk = tk
	return a, nil
}

func (a *TurkishAnalyzer) Config() config.Config {
	return a.cfg
}

func (a *TurkishAnalyzer) StopWords() *dic.WordSet {
	return a.stop
}

// TokenStream opens a stream over r. field names the document field the text
// belongs to; every field is analyzed the same way. The caller owns the
// stream and must Close it, which also closes r if it is an io.Closer.
func (a *TurkishAnalyzer) TokenStream(field string, r io.Reader) (types.TokenStream, error) {
	_ = field
	return a.tk.Open(r), nil
}

// Walk runs a stream over r to the end, handing each token to fn. The token
// is only valid for the duration of the call. The stream is closed on every
// return path; the first error from the stream or fn is returned.
func (a *TurkishAnalyzer) Walk(field string, r io.Reader, fn func(*types.Token) error) (err error) {
	ts, err := a.TokenStream(field, r)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := ts.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "closing token stream")
		}
	}()

	tok := &types.Token{}
	tok.Reset()
	for {
		ok, err := ts.Next(tok)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(tok); err != nil {
			return err
		}
	}
}

// Terms analyzes text and returns the emitted terms in order. Indexing and
// querying both go through it so they always agree on term shape.
func (a *TurkishAnalyzer) Terms(field, text string) ([]string, error) {
	var terms []string
	err := a.Walk(field, strings.NewReader(text), func(tok *types.Token) error {
		terms = append(terms, tok.String())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return terms, nil
}

package tokenizer

import (
	"io"

	"github.com/pkg/errors"

	"trfts/internal/types"
)

const DefaultMaxTokenLength = 255

var ErrInvalidMaxTokenLength = errors.New("max token length must be positive")

// Tokenizer builds token streams: a WordTokenizer at the bottom, wrapped by
// the registered filters in the order they were added.
type Tokenizer struct {
	filters []types.Filter
	maxLen  int
}

func New(maxLen int) (*Tokenizer, error) {
	if maxLen <= 0 {
		return nil, errors.Wrapf(ErrInvalidMaxTokenLength, "got %d", maxLen)
	}
	return &Tokenizer{maxLen: maxLen}, nil
}

func (t *Tokenizer) UseFilter(f types.Filter) {
	t.filters = append(t.filters, f)
}

func (t *Tokenizer) MaxTokenLength() int {
	return t.maxLen
}

// Open returns a fresh stream over r. The stream owns r: closing the stream
// closes r when it is an io.Closer.
func (t *Tokenizer) Open(r io.Reader) types.TokenStream {
	var ts types.TokenStream = NewWordTokenizer(r, t.maxLen)
	for _, f := range t.filters {
		ts = f.Gen(ts)
	}
	return ts
}

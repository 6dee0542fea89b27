package tokenizer

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/blevesearch/segment"
	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"

	"trfts/internal/types"
)

var ErrStreamClosed = errors.New("token stream closed")

// Segment types for word runs that do not fit the segmenter's buffer. The
// head of such a run counts as one dropped position, the rest counts as
// nothing.
const (
	overLong     = -1
	overLongRest = -2
)

// WordTokenizer is the leaf stream. It splits its input on Unicode word
// boundaries (UAX #29) and emits letter, number, kana and ideographic runs.
// Runs longer than maxLen runes are dropped and their position is carried
// into the next emitted token. Ill-formed UTF-8 bytes act as separators.
type WordTokenizer struct {
	maxLen  int
	input   io.Reader
	seg     *segment.Segmenter
	offset  int
	overrun bool // inside a word run that overflowed the segmenter buffer
	err     error
	closed  bool
}

func NewWordTokenizer(r io.Reader, maxLen int) *WordTokenizer {
	wt := &WordTokenizer{maxLen: maxLen}
	wt.reset(r)
	return wt
}

func (wt *WordTokenizer) reset(r io.Reader) {
	if r == nil {
		r = strings.NewReader("")
	}
	wt.input = r
	wt.seg = segment.NewWordSegmenter(r)
	wt.seg.SetSegmenter(wt.segmentWords)
	wt.offset = 0
	wt.overrun = false
	wt.err = nil
	wt.closed = false
}

// segmentWords wraps segment.SegmentWords, which stops without an error at
// the first ill-formed byte and fails once a run fills its 64 KiB buffer.
// Ill-formed bytes come back one at a time as non-word segments. A full
// buffer with no boundary in sight comes back as an overLong segment and the
// remainder of that run as overLongRest.
func (wt *WordTokenizer) segmentWords(data []byte, atEOF bool) (int, []byte, int, error) {
	n, bad := validPrefix(data, atEOF)
	if n == 0 {
		if bad {
			wt.overrun = false
			return 1, data[:1], segment.None, nil
		}
		return 0, nil, 0, nil
	}

	// a bad byte ends the valid prefix the same way the end of input would
	advance, token, typ, err := segment.SegmentWords(data[:n], atEOF || bad)
	if err != nil {
		return advance, token, typ, err
	}
	if token == nil && advance == 0 {
		switch {
		case atEOF || bad:
			token, advance, typ = data[:n], n, segment.None
		case len(data) >= segment.MaxScanTokenSize:
			advance, token, typ, err = segment.SegmentWords(data[:n], true)
			if err != nil || token == nil {
				return advance, token, typ, err
			}
			if _, word := tokenType(typ); word {
				if wt.overrun {
					typ = overLongRest
				} else {
					typ = overLong
				}
				wt.overrun = advance == n
				return advance, token, typ, nil
			}
		default:
			return 0, nil, 0, nil
		}
	}

	if wt.overrun {
		wt.overrun = false
		if _, word := tokenType(typ); word {
			typ = overLongRest
		}
	}
	return advance, token, typ, nil
}

// validPrefix returns the length of the well-formed UTF-8 prefix of data. bad
// reports that an ill-formed byte follows it. Without atEOF a truncated rune
// at the end is left for the next read.
func validPrefix(data []byte, atEOF bool) (n int, bad bool) {
	for n < len(data) {
		if data[n] < utf8.RuneSelf {
			n++
			continue
		}
		if !atEOF && !utf8.FullRune(data[n:]) {
			return n, false
		}
		r, size := utf8.DecodeRune(data[n:])
		if r == utf8.RuneError && size == 1 {
			return n, true
		}
		n += size
	}
	return n, false
}

func (wt *WordTokenizer) Next(tok *types.Token) (bool, error) {
	if wt.closed {
		return false, ErrStreamClosed
	}
	if wt.err != nil {
		return false, wt.err
	}

	skipped := 0
	for wt.seg.Segment() {
		b := wt.seg.Bytes()
		start := wt.offset
		wt.offset += len(b)

		switch wt.seg.Type() {
		case overLong:
			skipped++
			continue
		case overLongRest:
			continue
		}
		typ, ok := tokenType(wt.seg.Type())
		if !ok {
			continue
		}
		if utf8.RuneCount(b) > wt.maxLen {
			skipped++
			continue
		}

		tok.Term = norm.NFC.Append(tok.Term[:0], b...)
		tok.Start = start
		tok.End = wt.offset
		tok.PositionIncrement = 1 + skipped
		tok.Type = typ
		return true, nil
	}

	if err := wt.seg.Err(); err != nil {
		wt.err = errors.Wrapf(err, "reading input after %d tokenized bytes", wt.offset)
		return false, wt.err
	}
	return false, nil
}

// Reset restarts tokenization over r. The previous input is released.
func (wt *WordTokenizer) Reset(r io.Reader) error {
	err := wt.release()
	wt.reset(r)
	return err
}

func (wt *WordTokenizer) Close() error {
	if wt.closed {
		return nil
	}
	err := wt.release()
	wt.closed = true
	return err
}

func (wt *WordTokenizer) release() error {
	c, ok := wt.input.(io.Closer)
	wt.input = nil
	if !ok {
		return nil
	}
	return errors.Wrap(c.Close(), "closing input")
}

func tokenType(t int) (types.TokenType, bool) {
	switch t {
	case segment.Letter:
		return types.ALPHANUM, true
	case segment.Number:
		return types.NUM, true
	case segment.Ideo:
		return types.IDEO, true
	case segment.Kana:
		return types.KANA, true
	}
	return 0, false
}

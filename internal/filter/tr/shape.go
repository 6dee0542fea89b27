package tr

import (
	"bytes"
	"unicode"
	"unicode/utf8"

	"trfts/internal/types"
)

// ShapeFilter cleans up token shapes when ReplaceInvalidAcronym is set:
// dotted acronyms lose their dots (T.C -> TC) and a suffix written after an
// apostrophe is cut off (Ankara'da -> Ankara). Otherwise tokens pass as is.
type ShapeFilter struct {
	ReplaceInvalidAcronym bool
}

func (f ShapeFilter) Gen(in types.TokenStream) types.TokenStream {
	return &shapeStream{
		FilterStream: types.FilterStream{Input: in},
		enabled:      f.ReplaceInvalidAcronym,
	}
}

type shapeStream struct {
	types.FilterStream
	enabled bool
}

func (s *shapeStream) Next(tok *types.Token) (bool, error) {
	ok, err := s.Input.Next(tok)
	if !ok || err != nil {
		return ok, err
	}
	if s.enabled && tok.Type == types.ALPHANUM {
		tok.Term = normalizeShape(tok.Term)
	}
	return true, nil
}

const rightSingleQuote = '’'

func normalizeShape(term []byte) []byte {
	if i := apostrophe(term); i > 0 {
		term = term[:i]
	}
	if isDottedAcronym(term) {
		out := term[:0]
		for _, b := range term {
			if b != '.' {
				out = append(out, b)
			}
		}
		term = out
	}
	return term
}

func apostrophe(term []byte) int {
	if i := bytes.IndexByte(term, '\''); i >= 0 {
		return i
	}
	return bytes.IndexRune(term, rightSingleQuote)
}

// isDottedAcronym matches single letters separated by dots, with an optional
// trailing dot: "T.C", "A.B.D.".
func isDottedAcronym(term []byte) bool {
	letters := 0
	wantLetter := true
	for i := 0; i < len(term); {
		r, size := utf8.DecodeRune(term[i:])
		i += size
		if wantLetter {
			if !unicode.IsLetter(r) {
				return false
			}
			letters++
		} else if r != '.' {
			return false
		}
		wantLetter = !wantLetter
	}
	return letters > 1
}

package tr

import (
	"bytes"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"trfts/internal/types"
)

// LowercaseFilter folds token text to lower case. By default folding is
// locale independent, so 'I' becomes 'i' rather than the Turkish dotless
// 'ı'. Turkish switches to Turkish casing rules.
type LowercaseFilter struct {
	Turkish bool
}

func (f LowercaseFilter) Gen(in types.TokenStream) types.TokenStream {
	s := &lowercaseStream{FilterStream: types.FilterStream{Input: in}}
	if f.Turkish {
		// a Caser keeps state, so every stream gets its own
		c := cases.Lower(language.Turkish)
		s.caser = &c
	}
	return s
}

type lowercaseStream struct {
	types.FilterStream
	caser *cases.Caser
}

func (s *lowercaseStream) Next(tok *types.Token) (bool, error) {
	ok, err := s.Input.Next(tok)
	if !ok || err != nil {
		return ok, err
	}
	var lower []byte
	if s.caser != nil {
		lower = s.caser.Bytes(tok.Term)
	} else if isASCII(tok.Term) {
		for i, b := range tok.Term {
			if 'A' <= b && b <= 'Z' {
				tok.Term[i] = b + 'a' - 'A'
			}
		}
		return true, nil
	} else {
		lower = bytes.ToLower(tok.Term)
	}
	tok.Term = append(tok.Term[:0], lower...)
	return true, nil
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

package tr

import (
	"trfts/internal/morph"
	"trfts/internal/types"
)

// StemmerFilter replaces each token's text with its root. It never drops or
// adds tokens, and offsets keep describing the surface form.
type StemmerFilter struct {
	Finder *morph.RootFinder
}

func (f StemmerFilter) Gen(in types.TokenStream) types.TokenStream {
	return &stemmerStream{
		FilterStream: types.FilterStream{Input: in},
		finder:       f.Finder,
	}
}

type stemmerStream struct {
	types.FilterStream
	finder *morph.RootFinder
}

func (s *stemmerStream) Next(tok *types.Token) (bool, error) {
	ok, err := s.Input.Next(tok)
	if !ok || err != nil {
		return ok, err
	}
	if s.finder != nil {
		tok.SetTerm(s.finder.Find(string(tok.Term)))
	}
	return true, nil
}

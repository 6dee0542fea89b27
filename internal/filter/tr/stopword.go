package tr

import (
	"trfts/internal/filter/dic"
	"trfts/internal/types"
)

// StopWordFilter drops tokens found in Words. The position increments of
// dropped tokens are added to the next token that is let through, so phrase
// distances still count the removed words.
type StopWordFilter struct {
	Words *dic.WordSet
}

func (f StopWordFilter) Gen(in types.TokenStream) types.TokenStream {
	return &stopWordStream{
		FilterStream: types.FilterStream{Input: in},
		words:        f.Words,
	}
}

type stopWordStream struct {
	types.FilterStream
	words *dic.WordSet
}

func (s *stopWordStream) Next(tok *types.Token) (bool, error) {
	skipped := 0
	for {
		ok, err := s.Input.Next(tok)
		if !ok || err != nil {
			return ok, err
		}
		if s.words == nil || !s.words.Contains(tok.Term) {
			tok.PositionIncrement += skipped
			return true, nil
		}
		skipped += tok.PositionIncrement
	}
}

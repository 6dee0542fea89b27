package tr

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trfts/internal/filter/dic"
	"trfts/internal/morph"
	"trfts/internal/types"
)

// testStream replays fixed tokens, then optionally fails.
type testStream struct {
	tokens []types.Token
	err    error
	pos    int
	closed bool
}

func newTestStream(terms ...string) *testStream {
	ts := &testStream{}
	off := 0
	for _, s := range terms {
		ts.tokens = append(ts.tokens, types.Token{
			Term:              []byte(s),
			Start:             off,
			End:               off + len(s),
			PositionIncrement: 1,
		})
		off += len(s) + 1
	}
	return ts
}

func (ts *testStream) Next(tok *types.Token) (bool, error) {
	if ts.pos >= len(ts.tokens) {
		return false, ts.err
	}
	src := ts.tokens[ts.pos]
	ts.pos++
	tok.Term = append(tok.Term[:0], src.Term...)
	tok.Start, tok.End = src.Start, src.End
	tok.PositionIncrement = src.PositionIncrement
	tok.Type = src.Type
	return true, nil
}

func (ts *testStream) Reset(io.Reader) error {
	ts.pos = 0
	return nil
}

func (ts *testStream) Close() error {
	ts.closed = true
	return nil
}

func collect(t *testing.T, s types.TokenStream) []types.Token {
	t.Helper()
	var out []types.Token
	tok := &types.Token{}
	for {
		ok, err := s.Next(tok)
		require.NoError(t, err)
		if !ok {
			return out
		}
		cp := *tok
		cp.Term = bytes.Clone(tok.Term)
		out = append(out, cp)
	}
}

func termsOf(tokens []types.Token) []string {
	r := []string{}
	for _, tok := range tokens {
		r = append(r, string(tok.Term))
	}
	return r
}

func TestShape(t *testing.T) {
	in := []string{"T.C", "A.B.D.", "Ankara'da", "Türkiye’nin", "U.S.A.B", "e.g.x1", "kitap", "'tek"}

	out := collect(t, ShapeFilter{ReplaceInvalidAcronym: true}.Gen(newTestStream(in...)))
	assert.Equal(t, []string{"TC", "ABD", "Ankara", "Türkiye", "USAB", "e.g.x1", "kitap", "'tek"}, termsOf(out))

	out = collect(t, ShapeFilter{}.Gen(newTestStream(in...)))
	assert.Equal(t, in, termsOf(out))
}

func TestShapeSkipsNumbers(t *testing.T) {
	src := newTestStream("1.2")
	src.tokens[0].Type = types.NUM
	out := collect(t, ShapeFilter{ReplaceInvalidAcronym: true}.Gen(src))
	assert.Equal(t, []string{"1.2"}, termsOf(out))
}

func TestLowercase(t *testing.T) {
	in := newTestStream("HELLO!", "Kitabý", "ÇOK", "Is", "İstanbul", "IŞIK")

	out := collect(t, LowercaseFilter{}.Gen(in))
	assert.Equal(t, []string{"hello!", "kitabý", "çok", "is", "istanbul", "işik"}, termsOf(out))
}

func TestLowercaseTurkish(t *testing.T) {
	in := newTestStream("IŞIK", "İstanbul", "KİTAP")

	out := collect(t, LowercaseFilter{Turkish: true}.Gen(in))
	assert.Equal(t, []string{"ışık", "istanbul", "kitap"}, termsOf(out))
}

func TestLowercaseKeepsOffsets(t *testing.T) {
	out := collect(t, LowercaseFilter{}.Gen(newTestStream("BU", "KİTAP")))
	require.Len(t, out, 2)
	assert.Equal(t, 3, out[1].Start)
	assert.Equal(t, 3+len("KİTAP"), out[1].End)
}

func TestStopWord(t *testing.T) {
	in := newTestStream("bu", "kitabý", "ve", "ile", "okuyorum")

	out := collect(t, StopWordFilter{Words: dic.TurkishStopWords()}.Gen(in))

	assert.Equal(t, []string{"kitabý", "okuyorum"}, termsOf(out))
	assert.Equal(t, 2, out[0].PositionIncrement)
	assert.Equal(t, 3, out[1].PositionIncrement)
}

func TestStopWordCarriesIncrements(t *testing.T) {
	in := newTestStream("ve", "kitap")
	in.tokens[0].PositionIncrement = 2

	out := collect(t, StopWordFilter{Words: dic.TurkishStopWords()}.Gen(in))
	require.Len(t, out, 1)
	assert.Equal(t, 3, out[0].PositionIncrement)
}

func TestStopWordAllDropped(t *testing.T) {
	in := newTestStream("bu", "ve", "şu")
	out := collect(t, StopWordFilter{Words: dic.TurkishStopWords()}.Gen(in))
	assert.Empty(t, out)
}

func TestStem(t *testing.T) {
	engine := morph.NewLexicon(map[string][]string{
		"kitabý":   {"kitap", "kitab"},
		"okuyorum": {"oku"},
	})
	in := newTestStream("kitabý", "okuyorum", "ankara")

	out := collect(t, StemmerFilter{Finder: morph.NewRootFinder(engine)}.Gen(in))

	assert.Equal(t, []string{"kitap", "oku", "ankara"}, termsOf(out))
	// offsets still describe the surface form
	assert.Equal(t, 0, out[0].Start)
	assert.Equal(t, len("kitabý"), out[0].End)
}

func TestUpstreamErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	in := newTestStream("bu")
	in.err = boom

	chain := StemmerFilter{}.Gen(StopWordFilter{Words: dic.TurkishStopWords()}.Gen(LowercaseFilter{}.Gen(ShapeFilter{}.Gen(in))))

	tok := &types.Token{}
	ok, err := chain.Next(tok)
	assert.False(t, ok)
	assert.ErrorIs(t, err, boom)
}

func TestCloseReachesSource(t *testing.T) {
	in := newTestStream("kitap")
	chain := StemmerFilter{}.Gen(StopWordFilter{}.Gen(LowercaseFilter{}.Gen(ShapeFilter{}.Gen(in))))

	require.NoError(t, chain.Close())
	assert.True(t, in.closed)
}

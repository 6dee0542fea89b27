package types

import (
	"io"
)

type Cache interface {
	Get(string) (interface{}, bool)
	Put(string, interface{})
	Len() int
	Clear()
}

// TokenType is the word-boundary class the tokenizer assigned to a token.
type TokenType uint8

const (
	ALPHANUM TokenType = iota
	NUM
	IDEO
	KANA
)

func (t TokenType) String() string {
	switch t {
	case NUM:
		return "<NUM>"
	case IDEO:
		return "<IDEO>"
	case KANA:
		return "<KANA>"
	default:
		return "<ALPHANUM>"
	}
}

// Token is the single reusable record every stage of a stream writes into.
// Start and End are byte offsets of the source span and stay fixed once the
// tokenizer sets them, whatever later stages do to Term.
type Token struct {
	Term              []byte
	Start             int
	End               int
	PositionIncrement int
	Type              TokenType
}

// SetTerm overwrites the term buffer in place.
func (t *Token) SetTerm(s string) {
	t.Term = append(t.Term[:0], s...)
}

// String returns a copy of the term that survives the next pull.
func (t *Token) String() string {
	return string(t.Term)
}

func (t *Token) Reset() {
	t.Term = t.Term[:0]
	t.Start = 0
	t.End = 0
	t.PositionIncrement = 1
	t.Type = ALPHANUM
}

// TokenStream is a pull handle over tokens. Next fills tok and reports
// whether a token was produced; false with a nil error means exhausted.
type TokenStream interface {
	Next(tok *Token) (bool, error)
	Reset(io.Reader) error
	Close() error
}

// Filter wraps an upstream stream into a new stage.
type Filter interface {
	Gen(TokenStream) TokenStream
}

// FilterStream is the shared upstream plumbing of every filter stage.
type FilterStream struct {
	Input TokenStream
}

func (f *FilterStream) Reset(r io.Reader) error {
	return f.Input.Reset(r)
}

func (f *FilterStream) Close() error {
	return f.Input.Close()
}

// Document is the unit the search engine indexes.
type Document struct {
	ID     int64
	Fields map[string]string
}

func (d Document) FetchField(field string) (string, bool) {
	s, ok := d.Fields[field]
	return s, ok
}

type QueryLevel uint8

const (
	AT_OR  QueryLevel = iota // common union set
	AT_AND                   // common min set
)

package tokenizer

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"trfts/internal/types"
)

// plainWord reports whether a whitespace-separated field must come out as a
// single token: well-formed letters from the Latin blocks the segmenter has
// always known, within the length limit.
func plainWord(field string, maxLen int) bool {
	if !utf8.ValidString(field) || utf8.RuneCountInString(field) > maxLen {
		return false
	}
	for _, r := range field {
		if r >= 0x250 || !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func FuzzWordTokenizer(f *testing.F) {
	f.Add("Bu Kitabý Okuyorum")
	f.Add("")
	f.Add("T.C. Ankara'da 5. sayfa")
	f.Add("şehir \xff\xfe bozuk")
	f.Add("kitap \xff\xfe okuyorum \xc3 kalem")
	f.Add("çok   uzun\tboşluk\n")

	f.Fuzz(func(t *testing.T, input string) {
		const maxLen = 16
		wt := NewWordTokenizer(strings.NewReader(input), maxLen)
		tok := &types.Token{}
		seen := map[string]bool{}
		last := 0
		for {
			ok, err := wt.Next(tok)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !ok {
				break
			}
			if tok.Start < last || tok.Start > tok.End || tok.End > len(input) {
				t.Errorf("bad offsets start=%d end=%d last=%d len=%d", tok.Start, tok.End, last, len(input))
			}
			if tok.PositionIncrement < 1 {
				t.Errorf("position increment %d", tok.PositionIncrement)
			}
			if len(tok.Term) == 0 {
				t.Error("empty term produced")
			}
			seen[tok.String()] = true
			last = tok.End
		}

		for _, field := range strings.Fields(input) {
			if plainWord(field, maxLen) && !seen[field] {
				t.Errorf("word %q missing from output", field)
			}
		}
	})
}

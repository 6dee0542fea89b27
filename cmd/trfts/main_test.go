package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trfts/internal/config"
	"trfts/internal/morph"
)

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestAnalyzeArgs(t *testing.T) {
	out := run(t, "", "analyze", "--cache_kind=none", "Bu", "T.C.", "Ankara'da")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "term\tstart\tend\tposinc\ttype", lines[0])
	assert.Equal(t, "tc\t3\t6\t2\t<ALPHANUM>", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "ankar"), lines[2])
}

func TestAnalyzeStdin(t *testing.T) {
	out := run(t, "şu 42", "analyze")
	assert.Contains(t, out, "42\t3\t5\t2\t<NUM>")
}

func TestDemo(t *testing.T) {
	out := run(t, "", "demo")
	assert.Contains(t, out, `query "KiTap" -> terms [kitap]`)
	assert.Contains(t, out, "match doc 1: Bu Kitabı Okuyorum")
	assert.Contains(t, out, "match doc 2: Bu Kitaplar Tam Okumalık")
	assert.Contains(t, out, "match doc 3: O kitap Bu Kitap Şu Pikap")
}

func TestDemoNoMatch(t *testing.T) {
	out := run(t, "", "demo", "--and", "defter kalem")
	assert.Contains(t, out, "no match")
}

func TestBadConfig(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"analyze", "--max_token_length=0", "x"})
	assert.Error(t, cmd.Execute())
}

func TestEngineReleasedOnEveryPath(t *testing.T) {
	boom := errors.New("stdin gone")
	tests := []struct {
		name  string
		stdin io.Reader
		err   error
	}{
		{"success", strings.NewReader("kitap okuyorum"), nil},
		{"input failure", iotest.ErrReader(boom), boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			released := 0
			a := &app{buildEngine: func(c config.Config) (morph.Engine, func(), error) {
				e, release, err := c.BuildEngine()
				return e, func() {
					released++
					release()
				}, err
			}}
			cmd := a.rootCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetIn(tt.stdin)
			cmd.SetArgs([]string{"analyze", "--cache_kind=ristretto"})

			err := cmd.Execute()
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, 1, released)
		})
	}
}

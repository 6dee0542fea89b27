package morph

import (
	"github.com/blevesearch/snowballstem"
	"github.com/blevesearch/snowballstem/turkish"
	"github.com/kljensen/snowball"
	"github.com/pkg/errors"
)

const Turkish = "turkish"

var ErrUnsupportedLanguage = errors.New("unsupported stemmer language")

// SnowballEngine is a rule-based engine: it strips suffixes with a Snowball
// stemmer and reports the stem as the only candidate. Turkish uses the
// snowballstem Turkish stemmer; other languages go through kljensen/snowball.
type SnowballEngine struct {
	lang string
}

func NewSnowballEngine(lang string) (*SnowballEngine, error) {
	if lang == "" {
		lang = Turkish
	}
	if lang != Turkish {
		if _, err := snowball.Stem("test", lang, false); err != nil {
			return nil, errors.Wrapf(ErrUnsupportedLanguage, "%q", lang)
		}
	}
	return &SnowballEngine{lang: lang}, nil
}

func (s *SnowballEngine) Language() string {
	return s.lang
}

func (s *SnowballEngine) Analyze(surface string) ([]string, error) {
	if surface == "" {
		return nil, nil
	}
	var root string
	if s.lang == Turkish {
		env := snowballstem.NewEnv(surface)
		turkish.Stem(env)
		root = env.Current()
	} else {
		var err error
		root, err = snowball.Stem(surface, s.lang, false)
		if err != nil {
			return nil, errors.Wrapf(err, "stemming %q", surface)
		}
	}
	if root == "" {
		return nil, nil
	}
	return []string{root}, nil
}

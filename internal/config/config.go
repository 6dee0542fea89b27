package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"trfts/internal/common"
)

var ErrInvalidConfig = errors.New("invalid configuration")

const (
	EngineSnowball = "snowball"
	EngineLexicon  = "lexicon"
	EngineChain    = "chain" // lexicon first, snowball for the rest

	CacheNone      = "none"
	CacheLRU       = "lru"
	CacheLFU       = "lfu"
	CacheRistretto = "ristretto"
)

type Engine struct {
	Kind        string `mapstructure:"kind"`
	Language    string `mapstructure:"language"`
	LexiconFile string `mapstructure:"lexicon_file"`
}

type Cache struct {
	Kind string `mapstructure:"kind"`
	Size int64  `mapstructure:"size"`
}

// Config is read once when an analyzer is built and never changed after.
type Config struct {
	MaxTokenLength        int    `mapstructure:"max_token_length"`
	ReplaceInvalidAcronym bool   `mapstructure:"replace_invalid_acronym"`
	TurkishCasing         bool   `mapstructure:"turkish_casing"`
	StopWordsFile         string `mapstructure:"stopwords_file"`
	Engine                Engine `mapstructure:"engine"`
	Cache                 Cache  `mapstructure:"cache"`
}

func Default() Config {
	return Config{
		MaxTokenLength:        255,
		ReplaceInvalidAcronym: true,
		Engine: Engine{
			Kind:     EngineSnowball,
			Language: "turkish",
		},
		Cache: Cache{
			Kind: CacheLRU,
			Size: 10000,
		},
	}
}

func (c Config) Validate() error {
	if c.MaxTokenLength <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "max_token_length must be positive, got %d", c.MaxTokenLength)
	}
	if c.StopWordsFile != "" && !common.IsExist(c.StopWordsFile) {
		return errors.Wrapf(ErrInvalidConfig, "stopwords_file %q does not exist", c.StopWordsFile)
	}
	switch c.Engine.Kind {
	case EngineSnowball:
	case EngineLexicon, EngineChain:
		if c.Engine.LexiconFile == "" {
			return errors.Wrapf(ErrInvalidConfig, "engine %q needs engine.lexicon_file", c.Engine.Kind)
		}
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown engine.kind %q", c.Engine.Kind)
	}
	switch c.Cache.Kind {
	case CacheNone:
	case CacheLRU, CacheLFU, CacheRistretto:
		if c.Cache.Size <= 0 {
			return errors.Wrapf(ErrInvalidConfig, "cache.size must be positive, got %d", c.Cache.Size)
		}
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown cache.kind %q", c.Cache.Kind)
	}
	return nil
}

// SetDefaults registers the defaults on v so that a partial file or
// environment still yields a complete configuration.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("max_token_length", d.MaxTokenLength)
	v.SetDefault("replace_invalid_acronym", d.ReplaceInvalidAcronym)
	v.SetDefault("turkish_casing", d.TurkishCasing)
	v.SetDefault("stopwords_file", d.StopWordsFile)
	v.SetDefault("engine.kind", d.Engine.Kind)
	v.SetDefault("engine.language", d.Engine.Language)
	v.SetDefault("engine.lexicon_file", d.Engine.LexiconFile)
	v.SetDefault("cache.kind", d.Cache.Kind)
	v.SetDefault("cache.size", d.Cache.Size)
}

// BindFlags adds the configuration flags to fs. Flag names match the config
// keys, with '.' written as '_' for the nested ones.
func BindFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Int("max_token_length", d.MaxTokenLength, "Tokens longer than this many characters are dropped.")
	fs.Bool("replace_invalid_acronym", d.ReplaceInvalidAcronym, "Strip dots from acronyms and apostrophe suffixes.")
	fs.Bool("turkish_casing", d.TurkishCasing, "Use Turkish casing rules (I -> ı) when lowercasing.")
	fs.String("stopwords_file", "", "Newline-delimited stop-word list. Empty uses the built-in Turkish list.")
	fs.String("engine_kind", d.Engine.Kind, "Morphological engine: snowball, lexicon or chain.")
	fs.String("engine_language", d.Engine.Language, "Snowball stemmer language.")
	fs.String("engine_lexicon_file", "", "Lexicon file for the lexicon and chain engines.")
	fs.String("cache_kind", d.Cache.Kind, "Root cache: none, lru, lfu or ristretto.")
	fs.Int64("cache_size", d.Cache.Size, "Maximum number of cached root lookups.")
}

// Load reads the configuration from v. Sources, lowest to highest
// precedence: defaults, config file (when cfgFile is set), TRFTS_*
// environment variables, then flags bound through BindPFlags.
func Load(v *viper.Viper, cfgFile string, fs *pflag.FlagSet) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix("trfts")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "reading config %q", cfgFile)
		}
		common.INFO("using config file %s", v.ConfigFileUsed())
	}

	if fs != nil {
		for _, key := range []string{
			"max_token_length", "replace_invalid_acronym", "turkish_casing", "stopwords_file",
			"engine.kind", "engine.language", "engine.lexicon_file",
			"cache.kind", "cache.size",
		} {
			f := fs.Lookup(strings.ReplaceAll(key, ".", "_"))
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, errors.Wrapf(err, "binding flag %s", f.Name)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrapf(ErrInvalidConfig, "decoding: %v", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

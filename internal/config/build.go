package config

import (
	"github.com/pkg/errors"

	"trfts/internal/cache"
	"trfts/internal/common"
	"trfts/internal/filter/dic"
	"trfts/internal/morph"
	"trfts/internal/types"
)

// StopWords loads stopwords_file, or returns the built-in Turkish list when
// no file is configured. Matching is case sensitive: the stop filter runs
// after lowercasing.
func (c Config) StopWords() (*dic.WordSet, error) {
	if c.StopWordsFile == "" {
		return dic.TurkishStopWords(), nil
	}
	ws, err := dic.LoadWordSetFile(c.StopWordsFile, false)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "stopwords_file: %v", err)
	}
	return ws, nil
}

// BuildEngine assembles the configured morphological engine. The returned
// release func stops any background cache workers and must be called once
// the engine is no longer used.
func (c Config) BuildEngine() (morph.Engine, func(), error) {
	noop := func() {}

	var e morph.Engine
	switch c.Engine.Kind {
	case EngineSnowball:
		sb, err := morph.NewSnowballEngine(c.Engine.Language)
		if err != nil {
			return nil, noop, errors.Wrapf(ErrInvalidConfig, "engine.language: %v", err)
		}
		e = sb
	case EngineLexicon, EngineChain:
		lx, err := morph.LoadLexiconFile(c.Engine.LexiconFile)
		if err != nil {
			return nil, noop, errors.Wrapf(ErrInvalidConfig, "engine.lexicon_file: %v", err)
		}
		e = lx
		if c.Engine.Kind == EngineChain {
			sb, err := morph.NewSnowballEngine(c.Engine.Language)
			if err != nil {
				return nil, noop, errors.Wrapf(ErrInvalidConfig, "engine.language: %v", err)
			}
			e = morph.Chain{lx, sb}
		}
	default:
		return nil, noop, errors.Wrapf(ErrInvalidConfig, "unknown engine.kind %q", c.Engine.Kind)
	}

	var rc types.Cache
	release := noop
	switch c.Cache.Kind {
	case CacheNone:
		common.DINFO("engine %s without root cache", c.Engine.Kind)
		return e, noop, nil
	case CacheLRU:
		rc = cache.Default(c.Cache.Size)
	case CacheLFU:
		rc = cache.NewLFUCache(int(c.Cache.Size))
	case CacheRistretto:
		r, err := cache.NewRistrettoCache(c.Cache.Size)
		if err != nil {
			return nil, noop, err
		}
		rc, release = r, r.Close
	default:
		return nil, noop, errors.Wrapf(ErrInvalidConfig, "unknown cache.kind %q", c.Cache.Kind)
	}
	common.DINFO("engine %s with %s root cache of %d entries", c.Engine.Kind, c.Cache.Kind, c.Cache.Size)
	return morph.NewCachedEngine(e, rc), release, nil
}

package morph

import (
	"trfts/internal/types"
)

// Chain asks each engine in turn and returns the first non-empty answer.
// An engine error only surfaces when no later engine has candidates.
type Chain []Engine

func (c Chain) Analyze(surface string) ([]string, error) {
	var firstErr error
	for _, e := range c {
		roots, err := e.Analyze(surface)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if len(roots) > 0 {
			return roots, nil
		}
	}
	return nil, firstErr
}

// CachedEngine memoizes successful lookups of another engine. Failed lookups
// are not cached.
type CachedEngine struct {
	engine Engine
	cache  types.Cache
}

func NewCachedEngine(e Engine, c types.Cache) *CachedEngine {
	return &CachedEngine{engine: e, cache: c}
}

func (ce *CachedEngine) Analyze(surface string) ([]string, error) {
	if v, ok := ce.cache.Get(surface); ok {
		if roots, ok := v.([]string); ok {
			return append([]string(nil), roots...), nil
		}
	}
	roots, err := ce.engine.Analyze(surface)
	if err != nil {
		return nil, err
	}
	ce.cache.Put(surface, append([]string{}, roots...))
	return roots, nil
}

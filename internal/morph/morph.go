// Package morph is the boundary to morphological analysis. An Engine turns a
// surface form into ordered root candidates; RootFinder picks one of them.
package morph

import (
	"unicode/utf8"

	"github.com/pkg/errors"

	"trfts/internal/common"
)

// Engine returns the candidate roots of a surface form, best first. An empty
// result means the engine has no analysis. Implementations must be safe for
// concurrent use: one engine is shared by every stream of an analyzer.
type Engine interface {
	Analyze(surface string) ([]string, error)
}

type EngineFunc func(surface string) ([]string, error)

func (f EngineFunc) Analyze(surface string) ([]string, error) {
	return f(surface)
}

// RootFinder reduces a token to a single root. The first candidate wins;
// candidates are not disambiguated. When the engine has nothing, fails,
// panics, or hands back an unusable first candidate, the token itself is
// the root.
type RootFinder struct {
	engine Engine
}

func NewRootFinder(e Engine) *RootFinder {
	return &RootFinder{engine: e}
}

func (rf *RootFinder) Find(token string) string {
	if rf.engine == nil {
		return token
	}
	roots, err := rf.analyze(token)
	if err != nil {
		common.DWARN("root lookup for %q failed: %v", token, err)
		return token
	}
	if len(roots) == 0 {
		return token
	}
	root := roots[0]
	if root == "" || !utf8.ValidString(root) {
		common.DWARN("engine returned malformed root %q for %q", root, token)
		return token
	}
	return root
}

func (rf *RootFinder) analyze(token string) (roots []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("engine panic: %v", r)
		}
	}()
	return rf.engine.Analyze(token)
}

// Package registry binds algorithm identifiers to engine singletons. It does
// no arithmetic itself, so engines stay decoupled and individually testable.
package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dgud/emprng/internal/engine"
)

var ErrUnknownAlgorithm = errors.New("unknown algorithm")

var engines = map[string]engine.Engine{
	engine.IDAS183:            engine.AS183,
	engine.IDXorshift64Star:   engine.Xorshift64Star,
	engine.IDXorshift128Plus:  engine.Xorshift128Plus,
	engine.IDXorshift1024Star: engine.Xorshift1024Star,
	engine.IDSFMT19937:        engine.SFMT19937,
	engine.IDTinyMT32:         engine.TinyMT32,
}

// Resolve returns the fixed engine for id.
func Resolve(id string) (engine.Engine, error) {
	e, ok := engines[id]
	if !ok {
		return nil, fmt.Errorf("resolve algorithm %q: %w", id, ErrUnknownAlgorithm)
	}
	return e, nil
}

// IDs returns the closed identifier set, sorted.
func IDs() []string {
	ids := make([]string, 0, len(engines))
	for id := range engines {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Package entropy derives non-reproducible seed material for callers that
// did not ask for a specific sequence.
package entropy

import (
	"time"

	"github.com/dgud/emprng/internal/shared/bitops"
)

// Triple returns three decorrelated seed integers from the wall clock via a
// golden-gamma SplitMix64 walk, so near-simultaneous calls still diverge.
func Triple() (int64, int64, int64) {
	x := uint64(time.Now().UnixNano())
	x += bitops.GoldenGamma
	a1 := bitops.Mix64(x)
	x += bitops.GoldenGamma
	a2 := bitops.Mix64(x)
	x += bitops.GoldenGamma
	a3 := bitops.Mix64(x)
	return int64(a1), int64(a2), int64(a3)
}

package bitops

import (
	"math"
	"math/bits"
)

const (
	Mask21 uint64 = 0x1FFFFF
	Mask32 uint64 = 0xFFFFFFFF
)

// GoldenGamma is the golden-ratio increment used by SplitMix64 to traverse
// states uniformly.
const GoldenGamma uint64 = 0x9E3779B97F4A7C15

// MulMod64M1 returns (a*b) mod (2^64 - 1). The 128-bit product is folded
// once (2^64 ≡ 1 mod 2^64-1), which cannot overflow again because the high
// half of a full 64x64 product is at most 2^64-2.
func MulMod64M1(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	s, c := bits.Add64(lo, hi, 0)
	s += c
	if s == math.MaxUint64 {
		s = 0
	}
	return s
}

// Mix64 produces well-diffused pseudo-independent values from a single 64-bit
// input. This is the SplitMix64 mixing function (public-domain; Steele et al.).
func Mix64(x uint64) uint64 {
	const (
		splitmix64Mul1 = 0xBF58476D1CE4E5B9
		splitmix64Mul2 = 0x94D049BB133111EB
	)
	x = (x ^ (x >> 30)) * splitmix64Mul1
	x = (x ^ (x >> 27)) * splitmix64Mul2
	return x ^ (x >> 31)
}

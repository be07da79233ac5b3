package engine

import "github.com/dgud/emprng/internal/shared/bitops"

// Xorshift64*: a single 64-bit xorshift register whose output is the
// star-multiplied register value (Vigna 2014).
const (
	xs64Mul = 2685821657736338717

	// Primes just below 2^32, used to prime the three seed streams.
	xs64SeedMul1 = 4294967197
	xs64SeedMul2 = 4294967231
	xs64SeedMul3 = 4294967279
)

// inv64 maps a full 64-bit word onto [0,1).
const inv64 = 1.0 / 18446744073709551616.0 // 2^64

type xs64State uint64

func (xs64State) engineID() string { return IDXorshift64Star }

type xs64Engine struct{}

// Xorshift64Star is the xorshift64* engine singleton.
var Xorshift64Star Engine = xs64Engine{}

func (xs64Engine) ID() string { return IDXorshift64Star }

func (xs64Engine) InitialState() State {
	return xs64State(1234567890123456789)
}

// xs64Next is the xorshift64* step. The post-shift register is the new state,
// the multiplied register is the output.
func xs64Next(r uint64) (out, next uint64) {
	r ^= r >> 12
	r ^= r << 25
	r ^= r >> 27
	return r * xs64Mul, r
}

// Seed primes three independent xorshift64* streams from the inputs and
// combines their outputs multiplicatively mod 2^64-1. The final +1 keeps the
// register off zero, the absorbing state of any xorshift recurrence.
func (xs64Engine) Seed(a1, a2, a3 int64) State {
	v1, _ := xs64Next((uint64(a1)&bitops.Mask32)*xs64SeedMul1 + 1)
	v2, _ := xs64Next((uint64(a2)&bitops.Mask32)*xs64SeedMul2 + 1)
	v3, _ := xs64Next((uint64(a3)&bitops.Mask32)*xs64SeedMul3 + 1)
	return xs64State(bitops.MulMod64M1(bitops.MulMod64M1(v1, v2), v3) + 1)
}

func (xs64Engine) UniformFloat(s State) (float64, State) {
	out, next := xs64Next(uint64(s.(xs64State)))
	return float64(out) * inv64, xs64State(next)
}

func (xs64Engine) UniformInt(n int64, s State) (int64, State) {
	out, next := xs64Next(uint64(s.(xs64State)))
	return int64(out%uint64(n)) + 1, xs64State(next)
}

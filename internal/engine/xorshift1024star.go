package engine

import "github.com/dgud/emprng/internal/shared/bitops"

// Xorshift1024*: sixteen 64-bit words forming a ring buffer, advanced one
// slot per draw. Realized as a fixed array plus a head cursor incremented mod
// 16, which rotates in O(1) without physically shifting the words.
const (
	xs1024Mul = 1181783497276652981

	// Primes just below 2^21, used to build the packed seed residues.
	xs1024SeedMul1 = 2097131
	xs1024SeedMul2 = 2097133
	xs1024SeedMul3 = 2097143
)

type xs1024State struct {
	words [16]uint64
	head  int
}

func (xs1024State) engineID() string { return IDXorshift1024Star }

type xs1024Engine struct{}

// Xorshift1024Star is the xorshift1024* engine singleton.
var Xorshift1024Star Engine = xs1024Engine{}

func (xs1024Engine) ID() string { return IDXorshift1024Star }

func (e xs1024Engine) InitialState() State {
	return e.Seed(12345678, 12345678, 12345678)
}

func xs1024Next(s xs1024State) (uint64, xs1024State) {
	s0 := s.words[s.head]
	q := (s.head + 1) & 15
	s1 := s.words[q]

	s1 ^= s1 << 31
	s1 ^= s1 >> 11
	s0 ^= s0 >> 30
	nw := s0 ^ s1

	// s is a copy; writing through it leaves the caller's state intact.
	s.words[q] = nw
	s.head = q
	return nw * xs1024Mul, s
}

// Seed packs three 21-bit prime-multiplied residues into one 64-bit value
// (low bit forced to 1) and expands it into the full ring by iterating the
// xorshift64* step sixteen times, newest word at the head.
func (xs1024Engine) Seed(a1, a2, a3 int64) State {
	b1 := ((uint64(a1)&bitops.Mask21 + 1) * xs1024SeedMul1) & bitops.Mask21
	b2 := ((uint64(a2)&bitops.Mask21 + 1) * xs1024SeedMul2) & bitops.Mask21
	b3 := ((uint64(a3)&bitops.Mask21 + 1) * xs1024SeedMul3) & bitops.Mask21
	r := b1<<43 | b2<<22 | b3<<1 | 1

	var s xs1024State
	for i := 15; i >= 0; i-- {
		s.words[i], r = xs64Next(r)
	}
	return s
}

func (xs1024Engine) UniformFloat(s State) (float64, State) {
	out, next := xs1024Next(s.(xs1024State))
	return float64(out) * inv64, next
}

func (xs1024Engine) UniformInt(n int64, s State) (int64, State) {
	out, next := xs1024Next(s.(xs1024State))
	return int64(out%uint64(n)) + 1, next
}

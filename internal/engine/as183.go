package engine

import "math"

// Wichmann-Hill AS183: three coupled multiplicative streams over the primes
// 30269/30307/30323, combined by fractional summation.
const (
	as183P1 = 30269
	as183P2 = 30307
	as183P3 = 30323

	as183M1 = 171
	as183M2 = 172
	as183M3 = 170
)

type as183State struct {
	s1, s2, s3 int32
}

func (as183State) engineID() string { return IDAS183 }

type as183Engine struct{}

// AS183 is the Wichmann-Hill engine singleton.
var AS183 Engine = as183Engine{}

func (as183Engine) ID() string { return IDAS183 }

func (as183Engine) InitialState() State {
	return as183State{3172, 9814, 20125}
}

// Seed maps each raw integer onto [1, prime-1]. The +1 keeps seeds that are
// exact multiples of a modulus from collapsing that stream to a fixed point.
func (as183Engine) Seed(a1, a2, a3 int64) State {
	return as183State{
		s1: as183Residue(a1, as183P1),
		s2: as183Residue(a2, as183P2),
		s3: as183Residue(a3, as183P3),
	}
}

func as183Residue(a int64, prime int32) int32 {
	v := uint64(a)
	if a < 0 {
		v = -v
	}
	return int32(v%uint64(prime-1)) + 1
}

func as183Advance(s as183State) as183State {
	return as183State{
		s1: s.s1 * as183M1 % as183P1,
		s2: s.s2 * as183M2 % as183P2,
		s3: s.s3 * as183M3 % as183P3,
	}
}

func (as183Engine) UniformFloat(s State) (float64, State) {
	ns := as183Advance(s.(as183State))
	r := float64(ns.s1)/as183P1 + float64(ns.s2)/as183P2 + float64(ns.s3)/as183P3
	return r - math.Floor(r), ns
}

func (e as183Engine) UniformInt(n int64, s State) (int64, State) {
	f, ns := e.UniformFloat(s)
	return int64(f*float64(n)) + 1, ns
}

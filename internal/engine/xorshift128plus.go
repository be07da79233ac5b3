package engine

// Xorshift128+: two 64-bit words with a shift-xor transition and additive
// output (Vigna 2014). Successor of xorshift64* with a cheaper output path.
type xs128State struct {
	s0, s1 uint64
}

func (xs128State) engineID() string { return IDXorshift128Plus }

type xs128Engine struct{}

// Xorshift128Plus is the xorshift128+ engine singleton.
var Xorshift128Plus Engine = xs128Engine{}

func (xs128Engine) ID() string { return IDXorshift128Plus }

func (e xs128Engine) InitialState() State {
	return e.Seed(12345678, 12345678, 12345678)
}

func xs128Next(s xs128State) (uint64, xs128State) {
	t := s.s0 ^ (s.s0 << 23)
	s1 := t ^ s.s1 ^ (t >> 17) ^ (s.s1 >> 26)
	return s.s1 + s1, xs128State{s0: s.s1, s1: s1}
}

// Seed derives two words from the first two inputs via fixed prime
// multipliers, mixes with one advance step, then repeats with the third input
// carrying the mixed second word forward so the pair cannot end up all-zero.
func (xs128Engine) Seed(a1, a2, a3 int64) State {
	_, r1 := xs128Next(xs128State{
		s0: uint64(a1)*xs64SeedMul1 + 1,
		s1: uint64(a2)*xs64SeedMul2 + 1,
	})
	_, r2 := xs128Next(xs128State{
		s0: uint64(a3)*xs64SeedMul3 + 1,
		s1: r1.s1,
	})
	return r2
}

func (xs128Engine) UniformFloat(s State) (float64, State) {
	out, next := xs128Next(s.(xs128State))
	return float64(out) * inv64, next
}

func (xs128Engine) UniformInt(n int64, s State) (int64, State) {
	out, next := xs128Next(s.(xs128State))
	return int64(out%uint64(n)) + 1, next
}

package engine

// SFMT-19937: a 128-bit-lane SIMD-oriented Mersenne Twister (Saito &
// Matsumoto) with period 2^19937-1. The working array is 156 lanes of four
// 32-bit words; the recurrence combines four lanes at a time with two in-lane
// shift widths and whole-byte 128-bit shifts. The whole buffer is refilled in
// one pass and exposed word-at-a-time until exhausted.
const (
	sfmtN   = 156         // lanes
	sfmtN32 = 4 * sfmtN   // 32-bit words

	sfmtPos1 = 122 // lane lag of the B operand
	sfmtSL1  = 18  // in-lane left shift of the D operand
	sfmtSL2  = 1   // 128-bit left shift of A, in bytes
	sfmtSR1  = 11  // in-lane right shift of the B operand
	sfmtSR2  = 1   // 128-bit right shift of C, in bytes

	sfmtDefaultSeed = 1234
)

// Per-word masks applied to the B operand.
var sfmtMask = [4]uint32{0xdfffffef, 0xddfecb7f, 0xbffaffff, 0xbffffff6}

// Parity constants certifying membership of the maximal-period subspace.
var sfmtParity = [4]uint32{0x00000001, 0x00000000, 0x00000000, 0x13c9e684}

// inv32c maps a 32-bit word w onto (0,1) via (w+0.5)/2^32.
const inv32c = 1.0 / 4294967296.0 // 2^32

type sfmtState struct {
	words [sfmtN32]uint32
	// idx is the cursor into the produced block; sfmtN32 forces a refill.
	idx int
}

func (sfmtState) engineID() string { return IDSFMT19937 }

type sfmtEngine struct{}

// SFMT19937 is the SFMT engine singleton.
var SFMT19937 Engine = sfmtEngine{}

func (sfmtEngine) ID() string { return IDSFMT19937 }

func (sfmtEngine) InitialState() State {
	var s sfmtState
	sfmtInitGenRand(&s.words, sfmtDefaultSeed)
	s.idx = sfmtN32
	return s
}

// Seed treats the three integers as a 32-bit word list and runs the two-pass
// key-mixing initialization.
func (sfmtEngine) Seed(a1, a2, a3 int64) State {
	var s sfmtState
	sfmtInitByArray(&s.words, []uint32{uint32(a1), uint32(a2), uint32(a3)})
	s.idx = sfmtN32
	return s
}

// sfmtLshift128 shifts the little-endian 128-bit lane in[0..3] left by n
// bytes (0 < n < 8).
func sfmtLshift128(out *[4]uint32, in []uint32, n uint) {
	th := uint64(in[3])<<32 | uint64(in[2])
	tl := uint64(in[1])<<32 | uint64(in[0])
	oh := th<<(n*8) | tl>>(64-n*8)
	ol := tl << (n * 8)
	out[0] = uint32(ol)
	out[1] = uint32(ol >> 32)
	out[2] = uint32(oh)
	out[3] = uint32(oh >> 32)
}

// sfmtRshift128 is the right-shift counterpart of sfmtLshift128.
func sfmtRshift128(out *[4]uint32, in []uint32, n uint) {
	th := uint64(in[3])<<32 | uint64(in[2])
	tl := uint64(in[1])<<32 | uint64(in[0])
	ol := tl>>(n*8) | th<<(64-n*8)
	oh := th >> (n * 8)
	out[0] = uint32(ol)
	out[1] = uint32(ol >> 32)
	out[2] = uint32(oh)
	out[3] = uint32(oh >> 32)
}

// sfmtRefill advances the whole array by one generation in place. Lane i is
// rebuilt from itself (A), the lane POS1 ahead of the cursor (B, already
// rebuilt once the loop wraps), and the two most recently rebuilt lanes
// (C and D).
func sfmtRefill(w *[sfmtN32]uint32) {
	var x, y [4]uint32
	r1 := 4 * (sfmtN - 2)
	r2 := 4 * (sfmtN - 1)
	for i := 0; i < sfmtN32; i += 4 {
		b := (i + 4*sfmtPos1) % sfmtN32
		sfmtLshift128(&x, w[i:i+4], sfmtSL2)
		sfmtRshift128(&y, w[r1:r1+4], sfmtSR2)
		for k := 0; k < 4; k++ {
			w[i+k] ^= x[k] ^ ((w[b+k] >> sfmtSR1) & sfmtMask[k]) ^ y[k] ^ (w[r2+k] << sfmtSL1)
		}
		r1 = r2
		r2 = i
	}
}

// sfmtInitGenRand expands a single integer across the array with the
// Lehmer-style avalanche recurrence, then certifies the period.
func sfmtInitGenRand(w *[sfmtN32]uint32, seed uint32) {
	w[0] = seed
	for i := uint32(1); i < sfmtN32; i++ {
		w[i] = 1812433253*(w[i-1]^(w[i-1]>>30)) + i
	}
	sfmtCertify(w)
}

func sfmtInitFunc1(x uint32) uint32 { return (x ^ (x >> 27)) * 1664525 }
func sfmtInitFunc2(x uint32) uint32 { return (x ^ (x >> 27)) * 1566083941 }

// sfmtInitByArray seeds from a word list: a first mixing pass consumes the
// key while updating interleaved positions, a second pass runs key-free, and
// the result is period-certified. Mirrors init_by_array of the reference.
func sfmtInitByArray(w *[sfmtN32]uint32, key []uint32) {
	const lag = 11
	const mid = (sfmtN32 - lag) / 2

	for i := range w {
		w[i] = 0x8b8b8b8b
	}
	count := sfmtN32
	if len(key)+1 > sfmtN32 {
		count = len(key) + 1
	}

	r := sfmtInitFunc1(w[0] ^ w[mid] ^ w[sfmtN32-1])
	w[mid] += r
	r += uint32(len(key))
	w[mid+lag] += r
	w[0] = r
	count--

	i := 1
	j := 0
	for ; j < count && j < len(key); j++ {
		r = sfmtInitFunc1(w[i] ^ w[(i+mid)%sfmtN32] ^ w[(i+sfmtN32-1)%sfmtN32])
		w[(i+mid)%sfmtN32] += r
		r += key[j] + uint32(i)
		w[(i+mid+lag)%sfmtN32] += r
		w[i] = r
		i = (i + 1) % sfmtN32
	}
	for ; j < count; j++ {
		r = sfmtInitFunc1(w[i] ^ w[(i+mid)%sfmtN32] ^ w[(i+sfmtN32-1)%sfmtN32])
		w[(i+mid)%sfmtN32] += r
		r += uint32(i)
		w[(i+mid+lag)%sfmtN32] += r
		w[i] = r
		i = (i + 1) % sfmtN32
	}
	for j = 0; j < sfmtN32; j++ {
		r = sfmtInitFunc2(w[i] + w[(i+mid)%sfmtN32] + w[(i+sfmtN32-1)%sfmtN32])
		w[(i+mid)%sfmtN32] ^= r
		r -= uint32(i)
		w[(i+mid+lag)%sfmtN32] ^= r
		w[i] = r
		i = (i + 1) % sfmtN32
	}
	sfmtCertify(w)
}

// sfmtCertify forces the state into the maximal-period subspace: if the
// parity of the first lane against the parity constants is already odd the
// state is accepted, otherwise exactly one bit (the lowest set bit of a
// parity mask) is flipped.
func sfmtCertify(w *[sfmtN32]uint32) {
	inner := uint32(0)
	for i := 0; i < 4; i++ {
		inner ^= w[i] & sfmtParity[i]
	}
	for i := 16; i > 0; i >>= 1 {
		inner ^= inner >> uint(i)
	}
	if inner&1 == 1 {
		return
	}
	for i := 0; i < 4; i++ {
		work := uint32(1)
		for j := 0; j < 32; j++ {
			if work&sfmtParity[i] != 0 {
				w[i] ^= work
				return
			}
			work <<= 1
		}
	}
}

// nextWord yields one 32-bit word, refilling the buffer lazily.
func (sfmtEngine) nextWord(s sfmtState) (uint32, sfmtState) {
	if s.idx >= sfmtN32 {
		sfmtRefill(&s.words)
		s.idx = 0
	}
	w := s.words[s.idx]
	s.idx++
	return w, s
}

func (e sfmtEngine) UniformFloat(s State) (float64, State) {
	w, ns := e.nextWord(s.(sfmtState))
	return (float64(w) + 0.5) * inv32c, ns
}

func (e sfmtEngine) UniformInt(n int64, s State) (int64, State) {
	w, ns := e.nextWord(s.(sfmtState))
	return int64(float64(w)*inv32c*float64(n)) + 1, ns
}

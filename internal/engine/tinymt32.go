package engine

// TinyMT32: a compact 127-bit Mersenne-Twister variant (Saito & Matsumoto)
// with period 2^127-1. Four status words plus three matrix parameters fixed
// at their reference values; the top bit of status0 is outside the state.
const (
	tinyMat1 = 0x8f7011ee
	tinyMat2 = 0xfc78ff1f
	tinyTmat = 0x3793fdff

	tinyMask = 0x7fffffff // status0 is a 31-bit word

	tinySh0 = 1
	tinySh1 = 10
	tinySh8 = 8

	tinyDefaultSeed = 1

	// Mixing rounds of the seeding recurrence and warm-up advances run
	// after certification.
	tinyMinLoop = 8
	tinyPreLoop = 8
)

type tinyState struct {
	status [4]uint32
	mat1   uint32
	mat2   uint32
	tmat   uint32
}

func (tinyState) engineID() string { return IDTinyMT32 }

type tinyEngine struct{}

// TinyMT32 is the TinyMT engine singleton.
var TinyMT32 Engine = tinyEngine{}

func (tinyEngine) ID() string { return IDTinyMT32 }

func (tinyEngine) InitialState() State {
	return tinyInit(tinyDefaultSeed)
}

// Seed treats the three integers as a 32-bit word list and runs the two-pass
// key-mixing recurrence over the four status words, then certifies and warms
// up. The matrix parameters stay at their defaults through reseeding.
func (tinyEngine) Seed(a1, a2, a3 int64) State {
	return tinyInitByArray([]uint32{uint32(a1), uint32(a2), uint32(a3)})
}

func tinyNext(s tinyState) tinyState {
	y := s.status[3]
	x := (s.status[0] & tinyMask) ^ s.status[1] ^ s.status[2]
	x ^= x << tinySh0
	y ^= (y >> tinySh0) ^ x

	ns := tinyState{
		status: [4]uint32{s.status[1], s.status[2], x ^ (y << tinySh1), y},
		mat1:   s.mat1,
		mat2:   s.mat2,
		tmat:   s.tmat,
	}
	if y&1 == 1 {
		ns.status[1] ^= ns.mat1
		ns.status[2] ^= ns.mat2
	}
	return ns
}

// tinyTemper mixes the status words into one output word; it does not
// advance the state.
func tinyTemper(s tinyState) uint32 {
	t0 := s.status[3]
	t1 := s.status[0] + (s.status[2] >> tinySh8)
	t0 ^= t1
	if t1&1 == 1 {
		t0 ^= s.tmat
	}
	return t0
}

// tinyCertify replaces the two all-zero-equivalent fixed points (the zero
// pattern and the pattern with only the masked-out top bit of status0 set)
// with a fixed non-zero rescue constant.
func tinyCertify(s tinyState) tinyState {
	if s.status[0]&tinyMask == 0 && s.status[1] == 0 && s.status[2] == 0 && s.status[3] == 0 {
		s.status = [4]uint32{'T', 'I', 'N', 'Y'}
	}
	return s
}

func tinyInit(seed uint32) tinyState {
	st := [4]uint32{seed, tinyMat1, tinyMat2, tinyTmat}
	for i := uint32(1); i < tinyMinLoop; i++ {
		st[i&3] ^= i + 1812433253*(st[(i-1)&3]^(st[(i-1)&3]>>30))
	}
	s := tinyCertify(tinyState{status: st, mat1: tinyMat1, mat2: tinyMat2, tmat: tinyTmat})
	for i := 0; i < tinyPreLoop; i++ {
		s = tinyNext(s)
	}
	return s
}

// tinyInitByArray is the word-list seeding recurrence, the 4-word sibling of
// sfmtInitByArray (same func1/func2 mixers, lag 1, mid 1).
func tinyInitByArray(key []uint32) tinyState {
	const lag = 1
	const mid = 1
	const size = 4

	st := [4]uint32{0, tinyMat1, tinyMat2, tinyTmat}
	count := tinyMinLoop
	if len(key)+1 > tinyMinLoop {
		count = len(key) + 1
	}

	r := sfmtInitFunc1(st[0] ^ st[mid%size] ^ st[(size-1)%size])
	st[mid%size] += r
	r += uint32(len(key))
	st[(mid+lag)%size] += r
	st[0] = r
	count--

	i := 1
	j := 0
	for ; j < count && j < len(key); j++ {
		r = sfmtInitFunc1(st[i%size] ^ st[(i+mid)%size] ^ st[(i+size-1)%size])
		st[(i+mid)%size] += r
		r += key[j] + uint32(i)
		st[(i+mid+lag)%size] += r
		st[i%size] = r
		i = (i + 1) % size
	}
	for ; j < count; j++ {
		r = sfmtInitFunc1(st[i%size] ^ st[(i+mid)%size] ^ st[(i+size-1)%size])
		st[(i+mid)%size] += r
		r += uint32(i)
		st[(i+mid+lag)%size] += r
		st[i%size] = r
		i = (i + 1) % size
	}
	for j = 0; j < size; j++ {
		r = sfmtInitFunc2(st[i%size] + st[(i+mid)%size] + st[(i+size-1)%size])
		st[(i+mid)%size] ^= r
		r -= uint32(i)
		st[(i+mid+lag)%size] ^= r
		st[i%size] = r
		i = (i + 1) % size
	}

	s := tinyCertify(tinyState{status: st, mat1: tinyMat1, mat2: tinyMat2, tmat: tinyTmat})
	for k := 0; k < tinyPreLoop; k++ {
		s = tinyNext(s)
	}
	return s
}

func (tinyEngine) UniformFloat(s State) (float64, State) {
	ns := tinyNext(s.(tinyState))
	return (float64(tinyTemper(ns)) + 0.5) * inv32c, ns
}

func (tinyEngine) UniformInt(n int64, s State) (int64, State) {
	ns := tinyNext(s.(tinyState))
	return int64(uint64(tinyTemper(ns))%uint64(n)) + 1, ns
}

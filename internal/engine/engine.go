// Package engine implements the six generation algorithms behind one
// contract. Every operation is a pure function: it never mutates the state it
// is given and returns the advanced state as a new value, so states can be
// shared, stored and replayed freely.
package engine

// Canonical algorithm identifiers.
const (
	IDAS183            = "as183"
	IDXorshift64Star   = "xorshift64star"
	IDXorshift128Plus  = "xorshift128plus"
	IDXorshift1024Star = "xorshift1024star"
	IDSFMT19937        = "sfmt19937"
	IDTinyMT32         = "tinymt32"
)

// State is an opaque, immutable generator state. Concrete types are owned by
// the engine that produced them and never leave this package.
type State interface {
	engineID() string
}

// Engine binds one algorithm's four operations. Implementations assume n >= 1
// for UniformInt; bound validation happens at the public API boundary.
type Engine interface {
	ID() string

	// InitialState returns the fixed, algorithm-defined default state.
	InitialState() State

	// Seed builds a certified state from three caller-supplied integers.
	// Each engine normalizes the raw values so degenerate states (zero
	// registers, modulus multiples) cannot be produced.
	Seed(a1, a2, a3 int64) State

	// UniformFloat draws a value in (0,1) and returns the advanced state.
	UniformFloat(s State) (float64, State)

	// UniformInt draws a value in [1,n] and returns the advanced state.
	UniformInt(n int64, s State) (int64, State)
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestXorshift64Star_ReferenceVector reproduces the published xorshift64*
// sequence for the register 1234567890123456789 bit-for-bit.
func TestXorshift64Star_ReferenceVector(t *testing.T) {
	out, next := xs64Next(1234567890123456789)
	require.Equal(t, uint64(6990727045893414848), out)
	require.Equal(t, uint64(13530606021720249024), next)

	out, next = xs64Next(next)
	require.Equal(t, uint64(11148228654669855037), out)
	require.Equal(t, uint64(9953671098176762529), next)
}

// TestXorshift64Star_InitialState is the reference register.
func TestXorshift64Star_InitialState(t *testing.T) {
	require.Equal(t, xs64State(1234567890123456789), Xorshift64Star.InitialState())
}

// TestXorshift64Star_SeedVector checks the three-stream multiplicative seed
// combination mod 2^64-1.
func TestXorshift64Star_SeedVector(t *testing.T) {
	require.Equal(t, xs64State(15224597067888065392), Xorshift64Star.Seed(1, 2, 3))

	out, _ := xs64Next(15224597067888065392)
	require.Equal(t, uint64(1067322329008292889), out)
}

// TestXorshift64Star_SeedNeverZero: zero is the absorbing state of the
// recurrence and must be unreachable from seeding.
func TestXorshift64Star_SeedNeverZero(t *testing.T) {
	require.Equal(t, xs64State(4032247877060842196), Xorshift64Star.Seed(0, 0, 0))

	for _, a := range []int64{0, 1, -1, 1 << 31, -(1 << 62)} {
		require.NotEqual(t, xs64State(0), Xorshift64Star.Seed(a, a, a))
	}
}

// TestXorshift64Star_Uniform maps the output word onto (0,1) and [1,n].
func TestXorshift64Star_Uniform(t *testing.T) {
	s := Xorshift64Star.Seed(1, 2, 3)

	f, _ := Xorshift64Star.UniformFloat(s)
	require.Equal(t, float64(1067322329008292889)*inv64, f)

	v, _ := Xorshift64Star.UniformInt(10, s)
	require.Equal(t, int64(10), v) // 1067322329008292889 mod 10 + 1

	for i := 0; i < 1000; i++ {
		var f float64
		f, s = Xorshift64Star.UniformFloat(s)
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
	}
}

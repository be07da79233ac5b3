package tests

import (
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/dgud/emprng"
)

const (
	sampleSize = 10000
	numBuckets = 64
)

func sample(t *testing.T, id emprng.Algorithm) []float64 {
	t.Helper()
	s, err := emprng.SeedWith(id, 7, 11, 13)
	require.NoError(t, err)
	out := make([]float64, 0, sampleSize)
	for i := 0; i < sampleSize; i++ {
		var v float64
		v, s = s.Uniform()
		out = append(out, v)
	}
	return out
}

// TestUniformity_Moments: the first two moments of every algorithm sit near
// the uniform distribution's (mean 1/2, stdev 1/sqrt(12)≈0.2887).
func TestUniformity_Moments(t *testing.T) {
	for _, id := range emprng.Algorithms() {
		t.Run(string(id), func(t *testing.T) {
			draws := sample(t, id)

			mean, err := stats.Mean(draws)
			require.NoError(t, err)
			require.InDelta(t, 0.5, mean, 0.01)

			sd, err := stats.StandardDeviation(draws)
			require.NoError(t, err)
			require.InDelta(t, 0.2887, sd, 0.005)
		})
	}
}

// TestUniformity_ChiSquare buckets the draws and compares against the flat
// expectation; df=63, so anything near the statistic's mean passes easily
// and a broken engine blows past the ceiling.
func TestUniformity_ChiSquare(t *testing.T) {
	for _, id := range emprng.Algorithms() {
		t.Run(string(id), func(t *testing.T) {
			draws := sample(t, id)

			obs := make([]float64, numBuckets)
			for _, v := range draws {
				b := int(v * numBuckets)
				if b == numBuckets {
					b--
				}
				obs[b]++
			}
			exp := make([]float64, numBuckets)
			for i := range exp {
				exp[i] = float64(sampleSize) / numBuckets
			}

			chi2 := stat.ChiSquare(obs, exp)
			require.Less(t, chi2, 120.0, "draws are not uniform across %d buckets", numBuckets)
		})
	}
}

// TestUniformity_IntCoverage: every value of a small [1,n] range is hit.
func TestUniformity_IntCoverage(t *testing.T) {
	const n = 16
	for _, id := range emprng.Algorithms() {
		t.Run(string(id), func(t *testing.T) {
			s, err := emprng.SeedWith(id, 7, 11, 13)
			require.NoError(t, err)

			hits := make(map[int64]int, n)
			for i := 0; i < 2000; i++ {
				var v int64
				v, s, err = s.UniformN(n)
				require.NoError(t, err)
				hits[v]++
			}
			require.Len(t, hits, n, "some values of [1,%d] were never drawn", n)
		})
	}
}

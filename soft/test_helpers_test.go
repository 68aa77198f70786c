package soft_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sofft/dense"
	"github.com/katalvlaran/sofft/soft"
)

// mustCoefficients allocates a container or fails the test.
func mustCoefficients(t *testing.T, bw int) *soft.Coefficients {
	t.Helper()

	fc, err := soft.NewCoefficients(bw)
	require.NoError(t, err)

	return fc
}

// mustGrid allocates a cube grid or fails the test.
func mustGrid(t *testing.T, side int) *dense.Grid3D {
	t.Helper()

	g, err := dense.NewGrid3D(side)
	require.NoError(t, err)

	return g
}

// coeffAt reads a coefficient or fails the test.
func coeffAt(t *testing.T, fc *soft.Coefficients, l, M, Mp int) complex128 {
	t.Helper()

	z, err := fc.At(l, M, Mp)
	require.NoError(t, err)

	return z
}

// maxCoeffResidual returns max |a−b| over the full (l, M, M′) index
// space of two same-bandwidth containers.
func maxCoeffResidual(t *testing.T, a, b *soft.Coefficients) float64 {
	t.Helper()
	require.Equal(t, a.Bandwidth(), b.Bandwidth())

	maxAbs := 0.0
	for l := 0; l < a.Bandwidth(); l++ {
		for M := -l; M <= l; M++ {
			for Mp := -l; Mp <= l; Mp++ {
				if d := cmplx.Abs(coeffAt(t, a, l, M, Mp) - coeffAt(t, b, l, M, Mp)); d > maxAbs {
					maxAbs = d
				}
			}
		}
	}

	return maxAbs
}

// maxGridResidual returns max |a−b| over two equally shaped grids.
func maxGridResidual(t *testing.T, a, b *dense.Grid3D) float64 {
	t.Helper()
	require.Equal(t, len(a.Raw()), len(b.Raw()))

	maxAbs := 0.0
	for i, z := range a.Raw() {
		if d := cmplx.Abs(z - b.Raw()[i]); d > maxAbs {
			maxAbs = d
		}
	}

	return maxAbs
}

// serialOpts runs a driver single-threaded regardless of bandwidth.
func serialOpts() soft.Options { return soft.Options{Threads: 1} }

// weightedGridEnergy computes Σ_k w_B(k)·Σ_{layer k} |S|², the discrete
// SO(3) inner-product norm of a synthesis grid (the β-axis is the layer
// axis).
func weightedGridEnergy(t *testing.T, g *dense.Grid3D, w []float64) float64 {
	t.Helper()
	require.Equal(t, g.Lays(), len(w))

	side := g.Rows()
	raw := g.Raw()
	total := 0.0
	for k := 0; k < g.Lays(); k++ {
		layer := raw[k*side*side : (k+1)*side*side]
		sum := 0.0
		for _, z := range layer {
			sum += real(z)*real(z) + imag(z)*imag(z)
		}
		total += w[k] * sum
	}

	return total
}

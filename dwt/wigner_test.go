package dwt_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sofft/dense"
	"github.com/katalvlaran/sofft/dwt"
)

// maxAbsOrder returns J = max(|M|, |Mp|).
func maxAbsOrder(M, Mp int) int {
	if M < 0 {
		M = -M
	}
	if Mp < 0 {
		Mp = -Mp
	}
	if M > Mp {
		return M
	}

	return Mp
}

// wignerAt reads the checked (i, k) entry of a generated matrix.
func wignerAt(t *testing.T, m *dense.Matrix, i, k int) float64 {
	t.Helper()

	v, err := m.At(i, k)
	require.NoError(t, err)

	return v
}

// TestWignerDMatrix_ShapeMismatch verifies the destination-shape guard.
func TestWignerDMatrix_ShapeMismatch(t *testing.T) {
	m, err := dense.NewMatrix(3, 8)
	require.NoError(t, err)

	// bandwidth 4 with M=0 needs a 4×8 destination
	assert.ErrorIs(t, dwt.WignerDMatrix(m, 4, 0, 0), dwt.ErrShapeMismatch)

	w := make([]float64, 8)
	require.NoError(t, dwt.QuadratureWeights(w))
	assert.ErrorIs(t, dwt.WeightedWignerDMatrix(m, 4, 0, 0, w), dwt.ErrShapeMismatch)

	// weight vector length must equal 2·bandwidth
	m4, err := dense.NewMatrix(4, 8)
	require.NoError(t, err)
	assert.ErrorIs(t, dwt.WeightedWignerDMatrix(m4, 4, 0, 0, w[:6]), dwt.ErrShapeMismatch)
}

// TestWignerDMatrix_BaseDegreeConstant verifies the closed form of the
// (0,0) base row: d̃⁰₀₀ = √(1/2), returned negated by the recurrence
// convention.
func TestWignerDMatrix_BaseDegreeConstant(t *testing.T) {
	const bw = 4
	m, err := dense.NewMatrix(bw, 2*bw)
	require.NoError(t, err)
	require.NoError(t, dwt.WignerDMatrix(m, bw, 0, 0))

	want := -math.Sqrt(0.5)
	for k := 0; k < 2*bw; k++ {
		assert.InDelta(t, want, wignerAt(t, m, 0, k), 1e-14, "column %d", k)
	}
}

// TestWignerDMatrix_BaseRowSymmetry verifies the β ↦ π−β parity of the
// generated rows for M = M′ = 0: the sample angles mirror as
// β_{2B-1-k} = π − β_k, and d̃ˡ₀₀(π−β) = (−1)ˡ·d̃ˡ₀₀(β).
func TestWignerDMatrix_BaseRowSymmetry(t *testing.T) {
	const bw = 8
	m, err := dense.NewMatrix(bw, 2*bw)
	require.NoError(t, err)
	require.NoError(t, dwt.WignerDMatrix(m, bw, 0, 0))

	for l := 0; l < bw; l++ {
		sign := 1.0
		if l&1 == 1 {
			sign = -1.0
		}
		for k := 0; k < 2*bw; k++ {
			assert.InDelta(t, sign*wignerAt(t, m, l, 2*bw-1-k), wignerAt(t, m, l, k), 1e-12,
				"degree %d, column %d", l, k)
		}
	}
}

// TestWignerDMatrix_Orthonormality verifies the quadrature exactness that
// the transform relies on: Σ_k w_B(k)·d̃ˡ(β_k)·d̃ˡ′(β_k) = δ_{ll′} for all
// degrees below the bandwidth. The global negation cancels in the
// product.
func TestWignerDMatrix_Orthonormality(t *testing.T) {
	const bw = 8
	w := make([]float64, 2*bw)
	require.NoError(t, dwt.QuadratureWeights(w))

	for _, orders := range [][2]int{{0, 0}, {1, 0}, {2, 1}, {3, 3}} {
		M, Mp := orders[0], orders[1]
		J := maxAbsOrder(M, Mp)

		m, err := dense.NewMatrix(bw-J, 2*bw)
		require.NoError(t, err)
		require.NoError(t, dwt.WignerDMatrix(m, bw, M, Mp))

		for la := 0; la < bw-J; la++ {
			for lb := 0; lb < bw-J; lb++ {
				sum := 0.0
				for k := 0; k < 2*bw; k++ {
					sum += w[k] * wignerAt(t, m, la, k) * wignerAt(t, m, lb, k)
				}

				want := 0.0
				if la == lb {
					want = 1.0
				}
				assert.InDelta(t, want, sum, 1e-10, "orders (%d,%d), degrees %d/%d", M, Mp, J+la, J+lb)
			}
		}
	}
}

// TestWeightedWignerDMatrix_EqualsColumnScaled verifies that the weighted
// generator equals the plain one with every column k multiplied by w[k] —
// the recurrence propagates the base-row weighting linearly.
func TestWeightedWignerDMatrix_EqualsColumnScaled(t *testing.T) {
	const bw = 6
	w := make([]float64, 2*bw)
	require.NoError(t, dwt.QuadratureWeights(w))

	for _, orders := range [][2]int{{0, 0}, {2, 0}, {3, -2}, {-1, 4}} {
		M, Mp := orders[0], orders[1]
		J := maxAbsOrder(M, Mp)

		plain, err := dense.NewMatrix(bw-J, 2*bw)
		require.NoError(t, err)
		require.NoError(t, dwt.WignerDMatrix(plain, bw, M, Mp))

		weighted, err := dense.NewMatrix(bw-J, 2*bw)
		require.NoError(t, err)
		require.NoError(t, dwt.WeightedWignerDMatrix(weighted, bw, M, Mp, w))

		for i := 0; i < bw-J; i++ {
			for k := 0; k < 2*bw; k++ {
				assert.InDelta(t, w[k]*wignerAt(t, plain, i, k), wignerAt(t, weighted, i, k), 1e-12,
					"orders (%d,%d), entry (%d,%d)", M, Mp, i, k)
			}
		}
	}
}

// TestWignerDMatrix_SymmetryNegatedOrders verifies the discrete image of
// d̃ˡ(M,M′) = d̃ˡ(−M′,−M): both generators must produce identical
// matrices.
func TestWignerDMatrix_SymmetryNegatedOrders(t *testing.T) {
	const bw = 6
	a, err := dense.NewMatrix(bw-3, 2*bw)
	require.NoError(t, err)
	require.NoError(t, dwt.WignerDMatrix(a, bw, 3, 1))

	b, err := dense.NewMatrix(bw-3, 2*bw)
	require.NoError(t, err)
	require.NoError(t, dwt.WignerDMatrix(b, bw, -1, -3))

	for i := 0; i < bw-3; i++ {
		for k := 0; k < 2*bw; k++ {
			assert.InDelta(t, wignerAt(t, a, i, k), wignerAt(t, b, i, k), 1e-12, "entry (%d,%d)", i, k)
		}
	}
}

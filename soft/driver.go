package soft

import (
	"github.com/katalvlaran/sofft/dense"
)

// Shared plumbing of the two transform drivers: grid validation and the
// strided copies between the grid, the coefficient container and the
// per-task work vectors.

// validateGrid checks the driver preconditions — equal axes, even axes,
// bandwidth agreement — and returns the bandwidth. The caller's outputs
// are untouched on failure.
func validateGrid(g *dense.Grid3D, fc *Coefficients) (int, error) {
	if g.Rows() != g.Cols() || g.Rows() != g.Lays() {
		return 0, ErrGridShape
	}
	if g.Rows()&1 == 1 {
		return 0, ErrGridParity
	}

	bw := g.Rows() / 2
	if bw != fc.bandwidth {
		return 0, ErrBandwidthMismatch
	}

	return bw, nil
}

// loadPencil gathers the layer-axis pencil (the β samples) of the grid
// at in-layer position (row, col) into dst: dst[k] = grid(row, col, k).
// bw2 is the grid side.
func loadPencil(raw []complex128, bw2 int, dst []complex128, row, col int) {
	base := col*bw2 + row
	stride := bw2 * bw2
	for k := range dst {
		dst[k] = raw[k*stride+base]
	}
}

// storePencil scatters src back into the layer-axis pencil at
// (row, col): grid(row, col, k) = src[k].
func storePencil(raw []complex128, bw2 int, src []complex128, row, col int) {
	base := col*bw2 + row
	stride := bw2 * bw2
	for k := range src {
		raw[k*stride+base] = src[k]
	}
}

// writeCoeffs stores the DWT output sh into the coefficient rows
// (J+t, M, Mp), scaled by norm.
func writeCoeffs(fc *Coefficients, J, M, Mp int, sh []complex128, norm complex128) {
	for t, z := range sh {
		fc.set(J+t, M, Mp, norm*z)
	}
}

// loadCoeffs fills sh with the coefficient rows (J+t, M, Mp), scaled by
// norm — the inverse counterpart of writeCoeffs.
func loadCoeffs(sh []complex128, fc *Coefficients, J, M, Mp int, norm complex128) {
	for t := range sh {
		sh[t] = norm * fc.at(J+t, M, Mp)
	}
}

// pairOrders reconstructs the order pair (M, M′) with 1 ≤ M′ < M < bw
// from the fused loop index MMp ∈ [0, (bw−2)(bw−1)/2); the fusion keeps
// the off-diagonal enumeration a single dynamically scheduled region.
func pairOrders(bw, MMp int) (M, Mp int) {
	i := MMp/(bw-1) + 1
	j := MMp%(bw-1) + 1

	if j > i {
		return bw - i, bw - j
	}

	return i + 1, j
}

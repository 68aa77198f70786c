package soft

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sofft/dense"
	"github.com/katalvlaran/sofft/dwt"
	"github.com/katalvlaran/sofft/fft2"
)

// DSOFT computes the forward SO(3) Fourier transform of the 2B×2B×2B
// sample grid into fc. The polar angle β indexes the layers of the grid
// (layer k samples β_k = π(2k+1)/4B); the azimuthal angles γ and α are
// the row and column axes inside each layer. The driver works on a
// private copy of the grid, so the caller's sample is preserved.
//
// Pipeline:
//  1. Layer-wise forward 2-D FFT: each β-slice is transformed over its
//     two azimuthal axes independently, in place.
//  2. Discrete Wigner transform per order pair (M, M′): a weighted
//     Wigner-d matrix applied across layers to the pencil at the modular
//     in-layer index (M′ mod 2B, M mod 2B) — negative orders alias the
//     tail of the frequency axes. Seven Wigner-d symmetries let one
//     matrix serve up to eight order pairs through in-place flips and
//     vector sign choreography; the per-case signs below follow the
//     symmetry relations
//     d̃ˡ(M,M′) = (−1)^{M−M′}·d̃ˡ(−M,−M′) = d̃ˡ(−M′,−M) = ... evaluated
//     at the sample angles.
//
// Returns ErrGridShape, ErrGridParity or ErrBandwidthMismatch — without
// writing to fc — when the grid validation preconditions fail.
//
// Complexity: O(B⁴) + O(B³ log B); bit-identical output for every
// Options.Threads value.
func DSOFT(sample *dense.Grid3D, fc *Coefficients, opts Options) error {
	bw, err := validateGrid(sample, fc)
	if err != nil {
		return err
	}

	bw2 := 2 * bw
	threads := clampThreads(opts.Threads)

	grid := sample.Clone()
	if err = fft2.ForwardLayerwise(grid.Raw(), bw2, bw2, bw2, threads); err != nil {
		return err
	}

	weights := make([]float64, bw2)
	if err = dwt.QuadratureWeights(weights); err != nil {
		return err
	}

	norm := complex(math.Pi/float64(bw*bw2), 0)
	raw := grid.Raw()

	// The (0,0) pair runs before the parallel regions.
	if err = forwardZero(raw, fc, bw, weights, norm); err != nil {
		return err
	}

	if threads == 1 || bw < Threshold {
		for M := 1; M < bw; M++ {
			if err = forwardAxis(raw, fc, bw, M, weights, norm); err != nil {
				return err
			}
		}
		for MMp := 0; MMp < (bw-2)*(bw-1)/2; MMp++ {
			if err = forwardPair(raw, fc, bw, MMp, weights, norm); err != nil {
				return err
			}
		}

		return nil
	}

	// Two fork-join regions: (a) the axis and diagonal families over M,
	// (b) the fused off-diagonal pairs. Tasks share the transformed grid
	// and the weights read-only and write disjoint coefficient cells.
	var g errgroup.Group
	g.SetLimit(threads)
	for M := 1; M < bw; M++ {
		M := M
		g.Go(func() error { return forwardAxis(raw, fc, bw, M, weights, norm) })
	}
	if err = g.Wait(); err != nil {
		return err
	}
	for MMp := 0; MMp < (bw-2)*(bw-1)/2; MMp++ {
		MMp := MMp
		g.Go(func() error { return forwardPair(raw, fc, bw, MMp, weights, norm) })
	}

	return g.Wait()
}

// forwardZero handles the base pair (M, M′) = (0, 0).
func forwardZero(raw []complex128, fc *Coefficients, bw int, weights []float64, norm complex128) error {
	bw2 := 2 * bw

	dw, err := dense.NewMatrix(bw, bw2)
	if err != nil {
		return err
	}
	if err = dwt.WeightedWignerDMatrix(dw, bw, 0, 0, weights); err != nil {
		return err
	}
	dw.Scale(-1) // the recurrence returns the negated matrix

	s, err := dense.NewVector(bw2, dense.ColumnVector)
	if err != nil {
		return err
	}
	loadPencil(raw, bw2, s.Raw(), 0, 0)

	sh, err := dw.MulVec(s)
	if err != nil {
		return err
	}
	writeCoeffs(fc, 0, 0, 0, sh.Raw(), norm)

	return nil
}

// forwardAxis handles, for one 1 ≤ M < bw, the eight order pairs that
// reuse the Wigner matrices of (M, 0) and (M, M): the axis cases
// (±M, 0), (0, ±M) and the diagonal cases (±M, ±M).
func forwardAxis(raw []complex128, fc *Coefficients, bw, M int, weights []float64, norm complex128) error {
	bw2 := 2 * bw

	dw, err := dense.NewMatrix(bw-M, bw2)
	if err != nil {
		return err
	}
	if err = dwt.WeightedWignerDMatrix(dw, bw, M, 0, weights); err != nil {
		return err
	}
	dw.Scale(-1)

	s, err := dense.NewVector(bw2, dense.ColumnVector)
	if err != nil {
		return err
	}

	// case f_{M,0}
	loadPencil(raw, bw2, s.Raw(), 0, M)
	sh, err := dw.MulVec(s)
	if err != nil {
		return err
	}
	writeCoeffs(fc, M, M, 0, sh.Raw(), norm)

	// case f_{0,M}
	loadPencil(raw, bw2, s.Raw(), M, 0)
	if sh, err = dw.MulVec(s); err != nil {
		return err
	}
	if M&1 == 1 {
		sh.Scale(-1)
	}
	writeCoeffs(fc, M, 0, M, sh.Raw(), norm)

	// case f_{-M,0}: reuse via column reversal, then the alternating sign
	// whose parity follows M
	dense.FlipLR(dw)
	loadPencil(raw, bw2, s.Raw(), 0, bw2-M)
	if sh, err = dw.MulVec(s); err != nil {
		return err
	}
	if M&1 == 1 {
		sh.NegateEvery2nd(0)
	} else {
		sh.NegateEvery2nd(1)
	}
	writeCoeffs(fc, M, -M, 0, sh.Raw(), norm)

	// case f_{0,-M}
	loadPencil(raw, bw2, s.Raw(), bw2-M, 0)
	if sh, err = dw.MulVec(s); err != nil {
		return err
	}
	sh.NegateEvery2nd(1)
	writeCoeffs(fc, M, 0, -M, sh.Raw(), norm)

	// Fresh Wigner matrix for the diagonal family.
	if err = dwt.WeightedWignerDMatrix(dw, bw, M, M, weights); err != nil {
		return err
	}
	dw.Scale(-1)

	// case f_{M,M}
	loadPencil(raw, bw2, s.Raw(), M, M)
	if sh, err = dw.MulVec(s); err != nil {
		return err
	}
	writeCoeffs(fc, M, M, M, sh.Raw(), norm)

	// case f_{-M,-M}
	loadPencil(raw, bw2, s.Raw(), bw2-M, bw2-M)
	if sh, err = dw.MulVec(s); err != nil {
		return err
	}
	writeCoeffs(fc, M, -M, -M, sh.Raw(), norm)

	// Anti-diagonal reuse: flip left-right and negate odd rows, once for
	// both remaining cases.
	dense.FlipLRNegateOddRows(dw)

	// case f_{M,-M}
	loadPencil(raw, bw2, s.Raw(), bw2-M, M)
	if sh, err = dw.MulVec(s); err != nil {
		return err
	}
	writeCoeffs(fc, M, M, -M, sh.Raw(), norm)

	// case f_{-M,M}
	loadPencil(raw, bw2, s.Raw(), M, bw2-M)
	if sh, err = dw.MulVec(s); err != nil {
		return err
	}
	writeCoeffs(fc, M, -M, M, sh.Raw(), norm)

	return nil
}

// forwardPair handles the eight off-diagonal order pairs generated by
// one (M, M′) with 1 ≤ M′ < M < bw, all against the single Wigner
// matrix of (M, M′). The matrix is used negated, as the recurrence
// returns it; the global sign is absorbed case by case into the vector
// flips.
func forwardPair(raw []complex128, fc *Coefficients, bw, MMp int, weights []float64, norm complex128) error {
	M, Mp := pairOrders(bw, MMp)
	bw2 := 2 * bw

	dw, err := dense.NewMatrix(bw-M, bw2)
	if err != nil {
		return err
	}
	if err = dwt.WeightedWignerDMatrix(dw, bw, M, Mp, weights); err != nil {
		return err
	}

	s, err := dense.NewVector(bw2, dense.ColumnVector)
	if err != nil {
		return err
	}

	// case f_{M,Mp}
	loadPencil(raw, bw2, s.Raw(), Mp, M)
	sh, err := dw.MulVec(s)
	if err != nil {
		return err
	}
	sh.Scale(-1)
	writeCoeffs(fc, M, M, Mp, sh.Raw(), norm)

	// case f_{Mp,M}
	loadPencil(raw, bw2, s.Raw(), M, Mp)
	if sh, err = dw.MulVec(s); err != nil {
		return err
	}
	if (M-Mp)&1 == 0 {
		sh.Scale(-1)
	}
	writeCoeffs(fc, M, Mp, M, sh.Raw(), norm)

	// case f_{-M,-Mp}
	loadPencil(raw, bw2, s.Raw(), bw2-Mp, bw2-M)
	if sh, err = dw.MulVec(s); err != nil {
		return err
	}
	if (M-Mp)&1 == 0 {
		sh.Scale(-1)
	}
	writeCoeffs(fc, M, -M, -Mp, sh.Raw(), norm)

	// case f_{-Mp,-M}
	loadPencil(raw, bw2, s.Raw(), bw2-M, bw2-Mp)
	if sh, err = dw.MulVec(s); err != nil {
		return err
	}
	sh.Scale(-1)
	writeCoeffs(fc, M, -Mp, -M, sh.Raw(), norm)

	// Mixed-sign reuse: flip left-right and negate even rows — valid
	// because the weights share the Wigner matrix's β-mirror symmetry.
	dense.FlipLRNegateEvenRows(dw)

	// case f_{Mp,-M}
	loadPencil(raw, bw2, s.Raw(), bw2-M, Mp)
	if sh, err = dw.MulVec(s); err != nil {
		return err
	}
	writeCoeffs(fc, M, Mp, -M, sh.Raw(), norm)

	// case f_{M,-Mp}
	loadPencil(raw, bw2, s.Raw(), bw2-Mp, M)
	if sh, err = dw.MulVec(s); err != nil {
		return err
	}
	writeCoeffs(fc, M, M, -Mp, sh.Raw(), norm)

	// The remaining two cases differ by the (M−M′) parity sign.
	if (M-Mp)&1 == 1 {
		dw.Scale(-1)
	}

	// case f_{-Mp,M}
	loadPencil(raw, bw2, s.Raw(), M, bw2-Mp)
	if sh, err = dw.MulVec(s); err != nil {
		return err
	}
	writeCoeffs(fc, M, -Mp, M, sh.Raw(), norm)

	// case f_{-M,Mp}
	loadPencil(raw, bw2, s.Raw(), Mp, bw2-M)
	if sh, err = dw.MulVec(s); err != nil {
		return err
	}
	writeCoeffs(fc, M, -M, Mp, sh.Raw(), norm)

	return nil
}

package soft

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sofft/dense"
	"github.com/katalvlaran/sofft/dwt"
	"github.com/katalvlaran/sofft/fft2"
)

// IDSOFT synthesizes the 2B×2B×2B sample grid from the coefficients in
// fc, writing into synthesis. It mirrors DSOFT stage by stage: per order
// pair the transposed (unweighted) Wigner-d matrix maps the coefficient
// column back to a layer-axis pencil of the grid, then a layer-wise inverse 2-D
// FFT and the global 1/(4B²) normalization finish the synthesis —
// IDSOFT∘DSOFT is the identity on band-limited inputs up to round-off.
//
// The synthesis buffer is zeroed after validation: pencils at the
// unrepresentable order index B stay zero by construction.
//
// Returns ErrGridShape, ErrGridParity or ErrBandwidthMismatch — without
// writing to synthesis — when the preconditions fail.
func IDSOFT(fc *Coefficients, synthesis *dense.Grid3D, opts Options) error {
	bw, err := validateGrid(synthesis, fc)
	if err != nil {
		return err
	}

	bw2 := 2 * bw
	threads := clampThreads(opts.Threads)

	raw := synthesis.Raw()
	for i := range raw {
		raw[i] = 0
	}

	norm := complex(float64(bw*bw2)/math.Pi, 0)

	// The (0,0) pair runs before the parallel regions.
	if err = inverseZero(raw, fc, bw, norm); err != nil {
		return err
	}

	if threads == 1 || bw < Threshold {
		for M := 1; M < bw; M++ {
			if err = inverseAxis(raw, fc, bw, M, norm); err != nil {
				return err
			}
		}
		for MMp := 0; MMp < (bw-2)*(bw-1)/2; MMp++ {
			if err = inversePair(raw, fc, bw, MMp, norm); err != nil {
				return err
			}
		}
	} else {
		// Mirrored fork-join regions; tasks read fc and write disjoint
		// pencils of the synthesis grid.
		var g errgroup.Group
		g.SetLimit(threads)
		for M := 1; M < bw; M++ {
			M := M
			g.Go(func() error { return inverseAxis(raw, fc, bw, M, norm) })
		}
		if err = g.Wait(); err != nil {
			return err
		}
		for MMp := 0; MMp < (bw-2)*(bw-1)/2; MMp++ {
			MMp := MMp
			g.Go(func() error { return inversePair(raw, fc, bw, MMp, norm) })
		}
		if err = g.Wait(); err != nil {
			return err
		}
	}

	if err = fft2.InverseLayerwise(raw, bw2, bw2, bw2, threads); err != nil {
		return err
	}
	synthesis.Scale(complex(1.0/float64(4*bw*bw), 0))

	return nil
}

// inverseZero handles the base pair (M, M′) = (0, 0).
func inverseZero(raw []complex128, fc *Coefficients, bw int, norm complex128) error {
	bw2 := 2 * bw

	d, err := dense.NewMatrix(bw, bw2)
	if err != nil {
		return err
	}
	if err = dwt.WignerDMatrix(d, bw, 0, 0); err != nil {
		return err
	}
	d.Scale(-1)
	d.Transpose()

	sh, err := dense.NewVector(bw, dense.ColumnVector)
	if err != nil {
		return err
	}
	loadCoeffs(sh.Raw(), fc, 0, 0, 0, norm)

	s, err := d.MulVec(sh)
	if err != nil {
		return err
	}
	storePencil(raw, bw2, s.Raw(), 0, 0)

	return nil
}

// inverseAxis mirrors forwardAxis for one 1 ≤ M < bw: the transposed
// Wigner matrices of (M, 0) and (M, M) synthesize the eight axis and
// diagonal pencils, with FlipUD-family reuse instead of FlipLR.
func inverseAxis(raw []complex128, fc *Coefficients, bw, M int, norm complex128) error {
	bw2 := 2 * bw

	d, err := dense.NewMatrix(bw-M, bw2)
	if err != nil {
		return err
	}
	if err = dwt.WignerDMatrix(d, bw, M, 0); err != nil {
		return err
	}
	d.Scale(-1)
	d.Transpose() // now 2B × (B−M)

	sh, err := dense.NewVector(bw-M, dense.ColumnVector)
	if err != nil {
		return err
	}

	// case f_{M,0}
	loadCoeffs(sh.Raw(), fc, M, M, 0, norm)
	s, err := d.MulVec(sh)
	if err != nil {
		return err
	}
	storePencil(raw, bw2, s.Raw(), 0, M)

	// case f_{0,M}
	loadCoeffs(sh.Raw(), fc, M, 0, M, norm)
	if M&1 == 1 {
		sh.Scale(-1)
	}
	if s, err = d.MulVec(sh); err != nil {
		return err
	}
	storePencil(raw, bw2, s.Raw(), M, 0)

	// Mirror reuse for the negated axis orders.
	dense.FlipUD(d)

	// case f_{-M,0}
	loadCoeffs(sh.Raw(), fc, M, -M, 0, norm)
	if M&1 == 1 {
		sh.NegateEvery2nd(0)
	} else {
		sh.NegateEvery2nd(1)
	}
	if s, err = d.MulVec(sh); err != nil {
		return err
	}
	storePencil(raw, bw2, s.Raw(), 0, bw2-M)

	// case f_{0,-M}
	loadCoeffs(sh.Raw(), fc, M, 0, -M, norm)
	sh.NegateEvery2nd(1)
	if s, err = d.MulVec(sh); err != nil {
		return err
	}
	storePencil(raw, bw2, s.Raw(), bw2-M, 0)

	// Fresh transposed Wigner matrix for the diagonal family.
	if d, err = dense.NewMatrix(bw-M, bw2); err != nil {
		return err
	}
	if err = dwt.WignerDMatrix(d, bw, M, M); err != nil {
		return err
	}
	d.Scale(-1)
	d.Transpose()

	// case f_{M,M}
	loadCoeffs(sh.Raw(), fc, M, M, M, norm)
	if s, err = d.MulVec(sh); err != nil {
		return err
	}
	storePencil(raw, bw2, s.Raw(), M, M)

	// case f_{-M,-M}
	loadCoeffs(sh.Raw(), fc, M, -M, -M, norm)
	if s, err = d.MulVec(sh); err != nil {
		return err
	}
	storePencil(raw, bw2, s.Raw(), bw2-M, bw2-M)

	// Anti-diagonal reuse, the transposed image of FlipLRNegateOddRows.
	dense.FlipUDNegateOddCols(d)

	// case f_{M,-M}
	loadCoeffs(sh.Raw(), fc, M, M, -M, norm)
	if s, err = d.MulVec(sh); err != nil {
		return err
	}
	storePencil(raw, bw2, s.Raw(), bw2-M, M)

	// case f_{-M,M}
	loadCoeffs(sh.Raw(), fc, M, -M, M, norm)
	if s, err = d.MulVec(sh); err != nil {
		return err
	}
	storePencil(raw, bw2, s.Raw(), M, bw2-M)

	return nil
}

// inversePair mirrors forwardPair: eight off-diagonal pencils from the
// single transposed Wigner matrix of (M, M′), 1 ≤ M′ < M < bw.
func inversePair(raw []complex128, fc *Coefficients, bw, MMp int, norm complex128) error {
	M, Mp := pairOrders(bw, MMp)
	bw2 := 2 * bw

	d, err := dense.NewMatrix(bw-M, bw2)
	if err != nil {
		return err
	}
	if err = dwt.WignerDMatrix(d, bw, M, Mp); err != nil {
		return err
	}
	d.Transpose() // unnegated; the sign rides on the vector flips

	sh, err := dense.NewVector(bw-M, dense.ColumnVector)
	if err != nil {
		return err
	}

	// case f_{M,Mp}
	loadCoeffs(sh.Raw(), fc, M, M, Mp, norm)
	sh.Scale(-1)
	s, err := d.MulVec(sh)
	if err != nil {
		return err
	}
	storePencil(raw, bw2, s.Raw(), Mp, M)

	// case f_{Mp,M}
	loadCoeffs(sh.Raw(), fc, M, Mp, M, norm)
	if (M-Mp)&1 == 0 {
		sh.Scale(-1)
	}
	if s, err = d.MulVec(sh); err != nil {
		return err
	}
	storePencil(raw, bw2, s.Raw(), M, Mp)

	// case f_{-M,-Mp}
	loadCoeffs(sh.Raw(), fc, M, -M, -Mp, norm)
	if (M-Mp)&1 == 0 {
		sh.Scale(-1)
	}
	if s, err = d.MulVec(sh); err != nil {
		return err
	}
	storePencil(raw, bw2, s.Raw(), bw2-Mp, bw2-M)

	// case f_{-Mp,-M}
	loadCoeffs(sh.Raw(), fc, M, -Mp, -M, norm)
	sh.Scale(-1)
	if s, err = d.MulVec(sh); err != nil {
		return err
	}
	storePencil(raw, bw2, s.Raw(), bw2-M, bw2-Mp)

	// Mixed-sign reuse, the transposed image of FlipLRNegateEvenRows.
	dense.FlipUDNegateEvenCols(d)

	// case f_{Mp,-M}
	loadCoeffs(sh.Raw(), fc, M, Mp, -M, norm)
	if s, err = d.MulVec(sh); err != nil {
		return err
	}
	storePencil(raw, bw2, s.Raw(), bw2-M, Mp)

	// case f_{M,-Mp}
	loadCoeffs(sh.Raw(), fc, M, M, -Mp, norm)
	if s, err = d.MulVec(sh); err != nil {
		return err
	}
	storePencil(raw, bw2, s.Raw(), bw2-Mp, M)

	// The remaining two cases differ by the (M−M′) parity sign.
	if (M-Mp)&1 == 1 {
		d.Scale(-1)
	}

	// case f_{-Mp,M}
	loadCoeffs(sh.Raw(), fc, M, -Mp, M, norm)
	if s, err = d.MulVec(sh); err != nil {
		return err
	}
	storePencil(raw, bw2, s.Raw(), M, bw2-Mp)

	// case f_{-M,Mp}
	loadCoeffs(sh.Raw(), fc, M, -M, Mp, norm)
	if s, err = d.MulVec(sh); err != nil {
		return err
	}
	storePencil(raw, bw2, s.Raw(), Mp, bw2-M)

	return nil
}

package fft2

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/dsp/fourier"
)

// ErrBadDims is returned when the plane dimensions are non-positive or
// the buffer length does not equal cols·rows·lays.
var ErrBadDims = errors.New("fft2: invalid layer dimensions")

// ForwardLayerwise applies an unnormalized forward 2-D DFT to each of the
// lays planes of buf, in place. Each plane holds rows·cols complex values
// in column-major order (rows contiguous). threads is an advisory upper
// bound on worker goroutines; values below 2 run serially.
// Complexity: O(lays·rows·cols·log(rows·cols)).
func ForwardLayerwise(buf []complex128, cols, rows, lays, threads int) error {
	return layerwise(buf, cols, rows, lays, threads, false)
}

// InverseLayerwise applies the conjugate-sign transform to each plane of
// buf, in place, also unnormalized: ForwardLayerwise followed by
// InverseLayerwise multiplies every plane by rows·cols.
func InverseLayerwise(buf []complex128, cols, rows, lays, threads int) error {
	return layerwise(buf, cols, rows, lays, threads, true)
}

func layerwise(buf []complex128, cols, rows, lays, threads int, inverse bool) error {
	if cols <= 0 || rows <= 0 || lays <= 0 || len(buf) != cols*rows*lays {
		return fmt.Errorf("fft2: buffer %d for %d×%d×%d: %w", len(buf), rows, cols, lays, ErrBadDims)
	}

	if threads < 2 || lays == 1 {
		colPlan, rowPlan := borrowPlan(rows), borrowPlan(cols)
		scratch := make([]complex128, cols)
		for k := 0; k < lays; k++ {
			transformLayer(buf[k*rows*cols:(k+1)*rows*cols], rows, cols, colPlan, rowPlan, scratch, inverse)
		}
		releasePlan(rows, colPlan)
		releasePlan(cols, rowPlan)

		return nil
	}

	var g errgroup.Group
	g.SetLimit(threads)
	for k := 0; k < lays; k++ {
		layer := buf[k*rows*cols : (k+1)*rows*cols]
		g.Go(func() error {
			colPlan, rowPlan := borrowPlan(rows), borrowPlan(cols)
			scratch := make([]complex128, cols)
			transformLayer(layer, rows, cols, colPlan, rowPlan, scratch, inverse)
			releasePlan(rows, colPlan)
			releasePlan(cols, rowPlan)

			return nil
		})
	}

	return g.Wait()
}

// transformLayer runs the separable 2-D transform on one plane: first a
// length-rows pass over every (contiguous) column, then a length-cols
// pass over every row gathered through scratch.
func transformLayer(layer []complex128, rows, cols int, colPlan, rowPlan *fourier.CmplxFFT, scratch []complex128, inverse bool) {
	for j := 0; j < cols; j++ {
		seg := layer[j*rows : (j+1)*rows]
		if inverse {
			colPlan.Sequence(seg, seg)
		} else {
			colPlan.Coefficients(seg, seg)
		}
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			scratch[j] = layer[j*rows+i]
		}
		if inverse {
			rowPlan.Sequence(scratch, scratch)
		} else {
			rowPlan.Coefficients(scratch, scratch)
		}
		for j := 0; j < cols; j++ {
			layer[j*rows+i] = scratch[j]
		}
	}
}

package dense

import (
	"fmt"
	"math/cmplx"
	"strings"
)

// Grid3D is a complex-valued 3-D grid in layer-major, column-major order:
// element (i, j, k) lives at flat offset k*rows*cols + j*rows + i.
// In the SO(3) transform drivers all three dimensions equal 2B, the
// layer axis samples the polar angle β and the in-layer axes carry the
// two azimuthal angles.
type Grid3D struct {
	rows, cols, lays int
	data             []complex128
}

// NewGrid3D creates a zeroed cube grid of side rcl.
// Returns ErrBadShape unless rcl > 0.
func NewGrid3D(rcl int) (*Grid3D, error) {
	return NewGrid3DDims(rcl, rcl, rcl)
}

// NewGrid3DDims creates a zeroed rows×cols×lays grid.
// Returns ErrBadShape unless all dimensions are > 0.
func NewGrid3DDims(rows, cols, lays int) (*Grid3D, error) {
	if rows <= 0 || cols <= 0 || lays <= 0 {
		return nil, ErrBadShape
	}

	return &Grid3D{
		rows: rows,
		cols: cols,
		lays: lays,
		data: make([]complex128, rows*cols*lays),
	}, nil
}

// NewGrid3DFull creates a cube grid of side rcl with every element set
// to fill.
func NewGrid3DFull(rcl int, fill complex128) (*Grid3D, error) {
	g, err := NewGrid3D(rcl)
	if err != nil {
		return nil, err
	}
	for i := range g.data {
		g.data[i] = fill
	}

	return g, nil
}

// Rows returns the number of rows per layer.
func (g *Grid3D) Rows() int { return g.rows }

// Cols returns the number of columns per layer.
func (g *Grid3D) Cols() int { return g.cols }

// Lays returns the number of layers.
func (g *Grid3D) Lays() int { return g.lays }

// Raw exposes the backing slice in layer-major, column-major order;
// writes through it are visible to the grid.
func (g *Grid3D) Raw() []complex128 { return g.data }

// At retrieves the element at (row, col, lay), or ErrOutOfRange.
func (g *Grid3D) At(row, col, lay int) (complex128, error) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols || lay < 0 || lay >= g.lays {
		return 0, fmt.Errorf("Grid3D.At(%d,%d,%d): %w", row, col, lay, ErrOutOfRange)
	}

	return g.data[lay*g.rows*g.cols+col*g.rows+row], nil
}

// Set assigns v at (row, col, lay), or returns ErrOutOfRange.
func (g *Grid3D) Set(row, col, lay int, v complex128) error {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols || lay < 0 || lay >= g.lays {
		return fmt.Errorf("Grid3D.Set(%d,%d,%d): %w", row, col, lay, ErrOutOfRange)
	}
	g.data[lay*g.rows*g.cols+col*g.rows+row] = v

	return nil
}

// Scale multiplies every element by z in place.
// Complexity: O(rows·cols·lays).
func (g *Grid3D) Scale(z complex128) {
	for i := range g.data {
		g.data[i] *= z
	}
}

// Energy returns Σ|z|² over all grid elements.
func (g *Grid3D) Energy() float64 {
	var e float64
	for _, z := range g.data {
		e += real(z)*real(z) + imag(z)*imag(z)
	}

	return e
}

// Clone returns a deep copy of the grid.
func (g *Grid3D) Clone() *Grid3D {
	d := make([]complex128, len(g.data))
	copy(d, g.data)

	return &Grid3D{rows: g.rows, cols: g.cols, lays: g.lays, data: d}
}

// String implements fmt.Stringer for debugging; layers are printed in
// order with their index.
func (g *Grid3D) String() string {
	var sb strings.Builder
	for k := 0; k < g.lays; k++ {
		fmt.Fprintf(&sb, "layer[%d]\n", k)
		for i := 0; i < g.rows; i++ {
			for j := 0; j < g.cols; j++ {
				z := g.data[k*g.rows*g.cols+j*g.rows+i]
				if cmplx.Abs(z) >= 1000 {
					fmt.Fprintf(&sb, " %12.4e%+.4ei", real(z), imag(z))
				} else {
					fmt.Fprintf(&sb, " %9.4f%+.4fi", real(z), imag(z))
				}
			}
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

package dense

import (
	"fmt"
	"strings"
)

// CxMatrix is a complex-valued dense matrix in column-major order,
// the backing store for the per-degree coefficient blocks.
type CxMatrix struct {
	r, c int
	data []complex128
}

// NewCxMatrix creates an r×c CxMatrix initialized to zeros.
// Returns ErrBadShape unless rows and cols are both > 0.
func NewCxMatrix(rows, cols int) (*CxMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &CxMatrix{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *CxMatrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *CxMatrix) Cols() int { return m.c }

// Raw exposes the column-major backing slice; writes through it are
// visible to the matrix.
func (m *CxMatrix) Raw() []complex128 { return m.data }

// At retrieves the element at (row, col), or ErrOutOfRange.
func (m *CxMatrix) At(row, col int) (complex128, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("CxMatrix.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[col*m.r+row], nil
}

// Set assigns v at (row, col), or returns ErrOutOfRange.
func (m *CxMatrix) Set(row, col int, v complex128) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return fmt.Errorf("CxMatrix.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	m.data[col*m.r+row] = v

	return nil
}

// Clone returns a deep copy of the matrix.
func (m *CxMatrix) Clone() *CxMatrix {
	d := make([]complex128, len(m.data))
	copy(d, m.data)

	return &CxMatrix{r: m.r, c: m.c, data: d}
}

// String implements fmt.Stringer for debugging.
func (m *CxMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			z := m.data[j*m.r+i]
			fmt.Fprintf(&sb, "%.4g%+.4gi", real(z), imag(z))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

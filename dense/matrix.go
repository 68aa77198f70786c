package dense

import (
	"fmt"
	"strings"
)

// Matrix is a real-valued dense matrix in column-major order.
// r is rows, c is columns, and data holds r*c elements with element (i, j)
// at flat offset j*r + i.
type Matrix struct {
	r, c int
	data []float64
}

// NewMatrix creates an r×c Matrix initialized to zeros.
// Returns ErrBadShape unless rows and cols are both > 0.
// Complexity: O(r·c) time and memory.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Matrix{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

// Raw exposes the column-major backing slice. The slice aliases the
// matrix storage: writes through it are visible to the matrix. Intended
// for hot paths that fill or scan whole matrices.
func (m *Matrix) Raw() []float64 { return m.data }

// At retrieves the element at (row, col), or ErrOutOfRange.
func (m *Matrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Matrix.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[col*m.r+row], nil
}

// Set assigns v at (row, col), or returns ErrOutOfRange.
func (m *Matrix) Set(row, col int, v float64) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return fmt.Errorf("Matrix.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	m.data[col*m.r+row] = v

	return nil
}

// Scale multiplies every element by a in place.
// Complexity: O(r·c).
func (m *Matrix) Scale(a float64) {
	for i := range m.data {
		m.data[i] *= a
	}
}

// Transpose replaces the receiver with its transpose. The buffer is
// rebuilt for non-square matrices; square matrices are swapped in place.
// Complexity: O(r·c) time, O(r·c) extra memory in the non-square case.
func (m *Matrix) Transpose() {
	if m.r == m.c {
		for j := 0; j < m.c; j++ {
			for i := j + 1; i < m.r; i++ {
				m.data[j*m.r+i], m.data[i*m.r+j] = m.data[i*m.r+j], m.data[j*m.r+i]
			}
		}

		return
	}

	t := make([]float64, len(m.data))
	// destination is c×r column-major: element (j, i) at offset i*c + j
	for j := 0; j < m.c; j++ {
		for i := 0; i < m.r; i++ {
			t[i*m.c+j] = m.data[j*m.r+i]
		}
	}
	m.data = t
	m.r, m.c = m.c, m.r
}

// MulVec computes m · v for a column vector v of length Cols and returns
// a new column vector of length Rows. The matrix is real, the vector
// complex; the product distributes over the real and imaginary parts.
// Returns ErrOrientation for a row vector and ErrShapeMismatch when the
// lengths disagree.
// Complexity: O(r·c).
func (m *Matrix) MulVec(v *Vector) (*Vector, error) {
	if v.Orientation() != ColumnVector {
		return nil, fmt.Errorf("Matrix.MulVec: %w", ErrOrientation)
	}
	if v.Len() != m.c {
		return nil, fmt.Errorf("Matrix.MulVec: %d×%d by %d: %w", m.r, m.c, v.Len(), ErrShapeMismatch)
	}

	out := make([]complex128, m.r)
	vd := v.Raw()
	// column-major walk keeps the matrix reads sequential
	for j := 0; j < m.c; j++ {
		col := m.data[j*m.r : (j+1)*m.r]
		x := vd[j]
		for i, a := range col {
			out[i] += complex(a*real(x), a*imag(x))
		}
	}

	return &Vector{data: out, orient: ColumnVector}, nil
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	d := make([]float64, len(m.data))
	copy(d, m.data)

	return &Matrix{r: m.r, c: m.c, data: d}
}

// String implements fmt.Stringer for debugging.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[j*m.r+i])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

package dense

import "fmt"

// Orientation tags a Vector as a column (n×1) or a row (1×n). The tag
// participates in the shape compatibility of matrix × vector products.
// The semantics are exactly as named: RowVector is 1×n.
type Orientation int

const (
	// ColumnVector marks an n×1 vector, the right-hand operand of MulVec.
	ColumnVector Orientation = iota

	// RowVector marks a 1×n vector.
	RowVector
)

// Vector is a complex-valued contiguous vector with an orientation tag.
type Vector struct {
	data   []complex128
	orient Orientation
}

// NewVector creates a zeroed vector of length n with the given
// orientation. Returns ErrBadShape unless n > 0.
func NewVector(n int, o Orientation) (*Vector, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}

	return &Vector{data: make([]complex128, n), orient: o}, nil
}

// Len returns the number of elements.
func (v *Vector) Len() int { return len(v.data) }

// Orientation returns the current orientation tag.
func (v *Vector) Orientation() Orientation { return v.orient }

// Raw exposes the backing slice; writes through it are visible to the
// vector.
func (v *Vector) Raw() []complex128 { return v.data }

// At retrieves element i, or ErrOutOfRange.
func (v *Vector) At(i int) (complex128, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set assigns element i, or returns ErrOutOfRange.
func (v *Vector) Set(i int, z complex128) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("Vector.Set(%d): %w", i, ErrOutOfRange)
	}
	v.data[i] = z

	return nil
}

// Transpose toggles the orientation tag. No memory moves.
func (v *Vector) Transpose() {
	if v.orient == ColumnVector {
		v.orient = RowVector
	} else {
		v.orient = ColumnVector
	}
}

// Scale multiplies every element by z in place.
func (v *Vector) Scale(z complex128) {
	for i := range v.data {
		v.data[i] *= z
	}
}

// NegateEvery2nd negates every second element in place, starting at
// index start (0 or 1). The drivers use it to absorb per-case Wigner-d
// symmetry signs at vector level.
func (v *Vector) NegateEvery2nd(start int) {
	for i := start; i < len(v.data); i += 2 {
		v.data[i] = -v.data[i]
	}
}

// Clone returns a deep copy of the vector.
func (v *Vector) Clone() *Vector {
	d := make([]complex128, len(v.data))
	copy(d, v.data)

	return &Vector{data: d, orient: v.orient}
}

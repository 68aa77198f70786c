package dense_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sofft/dense"
)

// TestNewVector_BadShape verifies that non-positive lengths return
// ErrBadShape.
func TestNewVector_BadShape(t *testing.T) {
	_, err := dense.NewVector(0, dense.ColumnVector)
	assert.ErrorIs(t, err, dense.ErrBadShape)
}

// TestVector_TransposeTogglesTag verifies that Transpose flips the
// orientation without touching the data.
func TestVector_TransposeTogglesTag(t *testing.T) {
	v, err := dense.NewVector(3, dense.ColumnVector)
	require.NoError(t, err)
	copy(v.Raw(), []complex128{1, 2i, 3})

	v.Transpose()
	assert.Equal(t, dense.RowVector, v.Orientation())
	assert.Equal(t, []complex128{1, 2i, 3}, v.Raw(), "data must not move")

	v.Transpose()
	assert.Equal(t, dense.ColumnVector, v.Orientation())
}

// TestVector_AtSetBounds verifies checked access.
func TestVector_AtSetBounds(t *testing.T) {
	v, err := dense.NewVector(2, dense.ColumnVector)
	require.NoError(t, err)

	require.NoError(t, v.Set(1, 4-2i))
	z, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, 4-2i, z)

	_, err = v.At(2)
	assert.ErrorIs(t, err, dense.ErrOutOfRange)
	assert.ErrorIs(t, v.Set(-1, 0), dense.ErrOutOfRange)
}

// TestVector_Scale verifies the in-place complex scalar multiply.
func TestVector_Scale(t *testing.T) {
	v, err := dense.NewVector(2, dense.ColumnVector)
	require.NoError(t, err)
	copy(v.Raw(), []complex128{1 + 1i, 2})

	v.Scale(-1)
	assert.Equal(t, []complex128{-1 - 1i, -2}, v.Raw())
}

// TestVector_NegateEvery2nd verifies both phases of the alternating
// negation used by the symmetry choreography.
func TestVector_NegateEvery2nd(t *testing.T) {
	v, err := dense.NewVector(5, dense.ColumnVector)
	require.NoError(t, err)
	copy(v.Raw(), []complex128{1, 2, 3, 4, 5})

	v.NegateEvery2nd(0)
	assert.Equal(t, []complex128{-1, 2, -3, 4, -5}, v.Raw(), "start 0 negates even indices")

	copy(v.Raw(), []complex128{1, 2, 3, 4, 5})
	v.NegateEvery2nd(1)
	assert.Equal(t, []complex128{1, -2, 3, -4, 5}, v.Raw(), "start 1 negates odd indices")
}

// TestVector_CloneIsDeep verifies that Clone keeps the tag and detaches
// the storage.
func TestVector_CloneIsDeep(t *testing.T) {
	v, err := dense.NewVector(2, dense.RowVector)
	require.NoError(t, err)
	copy(v.Raw(), []complex128{1, 2})

	c := v.Clone()
	assert.Equal(t, dense.RowVector, c.Orientation())

	c.Raw()[0] = 99
	assert.Equal(t, complex128(1), v.Raw()[0])
}

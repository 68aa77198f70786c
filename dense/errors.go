// Package dense: sentinel error set. All containers MUST return these
// sentinels on user-triggered conditions and tests check them via
// errors.Is. Panics are reserved for programmer errors in private helpers.

package dense

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are non-positive.
	ErrBadShape = errors.New("dense: dimensions must be > 0")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrShapeMismatch indicates incompatible dimensions between operands,
	// e.g. MulVec where len(v) != m.Cols().
	ErrShapeMismatch = errors.New("dense: dimension mismatch")

	// ErrOrientation indicates that a vector with the wrong orientation tag
	// was passed where the other orientation is required.
	ErrOrientation = errors.New("dense: vector orientation mismatch")
)

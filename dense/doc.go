// Package dense provides the dense numeric containers used by the SO(3)
// Fourier transform pipeline: a real column-major Matrix, a complex
// CxMatrix, an oriented complex Vector and a complex 3-D Grid3D, together
// with the in-place flip operations that realize the Wigner-d symmetries.
//
// # Storage conventions
//
//   - Matrix and CxMatrix are column-major: element (i, j) lives at flat
//     offset j*rows + i. Column-major order keeps each β-sample column of
//     a Wigner-d matrix (all degrees at one angle) contiguous, which is
//     what the flip operations and the matrix × vector product iterate
//     over.
//   - Grid3D is layer-major, column-major: element (i, j, k) lives at
//     offset k*rows*cols + j*rows + i. In the transform drivers the layer
//     axis samples the polar angle β; the in-layer axes carry the two
//     azimuthal angles.
//   - Vector carries an orientation tag (Column or Row). Transpose toggles
//     the tag without touching memory; orientation participates in the
//     shape compatibility of MulVec.
//
// All containers own their backing buffers; Clone is a deep copy. The
// checked accessors (At/Set) return ErrOutOfRange instead of panicking;
// hot paths may use Raw to operate on the backing slice directly.
//
// # Flip operations
//
// FlipLR-family functions reverse the column order of a Matrix in place,
// optionally negating every even- or odd-indexed row; the FlipUD family
// are the row analogues with column negation. Each runs in O(rows·cols)
// with no allocation. They exist to reuse one Wigner-d matrix for up to
// eight (M, M′) order pairs.
//
// # Errors
//
//	ErrBadShape      - non-positive dimensions at construction.
//	ErrOutOfRange    - index outside the container bounds.
//	ErrShapeMismatch - incompatible dimensions in MulVec.
//	ErrOrientation   - MulVec given a row vector where a column is required.
package dense

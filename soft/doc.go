// Package soft implements the discrete SO(3) Fourier transform pair —
// DSOFT and IDSOFT — together with the ragged Wigner-D coefficient
// container they operate on.
//
// # Transforms
//
// A band-limited function f(α, β, γ) sampled on the 2B×2B×2B equispaced
// Euler-angle grid has the Fourier coefficients
//
//	f̂ˡ(M,M′) = π/(2B²) · Σ_k w_B(k)·d̃ˡ(M,M′)(β_k) · Σ_{j₂} e^{−iM′γ} Σ_{j₁} e^{−iMα} f
//
// for 0 ≤ l < B, −l ≤ M,M′ ≤ l. DSOFT computes all of them with a
// three-stage pipeline: a layer-wise 2-D FFT over the (α, γ) axes, then a
// discrete Wigner transform per order pair (M, M′), exploiting seven
// Wigner-d symmetries so one Wigner matrix serves up to eight order
// pairs. IDSOFT runs the same stages mirrored and is the exact inverse on
// band-limited inputs up to floating-point round-off.
//
// Complexity: O(B⁴) for the Wigner stage, O(B³ log B) for the FFT stage;
// memory O(B³) for the grid plus O(B²) per worker task.
//
// # Concurrency
//
// Both drivers fan the order enumeration out over a fork-join errgroup
// when Options.Threads > 1 and the bandwidth reaches Threshold. Every
// task owns its scratch (Wigner matrix and work vectors) and writes
// disjoint coefficient cells or grid pencils, with no reductions — the
// output is bit-equal for every thread count.
//
// # Errors
//
//	ErrGridShape         - grid axes are not all equal.
//	ErrGridParity        - grid axes are not even.
//	ErrBandwidthMismatch - coefficient container disagrees with the grid.
//	ErrBadBandwidth      - non-positive bandwidth at construction.
//	ErrCoeffIndex        - (l, M, M′) outside the valid index space.
//	ErrUnknownEngine     - unrecognized random engine name.
//
// On any validation failure the drivers return the sentinel without
// touching their outputs. Numeric degeneracy (NaN/Inf) inside the Wigner
// recurrence is not caught and propagates into the result.
package soft

// Package dwt implements the discrete Wigner transform kernel of the
// SO(3) Fourier transform: the quadrature weights that make the discrete
// β-sum exact for band-limited integrands, and the L²-normalized Wigner
// d-function matrices generated by a stable three-term recurrence.
//
// # Quadrature weights
//
// For bandwidth B the weight vector has length 2B with
//
//	w_B(j) = 2/B · sin(π(2j+1)/4B) · Σ_{k=0}^{B-1} 1/(2k+1) · sin((2j+1)(2k+1)π/4B)
//
// The weights are symmetric, w_B(j) = w_B(2B-1-j); only the first half is
// computed and the tail mirrored. Σ_k w_B(k) = 2 up to round-off.
//
// # Wigner d-matrices
//
// WignerDMatrix fills a (B−J)×2B matrix, J = max(|M|, |M′|), whose (i, k)
// entry is the L²-normalized value d̃^{J+i}_{M,M′}(β_k) at the sample
// angles β_k = π(2k+1)/4B. Row 0 is the closed-form half-angle base case;
// each following row comes from the upward three-term recurrence in the
// degree l. WeightedWignerDMatrix additionally multiplies the base row by
// the quadrature weights — the recurrence is linear in the row values, so
// the weights propagate to every degree for free.
//
// Sign convention: the base-case sign resolves to −1 for every order
// pair, so both generators return the negated Wigner matrix. The
// transform drivers absorb this global sign (one scalar negation, or a
// vector-level flip folded into the symmetry choreography).
//
// Complexity: O(B²) for the weights, O((B−J)·B) per Wigner matrix.
//
// # Errors
//
//	ErrOddLength     - weight slice length is odd.
//	ErrShapeMismatch - destination matrix dimensions disagree with (B−J)×2B.
//
// Numeric degeneracy (NaN/Inf from ill-posed orders) is not caught; it
// propagates into the produced matrix.
package dwt

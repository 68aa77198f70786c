package soft

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sofft/dense"
)

// Coefficients is the ragged container for the Wigner-D Fourier
// coefficients f̂ˡ(M,M′) of a bandwidth-B transform: B complex blocks,
// the l-th of shape (2l+1)×(2l+1), holding degrees 0 ≤ l < B and signed
// orders −l ≤ M,M′ ≤ l. Negative orders alias the tail of each axis —
// order M maps to matrix index (2l+1)+M when M < 0 — which keeps
// (M,M′) = (0,0) at block position (0,0) and the memory contiguous.
//
// The bandwidth is fixed for the container's lifetime; all blocks exist
// and are zero after construction. Clone copies the bandwidth and
// reallocates every block, so no two containers ever share storage.
type Coefficients struct {
	bandwidth int
	mem       []*dense.CxMatrix
}

// NewCoefficients allocates a zeroed container for the given bandwidth.
// Returns ErrBadBandwidth unless bandwidth > 0.
// Complexity: O(Σ(2l+1)²) = O(B³) memory.
func NewCoefficients(bandwidth int) (*Coefficients, error) {
	if bandwidth <= 0 {
		return nil, ErrBadBandwidth
	}

	mem := make([]*dense.CxMatrix, bandwidth)
	for l := 0; l < bandwidth; l++ {
		m, err := dense.NewCxMatrix(2*l+1, 2*l+1)
		if err != nil {
			return nil, err
		}
		mem[l] = m
	}

	return &Coefficients{bandwidth: bandwidth, mem: mem}, nil
}

// Bandwidth returns the fixed bandwidth B.
func (fc *Coefficients) Bandwidth() int { return fc.bandwidth }

// At returns f̂ˡ(M,M′), or ErrCoeffIndex when l is outside [0, B) or
// |M| > l or |M′| > l.
func (fc *Coefficients) At(l, M, Mp int) (complex128, error) {
	if l < 0 || l >= fc.bandwidth || M > l || M < -l || Mp > l || Mp < -l {
		return 0, fmt.Errorf("Coefficients.At(%d,%d,%d): %w", l, M, Mp, ErrCoeffIndex)
	}

	return fc.at(l, M, Mp), nil
}

// SetAt assigns f̂ˡ(M,M′), or returns ErrCoeffIndex as At does.
func (fc *Coefficients) SetAt(l, M, Mp int, v complex128) error {
	if l < 0 || l >= fc.bandwidth || M > l || M < -l || Mp > l || Mp < -l {
		return fmt.Errorf("Coefficients.SetAt(%d,%d,%d): %w", l, M, Mp, ErrCoeffIndex)
	}
	fc.set(l, M, Mp, v)

	return nil
}

// at is the unchecked read used by the drivers; the enumeration
// guarantees valid indices.
func (fc *Coefficients) at(l, M, Mp int) complex128 {
	side := 2*l + 1
	if M < 0 {
		M += side
	}
	if Mp < 0 {
		Mp += side
	}

	return fc.mem[l].Raw()[Mp*side+M]
}

// set is the unchecked write counterpart of at. Parallel driver tasks
// write disjoint (l, M, M′) cells, so no synchronization is needed.
func (fc *Coefficients) set(l, M, Mp int, v complex128) {
	side := 2*l + 1
	if M < 0 {
		M += side
	}
	if Mp < 0 {
		Mp += side
	}
	fc.mem[l].Raw()[Mp*side+M] = v
}

// Energy returns Σ|f̂ˡ(M,M′)|² over the whole container.
func (fc *Coefficients) Energy() float64 {
	var e float64
	for _, m := range fc.mem {
		for _, z := range m.Raw() {
			e += real(z)*real(z) + imag(z)*imag(z)
		}
	}

	return e
}

// Clone returns a deep copy: same bandwidth, freshly allocated blocks.
func (fc *Coefficients) Clone() *Coefficients {
	mem := make([]*dense.CxMatrix, fc.bandwidth)
	for l, m := range fc.mem {
		mem[l] = m.Clone()
	}

	return &Coefficients{bandwidth: fc.bandwidth, mem: mem}
}

// String implements fmt.Stringer; blocks are printed per degree with the
// signed order layout M ∈ {0, 1, ..., −2, −1} on both axes.
func (fc *Coefficients) String() string {
	var sb strings.Builder
	for l, m := range fc.mem {
		fmt.Fprintf(&sb, "Coefficients[M_{0,1,...,-2,-1} × M'_{0,1,...,-2,-1}] ~> [l = %d]\n", l)
		sb.WriteString(m.String())
	}

	return sb.String()
}

package dwt

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sofft/dense"
)

// WignerDMatrix fills dst, a (bw−J)×2bw matrix with J = max(|M|, |Mp|),
// with the negated L²-normalized Wigner d-values −d̃^{J+i}_{M,Mp}(β_k)
// for the sample angles β_k = π(2k+1)/4bw. Returns ErrShapeMismatch when
// dst does not have that shape.
// Complexity: O((bw−J)·bw).
func WignerDMatrix(dst *dense.Matrix, bw, M, Mp int) error {
	return fillWigner(dst, bw, M, Mp, nil)
}

// WeightedWignerDMatrix is WignerDMatrix with every column k multiplied
// by the quadrature weight w[k]. Only the base row is scaled explicitly;
// the recurrence is linear in the row values, so the weights propagate to
// all degrees.
func WeightedWignerDMatrix(dst *dense.Matrix, bw, M, Mp int, w []float64) error {
	if len(w) != 2*bw {
		return fmt.Errorf("dwt: weight vector length %d for bandwidth %d: %w", len(w), bw, ErrShapeMismatch)
	}

	return fillWigner(dst, bw, M, Mp, w)
}

// fillWigner generates the base row from the closed half-angle form and
// climbs degrees with the upward three-term recurrence
//
//	d̃^{l+1} = a·(b + cos β)·d̃^l + c·d̃^{l-1}
//
// writing degrees J..bw-1 into rows 0..bw-J-1 of the (column-major)
// destination.
func fillWigner(dst *dense.Matrix, bw, M, Mp int, w []float64) error {
	minJ := maxAbs(M, Mp)
	rows, cols := bw-minJ, 2*bw
	if dst.Rows() != rows || dst.Cols() != cols {
		return fmt.Errorf("dwt: wigner destination %d×%d, want %d×%d: %w",
			dst.Rows(), dst.Cols(), rows, cols, ErrShapeMismatch)
	}

	// Root coefficient for the base case.
	normFactor := math.Sqrt((2.0*float64(minJ) + 1.0) / 2.0)
	for i := 0; i < minJ-minAbs(M, Mp); i++ {
		normFactor *= math.Sqrt((2.0*float64(minJ) - float64(i)) / (float64(i) + 1.0))
	}

	// The four-way sign analysis over (J==|M|, sign of M, parity of J−Mp)
	// collapses to −1 for every order pair; the generated matrix is the
	// negated Wigner matrix and callers absorb the global sign.
	const sinSign = -1.0

	// Half-angle powers of the base case.
	var cosPower, sinPower float64
	switch {
	case minJ == abs(M) && M >= 0:
		cosPower, sinPower = float64(minJ+Mp), float64(minJ-Mp)
	case minJ == abs(M):
		cosPower, sinPower = float64(minJ-Mp), float64(minJ+Mp)
	case Mp >= 0:
		cosPower, sinPower = float64(minJ+M), float64(minJ-M)
	default:
		cosPower, sinPower = float64(minJ-M), float64(minJ+M)
	}

	// Base row, plus the cos β_k table reused by every recurrence step.
	data := dst.Raw()
	cosBeta := make([]float64, cols)
	for k := 0; k < cols; k++ {
		arg := (2.0*float64(k) + 1.0) * math.Pi / (4.0 * float64(bw))
		sinHalf := math.Sin(0.5 * arg)
		cosHalf := math.Cos(0.5 * arg)
		cosBeta[k] = math.Cos(arg)

		base := normFactor * sinSign * math.Pow(sinHalf, sinPower) * math.Pow(cosHalf, cosPower)
		if w != nil {
			base *= w[k]
		}
		data[k*rows] = base
	}

	// Upward recurrence over degrees l = J..bw-2.
	for i := 0; i < rows-1; i++ {
		l := float64(minJ + i)

		norm := math.Sqrt((2.0*l + 3.0) / (2.0*l + 1.0))
		nom := (l + 1.0) * (2.0*l + 1.0)
		den := 1.0 / math.Sqrt(((l+1.0)*(l+1.0)-float64(M*M))*((l+1.0)*(l+1.0)-float64(Mp*Mp)))

		f1 := norm * nom * den
		f2 := 0.0
		c1 := 0.0

		// The l−1 term and the MM′ offset are undefined on the very first
		// degree; both coefficients vanish there.
		if minJ+i != 0 {
			t1 := math.Sqrt((2.0*l+3.0)/(2.0*l-1.0)) * (l + 1.0) / l
			t2 := math.Sqrt((l*l - float64(M*M)) * (l*l - float64(Mp*Mp)))

			c1 = -t1 * t2 * den
			f2 = -float64(M*Mp) / (l * (l + 1.0))
		}

		for k := 0; k < cols; k++ {
			prev := 0.0
			if i > 0 {
				prev = data[k*rows+i-1]
			}
			data[k*rows+i+1] = c1*prev + data[k*rows+i]*f1*(f2+cosBeta[k])
		}
	}

	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

func maxAbs(a, b int) int {
	if abs(a) > abs(b) {
		return abs(a)
	}

	return abs(b)
}

func minAbs(a, b int) int {
	if abs(a) < abs(b) {
		return abs(a)
	}

	return abs(b)
}

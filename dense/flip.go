package dense

// In-place matrix reshufflings used to realize the seven Wigner-d
// symmetries without recomputing the recurrence. Every function runs in
// O(rows·cols) with no allocation; the negating variants fold the
// symmetry sign into the swap so a flip plus sign costs a single pass.
// The negating variants traverse swapped halves only: with an odd column
// count (LR family) the middle column, and with an odd row count (UD
// family) the middle row, are left untouched. The transform drivers only
// ever pass an even number of β-sample columns/rows, so the symmetry
// choreography never observes this edge.

// FlipLR reverses the column order of m in place.
func FlipLR(m *Matrix) {
	d, r, c := m.data, m.r, m.c
	for j := 0; j < c/2; j++ {
		a := d[j*r : (j+1)*r]
		b := d[(c-j-1)*r : (c-j)*r]
		for k := 0; k < r; k++ {
			a[k], b[k] = b[k], a[k]
		}
	}
}

// FlipLRNegateEvenRows reverses the column order and negates every
// even-indexed row in place.
func FlipLRNegateEvenRows(m *Matrix) {
	d, r, c := m.data, m.r, m.c
	for j := 0; j < c/2; j++ {
		a := d[j*r : (j+1)*r]
		b := d[(c-j-1)*r : (c-j)*r]
		for k := 0; k < r; k++ {
			if k&1 == 1 {
				a[k], b[k] = b[k], a[k]
			} else {
				a[k], b[k] = -b[k], -a[k]
			}
		}
	}
}

// FlipLRNegateOddRows reverses the column order and negates every
// odd-indexed row in place.
func FlipLRNegateOddRows(m *Matrix) {
	d, r, c := m.data, m.r, m.c
	for j := 0; j < c/2; j++ {
		a := d[j*r : (j+1)*r]
		b := d[(c-j-1)*r : (c-j)*r]
		for k := 0; k < r; k++ {
			if k&1 == 1 {
				a[k], b[k] = -b[k], -a[k]
			} else {
				a[k], b[k] = b[k], a[k]
			}
		}
	}
}

// FlipUD reverses the row order of m in place.
func FlipUD(m *Matrix) {
	d, r, c := m.data, m.r, m.c
	for k := 0; k < c; k++ {
		col := d[k*r : (k+1)*r]
		for j := 0; j < r/2; j++ {
			col[j], col[r-j-1] = col[r-j-1], col[j]
		}
	}
}

// FlipUDNegateEvenCols reverses the row order and negates every
// even-indexed column in place.
func FlipUDNegateEvenCols(m *Matrix) {
	d, r, c := m.data, m.r, m.c
	for k := 0; k < c; k++ {
		col := d[k*r : (k+1)*r]
		if k&1 == 1 {
			for j := 0; j < r/2; j++ {
				col[j], col[r-j-1] = col[r-j-1], col[j]
			}
		} else {
			for j := 0; j < r/2; j++ {
				col[j], col[r-j-1] = -col[r-j-1], -col[j]
			}
		}
	}
}

// FlipUDNegateOddCols reverses the row order and negates every
// odd-indexed column in place.
func FlipUDNegateOddCols(m *Matrix) {
	d, r, c := m.data, m.r, m.c
	for k := 0; k < c; k++ {
		col := d[k*r : (k+1)*r]
		if k&1 == 1 {
			for j := 0; j < r/2; j++ {
				col[j], col[r-j-1] = -col[r-j-1], -col[j]
			}
		} else {
			for j := 0; j < r/2; j++ {
				col[j], col[r-j-1] = col[r-j-1], col[j]
			}
		}
	}
}

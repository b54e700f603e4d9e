// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Structural engine over square matrices: minor extraction, determinant by
//     cofactor expansion, inverse by the adjugate, trace, and rank by Gaussian
//     elimination on a private copy.
//
// Determinism:
//   - Every loop runs in a fixed order; recursion always expands along row 0.
//   - Each recursion level owns a fresh minor, so no sub-matrix aliases its parent.
//
// Complexity quicksheet:
//   - Minor O(n²); Determinant O(n!) for n ≥ 4; Inverse O(n²·n!); Rank O(r·c·min(r,c)); Trace O(n).
//
// AI-Hints:
//   - Cofactor expansion is exact in structure but factorial in cost: keep n small (≲ 10).
//     Larger systems belong to an LU-based solver outside this package.

package matrix

import "math"

// Minor returns the (n-1)×(n-1) matrix obtained by deleting row and col from m.
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m), then ValidateIndex(m, row, col).
//   - Stage 2: linear scan in row-major order, skipping the removed row and column.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange.
//
// Notes:
//   - The minor of a 1×1 matrix is the empty 0×0 matrix; its determinant is 1.
//
// Complexity:
//   - Time O(n²), Space O((n-1)²).
func Minor(m Matrix, row, col int) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := ValidateIndex(m, row, col); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return minorDense(d, row, col), nil
}

// minorDense is the unchecked core of Minor. Caller guarantees a square d
// and in-range indices.
func minorDense(d *Dense, row, col int) *Dense {
	n := d.r
	out := newDenseLike(d, n-1, n-1)
	var i, j, k int
	for i = 0; i < n; i++ {
		if i == row {
			continue
		}
		for j = 0; j < n; j++ {
			if j == col {
				continue
			}
			out.data[k] = d.data[i*n+j]
			k++
		}
	}

	return out
}

// Determinant returns det(m) for a square matrix.
// Implementation:
//   - Order 0: 1 (empty product; only reachable as the minor of a 1×1).
//   - Order 1: the single element.
//   - Order 2: ad − bc.
//   - Order 3: rule of Sarrus.
//   - Order ≥ 4: Laplace expansion along row 0,
//     Σ_col (−1)^col · m[0,col] · det(Minor(m, 0, col)).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Determinism:
//   - Summation order over col is fixed 0..n-1, so equal inputs give bit-equal results.
//
// Complexity:
//   - Time O(n!) worst case, Space O(n²) per recursion level, depth n.
//
// AI-Hints:
//   - A zero in row 0 still recurses; expansion does not skip zero cofactors.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return detDense(d), nil
}

// detDense is the unchecked recursive core of Determinant.
func detDense(d *Dense) float64 {
	a := d.data
	switch d.r {
	case 0:
		return 1
	case 1:
		return a[0]
	case 2:
		return a[0]*a[3] - a[1]*a[2]
	case 3:
		return a[0]*a[4]*a[8] +
			a[1]*a[5]*a[6] +
			a[2]*a[3]*a[7] -
			a[2]*a[4]*a[6] -
			a[1]*a[3]*a[8] -
			a[0]*a[5]*a[7]
	}

	var det, sign float64
	sign = 1
	for col := 0; col < d.c; col++ {
		det += sign * a[col] * detDense(minorDense(d, 0, col))
		sign = -sign
	}

	return det
}

// Inverse returns m⁻¹ computed with the adjugate (classical adjoint) method.
// Implementation:
//   - Stage 1: det := Determinant(m); |det| < eps → ErrSingular.
//   - Stage 2: for every (row, col) compute the cofactor (−1)^(row+col)·det(Minor(row, col))
//     and store it transposed at [col][row] (this builds the adjugate directly).
//   - Stage 3: divide every element of the adjugate by det.
//
// Inputs:
//   - m   : square matrix.
//   - opts: WithEpsilon overrides the singularity threshold (default MachineEpsilon).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (surfaced from Determinant), ErrSingular.
//
// Complexity:
//   - Time O(n²·n!), Space O(n²).
//
// Notes:
//   - The 1×1 case works through the 0×0 minor: adj = [1], inverse = [1/a].
//   - The singularity test is absolute, not relative to the matrix scale.
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	det, err := Determinant(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if math.Abs(det) < o.eps {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := d.r
	adj := newDenseLike(d, n, n)
	var row, col int
	var sign float64
	for row = 0; row < n; row++ {
		for col = 0; col < n; col++ {
			sign = 1
			if (row+col)%2 == 1 {
				sign = -1
			}
			adj.data[col*n+row] = sign * detDense(minorDense(d, row, col)) // transposed store
		}
	}
	for i := range adj.data {
		adj.data[i] /= det
	}

	return adj, nil
}

// Rank returns the number of linearly independent rows of m.
// Implementation:
//   - Stage 1: copy m into a private working buffer (m is never mutated).
//   - Stage 2: for each column in [0, min(r,c)), find the first row at or below
//     `rank` whose entry exceeds eps in absolute value; skip the column when none exists.
//   - Stage 3: swap the pivot into row `rank`, then for every other row (above and
//     below) subtract factor·pivotRow on columns ≥ col, where factor = a[row,col]/pivot.
//     Rows whose |factor| ≤ eps are left alone.
//   - Stage 4: rank++.
//
// Notes:
//   - Columns at or beyond min(r,c) are never searched, so a wide matrix whose
//     only pivots lie there reports fewer pivots: Rank([[0, 0, 1]]) == 0.
//
// Inputs:
//   - m   : any non-nil matrix (square not required).
//   - opts: WithEpsilon sets the pivot threshold (default MachineEpsilon).
//
// Returns:
//   - int in [0, min(r,c)]; 0 for an all-zero matrix.
//
// Errors:
//   - ErrNilMatrix only.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r·c).
func Rank(m Matrix, opts ...Option) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	o := gatherOptions(opts...)
	src, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	w := src.clone()
	rows, cols := w.r, w.c
	var (
		rank, col, row, pivot, k int
		pivotVal, factor         float64
	)
	n := min(rows, cols)
	for col = 0; col < n; col++ {
		pivot = -1
		for row = rank; row < rows; row++ {
			if math.Abs(w.data[row*cols+col]) > o.eps {
				pivot = row
				break
			}
		}
		if pivot < 0 {
			continue // rank-deficient column
		}
		w.SwapRows(pivot, rank)

		pivotVal = w.data[rank*cols+col]
		for row = 0; row < rows; row++ {
			if row == rank {
				continue
			}
			factor = w.data[row*cols+col] / pivotVal
			if math.Abs(factor) <= o.eps {
				continue
			}
			for k = col; k < cols; k++ {
				w.data[row*cols+k] -= factor * w.data[rank*cols+k]
			}
		}
		rank++
	}

	return rank, nil
}

// Trace returns the sum of the diagonal elements of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	var sum float64
	for i := 0; i < d.r; i++ {
		sum += d.data[i*d.c+i]
	}

	return sum, nil
}

// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Constructors with intention-revealing names (zeros, ones, identity, diagonal,
//     from slice, from rows, random).
//   - Thin aliases that delegate to the canonical kernels without duplicating logic.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to kernels; other Matrix implementations are copied once.
//   - Use NewFromRows for literals in tests and examples: the shape is inferred.

package matrix

import (
	"fmt"
	"math/rand"
)

// ---------- Constructors & Utilities (O(1) alloc + O(rc) zeroing by runtime) ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewOnes returns a rows×cols matrix filled with 1.
func NewOnes(rows, cols int) (*Dense, error) {
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if err = d.Fill(1); err != nil {
		return nil, err
	}

	return d, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as a neutral element for Mul and as the target of A·A⁻¹ checks.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// NewDiagonal returns the square matrix with values on its main diagonal.
// Errors: ErrInvalidDimensions when values is empty.
func NewDiagonal(values []float64) (*Dense, error) {
	n := len(values)
	D, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("NewDiagonal: %w", err)
	}
	for i, v := range values {
		D.data[i*n+i] = v
	}

	return D, nil
}

// NewFromSlice builds a rows×cols matrix from a row-major slice (the slice is copied).
// Implementation:
//   - Stage 1: validate rows, cols > 0 and len(data) == rows*cols.
//   - Stage 2: resolve options; with WithValidateNaNInf every element must be finite.
//   - Stage 3: copy data; the result keeps the policy for later Set calls.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity: O(rows*cols).
func NewFromSlice(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("NewFromSlice: %w", err)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewFromSlice: %d values for %dx%d: %w", len(data), rows, cols, ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for i, v := range data {
			if isNonFinite(v) {
				return nil, fmt.Errorf("NewFromSlice: element %d: %w", i, ErrNaNInf)
			}
		}
	}
	copy(d.data, data)
	d.validateNaNInf = o.validateNaNInf

	return d, nil
}

// NewFromRows builds a matrix from nested rows; every row must have the same length.
// Errors: ErrInvalidDimensions (no rows or empty rows), ErrDimensionMismatch (ragged), ErrNaNInf.
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewFromRows: %w", ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	flat := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d values, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		flat = append(flat, row...)
	}

	return NewFromSlice(r, c, flat, opts...)
}

// NewRandom returns a rows×cols matrix with elements drawn uniformly from [0,1).
// A nil rng falls back to the math/rand global source.
func NewRandom(rows, cols int, rng *rand.Rand) (*Dense, error) {
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	next := rand.Float64
	if rng != nil {
		next = rng.Float64
	}
	for i := range d.data {
		d.data[i] = next()
	}

	return d, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// ---------- Aliases (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// HadamardProd is an alias for Hadamard: element-wise product a ⊙ b.
func HadamardProd(a, b Matrix) (*Dense, error) { return Hadamard(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// ScaleBy is an alias for Scale: α*m.
func ScaleBy(m Matrix, alpha float64) (*Dense, error) { return Scale(m, alpha) }

// MatVecMul is an alias for MatVec: y = m·x.
func MatVecMul(m Matrix, x []float64) ([]float64, error) { return MatVec(m, x) }

// Det is an alias for Determinant.
func Det(m Matrix) (float64, error) { return Determinant(m) }

// InverseOf is an alias for Inverse.
// Complexity: O(n²·n!).
func InverseOf(m Matrix, opts ...Option) (*Dense, error) { return Inverse(m, opts...) }

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the two element-wise engines (Elementwise for matrix⊕matrix,
//     ScalarOp for matrix⊕scalar) and express every named arithmetic kernel
//     as a thin call into them.
//   - Keep all loops deterministic and cache-friendly on the flat row-major buffer.
//
// Determinism & Performance:
//   - Fixed flat loop order 0..n-1.
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.
//
// Numeric policy:
//   - Division follows IEEE 754: x/0 yields ±Inf, 0/0 yields NaN. These are
//     results, not errors; enable WithValidateNaNInf at ingestion to keep
//     inputs finite.

package matrix

// Elementwise computes out[i] = op(a[i], b[i]) over two same-shaped matrices.
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: materialize operands (asDense) and run one flat loop.
//
// Inputs:
//   - a, b: conformable matrices (non-nil; same rows/cols).
//   - op  : pure binary function; called exactly r*c times in row-major order.
//
// Returns:
//   - *Dense: fresh result of the same shape; a and b are never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (message names both shapes).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Elementwise(a, b Matrix, op func(x, y float64) float64) (*Dense, error) {
	return elementwise(opElementwise, a, b, op)
}

// elementwise is the tagged core shared by Elementwise and the named kernels.
func elementwise(tag string, a, b Matrix, op func(x, y float64) float64) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	res := newDenseLike(da, da.r, da.c)
	var idx int
	for idx = 0; idx < len(res.data); idx++ { // deterministic 0..n-1
		res.data[idx] = op(da.data[idx], db.data[idx])
	}

	return res, nil
}

// ScalarOp computes out[i] = op(a[i], s). Only a nil operand fails.
// Complexity: O(r*c).
func ScalarOp(a Matrix, s float64, op func(x, s float64) float64) (*Dense, error) {
	return scalarOp(opScalarOp, a, s, op)
}

// scalarOp is the tagged core shared by ScalarOp and the named scalar kernels.
func scalarOp(tag string, a Matrix, s float64, op func(x, s float64) float64) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	res := newDenseLike(da, da.r, da.c)
	var idx int
	for idx = 0; idx < len(res.data); idx++ {
		res.data[idx] = op(da.data[idx], s)
	}

	return res, nil
}

func opPlus(x, y float64) float64  { return x + y }
func opMinus(x, y float64) float64 { return x - y }
func opTimes(x, y float64) float64 { return x * y }
func opDiv(x, y float64) float64   { return x / y }

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return elementwise(opAdd, a, b, opPlus) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub(a, b Matrix) (*Dense, error) { return elementwise(opSub, a, b, opMinus) }

// Hadamard computes the element-wise product (a ⊙ b) with a fresh Dense result.
//
// Notes:
//   - Hadamard ≠ matrix multiplication; use Mul for A×B.
func Hadamard(a, b Matrix) (*Dense, error) { return elementwise(opHadamard, a, b, opTimes) }

// HadamardDiv computes the element-wise quotient a[i,j] / b[i,j].
// Zero elements in b produce ±Inf or NaN, never an error.
func HadamardDiv(a, b Matrix) (*Dense, error) { return elementwise(opHadamardDiv, a, b, opDiv) }

// AddScalar returns m[i,j] + s.
func AddScalar(m Matrix, s float64) (*Dense, error) { return scalarOp(opAddScalar, m, s, opPlus) }

// SubScalar returns m[i,j] - s.
func SubScalar(m Matrix, s float64) (*Dense, error) { return scalarOp(opSubScalar, m, s, opMinus) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
//
// Notes:
//   - alpha = 0 yields an explicit zero matrix with the same shape.
//   - NaN/Inf in alpha propagate.
func Scale(m Matrix, alpha float64) (*Dense, error) { return scalarOp(opScale, m, alpha, opTimes) }

// DivScalar returns m[i,j] / s. Division by zero yields ±Inf/NaN (IEEE 754).
func DivScalar(m Matrix, s float64) (*Dense, error) { return scalarOp(opDivScalar, m, s, opDiv) }

// Apply maps f over every element into a new Dense (m is not mutated).
// For the in-place variant with indices see (*Dense).Apply.
// Complexity: O(r*c).
func Apply(m Matrix, f func(float64) float64) (*Dense, error) {
	return scalarOp(opApply, m, 0, func(x, _ float64) float64 { return f(x) })
}

// Neg returns -m.
func Neg(m Matrix) (*Dense, error) { return Scale(m, -1) }

// ScalarSubFrom returns s - m[i,j] (the scalar on the left).
func ScalarSubFrom(s float64, m Matrix) (*Dense, error) {
	return scalarOp(opSubScalar, m, s, func(x, s float64) float64 { return s - x })
}

// ScalarDivBy returns s / m[i,j] (the scalar on the left).
func ScalarDivBy(s float64, m Matrix) (*Dense, error) {
	return scalarOp(opDivScalar, m, s, func(x, s float64) float64 { return s / x })
}

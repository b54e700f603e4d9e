// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Vector geometry over Matrix values: a vector is any 1×n or n×1 matrix,
//     a 3D vector is exactly 3×1 or 1×3.
//   - Row and column vectors share the same flat buffer order, so every kernel
//     here reads data[0..n-1] regardless of orientation.
//
// Notes:
//   - Dot requires equal shapes: a 1×3 and a 3×1 are NOT dot-compatible.
//   - Projection onto a zero vector divides by zero and yields NaN/±Inf (IEEE 754).

package matrix

import "math"

// dotDense is Σ a[i]·b[i] over two equally sized flat buffers.
func dotDense(a, b *Dense) float64 {
	var acc float64
	for i := range a.data {
		acc += a.data[i] * b.data[i]
	}

	return acc
}

// vectorPair validates two vector operands of equal shape and returns their flat views.
func vectorPair(a, b Matrix) (*Dense, *Dense, error) {
	if err := ValidateVector(a); err != nil {
		return nil, nil, err
	}
	if err := ValidateVector(b); err != nil {
		return nil, nil, err
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, nil, err
	}
	da, err := asDense(a)
	if err != nil {
		return nil, nil, err
	}
	db, err := asDense(b)
	if err != nil {
		return nil, nil, err
	}

	return da, db, nil
}

// Dot returns the inner product Σ a[i]·b[i].
// Implementation:
//   - Stage 1: both operands must be vectors (ErrNotVector).
//   - Stage 2: shapes must be equal (ErrDimensionMismatch).
//   - Stage 3: one flat accumulation in index order.
//
// Complexity: O(n).
func Dot(a, b Matrix) (float64, error) {
	da, db, err := vectorPair(a, b)
	if err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	return dotDense(da, db), nil
}

// Cross returns a × b for two 3D vectors as a 3×1 column:
//
//	[a1·b2 − a2·b1, a2·b0 − a0·b2, a0·b1 − a1·b0]
//
// Orientation of the inputs does not matter (3×1 and 1×3 mix freely).
// The result is orthogonal to both operands.
//
// Errors: ErrNilMatrix, ErrNotVector3.
// Complexity: O(1).
func Cross(a, b Matrix) (*Dense, error) {
	if err := ValidateVector3(a); err != nil {
		return nil, matrixErrorf(opCross, err)
	}
	if err := ValidateVector3(b); err != nil {
		return nil, matrixErrorf(opCross, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opCross, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opCross, err)
	}

	x, y := da.data, db.data
	res := newDenseLike(da, 3, 1)
	res.data[0] = x[1]*y[2] - x[2]*y[1]
	res.data[1] = x[2]*y[0] - x[0]*y[2]
	res.data[2] = x[0]*y[1] - x[1]*y[0]

	return res, nil
}

// Cross2D returns the scalar z-component of the planar cross product a0·b1 − a1·b0.
// Both operands must hold exactly two elements (2×1 or 1×2).
//
// Errors: ErrNilMatrix, ErrNotVector2.
func Cross2D(a, b Matrix) (float64, error) {
	for _, v := range [2]Matrix{a, b} {
		if err := ValidateNotNil(v); err != nil {
			return 0, matrixErrorf(opCross2D, err)
		}
		if !isVectorN(v, 2) {
			return 0, matrixErrorf(opCross2D, shapeErrorf("Cross2D", v, ErrNotVector2))
		}
	}
	da, err := asDense(a)
	if err != nil {
		return 0, matrixErrorf(opCross2D, err)
	}
	db, err := asDense(b)
	if err != nil {
		return 0, matrixErrorf(opCross2D, err)
	}

	return da.data[0]*db.data[1] - da.data[1]*db.data[0], nil
}

// Magnitude returns the Euclidean length ‖m‖ = sqrt(m·m).
// Errors: ErrNilMatrix, ErrNotVector.
func Magnitude(m Matrix) (float64, error) {
	if err := ValidateVector(m); err != nil {
		return 0, matrixErrorf(opMagnitude, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opMagnitude, err)
	}

	return math.Sqrt(dotDense(d, d)), nil
}

// UnitVector returns a new vector m/‖m‖ with the same shape as m.
//
// Errors:
//   - ErrNilMatrix, ErrNotVector.
//   - ErrZeroMagnitude when ‖m‖ == 0 (exact comparison; tiny vectors still normalize).
func UnitVector(m Matrix) (*Dense, error) {
	mag, err := Magnitude(m)
	if err != nil {
		return nil, matrixErrorf(opUnitVector, err)
	}
	if mag == 0 {
		return nil, matrixErrorf(opUnitVector, ErrZeroMagnitude)
	}

	return scalarOp(opUnitVector, m, mag, opDiv)
}

// Normalize scales the receiver in place to unit length.
// On error the receiver is left unchanged.
//
// Errors: ErrNilMatrix, ErrNotVector, ErrZeroMagnitude.
func (m *Dense) Normalize() error {
	mag, err := Magnitude(m)
	if err != nil {
		return matrixErrorf(opNormalize, err)
	}
	if mag == 0 {
		return matrixErrorf(opNormalize, ErrZeroMagnitude)
	}
	for i := range m.data {
		m.data[i] /= mag
	}

	return nil
}

// ScalarProjection returns the signed length of a projected onto b: (a·b)/‖b‖.
// Errors propagate from Dot and Magnitude (ErrNotVector, ErrDimensionMismatch).
func ScalarProjection(a, b Matrix) (float64, error) {
	dot, err := Dot(a, b)
	if err != nil {
		return 0, matrixErrorf(opScalarProjection, err)
	}
	mag, err := Magnitude(b)
	if err != nil {
		return 0, matrixErrorf(opScalarProjection, err)
	}

	return dot / mag, nil
}

// VectorProjection returns the component of a along b: ((a·b)/‖b‖²)·b.
// The result has the shape of b.
func VectorProjection(a, b Matrix) (*Dense, error) {
	dot, err := Dot(a, b)
	if err != nil {
		return nil, matrixErrorf(opVectorProjection, err)
	}
	bb, err := Dot(b, b)
	if err != nil {
		return nil, matrixErrorf(opVectorProjection, err)
	}

	return scalarOp(opVectorProjection, b, dot/bb, opTimes)
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for shape checks (the dimension validator).
//   - Keep kernels minimal by delegating nil/shape/vector/index checks here.
//   - Report the offending shapes in the message and keep the sentinel reachable via errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, O(1) and allocate only on the failure path.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).
//   - IsVector/IsVector3 are predicates (never fail); ValidateVector/ValidateVector3
//     are their error-returning counterparts used by the vector kernels.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeErrorf wraps err with the tag and the shape of m, e.g. "ValidateSquare (2x3): ...".
func shapeErrorf(tag string, m Matrix, err error) error {
	return fmt.Errorf("%s (%dx%d): %w", tag, m.Rows(), m.Cols(), err)
}

// pairErrorf wraps err with the tag and both operand shapes, e.g. "ValidateMulCompatible (2x3 vs 2x2): ...".
func pairErrorf(tag string, a, b Matrix, err error) error {
	return fmt.Errorf("%s (%dx%d vs %dx%d): %w", tag, a.Rows(), a.Cols(), b.Rows(), b.Cols(), err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil or m is a typed nil *Dense.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	// A typed nil pointer inside a non-nil interface would panic on Rows().
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape – Ensures m is exactly rows×cols.
//
// Implementation: Assumes m is not nil.
// Return: nil or wrapped ErrDimensionMismatch naming expected and actual shapes.
// Complexity: O(1).
func ValidateShape(m Matrix, rows, cols int) error {
	if m.Rows() != rows || m.Cols() != cols {
		return fmt.Errorf("ValidateShape: expected %dx%d, got %dx%d: %w",
			rows, cols, m.Rows(), m.Cols(), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use for Add/Sub/Hadamard kernels and compatibility guards.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return pairErrorf("ValidateSameShape", a, b, ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Inputs: non-nil Matrix value.
// Errors: ErrNonSquare if not square.
// Complexity: O(1).
// AI-Hints: Use before Determinant/Inverse/Trace/Minor.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return shapeErrorf("ValidateSquare", m, ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return fmt.Errorf("ValidateVecLen: expected %d, got %d: %w", n, len(x), ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: Combines ErrNilMatrix and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
// The failure message carries both shapes.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return pairErrorf("ValidateMulCompatible", a, b, ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndex ensures 0 ≤ row < Rows() and 0 ≤ col < Cols().
//
// Errors: ErrNilMatrix, or ErrOutOfRange naming the index pair and the shape.
// Complexity: O(1).
func ValidateIndex(m Matrix, row, col int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return fmt.Errorf("ValidateIndex: (%d,%d) outside %dx%d: %w",
			row, col, m.Rows(), m.Cols(), ErrOutOfRange)
	}

	return nil
}

// IsVector reports whether m is a row (1×n) or column (n×1) vector.
// Never fails; a nil matrix is not a vector.
func IsVector(m Matrix) bool {
	if ValidateNotNil(m) != nil {
		return false
	}

	return m.Rows() == 1 || m.Cols() == 1
}

// IsVector3 reports whether m is exactly 3×1 or 1×3.
// Both the shape and the total element count (3) must hold.
func IsVector3(m Matrix) bool {
	if ValidateNotNil(m) != nil {
		return false
	}
	r, c := m.Rows(), m.Cols()

	return ((r == 3 && c == 1) || (r == 1 && c == 3)) && r*c == 3
}

// isVectorN reports whether m is a vector with exactly n elements.
func isVectorN(m Matrix, n int) bool {
	return IsVector(m) && m.Rows()*m.Cols() == n
}

// ValidateVector – Composite: NotNil → IsVector.
//
// Errors: ErrNilMatrix, ErrNotVector.
func ValidateVector(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateVector", err)
	}
	if !IsVector(m) {
		return shapeErrorf("ValidateVector", m, ErrNotVector)
	}

	return nil
}

// ValidateVector3 – Composite: NotNil → IsVector3.
//
// Errors: ErrNilMatrix, ErrNotVector3.
func ValidateVector3(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateVector3", err)
	}
	if !IsVector3(m) {
		return shapeErrorf("ValidateVector3", m, ErrNotVector3)
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions; the single exception is Dense.Row, whose
// out-of-range access is a contract violation.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and grep-ability.
// Kernels wrap with matrixErrorf(op, err) and validators with validatorErrorf(tag, err);
// both use %w, so errors.Is keeps matching through any number of composed calls
// (Inverse → Determinant → ValidateSquare surfaces ErrNonSquare unchanged).
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape (square/vector/compatibility) -> index -> numeric (singular/zero).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// At/Set and Minor return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotVector signals that a 1×n or n×1 operand was required.
	ErrNotVector = errors.New("matrix: not a vector")

	// ErrNotVector3 signals that a 3×1 or 1×3 operand was required.
	ErrNotVector3 = errors.New("matrix: not a 3D vector")

	// ErrNotVector2 signals that a 2-element vector was required.
	ErrNotVector2 = errors.New("matrix: not a 2D vector")

	// ErrSingular is returned by Inverse when |det| falls below the epsilon threshold.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrZeroMagnitude is returned when normalizing a zero-length vector.
	ErrZeroMagnitude = errors.New("matrix: zero-length vector")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (strict ingestion, Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

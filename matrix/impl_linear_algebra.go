// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, transpose and matrix-vector products. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Purpose:
//   - Declare the operation tags and the shared error wrapper used by every kernel.
//   - Host the single fallback path (asDense) that turns any Matrix into a flat buffer.
//
// Notes:
//   - Element-wise kernels live in ops_elementwise.go, vector geometry in vector.go,
//     determinant/inverse/rank in impl_structural.go.
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import "fmt"

// ZeroSum is the initial value for dot-product style accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd              = "Add"
	opSub              = "Sub"
	opMul              = "Mul"
	opTranspose        = "Transpose"
	opScale            = "Scale"
	opHadamard         = "Hadamard"
	opHadamardDiv      = "HadamardDiv"
	opMatVec           = "MatVec"
	opElementwise      = "Elementwise"
	opScalarOp         = "ScalarOp"
	opAddScalar        = "AddScalar"
	opSubScalar        = "SubScalar"
	opDivScalar        = "DivScalar"
	opApply            = "Apply"
	opDot              = "Dot"
	opCross            = "Cross"
	opCross2D          = "Cross2D"
	opMagnitude        = "Magnitude"
	opUnitVector       = "UnitVector"
	opNormalize        = "Normalize"
	opScalarProjection = "ScalarProjection"
	opVectorProjection = "VectorProjection"
	opMinor            = "Minor"
	opDeterminant      = "Determinant"
	opInverse          = "Inverse"
	opRank             = "Rank"
	opTrace            = "Trace"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across kernels.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Behavior highlights:
//   - Preserves the underlying sentinel for errors.Is/errors.As.
//   - Composes: Inverse wrapping Determinant wrapping ValidateSquare still matches ErrNonSquare.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical op* constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns a *Dense view of m for read-only kernel access.
// Implementation:
//   - Stage 1: *Dense is returned as-is (no copy).
//   - Stage 2: any other Matrix is read once through At in i→j order into a fresh Dense.
//
// Behavior highlights:
//   - This is the single fallback path of the package: kernels write their loops once,
//     against the flat row-major buffer.
//
// Notes:
//   - The result may alias m. Callers that mutate must clone first.
//   - A zero-sized foreign Matrix yields an empty Dense.
//
// Complexity:
//   - Time O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("asDense(%dx%d): %w", rows, cols, ErrInvalidDimensions)
	}
	out := newDenseZeroOK(rows, cols)
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Materialize both operands as flat buffers (asDense).
//   - Stage 3: i→k→j triple loop with row-major strides: C[i,j] += A[i,k]·B[k,j].
//
// Behavior highlights:
//   - Deterministic triple loop; no temporary tiles; one allocation for C.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch; message names both shapes).
//
// Determinism:
//   - For each (i,j) the products are accumulated in k order 0..n-1.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - If you only need A·x for a plain slice x, MatVec avoids building an n×1 matrix.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res := newDenseLike(da, aRows, bCols)
	var (
		i, j, k                            int // loop iterators
		rowOffsetA, rowOffsetB, rowOffsetR int // flat row bases
		av                                 float64
	)
	// da.data layout: i*aCols + k; db.data layout: k*bCols + j
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: data[i*cols + j] → res.data[j*rows + i].
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil). Never fails otherwise.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
//
// Notes:
//   - Transpose(Transpose(A)) equals A exactly (pure copy, no arithmetic).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := dm.r, dm.c
	res := newDenseLike(dm, cols, rows) // dims flipped
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x given as a plain slice.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	var i, j, base int
	var acc float64
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			acc += d.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Package matrix is a dense, row-major linear-algebra kernel over float64.
//
// The matrix package provides:
//
//   - Dense: a flat row-major buffer (element (i,j) at i*cols+j) behind the
//     Matrix interface, with checked At/Set and deep Clone.
//   - Validators that every kernel calls first (nil, shape, square, vector, index).
//   - Element-wise and scalar arithmetic (Add, Sub, Hadamard, HadamardDiv,
//     AddScalar, SubScalar, Scale, DivScalar, Apply) built on two engines.
//   - Linear operations: Mul, Transpose, MatVec and vector geometry
//     (Dot, Cross, Cross2D, Magnitude, UnitVector, projections).
//   - Structural operations on square matrices: Minor, Determinant
//     (cofactor expansion), Inverse (adjugate), Trace, and Rank by
//     Gaussian elimination on a private copy.
//
// Every operation returns a freshly allocated *Dense; only SwapRows,
// Normalize, Set, Fill and (*Dense).Apply mutate their receiver. Failures are
// reported through sentinel errors (ErrDimensionMismatch, ErrNonSquare,
// ErrSingular, ...) matchable with errors.Is.
//
// Determinant and Inverse cost O(n!) and O(n²·n!): they are exact in
// structure and intended for small matrices.
//
// See the examples in this package for usage patterns.
package matrix

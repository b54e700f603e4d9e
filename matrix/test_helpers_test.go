// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Keep random data finite and seeded so every run sees the same matrices.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/nelab/matrix"
)

// Shared tolerances.
const (
	tolTight = 1e-10 // A·A⁻¹ ≈ I and friends
	tolLoose = 1e-8  // oracle comparisons on random 5×5..6×6 inputs
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Embed matrix.Matrix to forward all methods.
//   - Use hide{X} in tests to force the non-*Dense (copy-through-At) path.
//
// Notes:
//   - Useful to assert fast-path == fallback bitwise.
//
// AI-Hints:
//   - Wrap ONLY the operand you want to de-opt; keep the other one *Dense to isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return d
}

// NewFilledDense BUILDS an r×c *Dense from a row-major slice via Set.
//
// Notes:
//   - Goes through Set on purpose, so the constructor under test is not
//     also the fixture builder.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	d := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, vals[i*c+j])
		}
	}

	return d
}

// Rows BUILDS a *Dense from a 2D literal (shape inferred).
func Rows(t *testing.T, rows ...[]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return d
}

// Col BUILDS an n×1 column vector.
func Col(t *testing.T, vals ...float64) *matrix.Dense {
	t.Helper()

	return NewFilledDense(t, len(vals), 1, vals)
}

// RowVec BUILDS a 1×n row vector.
func RowVec(t *testing.T, vals ...float64) *matrix.Dense {
	t.Helper()

	return NewFilledDense(t, 1, len(vals), vals)
}

// RandFilledDense RETURNS a new r×c Dense filled with deterministic U(-1,1).
// Determinism: deterministic per seed.
//
// AI-Hints:
//   - Use identical seeds across fast vs fallback to isolate path differences.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rng.Float64()*2-1); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// MustSet WRITES v to m[i,j] or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact ASSERTS strict equality between matrix and 2D literal.
//
// Notes:
//   - Use only for integer-like or carefully crafted small matrices.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols = %d; want %d (row %d)", c, len(want[i]), i)
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose ASSERTS same shape and |a[i,j]-b[i,j]| ≤ tol everywhere.
func CompareClose(t *testing.T, a, b matrix.Matrix, tol float64) {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("CompareClose: shapes %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	var i, j int
	var av, bv float64
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, bv = MustAt(t, a, i, j), MustAt(t, b, i, j)
			if d := av - bv; d > tol || d < -tol {
				t.Fatalf("m[%d,%d]: %v vs %v (tol=%g)", i, j, av, bv, tol)
			}
		}
	}
}

// ExpectPanic RUNS fn and fails the test if it does not panic.
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got nil")
		}
	}()
	fn()
}

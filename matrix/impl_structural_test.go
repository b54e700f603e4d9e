// SPDX-License-Identifier: MIT
// Package matrix_test contains tests for Minor, Determinant, Inverse, Rank and Trace.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/nelab/matrix"
	"github.com/stretchr/testify/require"
)

// TestMinor checks row/column removal and its error classes.
func TestMinor(t *testing.T) {
	t.Parallel()
	m := Rows(t,
		[]float64{1, 2, 3},
		[]float64{4, 5, 6},
		[]float64{7, 8, 9},
	)
	got, err := matrix.Minor(m, 1, 1)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 3}, {7, 9}}, got)

	got, err = matrix.Minor(hide{m}, 0, 2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{4, 5}, {7, 8}}, got)

	_, err = matrix.Minor(m, 3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.Minor(m, 0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.Minor(MustDense(t, 2, 3), 0, 0)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestDeterminantFixtures covers each order-specific branch with hand-computed values.
func TestDeterminantFixtures(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-7}}, -7},
		{"2x2", [][]float64{{1, 2}, {3, 4}}, -2},
		{"2x2 singular", [][]float64{{1, 2}, {2, 4}}, 0},
		{"3x3 sarrus", [][]float64{{2, -3, 1}, {2, 0, -1}, {1, 4, 5}}, 49},
		{"3x3 singular", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 0},
		{"4x4 laplace", [][]float64{
			{1, 0, 2, -1},
			{3, 0, 0, 5},
			{2, 1, 4, -3},
			{1, 0, 5, 0},
		}, 30},
		{"4x4 upper triangular", [][]float64{
			{2, 1, 3, 4},
			{0, 3, 1, 2},
			{0, 0, -1, 5},
			{0, 0, 0, 4},
		}, -24},
		{"5x5 diagonal", [][]float64{
			{1, 0, 0, 0, 0},
			{0, 2, 0, 0, 0},
			{0, 0, 3, 0, 0},
			{0, 0, 0, 4, 0},
			{0, 0, 0, 0, 5},
		}, 120},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := Rows(t, tc.rows...)
			d, err := matrix.Determinant(m)
			require.NoError(t, err)
			require.Equal(t, tc.want, d)

			slow, err := matrix.Det(hide{m})
			require.NoError(t, err)
			require.Equal(t, d, slow)
		})
	}
}

// TestDeterminantIdentity checks det(I_n) == 1 across every branch.
func TestDeterminantIdentity(t *testing.T) {
	t.Parallel()
	for n := 1; n <= 7; n++ {
		I, err := matrix.NewIdentity(n)
		require.NoError(t, err)
		d, err := matrix.Determinant(I)
		require.NoError(t, err)
		require.Equalf(t, 1.0, d, "n=%d", n)
	}
}

// TestDeterminantScaling checks det(k·A) == kⁿ·det(A).
func TestDeterminantScaling(t *testing.T) {
	t.Parallel()
	for n := 1; n <= 6; n++ {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			a := RandFilledDense(t, n, n, int64(40+n))
			const k = 2.0 // power of two keeps the scaling exact
			ka, err := matrix.Scale(a, k)
			require.NoError(t, err)

			da, err := matrix.Determinant(a)
			require.NoError(t, err)
			dka, err := matrix.Determinant(ka)
			require.NoError(t, err)
			require.InDelta(t, math.Pow(k, float64(n))*da, dka, 1e-12)
		})
	}
}

// TestDeterminantTransposeInvariant checks det(Aᵀ) ≈ det(A).
func TestDeterminantTransposeInvariant(t *testing.T) {
	t.Parallel()
	a := RandFilledDense(t, 5, 5, 77)
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	d1, _ := matrix.Determinant(a)
	d2, _ := matrix.Determinant(at)
	require.InDelta(t, d1, d2, 1e-12)
}

// TestDeterminantErrors covers nil and non-square inputs.
func TestDeterminantErrors(t *testing.T) {
	t.Parallel()
	_, err := matrix.Determinant(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Determinant(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestInverseReference checks inverse(A)·A ≈ I for [[4,7],[2,6]].
func TestInverseReference(t *testing.T) {
	t.Parallel()
	a := Rows(t, []float64{4, 7}, []float64{2, 6})
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	CompareClose(t, Rows(t, []float64{0.6, -0.7}, []float64{-0.2, 0.4}), inv, tolTight)

	prod, err := matrix.Mul(inv, a)
	require.NoError(t, err)
	I, _ := matrix.NewIdentity(2)
	CompareClose(t, I, prod, tolTight)
}

// TestInverseRoundTrip checks A·A⁻¹ ≈ I and A⁻¹·A ≈ I on random matrices of every branch size.
func TestInverseRoundTrip(t *testing.T) {
	t.Parallel()
	for n := 1; n <= 6; n++ {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			a := RandFilledDense(t, n, n, int64(100+n))
			for i := 0; i < n; i++ { // diagonal dominance keeps the condition number small
				MustSet(t, a, i, i, MustAt(t, a, i, i)+float64(n))
			}
			inv, err := matrix.InverseOf(a)
			require.NoError(t, err)
			I, _ := matrix.NewIdentity(n)

			left, err := matrix.Mul(a, inv)
			require.NoError(t, err)
			CompareClose(t, I, left, tolTight)
			right, err := matrix.Mul(inv, a)
			require.NoError(t, err)
			CompareClose(t, I, right, tolTight)
		})
	}
}

// TestInverseOneByOne checks that the 0×0 minor path yields 1/a.
func TestInverseOneByOne(t *testing.T) {
	t.Parallel()
	inv, err := matrix.Inverse(Rows(t, []float64{4}))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.25}}, inv)
}

// TestInverseSingular covers exact and near-singular inputs plus the epsilon override.
func TestInverseSingular(t *testing.T) {
	t.Parallel()
	_, err := matrix.Inverse(Rows(t, []float64{1, 2}, []float64{2, 4}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(MustDense(t, 4, 4))
	require.ErrorIs(t, err, matrix.ErrSingular)

	tiny := Rows(t, []float64{1e-9, 0}, []float64{0, 1e-9}) // det = 1e-18
	_, err = matrix.Inverse(tiny)
	require.ErrorIs(t, err, matrix.ErrSingular)

	inv, err := matrix.Inverse(tiny, matrix.WithEpsilon(0))
	require.NoError(t, err)
	require.InDelta(t, 1e9, MustAt(t, inv, 0, 0), 1e-3)

	_, err = matrix.Inverse(Rows(t, []float64{1, 0}, []float64{0, 1}), matrix.WithEpsilon(2))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestInverseErrorPropagation checks that Determinant's failures surface unchanged.
func TestInverseErrorPropagation(t *testing.T) {
	t.Parallel()
	_, err := matrix.Inverse(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.Contains(t, err.Error(), "Inverse: Determinant")

	_, err = matrix.Inverse(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestRank covers the reference scenarios and the bound rank ≤ min(r,c).
func TestRank(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		m    *matrix.Dense
		want int
	}{
		{"zero 3x4", MustDense(t, 3, 4), 0},
		{"identity 4", func() *matrix.Dense { I, _ := matrix.NewIdentity(4); return I }(), 4},
		{"2x2 dependent", Rows(t, []float64{1, 2}, []float64{2, 4}), 1},
		{"2x3 dependent", Rows(t, []float64{1, 2, 3}, []float64{2, 4, 6}), 1},
		{"3x3 rank 2", Rows(t, []float64{1, 2, 3}, []float64{4, 5, 6}, []float64{7, 8, 9}), 2},
		{"zero first column", Rows(t, []float64{0, 1}, []float64{0, 2}), 1},
		{"pivot needs swap", Rows(t, []float64{0, 1}, []float64{1, 0}), 2},
		{"tall 4x2", Rows(t, []float64{1, 0}, []float64{0, 1}, []float64{1, 1}, []float64{2, 3}), 2},
		{"wide pivot past min", Rows(t, []float64{0, 0, 1}, []float64{0, 0, 2}), 0},
		{"wide 1x3 trailing pivot", Rows(t, []float64{0, 0, 1}), 0},
		{"wide 2x3 last column differs", Rows(t, []float64{1, 2, 3}, []float64{2, 4, 7}), 1},
		{"4x4 multiples of one row", Rows(t,
			[]float64{1, 2, 3, 4},
			[]float64{2, 4, 6, 8},
			[]float64{-1, -2, -3, -4},
			[]float64{0.5, 1, 1.5, 2},
		), 1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			before := tc.m.Data()
			r, err := matrix.Rank(tc.m)
			require.NoError(t, err)
			require.Equal(t, tc.want, r)
			require.LessOrEqual(t, r, min(tc.m.Rows(), tc.m.Cols()))
			require.Equal(t, before, tc.m.Data()) // private working copy

			slow, err := matrix.Rank(hide{tc.m})
			require.NoError(t, err)
			require.Equal(t, r, slow)
		})
	}

	_, err := matrix.Rank(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestRankIdentity checks rank(I_n) == n.
func TestRankIdentity(t *testing.T) {
	t.Parallel()
	for n := 1; n <= 8; n++ {
		I, _ := matrix.NewIdentity(n)
		r, err := matrix.Rank(I)
		require.NoError(t, err)
		require.Equal(t, n, r)
	}
}

// TestRankEpsilon checks that a looser threshold ignores tiny pivots.
func TestRankEpsilon(t *testing.T) {
	t.Parallel()
	m := Rows(t, []float64{1, 0}, []float64{0, 1e-9})
	r, err := matrix.Rank(m)
	require.NoError(t, err)
	require.Equal(t, 2, r)

	r, err = matrix.Rank(m, matrix.WithEpsilon(1e-6))
	require.NoError(t, err)
	require.Equal(t, 1, r)
}

// TestScalarMultipleRowsScenario checks rank ≤ 2 and det == 0 for a 4×4 built
// from two independent rows and their multiples.
func TestScalarMultipleRowsScenario(t *testing.T) {
	t.Parallel()
	m := Rows(t,
		[]float64{1, 2, 3, 4},
		[]float64{0, 1, 0, 1},
		[]float64{2, 4, 6, 8},
		[]float64{0, 3, 0, 3},
	)
	r, err := matrix.Rank(m)
	require.NoError(t, err)
	require.Equal(t, 2, r)

	d, err := matrix.Determinant(m)
	require.NoError(t, err)
	require.Equal(t, 0.0, d)
}

// TestTrace covers the diagonal sum and the square requirement.
func TestTrace(t *testing.T) {
	t.Parallel()
	tr, err := matrix.Trace(Rows(t, []float64{1, 2}, []float64{3, 4}))
	require.NoError(t, err)
	require.Equal(t, 5.0, tr)

	tr, err = matrix.Trace(hide{Rows(t, []float64{1, 2, 3}, []float64{4, 5, 6}, []float64{7, 8, 9})})
	require.NoError(t, err)
	require.Equal(t, 15.0, tr)

	_, err = matrix.Trace(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// SPDX-License-Identifier: MIT
// Package matrix_test contains tests for vector geometry.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nelab/matrix"
	"github.com/stretchr/testify/require"
)

// TestDot covers orientation, shape mismatch and non-vector operands.
func TestDot(t *testing.T) {
	t.Parallel()
	d, err := matrix.Dot(Col(t, 1, 2, 3), Col(t, 4, 5, 6))
	require.NoError(t, err)
	require.Equal(t, 32.0, d)

	d, err = matrix.Dot(RowVec(t, 1, 2, 3), hide{RowVec(t, 4, 5, 6)})
	require.NoError(t, err)
	require.Equal(t, 32.0, d)

	_, err = matrix.Dot(RowVec(t, 1, 2, 3), Col(t, 4, 5, 6))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Dot(MustDense(t, 2, 2), MustDense(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrNotVector)

	_, err = matrix.Dot(nil, Col(t, 1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestCrossBasis checks x̂ × ŷ = ẑ and orthogonality of the result.
func TestCrossBasis(t *testing.T) {
	t.Parallel()
	x, y := Col(t, 1, 0, 0), RowVec(t, 0, 1, 0)
	z, err := matrix.Cross(x, y)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0}, {0}, {1}}, z)

	dx, err := matrix.Dot(z, x)
	require.NoError(t, err)
	require.Equal(t, 0.0, dx)
	dy, err := matrix.Dot(z, Col(t, 0, 1, 0))
	require.NoError(t, err)
	require.Equal(t, 0.0, dy)
}

// TestCrossOrthogonalRandom checks (a×b)·a ≈ 0 and (a×b)·b ≈ 0 on random vectors.
func TestCrossOrthogonalRandom(t *testing.T) {
	t.Parallel()
	for seed := int64(1); seed <= 20; seed++ {
		a := RandFilledDense(t, 3, 1, seed)
		b := RandFilledDense(t, 3, 1, seed+100)
		c, err := matrix.Cross(a, b)
		require.NoError(t, err)
		da, _ := matrix.Dot(c, a)
		db, _ := matrix.Dot(c, b)
		require.InDelta(t, 0, da, 1e-14)
		require.InDelta(t, 0, db, 1e-14)

		anti, err := matrix.Cross(b, a)
		require.NoError(t, err)
		neg, _ := matrix.Neg(anti)
		require.True(t, c.Equal(neg))
	}
}

// TestCrossRejectsNon3D covers the strict 3D-vector rule.
func TestCrossRejectsNon3D(t *testing.T) {
	t.Parallel()
	for _, m := range []matrix.Matrix{Col(t, 1, 2), Col(t, 1, 2, 3, 4), MustDense(t, 3, 3), nil} {
		_, err := matrix.Cross(m, Col(t, 1, 2, 3))
		require.Error(t, err)
	}
	_, err := matrix.Cross(Col(t, 1, 2, 3, 4), Col(t, 1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNotVector3)
}

// TestCross2D checks the planar scalar cross product.
func TestCross2D(t *testing.T) {
	t.Parallel()
	z, err := matrix.Cross2D(Col(t, 1, 0), RowVec(t, 0, 1))
	require.NoError(t, err)
	require.Equal(t, 1.0, z)

	z, err = matrix.Cross2D(Col(t, 3, 4), Col(t, 6, 8))
	require.NoError(t, err)
	require.Equal(t, 0.0, z)

	_, err = matrix.Cross2D(Col(t, 1, 2, 3), Col(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrNotVector2)
	_, err = matrix.Cross2D(Col(t, 1, 2), nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMagnitudeUnitNormalize checks length, the unit vector and in-place normalization.
func TestMagnitudeUnitNormalize(t *testing.T) {
	t.Parallel()
	v := Col(t, 3, 4)
	mag, err := matrix.Magnitude(v)
	require.NoError(t, err)
	require.Equal(t, 5.0, mag)

	u, err := matrix.UnitVector(v)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.6}, {0.8}}, u)
	CompareExact(t, [][]float64{{3}, {4}}, v) // untouched

	w := RowVec(t, 1, 1)
	require.NoError(t, w.Normalize())
	wm, _ := matrix.Magnitude(w)
	require.InDelta(t, 1, wm, 1e-15)
	require.InDelta(t, 1/math.Sqrt2, MustAt(t, w, 0, 0), 1e-15)

	_, err = matrix.Magnitude(MustDense(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrNotVector)
}

// TestZeroMagnitude checks that zero vectors cannot be normalized.
func TestZeroMagnitude(t *testing.T) {
	t.Parallel()
	z := MustDense(t, 3, 1)
	_, err := matrix.UnitVector(z)
	require.ErrorIs(t, err, matrix.ErrZeroMagnitude)
	require.ErrorIs(t, z.Normalize(), matrix.ErrZeroMagnitude)
	CompareExact(t, [][]float64{{0}, {0}, {0}}, z)

	sq := MustDense(t, 2, 2)
	require.ErrorIs(t, sq.Normalize(), matrix.ErrNotVector)
}

// TestProjections checks projecting (3,4) onto the x-axis and onto (1,1).
func TestProjections(t *testing.T) {
	t.Parallel()
	a, xAxis := Col(t, 3, 4), Col(t, 1, 0)

	s, err := matrix.ScalarProjection(a, xAxis)
	require.NoError(t, err)
	require.Equal(t, 3.0, s)

	p, err := matrix.VectorProjection(a, xAxis)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{3}, {0}}, p)

	p, err = matrix.VectorProjection(Col(t, 1, 0), Col(t, 1, 1))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.5}, {0.5}}, p)

	s, err = matrix.ScalarProjection(Col(t, 1, 0), Col(t, 1, 1))
	require.NoError(t, err)
	require.InDelta(t, 1/math.Sqrt2, s, 1e-15)

	_, err = matrix.ScalarProjection(a, RowVec(t, 1, 0))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.VectorProjection(a, MustDense(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrNotVector)
}

// TestProjectionOntoZero documents the IEEE outcome for a zero target.
func TestProjectionOntoZero(t *testing.T) {
	t.Parallel()
	s, err := matrix.ScalarProjection(Col(t, 1, 2), MustDense(t, 2, 1))
	require.NoError(t, err)
	require.True(t, math.IsNaN(s))

	p, err := matrix.VectorProjection(Col(t, 1, 2), MustDense(t, 2, 1))
	require.NoError(t, err)
	require.True(t, math.IsNaN(MustAt(t, p, 0, 0)))
}

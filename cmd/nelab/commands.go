// SPDX-License-Identifier: MIT
package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/nelab/matrix"
)

// structuralCommands are the square-matrix and shape operations.
func (a *app) structuralCommands() []*cobra.Command {
	det := a.unary("det", "Determinant of a square matrix", func(m *matrix.Dense) (any, error) {
		return matrix.Determinant(m)
	})
	inv := a.unary("inv", "Inverse of a square matrix", func(m *matrix.Dense) (any, error) {
		return matrix.Inverse(m, a.cfg.MatrixOptions()...)
	})
	rank := a.unary("rank", "Rank by Gaussian elimination", func(m *matrix.Dense) (any, error) {
		return matrix.Rank(m, a.cfg.MatrixOptions()...)
	})
	trace := a.unary("trace", "Sum of the main diagonal", func(m *matrix.Dense) (any, error) {
		return matrix.Trace(m)
	})
	transpose := a.unary("transpose", "Transpose a matrix", func(m *matrix.Dense) (any, error) {
		return matrix.Transpose(m)
	})

	var row, col int
	minor := a.unary("minor", "Minor with one row and one column removed", func(m *matrix.Dense) (any, error) {
		return matrix.Minor(m, row, col)
	})
	minor.Flags().IntVar(&row, "row", 0, "row to remove (0-based)")
	minor.Flags().IntVar(&col, "col", 0, "column to remove (0-based)")

	return []*cobra.Command{det, inv, rank, trace, transpose, minor}
}

// arithmeticCommands are the elementwise, scalar and product operations.
func (a *app) arithmeticCommands() []*cobra.Command {
	add := a.binary("add", "Elementwise sum", func(x, y *matrix.Dense) (any, error) {
		return matrix.Add(x, y)
	})
	sub := a.binary("sub", "Elementwise difference", func(x, y *matrix.Dense) (any, error) {
		return matrix.Sub(x, y)
	})
	hadamard := a.binary("hadamard", "Elementwise product", func(x, y *matrix.Dense) (any, error) {
		return matrix.Hadamard(x, y)
	})
	mul := a.binary("mul", "Matrix product A×B", func(x, y *matrix.Dense) (any, error) {
		return matrix.Mul(x, y)
	})

	var by float64
	scale := a.unary("scale", "Multiply every element by a scalar", func(m *matrix.Dense) (any, error) {
		return matrix.Scale(m, by)
	})
	scale.Flags().Float64Var(&by, "by", 1, "scalar factor")

	return []*cobra.Command{add, sub, hadamard, mul, scale}
}

// vectorCommands are the vector operations; operands are row or column vectors.
func (a *app) vectorCommands() []*cobra.Command {
	dot := a.binary("dot", "Dot product of two vectors", func(x, y *matrix.Dense) (any, error) {
		return matrix.Dot(x, y)
	})
	cross := a.binary("cross", "Cross product of two 3D vectors", func(x, y *matrix.Dense) (any, error) {
		return matrix.Cross(x, y)
	})
	project := a.binary("project", "Projection of A onto B", func(x, y *matrix.Dense) (any, error) {
		s, err := matrix.ScalarProjection(x, y)
		if err != nil {
			return nil, err
		}
		v, err := matrix.VectorProjection(x, y)
		if err != nil {
			return nil, err
		}

		return projection{Scalar: s, Vector: v}, nil
	})
	norm := a.unary("norm", "Magnitude and unit vector", func(m *matrix.Dense) (any, error) {
		mag, err := matrix.Magnitude(m)
		if err != nil {
			return nil, err
		}
		unit, err := matrix.UnitVector(m)
		if err != nil {
			return nil, err
		}

		return normal{Magnitude: mag, Unit: unit}, nil
	})

	return []*cobra.Command{dot, cross, project, norm}
}

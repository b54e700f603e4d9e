// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/nelab/matrix"
	"github.com/katalvlaran/nelab/matrixio"
)

// formatText selects plain text; every other format is a matrixio format.
const formatText = "text"

// normal is the result of norm.
type normal struct {
	Magnitude float64
	Unit      *matrix.Dense
}

// projection is the result of project.
type projection struct {
	Scalar float64
	Vector *matrix.Dense
}

// Serialized forms of each result kind.
type (
	scalarDoc struct {
		Op    string  `yaml:"op" json:"op"`
		Value float64 `yaml:"value" json:"value"`
	}
	countDoc struct {
		Op    string `yaml:"op" json:"op"`
		Value int    `yaml:"value" json:"value"`
	}
	normDoc struct {
		Magnitude float64           `yaml:"magnitude" json:"magnitude"`
		Unit      matrixio.Document `yaml:"unit" json:"unit"`
	}
	projectionDoc struct {
		Scalar float64           `yaml:"scalar" json:"scalar"`
		Vector matrixio.Document `yaml:"vector" json:"vector"`
	}
)

// write renders res to w in the configured format, rounded to the configured precision.
// Matrix results are rounded in place; they are fresh kernel outputs owned by
// the command. Under numeric.strict_finite a non-finite result fails with ErrNaNInf.
func (a *app) write(w io.Writer, op string, res any) error {
	prec := a.cfg.Output.Precision
	round := func(v float64) float64 { return roundTo(v, prec) }
	roundDense := func(m *matrix.Dense) (*matrix.Dense, error) {
		return m, m.Apply(func(_, _ int, v float64) float64 { return round(v) })
	}

	if a.cfg.Output.Format == formatText {
		var s string
		switch r := res.(type) {
		case float64:
			s = formatScalar(r, prec)
		case int:
			s = strconv.Itoa(r)
		case *matrix.Dense:
			m, err := roundDense(r)
			if err != nil {
				return err
			}
			s = m.String()
		case normal:
			u, err := roundDense(r.Unit)
			if err != nil {
				return err
			}
			s = fmt.Sprintf("magnitude: %s\nunit: %s", formatScalar(r.Magnitude, prec), u)
		case projection:
			v, err := roundDense(r.Vector)
			if err != nil {
				return err
			}
			s = fmt.Sprintf("scalar: %s\nvector: %s", formatScalar(r.Scalar, prec), v)
		default:
			return fmt.Errorf("unsupported result %T", res)
		}
		_, err := fmt.Fprintln(w, s)

		return err
	}

	f, err := matrixio.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return err
	}

	var doc any
	switch r := res.(type) {
	case float64:
		doc = scalarDoc{Op: op, Value: round(r)}
	case int:
		doc = countDoc{Op: op, Value: r}
	case *matrix.Dense:
		m, err := roundDense(r)
		if err != nil {
			return err
		}
		doc = matrixio.FromDense(m)
	case normal:
		u, err := roundDense(r.Unit)
		if err != nil {
			return err
		}
		doc = normDoc{Magnitude: round(r.Magnitude), Unit: matrixio.FromDense(u)}
	case projection:
		v, err := roundDense(r.Vector)
		if err != nil {
			return err
		}
		doc = projectionDoc{Scalar: round(r.Scalar), Vector: matrixio.FromDense(v)}
	default:
		return fmt.Errorf("unsupported result %T", res)
	}

	return matrixio.EncodeValue(w, doc, f)
}

// roundTo rounds v to prec decimals; prec < 0 or a non-finite v returns v unchanged.
func roundTo(v float64, prec int) float64 {
	if prec < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	p := math.Pow10(prec)

	return math.Round(v*p) / p
}

func formatScalar(v float64, prec int) string {
	if prec < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strconv.FormatFloat(v, 'f', prec, 64)
}

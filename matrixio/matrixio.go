// SPDX-License-Identifier: MIT

// Package matrixio reads and writes matrices as YAML or JSON documents.
//
// A document carries either a flat row-major payload with its shape
//
//	rows: 2
//	cols: 2
//	data: [1, 2, 3, 4]
//
// or nested rows, whose shape is inferred
//
//	matrix: [[1, 2], [3, 4]]
//
// Supplying both payloads is rejected as ambiguous. Encode always writes the
// nested form together with rows/cols.
package matrixio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nelab/matrix"
)

// Format names a document encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var (
	// ErrEmptyDocument is returned when a document has neither data nor matrix.
	ErrEmptyDocument = errors.New("matrixio: document has no data")

	// ErrAmbiguousDocument is returned when a document has both data and matrix.
	ErrAmbiguousDocument = errors.New("matrixio: document has both data and matrix")

	// ErrUnknownFormat is returned for an unsupported format name or file extension.
	ErrUnknownFormat = errors.New("matrixio: unknown format")
)

// Document is the serialized form of a matrix.
type Document struct {
	Rows   int         `yaml:"rows,omitempty" json:"rows,omitempty"`
	Cols   int         `yaml:"cols,omitempty" json:"cols,omitempty"`
	Data   []float64   `yaml:"data,omitempty,flow" json:"data,omitempty"`
	Matrix [][]float64 `yaml:"matrix,omitempty" json:"matrix,omitempty"`
}

// ParseFormat resolves a case-insensitive format name ("yml" is accepted).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// FormatFromPath picks the format from a file extension (.yaml, .yml, .json).
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%s: no extension: %w", path, ErrUnknownFormat)
	}

	return ParseFormat(ext)
}

// Dense validates the document and builds the matrix it describes.
// Options are forwarded to the matrix constructors (e.g. matrix.WithValidateNaNInf).
//
// Errors: ErrEmptyDocument, ErrAmbiguousDocument, and the matrix sentinels
// ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf.
func (d Document) Dense(opts ...matrix.Option) (*matrix.Dense, error) {
	hasData, hasRows := len(d.Data) > 0, len(d.Matrix) > 0
	switch {
	case hasData && hasRows:
		return nil, ErrAmbiguousDocument
	case !hasData && !hasRows:
		return nil, ErrEmptyDocument
	case hasRows:
		m, err := matrix.NewFromRows(d.Matrix, opts...)
		if err != nil {
			return nil, err
		}
		if (d.Rows != 0 && d.Rows != m.Rows()) || (d.Cols != 0 && d.Cols != m.Cols()) {
			return nil, fmt.Errorf("declared %dx%d, matrix is %dx%d: %w",
				d.Rows, d.Cols, m.Rows(), m.Cols(), matrix.ErrDimensionMismatch)
		}

		return m, nil
	}

	rows, cols, err := inferShape(d.Rows, d.Cols, len(d.Data))
	if err != nil {
		return nil, err
	}

	return matrix.NewFromSlice(rows, cols, d.Data, opts...)
}

// inferShape fills in a missing rows or cols from the payload length.
func inferShape(rows, cols, n int) (int, int, error) {
	switch {
	case rows > 0 && cols > 0:
		return rows, cols, nil
	case rows > 0 && n%rows == 0:
		return rows, n / rows, nil
	case cols > 0 && n%cols == 0:
		return n / cols, cols, nil
	case rows == 0 && cols == 0:
		return 0, 0, fmt.Errorf("flat data needs rows or cols: %w", matrix.ErrInvalidDimensions)
	}

	return 0, 0, fmt.Errorf("%d values do not fill rows=%d cols=%d: %w", n, rows, cols, matrix.ErrDimensionMismatch)
}

// FromDense returns the nested-rows document for m.
func FromDense(m *matrix.Dense) Document {
	doc := Document{Rows: m.Rows(), Cols: m.Cols(), Matrix: make([][]float64, m.Rows())}
	for i := range doc.Matrix {
		doc.Matrix[i] = m.Row(i)
	}

	return doc
}

// Decode reads one document from r.
func Decode(r io.Reader, f Format, opts ...matrix.Option) (*matrix.Dense, error) {
	var doc Document
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrEmptyDocument
			}
			return nil, fmt.Errorf("matrixio: decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrEmptyDocument
			}
			return nil, fmt.Errorf("matrixio: decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}

	return doc.Dense(opts...)
}

// Load opens path and decodes it with the format implied by its extension.
func Load(path string, opts ...matrix.Option) (*matrix.Dense, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrixio: %w", err)
	}
	defer file.Close()

	m, err := Decode(file, f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Encode writes m to w as a nested-rows document.
// JSON cannot represent NaN or ±Inf; such matrices fail with matrix.ErrNaNInf
// naming the first offending element, and only encode as YAML.
func Encode(w io.Writer, m *matrix.Dense, f Format) error {
	if f == FormatJSON {
		if err := firstNonFinite(m); err != nil {
			return err
		}
	}

	return EncodeValue(w, FromDense(m), f)
}

// firstNonFinite reports the first NaN or ±Inf of m in row-major order.
func firstNonFinite(m *matrix.Dense) error {
	var err error
	m.Do(func(i, j int, v float64) bool {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			err = fmt.Errorf("matrixio: encode json: element (%d,%d) is %v: %w", i, j, v, matrix.ErrNaNInf)
			return false
		}

		return true
	})

	return err
}

// EncodeValue writes any serializable value in the given format.
func EncodeValue(w io.Writer, v any, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("matrixio: encode yaml: %w", err)
		}

		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("matrixio: encode json: %w", err)
		}

		return nil
	}

	return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
}

// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//     Row(i) is the one deliberate exception (contract violation, see its doc).
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce an optional numeric policy (rejection of NaN/Inf) from a single flag.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra: operate on the flat data slice directly.
//   - Every kernel returns a fresh *Dense; no two Dense values ever share a buffer.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); SwapRows: O(c); String: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxApply = "Apply" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtOpen     = "["
	_fmtClose    = "]"
	_fmtRowBreak = "\n "
	_fmtSep      = ", "
	_fmtEmpty    = "[]"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Produces "Dense.<method>(row,col): <sentinel>"; the sentinel stays matchable via errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense struct {
	r, c           int       // row and column counts (>=0; zero only for internal minors)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy from defaults.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return newDenseZeroOK(rows, cols), nil
}

// newDenseZeroOK is the internal constructor that allows rows==0 or cols==0.
// The only legal producer of a 0×0 matrix is Minor on a 1×1 input.
// Callers guarantee rows, cols >= 0.
func newDenseZeroOK(rows, cols int) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// newDenseLike allocates a zero matrix of the given shape that inherits the
// numeric policy of src. The policy guards later writes into the result;
// values the kernel itself stores are not checked.
func newDenseLike(src *Dense, rows, cols int) *Dense {
	d := newDenseZeroOK(rows, cols)
	d.validateNaNInf = src.validateNaNInf

	return d
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the total number of elements (rows*cols).
func (m *Dense) Len() int { return len(m.data) }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods wrap it with coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range input.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers under strict policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// The returned dynamic type is *Dense.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the typed variant of Clone used inside kernels.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// Row returns a copy of row i.
//
// Row indexing is a contract, not a recoverable operation: an out-of-range i
// panics with ErrOutOfRange, the same way slice indexing does. Use At for
// checked access.
//
// Complexity: O(c).
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.r {
		panic(fmt.Errorf("Dense.Row(%d) on %dx%d: %w", i, m.r, m.c, ErrOutOfRange))
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// SetRow overwrites row i with vals.
// Errors: ErrOutOfRange for a bad i, ErrDimensionMismatch when len(vals) != Cols(),
// ErrNaNInf under strict policy. The row is left untouched on error.
func (m *Dense) SetRow(i int, vals []float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf("SetRow", i, 0, ErrOutOfRange)
	}
	if len(vals) != m.c {
		return denseErrorf("SetRow", i, len(vals), ErrDimensionMismatch)
	}
	if m.validateNaNInf {
		for j, v := range vals {
			if isNonFinite(v) {
				return denseErrorf("SetRow", i, j, ErrNaNInf)
			}
		}
	}
	copy(m.data[i*m.c:(i+1)*m.c], vals)

	return nil
}

// Data returns a copy of the row-major buffer.
// Complexity: O(r*c).
func (m *Dense) Data() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// SwapRows exchanges rows r1 and r2 in place.
// Out-of-range indices make the call a silent no-op; it is an elimination
// helper whose callers only pass pivot rows they just found.
// Complexity: O(c).
func (m *Dense) SwapRows(r1, r2 int) {
	if r1 < 0 || r2 < 0 || r1 >= m.r || r2 >= m.r || r1 == r2 {
		return
	}
	var j, a, b int
	a, b = r1*m.c, r2*m.c
	for j = 0; j < m.c; j++ {
		m.data[a+j], m.data[b+j] = m.data[b+j], m.data[a+j]
	}
}

// Fill sets every element to v (policy-checked).
// Complexity: O(r*c).
func (m *Dense) Fill(v float64) error {
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf("Fill", 0, 0, ErrNaNInf)
	}
	for i := range m.data {
		m.data[i] = v
	}

	return nil
}

// Equal reports whether m and other have the same shape and bitwise-equal
// elements (NaN never equals NaN).
func (m *Dense) Equal(other *Dense) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}

	return true
}

// AllClose reports whether m and other have the same shape and every pair of
// elements differs by at most tol in absolute value.
func (m *Dense) AllClose(other *Dense, tol float64) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for i, v := range m.data {
		if math.Abs(v-other.data[i]) > tol {
			return false
		}
	}

	return true
}

// String renders the matrix as nested brackets, one row per line:
//
//	[[1, 2]
//	 [3, 4]]
//
// Elements use the shortest float representation (%g semantics), rows are
// emitted in row-major order, and an empty matrix renders as "[]".
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	if len(m.data) == 0 {
		return _fmtEmpty
	}
	var b strings.Builder
	var i, j, base int
	b.WriteString(_fmtOpen)
	for i = 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(_fmtRowBreak)
		}
		b.WriteString(_fmtOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', -1, 64))
		}
		b.WriteString(_fmtClose)
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c), no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// Implementation:
//   - Stage 1: nested loops over rows then cols; compute new value via f.
//   - Stage 2: reject NaN/Inf if policy enabled; write back.
//
// Behavior highlights:
//   - Early error aborts; elements written before the error remain updated.
//
// Returns:
//   - error: ErrNaNInf when f produced a non-finite value under strict policy.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// Notes:
//   - For all-or-nothing semantics use the package-level Apply, which writes into a fresh Dense.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT

// Package fixmat: storage, construction and element access.
// The backing store is a single flat row-major []float64; element (r,c)
// lives at data[r*cols+c]. Dimensions are set once by a constructor and
// never change afterwards - there is deliberately no resize/append API.
package fixmat

import "fmt"

// Matrix is a dense rows×cols matrix of float64 values with dimensions
// fixed at construction. The zero Matrix is not usable; obtain instances
// through New, NewFilled, NewFromFlat, NewFromRows or Clone.
//
// Copies made with Clone are deep and fully independent. Matrix carries
// no synchronization: concurrent mutation of one instance requires
// external locking, while distinct instances never share storage.
type Matrix struct {
	rows int       // fixed row count, > 0
	cols int       // fixed column count, > 0
	data []float64 // row-major backing store, len == rows*cols
}

// New returns a rows×cols matrix with every entry set to zero.
// Returns ErrBadShape when rows or cols is not positive.
// Complexity: O(rows*cols).
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New: %dx%d: %w", rows, cols, ErrBadShape)
	}

	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// NewFilled returns a rows×cols matrix with every entry set to v.
// Returns ErrBadShape when rows or cols is not positive.
// Complexity: O(rows*cols).
func NewFilled(rows, cols int, v float64) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("NewFilled: %w", err)
	}
	for i := range m.data {
		m.data[i] = v
	}

	return m, nil
}

// NewFromFlat returns a rows×cols matrix whose entries are assigned from
// vals in row-major order. The arity is strict: len(vals) must equal
// rows*cols exactly, otherwise ErrDimensionMismatch is returned - there
// is no silent truncation or zero-padding.
// Complexity: O(rows*cols).
func NewFromFlat(rows, cols int, vals ...float64) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("NewFromFlat: %w", err)
	}
	if len(vals) != rows*cols {
		return nil, fmt.Errorf("NewFromFlat: got %d values, want %d: %w",
			len(vals), rows*cols, ErrDimensionMismatch)
	}
	copy(m.data, vals)

	return m, nil
}

// NewFromRows returns a matrix built from nested row slices: rowVals[i]
// supplies row i. All rows must have the same positive length; a ragged
// input yields ErrRaggedRows and an empty input yields ErrBadShape.
// The input slices are copied, never retained.
// Complexity: O(rows*cols).
func NewFromRows(rowVals [][]float64) (*Matrix, error) {
	if len(rowVals) == 0 || len(rowVals[0]) == 0 {
		return nil, fmt.Errorf("NewFromRows: %w", ErrBadShape)
	}
	cols := len(rowVals[0])
	m, err := New(len(rowVals), cols)
	if err != nil {
		return nil, fmt.Errorf("NewFromRows: %w", err)
	}
	for i, row := range rowVals {
		if len(row) != cols {
			return nil, fmt.Errorf("NewFromRows: row %d has %d values, want %d: %w",
				i, len(row), cols, ErrRaggedRows)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the fixed row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the fixed column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Clone returns a deep copy of m. The copy compares Equal to m and shares
// no storage with it. Complexity: O(rows*cols).
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// At returns the entry at (i, j), or ErrIndexOutOfBounds when either
// index falls outside the fixed dimensions. Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("At(%d,%d) on %dx%d: %w", i, j, m.rows, m.cols, ErrIndexOutOfBounds)
	}

	return m.data[i*m.cols+j], nil
}

// Set assigns v to the entry at (i, j), or returns ErrIndexOutOfBounds
// when either index falls outside the fixed dimensions. Complexity: O(1).
func (m *Matrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return fmt.Errorf("Set(%d,%d) on %dx%d: %w", i, j, m.rows, m.cols, ErrIndexOutOfBounds)
	}
	m.data[i*m.cols+j] = v

	return nil
}

// AtRow is the checked row accessor: it returns a RowView of row i, or
// ErrIndexOutOfBounds when i is outside [0, Rows). Complexity: O(1).
func (m *Matrix) AtRow(i int) (RowView, error) {
	if i < 0 || i >= m.rows {
		return RowView{}, fmt.Errorf("AtRow(%d) on %dx%d: %w", i, m.rows, m.cols, ErrIndexOutOfBounds)
	}

	return RowView{m: m, i: i}, nil
}

// Row is the unchecked row accessor: it performs no bounds validation and
// never fails, regardless of i. The returned view is lazy - indexing only
// happens when the view itself is read or written, so passing an
// out-of-range row is a contract violation that surfaces at that later
// access, not here. Use AtRow for the checked variant. Complexity: O(1).
func (m *Matrix) Row(i int) RowView {
	return RowView{m: m, i: i}
}

// RowView is a mutable window onto a single row of a Matrix. Views read
// and write the matrix storage in place; they do not copy the row.
// A view obtained through Row performs no bounds validation on use.
type RowView struct {
	m *Matrix
	i int
}

// At returns the entry at column j of the viewed row, unchecked.
func (r RowView) At(j int) float64 { return r.m.data[r.i*r.m.cols+j] }

// Set assigns v to column j of the viewed row, unchecked.
func (r RowView) Set(j int, v float64) { r.m.data[r.i*r.m.cols+j] = v }

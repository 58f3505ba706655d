// SPDX-License-Identifier: MIT

// Package fixmat: arithmetic operators, transpose and identity.
// Non-mutating forms return a fresh matrix and leave the receiver
// untouched; *InPlace forms mutate the receiver and return it, which
// mirrors the compound-assignment contract. Every binary operation
// validates dimension compatibility before any arithmetic runs.
package fixmat

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
)

// Equal reports exact element-wise equality of m and o. Two matrices of
// different fixed dimensions are never equal; a nil operand is never
// equal either. Exact equality is unsuitable for results of the
// elimination family - use EqualApprox there.
// Complexity: O(rows*cols) with early exit.
func (m *Matrix) Equal(o *Matrix) bool {
	if o == nil || m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i, v := range m.data {
		if v != o.data[i] {
			return false
		}
	}

	return true
}

// Add returns the element-wise sum m + o as a new matrix.
// Returns ErrDimensionMismatch when shapes differ. Complexity: O(r*c).
func (m *Matrix) Add(o *Matrix) (*Matrix, error) {
	if err := ValidateSameShape(m, o); err != nil {
		return nil, fmt.Errorf("%s: %w", opAdd, err)
	}
	out := m.Clone()
	for i, v := range o.data {
		out.data[i] += v
	}

	return out, nil
}

// AddInPlace adds o into m element-wise and returns m.
// Returns ErrDimensionMismatch when shapes differ. Complexity: O(r*c).
func (m *Matrix) AddInPlace(o *Matrix) (*Matrix, error) {
	if err := ValidateSameShape(m, o); err != nil {
		return nil, fmt.Errorf("%s: %w", opAdd, err)
	}
	for i, v := range o.data {
		m.data[i] += v
	}

	return m, nil
}

// Sub returns the element-wise difference m - o as a new matrix.
// Returns ErrDimensionMismatch when shapes differ. Complexity: O(r*c).
func (m *Matrix) Sub(o *Matrix) (*Matrix, error) {
	if err := ValidateSameShape(m, o); err != nil {
		return nil, fmt.Errorf("%s: %w", opSub, err)
	}
	out := m.Clone()
	for i, v := range o.data {
		out.data[i] -= v
	}

	return out, nil
}

// SubInPlace subtracts o from m element-wise and returns m.
// Returns ErrDimensionMismatch when shapes differ. Complexity: O(r*c).
func (m *Matrix) SubInPlace(o *Matrix) (*Matrix, error) {
	if err := ValidateSameShape(m, o); err != nil {
		return nil, fmt.Errorf("%s: %w", opSub, err)
	}
	for i, v := range o.data {
		m.data[i] -= v
	}

	return m, nil
}

// Scale returns m with every entry multiplied by k, as a new matrix.
// Complexity: O(r*c).
func (m *Matrix) Scale(k float64) *Matrix {
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= k
	}

	return out
}

// ScaleInPlace multiplies every entry of m by k and returns m.
// Complexity: O(r*c).
func (m *Matrix) ScaleInPlace(k float64) *Matrix {
	for i := range m.data {
		m.data[i] *= k
	}

	return m
}

// Div returns m with every entry divided by k, as a new matrix.
// Division follows IEEE semantics; k == 0 yields ±Inf/NaN entries.
// Complexity: O(r*c).
func (m *Matrix) Div(k float64) *Matrix {
	out := m.Clone()
	for i := range out.data {
		out.data[i] /= k
	}

	return out
}

// DivInPlace divides every entry of m by k and returns m.
// Complexity: O(r*c).
func (m *Matrix) DivInPlace(k float64) *Matrix {
	for i := range m.data {
		m.data[i] /= k
	}

	return m
}

// Mul returns the matrix product m·o: for m of shape (r×k) and o of
// shape (k×c) the result has shape (r×c). Compatibility (m.Cols ==
// o.Rows) is checked before any arithmetic; ErrDimensionMismatch is
// returned otherwise. Loop order is fixed i→t→j over the flat row-major
// stores, so results are deterministic.
// Complexity: O(r*k*c) time, O(r*c) space.
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(m, o); err != nil {
		return nil, fmt.Errorf("%s: %w", opMul, err)
	}
	out := &Matrix{rows: m.rows, cols: o.cols, data: make([]float64, m.rows*o.cols)}
	for i := 0; i < m.rows; i++ {
		outBase := i * out.cols
		for t := 0; t < m.cols; t++ {
			a := m.data[i*m.cols+t]
			oBase := t * o.cols
			for j := 0; j < o.cols; j++ {
				out.data[outBase+j] += a * o.data[oBase+j]
			}
		}
	}

	return out, nil
}

// Transpose returns a new (Cols×Rows) matrix with out[j][i] = m[i][j].
// Transpose is an involution and distributes over Add and Scale.
// Complexity: O(r*c).
func (m *Matrix) Transpose() *Matrix {
	out := &Matrix{rows: m.cols, cols: m.rows, data: make([]float64, len(m.data))}
	for i := 0; i < m.rows; i++ {
		base := i * m.cols
		for j := 0; j < m.cols; j++ {
			out.data[j*out.cols+i] = m.data[base+j]
		}
	}

	return out
}

// Identity returns a new matrix of m's shape with 1 on the main diagonal
// and 0 elsewhere. For square m it is the multiplicative identity:
// m.Mul(m.Identity()) and m.Identity().Mul(m) both reproduce m exactly.
// Complexity: O(r*c).
func (m *Matrix) Identity() *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	n := m.rows
	if m.cols < n {
		n = m.cols
	}
	for i := 0; i < n; i++ {
		out.data[i*m.cols+i] = 1
	}

	return out
}

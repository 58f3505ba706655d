// SPDX-License-Identifier: MIT

// Package fixmat: the Gaussian elimination family.
//
// All four routines interpret the receiver either as an augmented linear
// system (Gauss, GaussJordan, Solve) or as a square matrix to invert
// (Inverse), work on a private copy, and share one kernel.
//
// Pivot selection is deterministic partial pivoting: for pivot column c
// the candidate rows are c..Rows-1 and the one with the largest absolute
// value wins, first occurrence on ties. A winning candidate whose
// magnitude is <= the pivot tolerance (DefaultPivotTolerance unless
// WithPivotTolerance says otherwise) means the system has no unique
// solution and the routine fails with ErrSingular - singularity is never
// masked by NaN propagation.
package fixmat

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opGauss       = "Gauss"
	opGaussJordan = "GaussJordan"
	opSolve       = "Solve"
	opInverse     = "Inverse"
)

// swapRows exchanges rows a and b in place. Complexity: O(cols).
func (m *Matrix) swapRows(a, b int) {
	aBase, bBase := a*m.cols, b*m.cols
	for j := 0; j < m.cols; j++ {
		m.data[aBase+j], m.data[bBase+j] = m.data[bBase+j], m.data[aBase+j]
	}
}

// eliminate reduces m in place. With full == false it produces row
// echelon form with unit pivots (entries below each pivot cleared);
// with full == true it additionally clears entries above each pivot,
// producing reduced row echelon form. Returns ErrSingular when a pivot
// column has no candidate above tol.
// Complexity: O(n²·cols) time for n = min(rows, cols), O(1) extra space.
func (m *Matrix) eliminate(full bool, tol float64) error {
	n := m.rows
	if m.cols < n {
		n = m.cols
	}
	for r := 0; r < n; r++ {
		// Partial pivoting: largest |entry| in column r at or below row r.
		pivotRow := r
		best := math.Abs(m.data[r*m.cols+r])
		for i := r + 1; i < m.rows; i++ {
			if a := math.Abs(m.data[i*m.cols+r]); a > best {
				best, pivotRow = a, i
			}
		}
		if best <= tol {
			return fmt.Errorf("no pivot in column %d: %w", r, ErrSingular)
		}
		if pivotRow != r {
			m.swapRows(pivotRow, r)
		}

		// Normalize the pivot row so the pivot entry becomes exactly 1.
		rBase := r * m.cols
		pivot := m.data[rBase+r]
		for j := r; j < m.cols; j++ {
			m.data[rBase+j] /= pivot
		}

		// Clear column r in the other rows: below only for echelon form,
		// above and below for the fully reduced form.
		lo := r + 1
		if full {
			lo = 0
		}
		for i := lo; i < m.rows; i++ {
			if i == r {
				continue
			}
			iBase := i * m.cols
			f := m.data[iBase+r]
			if f == 0 {
				continue
			}
			for j := r; j < m.cols; j++ {
				m.data[iBase+j] -= f * m.data[rBase+j]
			}
		}
	}

	return nil
}

// Gauss returns m reduced to row echelon form with unit pivots: rows are
// processed top to bottom, pivots chosen by partial pivoting, entries
// below each pivot eliminated and each pivot row normalized. Entries
// above the diagonal may remain nonzero - the result is NOT fully
// reduced, and callers recover solutions by back-substitution from the
// last row upward. The receiver is not modified.
// Returns ErrSingular when some pivot column has no nonzero candidate.
// Complexity: O(n³).
func (m *Matrix) Gauss(opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	out := m.Clone()
	if err := out.eliminate(false, o.pivotTol); err != nil {
		return nil, fmt.Errorf("%s: %w", opGauss, err)
	}

	return out, nil
}

// GaussJordan returns m reduced to reduced row echelon form: Gauss plus
// elimination of the entries above each pivot. For a consistent square
// augmented system the left block becomes the identity and the last
// column carries the solution directly. The receiver is not modified.
// Returns ErrSingular under the same conditions as Gauss.
// Complexity: O(n³).
func (m *Matrix) GaussJordan(opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	out := m.Clone()
	if err := out.eliminate(true, o.pivotTol); err != nil {
		return nil, fmt.Errorf("%s: %w", opGaussJordan, err)
	}

	return out, nil
}

// Solve treats m as an augmented system of N equations in N unknowns
// (shape N×(N+1), validated up front) and returns the N×1 solution
// vector, computed by Gauss-Jordan reduction followed by extraction of
// the right-hand-side column. The receiver is not modified.
// Returns ErrDimensionMismatch on a non-augmented shape and ErrSingular
// when the system has no unique solution.
// Complexity: O(n³).
func (m *Matrix) Solve(opts ...Option) (*Matrix, error) {
	if err := ValidateAugmented(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	o := gatherOptions(opts...)
	red := m.Clone()
	if err := red.eliminate(true, o.pivotTol); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	out := &Matrix{rows: m.rows, cols: 1, data: make([]float64, m.rows)}
	for i := 0; i < m.rows; i++ {
		out.data[i] = red.data[i*red.cols+red.cols-1]
	}

	return out, nil
}

// Inverse returns the multiplicative inverse of the square matrix m,
// built by augmenting m with the identity, running Gauss-Jordan
// reduction and extracting the right block. The receiver is not
// modified. m.Mul(inv) and inv.Mul(m) reproduce the identity up to
// floating-point tolerance (compare with EqualApprox; exact Equal may
// legitimately fail).
// Returns ErrDimensionMismatch for non-square m and ErrSingular when m
// has no inverse.
// Complexity: O(n³) time, O(n²) space.
func (m *Matrix) Inverse(opts ...Option) (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opInverse, err)
	}
	o := gatherOptions(opts...)
	n := m.rows

	// Form the augmented matrix [m | I].
	aug := &Matrix{rows: n, cols: 2 * n, data: make([]float64, n*2*n)}
	for i := 0; i < n; i++ {
		copy(aug.data[i*aug.cols:i*aug.cols+n], m.data[i*n:(i+1)*n])
		aug.data[i*aug.cols+n+i] = 1
	}
	if err := aug.eliminate(true, o.pivotTol); err != nil {
		return nil, fmt.Errorf("%s: %w", opInverse, err)
	}

	// Extract the right block: [I | m⁻¹].
	out := &Matrix{rows: n, cols: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		copy(out.data[i*n:(i+1)*n], aug.data[i*aug.cols+n:(i+1)*aug.cols])
	}

	return out, nil
}

// SPDX-License-Identifier: MIT
// Package fixmat_test contains unit tests for the elimination family:
// Gauss, GaussJordan, Solve and Inverse.
package fixmat_test

import (
	"testing"

	"github.com/katalvlaran/fixmat"
	"github.com/stretchr/testify/require"
)

// ulpBudget matches the step tolerance used when comparing elimination
// results: wide enough to absorb accumulated rounding, far too narrow to
// hide an actual wrong answer.
const ulpBudget = 100

func TestGauss_BackSubstitution(t *testing.T) {
	// x1 + x2 = 5; 3x0 + 2x1 + 2x2 = 13; x0 - x1 + 3x2 = 8.
	m0 := mustFromRows(t, [][]float64{{0, 1, 1, 5}, {3, 2, 2, 13}, {1, -1, 3, 8}})

	m1, err := m0.Gauss()
	require.NoError(t, err)

	// Row echelon with unit pivots: recover the solution manually from
	// the last row upward.
	at := func(i, j int) float64 {
		v, err := m1.At(i, j)
		require.NoError(t, err)

		return v
	}
	c := at(2, 3)
	b := at(1, 3) - at(1, 2)*c
	a := at(0, 3) - at(0, 1)*b - at(0, 2)*c

	require.InDelta(t, 1.0, a, 1e-9)
	require.InDelta(t, 2.0, b, 1e-9)
	require.InDelta(t, 3.0, c, 1e-9)

	// Every pivot must be exactly 1 after normalization.
	require.Equal(t, 1.0, at(0, 0))
	require.Equal(t, 1.0, at(1, 1))
	require.Equal(t, 1.0, at(2, 2))
}

func TestGauss_DoesNotMutateReceiver(t *testing.T) {
	m0 := mustFromRows(t, [][]float64{{0, 1, 1, 5}, {3, 2, 2, 13}, {1, -1, 3, 8}})
	snapshot := m0.Clone()

	_, err := m0.Gauss()
	require.NoError(t, err)
	require.True(t, snapshot.Equal(m0))
}

func TestGaussJordan(t *testing.T) {
	m0 := mustFromRows(t, [][]float64{{0, 1, 1, 5}, {3, 2, 2, 13}, {1, -1, 3, 8}})
	want := mustFromRows(t, [][]float64{{1, 0, 0, 1}, {0, 1, 0, 2}, {0, 0, 1, 3}})

	red, err := m0.GaussJordan()
	require.NoError(t, err)
	requireApprox(t, want, red, fixmat.DefaultEpsilon, ulpBudget)
}

func TestSolve(t *testing.T) {
	m0 := mustFromRows(t, [][]float64{{0, 1, 1, 5}, {3, 2, 2, 13}, {1, -1, 3, 8}})
	want := mustFromRows(t, [][]float64{{1}, {2}, {3}})

	x, err := m0.Solve()
	require.NoError(t, err)
	require.Equal(t, 3, x.Rows())
	require.Equal(t, 1, x.Cols())

	// Rounding error is expected here; exact Equal is the wrong tool.
	requireApprox(t, want, x, fixmat.DefaultEpsilon, ulpBudget)
}

func TestSolve_RequiresAugmentedShape(t *testing.T) {
	square := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	_, err := square.Solve()
	require.ErrorIs(t, err, fixmat.ErrDimensionMismatch)

	wide := mustFromRows(t, [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}})
	_, err = wide.Solve()
	require.ErrorIs(t, err, fixmat.ErrDimensionMismatch)
}

func TestInverse_ExactForWellChosenInput(t *testing.T) {
	// Chosen so every intermediate value is an exact binary fraction:
	// both products reproduce the identity under exact equality.
	m0 := mustFromRows(t, [][]float64{{1, 2, 0}, {1, 0, 1}, {2, 2, 2}})

	inv, err := m0.Inverse()
	require.NoError(t, err)

	right, err := m0.Mul(inv)
	require.NoError(t, err)
	require.True(t, m0.Identity().Equal(right))

	left, err := inv.Mul(m0)
	require.NoError(t, err)
	require.True(t, m0.Identity().Equal(left))
}

func TestInverse_ToleratesRounding(t *testing.T) {
	// det = 5: inverse entries are not binary fractions, so the products
	// carry rounding error and only the tolerant comparison may be used.
	m1 := mustFromRows(t, [][]float64{{1, 2, 3}, {0, 1, 5}, {5, 6, 0}})

	inv, err := m1.Inverse()
	require.NoError(t, err)

	right, err := m1.Mul(inv)
	require.NoError(t, err)
	requireApprox(t, m1.Identity(), right, fixmat.DefaultEpsilon, ulpBudget)

	left, err := inv.Mul(m1)
	require.NoError(t, err)
	requireApprox(t, m1.Identity(), left, fixmat.DefaultEpsilon, ulpBudget)
}

func TestInverse_NonSquare(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err := m.Inverse()
	require.ErrorIs(t, err, fixmat.ErrDimensionMismatch)
}

func TestSingularSystems(t *testing.T) {
	// Second row is twice the first: rank 1, no unique anything.
	singular := mustFromRows(t, [][]float64{{1, 2}, {2, 4}})

	_, err := singular.Gauss()
	require.ErrorIs(t, err, fixmat.ErrSingular)

	_, err = singular.GaussJordan()
	require.ErrorIs(t, err, fixmat.ErrSingular)

	_, err = singular.Inverse()
	require.ErrorIs(t, err, fixmat.ErrSingular)

	augmented := mustFromRows(t, [][]float64{{1, 1, 2}, {2, 2, 4}})
	_, err = augmented.Solve()
	require.ErrorIs(t, err, fixmat.ErrSingular)
}

func TestPivotToleranceOption(t *testing.T) {
	// The leading pivot is tiny but nonzero: plain elimination accepts
	// it, a stricter tolerance rejects the system as degenerate.
	m := mustFromRows(t, [][]float64{{1e-13, 1}, {0, 1}})

	_, err := m.Gauss()
	require.NoError(t, err)

	_, err = m.Gauss(fixmat.WithPivotTolerance(1e-9))
	require.ErrorIs(t, err, fixmat.ErrSingular)

	_, err = m.Inverse(fixmat.WithPivotTolerance(1e-9))
	require.ErrorIs(t, err, fixmat.ErrSingular)
}

func TestWithPivotTolerance_PanicsOnNonsense(t *testing.T) {
	require.Panics(t, func() { fixmat.WithPivotTolerance(-1) })
}

// SPDX-License-Identifier: MIT
// Shared helpers for the fixmat test suite.
package fixmat_test

import (
	"testing"

	"github.com/katalvlaran/fixmat"
	"github.com/stretchr/testify/require"
)

// mustFromRows builds a matrix from nested rows, failing the test on any
// construction error, so individual tests stay focused on the operation
// under test.
func mustFromRows(t *testing.T, rows [][]float64) *fixmat.Matrix {
	t.Helper()
	m, err := fixmat.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// requireApprox asserts EqualApprox(a, b, eps, maxULPs) succeeds and is true.
func requireApprox(t *testing.T, a, b *fixmat.Matrix, eps float64, maxULPs uint64) {
	t.Helper()
	ok, err := fixmat.EqualApprox(a, b, eps, maxULPs)
	require.NoError(t, err)
	require.True(t, ok)
}

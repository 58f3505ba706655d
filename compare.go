// SPDX-License-Identifier: MIT

// Package fixmat: tolerance-aware matrix comparison.
//
// Exact Equal is the wrong tool for results of Solve or Inverse because
// elimination accumulates rounding error. EqualApprox combines two
// standard closeness criteria per entry: an absolute epsilon floor,
// which protects comparisons of near-zero values, and a bound on the
// number of representable float64 steps (units in the last place)
// separating the two values, which tolerates rounding independent of
// magnitude. It is a pure predicate with no side effects and is never a
// substitute for the exact == semantics of Equal.
package fixmat

import (
	"fmt"
	"math"
)

const (
	// DefaultEpsilon is the absolute comparison floor: float64 machine
	// epsilon, 2^-52.
	DefaultEpsilon = 0x1p-52

	// DefaultMaxULPs is the default bound on representable-value steps
	// between entries that still compare as close.
	DefaultMaxULPs = 4
)

// EqualApprox reports whether every corresponding entry pair of a and b
// is close: either |x-y| <= eps, or x and y share a sign and lie within
// maxULPs representable float64 values of each other. NaN entries are
// never close to anything; infinities are close only to an identical
// infinity. Negative eps is normalized to its absolute value; NaN or
// infinite eps yields ErrBadTolerance. A dimension mismatch is a
// precondition violation and yields ErrDimensionMismatch.
// Complexity: O(rows*cols) time with early exit, O(1) space.
func EqualApprox(a, b *Matrix, eps float64, maxULPs uint64) (bool, error) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) {
		return false, fmt.Errorf("EqualApprox: %w", ErrBadTolerance)
	}
	if eps < 0 {
		eps = -eps
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, fmt.Errorf("EqualApprox: %w", err)
	}

	for i, x := range a.data {
		if !closeEnough(x, b.data[i], eps, maxULPs) {
			return false, nil
		}
	}

	return true, nil
}

// closeEnough is the per-entry criterion behind EqualApprox.
func closeEnough(x, y, eps float64, maxULPs uint64) bool {
	if x == y {
		// Covers identical values, +0 vs -0, and equal infinities.
		return true
	}
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	if math.Abs(x-y) <= eps {
		return true
	}
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}
	if math.Signbit(x) != math.Signbit(y) {
		// ULP distance across the sign boundary is meaningless; the
		// epsilon floor above already had its chance.
		return false
	}

	return ulpsBetween(x, y) <= maxULPs
}

// ulpsBetween counts the representable float64 values separating x and y,
// which must be finite and share a sign. For same-sign floats the IEEE 754
// bit patterns are monotonic in magnitude, so the step count is the
// distance between the patterns.
func ulpsBetween(x, y float64) uint64 {
	ux, uy := math.Float64bits(x), math.Float64bits(y)
	if ux > uy {
		return ux - uy
	}

	return uy - ux
}

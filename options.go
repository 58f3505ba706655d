// SPDX-License-Identifier: MIT

// Package fixmat: functional configuration for the elimination family.
// Option constructors validate eagerly and panic on nonsensical values
// (programmer error); defaults live in Default* constants so code and
// documentation cannot drift apart.
package fixmat

import "math"

// DefaultPivotTolerance is the magnitude at or below which a pivot
// candidate is treated as zero during elimination. The default of 0
// means only an exactly-zero column is singular, matching plain
// textbook elimination; raise it (e.g. 1e-12) to reject numerically
// degenerate systems early.
const DefaultPivotTolerance = 0.0

const panicPivotTolInvalid = "fixmat: WithPivotTolerance: tol must be finite, non-negative"

// Option mutates elimination options. Safe to apply repeatedly;
// last-writer-wins.
type Option func(*options)

// options is the resolved configuration consumed by the elimination
// family. Unexported: public entry points accept ...Option.
type options struct {
	pivotTol float64 // >= 0; DefaultPivotTolerance
}

// WithPivotTolerance sets the singularity threshold: any pivot candidate
// with magnitude <= tol is considered zero and makes the elimination
// fail with ErrSingular. Panics when tol is NaN, infinite or negative.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	return func(o *options) { o.pivotTol = tol }
}

// gatherOptions resolves setters against the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{pivotTol: DefaultPivotTolerance}
	for _, set := range opts {
		set(&o)
	}

	return o
}

// SPDX-License-Identifier: MIT

// Package fixmat implements a dense, fixed-dimension matrix over float64
// entries: dimensions are bound once at construction and no operation in
// the package can resize a matrix afterwards.
//
// What & Why:
//
//	Small linear systems (calibration, geometry, control loops) need a
//	handful of rows and columns, value semantics, and predictable failure
//	modes - not a full numerical suite. fixmat offers construction,
//	checked and unchecked element access, the usual arithmetic operators,
//	transpose and identity, a Gaussian elimination family (row echelon,
//	reduced row echelon, linear solve, inverse), and a tolerance-aware
//	equality for comparing computed results despite rounding error.
//
// Error discipline:
//
//	All failures surface as sentinel errors (ErrIndexOutOfBounds,
//	ErrDimensionMismatch, ErrSingular, ...) wrapped with the operation
//	name, so callers dispatch with errors.Is. Nothing is logged or
//	swallowed; elimination on a singular system always raises ErrSingular
//	rather than propagating NaN.
//
// Complexity:
//
//	Element access is O(1). Element-wise operators and rendering are
//	O(r*c). Matrix product is O(m*k*n). The elimination family is O(n³)
//	time, O(n²) space, operating on a private copy of the receiver.
package fixmat

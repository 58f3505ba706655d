package fixmat

import "errors"

var (
	// ErrBadShape indicates a non-positive row or column count at construction.
	ErrBadShape = errors.New("fixmat: non-positive dimension not allowed")
	// ErrRaggedRows indicates nested-row construction with rows of differing lengths.
	ErrRaggedRows = errors.New("fixmat: all rows must have the same length")
	// ErrIndexOutOfBounds indicates a checked access outside the fixed dimensions.
	ErrIndexOutOfBounds = errors.New("fixmat: index out of bounds")
	// ErrDimensionMismatch indicates operands with incompatible fixed dimensions.
	ErrDimensionMismatch = errors.New("fixmat: matrix dimension mismatch")
	// ErrSingular indicates that an elimination step found no usable pivot.
	ErrSingular = errors.New("fixmat: matrix is singular")
	// ErrNilMatrix indicates a nil *Matrix operand.
	ErrNilMatrix = errors.New("fixmat: nil matrix")
	// ErrBadTolerance indicates a NaN or infinite comparison tolerance.
	ErrBadTolerance = errors.New("fixmat: tolerance must be finite")
)

// SPDX-License-Identifier: MIT

// Package fixmat: canonical validation checks shared by all operations.
// Validators return plain sentinel errors wrapped with their own tag so
// call sites can wrap once more with the operation name and callers can
// still dispatch with errors.Is. All checks are pure, O(1) and
// allocation-free on the success path.
package fixmat

import "fmt"

// validatorErrorf tags an underlying sentinel with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix otherwise.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and share identical
// dimensions. Returns ErrNilMatrix or ErrDimensionMismatch.
func ValidateSameShape(a, b *Matrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.rows != b.rows || a.cols != b.cols {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and square (Rows == Cols).
// Returns ErrNilMatrix or ErrDimensionMismatch.
func ValidateSquare(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.rows != m.cols {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows,
// the compatibility condition of the matrix product a·b.
// Returns ErrNilMatrix or ErrDimensionMismatch.
func ValidateMulCompatible(a, b *Matrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateAugmented ensures m is non-nil and shaped N×(N+1): a square
// coefficient block plus exactly one right-hand-side column, the form
// required by Solve. Returns ErrNilMatrix or ErrDimensionMismatch.
func ValidateAugmented(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateAugmented", ErrNilMatrix)
	}
	if m.cols != m.rows+1 {
		return validatorErrorf("ValidateAugmented", ErrDimensionMismatch)
	}

	return nil
}

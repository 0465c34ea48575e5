// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating nil/shape/mode checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with matrixErrorf.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil -> Mode -> Shape).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/ratla/fraction"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf wraps an error with the method and the offending coordinates.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("FractionMatrix.%s(%d,%d): %w", method, row, col, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m *FractionMatrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
func ValidateSquare(m *FractionMatrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSameMode checks that a and b hold values of the same exactness.
func ValidateSameMode(a, b *FractionMatrix) error {
	if a.mode != b.mode {
		return validatorErrorf("ValidateSameMode", ErrIncompatible)
	}

	return nil
}

// ValidateMulCompatible checks a.Cols == b.Rows and equal modes.
//
// Errors: ErrNilMatrix, ErrIncompatible, ErrDimensionMismatch (in that order).
func ValidateMulCompatible(a, b *FractionMatrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if err := ValidateSameMode(a, b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateValueMode checks that v can be stored in a matrix of mode m.
func ValidateValueMode(m fraction.Mode, v fraction.Value) error {
	vm, err := v.Mode()
	if err != nil || vm != m {
		return validatorErrorf("ValidateValueMode", ErrIncompatible)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
func ValidateVecLen(x []fraction.Value, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.
// Panics are reserved for programmer errors (invalid option values).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(op, ErrX) so the
// operation is visible; callers still match with errors.Is.
//
// Overflow of the narrow representation is NOT an error: it is resolved by
// promotion to wide storage and never surfaces here.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// dimensions) or rows of the input have inconsistent lengths.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Mul where a.Cols != b.Rows, or a vector of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when the determinant is zero or a zero pivot
	// remains after elimination.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNoReducedForm is returned by GaussJordanReduced when a diagonal cell
	// is zero after elimination. It wraps ErrSingular.
	ErrNoReducedForm = fmtWrap("matrix: matrix has no reduced row-echelon form", ErrSingular)

	// ErrIncompatible signals an attempt to mix exact and approximate values
	// in one matrix or one operation.
	ErrIncompatible = errors.New("matrix: cannot combine exact and approximate values")

	// ErrNilMatrix indicates that a nil *FractionMatrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// wrappedSentinel is a sentinel whose errors.Is chain includes a parent.
type wrappedSentinel struct {
	msg    string
	parent error
}

func (e *wrappedSentinel) Error() string { return e.msg }
func (e *wrappedSentinel) Unwrap() error { return e.parent }

func fmtWrap(msg string, parent error) error {
	return &wrappedSentinel{msg: msg, parent: parent}
}

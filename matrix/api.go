// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Kernels work in place on the receiver; facades return fresh matrices
//     and leave their inputs untouched.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Results carry the options (logger, tolerance, parallelism) of the input.
//
// AI-Hints:
//   - Use ZerosLike/IdentityLike to build matrices in the mode of another one.
//   - Solve is the augmented-matrix route: [A | b] -> reduced echelon -> x.

package matrix

import "github.com/katalvlaran/ratla/fraction"

const (
	opIdentityLike  = "IdentityLike"
	opInverseOf     = "InverseOf"
	opReducedOf     = "ReducedEchelonOf"
	opIdentityMinOf = "IdentityMinusOf"
	opSolve         = "Solve"
)

// ---------- Constructors & Utilities ----------

// ZerosLike returns a zero matrix with the shape, mode and options of m.
// Complexity: O(rc).
func ZerosLike(m *FractionMatrix) *FractionMatrix {
	return newWithOptions(m.r, m.c, m.mode, m.opts)
}

// IdentityLike returns I with dimension Rows(m) in the mode of m; requires square shape.
// Complexity: O(n^2).
func IdentityLike(m *FractionMatrix) (*FractionMatrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}
	out := newWithOptions(m.r, m.r, m.mode, m.opts)
	for i := 0; i < m.r; i++ {
		out.setOneAt(i*m.r + i)
	}

	return out, nil
}

// ---------- Linear Algebra ----------

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product(a, b *FractionMatrix) (*FractionMatrix, error) { return Mul(a, b) }

// InverseOf returns m^{-1} and leaves m unchanged.
// Complexity: O(n^3).
func InverseOf(m *FractionMatrix) (*FractionMatrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverseOf, err)
	}
	out := m.Clone()
	if err := out.Invert(); err != nil {
		return nil, matrixErrorf(opInverseOf, err)
	}

	return out, nil
}

// ReducedEchelonOf returns the reduced row-echelon form of m and leaves m unchanged.
func ReducedEchelonOf(m *FractionMatrix) (*FractionMatrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReducedOf, err)
	}
	out := m.Clone()
	if err := out.GaussJordanReduced(); err != nil {
		return nil, matrixErrorf(opReducedOf, err)
	}

	return out, nil
}

// IdentityMinusOf returns I - m and leaves m unchanged.
func IdentityMinusOf(m *FractionMatrix) (*FractionMatrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opIdentityMinOf, err)
	}
	out := m.Clone()
	if err := out.IdentityMinus(); err != nil {
		return nil, matrixErrorf(opIdentityMinOf, err)
	}

	return out, nil
}

// Solve returns x with a·x = b for a square, non-singular a.
// MAIN DESCRIPTION:
//   - Builds the augmented matrix [a | b], brings it to reduced row-echelon
//     form and reads x from the last column.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (len(b) != rows),
//     ErrIncompatible (b of the other mode), ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Solve(a *FractionMatrix, b []fraction.Value) ([]fraction.Value, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.r); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	aug := a.Clone()
	if err := aug.PushColumns(1); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	for i, v := range b {
		if err := ValidateValueMode(a.mode, v); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
		aug.storeValue(opSolve, i*aug.c+a.c, v)
	}
	if err := aug.GaussJordanReduced(); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x := make([]fraction.Value, a.r)
	for i := range x {
		x[i] = aug.cellValue(i*aug.c + a.c)
	}

	return x, nil
}

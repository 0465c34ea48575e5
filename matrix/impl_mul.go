// SPDX-License-Identifier: MIT

// Package matrix - matrix product kernels.
//
// Purpose:
//   - Narrow×Narrow: checked uint64 multiply-add per cell. The first cell
//     whose product or running sum overflows stops the narrow kernel; the
//     result matrix is promoted (keeping every finished cell) and the wide
//     kernel resumes at that cell. Nothing is recomputed.
//   - Any product involving a wide operand runs the wide kernel directly.
//   - Approximate operands use plain float64 dot products.
//
// Determinism:
//   - Fixed i -> j -> k loop order; identical results for identical inputs.
package matrix

import (
	"github.com/katalvlaran/ratla/fraction"
)

// Mul returns a×b as a new matrix carrying a's options.
// MAIN DESCRIPTION:
//   - (n×m)·(m×p) -> n×p product of two matrices of the same mode.
//
// Implementation:
//   - Stage 1: validate nil, mode, and shape.
//   - Stage 2: dispatch on representation (approx / narrow / wide).
//   - Stage 3: on narrow overflow, promote the partial result and finish
//     the remaining cells in wide arithmetic.
//
// Behavior highlights:
//   - Overflow is never an error; the result is simply wide.
//   - Specials follow the cell algebra (0·Inf = NaN, Inf-Inf = NaN).
//
// Errors:
//   - ErrNilMatrix, ErrIncompatible (exact×approx), ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n*m*p), Space O(n*p).
func Mul(a, b *FractionMatrix) (*FractionMatrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	out := newWithOptions(a.r, b.c, a.mode, a.opts)
	switch {
	case a.data != nil:
		mulApproxInto(out, a, b)
	case a.narrow != nil && b.narrow != nil:
		if next, ok := mulNarrowInto(out, a, b); !ok {
			out.promote(opMul)
			mulWideInto(out, a, b, next)
		}
	default:
		out.promote(opMul)
		mulWideInto(out, a, b, 0)
	}

	return out, nil
}

// mulApproxInto fills out with the float64 product.
func mulApproxInto(out, a, b *FractionMatrix) {
	var i, j, k int
	var sum float64
	for i = 0; i < a.r; i++ {
		for j = 0; j < b.c; j++ {
			sum = 0
			for k = 0; k < a.c; k++ {
				sum += a.data[i*a.c+k] * b.data[k*b.c+j]
			}
			out.data[i*out.c+j] = sum
		}
	}
}

// mulNarrowInto computes cells in row-major order until one overflows.
// It returns the offset of the first unfinished cell and false on
// overflow; cells before that offset are final.
func mulNarrowInto(out, a, b *FractionMatrix) (int, bool) {
	var (
		acc, p narrowCell
		ok     bool
	)
	for i := 0; i < a.r; i++ {
		for j := 0; j < b.c; j++ {
			acc = narrowZero
			for k := 0; k < a.c; k++ {
				if p, ok = narrowMul(a.narrow.get(i*a.c+k), b.narrow.get(k*b.c+j)); !ok {
					return i*out.c + j, false
				}
				if acc, ok = narrowAdd(acc, p); !ok {
					return i*out.c + j, false
				}
			}
			out.narrow.set(i*out.c+j, acc)
		}
	}

	return out.r * out.c, true
}

// mulWideInto computes the cells of a wide out from offset from on.
func mulWideInto(out, a, b *FractionMatrix, from int) {
	for idx := from; idx < out.r*out.c; idx++ {
		i, j := idx/out.c, idx%out.c
		acc := wideZero()
		for k := 0; k < a.c; k++ {
			acc = wideAdd(acc, wideMul(a.cellWide(i*a.c+k), b.cellWide(k*b.c+j)))
		}
		out.wide.set(idx, acc)
	}
}

// vectorMatrix wraps v as a rows×cols matrix (one of them is 1) in the mode
// and options of like.
func vectorMatrix(op string, like *FractionMatrix, v []fraction.Value, rows, cols int) (*FractionMatrix, error) {
	vm := newWithOptions(rows, cols, like.mode, like.opts)
	for i, x := range v {
		if err := ValidateValueMode(like.mode, x); err != nil {
			return nil, matrixErrorf(op, err)
		}
		vm.storeValue(op, i, x)
	}

	return vm, nil
}

// MulVec returns m·v for a column vector v of length Cols().
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrIncompatible.
func MulVec(m *FractionMatrix, v []fraction.Value) ([]fraction.Value, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(v, m.c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	col, err := vectorMatrix(opMulVec, m, v, len(v), 1)
	if err != nil {
		return nil, err
	}
	prod, err := Mul(m, col)
	if err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	out := make([]fraction.Value, prod.r)
	for i := range out {
		out[i] = prod.cellValue(i)
	}

	return out, nil
}

// VecMul returns v·m for a row vector v of length Rows().
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrIncompatible.
func VecMul(v []fraction.Value, m *FractionMatrix) ([]fraction.Value, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	if err := ValidateVecLen(v, m.r); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	row, err := vectorMatrix(opVecMul, m, v, 1, len(v))
	if err != nil {
		return nil, err
	}
	prod, err := Mul(row, m)
	if err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	out := make([]fraction.Value, prod.c)
	for j := range out {
		out[j] = prod.cellValue(j)
	}

	return out, nil
}

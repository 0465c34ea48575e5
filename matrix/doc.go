// Package matrix offers an overflow-safe matrix of fraction values and the
// elimination kernels built on it.
//
// The matrix package provides:
//
//   - FractionMatrix, a row-major matrix whose exact cells start as uint64
//     numerator/denominator pairs (narrow storage) and switch to *big.Int
//     pairs (wide storage) the first time a result would overflow.
//     Approximate matrices use a flat []float64 buffer.
//   - Mul, MulVec and VecMul, with overflow salvage: a narrow product that
//     overflows keeps every finished cell and completes the rest in wide
//     arithmetic.
//   - GaussJordan, GaussJordanReduced, Invert and IdentityMinus, which work
//     in place, plus copy-returning facades (InverseOf, Solve, ...).
//   - Reduce and CommonDenominator, parallelized with errgroup above a
//     configurable cell count.
//
// Overflow is never an error. Mixing exact and approximate values is
// (ErrIncompatible).
//
// See the examples in this package and fraction for usage patterns.
package matrix

// SPDX-License-Identifier: MIT

// Package fraction provides a dual-mode scalar: every Value is either an
// exact arbitrary-precision rational or an approximate float64, and the two
// are never silently mixed.
//
// The package provides:
//
//   - Value, a tagged union of Exact(*big.Rat), Approx(float64) and the
//     absorbing Incompatible poison produced by mixing the two modes.
//   - Mode and Factory, the explicit exactness configuration consulted by
//     constructors (Int, Pair, Parse, Float) and never by arithmetic.
//   - A process-wide default Mode for the package-level constructors,
//     meant to be set once at startup.
//   - Textual parsing ("3", "-0.25", "1/5", ".2", "NaN", "-inf") and
//     export helpers (String, Decimal, Export, JSON).
//
// Arithmetic never fails at the operator: combining an exact and an
// approximate operand yields Incompatible, which then propagates through
// every further operation. Callers check once, at the boundary, with
// IsIncompatible or by extracting a definite value via Rat or Float64.
//
// Exact values also carry explicit NaN and ±Inf tags so that division by an
// exact zero is total: x/0 is +Inf or -Inf by the sign of x and 0/0 is NaN.
// Arithmetic on those tags follows IEEE-754.
//
// See the examples in this package for usage patterns.
package fraction

// SPDX-License-Identifier: MIT

// Package numeric provides the small numeric capability set the rest of the
// module consumes from primitive types: zero/one, sign predicates,
// absolute value, floor/ceil, reciprocal and NaN/Inf checks.
//
// Every function is generic over Number, so one implementation covers the
// 8/16/32/64-bit signed and unsigned integers and the 32/64-bit floats
// (and any named type built on them). 128-bit and unbounded values go
// through math/big in package fraction.
package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any primitive integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Zero returns the additive identity of T.
func Zero[T Number]() T { return 0 }

// One returns the multiplicative identity of T.
func One[T Number]() T { return 1 }

// IsZero reports v == 0.
func IsZero[T Number](v T) bool { return v == 0 }

// IsOne reports v == 1.
func IsOne[T Number](v T) bool { return v == 1 }

// IsPositive reports v > 0.
func IsPositive[T Number](v T) bool { return v > 0 }

// IsNegative reports v < 0. Always false for unsigned T.
func IsNegative[T Number](v T) bool { return v < 0 }

// IsFloat reports whether T is a floating-point type.
func IsFloat[T Number]() bool {
	var half T = 1
	half /= 2

	return half != 0
}

// IsSigned reports whether T can hold negative values.
func IsSigned[T Number]() bool {
	var z T

	return z-1 < 0
}

// Abs returns |v|. For the most negative value of a signed integer type
// the result overflows back to v, matching two's-complement negation.
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// Floor returns the greatest integer value <= v. Integers are returned
// unchanged.
func Floor[T Number](v T) T {
	if !IsFloat[T]() {
		return v
	}

	return T(math.Floor(float64(v)))
}

// Ceil returns the least integer value >= v. Integers are returned
// unchanged.
func Ceil[T Number](v T) T {
	if !IsFloat[T]() {
		return v
	}

	return T(math.Ceil(float64(v)))
}

// Recip returns 1/v for floating-point T.
func Recip[T constraints.Float](v T) T { return 1 / v }

// IsNaN reports whether v is NaN. Always false for integers.
func IsNaN[T Number](v T) bool {
	return v != v // only NaN is unequal to itself
}

// IsInf reports whether v is +Inf or -Inf. Always false for integers.
func IsInf[T Number](v T) bool {
	if !IsFloat[T]() {
		return false
	}

	return math.IsInf(float64(v), 0)
}

// Sign returns -1, 0 or +1. NaN reports 0.
func Sign[T Number](v T) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}

	return 0
}

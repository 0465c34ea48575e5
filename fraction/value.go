// SPDX-License-Identifier: MIT

package fraction

import (
	"math"
	"math/big"
)

// Epsilon is the tolerance of approximate equality: two approximate values
// are equal when |l-r| <= Epsilon.
const Epsilon = 1e-13

// kind discriminates the Value union. The zero kind is exact so that the
// zero Value is an exact 0.
type kind uint8

const (
	kindExact kind = iota
	kindApprox
	kindIncompatible
)

// special tags the non-finite exact values.
type special uint8

const (
	finite special = iota
	specialNaN
	specialPosInf
	specialNegInf
)

// Value is an exact rational, an approximate float64, or Incompatible.
//
// Values are immutable: every operator returns a fresh Value and the
// in-place *Assign methods replace the receiver wholesale. The rational
// held by an exact Value is never mutated after construction, so copies of
// a Value may share it.
type Value struct {
	kind kind
	sp   special  // exact only
	rat  *big.Rat // exact finite; nil means 0
	f    float64  // approx only
}

// Exact wraps a copy of r. A nil r is 0.
func Exact(r *big.Rat) Value {
	if r == nil {
		return Value{}
	}

	return Value{rat: new(big.Rat).Set(r)}
}

// ExactNaN returns the exact NaN tag.
func ExactNaN() Value { return Value{sp: specialNaN} }

// ExactInf returns exact +Inf for sign >= 0 and -Inf for sign < 0.
func ExactInf(sign int) Value {
	if sign < 0 {
		return Value{sp: specialNegInf}
	}

	return Value{sp: specialPosInf}
}

// Approx wraps x.
func Approx(x float64) Value { return Value{kind: kindApprox, f: x} }

// Incompatible returns the poison value produced by mixing modes.
func Incompatible() Value { return Value{kind: kindIncompatible} }

// exactOverZero is the exact value of x/0 for x of the given sign.
func exactOverZero(sign int) Value {
	if sign == 0 {
		return ExactNaN()
	}

	return ExactInf(sign)
}

// exactRat wraps r without copying; callers hand over ownership.
func exactRat(r *big.Rat) Value { return Value{rat: r} }

// ratOrZero returns the finite rational of an exact value, never nil.
// The result must not be mutated.
func (v Value) ratOrZero() *big.Rat {
	if v.rat == nil {
		return new(big.Rat)
	}

	return v.rat
}

// IsExact reports whether v is an exact value (finite or special).
func (v Value) IsExact() bool { return v.kind == kindExact }

// IsApprox reports whether v is an approximate value.
func (v Value) IsApprox() bool { return v.kind == kindApprox }

// IsIncompatible reports whether v is the Incompatible poison.
func (v Value) IsIncompatible() bool { return v.kind == kindIncompatible }

// Mode returns the mode of v, or ErrIncompatible for the poison.
func (v Value) Mode() (Mode, error) {
	switch v.kind {
	case kindExact:
		return ModeExact, nil
	case kindApprox:
		return ModeApprox, nil
	}

	return ModeExact, fractionErrorf(opMode, ErrIncompatible)
}

// IsNaN reports whether v is NaN in either mode.
func (v Value) IsNaN() bool {
	switch v.kind {
	case kindExact:
		return v.sp == specialNaN
	case kindApprox:
		return math.IsNaN(v.f)
	}

	return false
}

// IsInf reports whether v is +Inf or -Inf in either mode.
func (v Value) IsInf() bool {
	switch v.kind {
	case kindExact:
		return v.sp == specialPosInf || v.sp == specialNegInf
	case kindApprox:
		return math.IsInf(v.f, 0)
	}

	return false
}

// IsFinite reports whether v is neither NaN, ±Inf nor Incompatible.
func (v Value) IsFinite() bool {
	return !v.IsIncompatible() && !v.IsNaN() && !v.IsInf()
}

// Sign returns -1, 0 or +1. NaN and Incompatible report 0.
func (v Value) Sign() int {
	switch v.kind {
	case kindExact:
		switch v.sp {
		case specialPosInf:
			return 1
		case specialNegInf:
			return -1
		case specialNaN:
			return 0
		}
		if v.rat == nil {
			return 0
		}
		return v.rat.Sign()
	case kindApprox:
		switch {
		case v.f > 0:
			return 1
		case v.f < 0:
			return -1
		}
	}

	return 0
}

// IsZero reports whether v is an exact or approximate zero.
func (v Value) IsZero() bool {
	switch v.kind {
	case kindExact:
		return v.sp == finite && v.Sign() == 0
	case kindApprox:
		return v.f == 0
	}

	return false
}

// IsOne reports whether v is exactly one.
func (v Value) IsOne() bool {
	switch v.kind {
	case kindExact:
		return v.sp == finite && v.rat != nil && v.rat.IsInt() && v.rat.Num().IsInt64() && v.rat.Num().Int64() == 1
	case kindApprox:
		return v.f == 1
	}

	return false
}

// IsPositive reports v > 0 (including +Inf).
func (v Value) IsPositive() bool { return v.Sign() > 0 }

// IsNegative reports v < 0 (including -Inf).
func (v Value) IsNegative() bool { return v.Sign() < 0 }

// Rat returns a copy of the exact rational held by v.
//
// Errors:
//   - ErrIncompatible for approximate values and for Incompatible.
//   - ErrNotFinite for exact NaN and ±Inf.
func (v Value) Rat() (*big.Rat, error) {
	if v.kind != kindExact {
		return nil, fractionErrorf(opRat, ErrIncompatible)
	}
	if v.sp != finite {
		return nil, fractionErrorf(opRat, ErrNotFinite)
	}

	return new(big.Rat).Set(v.ratOrZero()), nil
}

// Float64 returns the float held by an approximate value.
// Exact values and Incompatible report ErrIncompatible; use Approximate for
// a lossy conversion of an exact value.
func (v Value) Float64() (float64, error) {
	if v.kind != kindApprox {
		return 0, fractionErrorf(opFloat64, ErrIncompatible)
	}

	return v.f, nil
}

// Approximate converts v to the nearest float64 regardless of mode.
// Incompatible converts to NaN.
func (v Value) Approximate() float64 {
	switch v.kind {
	case kindApprox:
		return v.f
	case kindExact:
		switch v.sp {
		case specialNaN:
			return math.NaN()
		case specialPosInf:
			return math.Inf(1)
		case specialNegInf:
			return math.Inf(-1)
		}
		f, _ := v.ratOrZero().Float64()
		return f
	}

	return math.NaN()
}

// ToMode converts v into mode m. Exact to approximate rounds; approximate
// to exact keeps the binary value of the float. Incompatible stays
// Incompatible.
func (v Value) ToMode(m Mode) Value {
	switch {
	case v.kind == kindIncompatible:
		return v
	case m == ModeApprox:
		return Approx(v.Approximate())
	case v.kind == kindApprox:
		return ExactFactory().Float(v.f)
	}

	return v
}

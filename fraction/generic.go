// SPDX-License-Identifier: MIT

package fraction

import (
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/ratla/numeric"
)

// IntegerOf builds v in f's mode for any primitive integer width.
func IntegerOf[T constraints.Integer](f Factory, v T) Value {
	if numeric.IsSigned[T]() {
		return f.Int(int64(v))
	}

	return f.Uint(uint64(v))
}

// FloatOf builds v in f's mode for float32 or float64.
func FloatOf[T constraints.Float](f Factory, v T) Value {
	return f.Float(float64(v))
}

// FromInteger builds v in the default mode.
func FromInteger[T constraints.Integer](v T) Value { return IntegerOf(Default(), v) }

// FromFloat builds v in the default mode.
func FromFloat[T constraints.Float](v T) Value { return FloatOf(Default(), v) }

// Values converts a slice of primitive numbers in f's mode.
func Values[T numeric.Number](f Factory, xs []T) []Value {
	out := make([]Value, len(xs))
	for i, x := range xs {
		switch {
		case numeric.IsFloat[T]():
			out[i] = f.Float(float64(x))
		case numeric.IsSigned[T]():
			out[i] = f.Int(int64(x))
		default:
			out[i] = f.Uint(uint64(x))
		}
	}

	return out
}

// Sum adds xs left to right starting from f's zero. Mixed modes yield
// Incompatible.
func Sum(f Factory, xs []Value) Value {
	acc := f.Zero()
	for _, x := range xs {
		acc.AddAssign(x)
	}

	return acc
}

// LCM returns the least common multiple of a and b; LCM(0, x) is 0.
func LCM(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return new(big.Int)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
	out := new(big.Int).Quo(a, g)
	out.Mul(out, b)

	return out.Abs(out)
}

// Denominator returns the reduced denominator of a finite exact value.
func (v Value) Denominator() (*big.Int, error) {
	r, err := v.Rat()
	if err != nil {
		return nil, err
	}

	return new(big.Int).Set(r.Denom()), nil
}

// Numerator returns the reduced numerator of a finite exact value.
func (v Value) Numerator() (*big.Int, error) {
	r, err := v.Rat()
	if err != nil {
		return nil, err
	}

	return new(big.Int).Set(r.Num()), nil
}

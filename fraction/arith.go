// SPDX-License-Identifier: MIT
// Package fraction - arithmetic.
//
// Purpose:
//   - Implement the infectious mode rule once (combine) and keep every
//     binary operator a thin dispatch over it.
//   - Give exact NaN/±Inf IEEE-754 semantics so that exact division is total.
//
// Notes:
//   - Division is multiplication by the reciprocal; recip(0) is +Inf and
//     recip(±Inf) is 0, which yields x/0 = ±Inf, 0/0 = NaN, x/Inf = 0.

package fraction

import (
	"math"
	"math/big"
)

// binaryOp bundles the exact and approximate kernels of one operator.
type binaryOp struct {
	exact  func(a, b Value) Value
	approx func(a, b float64) float64
}

// combine applies op under the mode rule: exact with exact, approximate with
// approximate, anything else is Incompatible.
func combine(a, b Value, op binaryOp) Value {
	switch {
	case a.kind == kindExact && b.kind == kindExact:
		return op.exact(a, b)
	case a.kind == kindApprox && b.kind == kindApprox:
		return Approx(op.approx(a.f, b.f))
	}

	return Incompatible()
}

var (
	opAddKernels = binaryOp{exact: exactAdd, approx: func(a, b float64) float64 { return a + b }}
	opSubKernels = binaryOp{exact: exactSub, approx: func(a, b float64) float64 { return a - b }}
	opMulKernels = binaryOp{exact: exactMul, approx: func(a, b float64) float64 { return a * b }}
	opDivKernels = binaryOp{exact: exactDiv, approx: func(a, b float64) float64 { return a / b }}
)

// Add returns v + w.
func (v Value) Add(w Value) Value { return combine(v, w, opAddKernels) }

// Sub returns v - w.
func (v Value) Sub(w Value) Value { return combine(v, w, opSubKernels) }

// Mul returns v * w.
func (v Value) Mul(w Value) Value { return combine(v, w, opMulKernels) }

// Div returns v / w. Exact division by zero yields ±Inf, or NaN for 0/0.
func (v Value) Div(w Value) Value { return combine(v, w, opDivKernels) }

// AddAssign sets *v = *v + w.
func (v *Value) AddAssign(w Value) { *v = v.Add(w) }

// SubAssign sets *v = *v - w.
func (v *Value) SubAssign(w Value) { *v = v.Sub(w) }

// MulAssign sets *v = *v * w.
func (v *Value) MulAssign(w Value) { *v = v.Mul(w) }

// DivAssign sets *v = *v / w.
func (v *Value) DivAssign(w Value) { *v = v.Div(w) }

// Neg returns -v.
func (v Value) Neg() Value {
	switch v.kind {
	case kindApprox:
		return Approx(-v.f)
	case kindIncompatible:
		return v
	}
	switch v.sp {
	case specialPosInf:
		return ExactInf(-1)
	case specialNegInf:
		return ExactInf(1)
	case specialNaN:
		return v
	}

	return exactRat(new(big.Rat).Neg(v.ratOrZero()))
}

// Recip returns 1/v.
func (v Value) Recip() Value {
	switch v.kind {
	case kindApprox:
		return Approx(1 / v.f)
	case kindIncompatible:
		return v
	}

	return exactRecip(v)
}

// Abs returns |v|.
func (v Value) Abs() Value {
	if v.Sign() < 0 {
		return v.Neg()
	}

	return v
}

// Floor returns the greatest integer <= v. Specials are returned unchanged.
func (v Value) Floor() Value {
	switch v.kind {
	case kindApprox:
		return Approx(math.Floor(v.f))
	case kindIncompatible:
		return v
	}
	if v.sp != finite {
		return v
	}

	return exactRat(new(big.Rat).SetInt(floorRat(v.ratOrZero())))
}

// Ceil returns the least integer >= v. Specials are returned unchanged.
func (v Value) Ceil() Value {
	switch v.kind {
	case kindApprox:
		return Approx(math.Ceil(v.f))
	case kindIncompatible:
		return v
	}
	if v.sp != finite {
		return v
	}
	// ceil(x) = -floor(-x)
	neg := new(big.Rat).Neg(v.ratOrZero())

	return exactRat(new(big.Rat).SetInt(new(big.Int).Neg(floorRat(neg))))
}

// OneMinus returns 1 - v in the mode of v.
func (v Value) OneMinus() Value {
	switch v.kind {
	case kindApprox:
		return Approx(1 - v.f)
	case kindIncompatible:
		return v
	}

	return exactSub(exactRat(big.NewRat(1, 1)), v)
}

// Clone returns a Value that shares nothing with v.
func (v Value) Clone() Value {
	if v.rat != nil {
		v.rat = new(big.Rat).Set(v.rat)
	}

	return v
}

// floorRat returns floor(r). big.Int.Div is Euclidean, which equals the
// floor for the positive denominators big.Rat keeps.
func floorRat(r *big.Rat) *big.Int {
	return new(big.Int).Div(r.Num(), r.Denom())
}

func exactAdd(a, b Value) Value {
	if a.sp != finite || b.sp != finite {
		return specialAdd(a, b)
	}

	return exactRat(new(big.Rat).Add(a.ratOrZero(), b.ratOrZero()))
}

func exactSub(a, b Value) Value { return exactAdd(a, b.Neg()) }

func exactMul(a, b Value) Value {
	if a.sp != finite || b.sp != finite {
		return specialMul(a, b)
	}

	return exactRat(new(big.Rat).Mul(a.ratOrZero(), b.ratOrZero()))
}

func exactDiv(a, b Value) Value { return exactMul(a, exactRecip(b)) }

func exactRecip(v Value) Value {
	switch v.sp {
	case specialNaN:
		return v
	case specialPosInf, specialNegInf:
		return Value{}
	}
	if v.Sign() == 0 {
		return ExactInf(1)
	}

	return exactRat(new(big.Rat).Inv(v.ratOrZero()))
}

// specialAdd handles a+b when at least one operand is NaN or ±Inf.
func specialAdd(a, b Value) Value {
	switch {
	case a.sp == specialNaN || b.sp == specialNaN:
		return ExactNaN()
	case a.sp != finite && b.sp != finite:
		if a.sp == b.sp {
			return a
		}
		return ExactNaN() // +Inf + -Inf
	case a.sp != finite:
		return a
	}

	return b
}

// specialMul handles a*b when at least one operand is NaN or ±Inf.
func specialMul(a, b Value) Value {
	if a.sp == specialNaN || b.sp == specialNaN {
		return ExactNaN()
	}
	sa, sb := a.Sign(), b.Sign()
	if sa == 0 || sb == 0 {
		return ExactNaN() // 0 * Inf
	}

	return ExactInf(sa * sb)
}

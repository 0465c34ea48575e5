// SPDX-License-Identifier: MIT
// Package fraction - square roots.
//
// Purpose:
//   - Exact roots of perfect squares stay exact.
//   - Other exact roots are refined by Newton's (Babylonian) iteration on
//     big.Rat until the estimated error |r - x^2| / 2x is within 10^-decimals.
//   - Approximate values use math.Sqrt; decimals is ignored.

package fraction

import (
	"math"
	"math/big"
)

// Sqrt returns the square root of v. Exact results are exact when v is the
// square of a rational, otherwise a rational within 10^-decimals of the root.
// sqrt(NaN) is NaN and sqrt(+Inf) is +Inf in both modes.
//
// Errors:
//   - ErrNegative for values below zero.
//   - ErrIncompatible for Incompatible.
//
// Complexity: each iteration doubles the correct digits, while the size of
// the exact iterate roughly doubles as well.
func (v Value) Sqrt(decimals uint) (Value, error) {
	switch v.kind {
	case kindIncompatible:
		return v, fractionErrorf(opSqrt, ErrIncompatible)
	case kindApprox:
		if v.f < 0 {
			return v, fractionErrorf(opSqrt, ErrNegative)
		}
		return Approx(math.Sqrt(v.f)), nil
	}

	switch v.sp {
	case specialNaN, specialPosInf:
		return v, nil
	case specialNegInf:
		return v, fractionErrorf(opSqrt, ErrNegative)
	}
	r := v.ratOrZero()
	switch r.Sign() {
	case -1:
		return v, fractionErrorf(opSqrt, ErrNegative)
	case 0:
		return Value{}, nil
	}

	if root, ok := exactRoot(r); ok {
		return exactRat(root), nil
	}

	return exactRat(babylonian(r, decimals)), nil
}

// exactRoot returns sqrt(r) when both terms of r are perfect squares.
func exactRoot(r *big.Rat) (*big.Rat, bool) {
	num, ok := intRoot(r.Num())
	if !ok {
		return nil, false
	}
	den, ok := intRoot(r.Denom())
	if !ok {
		return nil, false
	}

	return new(big.Rat).SetFrac(num, den), true
}

func intRoot(n *big.Int) (*big.Int, bool) {
	s := new(big.Int).Sqrt(n)
	sq := new(big.Int).Mul(s, s)

	return s, sq.Cmp(n) == 0
}

// babylonian iterates x = (x + r/x) / 2 for r > 0.
func babylonian(r *big.Rat, decimals uint) *big.Rat {
	eps := new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))

	var x *big.Rat
	if r.Cmp(big.NewRat(1, 1)) >= 0 {
		x = sqrtSeed(r)
	} else {
		x = sqrtSeed(new(big.Rat).Inv(r))
		x.Inv(x)
	}

	half := big.NewRat(1, 2)
	for sqrtError(r, x).Cmp(eps) > 0 {
		next := new(big.Rat).Quo(r, x)
		next.Add(next, x)
		x = next.Mul(next, half)
	}

	return x
}

// sqrtSeed returns 2^(bits(ceil(r))/2) for r >= 1.
func sqrtSeed(r *big.Rat) *big.Rat {
	c := new(big.Int).Neg(floorRat(new(big.Rat).Neg(r)))
	seed := new(big.Int).Lsh(big.NewInt(1), uint(c.BitLen()/2))

	return new(big.Rat).SetInt(seed)
}

// sqrtError estimates |x - sqrt(r)| as |r - x^2| / 2x.
func sqrtError(r, x *big.Rat) *big.Rat {
	e := new(big.Rat).Mul(x, x)
	e.Sub(r, e)
	e.Abs(e)
	twoX := new(big.Rat).Add(x, x)

	return e.Quo(e, twoX)
}

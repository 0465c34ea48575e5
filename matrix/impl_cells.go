// SPDX-License-Identifier: MIT

// Package matrix - cell arithmetic for the two exact layouts.
//
// Purpose:
//   - narrowCell: checked uint64 arithmetic (math/bits); every operation
//     reports ok=false instead of wrapping on overflow.
//   - wideCell: the same operations on *big.Int, which never overflow.
//   - Both share the tag algebra of types.go, so specials behave the same in
//     either width and agree with fraction.Value.
//
// Invariants:
//   - Finite cells are reduced (gcd(num, den) = 1), den > 0, zero is Plus 0/1.
//   - Special cells have num = den = 0.
//   - Results of mul/add are reduced when the inputs are.
//
// AI-Hints:
//   - Callers that get ok=false must promote the matrix and redo the same
//     operation with wide cells; partial results are never written.
package matrix

import (
	"math/big"
	"math/bits"

	"github.com/katalvlaran/ratla/fraction"
)

// ---------- narrow ----------

// narrowCell is one narrow cell: a tag plus a magnitude num/den.
type narrowCell struct {
	tag      Tag
	num, den uint64
}

var (
	narrowZero = narrowCell{tag: Plus, num: 0, den: 1}
	narrowOne  = narrowCell{tag: Plus, num: 1, den: 1}
)

func gcd64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// mul64 returns a*b and whether it fits in 64 bits.
func mul64(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)

	return lo, hi == 0
}

// add64 returns a+b and whether it fits in 64 bits.
func add64(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)

	return sum, carry == 0
}

func (c narrowCell) isZero() bool { return !c.tag.IsSpecial() && c.num == 0 }

func (c narrowCell) isOne() bool { return c.tag == Plus && c.num == 1 && c.den == 1 }

func (c narrowCell) neg() narrowCell {
	if c.isZero() {
		return narrowZero
	}
	c.tag = c.tag.Negate()

	return c
}

// recip never overflows: it swaps num and den.
func (c narrowCell) recip() narrowCell {
	switch {
	case c.tag == NaN:
		return c
	case c.tag.isInf():
		return narrowZero
	case c.num == 0:
		return narrowCell{tag: PosInf}
	}

	return narrowCell{tag: c.tag, num: c.den, den: c.num}
}

// normalizeNarrow builds a reduced cell from a signed magnitude.
func normalizeNarrow(neg bool, num, den uint64) narrowCell {
	if num == 0 {
		return narrowZero
	}
	g := gcd64(num, den)

	return narrowCell{tag: signTag(neg), num: num / g, den: den / g}
}

// narrowMul returns a*b. Cross-cancellation keeps reduced inputs reduced and
// delays overflow.
func narrowMul(a, b narrowCell) (narrowCell, bool) {
	if a.tag.IsSpecial() || b.tag.IsSpecial() {
		return narrowCell{tag: specialProduct(a.tag, a.isZero(), b.tag, b.isZero())}, true
	}
	if a.num == 0 || b.num == 0 {
		return narrowZero, true
	}
	g1 := gcd64(a.num, b.den)
	g2 := gcd64(b.num, a.den)
	num, okN := mul64(a.num/g1, b.num/g2)
	den, okD := mul64(a.den/g2, b.den/g1)
	if !okN || !okD {
		return narrowCell{}, false
	}

	return narrowCell{tag: signTag(a.tag.negative() != b.tag.negative()), num: num, den: den}, true
}

// narrowAdd returns a+b.
func narrowAdd(a, b narrowCell) (narrowCell, bool) {
	if a.tag.IsSpecial() || b.tag.IsSpecial() {
		return narrowCell{tag: specialSum(a.tag, b.tag)}, true
	}
	if a.num == 0 {
		return b, true
	}
	if b.num == 0 {
		return a, true
	}

	var an, bn, den uint64
	if a.den == b.den {
		an, bn, den = a.num, b.num, a.den
	} else {
		var ok bool
		g := gcd64(a.den, b.den)
		if den, ok = mul64(a.den/g, b.den); !ok {
			return narrowCell{}, false
		}
		if an, ok = mul64(a.num, b.den/g); !ok {
			return narrowCell{}, false
		}
		if bn, ok = mul64(b.num, a.den/g); !ok {
			return narrowCell{}, false
		}
	}

	aNeg, bNeg := a.tag.negative(), b.tag.negative()
	if aNeg == bNeg {
		num, ok := add64(an, bn)
		if !ok {
			return narrowCell{}, false
		}
		return normalizeNarrow(aNeg, num, den), true
	}
	if an >= bn {
		return normalizeNarrow(aNeg, an-bn, den), true
	}

	return normalizeNarrow(bNeg, bn-an, den), true
}

func narrowSub(a, b narrowCell) (narrowCell, bool) { return narrowAdd(a, b.neg()) }

func narrowDiv(a, b narrowCell) (narrowCell, bool) { return narrowMul(a, b.recip()) }

// reduceNarrow canonicalizes c: 0 -> Plus 0/1, n == d -> 1/1, else divide
// by the gcd. Specials are normalized to num = den = 0.
func reduceNarrow(c narrowCell) narrowCell {
	switch {
	case c.tag.IsSpecial():
		return narrowCell{tag: c.tag}
	case c.num == 0:
		return narrowZero
	case c.num == c.den:
		return narrowCell{tag: c.tag, num: 1, den: 1}
	}
	g := gcd64(c.num, c.den)
	if g == 1 {
		return c
	}

	return narrowCell{tag: c.tag, num: c.num / g, den: c.den / g}
}

func (c narrowCell) widen() wideCell {
	return wideCell{tag: c.tag, num: new(big.Int).SetUint64(c.num), den: new(big.Int).SetUint64(c.den)}
}

func (c narrowCell) value() fraction.Value { return c.widen().value() }

// ---------- wide ----------

// wideCell is one wide cell. num and den are never nil and never negative.
// The big.Int values are immutable once a cell is stored: operations always
// allocate results, so cells may share them.
type wideCell struct {
	tag      Tag
	num, den *big.Int
}

func wideZero() wideCell { return wideCell{tag: Plus, num: new(big.Int), den: big.NewInt(1)} }

func wideOne() wideCell { return wideCell{tag: Plus, num: big.NewInt(1), den: big.NewInt(1)} }

func wideSpecial(t Tag) wideCell { return wideCell{tag: t, num: new(big.Int), den: new(big.Int)} }

func (c wideCell) isZero() bool { return !c.tag.IsSpecial() && c.num.Sign() == 0 }

func (c wideCell) isOne() bool {
	return c.tag == Plus && c.num.IsUint64() && c.num.Uint64() == 1 && c.den.IsUint64() && c.den.Uint64() == 1
}

// fitsNarrow reports whether num and den fit in uint64.
func (c wideCell) fitsNarrow() bool { return c.num.IsUint64() && c.den.IsUint64() }

// narrow converts c when it fits.
func (c wideCell) narrow() (narrowCell, bool) {
	if !c.fitsNarrow() {
		return narrowCell{}, false
	}

	return narrowCell{tag: c.tag, num: c.num.Uint64(), den: c.den.Uint64()}, true
}

func (c wideCell) neg() wideCell {
	if c.isZero() {
		return wideZero()
	}

	return wideCell{tag: c.tag.Negate(), num: c.num, den: c.den}
}

func (c wideCell) recip() wideCell {
	switch {
	case c.tag == NaN:
		return c
	case c.tag.isInf():
		return wideZero()
	case c.num.Sign() == 0:
		return wideSpecial(PosInf)
	}

	return wideCell{tag: c.tag, num: c.den, den: c.num}
}

// normalizeWide builds a reduced cell from a signed magnitude; it takes
// ownership of num and den.
func normalizeWide(neg bool, num, den *big.Int) wideCell {
	if num.Sign() == 0 {
		return wideZero()
	}
	g := new(big.Int).GCD(nil, nil, num, den)
	if !(g.IsUint64() && g.Uint64() == 1) {
		num.Quo(num, g)
		den.Quo(den, g)
	}

	return wideCell{tag: signTag(neg), num: num, den: den}
}

func wideMul(a, b wideCell) wideCell {
	if a.tag.IsSpecial() || b.tag.IsSpecial() {
		return wideSpecial(specialProduct(a.tag, a.isZero(), b.tag, b.isZero()))
	}
	if a.num.Sign() == 0 || b.num.Sign() == 0 {
		return wideZero()
	}
	num := new(big.Int).Mul(a.num, b.num)
	den := new(big.Int).Mul(a.den, b.den)

	return normalizeWide(a.tag.negative() != b.tag.negative(), num, den)
}

func wideAdd(a, b wideCell) wideCell {
	if a.tag.IsSpecial() || b.tag.IsSpecial() {
		return wideSpecial(specialSum(a.tag, b.tag))
	}
	if a.num.Sign() == 0 {
		return b
	}
	if b.num.Sign() == 0 {
		return a
	}

	var an, bn, den *big.Int
	if a.den.Cmp(b.den) == 0 {
		an, bn, den = a.num, b.num, new(big.Int).Set(a.den)
	} else {
		an = new(big.Int).Mul(a.num, b.den)
		bn = new(big.Int).Mul(b.num, a.den)
		den = new(big.Int).Mul(a.den, b.den)
	}

	aNeg, bNeg := a.tag.negative(), b.tag.negative()
	if aNeg == bNeg {
		return normalizeWide(aNeg, new(big.Int).Add(an, bn), den)
	}
	if an.Cmp(bn) >= 0 {
		return normalizeWide(aNeg, new(big.Int).Sub(an, bn), den)
	}

	return normalizeWide(bNeg, new(big.Int).Sub(bn, an), den)
}

func wideSub(a, b wideCell) wideCell { return wideAdd(a, b.neg()) }

func wideDiv(a, b wideCell) wideCell { return wideMul(a, b.recip()) }

// reduceWide returns the canonical form of c and whether it fits narrow.
// c itself is left untouched.
func reduceWide(c wideCell) (wideCell, bool) {
	switch {
	case c.tag.IsSpecial():
		return wideSpecial(c.tag), true
	case c.num.Sign() == 0:
		return wideZero(), true
	case c.num.Cmp(c.den) == 0:
		out := wideOne()
		out.tag = c.tag
		return out, true
	}
	g := new(big.Int).GCD(nil, nil, c.num, c.den)
	if g.IsUint64() && g.Uint64() == 1 {
		return c, c.fitsNarrow()
	}
	out := wideCell{tag: c.tag, num: new(big.Int).Quo(c.num, g), den: new(big.Int).Quo(c.den, g)}

	return out, out.fitsNarrow()
}

// value converts c into an exact fraction.Value.
func (c wideCell) value() fraction.Value {
	switch c.tag {
	case NaN:
		return fraction.ExactNaN()
	case PosInf:
		return fraction.ExactInf(1)
	case NegInf:
		return fraction.ExactInf(-1)
	}
	if c.den.Sign() == 0 {
		return fraction.ExactNaN()
	}
	num := new(big.Int).Set(c.num)
	if c.tag == Minus {
		num.Neg(num)
	}

	return fraction.Exact(new(big.Rat).SetFrac(num, c.den))
}

// wideFromValue converts an exact value into a wide cell.
func wideFromValue(v fraction.Value) (wideCell, error) {
	switch {
	case !v.IsExact():
		return wideCell{}, ErrIncompatible
	case v.IsNaN():
		return wideSpecial(NaN), nil
	case v.IsInf():
		return wideSpecial(infTag(v.IsNegative())), nil
	}
	r, err := v.Rat()
	if err != nil {
		return wideCell{}, ErrIncompatible
	}

	return wideCell{
		tag: signTag(r.Sign() < 0),
		num: new(big.Int).Abs(r.Num()),
		den: new(big.Int).Set(r.Denom()),
	}, nil
}

// SPDX-License-Identifier: MIT

package fraction

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Panic messages for ordering across modes (programmer error).
const (
	panicCmpMixed        = "fraction: Cmp: cannot order exact and approximate values"
	panicCmpIncompatible = "fraction: Cmp: cannot order Incompatible against a definite value"
)

// incompatibleHashKey is hashed for every Incompatible value.
const incompatibleHashKey = "fraction:incompatible"

// Equal reports whether v and w are equal.
//
// Behavior highlights:
//   - Exact vs approximate is always unequal.
//   - Incompatible equals Incompatible.
//   - Approximate values are equal when |v-w| <= Epsilon; NaN is never equal.
//   - Exact NaN equals exact NaN (structural equality of the tag).
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case kindIncompatible:
		return true
	case kindApprox:
		return approxEqual(v.f, w.f)
	}
	if v.sp != w.sp {
		return false
	}
	if v.sp != finite {
		return true
	}

	return v.ratOrZero().Cmp(w.ratOrZero()) == 0
}

func approxEqual(l, r float64) bool {
	if l == r {
		return true
	}

	return math.Abs(l-r) <= Epsilon
}

// Cmp returns -1, 0 or +1 for v < w, v == w, v > w.
//
// Behavior highlights:
//   - Exact order: NaN < -Inf < finite < +Inf; NaN compares equal to NaN.
//   - Approximate order uses Equal for 0 and puts NaN first.
//   - Cmp(Incompatible, Incompatible) is 0.
//
// Panics when ordering an exact value against an approximate one, or
// Incompatible against anything else: that is a logic error.
func (v Value) Cmp(w Value) int {
	switch {
	case v.kind == kindIncompatible && w.kind == kindIncompatible:
		return 0
	case v.kind == kindIncompatible || w.kind == kindIncompatible:
		panic(panicCmpIncompatible)
	case v.kind != w.kind:
		panic(panicCmpMixed)
	case v.kind == kindApprox:
		return approxCmp(v.f, w.f)
	}

	rv, rw := exactRank(v), exactRank(w)
	if rv != rw {
		return cmpInt(rv, rw)
	}
	if v.sp != finite {
		return 0
	}

	return v.ratOrZero().Cmp(w.ratOrZero())
}

// exactRank orders the exact tags: NaN < -Inf < finite < +Inf.
func exactRank(v Value) int {
	switch v.sp {
	case specialNaN:
		return 0
	case specialNegInf:
		return 1
	case specialPosInf:
		return 3
	}

	return 2
}

func approxCmp(l, r float64) int {
	ln, rn := math.IsNaN(l), math.IsNaN(r)
	switch {
	case ln && rn:
		return 0
	case ln:
		return -1
	case rn:
		return 1
	case approxEqual(l, r):
		return 0
	case l < r:
		return -1
	}

	return 1
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// Less reports v.Cmp(w) < 0.
func (v Value) Less(w Value) bool { return v.Cmp(w) < 0 }

// Hash returns a 64-bit xxhash of v.
//
// Notes:
//   - Approximate values hash their raw bit pattern, so two values that are
//     Equal within Epsilon may hash differently.
//   - Exact values hash their reduced numerator and denominator, so equal
//     rationals hash equally.
//   - Every Incompatible value hashes to the same constant.
func (v Value) Hash() uint64 {
	d := xxhash.New()
	var buf [9]byte
	buf[0] = byte(v.kind)
	switch v.kind {
	case kindIncompatible:
		_, _ = d.WriteString(incompatibleHashKey)
		return d.Sum64()
	case kindApprox:
		binary.LittleEndian.PutUint64(buf[1:], math.Float64bits(v.f))
		_, _ = d.Write(buf[:])
		return d.Sum64()
	}
	buf[1] = byte(v.sp)
	_, _ = d.Write(buf[:2])
	if v.sp == finite {
		r := v.ratOrZero()
		if r.Sign() < 0 {
			_, _ = d.Write([]byte{'-'})
		}
		_, _ = d.Write(r.Num().Bytes())
		_, _ = d.Write([]byte{'/'})
		_, _ = d.Write(r.Denom().Bytes())
	}

	return d.Sum64()
}

// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the storage layouts and kernels.
// This file contains ONLY the cell tag and the representation enum; errors
// and options live in dedicated files (errors.go, options.go).
package matrix

// Tag is the per-cell sign/special marker of exact storage. Finite cells
// carry Plus or Minus with a non-negative magnitude num/den; special cells
// carry NaN, PosInf or NegInf and num = den = 0.
type Tag uint8

const (
	// Plus marks a finite cell >= 0. Zero is always Plus 0/1.
	Plus Tag = iota
	// Minus marks a finite cell < 0.
	Minus
	// NaN marks an undefined cell (0/0, Inf-Inf, 0*Inf).
	NaN
	// PosInf marks +Inf.
	PosInf
	// NegInf marks -Inf.
	NegInf
)

// String returns a short name of the tag.
func (t Tag) String() string {
	switch t {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case NaN:
		return "NaN"
	case PosInf:
		return "+Inf"
	case NegInf:
		return "-Inf"
	}

	return "?"
}

// IsSpecial reports whether t marks NaN or an infinity.
func (t Tag) IsSpecial() bool { return t >= NaN }

// isInf reports whether t marks an infinity.
func (t Tag) isInf() bool { return t == PosInf || t == NegInf }

// negative reports whether t marks a negative quantity.
func (t Tag) negative() bool { return t == Minus || t == NegInf }

// Negate flips the sign of t; NaN is unchanged.
func (t Tag) Negate() Tag {
	switch t {
	case Plus:
		return Minus
	case Minus:
		return Plus
	case PosInf:
		return NegInf
	case NegInf:
		return PosInf
	}

	return t
}

// signTag returns Minus when neg is set, Plus otherwise.
func signTag(neg bool) Tag {
	if neg {
		return Minus
	}

	return Plus
}

// infTag returns NegInf when neg is set, PosInf otherwise.
func infTag(neg bool) Tag {
	if neg {
		return NegInf
	}

	return PosInf
}

// specialSum is the tag of a+b when at least one operand is special.
func specialSum(a, b Tag) Tag {
	switch {
	case a == NaN || b == NaN:
		return NaN
	case a.isInf() && b.isInf():
		if a == b {
			return a
		}
		return NaN // +Inf + -Inf
	case a.isInf():
		return a
	}

	return b
}

// specialProduct is the tag of a*b when at least one operand is special.
func specialProduct(a Tag, aZero bool, b Tag, bZero bool) Tag {
	if a == NaN || b == NaN || aZero || bZero {
		return NaN // 0 * Inf
	}

	return infTag(a.negative() != b.negative())
}

// Representation names the storage layout currently backing a matrix.
type Representation uint8

const (
	// Narrow stores exact cells as uint64 numerator/denominator pairs.
	Narrow Representation = iota
	// Wide stores exact cells as *big.Int numerator/denominator pairs.
	Wide
	// Approx stores float64 cells (the dense row-major layout).
	Approx
)

// String returns "narrow", "wide" or "approx".
func (r Representation) String() string {
	switch r {
	case Narrow:
		return "narrow"
	case Wide:
		return "wide"
	}

	return "approx"
}

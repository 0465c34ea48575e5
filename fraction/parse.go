// SPDX-License-Identifier: MIT

package fraction

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

// Spellings of the special values accepted by Parse (case-insensitive).
var (
	nanSpellings = map[string]bool{"nan": true}
	infSpellings = map[string]bool{"inf": true, "infinity": true, "∞": true}
)

// Parse parses s in the factory's mode.
//
// Grammar (surrounding whitespace ignored):
//
//	[sign] digits
//	[sign] digits '.' digits
//	[sign] '.' digits
//	[sign] digits '/' digits
//	[sign] ("inf" | "infinity" | "∞")
//	"nan"
//
// where sign is '-' or '+'. A zero denominator follows Pair: n/0 is ±Inf
// and 0/0 is NaN.
//
// Implementation:
//   - Stage 1: strip the sign and recognize the special spellings.
//   - Stage 2: fractions parse numerator and denominator as big.Int.
//   - Stage 3: decimals with at most decimal.MaxPrec digits go through
//     govalues/decimal; longer literals fall back to big.Rat.
//
// Errors:
//   - ErrSyntax wrapped with the offending input; never panics.
func (f Factory) Parse(s string) (Value, error) {
	body := strings.TrimSpace(s)
	if body == "" {
		return Value{}, syntaxError(s, "empty input")
	}
	neg := false
	switch body[0] {
	case '-':
		neg = true
		body = body[1:]
	case '+':
		body = body[1:]
	}
	lower := strings.ToLower(body)
	switch {
	case nanSpellings[lower]:
		return f.special(ExactNaN()), nil
	case infSpellings[lower]:
		if neg {
			return f.special(ExactInf(-1)), nil
		}
		return f.special(ExactInf(1)), nil
	}

	var (
		r   *big.Rat
		err error
	)
	if num, den, ok := strings.Cut(body, "/"); ok {
		r, err = parseRatio(s, num, den)
		if err != nil {
			return Value{}, err
		}
		if r == nil { // zero denominator
			sign := 1
			if neg {
				sign = -1
			}
			if isAllZero(num) {
				sign = 0
			}
			return f.special(exactOverZero(sign)), nil
		}
	} else {
		r, err = parseDecimal(s, body)
		if err != nil {
			return Value{}, err
		}
	}
	if neg {
		r.Neg(r)
	}

	return f.Rat(r), nil
}

// special converts an exact special into the factory's mode.
func (f Factory) special(v Value) Value {
	if f.Mode == ModeApprox {
		return Approx(v.Approximate())
	}

	return v
}

// parseRatio parses "num/den" (both unsigned digit strings). A nil result
// with nil error means den == 0.
func parseRatio(input, num, den string) (*big.Rat, error) {
	if !isDigits(num) {
		return nil, syntaxError(input, "numerator must be digits")
	}
	if !isDigits(den) {
		return nil, syntaxError(input, "denominator must be digits")
	}
	n, ok := new(big.Int).SetString(num, 10)
	if !ok {
		return nil, syntaxError(input, "numerator")
	}
	d, ok := new(big.Int).SetString(den, 10)
	if !ok {
		return nil, syntaxError(input, "denominator")
	}
	if d.Sign() == 0 {
		return nil, nil
	}

	return new(big.Rat).SetFrac(n, d), nil
}

// parseDecimal parses "digits", "digits.digits" or ".digits".
func parseDecimal(input, body string) (*big.Rat, error) {
	intPart, fracPart, hasDot := strings.Cut(body, ".")
	switch {
	case intPart == "" && !hasDot:
		return nil, syntaxError(input, "missing digits")
	case intPart != "" && !isDigits(intPart):
		return nil, syntaxError(input, "integer part must be digits")
	case hasDot && !isDigits(fracPart):
		return nil, syntaxError(input, "fractional part must be digits")
	}
	if intPart == "" {
		intPart = "0"
	}

	if len(intPart)+len(fracPart) <= decimal.MaxPrec {
		if r, ok := ratFromDecimal(intPart, fracPart, hasDot); ok {
			return r, nil
		}
	}

	lit := intPart
	if hasDot {
		lit += "." + fracPart
	}
	r, ok := new(big.Rat).SetString(lit)
	if !ok {
		return nil, syntaxError(input, "not a decimal number")
	}

	return r, nil
}

// ratFromDecimal converts a short literal through decimal.Decimal, whose
// coefficient holds up to decimal.MaxPrec digits without rounding.
func ratFromDecimal(intPart, fracPart string, hasDot bool) (*big.Rat, bool) {
	lit := intPart
	if hasDot {
		lit += "." + fracPart
	}
	d, err := decimal.Parse(lit)
	if err != nil {
		return nil, false
	}
	num := new(big.Int).SetUint64(d.Coef())
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.Scale())), nil)

	return new(big.Rat).SetFrac(num, den), true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

func isAllZero(s string) bool {
	return strings.Trim(s, "0") == ""
}

// MustParse is like Parse but panics on error. Intended for literals in
// tests and examples.
func (f Factory) MustParse(s string) Value {
	v, err := f.Parse(s)
	if err != nil {
		panic(err)
	}

	return v
}

// ParseList parses a separator-delimited list such as "1/4, 1/4, 1/2".
func (f Factory) ParseList(s, sep string) ([]Value, error) {
	parts := strings.Split(s, sep)
	out := make([]Value, 0, len(parts))
	for i, p := range parts {
		v, err := f.Parse(p)
		if err != nil {
			return nil, fractionErrorf("ParseList["+strconv.Itoa(i)+"]", err)
		}
		out = append(out, v)
	}

	return out, nil
}

// SPDX-License-Identifier: MIT

package fraction

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ExportDigits is the number of decimal digits Export prints.
const ExportDigits = 4

// Text forms of the special values.
const (
	textNaN          = "NaN"
	textPosInf       = "+Inf"
	textNegInf       = "-Inf"
	textIncompatible = "incompatible"
	approxJSONPrefix = "~"
)

// String renders exact values as "a/b" (integers without "/1"),
// approximate values in the shortest float form and the poison as
// "incompatible".
func (v Value) String() string {
	switch v.kind {
	case kindIncompatible:
		return textIncompatible
	case kindApprox:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	}
	if s, ok := specialText(v.sp); ok {
		return s
	}

	return v.ratOrZero().RatString()
}

func specialText(sp special) (string, bool) {
	switch sp {
	case specialNaN:
		return textNaN, true
	case specialPosInf:
		return textPosInf, true
	case specialNegInf:
		return textNegInf, true
	}

	return "", false
}

// Decimal renders v with prec digits after the decimal point, rounding
// half away from zero for exact values.
func (v Value) Decimal(prec int) string {
	if prec < 0 {
		prec = 0
	}
	switch v.kind {
	case kindIncompatible:
		return textIncompatible
	case kindApprox:
		return strconv.FormatFloat(v.f, 'f', prec, 64)
	}
	if s, ok := specialText(v.sp); ok {
		return s
	}

	return v.ratOrZero().FloatString(prec)
}

// Export writes a human-readable rendering of v to w.
//
// Exact values print the fraction, followed by a line with the decimal
// approximation when the value is not an integer:
//
//	3/8
//	Approximately 0.3750
//
// Approximate values print only the approximation line.
//
// Errors:
//   - ErrIncompatible for the poison value.
//   - Any error from w.
func (v Value) Export(w io.Writer) error {
	var err error
	switch {
	case v.kind == kindIncompatible:
		return fractionErrorf(opExport, ErrIncompatible)
	case v.kind == kindApprox:
		_, err = fmt.Fprintf(w, "Approximately %s\n", v.Decimal(ExportDigits))
	case v.sp != finite || v.ratOrZero().IsInt():
		_, err = fmt.Fprintf(w, "%s\n", v.String())
	default:
		_, err = fmt.Fprintf(w, "%s\nApproximately %s\n", v.String(), v.Decimal(ExportDigits))
	}
	if err != nil {
		return fractionErrorf(opExport, err)
	}

	return nil
}

// MarshalJSON encodes exact values as strings ("3/8", "NaN", "+Inf") and
// finite approximate values as JSON numbers. Non-finite approximate values
// are strings prefixed with "~" ("~NaN").
func (v Value) MarshalJSON() ([]byte, error) {
	switch {
	case v.kind == kindIncompatible:
		return nil, fractionErrorf(opMarshal, ErrIncompatible)
	case v.kind == kindApprox && (math.IsNaN(v.f) || math.IsInf(v.f, 0)):
		return json.Marshal(approxJSONPrefix + v.String())
	case v.kind == kindApprox:
		return []byte(v.String()), nil
	}

	return json.Marshal(v.String())
}

// UnmarshalJSON is the inverse of MarshalJSON: numbers decode as
// approximate values and strings parse as exact ones.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '"' {
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fractionErrorf(opUnmarshal, fmt.Errorf("%q: %w", data, ErrSyntax))
		}
		*v = Approx(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fractionErrorf(opUnmarshal, err)
	}
	factory := ExactFactory()
	if rest, ok := strings.CutPrefix(s, approxJSONPrefix); ok {
		factory, s = ApproxFactory(), rest
	}
	parsed, err := factory.Parse(s)
	if err != nil {
		return fractionErrorf(opUnmarshal, err)
	}
	*v = parsed

	return nil
}

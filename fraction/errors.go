// SPDX-License-Identifier: MIT
// Package fraction: sentinel error set.
// Every message is prefixed with "fraction: ..." and callers match with
// errors.Is. Arithmetic never returns these; they surface only at the
// boundaries (extraction, parsing, serialization) and from Sqrt.

package fraction

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatible is returned when a definite exact or approximate value
	// is requested from a Value of the other mode, or from Incompatible.
	ErrIncompatible = errors.New("fraction: cannot combine exact and approximate values")

	// ErrNotFinite is returned when a finite rational is requested from an
	// exact NaN or ±Inf.
	ErrNotFinite = errors.New("fraction: value is not finite")

	// ErrSyntax reports text that is not a valid fraction literal.
	ErrSyntax = errors.New("fraction: invalid syntax")

	// ErrUnknownMode reports an unrecognized exactness mode name.
	ErrUnknownMode = errors.New("fraction: unknown mode")

	// ErrNegative is returned by Sqrt for values below zero (-Inf included).
	ErrNegative = errors.New("fraction: square root of a negative value")
)

// Operation tags for error wrapping.
const (
	opRat       = "Rat"
	opFloat64   = "Float64"
	opMode      = "Mode"
	opParse     = "Parse"
	opExport    = "Export"
	opMarshal   = "MarshalJSON"
	opUnmarshal = "UnmarshalJSON"
	opSqrt      = "Sqrt"
)

// fractionErrorf wraps err with an operation tag, keeping errors.Is intact.
func fractionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// syntaxError attaches the offending input to ErrSyntax.
func syntaxError(input, reason string) error {
	return fmt.Errorf("%s %q: %s: %w", opParse, input, reason, ErrSyntax)
}

// SPDX-License-Identifier: MIT

package fraction

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"sync/atomic"
)

// Mode selects whether newly constructed values are exact or approximate.
// The zero Mode is ModeExact.
type Mode uint8

const (
	// ModeExact builds arbitrary-precision rationals.
	ModeExact Mode = iota
	// ModeApprox builds float64 values.
	ModeApprox
)

// Mode names accepted by ParseMode and printed by String.
const (
	modeNameExact  = "exact"
	modeNameApprox = "approx"
)

// String returns "exact" or "approx".
func (m Mode) String() string {
	if m == ModeApprox {
		return modeNameApprox
	}

	return modeNameExact
}

// ParseMode maps "exact" / "approx" (also "approximate", "float") to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case modeNameExact, "rational", "":
		return ModeExact, nil
	case modeNameApprox, "approximate", "float":
		return ModeApprox, nil
	}

	return ModeExact, fmt.Errorf("%s %q: %w", opMode, s, ErrUnknownMode)
}

// defaultApprox backs the process-wide default mode.
var defaultApprox atomic.Bool

// DefaultMode returns the process-wide mode used by FromInt, FromPair,
// FromFloat and Parse.
func DefaultMode() Mode {
	if defaultApprox.Load() {
		return ModeApprox
	}

	return ModeExact
}

// SetDefaultMode changes the process-wide default mode.
//
// Notes:
//   - Call once at startup, before any value is constructed. Existing
//     values keep their mode; mixing values built before and after a switch
//     yields Incompatible.
//   - Reads are atomic, but toggling while other goroutines construct
//     values gives them no consistent view. Prefer an explicit Factory.
func SetDefaultMode(m Mode) {
	defaultApprox.Store(m == ModeApprox)
}

// Factory constructs values in a fixed Mode. The zero Factory is exact.
type Factory struct {
	Mode Mode
}

// Default returns a Factory bound to DefaultMode at the time of the call.
func Default() Factory { return Factory{Mode: DefaultMode()} }

// ExactFactory returns a Factory that always builds exact values.
func ExactFactory() Factory { return Factory{Mode: ModeExact} }

// ApproxFactory returns a Factory that always builds approximate values.
func ApproxFactory() Factory { return Factory{Mode: ModeApprox} }

// Int builds n in the factory's mode.
func (f Factory) Int(n int64) Value {
	if f.Mode == ModeApprox {
		return Approx(float64(n))
	}

	return Exact(new(big.Rat).SetInt64(n))
}

// Uint builds n in the factory's mode.
func (f Factory) Uint(n uint64) Value {
	if f.Mode == ModeApprox {
		return Approx(float64(n))
	}

	return Exact(new(big.Rat).SetUint64(n))
}

// Pair builds num/den. A zero denominator yields ±Inf (NaN for 0/0) in
// either mode.
func (f Factory) Pair(num, den int64) Value {
	if f.Mode == ModeApprox {
		return Approx(float64(num) / float64(den))
	}
	if den == 0 {
		return exactOverZero(int64Sign(num))
	}

	return Exact(new(big.Rat).SetFrac64(num, den))
}

// BigInt builds n in the factory's mode.
func (f Factory) BigInt(n *big.Int) Value {
	if f.Mode == ModeApprox {
		v, _ := new(big.Float).SetInt(n).Float64()
		return Approx(v)
	}

	return Exact(new(big.Rat).SetInt(n))
}

// Rat builds r in the factory's mode; an approximate factory rounds r to
// the nearest float64.
func (f Factory) Rat(r *big.Rat) Value {
	if f.Mode == ModeApprox {
		v, _ := r.Float64()
		return Approx(v)
	}

	return Exact(r)
}

// Float builds x in the factory's mode. The exact mode keeps the binary
// value of x exactly and maps NaN/±Inf to the exact special tags.
func (f Factory) Float(x float64) Value {
	if f.Mode == ModeApprox {
		return Approx(x)
	}
	switch {
	case math.IsNaN(x):
		return ExactNaN()
	case math.IsInf(x, 1):
		return ExactInf(1)
	case math.IsInf(x, -1):
		return ExactInf(-1)
	}

	return Exact(new(big.Rat).SetFloat64(x))
}

// Zero returns 0 in the factory's mode.
func (f Factory) Zero() Value { return f.Int(0) }

// One returns 1 in the factory's mode.
func (f Factory) One() Value { return f.Int(1) }

// FromInt builds n in the default mode.
func FromInt(n int64) Value { return Default().Int(n) }

// FromPair builds num/den in the default mode.
func FromPair(num, den int64) Value { return Default().Pair(num, den) }

// FromBigInt builds n in the default mode.
func FromBigInt(n *big.Int) Value { return Default().BigInt(n) }

// FromFloat64 builds x in the default mode.
func FromFloat64(x float64) Value { return Default().Float(x) }

// Parse parses s in the default mode. See Factory.Parse for the grammar.
func Parse(s string) (Value, error) { return Default().Parse(s) }

func int64Sign(n int64) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}

	return 0
}

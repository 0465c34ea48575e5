// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction and kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic results: parallel kernels write disjoint cells only.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options travel with a matrix: results of Mul, Clone and the facades
//     inherit the options of their (left) operand.
package matrix

import (
	"math"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/ratla/fraction"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultParallelThreshold is the cell count from which Reduce and
	// CommonDenominator fork across workers.
	DefaultParallelThreshold = 4096

	// DefaultWorkers = 0 means runtime.GOMAXPROCS(0).
	DefaultWorkers = 0

	// DefaultPivotTolerance is the magnitude at or below which an
	// approximate pivot counts as zero. 0 means an exact zero test.
	DefaultPivotTolerance = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicParallelThresholdInvalid = "matrix: WithParallelThreshold: threshold must be >= 1"
	panicWorkersInvalid           = "matrix: WithWorkers: workers must be >= 0"
	panicPivotToleranceInvalid    = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	mode              fraction.Mode // mode of empty matrices and New
	modeSet           bool          // WithMode was applied
	logger            zerolog.Logger
	parallelThreshold int     // >= 1
	workers           int     // >= 0; 0 = GOMAXPROCS
	pivotTol          float64 // >= 0, approximate mode only
}

// WithMode fixes the exactness mode of matrices built by New, Identity and
// FromRows on empty input. FromRows on non-empty input takes the mode of
// its cells.
func WithMode(m fraction.Mode) Option {
	return func(o *Options) {
		o.mode = m
		o.modeSet = true
	}
}

// WithLogger attaches a zerolog logger; promotion and demotion between
// narrow and wide storage are logged at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithParallelThreshold sets the cell count from which Reduce and
// CommonDenominator run in parallel.
//
// Errors:
//   - Panics when n < 1.
func WithParallelThreshold(n int) Option {
	if n < 1 {
		panic(panicParallelThresholdInvalid)
	}

	return func(o *Options) { o.parallelThreshold = n }
}

// WithWorkers bounds the number of goroutines of parallel kernels.
// 0 selects runtime.GOMAXPROCS(0).
//
// Errors:
//   - Panics when n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithPivotTolerance sets the magnitude at or below which an approximate
// pivot or determinant is treated as zero by GaussJordan, GaussJordanReduced
// and Invert. Exact matrices always test for exact zero.
//
// Errors:
//   - Panics when tol is negative, NaN or infinite.
//
// AI-Hints:
//   - Leave at 0 to reproduce exact-zero semantics; use e.g. 1e-12 to treat
//     nearly singular float matrices as singular.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// defaultOptions returns the zero-configuration state.
func defaultOptions() Options {
	return Options{
		mode:              fraction.DefaultMode(),
		logger:            zerolog.Nop(),
		parallelThreshold: DefaultParallelThreshold,
		workers:           DefaultWorkers,
		pivotTol:          DefaultPivotTolerance,
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// workerCount resolves the effective number of workers.
func (o Options) workerCount() int {
	if o.workers > 0 {
		return o.workers
	}

	return runtime.GOMAXPROCS(0)
}

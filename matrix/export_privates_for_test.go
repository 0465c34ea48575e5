// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Options Snapshot and cell kernels
//
// Purpose:
//   - Expose the internal options snapshot and the checked narrow kernels
//     to matrix_test ONLY (this file is compiled only by go test).
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields.

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/ratla/fraction"
)

// OptionsSnapshot is a read-only view of Options.
type OptionsSnapshot struct {
	Mode              fraction.Mode
	Logger            zerolog.Logger
	ParallelThreshold int
	Workers           int
	EffectiveWorkers  int
	PivotTolerance    float64
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		Mode:              o.mode,
		Logger:            o.logger,
		ParallelThreshold: o.parallelThreshold,
		Workers:           o.workers,
		EffectiveWorkers:  o.workerCount(),
		PivotTolerance:    o.pivotTol,
	}
}

// DefaultOptionsSnapshot_TestOnly returns the zero-configuration state.
func DefaultOptionsSnapshot_TestOnly() OptionsSnapshot { return snapshotOf(defaultOptions()) }

// GatherOptionsSnapshot_TestOnly applies opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicParallelThresholdInvalid_TestOnly = panicParallelThresholdInvalid
	PanicWorkersInvalid_TestOnly           = panicWorkersInvalid
	PanicPivotToleranceInvalid_TestOnly    = panicPivotToleranceInvalid
)

// NarrowCell_TestOnly mirrors narrowCell with exported fields.
type NarrowCell_TestOnly struct {
	Tag      Tag
	Num, Den uint64
}

func toNarrow(c NarrowCell_TestOnly) narrowCell { return narrowCell{tag: c.Tag, num: c.Num, den: c.Den} }

func fromNarrow(c narrowCell) NarrowCell_TestOnly {
	return NarrowCell_TestOnly{Tag: c.tag, Num: c.num, Den: c.den}
}

// NarrowMul_TestOnly forwards to narrowMul.
func NarrowMul_TestOnly(a, b NarrowCell_TestOnly) (NarrowCell_TestOnly, bool) {
	c, ok := narrowMul(toNarrow(a), toNarrow(b))
	return fromNarrow(c), ok
}

// NarrowAdd_TestOnly forwards to narrowAdd.
func NarrowAdd_TestOnly(a, b NarrowCell_TestOnly) (NarrowCell_TestOnly, bool) {
	c, ok := narrowAdd(toNarrow(a), toNarrow(b))
	return fromNarrow(c), ok
}

// ReduceNarrow_TestOnly forwards to reduceNarrow.
func ReduceNarrow_TestOnly(c NarrowCell_TestOnly) NarrowCell_TestOnly {
	return fromNarrow(reduceNarrow(toNarrow(c)))
}

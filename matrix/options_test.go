// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratla/fraction"
	"github.com/katalvlaran/ratla/matrix"
)

// 1) TestDefaultOptions_Documented verifies that the zero configuration equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.DefaultOptionsSnapshot_TestOnly()

	require.Equal(t, fraction.DefaultMode(), o.Mode)
	require.Equal(t, matrix.DefaultParallelThreshold, o.ParallelThreshold)
	require.Equal(t, matrix.DefaultWorkers, o.Workers)
	require.Equal(t, runtime.GOMAXPROCS(0), o.EffectiveWorkers)
	require.Equal(t, matrix.DefaultPivotTolerance, o.PivotTolerance)
	require.Equal(t, zerolog.Disabled, o.Logger.GetLevel())
}

// 2) TestGatherOptions_LastWins ensures each Option sets exactly its field and the last writer wins.
func TestGatherOptions_LastWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(
		matrix.WithMode(fraction.ModeApprox),
		matrix.WithWorkers(2),
		matrix.WithWorkers(3),
		matrix.WithParallelThreshold(16),
		matrix.WithPivotTolerance(1e-9),
		nil,
	)
	require.Equal(t, fraction.ModeApprox, o.Mode)
	require.Equal(t, 3, o.Workers)
	require.Equal(t, 3, o.EffectiveWorkers)
	require.Equal(t, 16, o.ParallelThreshold)
	require.Equal(t, 1e-9, o.PivotTolerance)
}

// 3) TestOptions_PanicOnInvalid checks programmer-error panics carry the documented messages.
func TestOptions_PanicOnInvalid(t *testing.T) {
	require.PanicsWithValue(t, matrix.PanicParallelThresholdInvalid_TestOnly, func() { matrix.WithParallelThreshold(0) })
	require.PanicsWithValue(t, matrix.PanicWorkersInvalid_TestOnly, func() { matrix.WithWorkers(-1) })
	for _, tol := range []float64{-1, math.NaN(), math.Inf(1)} {
		require.PanicsWithValue(t, matrix.PanicPivotToleranceInvalid_TestOnly, func() { matrix.WithPivotTolerance(tol) })
	}
}

// 4) TestOptions_TravelWithResults checks that products inherit the left operand's options.
func TestOptions_TravelWithResults(t *testing.T) {
	a := MustApprox(t, [][]float64{{1, 1}, {1, 1 + 1e-15}}, matrix.WithPivotTolerance(1e-12))
	id := MustApprox(t, [][]float64{{1, 0}, {0, 1}})

	p, err := matrix.Mul(a, id)
	require.NoError(t, err)
	require.ErrorIs(t, p.Invert(), matrix.ErrSingular)

	c := a.Clone()
	require.ErrorIs(t, c.Invert(), matrix.ErrSingular)
}

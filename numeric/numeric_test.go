package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratla/numeric"
)

type celsius float32

func TestKindDetection(t *testing.T) {
	require.True(t, numeric.IsFloat[float64]())
	require.True(t, numeric.IsFloat[celsius]())
	require.False(t, numeric.IsFloat[int8]())
	require.False(t, numeric.IsFloat[uint64]())

	require.True(t, numeric.IsSigned[int16]())
	require.True(t, numeric.IsSigned[float32]())
	require.False(t, numeric.IsSigned[uint8]())
	require.False(t, numeric.IsSigned[uintptr]())
}

func TestIdentitiesAndPredicates(t *testing.T) {
	assert.Equal(t, int32(0), numeric.Zero[int32]())
	assert.Equal(t, uint(1), numeric.One[uint]())
	assert.True(t, numeric.IsZero(0.0))
	assert.True(t, numeric.IsOne(int64(1)))
	assert.True(t, numeric.IsPositive(uint8(3)))
	assert.False(t, numeric.IsNegative(uint8(3)))
	assert.True(t, numeric.IsNegative(int8(-3)))
	assert.Equal(t, -1, numeric.Sign(-2.5))
	assert.Equal(t, 0, numeric.Sign(math.NaN()))
}

func TestAbsFloorCeil(t *testing.T) {
	assert.Equal(t, int64(7), numeric.Abs(int64(-7)))
	assert.Equal(t, uint16(7), numeric.Abs(uint16(7)))
	assert.Equal(t, 2.5, numeric.Abs(-2.5))
	assert.Equal(t, int8(math.MinInt8), numeric.Abs(int8(math.MinInt8)))

	assert.Equal(t, -3.0, numeric.Floor(-2.5))
	assert.Equal(t, -2.0, numeric.Ceil(-2.5))
	assert.Equal(t, float32(2), numeric.Ceil(float32(1.25)))
	assert.Equal(t, 9, numeric.Floor(9))
}

func TestRecipNaNInf(t *testing.T) {
	assert.Equal(t, 0.25, numeric.Recip(4.0))
	assert.True(t, math.IsInf(numeric.Recip(0.0), 1))
	assert.True(t, numeric.IsNaN(math.NaN()))
	assert.False(t, numeric.IsNaN(int32(5)))
	assert.True(t, numeric.IsInf(float32(math.Inf(-1))))
	assert.False(t, numeric.IsInf(uint32(math.MaxUint32)))
}

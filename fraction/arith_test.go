// Package fraction_test contains unit tests for arithmetic, ordering and
// hashing of Value.
package fraction_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratla/fraction"
)

func TestExactArithmetic(t *testing.T) {
	a, b := ex.Pair(1, 4), ex.Pair(2, 5)
	assert.Equal(t, "13/20", a.Add(b).String())
	assert.Equal(t, "-3/20", a.Sub(b).String())
	assert.Equal(t, "1/10", a.Mul(b).String())
	assert.Equal(t, "5/8", a.Div(b).String())
	assert.Equal(t, "-1/4", a.Neg().String())
	assert.Equal(t, "4", a.Recip().String())
	assert.Equal(t, "3/4", a.OneMinus().String())
	assert.Equal(t, "1/4", a.Neg().Abs().String())
}

func TestFloorCeil(t *testing.T) {
	for _, tc := range []struct {
		in          fraction.Value
		floor, ceil string
	}{
		{ex.Pair(7, 2), "3", "4"},
		{ex.Pair(-7, 2), "-4", "-3"},
		{ex.Int(5), "5", "5"},
		{ex.Int(0), "0", "0"},
		{fraction.ExactInf(1), "+Inf", "+Inf"},
	} {
		t.Run(tc.in.String(), func(t *testing.T) {
			assert.Equal(t, tc.floor, tc.in.Floor().String())
			assert.Equal(t, tc.ceil, tc.in.Ceil().String())
		})
	}
	assert.Equal(t, "-4", ap.Float(-3.5).Floor().String())
	assert.Equal(t, "-3", ap.Float(-3.5).Ceil().String())
}

func TestExactDivisionByZero(t *testing.T) {
	zero := ex.Zero()
	assert.Equal(t, "+Inf", ex.Int(3).Div(zero).String())
	assert.Equal(t, "-Inf", ex.Int(-3).Div(zero).String())
	assert.True(t, zero.Div(zero).IsNaN())
	assert.Equal(t, "+Inf", zero.Recip().String())
	assert.True(t, ex.Pair(1, 0).Equal(fraction.ExactInf(1)))
	assert.True(t, ex.Pair(0, 0).IsNaN())
}

func TestExactSpecialArithmetic(t *testing.T) {
	inf, ninf, nan := fraction.ExactInf(1), fraction.ExactInf(-1), fraction.ExactNaN()
	one := ex.Int(1)
	for _, tc := range []struct {
		name string
		got  fraction.Value
		want string
	}{
		{"inf+1", inf.Add(one), "+Inf"},
		{"inf-inf", inf.Add(ninf), "NaN"},
		{"inf+inf", inf.Add(inf), "+Inf"},
		{"1-inf", one.Sub(inf), "-Inf"},
		{"0*inf", ex.Zero().Mul(inf), "NaN"},
		{"-2*inf", ex.Int(-2).Mul(inf), "-Inf"},
		{"ninf*ninf", ninf.Mul(ninf), "+Inf"},
		{"1/inf", one.Div(inf), "0"},
		{"inf/inf", inf.Div(inf), "NaN"},
		{"inf/-2", inf.Div(ex.Int(-2)), "-Inf"},
		{"nan+1", nan.Add(one), "NaN"},
		{"-nan", nan.Neg(), "NaN"},
		{"1-inf via OneMinus", inf.OneMinus(), "-Inf"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got.String())
			assert.True(t, tc.got.IsExact())
		})
	}
}

func TestApproxEqualityEpsilon(t *testing.T) {
	a := ap.Float(0.1).Add(ap.Float(0.2))
	require.True(t, a.Equal(ap.Float(0.3)), "rounding noise is absorbed")
	require.False(t, ap.Float(0.3).Equal(ap.Float(0.3+1e-12)))
	require.False(t, ap.Float(math.NaN()).Equal(ap.Float(math.NaN())))
	require.True(t, ap.Float(math.Inf(1)).Equal(ap.Float(math.Inf(1))))
	require.False(t, ap.Float(math.Inf(1)).Equal(ap.Float(math.Inf(-1))))
}

func TestEqualityAcrossModes(t *testing.T) {
	require.False(t, ex.Int(1).Equal(ap.Int(1)))
	require.True(t, fraction.Incompatible().Equal(fraction.Incompatible()))
	require.False(t, fraction.Incompatible().Equal(ex.Int(0)))
	require.True(t, fraction.ExactNaN().Equal(fraction.ExactNaN()))
	require.True(t, ex.Pair(2, 4).Equal(ex.Pair(1, 2)))
}

func TestCmpOrdering(t *testing.T) {
	ordered := []fraction.Value{
		fraction.ExactNaN(), fraction.ExactInf(-1), ex.Int(-2), ex.Pair(-1, 3), ex.Zero(), ex.Pair(1, 3), ex.Int(9), fraction.ExactInf(1),
	}
	for i := range ordered {
		for j := range ordered {
			want := 0
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			assert.Equal(t, want, ordered[i].Cmp(ordered[j]), "Cmp(%v, %v)", ordered[i], ordered[j])
		}
	}

	require.Equal(t, 0, ap.Float(0.3).Cmp(ap.Float(0.1).Add(ap.Float(0.2))))
	require.Equal(t, -1, ap.Float(math.NaN()).Cmp(ap.Float(-1)))
	require.True(t, ap.Float(1).Less(ap.Float(2)))
	require.Equal(t, 0, fraction.Incompatible().Cmp(fraction.Incompatible()))
}

func TestCmpPanicsAcrossModes(t *testing.T) {
	require.Panics(t, func() { ex.Int(1).Cmp(ap.Int(1)) })
	require.Panics(t, func() { fraction.Incompatible().Cmp(ex.Int(1)) })
	require.Panics(t, func() { ap.Int(1).Cmp(fraction.Incompatible()) })
}

func TestHash(t *testing.T) {
	require.Equal(t, ex.Pair(2, 4).Hash(), ex.Pair(1, 2).Hash())
	require.NotEqual(t, ex.Pair(1, 2).Hash(), ex.Pair(-1, 2).Hash())
	require.NotEqual(t, ex.Pair(1, 2).Hash(), ap.Float(0.5).Hash())
	require.Equal(t, fraction.Incompatible().Hash(), ex.Int(1).Add(ap.Int(1)).Hash())
	require.Equal(t, fraction.ExactInf(1).Hash(), ex.Pair(5, 0).Hash())

	// Equal within epsilon but different bits: hashing follows the bits.
	a, b := ap.Float(0.3), ap.Float(0.1).Add(ap.Float(0.2))
	require.True(t, a.Equal(b))
	require.NotEqual(t, a.Hash(), b.Hash())
}

func TestCloneIsIndependent(t *testing.T) {
	v := ex.Pair(5, 7)
	c := v.Clone()
	require.True(t, v.Equal(c))
	r := mustRat(t, c)
	r.SetInt64(1)
	require.Equal(t, "5/7", c.String())
}

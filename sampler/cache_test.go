package sampler_test

import (
	"math"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratla/fraction"
	"github.com/katalvlaran/ratla/sampler"
)

var (
	ex = fraction.ExactFactory()
	ap = fraction.ApproxFactory()
)

func pcg(seed uint64) rand.Source { return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15) }

// frequencies draws n times and returns the share of each index.
func frequencies(t *testing.T, c *sampler.Cache, n int, seed uint64) []float64 {
	t.Helper()
	src := pcg(seed)
	counts := make([]float64, c.Len())
	for i := 0; i < n; i++ {
		idx := c.Choose(src)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, c.Len())
		counts[idx]++
	}
	for i := range counts {
		counts[i] /= float64(n)
	}

	return counts
}

func TestCumulativeAndSelect(t *testing.T) {
	c, err := sampler.NewCache([]fraction.Value{ex.Pair(1, 4), ex.Pair(1, 4), ex.Pair(1, 2)})
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())
	require.Equal(t, fraction.ModeExact, c.Mode())

	var got []string
	for _, v := range c.Cumulative() {
		got = append(got, v.String())
	}
	require.Equal(t, []string{"1/4", "1/2", "1"}, got)

	l, ok := c.Denominator()
	require.True(t, ok)
	require.Equal(t, "4", l.String())

	for _, tc := range []struct {
		r    fraction.Value
		want int
	}{
		{ex.Pair(1, 3), 1},
		{ex.Zero(), 0},
		{ex.Pair(1, 4), 0},
		{ex.Pair(1, 2), 1},
		{ex.One(), 2},
		{ex.Int(2), 2},
		{fraction.ExactInf(1), 2},
		{fraction.ExactInf(-1), 0},
	} {
		idx, err := c.Select(tc.r)
		require.NoError(t, err)
		require.Equal(t, tc.want, idx, "r=%s", tc.r)
	}

	_, err = c.Select(ap.Float(0.5))
	require.ErrorIs(t, err, sampler.ErrMixedModes)
	_, err = c.Select(fraction.ExactNaN())
	require.ErrorIs(t, err, sampler.ErrInvalidWeight)
}

func TestNormalizedDenominator(t *testing.T) {
	// 1/3 : 1/2 normalizes to 2/5 : 3/5
	c, err := sampler.NewCache([]fraction.Value{ex.Pair(1, 3), ex.Pair(1, 2)})
	require.NoError(t, err)
	l, _ := c.Denominator()
	require.Equal(t, "5", l.String())
	require.Equal(t, "2/5", c.Cumulative()[0].String())

	freq := frequencies(t, c, 20000, 11)
	require.InDelta(t, 0.4, freq[0], 0.02)
}

func TestApproxCache(t *testing.T) {
	c, err := sampler.NewCache([]fraction.Value{ap.Float(0.5), ap.Float(1.5), ap.Float(2)})
	require.NoError(t, err)
	require.Equal(t, fraction.ModeApprox, c.Mode())
	_, ok := c.Denominator()
	require.False(t, ok)

	cum := c.Cumulative()
	require.Len(t, cum, 3)
	f, err := cum[2].Float64()
	require.NoError(t, err)
	require.Equal(t, 1.0, f)

	idx, err := c.Select(ap.Float(0.3))
	require.NoError(t, err)
	require.Equal(t, 1, idx)
	idx, err = c.Select(ap.Float(0.125))
	require.NoError(t, err)
	require.Equal(t, 0, idx)
	idx, err = c.Select(ap.Float(100))
	require.NoError(t, err)
	require.Equal(t, 2, idx)

	freq := frequencies(t, c, 40000, 3)
	require.InDelta(t, 0.125, freq[0], 0.015)
	require.InDelta(t, 0.375, freq[1], 0.015)
	require.InDelta(t, 0.5, freq[2], 0.015)
}

func TestModesAgree(t *testing.T) {
	exact, err := sampler.NewCache([]fraction.Value{ex.Int(1), ex.Int(1), ex.Int(2)})
	require.NoError(t, err)
	approx, err := sampler.NewCache([]fraction.Value{ap.Float(1), ap.Float(1), ap.Float(2)})
	require.NoError(t, err)

	var gotExact []string
	for _, v := range exact.Cumulative() {
		gotExact = append(gotExact, v.String())
	}
	require.Equal(t, []string{"1/4", "1/2", "1"}, gotExact)

	var gotApprox []float64
	for _, v := range approx.Cumulative() {
		f, err := v.Float64()
		require.NoError(t, err)
		gotApprox = append(gotApprox, f)
	}
	require.Equal(t, []float64{0.25, 0.5, 1}, gotApprox)

	for _, tc := range []struct {
		num, den int64
		want     int
	}{
		{3, 10, 1},
		{1, 4, 0},
		{1, 10, 0},
		{3, 4, 2},
		{1, 1, 2},
	} {
		ie, err := exact.Select(ex.Pair(tc.num, tc.den))
		require.NoError(t, err)
		ia, err := approx.Select(ap.Float(float64(tc.num) / float64(tc.den)))
		require.NoError(t, err)
		require.Equal(t, tc.want, ie, "%d/%d", tc.num, tc.den)
		require.Equal(t, ie, ia, "%d/%d", tc.num, tc.den)
	}
}

func TestFrequencyConvergenceExact(t *testing.T) {
	c, err := sampler.NewCache(fraction.Values(ex, []int{1, 2, 3, 4}))
	require.NoError(t, err)

	freq := frequencies(t, c, 40000, 2024)
	for i, want := range []float64{0.1, 0.2, 0.3, 0.4} {
		require.InDelta(t, want, freq[i], 0.015, "index %d", i)
	}
}

func TestZeroWeightsNeverChosen(t *testing.T) {
	for _, f := range []fraction.Factory{ex, ap} {
		t.Run(f.Mode.String(), func(t *testing.T) {
			c, err := sampler.NewCache([]fraction.Value{f.Zero(), f.Int(3), f.Zero()})
			require.NoError(t, err)
			src := pcg(5)
			for i := 0; i < 1000; i++ {
				require.Equal(t, 1, c.Choose(src))
			}
		})
	}
}

func TestDenominatorBeyond64Bits(t *testing.T) {
	two70 := new(big.Int).Lsh(big.NewInt(1), 70)
	two70p1 := new(big.Int).Add(two70, big.NewInt(1))

	// 2^70 : 2^70+1 normalizes over 2^71+1, forcing the rejection path
	c, err := sampler.NewCache([]fraction.Value{ex.BigInt(two70), ex.BigInt(two70p1)})
	require.NoError(t, err)
	l, _ := c.Denominator()
	want := new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 71), big.NewInt(1))
	require.Zero(t, want.Cmp(l))

	freq := frequencies(t, c, 20000, 77)
	require.InDelta(t, 0.5, freq[0], 0.02)

	// a vanishing weight is practically never drawn
	tiny, err := sampler.NewCache([]fraction.Value{ex.One(), ex.Rat(new(big.Rat).SetFrac(big.NewInt(1), two70))})
	require.NoError(t, err)
	src := pcg(9)
	for i := 0; i < 200; i++ {
		require.Equal(t, 0, tiny.Choose(src))
	}
}

func TestChooseRandomlyDeterministic(t *testing.T) {
	w := fraction.Values(ex, []int{5, 1, 7, 3})
	a, b := pcg(42), pcg(42)
	for i := 0; i < 100; i++ {
		x, err := sampler.ChooseRandomly(w, a)
		require.NoError(t, err)
		y, err := sampler.ChooseRandomly(w, b)
		require.NoError(t, err)
		require.Equal(t, x, y)
	}
}

func TestChooseRandomlyErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		w    []fraction.Value
		want error
	}{
		{"empty", nil, sampler.ErrEmpty},
		{"mixed", []fraction.Value{ex.One(), ap.One()}, sampler.ErrMixedModes},
		{"incompatible", []fraction.Value{fraction.Incompatible()}, sampler.ErrMixedModes},
		{"zero sum exact", []fraction.Value{ex.Zero(), ex.Zero()}, sampler.ErrZeroSum},
		{"zero sum approx", []fraction.Value{ap.Zero()}, sampler.ErrZeroSum},
		{"negative", []fraction.Value{ex.One(), ex.Int(-1)}, sampler.ErrNegativeWeight},
		{"exact nan", []fraction.Value{ex.One(), fraction.ExactNaN()}, sampler.ErrInvalidWeight},
		{"approx inf", []fraction.Value{ap.Float(math.Inf(1))}, sampler.ErrInvalidWeight},
		{"approx overflow", []fraction.Value{ap.Float(math.MaxFloat64), ap.Float(math.MaxFloat64)}, sampler.ErrInvalidWeight},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sampler.ChooseRandomly(tc.w, pcg(1))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestChooseNilSourcePanics(t *testing.T) {
	c, err := sampler.NewCache([]fraction.Value{ex.One()})
	require.NoError(t, err)
	require.Panics(t, func() { c.Choose(nil) })
}

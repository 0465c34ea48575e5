// Package fraction_test contains unit tests for textual parsing.
package fraction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratla/fraction"
)

func TestParseExact(t *testing.T) {
	for _, tc := range []struct{ in, want string }{
		{"0.2", "1/5"},
		{"1", "1"},
		{"-1", "-1"},
		{"1.00", "1"},
		{"1/5", "1/5"},
		{"-1/5", "-1/5"},
		{".2", "1/5"},
		{"-.2", "-1/5"},
		{"+3", "3"},
		{"  6/8 ", "3/4"},
		{"0.125", "1/8"},
		{"-0", "0"},
		{"123456789012345678901234567890.5", "246913578024691357802469135781/2"},
		{"18446744073709551615", "18446744073709551615"},
		{"NaN", "NaN"},
		{"inf", "+Inf"},
		{"-Infinity", "-Inf"},
		{"∞", "+Inf"},
		{"3/0", "+Inf"},
		{"-3/0", "-Inf"},
		{"0/0", "NaN"},
	} {
		t.Run(tc.in, func(t *testing.T) {
			v, err := ex.Parse(tc.in)
			require.NoError(t, err)
			assert.True(t, v.IsExact())
			assert.Equal(t, tc.want, v.String())
		})
	}
}

func TestParseApprox(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want float64
	}{
		{"0.2", 0.2},
		{"-1/4", -0.25},
		{"7", 7},
		{".5", 0.5},
	} {
		t.Run(tc.in, func(t *testing.T) {
			v, err := ap.Parse(tc.in)
			require.NoError(t, err)
			f, err := v.Float64()
			require.NoError(t, err)
			assert.InDelta(t, tc.want, f, 1e-15)
		})
	}
	v, err := ap.Parse("-inf")
	require.NoError(t, err)
	require.True(t, v.IsInf() && v.IsNegative())
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"", "   ", "-", "abc", "1/", "/2", "1/-2", "1.2.3", "1.", "1e5", "--1", "1/2/3", "0x10", "1 /2",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ex.Parse(in)
			require.ErrorIs(t, err, fraction.ErrSyntax)
		})
	}
}

func TestParseList(t *testing.T) {
	vs, err := ex.ParseList("1/4, 1/4, 1/2", ",")
	require.NoError(t, err)
	require.Len(t, vs, 3)
	require.True(t, fraction.Sum(ex, vs).IsOne())

	_, err = ex.ParseList("1/4,x", ",")
	require.ErrorIs(t, err, fraction.ErrSyntax)
	require.Contains(t, err.Error(), "ParseList[1]")
}

func TestMustParsePanics(t *testing.T) {
	require.Panics(t, func() { ex.MustParse("nope") })
	require.Equal(t, "3/7", ex.MustParse("3/7").String())
}

func TestPackageParseUsesDefaultMode(t *testing.T) {
	prev := fraction.DefaultMode()
	t.Cleanup(func() { fraction.SetDefaultMode(prev) })

	fraction.SetDefaultMode(fraction.ModeApprox)
	v, err := fraction.Parse("1/2")
	require.NoError(t, err)
	require.True(t, v.IsApprox())
}

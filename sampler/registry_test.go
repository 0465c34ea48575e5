package sampler_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratla/fraction"
	"github.com/katalvlaran/ratla/sampler"
)

func TestRegistryMemoizes(t *testing.T) {
	var buf bytes.Buffer
	r := sampler.NewRegistry(sampler.WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	w := []fraction.Value{ex.Pair(1, 4), ex.Pair(3, 4)}
	a, err := r.Get(w)
	require.NoError(t, err)
	b, err := r.Get([]fraction.Value{ex.Pair(2, 8), ex.Pair(3, 4)})
	require.NoError(t, err)
	require.Same(t, a, b)
	require.Equal(t, 1, r.Len())
	require.Contains(t, buf.String(), "sampler cache built")
	require.Contains(t, buf.String(), "sampler cache hit")

	// same text, other mode
	one, err := r.Get([]fraction.Value{ex.One()})
	require.NoError(t, err)
	approxOne, err := r.Get([]fraction.Value{ap.One()})
	require.NoError(t, err)
	require.NotSame(t, one, approxOne)
	require.Equal(t, fraction.ModeApprox, approxOne.Mode())
	require.Equal(t, 3, r.Len())

	_, err = r.Get([]fraction.Value{ex.One(), ap.One()})
	require.ErrorIs(t, err, sampler.ErrMixedModes)
	require.Equal(t, 3, r.Len())

	idx, err := r.Choose(w, pcg(8))
	require.NoError(t, err)
	require.Contains(t, []int{0, 1}, idx)

	r.Flush()
	require.Zero(t, r.Len())
}

func TestRegistryExpiry(t *testing.T) {
	r := sampler.NewRegistry(sampler.WithTTL(20*time.Millisecond), sampler.WithCleanupInterval(0))
	w := []fraction.Value{ex.One(), ex.Int(2)}
	a, err := r.Get(w)
	require.NoError(t, err)

	time.Sleep(60 * time.Millisecond)
	b, err := r.Get(w)
	require.NoError(t, err)
	require.NotSame(t, a, b)
}

func TestRegistryOptionsPanic(t *testing.T) {
	require.Panics(t, func() { sampler.WithTTL(0) })
	require.Panics(t, func() { sampler.WithCleanupInterval(-time.Second) })
}

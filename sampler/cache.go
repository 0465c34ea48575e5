// SPDX-License-Identifier: MIT
// Package sampler: prepared cumulative distributions.

package sampler

import (
	"encoding/binary"
	"math"
	"math/big"
	"math/rand/v2"
	"sort"

	"github.com/katalvlaran/ratla/fraction"
)

// Cache is a prepared weighted distribution. It is immutable after
// NewCache and safe for concurrent Choose calls, each with its own Source.
type Cache struct {
	mode fraction.Mode

	// exact: cum[i] is the normalized cumulative probability of 0..i,
	// scaled[i] = cum[i]*denom is an integer and scaled[n-1] == denom.
	cum    []*big.Rat
	scaled []*big.Int
	denom  *big.Int

	// approx: normalized cumulative probabilities, totals[n-1] == 1.
	totals []float64
}

// NewCache validates weights and builds the cumulative distribution.
//
// Errors:
//   - ErrEmpty for an empty list.
//   - ErrMixedModes when modes differ or a weight is Incompatible.
//   - ErrInvalidWeight for NaN or ±Inf weights.
//   - ErrNegativeWeight for weights below zero.
//   - ErrZeroSum when all weights are zero.
//
// Complexity: O(n) big.Rat additions plus one LCM per weight.
func NewCache(weights []fraction.Value) (*Cache, error) {
	mode, err := checkWeights(opNewCache, weights)
	if err != nil {
		return nil, err
	}
	if mode == fraction.ModeApprox {
		return newApproxCache(weights)
	}

	return newExactCache(weights)
}

// checkWeights returns the common mode of weights.
func checkWeights(op string, weights []fraction.Value) (fraction.Mode, error) {
	if len(weights) == 0 {
		return fraction.ModeExact, samplerErrorf(op, ErrEmpty)
	}
	mode, err := weights[0].Mode()
	if err != nil {
		return mode, weightErrorf(op, 0, ErrMixedModes)
	}
	for i, w := range weights {
		m, err := w.Mode()
		if err != nil || m != mode {
			return mode, weightErrorf(op, i, ErrMixedModes)
		}
		if !w.IsFinite() {
			return mode, weightErrorf(op, i, ErrInvalidWeight)
		}
		if w.IsNegative() {
			return mode, weightErrorf(op, i, ErrNegativeWeight)
		}
	}

	return mode, nil
}

func newExactCache(weights []fraction.Value) (*Cache, error) {
	n := len(weights)
	rats := make([]*big.Rat, n)
	sum := new(big.Rat)
	for i, w := range weights {
		r, err := w.Rat()
		if err != nil {
			return nil, weightErrorf(opNewCache, i, ErrInvalidWeight)
		}
		rats[i] = r
		sum.Add(sum, r)
	}
	if sum.Sign() == 0 {
		return nil, samplerErrorf(opNewCache, ErrZeroSum)
	}

	c := &Cache{mode: fraction.ModeExact, cum: make([]*big.Rat, n), scaled: make([]*big.Int, n)}
	denom := big.NewInt(1)
	run := new(big.Rat)
	for i, r := range rats {
		p := r.Quo(r, sum)
		denom = fraction.LCM(denom, p.Denom())
		run = new(big.Rat).Add(run, p)
		c.cum[i] = run
	}
	for i, cum := range c.cum {
		// cum's denominator divides denom, so the quotient is exact.
		s := new(big.Int).Mul(cum.Num(), denom)
		c.scaled[i] = s.Quo(s, cum.Denom())
	}
	c.denom = denom

	return c, nil
}

func newApproxCache(weights []fraction.Value) (*Cache, error) {
	c := &Cache{mode: fraction.ModeApprox, totals: make([]float64, len(weights))}
	total := 0.0
	for i, w := range weights {
		f, err := w.Float64()
		if err != nil {
			return nil, weightErrorf(opNewCache, i, ErrMixedModes)
		}
		total += f
		c.totals[i] = total
	}
	if math.IsInf(total, 0) {
		return nil, samplerErrorf(opNewCache, ErrInvalidWeight)
	}
	if total == 0 {
		return nil, samplerErrorf(opNewCache, ErrZeroSum)
	}
	for i := range c.totals {
		c.totals[i] /= total
	}
	c.totals[len(c.totals)-1] = 1

	return c, nil
}

// Len returns the number of weights.
func (c *Cache) Len() int {
	if c.mode == fraction.ModeApprox {
		return len(c.totals)
	}

	return len(c.cum)
}

// Mode reports whether the cache samples exactly or approximately.
func (c *Cache) Mode() fraction.Mode { return c.mode }

// Cumulative returns the cumulative distribution as values of the cache's
// mode. Both modes hold normalized probabilities ending at 1.
func (c *Cache) Cumulative() []fraction.Value {
	out := make([]fraction.Value, c.Len())
	if c.mode == fraction.ModeApprox {
		for i, t := range c.totals {
			out[i] = fraction.Approx(t)
		}
		return out
	}
	for i, r := range c.cum {
		out[i] = fraction.Exact(r)
	}

	return out
}

// Denominator returns a copy of L, the common denominator of the exact
// distribution. ok is false for approximate caches.
func (c *Cache) Denominator() (l *big.Int, ok bool) {
	if c.mode == fraction.ModeApprox {
		return nil, false
	}

	return new(big.Int).Set(c.denom), true
}

// Choose draws one index. Every index with a non-zero weight is reachable
// and zero weights are never returned.
//
// Errors:
//   - Panics on a nil src.
func (c *Cache) Choose(src rand.Source) int {
	if src == nil {
		panic(panicNilSource)
	}
	rng := rand.New(src)
	if c.mode == fraction.ModeApprox {
		r := 1 - rng.Float64()
		return c.clamp(sort.SearchFloat64s(c.totals, r))
	}

	k := uniformBelow(rng, c.denom)
	return sort.Search(len(c.scaled), func(i int) bool {
		return c.scaled[i].Cmp(k) > 0
	})
}

// Select returns the first index whose cumulative value is at least r.
// r past the end selects the last index.
//
// Errors:
//   - ErrMixedModes when r does not match the cache mode.
//   - ErrInvalidWeight when r is NaN.
func (c *Cache) Select(r fraction.Value) (int, error) {
	m, err := r.Mode()
	if err != nil || m != c.mode {
		return 0, samplerErrorf(opSelect, ErrMixedModes)
	}
	if r.IsNaN() {
		return 0, samplerErrorf(opSelect, ErrInvalidWeight)
	}
	if c.mode == fraction.ModeApprox {
		f, _ := r.Float64()
		return c.clamp(sort.SearchFloat64s(c.totals, f)), nil
	}

	if r.IsInf() {
		if r.IsNegative() {
			return 0, nil
		}
		return c.Len() - 1, nil
	}
	rr, _ := r.Rat()
	i := sort.Search(len(c.cum), func(i int) bool {
		return c.cum[i].Cmp(rr) >= 0
	})

	return c.clamp(i), nil
}

func (c *Cache) clamp(i int) int {
	if n := c.Len(); i >= n {
		return n - 1
	}

	return i
}

// uniformBelow returns an integer uniformly distributed in [0, n), n > 0.
// Values beyond 64 bits use rejection on n's bit length.
func uniformBelow(rng *rand.Rand, n *big.Int) *big.Int {
	if n.IsUint64() {
		return new(big.Int).SetUint64(rng.Uint64N(n.Uint64()))
	}

	bitLen := n.BitLen()
	buf := make([]byte, (bitLen+7)/8)
	mask := byte(0xff >> (8*len(buf) - bitLen))
	var word [8]byte
	k := new(big.Int)
	for {
		for i := 0; i < len(buf); i += len(word) {
			binary.BigEndian.PutUint64(word[:], rng.Uint64())
			copy(buf[i:], word[:])
		}
		buf[0] &= mask
		if k.SetBytes(buf).Cmp(n) < 0 {
			return k
		}
	}
}

// ChooseRandomly draws one index from weights with probability
// proportional to its weight. The weights need not sum to 1.
//
// Errors: as NewCache.
func ChooseRandomly(weights []fraction.Value, src rand.Source) (int, error) {
	c, err := NewCache(weights)
	if err != nil {
		return 0, samplerErrorf(opChooseRandomly, err)
	}

	return c.Choose(src), nil
}

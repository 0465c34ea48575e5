// SPDX-License-Identifier: MIT

// Package matrix - exact storage layouts, promotion/demotion and the
// parallel whole-matrix passes (Reduce, CommonDenominator).
//
// Purpose:
//   - narrowStore: flat row-major []Tag + []uint64 numerators/denominators.
//   - wideStore: the same layout with []*big.Int.
//   - Promotion (narrow -> wide) happens on the first overflow of a kernel
//     and is never reported as an error; demotion (wide -> narrow) happens in
//     Reduce when every cell fits in uint64 again.
//
// Concurrency:
//   - Reduce and CommonDenominator split [0, rows*cols) into contiguous
//     chunks and fork-join them with errgroup once the cell count reaches
//     the parallel threshold. Workers touch disjoint cells only.
//
// AI-Hints:
//   - Wide big.Int values are immutable once stored; clones share them.
//   - Log lines: debug "promote"/"demote" with op, rows, cols.
package matrix

import (
	"math/big"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ratla/fraction"
)

const (
	opReduce            = "Reduce"
	opCommonDenominator = "CommonDenominator"
)

// ---------- narrow layout ----------

type narrowStore struct {
	tag      []Tag
	num, den []uint64
}

// newNarrowStore allocates n zero cells (Plus 0/1).
func newNarrowStore(n int) *narrowStore {
	s := &narrowStore{tag: make([]Tag, n), num: make([]uint64, n), den: make([]uint64, n)}
	for i := range s.den {
		s.den[i] = 1
	}

	return s
}

func (s *narrowStore) get(i int) narrowCell {
	return narrowCell{tag: s.tag[i], num: s.num[i], den: s.den[i]}
}

func (s *narrowStore) set(i int, c narrowCell) {
	s.tag[i], s.num[i], s.den[i] = c.tag, c.num, c.den
}

func (s *narrowStore) clone() *narrowStore {
	return &narrowStore{
		tag: append([]Tag(nil), s.tag...),
		num: append([]uint64(nil), s.num...),
		den: append([]uint64(nil), s.den...),
	}
}

// widen copies every cell into a fresh wide layout.
func (s *narrowStore) widen() *wideStore {
	w := &wideStore{
		tag: append([]Tag(nil), s.tag...),
		num: make([]*big.Int, len(s.num)),
		den: make([]*big.Int, len(s.den)),
	}
	for i := range s.num {
		w.num[i] = new(big.Int).SetUint64(s.num[i])
		w.den[i] = new(big.Int).SetUint64(s.den[i])
	}

	return w
}

// ---------- wide layout ----------

type wideStore struct {
	tag      []Tag
	num, den []*big.Int
}

// newWideStore allocates n zero cells. Zero cells share one numerator and
// one denominator; stored big.Ints are never mutated.
func newWideStore(n int) *wideStore {
	s := &wideStore{tag: make([]Tag, n), num: make([]*big.Int, n), den: make([]*big.Int, n)}
	zero, one := new(big.Int), big.NewInt(1)
	for i := 0; i < n; i++ {
		s.num[i], s.den[i] = zero, one
	}

	return s
}

func (s *wideStore) get(i int) wideCell {
	return wideCell{tag: s.tag[i], num: s.num[i], den: s.den[i]}
}

func (s *wideStore) set(i int, c wideCell) {
	s.tag[i], s.num[i], s.den[i] = c.tag, c.num, c.den
}

func (s *wideStore) clone() *wideStore {
	return &wideStore{
		tag: append([]Tag(nil), s.tag...),
		num: append([]*big.Int(nil), s.num...),
		den: append([]*big.Int(nil), s.den...),
	}
}

// narrow converts the layout when every cell fits in uint64.
func (s *wideStore) narrow() (*narrowStore, bool) {
	n := &narrowStore{tag: append([]Tag(nil), s.tag...), num: make([]uint64, len(s.num)), den: make([]uint64, len(s.den))}
	for i := range s.num {
		if !s.num[i].IsUint64() || !s.den[i].IsUint64() {
			return nil, false
		}
		n.num[i], n.den[i] = s.num[i].Uint64(), s.den[i].Uint64()
	}

	return n, true
}

// ---------- promotion / demotion ----------

// promote switches a narrow matrix to wide storage. No-op otherwise.
func (m *FractionMatrix) promote(op string) {
	if m.narrow == nil {
		return
	}
	m.wide = m.narrow.widen()
	m.narrow = nil
	m.opts.logger.Debug().Str("op", op).Int("rows", m.r).Int("cols", m.c).Msg("promote to wide storage")
}

// demote switches a wide matrix back to narrow storage when every cell
// fits. It reports whether the matrix is narrow afterwards.
func (m *FractionMatrix) demote(op string) bool {
	if m.wide == nil {
		return m.narrow != nil
	}
	n, ok := m.wide.narrow()
	if !ok {
		return false
	}
	m.narrow, m.wide = n, nil
	m.opts.logger.Debug().Str("op", op).Int("rows", m.r).Int("cols", m.c).Msg("demote to narrow storage")

	return true
}

// ---------- fork-join ----------

// chunk is a half-open cell range [lo, hi).
type chunk struct{ lo, hi int }

// chunks splits [0, n) into contiguous ranges, one per worker, or a single
// range below the parallel threshold.
func (m *FractionMatrix) chunks(n int) []chunk {
	if n < m.opts.parallelThreshold {
		return []chunk{{0, n}}
	}
	workers := m.opts.workerCount()
	size := (n + workers - 1) / workers
	out := make([]chunk, 0, workers)
	for lo := 0; lo < n; lo += size {
		out = append(out, chunk{lo, min(lo+size, n)})
	}

	return out
}

// forEachChunk runs fn over every chunk; chunks run concurrently when there
// is more than one.
func (m *FractionMatrix) forEachChunk(parts []chunk, fn func(k int, c chunk) error) error {
	if len(parts) == 1 {
		return fn(0, parts[0])
	}
	var g errgroup.Group
	g.SetLimit(m.opts.workerCount())
	for k, c := range parts {
		g.Go(func() error { return fn(k, c) })
	}

	return g.Wait()
}

// ---------- Reduce ----------

// Reduce brings every exact cell to canonical form: zero becomes Plus 0/1,
// num == den becomes 1/1, other cells are divided by gcd(num, den). A wide
// matrix whose every cell then fits in uint64 is demoted to narrow storage.
//
// Behavior highlights:
//   - Idempotent. Approximate matrices are left untouched.
//   - Runs in parallel from WithParallelThreshold cells on.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c*gcd), Space O(1) extra for narrow, O(r*c) for wide.
func (m *FractionMatrix) Reduce() error {
	if m == nil {
		return matrixErrorf(opReduce, ErrNilMatrix)
	}
	n := m.r * m.c
	switch {
	case m.data != nil:
		return nil
	case m.narrow != nil:
		s := m.narrow
		return m.forEachChunk(m.chunks(n), func(_ int, c chunk) error {
			for i := c.lo; i < c.hi; i++ {
				s.set(i, reduceNarrow(s.get(i)))
			}
			return nil
		})
	}

	var tooWide atomic.Bool
	s := m.wide
	err := m.forEachChunk(m.chunks(n), func(_ int, c chunk) error {
		for i := c.lo; i < c.hi; i++ {
			cell, fits := reduceWide(s.get(i))
			s.set(i, cell)
			if !fits {
				tooWide.Store(true)
			}
		}
		return nil
	})
	if err != nil {
		return matrixErrorf(opReduce, err)
	}
	if !tooWide.Load() {
		m.demote(opReduce)
	}

	return nil
}

// CommonDenominator returns the least common multiple of the denominators
// of all finite cells; 1 when there are none. Chunks compute partial LCMs in
// parallel and the partials are folded in order.
//
// Errors:
//   - ErrNilMatrix, ErrIncompatible for approximate matrices.
func (m *FractionMatrix) CommonDenominator() (*big.Int, error) {
	if m == nil {
		return nil, matrixErrorf(opCommonDenominator, ErrNilMatrix)
	}
	if m.data != nil {
		return nil, matrixErrorf(opCommonDenominator, ErrIncompatible)
	}

	parts := m.chunks(m.r * m.c)
	partial := make([]*big.Int, len(parts))
	err := m.forEachChunk(parts, func(k int, c chunk) error {
		l := big.NewInt(1)
		for i := c.lo; i < c.hi; i++ {
			cell := m.cellWide(i)
			if cell.tag.IsSpecial() || cell.den.Sign() == 0 {
				continue
			}
			if l.IsUint64() && cell.den.IsUint64() && l.Uint64()%cell.den.Uint64() == 0 {
				continue
			}
			l = fraction.LCM(l, cell.den)
		}
		partial[k] = l
		return nil
	})
	if err != nil {
		return nil, matrixErrorf(opCommonDenominator, err)
	}

	l := big.NewInt(1)
	for _, p := range partial {
		l = fraction.LCM(l, p)
	}

	return l, nil
}

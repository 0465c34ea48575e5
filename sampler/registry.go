// SPDX-License-Identifier: MIT
// Package sampler: memoized distributions keyed by their weights.

package sampler

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	gocache "github.com/patrickmn/go-cache"

	"github.com/katalvlaran/ratla/fraction"
)

// Registry memoizes Caches by weight list. Entries expire after the
// configured TTL. A Registry is safe for concurrent use.
type Registry struct {
	store *gocache.Cache
	opts  Options
}

// entry keeps the canonical text next to the cache so a hash collision
// is detected and rebuilt instead of served.
type entry struct {
	text  string
	cache *Cache
}

// NewRegistry builds an empty registry.
func NewRegistry(opts ...Option) *Registry {
	o := gatherOptions(opts...)

	return &Registry{store: gocache.New(o.ttl, o.cleanup), opts: o}
}

// canonicalText renders weights unambiguously: approximate values carry
// a "~" prefix and the poison renders as "!".
func canonicalText(weights []fraction.Value) string {
	var b strings.Builder
	for i, w := range weights {
		if i > 0 {
			b.WriteByte(',')
		}
		switch {
		case w.IsIncompatible():
			b.WriteByte('!')
			continue
		case w.IsApprox():
			b.WriteByte('~')
		}
		b.WriteString(w.String())
	}

	return b.String()
}

// Get returns the memoized Cache for weights, building it on a miss.
// Failed builds are not stored.
//
// Errors: as NewCache.
func (r *Registry) Get(weights []fraction.Value) (*Cache, error) {
	text := canonicalText(weights)
	key := strconv.FormatUint(xxhash.Sum64String(text), 16)
	if v, found := r.store.Get(key); found {
		if e := v.(entry); e.text == text {
			r.opts.logger.Debug().Str("key", key).Int("n", len(weights)).Msg("sampler cache hit")
			return e.cache, nil
		}
	}

	c, err := NewCache(weights)
	if err != nil {
		return nil, samplerErrorf(opRegistryGet, err)
	}
	r.store.SetDefault(key, entry{text: text, cache: c})
	r.opts.logger.Debug().Str("key", key).Int("n", len(weights)).Stringer("mode", c.Mode()).Msg("sampler cache built")

	return c, nil
}

// Choose draws from the memoized distribution of weights.
func (r *Registry) Choose(weights []fraction.Value, src rand.Source) (int, error) {
	c, err := r.Get(weights)
	if err != nil {
		return 0, err
	}

	return c.Choose(src), nil
}

// Len returns the number of stored distributions, expired ones included
// until the next cleanup.
func (r *Registry) Len() int { return r.store.ItemCount() }

// Flush drops every stored distribution.
func (r *Registry) Flush() { r.store.Flush() }

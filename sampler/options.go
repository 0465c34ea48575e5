// SPDX-License-Identifier: MIT

// Package sampler: functional configuration for Registry.
package sampler

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultTTL is how long an unused distribution stays in a Registry.
	DefaultTTL = 5 * time.Minute

	// DefaultCleanupInterval is how often expired entries are purged.
	DefaultCleanupInterval = 10 * time.Minute
)

const (
	panicTTLInvalid     = "sampler: WithTTL: ttl must be > 0"
	panicCleanupInvalid = "sampler: WithCleanupInterval: interval must be >= 0"
)

// Option mutates Registry options.
type Option func(*Options)

// Options stores the effective Registry configuration.
type Options struct {
	ttl     time.Duration
	cleanup time.Duration // 0 disables the janitor
	logger  zerolog.Logger
}

// WithTTL sets the idle lifetime of memoized distributions.
//
// Errors:
//   - Panics when ttl <= 0.
func WithTTL(ttl time.Duration) Option {
	if ttl <= 0 {
		panic(panicTTLInvalid)
	}

	return func(o *Options) { o.ttl = ttl }
}

// WithCleanupInterval sets the purge period; 0 disables background cleanup
// and expired entries are then only skipped on lookup.
func WithCleanupInterval(d time.Duration) Option {
	if d < 0 {
		panic(panicCleanupInvalid)
	}

	return func(o *Options) { o.cleanup = d }
}

// WithLogger attaches a zerolog logger; cache builds and hits are logged at
// debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts ...Option) Options {
	o := Options{ttl: DefaultTTL, cleanup: DefaultCleanupInterval, logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

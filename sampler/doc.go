// SPDX-License-Identifier: MIT

// Package sampler draws random indices with probability proportional to a
// list of fraction.Value weights.
//
// Exact weights are sampled without rounding: the normalized cumulative
// distribution is scaled by the least common multiple L of its
// denominators, and an integer drawn uniformly from [0, L) selects the
// first index whose scaled cumulative weight exceeds it. Approximate
// weights use a float64 cumulative array and a binary search.
//
// Randomness is always supplied by the caller as a math/rand/v2 Source;
// the package keeps no shared generator, so a seeded PCG gives
// reproducible draws.
//
// Cache holds the prepared cumulative distribution for repeated draws.
// Registry memoizes caches by weight list for callers that sample the same
// distributions over and over.
package sampler

// SPDX-License-Identifier: MIT
// Package sampler: sentinel error set.
// Every message is prefixed with "sampler: ..." and callers match with
// errors.Is.

package sampler

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when the weight list has no elements.
	ErrEmpty = errors.New("sampler: cannot take an element of an empty list")

	// ErrMixedModes is returned when exact and approximate weights are
	// combined, or a weight is Incompatible.
	ErrMixedModes = errors.New("sampler: cannot combine exact and approximate weights")

	// ErrZeroSum is returned when every weight is zero.
	ErrZeroSum = errors.New("sampler: weights sum to zero")

	// ErrNegativeWeight is returned for a weight below zero.
	ErrNegativeWeight = errors.New("sampler: negative weight")

	// ErrInvalidWeight is returned for NaN or infinite weights, and for a
	// NaN selection point.
	ErrInvalidWeight = errors.New("sampler: weight is not finite")
)

const panicNilSource = "sampler: nil rand.Source"

// Operation tags for error wrapping.
const (
	opNewCache       = "NewCache"
	opChooseRandomly = "ChooseRandomly"
	opSelect         = "Select"
	opRegistryGet    = "Registry.Get"
)

// samplerErrorf wraps err with an operation tag, keeping errors.Is intact.
func samplerErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// weightErrorf adds the offending index.
func weightErrorf(tag string, i int, err error) error {
	return fmt.Errorf("%s: weight %d: %w", tag, i, err)
}

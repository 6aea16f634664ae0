// Copyright (c) 2026 Oshidora. All rights reserved.

/*
Package random is the deterministic randomness source of the seed generator.

A seed string is reduced to 32 bits (the first four bytes of its SHA-256
digest, little-endian) and fed to mulberry32, a Weyl-sequence generator with
xorshift-multiply mixing. Every draw the generator makes comes from one
[Source], so the same seed and the same call order always produce the same
dataset.

The sampling helpers are part of the contract: [PickN] must select
floor(Next() * remaining) from a shrinking copy, otherwise datasets drift
from those produced by other implementations of the same seed.
*/
package random

import (
	"crypto/sha256"
	"encoding/binary"
	"slices"
)

// weylIncrement is the odd constant added to the state on every draw.
const weylIncrement = 0x6D2B79F5

// twoTo32 normalizes a 32-bit output into [0, 1).
const twoTo32 = 1 << 32

// Source is a reproducible stream of pseudo-random draws.
//
// # Concurrency
//
// Source is not safe for concurrent use. Each generation run owns one.
type Source struct {
	state uint32
}

// SeedFromString reduces an arbitrary seed string to the generator state.
func SeedFromString(seed string) uint32 {
	digest := sha256.Sum256([]byte(seed))
	return binary.LittleEndian.Uint32(digest[:4])
}

// New returns a Source seeded from a seed string.
func New(seed string) *Source {
	return NewFromState(SeedFromString(seed))
}

// NewFromState returns a Source starting at an explicit 32-bit state.
func NewFromState(state uint32) *Source {
	return &Source{state: state}
}

// Uint32 advances the stream and returns the next raw 32-bit output.
func (s *Source) Uint32() uint32 {
	s.state += weylIncrement
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t = (t + (t^(t>>7))*(t|61)) ^ t
	return t ^ (t >> 14)
}

// Next returns the next draw in [0, 1).
func (s *Source) Next() float64 {
	return float64(s.Uint32()) / twoTo32
}

// Intn returns a draw in [0, n). It returns 0 when n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.Next() * float64(n))
}

// Between returns a draw in [min, max], inclusive on both ends.
func (s *Source) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.Intn(max-min+1)
}

// Chance reports true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.Next() < p
}

// # Sampling

// Pick returns one uniformly drawn element of list.
// An empty list yields the zero value and consumes no draw.
func Pick[T any](s *Source, list []T) T {
	if len(list) == 0 {
		var zero T
		return zero
	}
	return list[s.Intn(len(list))]
}

// PickN draws n distinct elements without replacement, in draw order.
//
// Each draw selects floor(Next() * len(remaining)) from a working copy and
// removes it. n greater than len(list) returns every element; n <= 0 returns
// an empty slice. list itself is never modified.
func PickN[T any](s *Source, list []T, n int) []T {
	n = min(max(n, 0), len(list))

	remaining := slices.Clone(list)
	picked := make([]T, 0, n)

	for range n {
		index := s.Intn(len(remaining))
		picked = append(picked, remaining[index])
		remaining = slices.Delete(remaining, index, index+1)
	}

	return picked
}

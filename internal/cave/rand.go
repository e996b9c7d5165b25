// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

package cave

import (
	"math"
	"math/rand/v2"
	"time"
)

// Source is the random dependency of placement and connectivity. It is not
// safe for concurrent use.
type Source interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Uint64N returns a uniform uint64 in [0, n). It panics if n == 0.
	Uint64N(n uint64) uint64
}

// NewSource returns a PCG-backed Source seeded with seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// RandomSeed returns a non-zero seed derived from the wall clock.
func RandomSeed() int64 {
	if s := time.Now().UnixNano(); s != 0 {
		return s
	}
	return 1
}

// IntRange draws uniformly from the inclusive range [lo, hi]. Ranges wider
// than math.MaxInt points are drawn with Uint64N. The range must not cover
// every int.
func IntRange(src Source, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	span := uint64(hi) - uint64(lo)
	if span < math.MaxInt {
		return lo + src.IntN(int(span)+1)
	}
	return int(uint64(lo) + src.Uint64N(span+1))
}

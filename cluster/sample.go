// SPDX-License-Identifier: MIT

// File: sample.go
// Role: Seeded random streams and uniform sampling over dense vertex indices.
// Determinism:
//   - Every stream is derived from (parent seed, stream id) with SplitMix64,
//     so per-component randomness does not depend on goroutine scheduling.
// Concurrency:
//   - A *rand.Rand is owned by exactly one arena or attempt; never shared.

package cluster

import "math/rand"

// defaultSeed replaces a zero seed so "unset" still yields a fixed stream.
const defaultSeed int64 = 1

// streamPadding keys the attempt-level failover draw; component streams use their index.
const streamPadding uint64 = 1 << 63

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes parent and stream through the SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG returns an independent stream keyed by (parent, stream).
func deriveRNG(parent int64, stream uint64) *rand.Rand {
	return rngFromSeed(deriveSeed(parent, stream))
}

// shuffle permutes a in place (Fisher–Yates).
func shuffle(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// sampleIDs returns a shuffled copy of ids cut to size.
// A negative size yields an empty slice; size ≥ len(ids) yields all of them.
// ids itself is left untouched.
func sampleIDs(ids []int, size int, rng *rand.Rand) []int {
	if size <= 0 || len(ids) == 0 {
		return []int{}
	}
	out := make([]int, len(ids))
	copy(out, ids)
	shuffle(out, rng)
	if size < len(out) {
		out = out[:size]
	}

	return out
}

// pickOne draws a uniform element of ids. ok is false when ids is empty.
func pickOne(ids []int, rng *rand.Rand) (id int, ok bool) {
	if len(ids) == 0 {
		return none, false
	}

	return ids[rng.Intn(len(ids))], true
}

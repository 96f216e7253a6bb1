// Package seed derives deterministic seed material and turns it into an
// explicit pseudo-random generator instance.
//
// Goals:
//   - Determinism: identical material ⇒ identical generator stream across
//     platforms and runs.
//   - Encapsulation: the generator is a value handed to the caller, never a
//     hidden package-level global; callers inject it where randomness is
//     needed and serialize access themselves.
//   - Reproducibility control: callers either supply material verbatim or
//     take the machine-derived default (time, pid, hostname hash).
//
// In a multi-process deployment every process computes the same
// machine-derived material by the same algorithm; only the master process's
// stream is semantically used, so cross-process collisions are tolerated by
// design.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Concurrent draws or re-seeding
//     must be serialized by the caller.
package seed

import (
	"errors"
	"math/rand"
	"os"
	"time"
)

// MaxMaterial is the most entries a caller-supplied Material may contain,
// matching the limit of the underlying generator-initialization primitive.
const MaxMaterial = 64

// ErrMaterialLength is returned when Material is empty or exceeds MaxMaterial.
var ErrMaterialLength = errors.New("seed: material must contain 1 to 64 entries")

// Material is an ordered sequence of unsigned integers consumed exactly once
// to establish the generator's internal state.
type Material []uint64

// HashString is the DJB2 string hash (seed 5381, multiplier 33), used to
// fold the host name into the default seed material. Stable across
// platforms; not cryptographic.
//
// Complexity: O(len(s)).
func HashString(s string) uint64 {
	var hash uint64 = 5381
	for i := 0; i < len(s); i++ {
		hash = hash*33 + uint64(s[i])
	}
	return hash
}

// DefaultMaterial builds the machine-derived three-entry material:
// current time in milliseconds, process id, and HashString of the host name.
// A host name lookup failure contributes the hash of the empty string; the
// other two entries still differentiate runs.
func DefaultMaterial() Material {
	host, _ := os.Hostname()
	return Material{
		uint64(time.Now().UnixMilli()),
		uint64(os.Getpid()),
		HashString(host),
	}
}

// New consumes m exactly once and returns a deterministic generator whose
// state is a pure function of the material.
//
// Contract:
//   - 1 ≤ len(m) ≤ MaxMaterial, otherwise ErrMaterialLength.
//   - Identical material always yields an identical stream.
//
// Complexity: O(len(m)).
func New(m Material) (*rand.Rand, error) {
	if len(m) == 0 || len(m) > MaxMaterial {
		return nil, ErrMaterialLength
	}
	// Fold every entry through a SplitMix64-style avalanche so that small
	// differences in any entry diffuse across the whole 64-bit state.
	var state uint64
	for i, v := range m {
		state = mix64(state ^ (v + uint64(i)*0x9e3779b97f4a7c15))
	}
	return rand.New(rand.NewSource(int64(state))), nil
}

// NewDefault returns a generator seeded from DefaultMaterial.
func NewDefault() *rand.Rand {
	r, _ := New(DefaultMaterial())
	return r
}

// mix64 is the canonical SplitMix64 finalizer; see Vigna 2014 for the
// constants and rationale.
func mix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

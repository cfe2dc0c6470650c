// Package kernels implements the vectorized arithmetic primitives and the
// runtime dispatch table that binds them to the instruction-set tier
// detected on the host.
//
// Each tier contributes one kernel set: a sum, a dot product and an
// incremental rolling window sum. Kernel sets register themselves from
// architecture-tagged init functions, and the dispatch table is built
// lazily exactly once from the highest registered tier the host supports.
// Kernels assume validated arguments; argument checking lives in the public
// wrappers one package up.
package kernels

import (
	"github.com/tphakala/go-ta/internal/cpu"
	"github.com/tphakala/go-ta/internal/fp"
)

// SumFunc computes the total of all elements.
type SumFunc func(data []fp.Float) fp.Float

// DotFunc computes the dot product of two equal-length slices. Callers must
// have checked the lengths already.
type DotFunc func(a, b []fp.Float) fp.Float

// RollingSumFunc writes the len(data)-window+1 rolling window sums of data
// into dst. Callers must have validated the window and sized dst.
type RollingSumFunc func(dst, data []fp.Float, window int)

// Table is the immutable dispatch table. All three primitives always come
// from the same tier; once published by Active it is never mutated.
type Table struct {
	// Name is the conventional tier name ("scalar", "avx2", ...).
	Name string

	// Level is the tier the kernels were registered under.
	Level cpu.Level

	// Lanes is the vector block width of the tier.
	Lanes int

	Sum            SumFunc
	DotProduct     DotFunc
	RollingSumInto RollingSumFunc
}

// Entry is one registered kernel set.
type Entry struct {
	Name           string
	Level          cpu.Level
	Sum            SumFunc
	DotProduct     DotFunc
	RollingSumInto RollingSumFunc
}

// registry holds every kernel set compiled into this build. Registration
// only happens from init functions in this package, so no locking is
// needed: the registry is complete before any dispatch can run.
var registry []Entry

func register(e Entry) {
	registry = append(registry, e)
}

// Entries returns a copy of all registered kernel sets. Every set is plain
// Go, so tests can execute tiers the host would not select.
func Entries() []Entry {
	out := make([]Entry, len(registry))
	copy(out, registry)
	return out
}

// rollingSum derives a tier's rolling window sum from its sum kernel: the
// first window is one wide sum, every following position adjusts the
// accumulator by the entering and leaving elements. O(len), never
// O(len*window).
func rollingSum(sum SumFunc) RollingSumFunc {
	return func(dst, data []fp.Float, window int) {
		acc := sum(data[:window])
		dst[0] = acc
		for i := window; i < len(data); i++ {
			acc = acc - data[i-window] + data[i]
			dst[i-window+1] = acc
		}
	}
}

// Package window provides the fixed-capacity history buffer backing
// streaming indicator state.
package window

import "github.com/tphakala/go-ta/internal/fp"

// Ring is a circular buffer holding the most recent values pushed into it.
// Unlike a general streaming buffer it never grows: the capacity is the
// indicator's window length, fixed at construction. It is owned by exactly
// one indicator instance and is deliberately unsynchronized; concurrent use
// must be serialized by the caller.
type Ring struct {
	data []fp.Float
	head int // next write position
	size int
}

// New creates a ring holding up to capacity values. Capacity must be at
// least 1; indicator constructors validate this before building their state.
func New(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{data: make([]fp.Float, capacity)}
}

// Push appends v, evicting the oldest value once the ring is full. It
// returns the evicted value and whether an eviction happened.
func (r *Ring) Push(v fp.Float) (evicted fp.Float, ok bool) {
	if r.size == len(r.data) {
		evicted = r.data[r.head]
		ok = true
	} else {
		r.size++
	}
	r.data[r.head] = v
	r.head++
	if r.head == len(r.data) {
		r.head = 0
	}
	return evicted, ok
}

// Len returns the number of live values.
func (r *Ring) Len() int {
	return r.size
}

// Cap returns the fixed capacity.
func (r *Ring) Cap() int {
	return len(r.data)
}

// Full reports whether the ring holds capacity values.
func (r *Ring) Full() bool {
	return r.size == len(r.data)
}

// CopyTo writes the live values into dst in push order, oldest first, and
// returns the count written. dst must hold Len() values.
func (r *Ring) CopyTo(dst []fp.Float) int {
	start := r.head - r.size
	if start < 0 {
		start += len(r.data)
	}
	for i := 0; i < r.size; i++ {
		pos := start + i
		if pos >= len(r.data) {
			pos -= len(r.data)
		}
		dst[i] = r.data[pos]
	}
	return r.size
}

// Reset discards all values. The backing storage is kept.
func (r *Ring) Reset() {
	r.head = 0
	r.size = 0
	for i := range r.data {
		r.data[i] = 0
	}
}

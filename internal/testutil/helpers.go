// Package testutil provides reusable assertion helpers for kernel and
// indicator tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/tphakala/go-ta/internal/fp"
)

// RelTolerance is the cross-path agreement bound. Vectorized summation
// reorders additions relative to the scalar path, so different code paths
// agree within a relative tolerance, never bit for bit. The float32 build
// widens the bound to match the shorter mantissa.
var RelTolerance = func() float64 {
	if fp.Bits == 32 {
		return 1e-4
	}
	return 1e-9
}()

// AssertEqualRel verifies |want-got| <= tol*max(1, |want|).
func AssertEqualRel(t *testing.T, want, got fp.Float, tol float64, msgAndArgs ...any) bool {
	t.Helper()
	if scalar.EqualWithinAbsOrRel(float64(want), float64(got), tol, tol) {
		return true
	}
	return assert.Fail(t, "values not equal within tolerance",
		"want %v, got %v (tol %v)", want, got, tol)
}

// AssertSlicesEqualRel verifies element-wise agreement of two slices within
// the given relative tolerance.
func AssertSlicesEqualRel(t *testing.T, want, got []fp.Float, tol float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, got, len(want), msgAndArgs...) {
		return false
	}
	for i := range want {
		if !scalar.EqualWithinAbsOrRel(float64(want[i]), float64(got[i]), tol, tol) {
			return assert.Fail(t, "slices differ",
				"index %d: want %v, got %v (tol %v)", i, want[i], got[i], tol)
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []fp.Float, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(float64(v)) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(float64(v), 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// Series generates a deterministic pseudo-random price-like series for
// property tests. The same seed always yields the same series.
func Series(seed uint64, n int) []fp.Float {
	s := make([]fp.Float, n)
	x := seed*2862933555777941757 + 3037000493
	price := fp.Float(100)
	for i := range s {
		x = x*2862933555777941757 + 3037000493
		// Map the top bits to a step in [-0.5, 0.5).
		step := fp.Float(x>>11)/fp.Float(1<<53) - 0.5
		price += step
		s[i] = price
	}
	return s
}

package kernels

import (
	"fmt"
	"testing"

	"github.com/tphakala/simd/f64"

	"github.com/tphakala/go-ta/internal/fp"
	"github.com/tphakala/go-ta/internal/testutil"
)

// Cross-checks against the independently implemented simd package, which
// uses its own assembly kernels and therefore its own summation order.

func TestSumAgainstSimdPackage(t *testing.T) {
	for _, n := range testLengths {
		if n == 0 {
			continue
		}
		data := testutil.Series(21, n)
		ref := f64.Sum(toFloat64(data))
		for _, e := range Entries() {
			t.Run(fmt.Sprintf("%s/n=%d", e.Name, n), func(t *testing.T) {
				got := e.Sum(data)
				testutil.AssertEqualRel(t, fp.Float(ref), got, testutil.RelTolerance)
			})
		}
	}
}

func TestDotProductAgainstSimdPackage(t *testing.T) {
	for _, n := range testLengths {
		if n == 0 {
			continue
		}
		a := testutil.Series(3, n)
		b := testutil.Series(17, n)
		ref := f64.DotProductUnsafe(toFloat64(a), toFloat64(b))
		for _, e := range Entries() {
			t.Run(fmt.Sprintf("%s/n=%d", e.Name, n), func(t *testing.T) {
				got := e.DotProduct(a, b)
				testutil.AssertEqualRel(t, fp.Float(ref), got, testutil.RelTolerance)
			})
		}
	}
}

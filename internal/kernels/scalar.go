package kernels

import (
	"github.com/tphakala/go-ta/internal/cpu"
	"github.com/tphakala/go-ta/internal/fp"
)

// The scalar kernel set is the portable baseline and registers on every
// architecture. It also defines the reference summation order the wide
// tiers are tested against.
func init() {
	register(Entry{
		Name:           "scalar",
		Level:          cpu.Scalar,
		Sum:            sumScalar,
		DotProduct:     dotScalar,
		RollingSumInto: rollingSum(sumScalar),
	})
}

func sumScalar(data []fp.Float) fp.Float {
	var s fp.Float
	for _, v := range data {
		s += v
	}
	return s
}

func dotScalar(a, b []fp.Float) fp.Float {
	var s fp.Float
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

//go:build arm64 && !purego

package kernels

import "github.com/tphakala/go-ta/internal/cpu"

func init() {
	register(Entry{
		Name:           "neon",
		Level:          cpu.NEON,
		Sum:            sum2,
		DotProduct:     dot2,
		RollingSumInto: rollingSum(sum2),
	})
	register(Entry{
		Name:           "sve",
		Level:          cpu.SVE,
		Sum:            sum4,
		DotProduct:     dot4,
		RollingSumInto: rollingSum(sum4),
	})
}

//go:build amd64 && !purego

package kernels

import "github.com/tphakala/go-ta/internal/cpu"

// amd64 registers its whole tier family; dispatch narrows the choice to
// what the processor actually supports.
func init() {
	register(Entry{
		Name:           "sse2",
		Level:          cpu.SSE2,
		Sum:            sum2,
		DotProduct:     dot2,
		RollingSumInto: rollingSum(sum2),
	})
	register(Entry{
		Name:           "avx2",
		Level:          cpu.AVX2,
		Sum:            sum4,
		DotProduct:     dot4,
		RollingSumInto: rollingSum(sum4),
	})
	register(Entry{
		Name:           "avx512",
		Level:          cpu.AVX512,
		Sum:            sum8,
		DotProduct:     dot8,
		RollingSumInto: rollingSum(sum8),
	})
}

//go:build amd64

package cpu

import "github.com/klauspost/cpuid/v2"

// detectBest walks the amd64 tiers from widest to narrowest and returns the
// first one the processor supports. SSE2 is part of the amd64 baseline, so
// the floor on this family is SSE2, not Scalar.
func detectBest() Level {
	switch {
	case hasAVX512():
		return AVX512
	case hasAVX2():
		return AVX2
	default:
		return SSE2
	}
}

func supported(l Level) bool {
	switch l {
	case Scalar, SSE2:
		return true
	case AVX2:
		return hasAVX2()
	case AVX512:
		return hasAVX512()
	default:
		return false
	}
}

// hasAVX2 requires FMA alongside AVX2; the wide kernels assume fused
// multiply-add throughput.
func hasAVX2() bool {
	return cpuid.CPU.Supports(cpuid.AVX2) && cpuid.CPU.Supports(cpuid.FMA3)
}

// hasAVX512 gates on the F/DQ/BW/VL subset rather than AVX512F alone, which
// by itself is not enough for full-width float kernels.
func hasAVX512() bool {
	return cpuid.CPU.Supports(cpuid.AVX512F) &&
		cpuid.CPU.Supports(cpuid.AVX512DQ) &&
		cpuid.CPU.Supports(cpuid.AVX512BW) &&
		cpuid.CPU.Supports(cpuid.AVX512VL)
}

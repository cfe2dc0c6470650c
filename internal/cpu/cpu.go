// Package cpu detects the SIMD capability of the host processor.
//
// Detection is architecture-exclusive: the amd64 checks are never compiled
// on arm64 and vice versa, so there is no cross-family fallback chain, only
// a single ordered list of checks within the host's own family. The result
// is resolved once per process and never changes afterwards.
package cpu

import (
	"os"
	"strings"
	"sync"
)

// Level identifies an instruction-set tier. Within one hardware family the
// numeric values are ordered from narrowest to widest, so a simple
// comparison selects the best available tier. Families never mix at
// runtime: an amd64 build only ever sees Scalar/SSE2/AVX2/AVX512, an arm64
// build only Scalar/NEON/SVE.
type Level uint8

const (
	// Scalar is the portable baseline, available everywhere.
	Scalar Level = iota
	// SSE2 is the amd64 baseline vector tier (128-bit).
	SSE2
	// NEON is the arm64 Advanced SIMD tier (128-bit).
	NEON
	// SVE is the arm64 Scalable Vector Extension tier.
	SVE
	// AVX2 is the amd64 256-bit tier (requires FMA).
	AVX2
	// AVX512 is the amd64 512-bit tier (requires F, DQ, BW and VL).
	AVX512
)

// String returns the lowercase conventional name of the level.
func (l Level) String() string {
	switch l {
	case Scalar:
		return "scalar"
	case SSE2:
		return "sse2"
	case NEON:
		return "neon"
	case SVE:
		return "sve"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// Lanes returns the number of float64 elements processed per vector block
// at this level. Kernels use it as their unroll width; float32 builds keep
// the same block widths.
func (l Level) Lanes() int {
	switch l {
	case SSE2, NEON:
		return 2
	case SVE, AVX2:
		return 4
	case AVX512:
		return 8
	default:
		return 1
	}
}

// ParseLevel parses a conventional level name as accepted by the GOTA_SIMD
// environment variable.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar":
		return Scalar, true
	case "sse2":
		return SSE2, true
	case "neon":
		return NEON, true
	case "sve":
		return SVE, true
	case "avx2":
		return AVX2, true
	case "avx512":
		return AVX512, true
	default:
		return Scalar, false
	}
}

// envOverride is the environment variable that pins the detected level.
// Values name a tier ("scalar", "avx2", ...). Overrides requesting a tier
// the host does not support are ignored.
const envOverride = "GOTA_SIMD"

var (
	detectOnce sync.Once
	detected   Level
)

// Detect resolves the instruction-set tier of the running host. The first
// call performs the hardware inspection; every subsequent call returns the
// same value. Detection cannot fail: hosts exposing nothing the detector
// recognizes resolve to Scalar.
func Detect() Level {
	detectOnce.Do(func() {
		detected = resolve()
	})
	return detected
}

func resolve() Level {
	if v := os.Getenv(envOverride); v != "" {
		if l, ok := ParseLevel(v); ok && supported(l) {
			return l
		}
	}
	return detectBest()
}

// Supported reports whether the host can run kernels registered at the
// given level. Scalar is always supported.
func Supported(l Level) bool {
	return supported(l)
}

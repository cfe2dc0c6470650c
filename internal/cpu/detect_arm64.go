//go:build arm64

package cpu

import "golang.org/x/sys/cpu"

// detectBest walks the arm64 tiers from widest to narrowest. ASIMD (NEON)
// is mandatory on arm64, but darwin does not populate the feature flags, so
// the flag is still checked and the family floor remains Scalar.
func detectBest() Level {
	switch {
	case cpu.ARM64.HasSVE:
		return SVE
	case cpu.ARM64.HasASIMD:
		return NEON
	default:
		return Scalar
	}
}

func supported(l Level) bool {
	switch l {
	case Scalar:
		return true
	case NEON:
		return cpu.ARM64.HasASIMD
	case SVE:
		return cpu.ARM64.HasSVE
	default:
		return false
	}
}

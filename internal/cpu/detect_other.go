//go:build !amd64 && !arm64

package cpu

// Architectures without a registered kernel family run the scalar tier.
func detectBest() Level {
	return Scalar
}

func supported(l Level) bool {
	return l == Scalar
}

//go:build !ta_float32

package fp

// Float is double-precision in the default build.
type Float = float64

// Bits is the width of Float in bits.
const Bits = 64

//go:build ta_float32

package fp

// Float is single-precision when the ta_float32 build tag is set.
type Float = float32

// Bits is the width of Float in bits.
const Bits = 32

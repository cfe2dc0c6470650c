// Package fp configures the floating-point element type used by every
// kernel and indicator in the library.
//
// Exactly one precision is active per build. The default is float64;
// building with the ta_float32 tag switches the whole library to float32:
//
//	go build -tags ta_float32 ./...
//
// Precisions are never mixed within one build, so kernels, dispatch tables
// and indicator outputs always agree on element width.
package fp

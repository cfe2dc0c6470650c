// Package ta provides the numeric computation core for a technical-analysis
// indicator library in pure Go.
//
// The core has two layers. The lower layer is a set of vectorized
// arithmetic kernels (sum, dot product and rolling window sum) selected at
// runtime from the widest instruction-set tier the host supports. The upper
// layer is a unified indicator abstraction that evaluates the same
// recurrence in two modes: zero-copy batch computation over a full series,
// and incremental streaming computation one value at a time.
//
// # Features
//
//   - Runtime CPU capability detection (SSE2/AVX2/AVX-512 on amd64,
//     NEON/SVE on arm64) with a portable scalar fallback
//   - Immutable dispatch table built lazily exactly once; lock-free reads
//   - Batch and streaming evaluation producing equivalent results
//   - Zero-allocation batch path via caller-supplied output buffers
//   - Single float precision per build: float64 by default, float32 with
//     the ta_float32 build tag
//
// # Quick Start
//
// Batch evaluation of a simple moving average:
//
//	sma, err := ta.NewSMA(20)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	outputs := make([]ta.Float, len(prices))
//	n, err := sma.Compute(prices, outputs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	use(outputs[:n])
//
// Streaming evaluation over live data:
//
//	for price := range quotes {
//	    if v, ok := sma.Next(price); ok {
//	        use(v)
//	    }
//	    // ok is false during the warm-up phase
//	}
//
// Both modes evaluate the same recurrence: the sequence of values returned
// by Next equals the sequence Compute writes for the same inputs.
//
// # Dispatch
//
// The three primitives [Sum], [DotProduct] and [RollingWindowSum] are bound
// to one kernel set on first use and keep that binding for the process
// lifetime. All three always come from the same tier. Vectorized tiers
// reorder additions relative to the scalar tier, so results across tiers
// agree within a small relative tolerance rather than bit for bit. Set
// GOTA_SIMD=scalar (or a specific tier name) to pin the selection.
//
// # Thread Safety
//
// Kernel primitives are pure and safe for unlimited concurrent use.
// Compute on a shared indicator is safe as long as the input and output
// buffers are disjoint per goroutine. Next and Reset mutate streaming state
// and must be serialized by the caller.
package ta

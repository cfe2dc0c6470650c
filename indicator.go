package ta

import "fmt"

// Indicator is the unified interface implemented by every indicator in the
// library. A concrete indicator defines its recurrence once and serves both
// evaluation modes with it:
//
//   - Batch: Compute / ComputeToSlice evaluate a full input series in one
//     call using the dispatched kernels.
//   - Streaming: Next / Stream evaluate incrementally, one input at a time,
//     carrying state between calls.
//
// For the same inputs the two modes produce the same values in the same
// order. A freshly constructed (or Reset) instance starts in its warm-up
// phase and emits its first streaming value once Lookback()+1 inputs have
// been seen; there is no terminal state, instances stay usable indefinitely.
type Indicator interface {
	// Lookback returns the number of leading inputs consumed before the
	// first output. It depends only on the indicator's configuration.
	Lookback() int

	// Compute evaluates the whole input series, writing exactly
	// len(inputs)-Lookback() values into outputs and returning the count
	// written. It allocates nothing and touches no streaming state, so
	// concurrent calls with disjoint buffers are safe. It fails with
	// ErrInsufficientData when len(inputs) <= Lookback() and with
	// ErrBufferTooSmall when outputs cannot hold the result.
	Compute(inputs, outputs []Float) (int, error)

	// ComputeToSlice is like Compute but allocates the output slice. It
	// delegates to Compute and returns identical values.
	ComputeToSlice(inputs []Float) ([]Float, error)

	// Next feeds one input to the streaming state. It returns ok=false
	// while the instance is warming up (fewer than Lookback()+1 inputs
	// seen) and exactly one value per call afterwards. Not safe for
	// concurrent use.
	Next(input Float) (Float, bool)

	// Stream feeds every input to Next and returns the defined values in
	// order.
	Stream(inputs []Float) []Float

	// Reset discards all accumulated history, returning the instance to
	// its just-constructed state.
	Reset()
}

// batchLen validates the Compute contract and returns the output count.
func batchLen(lookback int, inputs, outputs []Float) (int, error) {
	n := len(inputs) - lookback
	if n <= 0 {
		return 0, fmt.Errorf("%w: need more than %d inputs, have %d",
			ErrInsufficientData, lookback, len(inputs))
	}
	if len(outputs) < n {
		return 0, fmt.Errorf("%w: need %d slots, have %d",
			ErrBufferTooSmall, n, len(outputs))
	}
	return n, nil
}

// computeToSlice implements ComputeToSlice on top of an indicator's own
// Compute, so both entry points share one code path.
func computeToSlice(ind Indicator, inputs []Float) ([]Float, error) {
	n := len(inputs) - ind.Lookback()
	if n < 0 {
		n = 0
	}
	out := make([]Float, n)
	written, err := ind.Compute(inputs, out)
	if err != nil {
		return nil, err
	}
	return out[:written], nil
}

// streamAll implements Stream as repeated application of Next.
func streamAll(ind Indicator, inputs []Float) []Float {
	out := make([]Float, 0, len(inputs))
	for _, v := range inputs {
		if y, ok := ind.Next(v); ok {
			out = append(out, y)
		}
	}
	return out
}

func checkPeriod(period int) error {
	if period < 1 {
		return fmt.Errorf("%w: period must be at least 1, got %d", ErrInvalidConfig, period)
	}
	return nil
}

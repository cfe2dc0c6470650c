package ta

import (
	"github.com/tphakala/go-ta/internal/kernels"
	"github.com/tphakala/go-ta/internal/window"
)

// WMA is the linearly weighted moving average: the newest value in the
// window carries weight period, the oldest weight 1, normalized by the
// weight total period*(period+1)/2.
//
// Every full window is evaluated as one dispatched dot product against the
// precomputed weight vector, in both batch and streaming mode, so the two
// paths agree exactly.
type WMA struct {
	period   int
	invDenom Float
	weights  []Float
	ops      *kernels.Table

	// streaming state
	ring    *window.Ring
	scratch []Float
}

var _ Indicator = (*WMA)(nil)

// NewWMA creates a linearly weighted moving average over the given period.
// Periods below 1 fail with ErrInvalidConfig.
func NewWMA(period int) (*WMA, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	weights := make([]Float, period)
	for i := range weights {
		weights[i] = Float(i + 1)
	}
	denom := Float(period) * Float(period+1) / 2
	return &WMA{
		period:   period,
		invDenom: 1 / denom,
		weights:  weights,
		ops:      kernels.Active(),
		ring:     window.New(period),
		scratch:  make([]Float, period),
	}, nil
}

// Period returns the configured window length.
func (w *WMA) Period() int {
	return w.period
}

// Lookback returns period-1.
func (w *WMA) Lookback() int {
	return w.period - 1
}

// Compute evaluates the WMA over the whole input series.
func (w *WMA) Compute(inputs, outputs []Float) (int, error) {
	n, err := batchLen(w.Lookback(), inputs, outputs)
	if err != nil {
		return 0, err
	}
	for i := 0; i < n; i++ {
		outputs[i] = w.ops.DotProduct(inputs[i:i+w.period], w.weights) * w.invDenom
	}
	return n, nil
}

// ComputeToSlice evaluates the WMA into a freshly allocated slice.
func (w *WMA) ComputeToSlice(inputs []Float) ([]Float, error) {
	return computeToSlice(w, inputs)
}

// Next feeds one input to the streaming state. Once the window is full the
// ring contents are copied into a reusable scratch buffer in chronological
// order and evaluated with the same dot product kernel the batch path uses.
func (w *WMA) Next(input Float) (Float, bool) {
	w.ring.Push(input)
	if !w.ring.Full() {
		return 0, false
	}
	w.ring.CopyTo(w.scratch)
	return w.ops.DotProduct(w.scratch, w.weights) * w.invDenom, true
}

// Stream feeds every input to Next and returns the defined values.
func (w *WMA) Stream(inputs []Float) []Float {
	return streamAll(w, inputs)
}

// Reset discards the streaming history.
func (w *WMA) Reset() {
	w.ring.Reset()
}

package ta

import "github.com/tphakala/go-ta/internal/kernels"

// EMA is the exponential moving average with smoothing factor
// alpha = 2/(period+1). The first output is seeded with the simple average
// of the first period inputs; every later output follows the recurrence
// ema = alpha*input + (1-alpha)*ema.
//
// Batch and streaming mode seed from the same dispatched sum kernel and
// apply the recurrence in the same order, so the two paths agree exactly.
type EMA struct {
	period        int
	invPeriod     Float
	alpha         Float
	oneMinusAlpha Float
	ops           *kernels.Table

	// streaming state
	warm  []Float
	prev  Float
	ready bool
}

var _ Indicator = (*EMA)(nil)

// NewEMA creates an exponential moving average over the given period.
// Periods below 1 fail with ErrInvalidConfig.
func NewEMA(period int) (*EMA, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	alpha := 2 / Float(period+1)
	return &EMA{
		period:        period,
		invPeriod:     1 / Float(period),
		alpha:         alpha,
		oneMinusAlpha: 1 - alpha,
		ops:           kernels.Active(),
		warm:          make([]Float, 0, period),
	}, nil
}

// Period returns the configured smoothing period.
func (e *EMA) Period() int {
	return e.period
}

// Lookback returns period-1: the seed consumes the first period inputs.
func (e *EMA) Lookback() int {
	return e.period - 1
}

// Compute evaluates the EMA over the whole input series.
func (e *EMA) Compute(inputs, outputs []Float) (int, error) {
	n, err := batchLen(e.Lookback(), inputs, outputs)
	if err != nil {
		return 0, err
	}
	prev := e.ops.Sum(inputs[:e.period]) * e.invPeriod
	outputs[0] = prev
	for i := e.period; i < len(inputs); i++ {
		prev = e.alpha*inputs[i] + e.oneMinusAlpha*prev
		outputs[i-e.period+1] = prev
	}
	return n, nil
}

// ComputeToSlice evaluates the EMA into a freshly allocated slice.
func (e *EMA) ComputeToSlice(inputs []Float) ([]Float, error) {
	return computeToSlice(e, inputs)
}

// Next feeds one input to the streaming state. Warm-up inputs accumulate in
// a fixed-capacity buffer; the seed is computed with the same sum kernel the
// batch path uses.
func (e *EMA) Next(input Float) (Float, bool) {
	if !e.ready {
		e.warm = append(e.warm, input)
		if len(e.warm) < e.period {
			return 0, false
		}
		e.prev = e.ops.Sum(e.warm) * e.invPeriod
		e.ready = true
		return e.prev, true
	}
	e.prev = e.alpha*input + e.oneMinusAlpha*e.prev
	return e.prev, true
}

// Stream feeds every input to Next and returns the defined values.
func (e *EMA) Stream(inputs []Float) []Float {
	return streamAll(e, inputs)
}

// Reset discards the streaming history.
func (e *EMA) Reset() {
	e.warm = e.warm[:0]
	e.prev = 0
	e.ready = false
}

package ta

import (
	"github.com/tphakala/go-ta/internal/kernels"
	"github.com/tphakala/go-ta/internal/window"
)

// SMA is the simple moving average: the arithmetic mean of the most recent
// period inputs.
//
// Batch evaluation scales the dispatched rolling window sum by 1/period.
// Streaming evaluation keeps the window in a ring buffer and maintains the
// running sum incrementally, adding the entering value and subtracting the
// evicted one, so each Next call is O(1).
type SMA struct {
	period    int
	invPeriod Float
	ops       *kernels.Table

	// streaming state
	ring *window.Ring
	sum  Float
}

var _ Indicator = (*SMA)(nil)

// NewSMA creates a simple moving average over the given period. Periods
// below 1 fail with ErrInvalidConfig.
func NewSMA(period int) (*SMA, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	return &SMA{
		period:    period,
		invPeriod: 1 / Float(period),
		ops:       kernels.Active(),
		ring:      window.New(period),
	}, nil
}

// Period returns the configured window length.
func (s *SMA) Period() int {
	return s.period
}

// Lookback returns period-1: an SMA over n values needs n inputs before its
// first output.
func (s *SMA) Lookback() int {
	return s.period - 1
}

// Compute evaluates the SMA over the whole input series.
func (s *SMA) Compute(inputs, outputs []Float) (int, error) {
	n, err := batchLen(s.Lookback(), inputs, outputs)
	if err != nil {
		return 0, err
	}
	s.ops.RollingSumInto(outputs[:n], inputs, s.period)
	for i := range outputs[:n] {
		outputs[i] *= s.invPeriod
	}
	return n, nil
}

// ComputeToSlice evaluates the SMA into a freshly allocated slice.
func (s *SMA) ComputeToSlice(inputs []Float) ([]Float, error) {
	return computeToSlice(s, inputs)
}

// Next feeds one input to the streaming state.
func (s *SMA) Next(input Float) (Float, bool) {
	if old, evicted := s.ring.Push(input); evicted {
		s.sum = s.sum - old + input
	} else {
		s.sum += input
	}
	if !s.ring.Full() {
		return 0, false
	}
	return s.sum * s.invPeriod, true
}

// Stream feeds every input to Next and returns the defined values.
func (s *SMA) Stream(inputs []Float) []Float {
	return streamAll(s, inputs)
}

// Reset discards the streaming history.
func (s *SMA) Reset() {
	s.ring.Reset()
	s.sum = 0
}

package ta_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ta "github.com/tphakala/go-ta"
	"github.com/tphakala/go-ta/internal/testutil"
)

// indicatorConstructors covers every indicator in the library; the shared
// contract tests below run against each of them.
var indicatorConstructors = map[string]func(period int) (ta.Indicator, error){
	"SMA": func(p int) (ta.Indicator, error) { return ta.NewSMA(p) },
	"EMA": func(p int) (ta.Indicator, error) { return ta.NewEMA(p) },
	"WMA": func(p int) (ta.Indicator, error) { return ta.NewWMA(p) },
}

var equivalencePeriods = []int{1, 2, 3, 5, 8, 21}

// TestBatchStreamingEquivalence feeds the same series through Compute and
// through repeated Next calls and requires matching output sequences.
func TestBatchStreamingEquivalence(t *testing.T) {
	for name, newIndicator := range indicatorConstructors {
		for _, period := range equivalencePeriods {
			t.Run(fmt.Sprintf("%s/period=%d", name, period), func(t *testing.T) {
				inputs := testutil.Series(uint64(period), 128)

				batch, err := newIndicator(period)
				require.NoError(t, err)
				want, err := batch.ComputeToSlice(inputs)
				require.NoError(t, err)

				streaming, err := newIndicator(period)
				require.NoError(t, err)
				got := streaming.Stream(inputs)

				testutil.AssertSlicesEqualRel(t, want, got, testutil.RelTolerance)
			})
		}
	}
}

// TestStreamAfterResetMatchesFresh verifies Reset returns an instance to
// its just-constructed behavior.
func TestStreamAfterResetMatchesFresh(t *testing.T) {
	for name, newIndicator := range indicatorConstructors {
		t.Run(name, func(t *testing.T) {
			inputs := testutil.Series(5, 64)

			ind, err := newIndicator(7)
			require.NoError(t, err)
			first := ind.Stream(inputs)

			ind.Reset()
			second := ind.Stream(inputs)

			assert.Equal(t, first, second, "post-reset stream differs from first run")
		})
	}
}

// TestWarmUpLength verifies the streaming state machine: no output for the
// first Lookback() inputs, exactly one output per input afterwards.
func TestWarmUpLength(t *testing.T) {
	for name, newIndicator := range indicatorConstructors {
		for _, period := range equivalencePeriods {
			t.Run(fmt.Sprintf("%s/period=%d", name, period), func(t *testing.T) {
				ind, err := newIndicator(period)
				require.NoError(t, err)

				inputs := testutil.Series(9, 40)
				for i, v := range inputs {
					_, ok := ind.Next(v)
					if i < ind.Lookback() {
						assert.False(t, ok, "input %d emitted during warm-up", i)
					} else {
						assert.True(t, ok, "input %d emitted nothing after warm-up", i)
					}
				}
			})
		}
	}
}

// TestComputeToSliceDelegates verifies both batch entry points share one
// code path and produce identical values.
func TestComputeToSliceDelegates(t *testing.T) {
	for name, newIndicator := range indicatorConstructors {
		t.Run(name, func(t *testing.T) {
			inputs := testutil.Series(31, 90)

			ind, err := newIndicator(10)
			require.NoError(t, err)

			alloc, err := ind.ComputeToSlice(inputs)
			require.NoError(t, err)

			outputs := make([]ta.Float, len(inputs))
			n, err := ind.Compute(inputs, outputs)
			require.NoError(t, err)

			assert.Equal(t, outputs[:n], alloc)
		})
	}
}

// TestComputeLeavesStreamingStateAlone interleaves a batch call into a
// streaming sequence and requires the stream to be unaffected.
func TestComputeLeavesStreamingStateAlone(t *testing.T) {
	for name, newIndicator := range indicatorConstructors {
		t.Run(name, func(t *testing.T) {
			inputs := testutil.Series(77, 60)

			reference, err := newIndicator(6)
			require.NoError(t, err)
			want := reference.Stream(inputs)

			ind, err := newIndicator(6)
			require.NoError(t, err)
			got := ind.Stream(inputs[:30])
			_, err = ind.ComputeToSlice(inputs)
			require.NoError(t, err)
			got = append(got, ind.Stream(inputs[30:])...)

			assert.Equal(t, want, got, "batch call disturbed streaming state")
		})
	}
}

// TestComputeRepeatable verifies batch evaluation touches no mutable state:
// the same call twice yields the same output.
func TestComputeRepeatable(t *testing.T) {
	for name, newIndicator := range indicatorConstructors {
		t.Run(name, func(t *testing.T) {
			inputs := testutil.Series(3, 100)

			ind, err := newIndicator(9)
			require.NoError(t, err)

			first, err := ind.ComputeToSlice(inputs)
			require.NoError(t, err)
			second, err := ind.ComputeToSlice(inputs)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

// TestConcurrentCompute runs batch evaluation from many goroutines against
// one shared instance with disjoint buffers.
func TestConcurrentCompute(t *testing.T) {
	inputs := testutil.Series(123, 500)
	ind, err := ta.NewSMA(14)
	require.NoError(t, err)

	want, err := ind.ComputeToSlice(inputs)
	require.NoError(t, err)

	const goroutines = 8
	results := make([][]ta.Float, goroutines)
	done := make(chan int, goroutines)
	for g := 0; g < goroutines; g++ {
		go func(g int) {
			out := make([]ta.Float, len(inputs))
			n, err := ind.Compute(inputs, out)
			if err == nil {
				results[g] = out[:n]
			}
			done <- g
		}(g)
	}
	for i := 0; i < goroutines; i++ {
		<-done
	}
	for g, got := range results {
		assert.Equal(t, want, got, "goroutine %d", g)
	}
}

package ta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ta "github.com/tphakala/go-ta"
	"github.com/tphakala/go-ta/internal/testutil"
)

func TestEMAKnownValues(t *testing.T) {
	// period 3: alpha = 0.5, seed = mean(1,2,3) = 2, then
	// 0.5*4 + 0.5*2 = 3 and 0.5*5 + 0.5*3 = 4.
	ema, err := ta.NewEMA(3)
	require.NoError(t, err)

	out, err := ema.ComputeToSlice([]ta.Float{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, []ta.Float{2, 3, 4}, out)
}

func TestEMAStreamingKnownValues(t *testing.T) {
	ema, err := ta.NewEMA(3)
	require.NoError(t, err)

	_, ok := ema.Next(1)
	assert.False(t, ok)
	_, ok = ema.Next(2)
	assert.False(t, ok)

	v, ok := ema.Next(3)
	assert.True(t, ok)
	assert.Equal(t, ta.Float(2), v)

	v, ok = ema.Next(4)
	assert.True(t, ok)
	assert.Equal(t, ta.Float(3), v)

	v, ok = ema.Next(5)
	assert.True(t, ok)
	assert.Equal(t, ta.Float(4), v)
}

func TestEMAInvalidPeriod(t *testing.T) {
	_, err := ta.NewEMA(0)
	require.ErrorIs(t, err, ta.ErrInvalidConfig)
}

func TestEMAErrors(t *testing.T) {
	ema, err := ta.NewEMA(5)
	require.NoError(t, err)

	_, err = ema.Compute([]ta.Float{1, 2, 3}, make([]ta.Float, 8))
	require.ErrorIs(t, err, ta.ErrInsufficientData)

	inputs := testutil.Series(1, 10)
	_, err = ema.Compute(inputs, make([]ta.Float, 2))
	require.ErrorIs(t, err, ta.ErrBufferTooSmall)
}

func TestEMAConvergesTowardConstant(t *testing.T) {
	// Feeding a constant after arbitrary history must pull the average
	// toward that constant.
	ema, err := ta.NewEMA(4)
	require.NoError(t, err)

	ema.Stream(testutil.Series(2, 20))
	var last ta.Float
	for i := 0; i < 200; i++ {
		last, _ = ema.Next(50)
	}
	testutil.AssertEqualRel(t, 50, last, 1e-6)
}

func TestEMAPeriodOne(t *testing.T) {
	// alpha = 1: the EMA tracks the input exactly.
	ema, err := ta.NewEMA(1)
	require.NoError(t, err)

	out, err := ema.ComputeToSlice([]ta.Float{3, 1, 4})
	require.NoError(t, err)
	assert.Equal(t, []ta.Float{3, 1, 4}, out)
}

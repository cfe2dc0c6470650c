package ta

import (
	"fmt"

	"github.com/tphakala/go-ta/internal/fp"
	"github.com/tphakala/go-ta/internal/kernels"
)

// Sum returns the total of all elements. The empty slice sums to 0.
func Sum(data []Float) Float {
	return kernels.Active().Sum(data)
}

// DotProduct returns the element-wise product sum of a and b. It fails with
// ErrLengthMismatch when the operands have different lengths.
func DotProduct(a, b []Float) (Float, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: len(a)=%d, len(b)=%d", ErrLengthMismatch, len(a), len(b))
	}
	return kernels.Active().DotProduct(a, b), nil
}

// RollingWindowSum returns the sums of every consecutive window of the
// given size, len(data)-window+1 values in total. It fails with
// ErrInvalidConfig when window is 0 or exceeds len(data).
//
// The result is maintained incrementally, adding the entering element and
// subtracting the leaving one per position, so the cost is O(len(data))
// regardless of the window size.
func RollingWindowSum(data []Float, window int) ([]Float, error) {
	if err := checkWindow(window, len(data)); err != nil {
		return nil, err
	}
	dst := make([]Float, len(data)-window+1)
	kernels.Active().RollingSumInto(dst, data, window)
	return dst, nil
}

// RollingWindowSumInto is the zero-allocation form of [RollingWindowSum].
// It writes len(data)-window+1 values into dst and returns the count
// written, failing with ErrBufferTooSmall when dst is undersized.
func RollingWindowSumInto(dst, data []Float, window int) (int, error) {
	if err := checkWindow(window, len(data)); err != nil {
		return 0, err
	}
	n := len(data) - window + 1
	if len(dst) < n {
		return 0, fmt.Errorf("%w: need %d slots, have %d", ErrBufferTooSmall, n, len(dst))
	}
	kernels.Active().RollingSumInto(dst[:n], data, window)
	return n, nil
}

func checkWindow(window, dataLen int) error {
	if window < 1 {
		return fmt.Errorf("%w: window must be at least 1, got %d", ErrInvalidConfig, window)
	}
	if window > dataLen {
		return fmt.Errorf("%w: window %d exceeds data length %d", ErrInvalidConfig, window, dataLen)
	}
	return nil
}

// Info describes the kernel binding active in this process.
type Info struct {
	// Kernel is the conventional tier name ("scalar", "avx2", ...).
	Kernel string

	// Lanes is the vector block width of the selected tier.
	Lanes int

	// FloatBits is the element width compiled into this build (32 or 64).
	FloatBits int
}

// GetInfo reports which kernel tier is bound. The first call may trigger
// dispatch construction; the binding never changes afterwards.
func GetInfo() Info {
	t := kernels.Active()
	return Info{
		Kernel:    t.Name,
		Lanes:     t.Lanes,
		FloatBits: fp.Bits,
	}
}

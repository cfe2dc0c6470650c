package ta

import "errors"

// Common errors returned by kernels and indicators. All failures are
// returned as ordinary values; nothing in the core panics on the hot path.
// Capability detection and dispatch construction cannot fail and therefore
// carry no error.
var (
	// ErrInvalidConfig indicates an invalid indicator or kernel parameter,
	// such as a zero-length window. Rejected before any data flows.
	ErrInvalidConfig = errors.New("invalid indicator configuration")

	// ErrInsufficientData indicates fewer inputs than the indicator's
	// lookback requires. Recoverable: the caller simply has not
	// accumulated enough history yet.
	ErrInsufficientData = errors.New("insufficient input data")

	// ErrBufferTooSmall indicates a caller-supplied output buffer that
	// cannot hold all produced values. Output is never silently truncated.
	ErrBufferTooSmall = errors.New("output buffer too small")

	// ErrLengthMismatch indicates dot product operands of unequal length.
	ErrLengthMismatch = errors.New("operand lengths do not match")
)

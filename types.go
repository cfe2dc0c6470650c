package ta

import "github.com/tphakala/go-ta/internal/fp"

// Float is the numeric element type used by every kernel and indicator.
// It is float64 in the default build and float32 when built with the
// ta_float32 tag. Exactly one width is active per build; widths are never
// mixed.
type Float = fp.Float

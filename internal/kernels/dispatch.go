package kernels

import (
	"sync"

	"github.com/tphakala/go-ta/internal/cpu"
)

var (
	dispatchOnce sync.Once
	active       *Table
)

// Active returns the dispatch table for this process. The first caller
// triggers capability detection and table construction; concurrent first
// callers observe exactly one construction and the same table. Every later
// call is a synchronization-free pointer load. Construction cannot fail:
// the scalar tier is always registered.
func Active() *Table {
	dispatchOnce.Do(buildActive)
	return active
}

func buildActive() {
	level := cpu.Detect()

	var best *Entry
	for i := range registry {
		e := &registry[i]
		if e.Level > level {
			continue
		}
		if best == nil || e.Level > best.Level {
			best = e
		}
	}

	active = &Table{
		Name:           best.Name,
		Level:          best.Level,
		Lanes:          best.Level.Lanes(),
		Sum:            best.Sum,
		DotProduct:     best.DotProduct,
		RollingSumInto: best.RollingSumInto,
	}
}

// Command ta-info reports the kernel tier selected on this host and
// compares its throughput against the scalar baseline.
package main

import (
	"flag"
	"fmt"
	"math"
	"time"

	ta "github.com/tphakala/go-ta"
	"github.com/tphakala/go-ta/internal/fp"
	"github.com/tphakala/go-ta/internal/kernels"
)

const defaultSamples = 100_000

func main() {
	var (
		samples = flag.Int("samples", defaultSamples, "Series length for the throughput comparison")
		iters   = flag.Int("iters", 200, "Iterations per kernel")
	)
	flag.Parse()

	info := ta.GetInfo()
	fmt.Printf("Dispatch:\n")
	fmt.Printf("  Kernel: %s\n", info.Kernel)
	fmt.Printf("  Lanes:  %d\n", info.Lanes)
	fmt.Printf("  Float:  %d-bit\n", info.FloatBits)

	fmt.Printf("\nRegistered kernel sets:\n")
	for _, e := range kernels.Entries() {
		fmt.Printf("  %-8s (lanes %d)\n", e.Name, e.Level.Lanes())
	}

	data := testSeries(*samples)
	fmt.Printf("\nSum throughput over %d samples:\n", *samples)
	for _, e := range kernels.Entries() {
		elapsed := timeSum(e.Sum, data, *iters)
		perCall := elapsed / time.Duration(*iters)
		fmt.Printf("  %-8s %10v/call  (%.1f Melem/s)\n",
			e.Name, perCall, float64(*samples)/perCall.Seconds()/1e6)
	}
}

func testSeries(n int) []fp.Float {
	data := make([]fp.Float, n)
	for i := range data {
		data[i] = fp.Float(math.Sin(2 * math.Pi * float64(i) / 100))
	}
	return data
}

var sink fp.Float

func timeSum(sum kernels.SumFunc, data []fp.Float, iters int) time.Duration {
	start := time.Now()
	for i := 0; i < iters; i++ {
		sink += sum(data)
	}
	return time.Since(start)
}

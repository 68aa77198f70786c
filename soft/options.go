package soft

import "runtime"

// Threshold is the bandwidth below which the drivers always run
// serially: at small B the per-task Wigner matrices are too cheap to pay
// the fork-join overhead.
const Threshold = 20

// MaxThreads returns the default advisory worker count — the runtime's
// parallelism target, never less than 1.
func MaxThreads() int {
	if n := runtime.GOMAXPROCS(0); n > 1 {
		return n
	}

	return 1
}

// Options configures a transform driver call.
//
// Fields:
//   - Threads — advisory upper bound on worker goroutines for the Wigner
//     stage and the layer-wise FFT. Values below 2 (and any bandwidth
//     below Threshold) run the enumeration serially. The output is
//     identical for every value: tasks write disjoint cells and perform
//     no reductions.
type Options struct {
	Threads int
}

// DefaultOptions returns production-safe defaults: Threads = MaxThreads().
func DefaultOptions() Options {
	return Options{Threads: MaxThreads()}
}

// clampThreads resolves the advisory thread count to at least 1.
func clampThreads(t int) int {
	if t < 1 {
		return 1
	}

	return t
}

package grb

import (
	"sort"
	"sync"

	"github.com/grb-ml/grb/internal/ops"
	"github.com/grb-ml/grb/internal/parallel"
)

// execConfig is the process-wide kernel configuration. It is resolved
// once (either the default, or a single Configure call before any
// operation runs) and treated as immutable afterwards.
var (
	execConfig = parallel.DefaultConfig()
	execOnce   sync.Once
)

// Configure sets the parallel execution configuration for all multiply
// kernels. It may be called at most once, before any operation runs;
// a second call panics. Concurrent re-initialization is a programmer
// error, not a recoverable condition.
func Configure(cfg parallel.Config) {
	done := false
	execOnce.Do(func() {
		execConfig = cfg
		done = true
	})
	if !done {
		panic("grb: Configure called more than once")
	}
}

// sortedFromMap converts a scatter accumulator into sorted parallel
// index/value slices.
func sortedFromMap[T ops.Value](acc map[int]T) ([]int, []T) {
	ix := make([]int, 0, len(acc))
	for i := range acc {
		ix = append(ix, i)
	}
	sort.Ints(ix)
	vals := make([]T, len(ix))
	for k, i := range ix {
		vals[k] = acc[i]
	}
	return ix, vals
}

// Package parallel provides goroutine fan-out helpers for chunked array
// evaluation.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Number of worker goroutines to use.
	MinWork    int  // Minimum items before fanning out to goroutines.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinWork:    1024,
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is
// below the configured minimum.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < 2 || n < cfg.MinWork {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	span := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, 1)

	for start := 0; start < n; start += span {
		end := min(start+span, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// ForChunks partitions [0, n) into contiguous ranges of at most chunkSize
// elements and executes f(start, end) for each range, one goroutine per
// range when parallelism is worthwhile. The total element count n, not the
// range count, decides the sequential fallback.
func ForChunks(n, chunkSize int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	if chunkSize <= 0 || chunkSize >= n {
		f(0, n)
		return
	}

	if !cfg.Enabled || n < cfg.MinWork {
		for start := 0; start < n; start += chunkSize {
			f(start, min(start+chunkSize, n))
		}
		return
	}

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}

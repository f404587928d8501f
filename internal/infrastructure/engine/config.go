// Package engine compiles recipe batches into catalogs.
package engine

import (
	"runtime"
)

// MinConcurrentRows is the minimum number of concurrent row compilations,
// ensuring reasonable parallelism even on single-core systems.
const MinConcurrentRows = 2

// BuildConfig controls how a batch of rows is compiled.
type BuildConfig struct {
	MaxConcurrentRows int
	Parallel          bool
}

// DefaultBuildConfig returns sensible defaults for parallel compilation.
func DefaultBuildConfig() BuildConfig {
	maxRows := runtime.NumCPU()
	if maxRows < MinConcurrentRows {
		maxRows = MinConcurrentRows
	}

	return BuildConfig{
		MaxConcurrentRows: maxRows,
		Parallel:          true,
	}
}

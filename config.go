// Package rbfnet configuration constants
package rbfnet

import (
	"runtime"

	"github.com/rs/zerolog"
)

// Cache sizes for different levels (in bytes)
const (
	// L1 cache size per core (typical for modern CPUs)
	L1CacheSize = 32 * 1024 // 32KB

	// L2 cache size per core (typical for modern CPUs)
	L2CacheSize = 256 * 1024 // 256KB
)

// Row blocking parameters
const (
	// Bounds for the number of output rows handled by one task
	MinRowBlock = 8
	MaxRowBlock = 1024

	// Every worker should see at least this many blocks so that uneven
	// progress between cores evens out
	DefaultGridMultiplier = 4

	// Bounds for the number of points in one column tile
	MinColumnTile = 16
	MaxColumnTile = 4096
)

// Config controls how an Evaluator schedules work. The zero value is usable;
// DefaultConfig fills in a no-op logger explicitly.
type Config struct {
	// Workers is the size of the worker pool. Values <= 0 mean GOMAXPROCS.
	Workers int

	// RowBlock overrides the number of output rows per task. Values <= 0
	// derive it from the cache constants and D.
	RowBlock int

	// CheckFinite enables the diagnostic scan for NaN/Inf inputs.
	CheckFinite bool

	// Logger receives per-call debug records and rejected preconditions.
	Logger zerolog.Logger

	// Metrics is optional.
	Metrics *Metrics
}

// DefaultConfig returns the configuration used by the package-level functions
func DefaultConfig() Config {
	return Config{
		Logger: zerolog.Nop(),
	}
}

// workers resolves the pool size
func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// RowBlockSize returns the number of output rows per block for points of
// dimension d with elemSize-byte coordinates. The block's own coordinates
// plus its float64 accumulators are sized to half of L2, leaving room for
// the column tile streaming through.
func RowBlockSize(d, elemSize int) int {
	perRow := d*elemSize + 8
	return clamp(L2CacheSize/2/perRow, MinRowBlock, MaxRowBlock)
}

// ColumnTileSize returns the number of points per column tile, sized so the
// tile occupies half of L1.
func ColumnTileSize(d, elemSize int) int {
	return clamp(L1CacheSize/2/(d*elemSize+elemSize), MinColumnTile, MaxColumnTile)
}

// schedule picks the row block for n rows over the given worker count
func schedule(n, d, elemSize, workers, override int) (rowBlock, numBlocks int) {
	if n == 0 {
		return 0, 0
	}
	rowBlock = override
	if rowBlock <= 0 {
		rowBlock = RowBlockSize(d, elemSize)
		if workers > 1 {
			// Shrink blocks for small n so every worker has several
			target := ceilDiv(n, workers*DefaultGridMultiplier)
			if target < rowBlock {
				rowBlock = max(target, MinRowBlock)
			}
		}
	}
	if rowBlock > n {
		rowBlock = n
	}
	return rowBlock, ceilDiv(n, rowBlock)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

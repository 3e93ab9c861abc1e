package rbfnet

import (
	"golang.org/x/sync/errgroup"
)

// forEachBlock calls fn for every block [lo, hi) of rowBlock rows covering
// [0, n), on at most workers goroutines. Blocks are handed out in order as
// workers free up. fn must write only inside its own range; the call returns
// after every block has finished.
func forEachBlock(n, rowBlock, workers int, fn func(lo, hi int)) {
	numBlocks := ceilDiv(n, rowBlock)
	if workers > numBlocks {
		workers = numBlocks
	}

	// Single block or single worker: run on the caller's goroutine
	if workers <= 1 {
		for lo := 0; lo < n; lo += rowBlock {
			fn(lo, min(lo+rowBlock, n))
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += rowBlock {
		hi := min(lo+rowBlock, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	// Blocks never fail; Wait is the join barrier
	_ = g.Wait()
}

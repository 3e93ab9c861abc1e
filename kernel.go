package rbfnet

import (
	"github.com/LynnColeArt/rbfnet/compute"
)

// evalBlock computes out[lo:hi]. The column range is walked tile by tile so
// that one tile of points stays cache resident while every row of the block
// is scored against it.
func evalBlock[T Float](points Matrix[T], weights []T, bandwidth float64, tile, lo, hi int, out []T) {
	acc := make([]float64, hi-lo)
	stride := points.stride()
	n := points.Rows

	for jt := 0; jt < n; jt += tile {
		jhi := min(jt+tile, n)
		cols := points.Data[jt*stride:]
		w := weights[jt:jhi]
		for i := lo; i < hi; i++ {
			acc[i-lo] += compute.GaussianSum(points.Row(i), cols, stride, w, bandwidth)
		}
	}

	for i, v := range acc {
		out[lo+i] = T(v)
	}
}

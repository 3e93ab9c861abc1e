// Package rbfnet reference implementation for verification
package rbfnet

import (
	"math"
)

// Reference contains the simple, obviously correct evaluation used to
// verify the blocked evaluator. It is single threaded, unblocked and does
// not validate its inputs.
type Reference struct{}

// Evaluate computes the network response with a plain double loop over
// packed or strided rows.
func (r Reference) Evaluate(points Points, weights []float64, bandwidth float64) []float64 {
	n := points.Rows
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		xi := points.Row(i)
		sum := 0.0
		for j := 0; j < n; j++ {
			xj := points.Row(j)
			dist := 0.0
			for k := range xi {
				diff := xi[k] - xj[k]
				dist += diff * diff
			}
			sum += weights[j] * math.Exp(-dist/bandwidth)
		}
		out[i] = sum
	}
	return out
}

// Evaluate32 is the single precision reference. It accumulates in float32
// so it also shows how far the float64-accumulating evaluator can drift
// from a naive float32 loop.
func (r Reference) Evaluate32(points Points32, weights []float32, bandwidth float32) []float32 {
	n := points.Rows
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		xi := points.Row(i)
		var sum float32
		for j := 0; j < n; j++ {
			xj := points.Row(j)
			var dist float32
			for k := range xi {
				diff := xi[k] - xj[k]
				dist += diff * diff
			}
			sum += weights[j] * float32(math.Exp(float64(-dist/bandwidth)))
		}
		out[i] = sum
	}
	return out
}

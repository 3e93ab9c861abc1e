// Package rbfnet evaluates Gaussian radial basis function networks.
//
// Given N points in D dimensions, a weight per point and a bandwidth θ, an
// evaluation returns, for every point i,
//
//	out[i] = Σ_j w[j] · exp(-‖p_i − p_j‖² / θ)
//
// summed over all j including i itself. The distance is squared and is not
// scaled by 2; θ divides it directly.
//
// Evaluations are pure: inputs are only read, the output is freshly
// allocated, and nothing is retained between calls, so an Evaluator may be
// used from any number of goroutines.
//
// Example usage:
//
//	pts, _ := rbfnet.NewPoints(2, 1, []float64{0, 1})
//	out, err := rbfnet.Evaluate(pts, []float64{1, 1}, 1.0)
//	// out ≈ [1.3679, 1.3679]
//
// The evaluation is O(N²·D). Output rows are split into blocks that run on a
// bounded pool of goroutines; within a block the points are streamed in
// cache-sized tiles. See Config for the tuning knobs and Reference for the
// unblocked implementation used to verify it.
package rbfnet

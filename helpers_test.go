package rbfnet

import (
	"math/rand/v2"
	"testing"
)

// EvaluateOrFail evaluates and fails the test on error
func EvaluateOrFail(t testing.TB, ev *Evaluator, points Points, weights []float64, bandwidth float64) []float64 {
	t.Helper()
	out, err := ev.Evaluate(points, weights, bandwidth)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	return out
}

// PointsOrFail wraps packed data and fails the test if the shape is wrong
func PointsOrFail(t testing.TB, rows, cols int, data []float64) Points {
	t.Helper()
	p, err := NewPoints(rows, cols, data)
	if err != nil {
		t.Fatalf("NewPoints(%d, %d) failed: %v", rows, cols, err)
	}
	return p
}

// randomInputs draws coordinates in [-1, 1) and weights in [0, 1)
func randomInputs(rng *rand.Rand, n, d int) (Points, []float64) {
	data := make([]float64, n*d)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = rng.Float64()
	}
	return Points{Data: data, Rows: n, Cols: d, Stride: d}, weights
}

func newTestRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0x5eed))
}

// toFloat32 narrows packed double precision inputs
func toFloat32(points Points, weights []float64) (Points32, []float32) {
	data := make([]float32, points.Rows*points.Cols)
	for i := 0; i < points.Rows; i++ {
		for k, v := range points.Row(i) {
			data[i*points.Cols+k] = float32(v)
		}
	}
	w := make([]float32, len(weights))
	for i, v := range weights {
		w[i] = float32(v)
	}
	return Points32{Data: data, Rows: points.Rows, Cols: points.Cols, Stride: points.Cols}, w
}

package rbfnet

import (
	"math"
	"sync"
	"testing"
)

// TestConcurrentEvaluations shares one evaluator between many callers, each
// with its own inputs, while every call also runs its own worker pool
func TestConcurrentEvaluations(t *testing.T) {
	ev := NewEvaluator(Config{Workers: 4, RowBlock: 16})

	const callers = 12
	var wg sync.WaitGroup
	for c := 0; c < callers; c++ {
		points, weights := randomInputs(newTestRNG(uint64(100+c)), 50+c*13, 1+c%6)
		bandwidth := 0.5 + float64(c)
		want := Reference{}.Evaluate(points, weights, bandwidth)

		wg.Add(1)
		go func() {
			defer wg.Done()
			for iter := 0; iter < 5; iter++ {
				got, err := ev.Evaluate(points, weights, bandwidth)
				if err != nil {
					t.Errorf("caller %d: %v", c, err)
					return
				}
				if res := VerifyArray(want, got, KernelTolerance()); !res.IsAcceptable() {
					t.Errorf("caller %d iteration %d:\n%s", c, iter, res)
					return
				}
			}
		}()
	}
	wg.Wait()
}

// TestInputsUnchanged checks that an evaluation only reads its inputs
func TestInputsUnchanged(t *testing.T) {
	points, weights := randomInputs(newTestRNG(8), 300, 7)
	dataCopy := append([]float64(nil), points.Data...)
	weightsCopy := append([]float64(nil), weights...)

	first := EvaluateOrFail(t, NewEvaluator(Config{Workers: 6}), points, weights, 1.25)
	second := EvaluateOrFail(t, NewEvaluator(Config{Workers: 6}), points, weights, 1.25)

	for i := range dataCopy {
		if math.Float64bits(dataCopy[i]) != math.Float64bits(points.Data[i]) {
			t.Fatalf("point data modified at %d", i)
		}
	}
	for i := range weightsCopy {
		if weightsCopy[i] != weights[i] {
			t.Fatalf("weight modified at %d", i)
		}
	}

	// Deterministic for a fixed configuration, and never aliased
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("repeat evaluation differs at %d: %v vs %v", i, first[i], second[i])
		}
	}
	first[0] = math.NaN()
	if math.IsNaN(second[0]) {
		t.Fatal("outputs share storage")
	}
}

// TestExtremeCoordinates uses widely separated clusters so most kernel
// values underflow while in-cluster ones do not
func TestExtremeCoordinates(t *testing.T) {
	const n = 40
	data := make([]float64, n*2)
	weights := make([]float64, n)
	for i := 0; i < n; i++ {
		cluster := float64(i % 4)
		data[2*i] = cluster * 1e6
		data[2*i+1] = float64(i) * 1e-3
		weights[i] = 1
	}
	points := PointsOrFail(t, n, 2, data)

	got := EvaluateOrFail(t, NewEvaluator(Config{Workers: 3, RowBlock: 7}), points, weights, 1)
	want := Reference{}.Evaluate(points, weights, 1)
	if res := VerifyArray(want, got, KernelTolerance()); !res.IsAcceptable() {
		t.Errorf("clustered inputs:\n%s", res)
	}
	for i, v := range got {
		// Ten points per cluster, all within 0.04 of each other
		if v < 9.9 || v > 10 {
			t.Errorf("out[%d] = %v, want about 10", i, v)
		}
	}
}

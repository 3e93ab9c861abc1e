package rbfnet

import (
	"fmt"
	"math"
)

// validate runs every precondition of an evaluation. It never touches the
// output and runs before any work is dispatched.
func validate[T Float](op string, points Matrix[T], weights []T, bandwidth T, checkFinite bool) error {
	if err := points.validate(op); err != nil {
		return err
	}
	if points.Rows != len(weights) {
		return NewDimensionMismatchError(op,
			fmt.Sprintf("point matrix has %d rows but weight vector has %d entries", points.Rows, len(weights)))
	}
	b := float64(bandwidth)
	if math.IsNaN(b) || math.IsInf(b, 0) || b <= 0 {
		return NewDomainError(op, fmt.Sprintf("bandwidth must be finite and positive, got %v", b))
	}
	if checkFinite {
		return checkFiniteInputs(op, points, weights)
	}
	return nil
}

// checkFiniteInputs reports the first NaN or Inf among coordinates, then weights
func checkFiniteInputs[T Float](op string, points Matrix[T], weights []T) error {
	for i := 0; i < points.Rows; i++ {
		for k, v := range points.Row(i) {
			if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
				return NewNumericAnomalyError(op,
					fmt.Sprintf("point %d coordinate %d is %v", i, k, f),
					AnomalyLocation{Input: "points", Row: i, Col: k, Value: f})
			}
		}
	}
	for j, v := range weights {
		if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
			return NewNumericAnomalyError(op,
				fmt.Sprintf("weight %d is %v", j, f),
				AnomalyLocation{Input: "weights", Row: j, Col: -1, Value: f})
		}
	}
	return nil
}

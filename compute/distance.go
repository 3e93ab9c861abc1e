// Package compute holds the inner loops of the kernel evaluator.
//
// All kernels take row slices of equal length, never allocate and contain
// no data-dependent branches, so the Go compiler can keep the partial sums
// in registers. Single precision inputs are widened to float64 before
// subtraction.
package compute

// Float is the set of element types the kernels accept.
type Float interface {
	~float32 | ~float64
}

// shortRow is the longest row handled by the straight loop
const shortRow = 4

// SquaredDistance returns Σ (a[k]-b[k])² over len(a) coordinates.
// b must be at least as long as a.
func SquaredDistance[T Float](a, b []T) float64 {
	b = b[:len(a)]
	switch {
	case len(a) <= shortRow:
		return squaredDistanceGeneric(a, b)
	case HasAVX512Support:
		return squaredDistance8(a, b)
	default:
		return squaredDistance4(a, b)
	}
}

func squaredDistanceGeneric[T Float](a, b []T) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}

func squaredDistance4[T Float](a, b []T) float64 {
	var s0, s1, s2, s3 float64
	n := len(a) &^ 3
	for i := 0; i < n; i += 4 {
		d0 := float64(a[i]) - float64(b[i])
		d1 := float64(a[i+1]) - float64(b[i+1])
		d2 := float64(a[i+2]) - float64(b[i+2])
		d3 := float64(a[i+3]) - float64(b[i+3])
		s0 += d0 * d0
		s1 += d1 * d1
		s2 += d2 * d2
		s3 += d3 * d3
	}
	for i := n; i < len(a); i++ {
		d := float64(a[i]) - float64(b[i])
		s0 += d * d
	}
	return (s0 + s1) + (s2 + s3)
}

func squaredDistance8[T Float](a, b []T) float64 {
	var s0, s1, s2, s3, s4, s5, s6, s7 float64
	n := len(a) &^ 7
	for i := 0; i < n; i += 8 {
		d0 := float64(a[i]) - float64(b[i])
		d1 := float64(a[i+1]) - float64(b[i+1])
		d2 := float64(a[i+2]) - float64(b[i+2])
		d3 := float64(a[i+3]) - float64(b[i+3])
		d4 := float64(a[i+4]) - float64(b[i+4])
		d5 := float64(a[i+5]) - float64(b[i+5])
		d6 := float64(a[i+6]) - float64(b[i+6])
		d7 := float64(a[i+7]) - float64(b[i+7])
		s0 += d0 * d0
		s1 += d1 * d1
		s2 += d2 * d2
		s3 += d3 * d3
		s4 += d4 * d4
		s5 += d5 * d5
		s6 += d6 * d6
		s7 += d7 * d7
	}
	for i := n; i < len(a); i++ {
		d := float64(a[i]) - float64(b[i])
		s0 += d * d
	}
	return ((s0 + s1) + (s2 + s3)) + ((s4 + s5) + (s6 + s7))
}

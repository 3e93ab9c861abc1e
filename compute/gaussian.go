package compute

import "math"

// GaussianSum returns Σ_j w[j]·exp(-‖x − p_j‖² / bandwidth) where p_j is the
// point at data[j*stride : j*stride+len(x)] for j in [0, len(w)).
//
// Two pairs are processed per iteration into separate sums so the two
// exponentials are independent.
func GaussianSum[T Float](x, data []T, stride int, w []T, bandwidth float64) float64 {
	d := len(x)
	var s0, s1 float64
	j := 0
	for ; j+1 < len(w); j += 2 {
		off := j * stride
		r0 := SquaredDistance(x, data[off:off+d])
		r1 := SquaredDistance(x, data[off+stride:off+stride+d])
		s0 += float64(w[j]) * math.Exp(-r0/bandwidth)
		s1 += float64(w[j+1]) * math.Exp(-r1/bandwidth)
	}
	if j < len(w) {
		off := j * stride
		r := SquaredDistance(x, data[off:off+d])
		s0 += float64(w[j]) * math.Exp(-r/bandwidth)
	}
	return s0 + s1
}

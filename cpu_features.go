package rbfnet

import (
	"github.com/LynnColeArt/rbfnet/compute"
)

// CPUFeatures returns the SIMD extensions detected at startup
func CPUFeatures() compute.Features {
	return compute.DetectFeatures()
}

// DistanceKernel names the squared-distance kernel used for rows longer
// than four coordinates
func DistanceKernel() string {
	if compute.HasAVX512Support {
		return "unroll8"
	}
	return "unroll4"
}

// GetCPUInfo returns a string describing available CPU features
func GetCPUInfo() string {
	return "CPU features: " + CPUFeatures().String() + " (distance kernel " + DistanceKernel() + ")"
}

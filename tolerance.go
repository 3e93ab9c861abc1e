// Package rbfnet tolerance-based verification for floating-point comparisons
package rbfnet

import (
	"fmt"
	"math"
	"runtime"
)

// ToleranceConfig defines tolerance parameters for floating-point comparison.
// Two values are equal if any of the absolute, relative or ULP tests pass.
type ToleranceConfig struct {
	// AbsTol is the absolute tolerance for values near zero
	AbsTol float64

	// RelTol is the relative tolerance as a fraction of the larger value
	RelTol float64

	// ULPTol is the maximum allowed difference in ULPs (Units in Last Place)
	ULPTol int64

	// CheckNaN determines if NaN values should be considered equal
	CheckNaN bool

	// CheckInf determines if Inf values should be considered equal
	CheckInf bool
}

// DefaultTolerance is the double precision tolerance the blocked evaluator
// must meet against the reference
func DefaultTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   1e-12,
		RelTol:   1e-9,
		ULPTol:   4,
		CheckNaN: true,
		CheckInf: true,
	}
}

// Float32Tolerance is for single precision outputs
func Float32Tolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   1e-6,
		RelTol:   1e-5,
		ULPTol:   16,
		CheckNaN: true,
		CheckInf: true,
	}
}

// ArchToleranceConfig provides architecture-specific tolerance configurations
type ArchToleranceConfig struct {
	// Base tolerance for all architectures
	Base ToleranceConfig

	// Architecture-specific overrides
	AMD64   *ToleranceConfig
	ARM64   *ToleranceConfig
	Generic *ToleranceConfig
}

// GetArchTolerance returns the appropriate tolerance for the current architecture
func GetArchTolerance(config ArchToleranceConfig) ToleranceConfig {
	return getArchTolerance(config, runtime.GOARCH)
}

func getArchTolerance(config ArchToleranceConfig, arch string) ToleranceConfig {
	base := config.Base

	switch arch {
	case "amd64":
		if config.AMD64 != nil {
			return mergeTolerances(base, *config.AMD64)
		}
	case "arm64", "arm64be":
		if config.ARM64 != nil {
			return mergeTolerances(base, *config.ARM64)
		}
	default:
		if config.Generic != nil {
			return mergeTolerances(base, *config.Generic)
		}
	}

	return base
}

// KernelTolerance is DefaultTolerance widened where the compiler fuses
// multiply-add, which changes rounding of the distance sums
func KernelTolerance() ToleranceConfig {
	fused := &ToleranceConfig{ULPTol: 64}
	return GetArchTolerance(ArchToleranceConfig{
		Base:    DefaultTolerance(),
		ARM64:   fused,
		Generic: fused,
	})
}

// mergeTolerances applies overrides to base tolerance
func mergeTolerances(base, override ToleranceConfig) ToleranceConfig {
	result := base

	// Only override non-zero values
	if override.AbsTol > 0 {
		result.AbsTol = override.AbsTol
	}
	if override.RelTol > 0 {
		result.RelTol = override.RelTol
	}
	if override.ULPTol > 0 {
		result.ULPTol = override.ULPTol
	}
	return result
}

// NearEqual checks if two float64 values are equal within tolerance
func NearEqual(a, b float64, tol ToleranceConfig) bool {
	return nearEqual(a, b, tol, ULPDiff(a, b))
}

// Float32NearEqual checks if two float32 values are equal within tolerance
func Float32NearEqual(a, b float32, tol ToleranceConfig) bool {
	return nearEqual(float64(a), float64(b), tol, Float32ULPDiff(a, b))
}

func nearEqual(a, b float64, tol ToleranceConfig, ulps int64) bool {
	// Handle special cases
	if math.IsNaN(a) || math.IsNaN(b) {
		return tol.CheckNaN && math.IsNaN(a) && math.IsNaN(b)
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return tol.CheckInf && a == b
	}

	// Check if exactly equal (handles ±0)
	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	if diff <= tol.AbsTol {
		return true
	}

	larger := math.Max(math.Abs(a), math.Abs(b))
	if diff <= larger*tol.RelTol {
		return true
	}

	return tol.ULPTol > 0 && ulps <= tol.ULPTol
}

// ULPDiff computes the difference in ULPs between two float64 values.
// Values of different sign return math.MaxInt64.
func ULPDiff(a, b float64) int64 {
	aBits := math.Float64bits(a)
	bBits := math.Float64bits(b)

	if (aBits^bBits)&(1<<63) != 0 {
		return math.MaxInt64
	}
	if aBits > bBits {
		return int64(aBits - bBits)
	}
	return int64(bBits - aBits)
}

// Float32ULPDiff computes the difference in ULPs between two float32 values
func Float32ULPDiff(a, b float32) int64 {
	aBits := math.Float32bits(a)
	bBits := math.Float32bits(b)

	if (aBits^bBits)&0x80000000 != 0 {
		return math.MaxInt64
	}
	if aBits > bBits {
		return int64(aBits - bBits)
	}
	return int64(bBits - aBits)
}

// VerificationResult summarizes an element-wise comparison
type VerificationResult struct {
	MaxAbsError float64
	MaxRelError float64
	MaxULPError int64
	NumErrors   int
	TotalItems  int
	FirstError  int // Index of first error, -1 if none
}

// VerifyArray compares two float64 arrays and returns detailed results
func VerifyArray(expected, actual []float64, tol ToleranceConfig) VerificationResult {
	return verifyArray(expected, actual, tol, ULPDiff)
}

// VerifyArray32 compares two float32 arrays and returns detailed results
func VerifyArray32(expected, actual []float32, tol ToleranceConfig) VerificationResult {
	return verifyArray(expected, actual, tol, Float32ULPDiff)
}

func verifyArray[T Float](expected, actual []T, tol ToleranceConfig, ulpDiff func(a, b T) int64) VerificationResult {
	result := VerificationResult{
		TotalItems: len(expected),
		FirstError: -1,
	}

	if len(expected) != len(actual) {
		result.NumErrors = len(expected)
		result.FirstError = min(len(expected), len(actual))
		return result
	}

	for i := range expected {
		e, a := float64(expected[i]), float64(actual[i])
		ulps := ulpDiff(expected[i], actual[i])
		if nearEqual(e, a, tol, ulps) {
			continue
		}

		result.NumErrors++
		if result.FirstError == -1 {
			result.FirstError = i
		}

		absDiff := math.Abs(e - a)
		if absDiff > result.MaxAbsError {
			result.MaxAbsError = absDiff
		}
		// Relative error (avoid division by zero)
		if e != 0 {
			if relDiff := absDiff / math.Abs(e); relDiff > result.MaxRelError {
				result.MaxRelError = relDiff
			}
		}
		if ulps > result.MaxULPError {
			result.MaxULPError = ulps
		}
	}

	return result
}

// IsAcceptable returns true if the verification result is within tolerance
func (r VerificationResult) IsAcceptable() bool {
	return r.NumErrors == 0
}

// String formats the verification result for display
func (r VerificationResult) String() string {
	if r.NumErrors == 0 {
		return "PASS: All values match within tolerance"
	}

	errorRate := float64(r.NumErrors) / float64(max(r.TotalItems, 1)) * 100
	return fmt.Sprintf("FAIL: %d/%d values differ (%.2f%%)\n"+
		"  Max absolute error: %e\n"+
		"  Max relative error: %e\n"+
		"  Max ULP difference: %d\n"+
		"  First error at index: %d",
		r.NumErrors, r.TotalItems, errorRate,
		r.MaxAbsError, r.MaxRelError, r.MaxULPError,
		r.FirstError)
}

// Verifier runs an evaluator and the reference on the same inputs
type Verifier struct {
	Evaluator *Evaluator
	Tolerance ToleranceConfig
}

// Verify evaluates points with both implementations and compares the
// outputs. Precondition failures of the evaluator are returned as errors.
func (v Verifier) Verify(points Points, weights []float64, bandwidth float64) (VerificationResult, error) {
	ev := v.Evaluator
	if ev == nil {
		ev = defaultEvaluator
	}
	actual, err := ev.Evaluate(points, weights, bandwidth)
	if err != nil {
		return VerificationResult{}, err
	}
	expected := Reference{}.Evaluate(points, weights, bandwidth)
	return VerifyArray(expected, actual, v.Tolerance), nil
}

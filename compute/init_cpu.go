package compute

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// HasAVX512Support selects the 8-way distance kernel. Set at package load time.
var HasAVX512Support bool

// Features lists the SIMD extensions relevant to kernel selection
type Features struct {
	Arch      string
	HasSSE4   bool
	HasAVX    bool
	HasAVX2   bool
	HasFMA    bool
	HasAVX512 bool
	HasNEON   bool
}

// DetectFeatures queries the running CPU
func DetectFeatures() Features {
	return Features{
		Arch:      runtime.GOARCH,
		HasSSE4:   cpu.X86.HasSSE41 || cpu.X86.HasSSE42,
		HasAVX:    cpu.X86.HasAVX,
		HasAVX2:   cpu.X86.HasAVX2,
		HasFMA:    cpu.X86.HasFMA,
		HasAVX512: cpu.X86.HasAVX512F,
		HasNEON:   cpu.ARM64.HasASIMD,
	}
}

// InitCPUFeatures detects CPU features and selects the distance kernel
func InitCPUFeatures() {
	SetCPUFeatures(DetectFeatures().HasAVX512)
}

// SetCPUFeatures overrides kernel selection. Tests use it to force a path.
func SetCPUFeatures(hasAVX512 bool) {
	HasAVX512Support = hasAVX512
}

// Lanes returns the number of independent partial sums the distance kernel
// keeps for long rows
func Lanes() int {
	if HasAVX512Support {
		return 8
	}
	return 4
}

// String describes the detected features
func (f Features) String() string {
	var names []string
	add := func(ok bool, name string) {
		if ok {
			names = append(names, name)
		}
	}
	add(f.HasSSE4, "SSE4")
	add(f.HasAVX, "AVX")
	add(f.HasAVX2, "AVX2")
	add(f.HasFMA, "FMA")
	add(f.HasAVX512, "AVX512F")
	add(f.HasNEON, "NEON")

	if len(names) == 0 {
		return f.Arch + ": no SIMD extensions detected"
	}
	return f.Arch + ": " + strings.Join(names, ", ")
}

func init() {
	InitCPUFeatures()
}

package cpu

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features describes the host the benchmark ran on.
//
// The complex arithmetic itself is scalar Go; the flags are reported so that
// timings from different machines can be told apart.
type Features struct {
	Architecture string
	OS           string
	HasSSE2      bool
	HasAVX       bool
	HasAVX2      bool
	HasFMA       bool
	HasAVX512    bool
	HasNEON      bool
}

// Detect reports the CPU features of the current process.
func Detect() Features {
	return Features{
		Architecture: runtime.GOARCH,
		OS:           runtime.GOOS,
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasFMA:       cpu.X86.HasFMA || runtime.GOARCH == "arm64",
		HasAVX512:    cpu.X86.HasAVX512F,
		HasNEON:      cpu.ARM64.HasASIMD,
	}
}

// Flags returns the names of the detected features, e.g. ["sse2", "avx2"].
func (f Features) Flags() []string {
	var flags []string

	add := func(ok bool, name string) {
		if ok {
			flags = append(flags, name)
		}
	}

	add(f.HasSSE2, "sse2")
	add(f.HasAVX, "avx")
	add(f.HasAVX2, "avx2")
	add(f.HasFMA, "fma")
	add(f.HasAVX512, "avx512")
	add(f.HasNEON, "neon")

	return flags
}

// String renders the features as "os/arch [flag flag ...]".
func (f Features) String() string {
	flags := f.Flags()
	if len(flags) == 0 {
		return f.OS + "/" + f.Architecture + " [generic]"
	}

	return f.OS + "/" + f.Architecture + " [" + strings.Join(flags, " ") + "]"
}

package mct

import "github.com/ajroetker/go-highway/hwy"

// DispatchLevel identifies which kernel set the fixed transforms run on.
type DispatchLevel int

const (
	// DispatchPortable runs the one-sample-per-step reference kernels.
	DispatchPortable DispatchLevel = iota

	// DispatchHighway runs the hwy vector kernels.
	DispatchHighway
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchPortable:
		return "portable"
	case DispatchHighway:
		return "highway"
	default:
		return "unknown"
	}
}

type kernelSet struct {
	level     DispatchLevel
	encodeRCT func(c0, c1, c2 []int32)
	decodeRCT func(c0, c1, c2 []int32)
	encodeICT func(c0, c1, c2 []int32)
	decodeICT func(c0, c1, c2 []float32)
}

var portableKernels = kernelSet{
	level:     DispatchPortable,
	encodeRCT: encodeRCTPortable,
	decodeRCT: decodeRCTPortable,
	encodeICT: encodeICTPortable,
	decodeICT: decodeICTPortable,
}

var highwayKernels = kernelSet{
	level:     DispatchHighway,
	encodeRCT: encodeRCTHwy,
	decodeRCT: decodeRCTHwy,
	encodeICT: encodeICTHwy,
	decodeICT: decodeICTHwy,
}

// kernels is chosen once at package init and never written again.
var kernels = selectKernels(hwy.CurrentLevel())

// CurrentLevel returns the kernel set in use.
func CurrentLevel() DispatchLevel {
	return kernels.level
}

// selectKernels keeps the portable kernels when hwy has no SIMD target,
// either because the CPU or build lacks one or HWY_NO_SIMD is set. The
// scalar hwy fallback only emulates lanes and is slower than the portable
// loops.
func selectKernels(level hwy.DispatchLevel) kernelSet {
	if level == hwy.DispatchScalar {
		return portableKernels
	}
	return highwayKernels
}

// Package simdops provides SIMD-accelerated slice operations for float64
// sample buffers, used when moving audio between planar and interleaved
// layouts.
package simdops

import (
	"github.com/tphakala/simd/cpu"
	"github.com/tphakala/simd/f64"
)

// Ops provides SIMD-accelerated float64 operations.
type Ops struct {
	// Interleave2 interleaves two slices: dst[0]=a[0], dst[1]=b[0], dst[2]=a[1], ...
	Interleave2 func(dst, a, b []float64)

	// Sum returns the sum of all elements.
	Sum func(a []float64) float64

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)
}

var ops64 = Ops{
	Interleave2: f64.Interleave2,
	Sum:         f64.Sum,
	Scale:       f64.Scale,
}

// Float64Ops returns the float64 SIMD operations.
func Float64Ops() *Ops {
	return &ops64
}

// Interleave writes planar channels into dst as frames. Two channels go
// through Interleave2; other counts use a scalar loop. dst must hold
// len(channels)*frames samples where frames is the shortest channel length.
func Interleave(dst []float64, channels [][]float64) {
	switch len(channels) {
	case 0:
		return
	case 1:
		copy(dst, channels[0])
		return
	case 2:
		n := min(len(channels[0]), len(channels[1]))
		ops64.Interleave2(dst[:2*n], channels[0][:n], channels[1][:n])
		return
	}

	frames := len(channels[0])
	for _, ch := range channels[1:] {
		frames = min(frames, len(ch))
	}

	stride := len(channels)
	for c, ch := range channels {
		for i := range frames {
			dst[i*stride+c] = ch[i]
		}
	}
}

// Mean returns the arithmetic mean of a, or 0 for an empty slice.
func Mean(a []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return ops64.Sum(a) / float64(len(a))
}

// CPUInfo describes the SIMD features detected on this machine.
func CPUInfo() string {
	return cpu.Info()
}

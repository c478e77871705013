package engine

import (
	"fmt"
	"math"
)

// Method selects an interpolation kernel.
type Method int

const (
	// MethodLinear joins neighbouring points with straight segments.
	MethodLinear Method = iota

	// MethodCosine blends neighbouring points with a cosine ease. It matches
	// linear only at the segment ends and at the midpoint.
	MethodCosine

	// MethodCatmullRom evaluates a uniform Catmull-Rom cubic over a 4-point
	// stencil.
	MethodCatmullRom
)

// String returns the canonical method name.
func (m Method) String() string {
	switch m {
	case MethodLinear:
		return "linear"
	case MethodCosine:
		return "cosine"
	case MethodCatmullRom:
		return "catmullrom"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Kernel evaluates a Between bracket [lo, hi] of p at q.
type Kernel func(p Points, lo, hi int, q float64) float64

// KernelFor resolves the kernel for m once, so evaluation never switches on
// the method per query.
func KernelFor(m Method) (Kernel, error) {
	switch m {
	case MethodLinear:
		return linearKernel, nil
	case MethodCosine:
		return cosineKernel, nil
	case MethodCatmullRom:
		return catmullRomKernel, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, m)
	}
}

// segmentFraction returns the normalized position of q within [X[lo], X[hi]].
func segmentFraction(p Points, lo, hi int, q float64) float64 {
	return (q - p.X[lo]) / (p.X[hi] - p.X[lo])
}

func lerp(y0, y1, t float64) float64 {
	return y0 + t*(y1-y0)
}

func linearKernel(p Points, lo, hi int, q float64) float64 {
	t := segmentFraction(p, lo, hi, q)
	return lerp(p.Y[lo], p.Y[hi], t)
}

func cosineKernel(p Points, lo, hi int, q float64) float64 {
	t := segmentFraction(p, lo, hi, q)
	eased := (1 - math.Cos(math.Pi*t)) * cosineEaseHalf
	return lerp(p.Y[lo], p.Y[hi], eased)
}

// catmullRomKernel reads the stencil lo-1, lo, hi, hi+1. Missing neighbours at
// the domain edges are synthesised by extending the nearest real segment,
// which keeps the edge tangent equal to that segment's slope.
func catmullRomKernel(p Points, lo, hi int, q float64) float64 {
	t := segmentFraction(p, lo, hi, q)
	y1, y2 := p.Y[lo], p.Y[hi]

	var y0, y3 float64
	if lo > 0 {
		y0 = p.Y[lo-1]
	} else {
		y0 = extrapolationFactor*y1 - y2
	}
	if hi+1 < len(p.Y) {
		y3 = p.Y[hi+1]
	} else {
		y3 = extrapolationFactor*y2 - y1
	}

	return CatmullRom(t, y0, y1, y2, y3)
}

// CatmullRom evaluates the uniform Catmull-Rom cubic through p1 (t=0) and
// p2 (t=1), using p0 and p3 for the end tangents.
// Uses the form: y = ((a*t + b)*t + c)*t + d
func CatmullRom(t, p0, p1, p2, p3 float64) float64 {
	coefA := -p0 + catmullRomCoef3*p1 - catmullRomCoef3*p2 + p3
	coefB := catmullRomCoef2*p0 - catmullRomCoef5*p1 + catmullRomCoef4*p2 - p3
	coefC := -p0 + p2
	coefD := catmullRomCoef2 * p1

	return catmullRomScale * (((coefA*t+coefB)*t+coefC)*t + coefD)
}

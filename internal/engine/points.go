// Package engine implements the interpolation core: control-point
// normalization, bracket lookup, the per-method kernels and the evaluator
// that ties them together.
package engine

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Points is a normalized control-point set.
// X is strictly increasing and finite; Y may hold any value.
type Points struct {
	X []float64
	Y []float64
}

// Len returns the number of control points.
func (p Points) Len() int {
	return len(p.X)
}

// Normalize builds a Points set from parallel x/y sequences.
//
// Points are stable-sorted by x. When several points share an x, the one
// that appears first in the input wins. The inputs are never modified.
func Normalize(x, y []float64) (Points, error) {
	if len(x) != len(y) {
		return Points{}, fmt.Errorf("%w: x has %d values, y has %d", ErrShape, len(x), len(y))
	}

	for i, v := range x {
		if !isFinite(v) {
			return Points{}, fmt.Errorf("%w: x[%d] is %v", ErrInvalidValue, i, v)
		}
	}

	n := len(x)
	if n == 0 {
		return Points{}, nil
	}

	// Fast path: already strictly increasing, just copy.
	if isStrictlyIncreasing(x) {
		p := Points{
			X: make([]float64, n),
			Y: make([]float64, n),
		}
		copy(p.X, x)
		copy(p.Y, y)
		return p, nil
	}

	sorted := make([]float64, n)
	copy(sorted, x)
	inds := make([]int, n)
	floats.ArgsortStable(sorted, inds)

	p := Points{
		X: make([]float64, 0, n),
		Y: make([]float64, 0, n),
	}
	for i, v := range sorted {
		// The stable sort keeps equal keys in input order, so the first
		// element of every run is the first occurrence.
		if i > 0 && v == sorted[i-1] {
			continue
		}
		p.X = append(p.X, v)
		p.Y = append(p.Y, y[inds[i]])
	}

	return p, nil
}

func isStrictlyIncreasing(x []float64) bool {
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return false
		}
	}
	return true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

package splines

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Linspace returns num evenly spaced values from start to stop, inclusive.
// num == 1 yields [start]; num <= 0 yields an empty slice.
func Linspace(start, stop float64, num int) []float64 {
	switch {
	case num <= 0:
		return []float64{}
	case num < minSpanPoints:
		return []float64{start}
	}
	xs := floats.Span(make([]float64, num), start, stop)
	// Pin the end so a grid ending on a control point is an exact hit.
	xs[num-1] = stop
	return xs
}

// InterpolateLinear is a one-shot Linear interpolation with null fill.
func InterpolateLinear(x, y, xi []float64) (Result, error) {
	return Interpolate(x, y, Config{Method: Linear, Xi: xi})
}

// InterpolateCosine is a one-shot Cosine interpolation with null fill.
func InterpolateCosine(x, y, xi []float64) (Result, error) {
	return Interpolate(x, y, Config{Method: Cosine, Xi: xi})
}

// InterpolateCatmullRom is a one-shot CatmullRom interpolation with null fill.
func InterpolateCatmullRom(x, y, xi []float64) (Result, error) {
	return Interpolate(x, y, Config{Method: CatmullRom, Xi: xi})
}

// InterpolateMethod mirrors the dynamic call surface of scripting hosts:
// the method is given by name and a nil fillValue means null fill.
// An unknown name fails before x and y are looked at.
func InterpolateMethod(method string, x, y, xi []float64, fillValue *float64) (Result, error) {
	m, err := ParseMethod(method)
	if err != nil {
		return Result{}, err
	}

	fill := FillNull()
	if fillValue != nil {
		fill = FillConstant(*fillValue)
	}

	return Interpolate(x, y, Config{Method: m, Fill: fill, Xi: xi})
}

// InterpolateAt evaluates a single query point. ok is false when the result
// is missing.
func InterpolateAt(method Method, x, y []float64, q float64) (v float64, ok bool, err error) {
	res, err := Interpolate(x, y, Config{Method: method, Xi: []float64{q}})
	if err != nil {
		return 0, false, fmt.Errorf("interpolate at %v: %w", q, err)
	}
	v, ok = res.At(0)
	return v, ok, nil
}

package engine

import (
	"fmt"
	"math"
	"runtime"
	"sync"
)

// Fill decides the value emitted for queries outside [X[0], X[n-1]].
// The zero value is the null policy: such queries are reported missing.
type Fill struct {
	value    float64
	constant bool
}

// FillNull returns the null fill policy.
func FillNull() Fill {
	return Fill{}
}

// FillConstant returns a policy that emits v for out-of-domain queries.
func FillConstant(v float64) Fill {
	return Fill{value: v, constant: true}
}

// Constant returns the fill constant and whether one is set.
func (f Fill) Constant() (float64, bool) {
	return f.value, f.constant
}

// Validate checks that a constant fill is finite.
func (f Fill) Validate() error {
	if f.constant && !isFinite(f.value) {
		return fmt.Errorf("%w: fill value %v is not finite", ErrInvalidValue, f.value)
	}
	return nil
}

// String formats the policy for logs.
func (f Fill) String() string {
	if !f.constant {
		return "null"
	}
	return fmt.Sprintf("%g", f.value)
}

// Options tunes how a query sequence is evaluated. The zero value evaluates
// sequentially.
type Options struct {
	// Parallel splits long query sequences into chunks evaluated on separate
	// goroutines. Output is identical to sequential evaluation.
	Parallel bool

	// ChunkSize is the number of queries per goroutine. 0 means DefaultChunkSize.
	ChunkSize int

	// Workers caps concurrent goroutines. 0 means GOMAXPROCS.
	Workers int
}

func (o Options) chunkSize() int {
	if o.ChunkSize > 0 {
		return o.ChunkSize
	}
	return DefaultChunkSize
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Interpolator evaluates queries against one normalized control-point set.
// It is immutable after construction and safe for concurrent use.
type Interpolator struct {
	method Method
	kernel Kernel
	points Points
}

// NewInterpolator resolves the kernel for method and normalizes x/y.
// The method is checked before the control points are looked at.
func NewInterpolator(method Method, x, y []float64) (*Interpolator, error) {
	kernel, err := KernelFor(method)
	if err != nil {
		return nil, err
	}

	points, err := Normalize(x, y)
	if err != nil {
		return nil, err
	}

	return &Interpolator{
		method: method,
		kernel: kernel,
		points: points,
	}, nil
}

// Method returns the interpolation method.
func (in *Interpolator) Method() Method {
	return in.method
}

// Points returns the normalized control points. Callers must not modify them.
func (in *Interpolator) Points() Points {
	return in.points
}

// At evaluates a single query with the null fill policy.
// The boolean is false when the result is missing.
func (in *Interpolator) At(q float64) (float64, bool) {
	return in.evaluate(q, FillNull())
}

// Evaluate evaluates every query in xi, in order, and returns the values with
// a validity mask of the same length. Missing entries hold NaN.
func (in *Interpolator) Evaluate(xi []float64, fill Fill, opts Options) (values []float64, valid []bool) {
	values = make([]float64, len(xi))
	valid = make([]bool, len(xi))
	in.EvaluateInto(values, valid, xi, fill, opts)
	return values, valid
}

// EvaluateInto is like Evaluate but writes into caller-provided slices,
// which must both have len(xi) elements.
func (in *Interpolator) EvaluateInto(values []float64, valid []bool, xi []float64, fill Fill, opts Options) {
	n := len(xi)
	chunk := opts.chunkSize()

	if !opts.Parallel || n < chunk*minParallelChunks {
		in.evaluateRange(values, valid, xi, fill, 0, n)
		return
	}

	// Each goroutine owns the slots [start, end); no two chunks overlap.
	var wg sync.WaitGroup
	sem := make(chan struct{}, opts.workers())

	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)

		wg.Add(1)
		sem <- struct{}{}
		go func(start, end int) {
			defer wg.Done()
			defer func() { <-sem }()

			in.evaluateRange(values, valid, xi, fill, start, end)
		}(start, end)
	}

	wg.Wait()
}

func (in *Interpolator) evaluateRange(values []float64, valid []bool, xi []float64, fill Fill, start, end int) {
	for i := start; i < end; i++ {
		values[i], valid[i] = in.evaluate(xi[i], fill)
	}
}

// evaluate resolves one query. Out-of-domain and NaN queries take the fill
// policy; a non-finite kernel result means the stencil touched a non-finite
// y and is reported missing.
func (in *Interpolator) evaluate(q float64, fill Fill) (float64, bool) {
	b := Locate(in.points, q)

	var v float64
	switch b.Kind {
	case ExactHit:
		v = in.points.Y[b.Lo]
	case Between:
		v = in.kernel(in.points, b.Lo, b.Hi, q)
	default:
		if fill.constant {
			return fill.value, true
		}
		return math.NaN(), false
	}

	if !isFinite(v) {
		return math.NaN(), false
	}
	return v, true
}

// Interpolate runs one complete call: validate the request, normalize the
// control points once, then evaluate xi. Any error aborts the call before
// output is produced.
func Interpolate(method Method, x, y, xi []float64, fill Fill, opts Options) (values []float64, valid []bool, err error) {
	kernel, err := KernelFor(method)
	if err != nil {
		return nil, nil, err
	}
	if len(x) != len(y) {
		return nil, nil, fmt.Errorf("%w: x has %d values, y has %d", ErrShape, len(x), len(y))
	}
	if err := fill.Validate(); err != nil {
		return nil, nil, err
	}

	points, err := Normalize(x, y)
	if err != nil {
		return nil, nil, err
	}

	in := &Interpolator{method: method, kernel: kernel, points: points}
	values, valid = in.Evaluate(xi, fill, opts)
	return values, valid, nil
}

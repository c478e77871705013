package splines

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-splines/internal/engine"
)

// Method enumerates the interpolation kernels.
type Method int

const (
	// Linear joins neighbouring control points with straight segments.
	Linear Method = iota

	// Cosine blends neighbouring control points with the ease
	// t' = (1 - cos(π·t)) / 2. It is a smoothed linear blend, not a spline.
	Cosine

	// CatmullRom evaluates a uniform Catmull-Rom cubic. At the first and last
	// segments the missing neighbour is extrapolated from the nearest segment.
	CatmullRom
)

// Methods returns every supported method in declaration order.
func Methods() []Method {
	return []Method{Linear, Cosine, CatmullRom}
}

// String returns the canonical method name.
func (m Method) String() string {
	switch m {
	case Linear:
		return methodNameLinear
	case Cosine:
		return methodNameCosine
	case CatmullRom:
		return methodNameCatmullRom
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod converts a method name to a Method. Names must match exactly;
// the empty string selects the default, Linear.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "", methodNameLinear:
		return Linear, nil
	case methodNameCosine:
		return Cosine, nil
	case methodNameCatmullRom:
		return CatmullRom, nil
	default:
		return 0, fmt.Errorf("%w: %q (valid methods are %q, %q and %q)",
			ErrUnknownMethod, name, methodNameLinear, methodNameCosine, methodNameCatmullRom)
	}
}

// methodToEngine converts a Method to engine.Method.
func methodToEngine(m Method) (engine.Method, error) {
	switch m {
	case Linear:
		return engine.MethodLinear, nil
	case Cosine:
		return engine.MethodCosine, nil
	case CatmullRom:
		return engine.MethodCatmullRom, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownMethod, m)
	}
}

// Fill decides the value of queries outside the control points' domain.
// The zero value is FillNull.
type Fill = engine.Fill

// FillNull reports out-of-domain queries as missing.
func FillNull() Fill {
	return engine.FillNull()
}

// FillConstant replaces out-of-domain queries with v. v must be finite.
func FillConstant(v float64) Fill {
	return engine.FillConstant(v)
}

// Common errors returned by the package. Use errors.Is to match them.
var (
	// ErrUnknownMethod indicates a method name or value outside the supported set.
	ErrUnknownMethod = engine.ErrUnknownMethod

	// ErrShape indicates x and y have different lengths.
	ErrShape = engine.ErrShape

	// ErrInvalidValue indicates a non-finite x or fill value.
	ErrInvalidValue = engine.ErrInvalidValue

	// ErrInvalidConfig indicates invalid host-level configuration.
	ErrInvalidConfig = errors.New("invalid interpolation configuration")
)

// Config holds everything one interpolation call needs besides the control
// points. It is passed by value; nothing is captured between calls.
type Config struct {
	// Method selects the interpolation kernel.
	Method Method

	// Fill governs queries outside [min(x), max(x)]. Defaults to FillNull.
	Fill Fill

	// Xi are the query points. Order and duplicates are preserved in the result.
	Xi []float64

	// Parallel evaluates long query sequences in chunks on separate goroutines.
	// The result is identical to sequential evaluation.
	Parallel bool

	// ChunkSize is the number of queries per goroutine when Parallel is set.
	// Set to 0 to use the engine default.
	ChunkSize int
}

// Validate checks the configuration without looking at any control points.
func (c Config) Validate() error {
	if _, err := methodToEngine(c.Method); err != nil {
		return err
	}

	if err := c.Fill.Validate(); err != nil {
		return err
	}

	if c.ChunkSize < 0 {
		return fmt.Errorf("%w: chunk size must not be negative", ErrInvalidConfig)
	}

	return nil
}

func (c Config) engineOptions() engine.Options {
	return engine.Options{
		Parallel:  c.Parallel,
		ChunkSize: c.ChunkSize,
	}
}

// Result is the interpolated output for one query sequence.
// Values and Valid have one entry per query, in query order.
// Missing entries have Valid[i] == false and Values[i] == NaN.
type Result struct {
	Values []float64
	Valid  []bool
}

// missingResult returns a result of n missing values.
func missingResult(n int) Result {
	r := Result{
		Values: make([]float64, n),
		Valid:  make([]bool, n),
	}
	for i := range r.Values {
		r.Values[i] = math.NaN()
	}
	return r
}

// Len returns the number of entries.
func (r Result) Len() int {
	return len(r.Values)
}

// At returns entry i and whether it is present.
func (r Result) At(i int) (float64, bool) {
	return r.Values[i], r.Valid[i]
}

// MissingCount returns the number of missing entries.
func (r Result) MissingCount() int {
	n := 0
	for _, ok := range r.Valid {
		if !ok {
			n++
		}
	}
	return n
}

// Filled returns a copy of Values with missing entries replaced by v.
func (r Result) Filled(v float64) []float64 {
	out := make([]float64, len(r.Values))
	for i, x := range r.Values {
		if r.Valid[i] {
			out[i] = x
		} else {
			out[i] = v
		}
	}
	return out
}

// Interpolate evaluates cfg.Xi against the control points (x, y).
//
// The request is validated first (method, x/y lengths, fill value), then
// the control points are normalized once and every query is evaluated. Any
// error aborts the call and no result is returned.
func Interpolate(x, y []float64, cfg Config) (Result, error) {
	method, err := methodToEngine(cfg.Method)
	if err != nil {
		return Result{}, err
	}

	values, valid, err := engine.Interpolate(method, x, y, cfg.Xi, cfg.Fill, cfg.engineOptions())
	if err != nil {
		return Result{}, err
	}

	return Result{Values: values, Valid: valid}, nil
}

// Interpolator is anything that can run one interpolation call. Hosts pass
// one to NewGroupInterpolator at setup time.
type Interpolator interface {
	Interpolate(x, y []float64, cfg Config) (Result, error)
}

// InterpolatorFunc adapts a function to the Interpolator interface.
type InterpolatorFunc func(x, y []float64, cfg Config) (Result, error)

// Interpolate calls f.
func (f InterpolatorFunc) Interpolate(x, y []float64, cfg Config) (Result, error) {
	return f(x, y, cfg)
}

// NewEngine returns the built-in Interpolator backed by Interpolate.
func NewEngine() Interpolator {
	return InterpolatorFunc(Interpolate)
}

// Curve is a prepared control-point set that can be queried many times.
// Use it when the same group is evaluated against several query sequences.
// A Curve is immutable and safe for concurrent use.
type Curve struct {
	engine *engine.Interpolator
	method Method
}

// NewCurve validates method and normalizes (x, y).
func NewCurve(method Method, x, y []float64) (*Curve, error) {
	m, err := methodToEngine(method)
	if err != nil {
		return nil, err
	}

	in, err := engine.NewInterpolator(m, x, y)
	if err != nil {
		return nil, err
	}

	return &Curve{engine: in, method: method}, nil
}

// Method returns the curve's interpolation method.
func (c *Curve) Method() Method {
	return c.method
}

// Len returns the number of control points left after normalization.
func (c *Curve) Len() int {
	return c.engine.Points().Len()
}

// Domain returns the smallest and largest control point x.
// ok is false for an empty curve.
func (c *Curve) Domain() (lo, hi float64, ok bool) {
	p := c.engine.Points()
	if p.Len() == 0 {
		return 0, 0, false
	}
	return p.X[0], p.X[p.Len()-1], true
}

// At evaluates a single query. ok is false when the value is missing.
func (c *Curve) At(q float64) (v float64, ok bool) {
	return c.engine.At(q)
}

// Evaluate evaluates xi with the given fill policy.
func (c *Curve) Evaluate(xi []float64, fill Fill) (Result, error) {
	if err := fill.Validate(); err != nil {
		return Result{}, err
	}

	values, valid := c.engine.Evaluate(xi, fill, engine.Options{})
	return Result{Values: values, Valid: valid}, nil
}

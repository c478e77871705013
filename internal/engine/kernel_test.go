package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/interp"

	"github.com/tphakala/go-splines/internal/testutil"
)

var zigzag = Points{
	X: []float64{0, 1, 2, 3},
	Y: []float64{0, 1, 0, 1},
}

func TestKernelFor_Unknown(t *testing.T) {
	_, err := KernelFor(Method(99))
	require.ErrorIs(t, err, ErrUnknownMethod)
	assert.Contains(t, err.Error(), "Method(99)")
}

func TestMethod_String(t *testing.T) {
	assert.Equal(t, "linear", MethodLinear.String())
	assert.Equal(t, "cosine", MethodCosine.String())
	assert.Equal(t, "catmullrom", MethodCatmullRom.String())
}

func TestLinearKernel(t *testing.T) {
	assert.Equal(t, 0.5, linearKernel(zigzag, 0, 1, 0.5))
	assert.Equal(t, 0.5, linearKernel(zigzag, 2, 3, 2.5))
	assert.InDelta(t, 0.75, linearKernel(zigzag, 1, 2, 1.25), testutil.DefaultTolerance)
}

func TestCosineKernel(t *testing.T) {
	// Symmetric easing: the midpoint coincides with linear.
	assert.InDelta(t, 0.5, cosineKernel(zigzag, 0, 1, 0.5), testutil.DefaultTolerance)

	want := (1 - math.Cos(math.Pi/4)) / 2
	assert.InDelta(t, want, cosineKernel(zigzag, 0, 1, 0.25), testutil.DefaultTolerance)

	// Eased value lags linear in the first half of a rising segment.
	assert.Less(t, cosineKernel(zigzag, 0, 1, 0.25), linearKernel(zigzag, 0, 1, 0.25))
}

func TestCatmullRomKernel_Interior(t *testing.T) {
	// Segment 1->2 with real neighbours on both sides.
	assert.InDelta(t, 0.5, catmullRomKernel(zigzag, 1, 2, 1.5), testutil.DefaultTolerance)
}

func TestCatmullRomKernel_LeftEdge(t *testing.T) {
	// p0 is synthesised as 2*y[0] - y[1] = -1.
	want := CatmullRom(0.5, -1, 0, 1, 0)
	assert.InDelta(t, 0.625, want, testutil.DefaultTolerance)
	assert.InDelta(t, want, catmullRomKernel(zigzag, 0, 1, 0.5), testutil.DefaultTolerance)
}

func TestCatmullRomKernel_RightEdge(t *testing.T) {
	// p3 is synthesised as 2*y[3] - y[2] = 2.
	want := CatmullRom(0.5, 1, 0, 1, 2)
	assert.InDelta(t, want, catmullRomKernel(zigzag, 2, 3, 2.5), testutil.DefaultTolerance)
}

func TestCatmullRomKernel_TwoPointsIsLinear(t *testing.T) {
	p := Points{X: []float64{0, 4}, Y: []float64{1, 9}}
	for _, q := range []float64{0.5, 1, 2, 3.75} {
		assert.InDelta(t, linearKernel(p, 0, 1, q), catmullRomKernel(p, 0, 1, q), testutil.DefaultTolerance, "q=%v", q)
	}
}

func TestCatmullRomKernel_ReproducesLines(t *testing.T) {
	p := Points{
		X: []float64{0, 1, 2, 3, 4},
		Y: []float64{1, 3, 5, 7, 9},
	}
	for _, q := range []float64{0.3, 1.5, 2.25, 3.9} {
		b := Locate(p, q)
		require.Equal(t, Between, b.Kind)
		assert.InDelta(t, 2*q+1, catmullRomKernel(p, b.Lo, b.Hi, q), testutil.DefaultTolerance, "q=%v", q)
	}
}

func TestCatmullRom_Endpoints(t *testing.T) {
	assert.Equal(t, 3.0, CatmullRom(0, 7, 3, 5, -2))
	assert.InDelta(t, 5.0, CatmullRom(1, 7, 3, 5, -2), testutil.DefaultTolerance)
}

func TestLinearKernel_MatchesGonum(t *testing.T) {
	x, y := testutil.SmoothSamples(50)

	var pl interp.PiecewiseLinear
	require.NoError(t, pl.Fit(x, y))

	p := Points{X: x, Y: y}
	for q := 0.05; q < 49; q += 0.37 {
		b := Locate(p, q)
		if b.Kind != Between {
			continue
		}
		assert.InDelta(t, pl.Predict(q), linearKernel(p, b.Lo, b.Hi, q), testutil.DefaultTolerance, "q=%v", q)
	}
}

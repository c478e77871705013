// Package splines provides grouped 1-D interpolation over tabular data in pure Go.
//
// Each group of rows sharing categorical keys carries control points (x, y)
// that define a function. A query sequence xi is evaluated against that
// function to produce yi, aligned with xi position by position.
//
// # Features
//
//   - Three kernels: [Linear], [Cosine] (eased linear) and [CatmullRom]
//   - Exact hits return the stored y verbatim for every method
//   - Unsorted and duplicated queries are supported; output follows input order
//   - Out-of-domain queries are missing by default or take a constant via [FillConstant]
//   - Non-finite y values poison only the queries whose stencil reads them
//   - Group-parallel evaluation with fail-fast or null-on-error policies
//
// # Quick Start
//
// For a single group:
//
//	res, err := splines.Interpolate(x, y, splines.Config{
//	    Method: splines.CatmullRom,
//	    Xi:     splines.Linspace(0, 10, 101),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i := range res.Len() {
//	    if v, ok := res.At(i); ok {
//	        fmt.Println(v)
//	    }
//	}
//
// For many groups:
//
//	results, err := splines.InterpolateGroups(ctx, groups, cfg, splines.GroupOptions{
//	    Parallel: true,
//	    OnError:  splines.NullOnError,
//	})
//
// # Control Points
//
// Control points are stable-sorted by x before use. When several points share
// the same x, the first one in input order is kept and the rest are ignored.
// A NaN or infinite x is rejected with [ErrInvalidValue]; x and y of different
// lengths are rejected with [ErrShape].
//
// # Catmull-Rom Edges
//
// The first and last segments lack one neighbour. The missing point is
// synthesised by extending the nearest segment in a straight line, so the
// curve leaves the domain edge with that segment's slope. With two control
// points CatmullRom is identical to Linear.
//
// # Thread Safety
//
// [Interpolate] and [Curve] hold no shared mutable state and may be called
// from many goroutines. [GroupInterpolator.Run] may evaluate groups
// concurrently; each group writes only its own result slot.
package splines

package splines_test

import (
	"context"
	"fmt"
	"log"

	splines "github.com/tphakala/go-splines"
)

func ExampleInterpolate() {
	x := []float64{0, 1, 2, 3}
	y := []float64{0, 1, 0, 1}

	res, err := splines.Interpolate(x, y, splines.Config{
		Method: splines.Linear,
		Xi:     []float64{0.5, 2.5, 4},
	})
	if err != nil {
		log.Fatal(err)
	}

	for i := range res.Len() {
		if v, ok := res.At(i); ok {
			fmt.Printf("%.2f\n", v)
		} else {
			fmt.Println("null")
		}
	}
	// Output:
	// 0.50
	// 0.50
	// null
}

func ExampleFillConstant() {
	res, err := splines.Interpolate(
		[]float64{0, 10}, []float64{0, 100},
		splines.Config{Xi: []float64{-5, 5, 15}, Fill: splines.FillConstant(-1)},
	)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Values)
	// Output: [-1 50 -1]
}

func ExampleInterpolateGroups() {
	groups := []splines.Group{
		{Key: []string{"a"}, X: []float64{0, 1, 2}, Y: []float64{0, 10, 20}},
		{Key: []string{"b"}, X: []float64{0, 2}, Y: []float64{5, 5}},
	}

	results, err := splines.InterpolateGroups(context.Background(), groups,
		splines.Config{Method: splines.CatmullRom, Xi: []float64{1, 1.5}},
		splines.GroupOptions{Parallel: true})
	if err != nil {
		log.Fatal(err)
	}

	for _, r := range results {
		fmt.Println(r.Key, r.Result.Values)
	}
	// Output:
	// [a] [10 15]
	// [b] [5 5]
}

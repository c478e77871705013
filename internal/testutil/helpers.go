// Package testutil provides reusable test helper functions for interpolation tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance   = 1e-10
	ClosenessTolerance = 1e-6
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertStrictlyIncreasing verifies that every element is greater than the previous one.
func AssertStrictlyIncreasing(t *testing.T, s []float64) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return assert.Fail(t, "not strictly increasing",
				"s[%d]=%f <= s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertAligned verifies that a result has one value and one validity flag per query.
func AssertAligned(t *testing.T, xi, values []float64, valid []bool) bool {
	t.Helper()
	return assert.Len(t, values, len(xi), "values not aligned with queries") &&
		assert.Len(t, valid, len(xi), "validity mask not aligned with queries")
}

// AssertMissingCount verifies how many entries of a validity mask are false.
func AssertMissingCount(t *testing.T, valid []bool, expected int, msgAndArgs ...any) bool {
	t.Helper()
	missing := 0
	for _, ok := range valid {
		if !ok {
			missing++
		}
	}
	return assert.Equal(t, expected, missing, msgAndArgs...)
}

// AssertDuplicatesConsistent verifies that equal queries produced equal results.
func AssertDuplicatesConsistent(t *testing.T, xi, values []float64, valid []bool) bool {
	t.Helper()
	first := make(map[float64]int, len(xi))
	for i, q := range xi {
		if math.IsNaN(q) {
			continue
		}
		j, seen := first[q]
		if !seen {
			first[q] = i
			continue
		}
		if valid[i] != valid[j] {
			return assert.Fail(t, "duplicate query validity differs",
				"xi[%d]=xi[%d]=%v: valid %v vs %v", i, j, q, valid[i], valid[j])
		}
		if valid[i] && values[i] != values[j] {
			return assert.Fail(t, "duplicate query value differs",
				"xi[%d]=xi[%d]=%v: %v vs %v", i, j, q, values[i], values[j])
		}
	}
	return true
}

// AssertInDeltaValid verifies that every valid value is within tolerance of expected.
func AssertInDeltaValid(t *testing.T, expected, values []float64, valid []bool, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, values, len(expected)) {
		return false
	}
	for i := range expected {
		if !valid[i] {
			return assert.Fail(t, "unexpected missing value", "index %d is missing", i)
		}
		if !assert.InDelta(t, expected[i], values[i], tolerance, "index %d", i) {
			return false
		}
	}
	return true
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}

// SmoothSamples returns n points of cos(x/20) sampled at x = 0, 1, ..., n-1.
func SmoothSamples(n int) (x, y []float64) {
	x = make([]float64, n)
	y = make([]float64, n)
	for i := range n {
		x[i] = float64(i)
		y[i] = math.Cos(x[i] / 20)
	}
	return x, y
}

// Package testutil provides tolerance helpers and deterministic signals
// shared by the package tests.
package testutil

import (
	"math"
	"testing"

	algofft "github.com/cwbudde/algo-fft"
)

// Float mirrors the root package's scalar constraint. Defined via
// algo-fft rather than the root package so that test files compiled
// into package mathx can import these helpers without a cycle.
type Float = algofft.Float

// NearlyEqual reports whether a and b are equal within eps, absolutely
// for small magnitudes and relatively for large ones.
func NearlyEqual[T Float](a, b, eps T) bool {
	diff := math.Abs(float64(a) - float64(b))
	if diff <= float64(eps) {
		return true
	}

	largest := math.Max(math.Abs(float64(a)), math.Abs(float64(b)))
	if largest == 0 {
		return false
	}

	return diff/largest <= float64(eps)
}

// RequireNear fails t unless got and want are equal within eps.
func RequireNear[T Float](t *testing.T, got, want, eps T) {
	t.Helper()

	if !NearlyEqual(got, want, eps) {
		t.Fatalf("got %v, want %v (eps %v)", got, want, eps)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

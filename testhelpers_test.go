package algocomplex

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	m "github.com/cwbudde/algo-complex/internal/math"
)

// Shared test helper functions used across multiple test files

// approxComplex compares values component-wise within an absolute tolerance.
func approxComplex(tol float64) cmp.Option {
	return cmp.Comparer(func(a, b Complex) bool {
		return m.ApproxEqual(a.re, b.re, tol) && m.ApproxEqual(a.im, b.im, tol)
	})
}

func assertApproxComplex(t *testing.T, got, want Complex, tol float64, format string, args ...any) {
	t.Helper()

	if !cmp.Equal(got, want, approxComplex(tol)) {
		diff := m.MaxAbsDiff(got.re, got.im, want.re, want.im)
		t.Errorf(format+": got %v want %v (diff=%v)", append(args, got, want, diff)...)
	}
}

// randomComplex returns n values with components uniform in [-10, 10).
func randomComplex(n int, seed int64) []Complex {
	rng := rand.New(rand.NewSource(seed))

	values := make([]Complex, n)
	for i := range values {
		values[i] = New(rng.Float64()*20-10, rng.Float64()*20-10)
	}

	return values
}

// quadrantSamples covers the four quadrants and both axes in each direction.
var quadrantSamples = []struct {
	name string
	z    Complex
}{
	{"first quadrant", New(3, 4)},
	{"second quadrant", New(-2.5, 0.75)},
	{"third quadrant", New(-1, -7)},
	{"fourth quadrant", New(0.125, -9)},
	{"positive real axis", New(2, 0)},
	{"negative real axis", New(-2, 0)},
	{"positive imaginary axis", New(0, 3)},
	{"negative imaginary axis", New(0, -3)},
	{"small magnitude", New(1e-8, -3e-9)},
}

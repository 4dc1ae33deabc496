package math

import "math"

// ApproxEqual reports whether |a-b| <= tol. Two NaNs are never equal.
func ApproxEqual(a, b, tol float64) bool {
	if a == b {
		return true
	}

	return math.Abs(a-b) <= tol
}

// MaxAbsDiff returns the larger of the two component differences between
// (ar, ai) and (br, bi). NaN in any component yields NaN.
func MaxAbsDiff(ar, ai, br, bi float64) float64 {
	dr := math.Abs(ar - br)
	di := math.Abs(ai - bi)

	if math.IsNaN(dr) || math.IsNaN(di) {
		return math.NaN()
	}

	return math.Max(dr, di)
}

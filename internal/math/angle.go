package math

import "math"

// NormalizeAngle maps theta into the principal interval (-π, π].
// NaN and infinite angles are returned as NaN.
func NormalizeAngle(theta float64) float64 {
	if math.IsNaN(theta) || math.IsInf(theta, 0) {
		return math.NaN()
	}

	if theta > -math.Pi && theta <= math.Pi {
		return theta
	}

	theta = math.Mod(theta, TwoPi)

	switch {
	case theta <= -math.Pi:
		theta += TwoPi
	case theta > math.Pi:
		theta -= TwoPi
	}

	return theta
}

// QuadrantArg returns the angle of (x, y) from the positive x axis in (-π, π].
//
// The angle is computed as atan(y/x) corrected by ±π in the left half-plane.
// The imaginary axis is handled without forming the ratio, and the whole
// negative real axis (including y == -0) maps to π.
func QuadrantArg(x, y float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsNaN(y):
		return math.NaN()
	case math.IsInf(x, 0) || math.IsInf(y, 0):
		theta := math.Atan2(y, x)
		if theta == -math.Pi {
			theta = math.Pi
		}

		return theta
	case x == 0:
		switch {
		case y > 0:
			return HalfPi
		case y < 0:
			return -HalfPi
		default:
			return 0
		}
	}

	theta := math.Atan(y / x)
	if x < 0 {
		if y < 0 {
			theta -= math.Pi
			// Below the cut by less than an ulp of π; stay inside the interval.
			if theta <= -math.Pi {
				theta = math.Nextafter(-math.Pi, 0)
			}
		} else {
			theta += math.Pi
		}
	}

	return theta
}

package math

import "math"

// Angle constants used by the branch-cut handling.

// TwoPi is 2π with full float64 precision.
const TwoPi = 2.0 * math.Pi

// HalfPi is π/2, the argument of the positive imaginary axis.
const HalfPi = math.Pi / 2

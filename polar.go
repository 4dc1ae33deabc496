package algocomplex

import (
	"math"
	"strconv"

	m "github.com/cwbudde/algo-complex/internal/math"
)

// Polar is the magnitude/angle form of a complex number, R·exp(i·Theta).
//
// Polar values produced by this package have R >= 0 and Theta in (-π, π].
// The form is meant as an intermediate for powers and roots; it is not a
// storage format.
type Polar struct {
	// R is the magnitude |z|.
	R float64
	// Theta is the angle from the positive real axis.
	Theta float64
}

// NewPolar returns the polar value r·exp(i·theta) with theta normalised
// into (-π, π]. A negative r is made positive by rotating theta by π.
func NewPolar(r, theta float64) Polar {
	if r < 0 {
		r = -r
		theta += math.Pi
	}

	return Polar{R: r, Theta: m.NormalizeAngle(theta)}
}

// Polar returns the polar form {Abs(z), Arg(z)}.
func (z Complex) Polar() Polar {
	return Polar{R: z.Abs(), Theta: z.Arg()}
}

// Cartesian converts p back to re + im·i form: (R·cos Θ, R·sin Θ).
func (p Polar) Cartesian() Complex {
	sin, cos := math.Sincos(p.Theta)

	return Complex{re: p.R * cos, im: p.R * sin}
}

// String renders p as "<r>*exp(I*<theta>)".
func (p Polar) String() string {
	return formatFloat(p.R) + "*exp(I*" + formatFloat(p.Theta) + ")"
}

// formatFloat renders x in shortest form. +Inf prints as "Inf" so that
// the separator alone carries the sign of an infinite imaginary part.
func formatFloat(x float64) string {
	if math.IsInf(x, 1) {
		return "Inf"
	}

	return strconv.FormatFloat(x, 'g', -1, 64)
}

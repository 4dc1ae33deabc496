package algocomplex

import (
	"fmt"
	"math"

	m "github.com/cwbudde/algo-complex/internal/math"
)

// Complex is a complex number re + im·i with float64 components.
//
// Complex is a value type: every operation returns a new value and never
// modifies its receiver. Two values are equal under == when both components
// are equal; a NaN component never compares equal, not even to itself.
type Complex struct {
	re float64
	im float64
}

// I is the imaginary unit, I·I == -1.
var I = Complex{re: 0, im: 1}

// New returns re + im·i.
func New(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// Real returns the complex value x + 0·i.
func Real(x float64) Complex {
	return Complex{re: x}
}

// FromComplex128 converts a builtin complex128.
func FromComplex128(c complex128) Complex {
	return Complex{re: real(c), im: imag(c)}
}

// Complex128 converts z to the builtin complex128 type.
func (z Complex) Complex128() complex128 {
	return complex(z.re, z.im)
}

// Re returns the real part of z.
func (z Complex) Re() float64 { return z.re }

// Im returns the imaginary part of z.
func (z Complex) Im() float64 { return z.im }

// Equal reports whether z and w have equal components. It is the same
// comparison as z == w.
func (z Complex) Equal(w Complex) bool {
	return z == w
}

// IsZero reports whether both components are zero (of either sign).
func (z Complex) IsZero() bool {
	return z.re == 0 && z.im == 0
}

// IsNaN reports whether either component is NaN and neither is infinite.
func (z Complex) IsNaN() bool {
	switch {
	case math.IsInf(z.re, 0) || math.IsInf(z.im, 0):
		return false
	case math.IsNaN(z.re) || math.IsNaN(z.im):
		return true
	}

	return false
}

// IsInf reports whether either component is infinite.
func (z Complex) IsInf() bool {
	return math.IsInf(z.re, 0) || math.IsInf(z.im, 0)
}

// Err returns nil when both components are finite. Otherwise it returns an
// error wrapping ErrNaN or ErrInf; a NaN component takes precedence.
func (z Complex) Err() error {
	switch {
	case math.IsNaN(z.re) || math.IsNaN(z.im):
		return fmt.Errorf("%w: %v", ErrNaN, z.GoString())
	case z.IsInf():
		return fmt.Errorf("%w: %v", ErrInf, z.GoString())
	}

	return nil
}

// Conj returns the complex conjugate re - im·i.
func (z Complex) Conj() Complex {
	return Complex{re: z.re, im: -z.im}
}

// Bar is an alias for Conj, after the overbar notation z̄.
func (z Complex) Bar() Complex {
	return z.Conj()
}

// Neg returns -z.
func (z Complex) Neg() Complex {
	return Complex{re: -z.re, im: -z.im}
}

// Abs returns the magnitude sqrt(re² + im²). It is never negative, returns
// +0 for the zero value and NaN if either component is NaN. The computation
// avoids intermediate overflow.
func (z Complex) Abs() float64 {
	if math.IsNaN(z.re) || math.IsNaN(z.im) {
		return math.NaN()
	}

	return math.Hypot(z.re, z.im)
}

// Norm returns re² + im², the squared magnitude.
func (z Complex) Norm() float64 {
	return z.re*z.re + z.im*z.im
}

// Arg returns the angle of z from the positive real axis, in (-π, π].
//
// Arg(0) is 0. Values on the negative real axis, including those with a -0
// imaginary part, return π.
func (z Complex) Arg() float64 {
	return m.QuadrantArg(z.re, z.im)
}

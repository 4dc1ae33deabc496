package algocomplex

import "math"

// Pow returns z raised to the integer power n by repeated multiplication.
//
// For n >= 1 it performs n-1 complex multiplications, so Pow(1) returns z
// unchanged and the result matches multiplying z by itself by hand. Pow(0)
// is 1 for every z, including zero. For n < 0 the result is 1 / z^|n|.
//
// Cost is O(|n|); PowPolar trades a little accuracy for constant cost.
func (z Complex) Pow(n int) Complex {
	switch {
	case n == 0:
		return Complex{re: 1}
	case n < 0:
		return RealDiv(1, z.powLoop(uint(-(n+1))+1))
	}

	return z.powLoop(uint(n))
}

func (z Complex) powLoop(n uint) Complex {
	a := z
	for i := uint(1); i < n; i++ {
		a = a.Mul(z)
	}

	return a
}

// PowPolar returns z^n computed in polar form: the magnitude is raised to n
// and the angle multiplied by n before converting back.
//
// The number of transcendental calls does not depend on n, so it is much
// cheaper than Pow for large exponents. The trigonometric round trip costs
// accuracy: results differ from Pow by a few ulps of |z|^n, and powers of
// values with integral components are generally not integral.
func (z Complex) PowPolar(n int) Complex {
	p := z.Polar()
	p.R = math.Pow(p.R, float64(n))
	p.Theta *= float64(n)

	return p.Cartesian()
}

// Powi is an alias for PowPolar.
func (z Complex) Powi(n int) Complex {
	return z.PowPolar(n)
}

// Powf returns z raised to the real power x on the principal branch, using
// the polar form. For the zero value it returns 0 when x > 0, 1 when
// x == 0 and +Inf when x < 0.
func (z Complex) Powf(x float64) Complex {
	if z.IsZero() {
		switch {
		case x == 0:
			return Complex{re: 1}
		case x > 0:
			return Complex{}
		case x < 0:
			return Complex{re: math.Inf(1)}
		}
	}

	p := z.Polar()
	p.R = math.Pow(p.R, x)
	p.Theta *= x

	return p.Cartesian()
}

// Sqrt returns the principal square root of z, Powf(0.5).
func (z Complex) Sqrt() Complex {
	return z.Powf(0.5)
}

// Exp returns e^z = e^re·(cos im + i·sin im).
//
// Large real parts overflow to ±Inf components, and Inf·0 terms turn into
// NaN, per ordinary floating-point rules. A zero imaginary part is kept as
// is, so Exp of a real value stays real even when e^re overflows.
func (z Complex) Exp() Complex {
	r := math.Exp(z.re)
	if z.im == 0 {
		return Complex{re: r, im: z.im}
	}

	sin, cos := math.Sincos(z.im)

	return Complex{re: r * cos, im: r * sin}
}

// Ln returns the principal natural logarithm ln|z| + i·Arg(z).
//
// Ln of the zero value is (-Inf, 0); it is not trapped.
func (z Complex) Ln() Complex {
	return Complex{re: math.Log(z.Abs()), im: z.Arg()}
}

// Powc returns z raised to the complex power w, Exp(w·Ln(z)), on the
// principal branch of Ln.
//
// For the zero base, Powc returns 1 when w is zero and 0 when re(w) > 0.
// Other exponents of zero produce the NaN or Inf components of the general
// formula.
func (z Complex) Powc(w Complex) Complex {
	if z.IsZero() {
		switch {
		case w.IsZero():
			return Complex{re: 1}
		case w.re > 0:
			return Complex{}
		}
	}

	return w.Mul(z.Ln()).Exp()
}

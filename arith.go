package algocomplex

// Complex-complex operations.

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{re: z.re + w.re, im: z.im + w.im}
}

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{re: z.re - w.re, im: z.im - w.im}
}

// Mul returns z·w using the expansion (ac - bd) + (ad + bc)·i.
func (z Complex) Mul(w Complex) Complex {
	// The conversions round each product and keep the compiler from fusing
	// them, so z.Mul(w) == w.Mul(z) on every architecture.
	return Complex{
		re: float64(z.re*w.re) - float64(z.im*w.im),
		im: float64(z.re*w.im) + float64(z.im*w.re),
	}
}

// Div returns z / w. Numerator and denominator are multiplied by the
// conjugate of w, so the common denominator is re(w)² + im(w)². Dividing by
// the zero value yields NaN or ±Inf components.
func (z Complex) Div(w Complex) Complex {
	d := w.Norm()

	return Complex{
		re: (z.re*w.re + z.im*w.im) / d,
		im: (z.im*w.re - z.re*w.im) / d,
	}
}

// Complex-real operations, complex on the left.

// AddReal returns z + x.
func (z Complex) AddReal(x float64) Complex {
	return Complex{re: z.re + x, im: z.im}
}

// SubReal returns z - x.
func (z Complex) SubReal(x float64) Complex {
	return Complex{re: z.re - x, im: z.im}
}

// Scale returns z·x, scaling both components by x.
func (z Complex) Scale(x float64) Complex {
	return Complex{re: z.re * x, im: z.im * x}
}

// DivReal returns z / x, dividing both components by x.
func (z Complex) DivReal(x float64) Complex {
	return Complex{re: z.re / x, im: z.im / x}
}

// Real-complex operations, real on the left.

// RealAdd returns x + z.
func RealAdd(x float64, z Complex) Complex {
	return Complex{re: x + z.re, im: z.im}
}

// RealSub returns x - z. The imaginary part of the result is -im(z).
func RealSub(x float64, z Complex) Complex {
	return Complex{re: x - z.re, im: -z.im}
}

// RealMul returns x·z.
func RealMul(x float64, z Complex) Complex {
	return Complex{re: x * z.re, im: x * z.im}
}

// RealDiv returns x / z, rationalising the denominator with the conjugate
// of z.
func RealDiv(x float64, z Complex) Complex {
	d := z.Norm()

	return Complex{
		re: (x * z.re) / d,
		im: -(x * z.im) / d,
	}
}

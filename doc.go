// Package algocomplex provides a complex-number value type over float64.
//
// A Complex is an immutable pair (re, im) denoting re + im·i. Values are
// built with New, Real, or by combining a real scalar with the imaginary
// unit I through the arithmetic methods:
//
//	z := algocomplex.I.Scale(4).AddReal(3)          // 3 + 4*I
//	w := algocomplex.RealSub(1, algocomplex.I)      // 1 - 1*I
//
// Go has no operator overloading, so every operand order has its own
// function: methods for complex-complex and complex-real operands, and the
// Real* free functions for real-complex operands (RealAdd, RealSub, RealMul,
// RealDiv). Each order keeps its exact semantics; RealSub(x, z) negates the
// imaginary part of z.
//
// # Branch cut
//
// Arg, Polar, Ln and Powc share one convention: angles lie in (-π, π]. The
// whole negative real axis, including values whose imaginary part is -0,
// has argument π.
//
// # Floating-point failures
//
// No operation returns an error. Division by the zero value, the logarithm
// of zero and overflow all yield NaN or ±Inf components following IEEE-754,
// and NaN propagates through later operations. Use Complex.Err, IsNaN or
// IsInf to check a result at a boundary.
package algocomplex

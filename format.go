package algocomplex

import (
	"fmt"
	"math"
	"strings"
)

// NaNImagString is what String prints when the imaginary part is NaN and
// its sign cannot be determined.
const NaNImagString = "Complex part is NaN!"

// String renders z in Cartesian form, "<re> + <im>*I" or "<re> - <|im|>*I"
// depending on the sign bit of the imaginary part (so -0 prints with a
// minus). A NaN imaginary part renders as NaNImagString instead.
func (z Complex) String() string {
	return z.render(formatFloat, formatFloat)
}

func (z Complex) render(formatRe, formatIm func(float64) string) string {
	switch {
	case math.IsNaN(z.im):
		return NaNImagString
	case math.Signbit(z.im):
		return formatRe(z.re) + " - " + formatIm(-z.im) + "*I"
	default:
		return formatRe(z.re) + " + " + formatIm(z.im) + "*I"
	}
}

// Format implements fmt.Formatter.
//
// The verbs v and s print String, and %#v prints GoString. The float verbs
// e, E, f, F, g and G apply flags, width and precision to each component:
// fmt.Sprintf("%.2f", z) gives "3.00 + 4.00*I" for 3+4i.
func (z Complex) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('#') {
			fmt.Fprint(f, z.GoString())
			return
		}

		fmt.Fprint(f, z.String())
	case 's':
		fmt.Fprint(f, z.String())
	case 'e', 'E', 'f', 'F', 'g', 'G':
		reSpec := fmt.FormatString(f, verb)
		// The sign of the imaginary part is carried by the separator.
		imSpec := strings.Replace(reSpec, "+", "", 1)

		fmt.Fprint(f, z.render(
			func(x float64) string { return formatVerb(f, reSpec, x) },
			func(x float64) string { return formatVerb(f, imSpec, x) },
		))
	default:
		fmt.Fprintf(f, "%%!%c(algocomplex.Complex=%s)", verb, z.String())
	}
}

// formatVerb applies spec to x. fmt prints +Inf with a plus sign for the
// float verbs; it is rendered as "Inf" padded to the requested width.
func formatVerb(f fmt.State, spec string, x float64) string {
	if !math.IsInf(x, 1) {
		return fmt.Sprintf(spec, x)
	}

	width, ok := f.Width()
	if !ok || width <= len("Inf") {
		return "Inf"
	}

	if f.Flag('-') {
		return "Inf" + strings.Repeat(" ", width-len("Inf"))
	}

	return strings.Repeat(" ", width-len("Inf")) + "Inf"
}

// GoString renders z as a Go expression, algocomplex.New(re, im).
func (z Complex) GoString() string {
	return "algocomplex.New(" + goFloat(z.re) + ", " + goFloat(z.im) + ")"
}

func goFloat(x float64) string {
	switch {
	case math.IsNaN(x):
		return "math.NaN()"
	case math.IsInf(x, 1):
		return "math.Inf(1)"
	case math.IsInf(x, -1):
		return "math.Inf(-1)"
	}

	return formatFloat(x)
}

package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	algocomplex "github.com/cwbudde/algo-complex"
)

// NewPowCommand creates the pow command.
func NewPowCommand(opts *RootOptions) *cobra.Command {
	var (
		re, im   float64
		n        int
		wRe, wIm float64
	)

	cmd := &cobra.Command{
		Use:   "pow",
		Short: "Raise a complex value to a power with every algorithm",
		Long: `Computes z^n by repeated multiplication (pow), through the polar form
(pow_polar) and with a real exponent (powf). powc raises z to the complex
exponent given by --w-re/--w-im, or to n when neither is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			z := algocomplex.New(re, im)

			w := algocomplex.Real(float64(n))
			if cmd.Flags().Changed("w-re") || cmd.Flags().Changed("w-im") {
				w = algocomplex.New(wRe, wIm)
			}

			opts.Logger.Debug("pow",
				zap.Stringer("value", z),
				zap.Int("n", n),
				zap.Stringer("w", w),
			)

			return writeFields(cmd.OutOrStdout(), opts.Format, powFields(z, n, w))
		},
	}

	cmd.Flags().Float64Var(&re, "re", 0, "real part of the base")
	cmd.Flags().Float64Var(&im, "im", 0, "imaginary part of the base")
	cmd.Flags().IntVar(&n, "n", 2, "integer exponent")
	cmd.Flags().Float64Var(&wRe, "w-re", 0, "real part of the complex exponent")
	cmd.Flags().Float64Var(&wIm, "w-im", 0, "imaginary part of the complex exponent")

	return cmd
}

func powFields(z algocomplex.Complex, n int, w algocomplex.Complex) []field {
	return []field{
		{"value", z.String()},
		{"exponent", formatFloat(float64(n))},
		{"pow", z.Pow(n).String()},
		{"pow_polar", z.PowPolar(n).String()},
		{"powf", z.Powf(float64(n)).String()},
		{"powc_exponent", w.String()},
		{"powc", z.Powc(w).String()},
	}
}

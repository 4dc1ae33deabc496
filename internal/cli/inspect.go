package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	algocomplex "github.com/cwbudde/algo-complex"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand(opts *RootOptions) *cobra.Command {
	var re, im float64

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the derived forms of a complex value",
		Long:  "Prints the value, its conjugate, magnitude, argument, polar form, natural logarithm and exponential.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			z := algocomplex.New(re, im)

			opts.Logger.Debug("inspect", zap.Stringer("value", z))

			return writeFields(cmd.OutOrStdout(), opts.Format, inspectFields(z))
		},
	}

	cmd.Flags().Float64Var(&re, "re", 0, "real part")
	cmd.Flags().Float64Var(&im, "im", 0, "imaginary part")

	return cmd
}

func inspectFields(z algocomplex.Complex) []field {
	return []field{
		{"value", z.String()},
		{"conjugate", z.Conj().String()},
		{"abs", formatFloat(z.Abs())},
		{"arg", formatFloat(z.Arg())},
		{"polar", z.Polar().String()},
		{"ln", z.Ln().String()},
		{"exp", z.Exp().String()},
	}
}

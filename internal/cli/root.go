// Package cli implements the cmplx command-line tool.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Logger is built before any subcommand runs.
	Logger *zap.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the cmplx tool.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "cmplx",
		Short: "Inspect and benchmark complex-number operations",
		Long: `cmplx evaluates algocomplex operations on a single value and compares
the integer power algorithms (repeated multiplication, polar form and
complex exponent) for speed and accuracy.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
			if opts.Verbose {
				level.SetLevel(zapcore.DebugLevel)
			}

			core := zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr())),
				level,
			)
			opts.Logger = zap.New(core, zap.ErrorOutput(zapcore.AddSync(cmd.ErrOrStderr())))

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.Logger != nil {
				_ = opts.Logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewInspectCommand(opts))
	cmd.AddCommand(NewPowCommand(opts))
	cmd.AddCommand(NewBenchCommand(opts))

	return cmd
}

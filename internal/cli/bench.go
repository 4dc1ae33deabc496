package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-complex/internal/bench"
	"github.com/cwbudde/algo-complex/internal/cpu"
)

// BenchOptions holds flags for the bench command.
type BenchOptions struct {
	ConfigPath   string
	Iterations   int
	Seed         int64
	RandomValues int
}

// benchReport is the json output of the bench command.
type benchReport struct {
	Host    string          `json:"host"`
	Results []bench.Result  `json:"results"`
	Summary []bench.Summary `json:"summary"`
}

// NewBenchCommand creates the bench command.
func NewBenchCommand(opts *RootOptions) *cobra.Command {
	benchOpts := &BenchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare the speed and accuracy of the power algorithms",
		Long: `Times Pow, PowPolar and Powc for each configured value and exponent and
reports ns/op and the error relative to repeated multiplication.

The configuration is read from --config (YAML) when given; --iterations,
--seed and --random override the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveBenchConfig(cmd, benchOpts)
			if err != nil {
				return err
			}

			host := cpu.Detect()
			opts.Logger.Info("running benchmark",
				zap.String("host", host.String()),
				zap.Int("iterations", cfg.Iterations),
				zap.Ints("exponents", cfg.Exponents),
			)

			results, err := bench.Run(cfg, opts.Logger)
			if err != nil {
				return err
			}

			report := benchReport{
				Host:    host.String(),
				Results: results,
				Summary: bench.Summarize(results),
			}

			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), report)
			}

			return writeBenchText(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().StringVarP(&benchOpts.ConfigPath, "config", "c", "", "YAML benchmark configuration")
	cmd.Flags().IntVar(&benchOpts.Iterations, "iterations", 0, "timed calls per case")
	cmd.Flags().Int64Var(&benchOpts.Seed, "seed", 0, "seed for random sample values")
	cmd.Flags().IntVar(&benchOpts.RandomValues, "random", 0, "number of extra random sample values")

	return cmd
}

func resolveBenchConfig(cmd *cobra.Command, benchOpts *BenchOptions) (bench.Config, error) {
	cfg := bench.DefaultConfig()

	if benchOpts.ConfigPath != "" {
		loaded, err := bench.LoadConfig(benchOpts.ConfigPath)
		if err != nil {
			return bench.Config{}, err
		}

		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("iterations") {
		cfg.Iterations = benchOpts.Iterations
	}

	if flags.Changed("seed") {
		cfg.Seed = benchOpts.Seed
	}

	if flags.Changed("random") {
		cfg.RandomValues = benchOpts.RandomValues
	}

	if err := cfg.Validate(); err != nil {
		return bench.Config{}, err
	}

	return cfg, nil
}

func writeBenchText(w io.Writer, report benchReport) error {
	if _, err := fmt.Fprintf(w, "host: %s\n", report.Host); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%-24s  %8s  %10s  %12s  %12s\n", "value", "exponent", "method", "ns/op", "rel error")
	if err != nil {
		return err
	}

	for _, res := range report.Results {
		_, err := fmt.Fprintf(w, "%-24s  %8d  %10s  %12.1f  %12.3g\n",
			formatFloat(res.Value.Re)+","+formatFloat(res.Value.Im),
			res.Exponent, res.Method, res.NsPerOp, res.RelError)
		if err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	for _, s := range report.Summary {
		_, err := fmt.Fprintf(w, "%-10s  cases=%d  mean=%.1f ns/op  max rel error=%.3g\n",
			s.Method, s.Cases, s.MeanNsPerOp, s.MaxRelError)
		if err != nil {
			return err
		}
	}

	return nil
}

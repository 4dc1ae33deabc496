// Command cmplx inspects complex values and benchmarks the power
// algorithms of algocomplex.
package main

import (
	"os"

	"github.com/cwbudde/algo-complex/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

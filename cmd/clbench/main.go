// Command clbench benchmarks proof construction across attribute and
// greater-or-equal-predicate counts, charting latency with go-chart.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hyperlog/clproof/internal/logging"
)

var (
	logLevel string
	logger   zerolog.Logger
)

func main() {
	root := &cobra.Command{
		Use:   "clbench",
		Short: "Benchmark CL-credential proof construction",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.New(logLevel, os.Stderr)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.AddCommand(newRunCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

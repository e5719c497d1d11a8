// Command clprove drives the prover pipeline end to end against JSON
// fixtures: master-secret generation, blinding, claim unblinding, and
// sub-proof construction.
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
		Use:   "clprove",
		Short: "Drive the CL-credential prover pipeline against JSON fixtures",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.New(logLevel, os.Stderr)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(newMasterSecretCmd())
	root.AddCommand(newBlindCmd())
	root.AddCommand(newUnblindCmd())
	root.AddCommand(newProveCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

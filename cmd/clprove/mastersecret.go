package main

import (
	"github.com/spf13/cobra"

	"github.com/hyperlog/clproof/cl"
)

func newMasterSecretCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "mastersecret",
		Short: "Generate a fresh master secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := cl.NewMasterSecret()
			if err != nil {
				return err
			}
			if err := writeJSON(output, masterSecretToJSON(ms)); err != nil {
				return err
			}
			logger.Info().Str("file", output).Msg("master secret generated")
			return nil
		},
	}
	cmd.Flags().StringVar(&output, "output", "mastersecret.json", "output file for the master secret")
	return cmd
}

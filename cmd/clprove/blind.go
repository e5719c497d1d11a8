package main

import (
	"github.com/spf13/cobra"

	"github.com/hyperlog/clproof/cl"
)

func newBlindCmd() *cobra.Command {
	var keyFile, msFile, output string
	cmd := &cobra.Command{
		Use:   "blind",
		Short: "Blind a master secret against an issuer's public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			var keyJSON issuerPublicKeyJSON
			if err := readJSON(keyFile, &keyJSON); err != nil {
				return err
			}
			primary, err := keyJSON.toPrimaryPublicKey()
			if err != nil {
				return err
			}

			var msJSON masterSecretJSON
			if err := readJSON(msFile, &msJSON); err != nil {
				return err
			}
			ms, err := msJSON.toMasterSecret()
			if err != nil {
				return err
			}

			blinded, data, err := cl.Blind(&cl.IssuerPublicKey{Primary: primary}, ms)
			if err != nil {
				return err
			}

			if err := writeJSON(output, blindedJSON{U: blinded.U.String(), VPrime: data.VPrime.String()}); err != nil {
				return err
			}
			logger.Info().Str("file", output).Msg("master secret blinded")
			return nil
		},
	}
	cmd.Flags().StringVar(&keyFile, "key", "keypair.json", "issuer public key fixture")
	cmd.Flags().StringVar(&msFile, "mastersecret", "mastersecret.json", "master secret fixture")
	cmd.Flags().StringVar(&output, "output", "blinded.json", "output file for the blinded commitment")
	return cmd
}

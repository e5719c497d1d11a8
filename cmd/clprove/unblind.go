package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/hyperlog/clproof/cl"
)

func newUnblindCmd() *cobra.Command {
	var claimFile, blindedFile, output string
	cmd := &cobra.Command{
		Use:   "unblind",
		Short: "Fold blinding factors into an issued claim signature",
		RunE: func(cmd *cobra.Command, args []string) error {
			var claimJSON primaryClaimJSON
			if err := readJSON(claimFile, &claimJSON); err != nil {
				return err
			}
			sig, err := claimJSON.toPrimaryClaim()
			if err != nil {
				return err
			}

			var blindedJSON blindedJSON
			if err := readJSON(blindedFile, &blindedJSON); err != nil {
				return err
			}
			vPrime, ok := new(big.Int).SetString(blindedJSON.VPrime, 10)
			if !ok {
				return fmt.Errorf("unblind: invalid v_prime in %s", blindedFile)
			}

			claim := &cl.ClaimSignature{PClaim: sig}
			if err := cl.ProcessClaimSignature(claim, &cl.BlindedMasterSecretData{VPrime: vPrime}, &cl.IssuerPublicKey{Primary: &cl.PrimaryPublicKey{}}, nil); err != nil {
				return err
			}

			out, err := primaryClaimToJSON(claim.PClaim)
			if err != nil {
				return err
			}
			if err := writeJSON(output, out); err != nil {
				return err
			}
			logger.Info().Str("file", output).Msg("claim signature unblinded")
			return nil
		},
	}
	cmd.Flags().StringVar(&claimFile, "claim", "claim.json", "issued claim signature fixture")
	cmd.Flags().StringVar(&blindedFile, "blinded", "blinded.json", "blinded commitment fixture (for v_prime)")
	cmd.Flags().StringVar(&output, "output", "claim.json", "output file for the unblinded claim signature")
	return cmd
}

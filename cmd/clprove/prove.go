package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/hyperlog/clproof/cl"
	"github.com/hyperlog/clproof/pkg/credential"
)

// proveRequestJSON is the JSON fixture naming the attribute values held by
// the prover, which of them to reveal, and which greater-or-equal
// predicates must hold over the rest.
type proveRequestJSON struct {
	Attrs  map[string]interface{}   `json:"attrs"`
	Reveal []string                 `json:"reveal"`
	GE     []map[string]interface{} `json:"ge"`
	Nonce  string                   `json:"nonce"`
}

func newProveCmd() *cobra.Command {
	var keyFile, msFile, claimFile, requestFile, output string
	cmd := &cobra.Command{
		Use:   "prove",
		Short: "Build a proof over an unblinded claim signature",
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

			var claimJSON primaryClaimJSON
			if err := readJSON(claimFile, &claimJSON); err != nil {
				return err
			}
			pClaim, err := claimJSON.toPrimaryClaim()
			if err != nil {
				return err
			}

			var req proveRequestJSON
			if err := readJSON(requestFile, &req); err != nil {
				return err
			}

			schemaBuilder := credential.NewSchemaBuilder()
			for name := range req.Attrs {
				schemaBuilder.WithAttr(name)
			}
			schema := schemaBuilder.Build()

			valuesBuilder := credential.NewValuesBuilder()
			for name, v := range req.Attrs {
				if f, ok := v.(float64); ok {
					valuesBuilder.WithValue(name, int64(f))
				} else {
					valuesBuilder.WithValue(name, v)
				}
			}
			values, err := valuesBuilder.Build(schema)
			if err != nil {
				return err
			}

			requestBuilder := credential.NewSubProofRequestBuilder()
			for _, name := range req.Reveal {
				requestBuilder.Reveal(name)
			}
			for _, ge := range req.GE {
				attr, _ := ge["attr"].(string)
				val, ok := ge["value"].(float64)
				if attr == "" || !ok {
					return fmt.Errorf("prove: malformed ge predicate %v", ge)
				}
				requestBuilder.RequireGE(attr, int64(val))
			}
			subRequest, err := requestBuilder.Build()
			if err != nil {
				return err
			}

			nonceValue, ok := new(big.Int).SetString(req.Nonce, 10)
			if !ok {
				return fmt.Errorf("prove: invalid nonce %q", req.Nonce)
			}

			builder, err := cl.NewProofBuilder()
			if err != nil {
				return err
			}
			claim := &cl.ClaimSignature{PClaim: pClaim}
			if err := builder.AddSubProofRequest("credential", claim, values, &cl.IssuerPublicKey{Primary: primary}, nil, subRequest, schema); err != nil {
				return err
			}

			proof, err := builder.Finalize(&cl.Nonce{Value: nonceValue}, ms)
			if err != nil {
				return err
			}

			presentation, err := credential.NewPresentation(proof)
			if err != nil {
				return err
			}
			if err := writeJSON(output, presentation); err != nil {
				return err
			}
			logger.Info().Str("file", output).Int("predicates", len(req.GE)).Msg("proof constructed")
			return nil
		},
	}
	cmd.Flags().StringVar(&keyFile, "key", "keypair.json", "issuer public key fixture")
	cmd.Flags().StringVar(&msFile, "mastersecret", "mastersecret.json", "master secret fixture")
	cmd.Flags().StringVar(&claimFile, "claim", "claim.json", "unblinded claim signature fixture")
	cmd.Flags().StringVar(&requestFile, "request", "request.json", "proof request fixture")
	cmd.Flags().StringVar(&output, "output", "proof.json", "output file for the presentation")
	return cmd
}

// Package core is the public façade for the prover pipeline: master-secret
// generation and blinding, claim-signature unblinding, and proof
// construction. It is a thin wrapper over package cl, matching spec §6's
// conceptual interface 1:1; its signatures take and return package cl's
// types.
package core

import (
	"github.com/hyperlog/clproof/cl"
)

// NewMasterSecret draws a fresh, long-lived master secret.
func NewMasterSecret() (*cl.MasterSecret, error) {
	return cl.NewMasterSecret()
}

// BlindedMasterSecret blinds ms against an issuer's public key, returning
// the commitment to send the issuer and the blinding factors the caller
// must retain until ProcessClaimSignature.
func BlindedMasterSecret(pk *cl.IssuerPublicKey, ms *cl.MasterSecret) (*cl.BlindedMasterSecret, *cl.BlindedMasterSecretData, error) {
	return cl.Blind(pk, ms)
}

// ProcessClaimSignature folds blinding factors into a freshly issued
// signature and, for revocation-enabled credentials, verifies the
// issuer's pairing identities before the signature is trusted.
func ProcessClaimSignature(sig *cl.ClaimSignature, blinded *cl.BlindedMasterSecretData, pk *cl.IssuerPublicKey, reg *cl.RevocationRegistryPublic) error {
	return cl.ProcessClaimSignature(sig, blinded, pk, reg)
}

// NewProofBuilder creates a fresh, single-use ProofBuilder.
func NewProofBuilder() (*cl.ProofBuilder, error) {
	return cl.NewProofBuilder()
}

package cl

import (
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/stretchr/testify/require"

	"github.com/hyperlog/clproof/internal/curve"
)

// TestProcessClaimSignature_GenuineRevocationCredentialPasses pins spec §8
// items 1-2: for a self-consistent credential, folding the issuer's
// blinding factors and checking the three revocation pairing identities
// (accumulator membership, witness consistency, signature equation) must
// succeed.
func TestProcessClaimSignature_GenuineRevocationCredentialPasses(t *testing.T) {
	rk, claim, reg := consistentRevocationFixture()

	claimSig := &ClaimSignature{
		PClaim: &PrimaryClaimSignature{M2: big.NewInt(1), A: big.NewInt(1), E: big.NewInt(1), V: big.NewInt(1)},
		RClaim: claim,
	}
	blinded := &BlindedMasterSecretData{VPrime: big.NewInt(0), VRPrime: big.NewInt(0)}
	pk := &IssuerPublicKey{Primary: &PrimaryPublicKey{N: big.NewInt(3233)}, Revocation: rk}

	err := ProcessClaimSignature(claimSig, blinded, pk, reg)
	require.NoError(t, err)
}

// TestVerifyRevocationSignature_TamperedIdentitiesFail asserts that
// breaking any one of the three pairing identities independently is
// detected, exercising the double-negation fix in identity 2 as well as
// identities 1 and 3.
func TestVerifyRevocationSignature_TamperedIdentitiesFail(t *testing.T) {
	_, _, g1, g2 := bls12381.Generators()

	t.Run("accumulator membership", func(t *testing.T) {
		rk, claim, reg := consistentRevocationFixture()
		claim.Witness.Omega = curve.ScalarMulG2(g2, big.NewInt(2)) // break identity 1 only
		err := verifyRevocationSignature(claim, rk, reg)
		require.ErrorIs(t, err, ErrInvalidStructure)
	})

	t.Run("witness consistency", func(t *testing.T) {
		rk, claim, reg := consistentRevocationFixture()
		claim.Witness.SigmaI = curve.ScalarMulG2(g2, big.NewInt(2)) // break identity 2 only
		err := verifyRevocationSignature(claim, rk, reg)
		require.ErrorIs(t, err, ErrInvalidStructure)
	})

	t.Run("signature equation", func(t *testing.T) {
		rk, claim, reg := consistentRevocationFixture()
		claim.Sigma = curve.ScalarMulG1(g1, big.NewInt(3)) // break identity 3 only
		err := verifyRevocationSignature(claim, rk, reg)
		require.ErrorIs(t, err, ErrInvalidStructure)
	})
}

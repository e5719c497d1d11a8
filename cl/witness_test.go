package cl

import (
	"crypto/sha256"
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/stretchr/testify/require"

	"github.com/hyperlog/clproof/internal/curve"
)

func scalarForLabel(label string) *big.Int {
	h := sha256.Sum256([]byte(label))
	return new(big.Int).Mod(new(big.Int).SetBytes(h[:]), GroupOrder)
}

func pointG2ForLabel(label string) bls12381.G2Affine {
	var out bls12381.G2Affine
	out.ScalarMultiplicationBase(scalarForLabel(label))
	return out
}

func TestUpdateWitness_UnchangedMembershipIsNoop(t *testing.T) {
	omega := pointG2ForLabel("omega")
	witness := &NonRevocationWitness{Omega: omega, V: map[uint32]struct{}{1: {}, 2: {}}}
	accum := &RevocationAccumulator{V: map[uint32]struct{}{1: {}, 2: {}}, MaxClaimNum: 2}

	err := UpdateWitness(witness, 1, accum, map[uint32]bls12381.G2Affine{})
	require.NoError(t, err)
	require.True(t, witness.Omega.Equal(&omega))
	require.Equal(t, accum.V, witness.V)
}

func TestUpdateWitness_RevokedClaimFails(t *testing.T) {
	witness := &NonRevocationWitness{V: map[uint32]struct{}{1: {}}}
	accum := &RevocationAccumulator{V: map[uint32]struct{}{2: {}}, MaxClaimNum: 2}

	err := UpdateWitness(witness, 1, accum, nil)
	require.ErrorIs(t, err, ErrClaimRevoked)
}

func TestUpdateWitness_MissingTailFails(t *testing.T) {
	witness := &NonRevocationWitness{V: map[uint32]struct{}{1: {}, 4: {}}}
	accum := &RevocationAccumulator{V: map[uint32]struct{}{1: {}}, MaxClaimNum: 5}

	err := UpdateWitness(witness, 1, accum, map[uint32]bls12381.G2Affine{})
	require.ErrorIs(t, err, ErrInvalidStructure)
}

// With exactly one revoked index, the two-pass telescoping update reduces
// to omegaNum == omegaDenom, so the witness's omega is left unchanged even
// though its membership set advances. This mirrors the reference prover's
// single-revocation case and is worth pinning explicitly since it is easy
// to get wrong when simplifying the two loops into one.
func TestUpdateWitness_SingleRevocationLeavesOmegaUnchanged(t *testing.T) {
	omega := pointG2ForLabel("omega-initial")
	witness := &NonRevocationWitness{
		Omega: omega,
		V:     map[uint32]struct{}{1: {}, 4: {}},
	}
	accum := &RevocationAccumulator{V: map[uint32]struct{}{1: {}}, MaxClaimNum: 5}
	tails := map[uint32]bls12381.G2Affine{
		// MaxClaimNum + 1 - j + claimIndex, j=4, claimIndex=1 -> 5+1-4+1=3
		3: pointG2ForLabel("tail-3"),
	}

	err := UpdateWitness(witness, 1, accum, tails)
	require.NoError(t, err)
	require.True(t, witness.Omega.Equal(&omega))
	require.Equal(t, accum.V, witness.V)
}

func TestUpdateWitness_MultipleRevocationsUpdatesMembershipAndOmega(t *testing.T) {
	omega := pointG2ForLabel("omega-initial")
	witness := &NonRevocationWitness{
		Omega: omega,
		V:     map[uint32]struct{}{1: {}, 2: {}, 4: {}},
	}
	accum := &RevocationAccumulator{V: map[uint32]struct{}{1: {}}, MaxClaimNum: 5}
	tails := map[uint32]bls12381.G2Affine{
		// j=2 -> 5+1-2+1=5, j=4 -> 5+1-4+1=3
		5: pointG2ForLabel("tail-5"),
		3: pointG2ForLabel("tail-3"),
	}

	err := UpdateWitness(witness, 1, accum, tails)
	require.NoError(t, err)
	require.Equal(t, accum.V, witness.V)
	require.False(t, witness.Omega.IsInfinity())
	require.NotEqual(t, curve.IdentityG2(), witness.Omega)
}

package cl

import (
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/stretchr/testify/require"

	"github.com/hyperlog/clproof/internal/curve"
)

// consistentRevocationFixture builds a revocation public key, claim, and
// registry whose accumulator-membership, witness-consistency, and
// signature-equation identities all genuinely hold (by construction, using
// small integer scalar relationships rather than a real issuer key), so the
// c-list/tau-list formulas below are exercised against a credential that is
// actually self-consistent rather than arbitrary random field elements.
func consistentRevocationFixture() (*RevocationPublicKey, *NonRevocationClaimSignature, *RevocationRegistryPublic) {
	_, _, g1, g2 := bls12381.Generators()
	s := func(n int64) *big.Int { return big.NewInt(n) }
	gi := curve.ScalarMulG1(g1, s(2))

	rk := &RevocationPublicKey{
		G: g1, GDash: g2,
		Pk:     curve.NegG1(g1),
		H0:     g1,
		H1:     g1,
		H2:     curve.IdentityG1(),
		HCap:   g2,
		Y:      g2,
		HTilde: g1,
		U:      g2,
		H:      g1,
	}

	claim := &NonRevocationClaimSignature{
		Sigma:        curve.ScalarMulG1(g1, s(2)),
		C:            s(1),
		VRPrimePrime: s(1),
		GI:           gi,
		I:            1,
		M2:           s(1),
		Witness: NonRevocationWitness{
			SigmaI: g2,
			UI:     curve.ScalarMulG2(g2, s(2)),
			GI:     gi,
			Omega:  g2,
			V:      map[uint32]struct{}{1: {}},
		},
	}

	z, _ := bls12381.Pair([]bls12381.G1Affine{g1}, []bls12381.G2Affine{g2})
	reg := &RevocationRegistryPublic{
		Key: RevocationAccumulatorPublicKey{Z: z},
		Acc: RevocationAccumulator{
			Acc:         g2,
			V:           map[uint32]struct{}{1: {}},
			MaxClaimNum: 1,
		},
	}

	return rk, claim, reg
}

// TestRevocationFixtureSatisfiesSignatureIdentities pins that the fixture
// above is genuinely self-consistent, independent of the tau/c round-trip
// below: it is what ProcessClaimSignature's three pairing checks verify.
func TestRevocationFixtureSatisfiesSignatureIdentities(t *testing.T) {
	rk, claim, reg := consistentRevocationFixture()
	require.NoError(t, verifyRevocationSignature(claim, rk, reg))
}

// TestNonRevocationTauRoundTrip pins spec §8 item 6: feeding the same
// params used to build the c-list into createTauListValues reduces,
// formula-for-formula, to ExpectedTauList's challenge-free reconstruction
// from the c-list and public key alone, for a genuinely self-consistent
// credential.
func TestNonRevocationTauRoundTrip(t *testing.T) {
	rk, claim, reg := consistentRevocationFixture()

	params, err := genCListParams(newDeterministicReader("nonrevoc-tau-roundtrip"), claim)
	require.NoError(t, err)
	cList := createCListValues(claim, params, rk)

	tauList, err := createTauListValues(rk, reg, params, cList)
	require.NoError(t, err)

	expected, err := ExpectedTauList(rk, reg, cList)
	require.NoError(t, err)

	require.True(t, tauList.T1.Equal(&expected.T1), "t1")
	require.True(t, tauList.T2.Equal(&expected.T2), "t2")
	require.Equal(t, tauList.T3, expected.T3, "t3")
	require.Equal(t, tauList.T4, expected.T4, "t4")
	require.True(t, tauList.T5.Equal(&expected.T5), "t5")
	require.True(t, tauList.T6.Equal(&expected.T6), "t6")
	require.Equal(t, tauList.T7, expected.T7, "t7")
	require.Equal(t, tauList.T8, expected.T8, "t8")
}

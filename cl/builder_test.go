package cl

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func smallSyntheticKeyPair(attrNames []string) (*PrimaryPublicKey, *PrimaryClaimSignature) {
	n := big.NewInt(3233) // 61*53
	r := make(map[string]*big.Int, len(attrNames))
	for i, name := range attrNames {
		r[name] = big.NewInt(int64(19 + i*2))
	}
	pk := &PrimaryPublicKey{N: n, S: big.NewInt(7), Z: big.NewInt(11), RMS: big.NewInt(13), R: r}
	claim := &PrimaryClaimSignature{M2: big.NewInt(5), A: big.NewInt(97), E: big.NewInt(259344723), V: big.NewInt(1000003)}
	return pk, claim
}

// runBuilder drives one AddSubProofRequest + Finalize round, sourcing every
// draw from the given seed so two runs with the same seed are byte-for-byte
// reproducible (spec §8 item 5's "finalize vectors": since this port's RNG
// construction differs from the original Rust mocks', a literal cross-
// language numeric vector isn't achievable, so this pins determinism and
// the assembled proof's structure instead).
func runBuilder(t *testing.T, seed string) *Proof {
	t.Helper()

	pk, claim := smallSyntheticKeyPair([]string{"age"})
	values := ClaimValues{AttrValues: map[string]*big.Int{"age": big.NewInt(28)}}
	schema := ClaimSchema{Attrs: map[string]struct{}{"age": {}}}
	request := SubProofRequest{
		RevealedAttrs: map[string]struct{}{},
		Predicates:    []Predicate{{AttrName: "age", PType: PredicateGE, Value: 18}},
	}

	b, err := newProofBuilder(newDeterministicReader(seed))
	require.NoError(t, err)

	err = b.AddSubProofRequest("cred-1", &ClaimSignature{PClaim: claim}, values, &IssuerPublicKey{Primary: pk}, nil, request, schema)
	require.NoError(t, err)

	ms := &MasterSecret{MS: big.NewInt(424242)}
	nonce := &Nonce{Value: big.NewInt(13579)}

	proof, err := b.Finalize(nonce, ms)
	require.NoError(t, err)
	return proof
}

func TestProofBuilder_DeterministicAcrossIdenticalSeeds(t *testing.T) {
	first := runBuilder(t, "builder-finalize-vector")
	second := runBuilder(t, "builder-finalize-vector")

	require.Equal(t, first.Aggregated.CHash, second.Aggregated.CHash)
	require.Equal(t, first.Aggregated.CList, second.Aggregated.CList)
	require.Equal(t, first.Proofs["cred-1"].Primary.Eq, second.Proofs["cred-1"].Primary.Eq)
	require.Equal(t, first.Proofs["cred-1"].Primary.GE, second.Proofs["cred-1"].Primary.GE)
}

func TestProofBuilder_DivergesAcrossDifferentSeeds(t *testing.T) {
	first := runBuilder(t, "builder-finalize-vector-a")
	second := runBuilder(t, "builder-finalize-vector-b")

	require.NotEqual(t, first.Proofs["cred-1"].Primary.Eq.APrime, second.Proofs["cred-1"].Primary.Eq.APrime)
}

func TestProofBuilder_AssemblesExpectedStructure(t *testing.T) {
	proof := runBuilder(t, "builder-structure")

	require.Len(t, proof.Proofs, 1)
	sub, ok := proof.Proofs["cred-1"]
	require.True(t, ok)
	require.Nil(t, sub.NonRevoc)
	require.Len(t, sub.Primary.GE, 1)
	require.Equal(t, Predicate{AttrName: "age", PType: PredicateGE, Value: 18}, sub.Primary.GE[0].Predicate)
	require.NotNil(t, proof.Aggregated.CHash)
	require.NotEmpty(t, proof.Aggregated.CList)
}

func TestNewProofBuilder_AddSubProofRequest_DuplicateKeyFails(t *testing.T) {
	pk, claim := smallSyntheticKeyPair([]string{"age"})
	values := ClaimValues{AttrValues: map[string]*big.Int{"age": big.NewInt(28)}}
	schema := ClaimSchema{Attrs: map[string]struct{}{"age": {}}}
	request := SubProofRequest{RevealedAttrs: map[string]struct{}{}}

	b, err := newProofBuilder(newDeterministicReader("dup-key"))
	require.NoError(t, err)

	require.NoError(t, b.AddSubProofRequest("cred-1", &ClaimSignature{PClaim: claim}, values, &IssuerPublicKey{Primary: pk}, nil, request, schema))
	err = b.AddSubProofRequest("cred-1", &ClaimSignature{PClaim: claim}, values, &IssuerPublicKey{Primary: pk}, nil, request, schema)
	require.ErrorIs(t, err, ErrInvalidStructure)
}

package cl

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// NonRevocProofCList is the seven group-element commitments (spec §4.5
// step 3) that double as this sub-proof's contribution to the c-list.
// E, D, A, G are G1 elements; W, S, U live in G2 alongside the witness
// fields they blind (omega, sigma_i, u_i).
type NonRevocProofCList struct {
	E, D, A, G bls12381.G1Affine
	W, S, U    bls12381.G2Affine
}

// NonRevocProofTauList is the eight announcement commitments t1..t8 of
// spec §6. T1, T2, T5, T6 are G1 elements; the rest are pairing (GT)
// products.
type NonRevocProofTauList struct {
	T1, T2, T5, T6 bls12381.G1Affine
	T3, T4, T7, T8 bls12381.GT
}

// AsSlice flattens the eight commitments, in formula order, for hashing.
func (t NonRevocProofTauList) AsSlice() [8]interface{} {
	return [8]interface{}{t.T1, t.T2, t.T3, t.T4, t.T5, t.T6, t.T7, t.T8}
}

// NonRevocInitProof is the non-revocation sub-proof's pre-challenge state:
// the sampled scalars used for both the c-list and the tau-list, the
// resulting c-list values, and the resulting tau-list values.
type NonRevocInitProof struct {
	CListParams NonRevocProofXList
	TauListParams NonRevocProofXList
	CList       NonRevocProofCList
	TauList     NonRevocProofTauList
}

// NonRevocProof is the finalized non-revocation sub-proof.
type NonRevocProof struct {
	XList NonRevocProofXList
	CList NonRevocProofCList
}

// InitProof is the per-credential pre-challenge accumulation: the primary
// sub-proof state, the optional non-revocation sub-proof state, and the
// issuer-supplied material it was built from (spec §3's InitProof entity).
type InitProof struct {
	Primary       PrimaryInitProof
	NonRevoc      *NonRevocInitProof
	ClaimValues   ClaimValues
	SubProofRequest SubProofRequest
	ClaimSchema   ClaimSchema
}

// SubProof is one credential's finalized proof: a primary proof, plus an
// optional non-revocation proof when the credential supports revocation.
type SubProof struct {
	Primary  PrimaryProof
	NonRevoc *NonRevocProof
}

// AggregatedProof carries the Fiat-Shamir challenge and the full c-list
// bytes it was computed over, so a verifier can recompute c_hash.
type AggregatedProof struct {
	CHash *big.Int
	CList [][]byte
}

// Proof is the prover's final output: one SubProof per key_id the caller
// registered via AddSubProofRequest, plus the aggregated challenge.
type Proof struct {
	Proofs     map[string]SubProof
	Aggregated AggregatedProof
}

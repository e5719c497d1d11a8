package cl

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// MasterSecret is the long-lived private scalar linking every credential
// held by one prover. It is never sent to an issuer or verifier directly.
type MasterSecret struct {
	MS *big.Int
}

// PrimaryPublicKey is the RSA-like primary part of an issuer's public key.
// It is borrowed read-only by every prover operation.
type PrimaryPublicKey struct {
	N   *big.Int
	S   *big.Int
	Z   *big.Int
	RMS *big.Int
	R   map[string]*big.Int // per-attribute generator, keyed by attribute name
}

// RevocationPublicKey is the pairing part of an issuer's public key.
type RevocationPublicKey struct {
	G      bls12381.G1Affine
	GDash  bls12381.G2Affine
	H      bls12381.G1Affine
	H0     bls12381.G1Affine
	H1     bls12381.G1Affine
	H2     bls12381.G1Affine
	HCap   bls12381.G2Affine
	HTilde bls12381.G1Affine
	U      bls12381.G2Affine
	Pk     bls12381.G1Affine
	Y      bls12381.G2Affine
}

// IssuerPublicKey bundles the primary public key with an optional
// revocation public key. Both are borrowed read-only.
type IssuerPublicKey struct {
	Primary    *PrimaryPublicKey
	Revocation *RevocationPublicKey // nil if the issuer does not support revocation
}

// RevocationAccumulatorPublicKey holds the accumulator's pairing helper Z.
type RevocationAccumulatorPublicKey struct {
	Z bls12381.GT
}

// RevocationAccumulator is the dynamic accumulator's current state: a
// single G2 element plus the set of currently unrevoked indices.
type RevocationAccumulator struct {
	Acc         bls12381.G2Affine
	V           map[uint32]struct{}
	MaxClaimNum uint32
}

// RevocationRegistryPublic bundles the accumulator, its pairing key, and the
// tails used to update witnesses as the accumulator changes.
type RevocationRegistryPublic struct {
	Key   RevocationAccumulatorPublicKey
	Acc   RevocationAccumulator
	Tails map[uint32]bls12381.G2Affine
}

// NonRevocationWitness proves that a claim's index is a member of an
// accumulator: the auxiliary values (sigma_i, u_i, g_i, omega) plus the
// accumulator membership set the witness was last updated against.
type NonRevocationWitness struct {
	SigmaI bls12381.G2Affine
	UI     bls12381.G2Affine
	GI     bls12381.G1Affine
	Omega  bls12381.G2Affine
	V      map[uint32]struct{}
}

// PrimaryClaimSignature is the CL signature tuple (m2, a, e, v) over the
// primary (RSA-modulus) attributes, including the blinded master secret.
type PrimaryClaimSignature struct {
	M2 *big.Int
	A  *big.Int
	E  *big.Int
	V  *big.Int
}

// NonRevocationClaimSignature is the pairing-side signature issued against
// the revocation-blinded master secret commitment.
type NonRevocationClaimSignature struct {
	Sigma        bls12381.G1Affine
	C            *big.Int // scalar mod GroupOrder
	VRPrimePrime *big.Int // scalar mod GroupOrder
	Witness      NonRevocationWitness
	GI           bls12381.G1Affine
	I            uint32
	M2           *big.Int // scalar mod GroupOrder
}

// ClaimSignature is the full credential signature: always a primary part,
// optionally a revocation part.
type ClaimSignature struct {
	PClaim *PrimaryClaimSignature
	RClaim *NonRevocationClaimSignature // nil when the issuer does not revoke
}

// BlindedMasterSecretData holds the blinding factors the prover retains
// privately between blinding and finalize.
type BlindedMasterSecretData struct {
	VPrime  *big.Int
	VRPrime *big.Int // nil if the issuer key has no revocation part
}

// BlindedMasterSecret is the commitment sent to the issuer; it leaks
// nothing about the master secret, statistically, given VPrime's range.
type BlindedMasterSecret struct {
	U  *big.Int
	Ur *bls12381.G1Affine // nil if the issuer key has no revocation part
}

// ClaimSchema names the complete set of attributes a credential carries.
type ClaimSchema struct {
	Attrs map[string]struct{}
}

// ClaimValues carries the canonical (decimal-integer-encoded) value of
// every attribute named in a ClaimSchema.
type ClaimValues struct {
	AttrValues map[string]*big.Int
}

// PredicateType enumerates the predicate kinds a SubProofRequest can carry.
// The prover currently only constructs greater-or-equal (GE) sub-proofs.
type PredicateType int

const (
	// PredicateGE represents attr >= value.
	PredicateGE PredicateType = iota
)

// Predicate is a single greater-or-equal claim over one hidden attribute.
type Predicate struct {
	AttrName string
	PType    PredicateType
	Value    int64
}

// SubProofRequest names which attributes a verifier wants revealed in the
// clear and which predicates must hold over the remaining hidden ones.
type SubProofRequest struct {
	RevealedAttrs map[string]struct{}
	Predicates    []Predicate
}

// Nonce is the verifier-supplied challenge seed folded into the Fiat-Shamir
// hash alongside the tau-list and c-list bytes.
type Nonce struct {
	Value *big.Int
}

// FourSquares is the Lagrange four-squares decomposition of a non-negative
// integer delta = U0^2 + U1^2 + U2^2 + U3^2. Modeled as a tagged record
// rather than a string-keyed map so a missing component is impossible.
type FourSquares struct {
	U0, U1, U2, U3 *big.Int
}

// Values returns the four components in canonical order.
func (f FourSquares) Values() [Iteration]*big.Int {
	return [Iteration]*big.Int{f.U0, f.U1, f.U2, f.U3}
}

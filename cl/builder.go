package cl

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"math/big"
)

// proofEntry is one add_sub_proof_request's accumulated pre-challenge state,
// keyed by the caller-supplied key_id.
type proofEntry struct {
	init   InitProof
	pk     *IssuerPublicKey
	claim  *ClaimSignature
	values ClaimValues
}

// ProofBuilder accumulates per-credential init-proof state across repeated
// AddSubProofRequest calls, then finalizes every response under a single
// Fiat-Shamir challenge. It is single-threaded and stateful: not safe for
// concurrent use, and left in a partially filled state on mid-pipeline
// failure — callers must discard a builder that returns an error.
type ProofBuilder struct {
	rng io.Reader

	m1Tilde *big.Int

	order   []string
	entries map[string]*proofEntry

	tauList [][]byte
	cList   [][]byte
}

// NewProofBuilder creates a ProofBuilder, sampling the single m1_tilde
// shared by every credential's equality proof in this builder's lifetime.
func NewProofBuilder() (*ProofBuilder, error) {
	return newProofBuilder(rand.Reader)
}

func newProofBuilder(rng io.Reader) (*ProofBuilder, error) {
	m1Tilde, err := randomBelow(rng, LargeM2Tilde)
	if err != nil {
		return nil, fmt.Errorf("cl: new proof builder: %w: %v", ErrArithmetic, err)
	}
	return &ProofBuilder{
		rng:     rng,
		m1Tilde: m1Tilde,
		entries: make(map[string]*proofEntry),
	}, nil
}

// AddSubProofRequest builds and records the init-proof state for one
// credential, appending its non-revocation bytes (if applicable) then its
// primary bytes to the builder's running tau-list/c-list buffers, in that
// order, per §4.6 step 1.
func (b *ProofBuilder) AddSubProofRequest(keyID string, claim *ClaimSignature, values ClaimValues, pk *IssuerPublicKey, reg *RevocationRegistryPublic, request SubProofRequest, schema ClaimSchema) error {
	if claim == nil || claim.PClaim == nil || pk == nil || pk.Primary == nil {
		return fmt.Errorf("cl: add sub-proof request: %w: nil argument", ErrInvalidStructure)
	}
	if _, exists := b.entries[keyID]; exists {
		return fmt.Errorf("cl: add sub-proof request: %w: duplicate key_id %q", ErrInvalidStructure, keyID)
	}

	var nonRevoc *NonRevocInitProof
	m2Tilde := (*big.Int)(nil)

	if claim.RClaim != nil && pk.Revocation != nil && reg != nil {
		init, err := initNonRevocationProof(b.rng, claim.RClaim, pk.Revocation, reg)
		if err != nil {
			return fmt.Errorf("cl: add sub-proof request: %w", err)
		}
		nonRevoc = init
		appendTau(&b.tauList, init.TauList)
		appendC(&b.cList, init.CList)
		m2Tilde = new(big.Int).Mod(init.CListParams.M2, GroupOrder)
	}

	eq, err := initEqualityProof(b.rng, pk.Primary, claim.PClaim, schema, request, b.m1Tilde, m2Tilde)
	if err != nil {
		return fmt.Errorf("cl: add sub-proof request: %w", err)
	}
	b.cList = append(b.cList, eq.APrime.Bytes())
	b.tauList = append(b.tauList, eq.T.Bytes())

	geInits := make([]GEInitProof, 0, len(request.Predicates))
	for _, pred := range request.Predicates {
		mTilde, ok := eq.MTilde[pred.AttrName]
		if !ok {
			return fmt.Errorf("cl: add sub-proof request: %w: predicate over revealed attribute %q", ErrInvalidStructure, pred.AttrName)
		}
		ge, err := initGEProof(b.rng, pk.Primary, pred, values, mTilde)
		if err != nil {
			return fmt.Errorf("cl: add sub-proof request: %w", err)
		}
		for _, t := range ge.T {
			b.cList = append(b.cList, t.Bytes())
		}
		for _, t := range ge.TauList {
			b.tauList = append(b.tauList, t.Bytes())
		}
		geInits = append(geInits, *ge)
	}

	entry := &proofEntry{
		init: InitProof{
			Primary:         PrimaryInitProof{Eq: *eq, GE: geInits},
			NonRevoc:        nonRevoc,
			ClaimValues:     values,
			SubProofRequest: request,
			ClaimSchema:     schema,
		},
		pk:     pk,
		claim:  claim,
		values: values,
	}
	b.entries[keyID] = entry
	b.order = append(b.order, keyID)
	return nil
}

func appendTau(buf *[][]byte, t NonRevocProofTauList) {
	*buf = append(*buf, t.AsTauList()...)
}

func appendC(buf *[][]byte, c NonRevocProofCList) {
	*buf = append(*buf,
		c.E.Marshal(), c.D.Marshal(), c.A.Marshal(), c.G.Marshal(),
		c.W.Marshal(), c.S.Marshal(), c.U.Marshal(),
	)
}

// Finalize computes the Fiat-Shamir challenge over every accumulated
// tau-list byte, then every c-list byte, then the nonce, and resolves each
// credential's Schnorr-style responses against it (§4.6 step 2).
func (b *ProofBuilder) Finalize(nonce *Nonce, ms *MasterSecret) (*Proof, error) {
	if nonce == nil || ms == nil {
		return nil, fmt.Errorf("cl: finalize: %w: nil argument", ErrInvalidStructure)
	}

	cH := computeChallenge(b.tauList, b.cList, nonce)
	return AssembleProof(b.order, b.entries, ms, cH, b.cList)
}

// computeChallenge hashes tau_list || c_list || nonce.bytes and interprets
// the digest as a big integer, per §3 invariant 2.
func computeChallenge(tauList, cList [][]byte, nonce *Nonce) *big.Int {
	h := sha256.New()
	for _, b := range tauList {
		h.Write(b)
	}
	for _, b := range cList {
		h.Write(b)
	}
	h.Write(nonce.Value.Bytes())
	digest := h.Sum(nil)
	return new(big.Int).SetBytes(digest)
}

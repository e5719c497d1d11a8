package cl

import (
	"fmt"
	"math/big"
)

// AssembleProof resolves every credential accumulated by a ProofBuilder
// against a single Fiat-Shamir challenge and assembles the final Proof
// tree (§4.7), mirroring prover.rs's Prover::_prepare_proof. ProofBuilder's
// Finalize is a thin wrapper around this: it only computes cH and forwards
// its own entries map here.
func AssembleProof(order []string, entries map[string]*proofEntry, ms *MasterSecret, cH *big.Int, cList [][]byte) (*Proof, error) {
	proofs := make(map[string]SubProof, len(order))
	for _, keyID := range order {
		entry := entries[keyID]

		eqProof, err := FinalizeEqualityProof(&entry.init.Primary.Eq, ms.MS, entry.values, entry.init.SubProofRequest, cH)
		if err != nil {
			return nil, fmt.Errorf("cl: assemble proof: %w", err)
		}

		geProofs := make([]GEProof, 0, len(entry.init.Primary.GE))
		for i := range entry.init.Primary.GE {
			geProofs = append(geProofs, *FinalizeGEProof(&entry.init.Primary.GE[i], cH))
		}

		var nonRevoc *NonRevocProof
		if entry.init.NonRevoc != nil {
			nr := FinalizeNonRevocationProof(entry.init.NonRevoc, cH)
			nonRevoc = &nr
		}

		proofs[keyID] = SubProof{
			Primary:  PrimaryProof{Eq: *eqProof, GE: geProofs},
			NonRevoc: nonRevoc,
		}
	}

	cListCopy := make([][]byte, len(cList))
	copy(cListCopy, cList)

	return &Proof{
		Proofs: proofs,
		Aggregated: AggregatedProof{
			CHash: cH,
			CList: cListCopy,
		},
	}, nil
}

// AsCList returns the canonical byte encoding of a non-revocation
// sub-proof's seven c-list commitments, in the same field order
// NonRevocProofCList declares them, for a caller that needs the bytes
// independent of a running ProofBuilder (e.g. a test asserting the
// round-trip property of spec §8 item 6).
func (c NonRevocProofCList) AsCList() [][]byte {
	return [][]byte{
		c.E.Marshal(), c.D.Marshal(), c.A.Marshal(), c.G.Marshal(),
		c.W.Marshal(), c.S.Marshal(), c.U.Marshal(),
	}
}

// AsTauList returns the canonical byte encoding of the eight tau-list
// announcement commitments, in formula order (t1..t8).
func (t NonRevocProofTauList) AsTauList() [][]byte {
	t3, t4, t7, t8 := t.T3.Bytes(), t.T4.Bytes(), t.T7.Bytes(), t.T8.Bytes()
	return [][]byte{
		t.T1.Marshal(), t.T2.Marshal(), t3[:], t4[:],
		t.T5.Marshal(), t.T6.Marshal(), t7[:], t8[:],
	}
}

// AsBytes returns the equality sub-proof's c-list entry (a') and its
// tau-list entry (T), per §4.4.1.
func (e EqualityInitProof) AsBytes() ([][]byte, [][]byte) {
	cList := [][]byte{bigIntBytes(e.APrime)}
	tauList := [][]byte{bigIntBytes(e.T)}
	return cList, tauList
}

// AsBytes returns one GE-predicate sub-proof's five c-list commitments and
// six tau-list commitments, in the order §4.4.2 produces them.
func (g GEInitProof) AsBytes() ([][]byte, [][]byte) {
	cList := make([][]byte, len(g.T))
	for i, v := range g.T {
		cList[i] = bigIntBytes(v)
	}
	tauList := make([][]byte, len(g.TauList))
	for i, v := range g.TauList {
		tauList[i] = bigIntBytes(v)
	}
	return cList, tauList
}

func bigIntBytes(v *big.Int) []byte {
	return v.Bytes()
}

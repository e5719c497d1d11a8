package cl

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/hyperlog/clproof/internal/curve"
)

// UpdateWitness advances witness from the accumulator state it was last
// built against to accum's current state, using the tails the registry
// publishes. It mutates witness in place and returns only an error,
// mirroring ProcessClaimSignature's in-place contract for the fields it
// owns. Re-running it with an unchanged accumulator membership set is a
// guaranteed no-op.
func UpdateWitness(witness *NonRevocationWitness, claimIndex uint32, accum *RevocationAccumulator, tails map[uint32]bls12381.G2Affine) error {
	if witness == nil || accum == nil {
		return fmt.Errorf("cl: update witness: %w: nil argument", ErrInvalidStructure)
	}
	if _, ok := accum.V[claimIndex]; !ok {
		return fmt.Errorf("cl: update witness: %w: %w", ErrInvalidState, ErrClaimRevoked)
	}

	removedSet := setDifference(witness.V, accum.V)
	if len(removedSet) == 0 {
		witness.V = cloneSet(accum.V)
		return nil
	}
	removed := make([]uint32, 0, len(removedSet))
	for j := range removedSet {
		removed = append(removed, j)
	}

	tailFor := func(j uint32) (bls12381.G2Affine, error) {
		key := accum.MaxClaimNum + 1 - j + claimIndex
		tail, ok := tails[key]
		if !ok {
			return bls12381.G2Affine{}, fmt.Errorf("cl: update witness: %w: key not found %d in tails", ErrInvalidStructure, key)
		}
		return tail, nil
	}

	// Mirrors the reference prover's two-pass batch update: omegaDenom sums
	// every newly-revoked index's tail once, then omegaNum is rebuilt
	// incrementally so each revoked index contributes one more
	// (omegaNum-omegaDenom) term folded into the running witness.
	omegaDenom := curve.IdentityG2()
	for _, j := range removed {
		tail, err := tailFor(j)
		if err != nil {
			return err
		}
		omegaDenom = curve.AddG2(omegaDenom, tail)
	}

	omegaNum := curve.IdentityG2()
	newOmega := witness.Omega
	for _, j := range removed {
		tail, err := tailFor(j)
		if err != nil {
			return err
		}
		omegaNum = curve.AddG2(omegaNum, tail)
		newOmega = curve.AddG2(newOmega, curve.AddG2(omegaNum, curve.NegG2(omegaDenom)))
	}

	witness.Omega = newOmega
	witness.V = cloneSet(accum.V)
	return nil
}

func setDifference(a, b map[uint32]struct{}) map[uint32]struct{} {
	out := make(map[uint32]struct{})
	for k := range a {
		if _, ok := b[k]; !ok {
			out[k] = struct{}{}
		}
	}
	return out
}

func cloneSet(a map[uint32]struct{}) map[uint32]struct{} {
	out := make(map[uint32]struct{}, len(a))
	for k := range a {
		out[k] = struct{}{}
	}
	return out
}

package cl

import "math/big"

// EqualityInitProof is the prover's commitment state for the equality
// sub-proof (spec §4.4.1), before the Fiat-Shamir challenge is known.
type EqualityInitProof struct {
	APrime  *big.Int
	T       *big.Int
	EPrime  *big.Int
	ETilde  *big.Int
	VPrime  *big.Int
	VTilde  *big.Int
	MTilde  map[string]*big.Int // unrevealed attribute name -> hidden blinding scalar
	M1Tilde *big.Int
	M2Tilde *big.Int
	M2      *big.Int
}

// EqualityProof is the finalized equality sub-proof: Schnorr-style
// responses in place of the hidden commitment state.
type EqualityProof struct {
	RevealedAttrs map[string]*big.Int
	APrime        *big.Int
	E             *big.Int
	V             *big.Int
	M             map[string]*big.Int
	M1            *big.Int
	M2            *big.Int
}

// GEInitProof is the prover's commitment state for one greater-or-equal
// predicate sub-proof (spec §4.4.2).
type GEInitProof struct {
	Predicate   Predicate
	U           FourSquares
	UTilde      FourSquares
	R           FourSquares
	RTilde      FourSquares
	RDelta      *big.Int
	RTildeDelta *big.Int
	AlphaTilde  *big.Int
	MTilde      *big.Int // m_tilde[attr] bound from the equality proof
	// T holds this sub-proof's five commitments (T0..T3, TDelta), which
	// double as its contribution to the c-list.
	T [5]*big.Int
	// TauList holds calc_tge's six announcement commitments, which double
	// as this sub-proof's contribution to the tau-list.
	TauList [6]*big.Int
}

// GEProof is the finalized greater-or-equal predicate sub-proof.
type GEProof struct {
	Predicate Predicate
	U         FourSquares
	R         FourSquares
	RDelta    *big.Int
	MJ        *big.Int
	Alpha     *big.Int
}

// PrimaryInitProof bundles the equality sub-proof and every predicate
// sub-proof's pre-challenge commitment state for one credential.
type PrimaryInitProof struct {
	Eq EqualityInitProof
	GE []GEInitProof
}

// PrimaryProof bundles the finalized equality and predicate sub-proofs.
type PrimaryProof struct {
	Eq EqualityProof
	GE []GEProof
}

// NonRevocProofXList is the fourteen group-order scalars shared between the
// c-list and tau-list construction of the non-revocation sub-proof (spec
// §4.5). The field order is the canonical order used by AsList/FromList.
type NonRevocProofXList struct {
	Rho, R, RPrime, RPrimePrime, RPrimePrimePrime *big.Int
	O, OPrime                                     *big.Int
	M, MPrime                                     *big.Int
	T, TPrime                                     *big.Int
	M2, S, C                                      *big.Int
}

// AsList returns the fourteen scalars in their canonical order.
func (x NonRevocProofXList) AsList() []*big.Int {
	return []*big.Int{
		x.Rho, x.R, x.RPrime, x.RPrimePrime, x.RPrimePrimePrime,
		x.O, x.OPrime,
		x.M, x.MPrime,
		x.T, x.TPrime,
		x.M2, x.S, x.C,
	}
}

// NonRevocProofXListFromList rebuilds an NonRevocProofXList from the
// canonical-order slice produced by AsList.
func NonRevocProofXListFromList(l []*big.Int) NonRevocProofXList {
	return NonRevocProofXList{
		Rho: l[0], R: l[1], RPrime: l[2], RPrimePrime: l[3], RPrimePrimePrime: l[4],
		O: l[5], OPrime: l[6],
		M: l[7], MPrime: l[8],
		T: l[9], TPrime: l[10],
		M2: l[11], S: l[12], C: l[13],
	}
}

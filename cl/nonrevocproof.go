package cl

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/hyperlog/clproof/internal/curve"
)

// InitNonRevocationProof builds the non-revocation sub-proof's pre-challenge
// state (spec §4.5): it first advances the witness (§4.3), then derives the
// c-list commitments and tau-list announcement commitments that feed the
// Fiat-Shamir hash alongside the primary sub-proof's.
func InitNonRevocationProof(claim *NonRevocationClaimSignature, rk *RevocationPublicKey, reg *RevocationRegistryPublic) (*NonRevocInitProof, error) {
	return initNonRevocationProof(rand.Reader, claim, rk, reg)
}

func initNonRevocationProof(rng io.Reader, claim *NonRevocationClaimSignature, rk *RevocationPublicKey, reg *RevocationRegistryPublic) (*NonRevocInitProof, error) {
	if claim == nil || rk == nil || reg == nil {
		return nil, fmt.Errorf("cl: init non-revocation proof: %w: nil argument", ErrInvalidStructure)
	}

	if err := UpdateWitness(&claim.Witness, claim.I, &reg.Acc, reg.Tails); err != nil {
		return nil, fmt.Errorf("cl: init non-revocation proof: %w", err)
	}

	cParams, err := genCListParams(rng, claim)
	if err != nil {
		return nil, fmt.Errorf("cl: init non-revocation proof: %w: %v", ErrArithmetic, err)
	}
	cList := createCListValues(claim, cParams, rk)

	tauParams, err := genTauListParams(rng)
	if err != nil {
		return nil, fmt.Errorf("cl: init non-revocation proof: %w: %v", ErrArithmetic, err)
	}
	tauList, err := createTauListValues(rk, reg, tauParams, cList)
	if err != nil {
		return nil, fmt.Errorf("cl: init non-revocation proof: %w: %v", ErrArithmetic, err)
	}

	return &NonRevocInitProof{
		CListParams:   cParams,
		TauListParams: tauParams,
		CList:         cList,
		TauList:       tauList,
	}, nil
}

// genCListParams builds the fourteen group-order scalars the c-list
// commitments are built from: it samples seven independent ones, derives
// the dependent ones (m, m', t, t') from those draws per §4.5 step 2, and
// carries m2, s, c over from the claim.
func genCListParams(rng io.Reader, claim *NonRevocationClaimSignature) (NonRevocProofXList, error) {
	vals := make([]*big.Int, 7)
	for i := range vals {
		v, err := RandomInRange(rng, GroupOrder)
		if err != nil {
			return NonRevocProofXList{}, err
		}
		vals[i] = v
	}
	rho, r, rPrime, rPrimePrime, rPrimePrimePrime, o, oPrime := vals[0], vals[1], vals[2], vals[3], vals[4], vals[5], vals[6]

	m := modMul(rho, claim.C)
	mPrime := modMul(r, rPrimePrime)
	t := modMul(o, claim.C)
	tPrime := modMul(oPrime, rPrimePrime)

	return NonRevocProofXList{
		Rho: rho, R: r, RPrime: rPrime, RPrimePrime: rPrimePrime, RPrimePrimePrime: rPrimePrimePrime,
		O: o, OPrime: oPrime,
		M: m, MPrime: mPrime,
		T: t, TPrime: tPrime,
		M2: claim.M2, S: claim.VRPrimePrime, C: claim.C,
	}, nil
}

// genTauListParams samples a second, independent set of the same fourteen
// roles, used as the tau-list's hidden blinding scalars.
func genTauListParams(rng io.Reader) (NonRevocProofXList, error) {
	vals := make([]*big.Int, 14)
	for i := range vals {
		v, err := RandomInRange(rng, GroupOrder)
		if err != nil {
			return NonRevocProofXList{}, err
		}
		vals[i] = v
	}
	return NonRevocProofXListFromList(vals), nil
}

func modMul(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Mul(a, b), GroupOrder)
}

var (
	g1ScalarMul = curve.ScalarMulG1
	g1Add       = curve.AddG1
	g2ScalarMul = curve.ScalarMulG2
	g2Add       = curve.AddG2
	negG1       = curve.NegG1
)

// createCListValues computes the seven commitments of §4.5 step 3.
func createCListValues(claim *NonRevocationClaimSignature, p NonRevocProofXList, rk *RevocationPublicKey) NonRevocProofCList {
	e := g1Add(g1ScalarMul(rk.H, p.Rho), g1ScalarMul(rk.HTilde, p.O))
	d := g1Add(g1ScalarMul(rk.G, p.R), g1ScalarMul(rk.HTilde, p.OPrime))
	a := g1Add(claim.Sigma, g1ScalarMul(rk.HTilde, p.Rho))
	g := g1Add(claim.GI, g1ScalarMul(rk.HTilde, p.R))
	w := g2Add(claim.Witness.Omega, g2ScalarMul(rk.HCap, p.RPrime))
	s := g2Add(claim.Witness.SigmaI, g2ScalarMul(rk.HCap, p.RPrimePrime))
	u := g2Add(claim.Witness.UI, g2ScalarMul(rk.HCap, p.RPrimePrimePrime))
	return NonRevocProofCList{E: e, D: d, A: a, G: g, W: w, S: s, U: u}
}

// pairProd computes the multi-pairing product prod_i e(g1[i], g2[i]) with
// gnark-crypto's single multi-Pair call. Callers express an inverted
// pairing term by negating its G1 operand (bilinearity).
func pairProd(g1 []bls12381.G1Affine, g2 []bls12381.G2Affine) (bls12381.GT, error) {
	return bls12381.Pair(g1, g2)
}

// createTauListValues computes the eight announcement commitments of §6's
// bit-exact formulas, using pairing bilinearity to realize every
// exponentiated pairing term as a single scaled/negated multi-pairing call.
func createTauListValues(rk *RevocationPublicKey, reg *RevocationRegistryPublic, p NonRevocProofXList, c NonRevocProofCList) (NonRevocProofTauList, error) {
	t1 := g1Add(g1ScalarMul(rk.H, p.Rho), g1ScalarMul(rk.HTilde, p.O))
	t2 := g1Add(g1ScalarMul(c.E, p.C), negG1(g1Add(g1ScalarMul(rk.H, p.M), g1ScalarMul(rk.HTilde, p.T))))
	t5 := g1Add(g1ScalarMul(rk.G, p.R), g1ScalarMul(rk.HTilde, p.OPrime))
	t6 := g1Add(g1ScalarMul(c.D, p.RPrimePrime), negG1(g1Add(g1ScalarMul(rk.G, p.MPrime), g1ScalarMul(rk.HTilde, p.TPrime))))

	// t3 = e(A,h_cap)^c * e(htilde,h_cap)^r
	//      * ( e(htilde,y)^rho * e(htilde,h_cap)^m * e(h1,h_cap)^m2 * e(h2,h_cap)^s )^-1
	t3, err := pairProd(
		[]bls12381.G1Affine{
			g1ScalarMul(c.A, p.C),
			g1ScalarMul(rk.HTilde, p.R),
			negG1(g1ScalarMul(rk.HTilde, p.Rho)),
			negG1(g1ScalarMul(rk.HTilde, p.M)),
			negG1(g1ScalarMul(rk.H1, p.M2)),
			negG1(g1ScalarMul(rk.H2, p.S)),
		},
		[]bls12381.G2Affine{rk.HCap, rk.HCap, rk.Y, rk.HCap, rk.HCap, rk.HCap},
	)
	if err != nil {
		return NonRevocProofTauList{}, err
	}

	// t4 = e(htilde,acc)^r * e(-g,h_cap)^r'
	t4, err := pairProd(
		[]bls12381.G1Affine{g1ScalarMul(rk.HTilde, p.R), negG1(g1ScalarMul(rk.G, p.RPrime))},
		[]bls12381.G2Affine{reg.Acc.Acc, rk.HCap},
	)
	if err != nil {
		return NonRevocProofTauList{}, err
	}

	// t7 = e(pk+G,h_cap)^r'' * e(htilde,h_cap)^-m' * e(htilde,S)^r
	pkPlusG := g1Add(rk.Pk, c.G)
	t7, err := pairProd(
		[]bls12381.G1Affine{
			g1ScalarMul(pkPlusG, p.RPrimePrime),
			negG1(g1ScalarMul(rk.HTilde, p.MPrime)),
			g1ScalarMul(rk.HTilde, p.R),
		},
		[]bls12381.G2Affine{rk.HCap, rk.HCap, c.S},
	)
	if err != nil {
		return NonRevocProofTauList{}, err
	}

	// t8 = e(htilde,u)^r * e(-g,h_cap)^r'''
	t8, err := pairProd(
		[]bls12381.G1Affine{g1ScalarMul(rk.HTilde, p.R), negG1(g1ScalarMul(rk.G, p.RPrimePrimePrime))},
		[]bls12381.G2Affine{rk.U, rk.HCap},
	)
	if err != nil {
		return NonRevocProofTauList{}, err
	}

	return NonRevocProofTauList{T1: t1, T2: t2, T3: t3, T4: t4, T5: t5, T6: t6, T7: t7, T8: t8}, nil
}

// ExpectedTauList reconstructs t1..t8 from the c-list and the public
// revocation key and registry alone, with no challenge and no secret
// responses, matching §6's "Expected tau" row. It is used
// only by this package's own self-tests, as a verifier-equivalence check
// (verification itself remains out of scope).
func ExpectedTauList(rk *RevocationPublicKey, reg *RevocationRegistryPublic, c NonRevocProofCList) (NonRevocProofTauList, error) {
	t1 := c.E
	t2 := curve.IdentityG1()
	t5 := c.D
	t6 := curve.IdentityG1()

	// t3 = e(h0+G,h_cap) * e(A,y)^-1
	h0PlusG := g1Add(rk.H0, c.G)
	t3, err := pairProd(
		[]bls12381.G1Affine{h0PlusG, negG1(c.A)},
		[]bls12381.G2Affine{rk.HCap, rk.Y},
	)
	if err != nil {
		return NonRevocProofTauList{}, err
	}

	// t4 = e(G,acc) * (e(g,W) * z)^-1  ==  e(G,acc) * e(-g,W) * z^-1
	var zInv bls12381.GT
	zInv.Inverse(&reg.Key.Z)
	t4Pair, err := pairProd(
		[]bls12381.G1Affine{c.G, negG1(rk.G)},
		[]bls12381.G2Affine{reg.Acc.Acc, c.W},
	)
	if err != nil {
		return NonRevocProofTauList{}, err
	}
	t4Pair.Mul(&t4Pair, &zInv)

	// t7 = e(pk+G,S) * e(g,g')^-1
	pkPlusG := g1Add(rk.Pk, c.G)
	t7, err := pairProd(
		[]bls12381.G1Affine{pkPlusG, negG1(rk.G)},
		[]bls12381.G2Affine{c.S, rk.GDash},
	)
	if err != nil {
		return NonRevocProofTauList{}, err
	}

	// t8 = e(G,u) * e(g,U)^-1
	t8, err := pairProd(
		[]bls12381.G1Affine{c.G, negG1(rk.G)},
		[]bls12381.G2Affine{rk.U, c.U},
	)
	if err != nil {
		return NonRevocProofTauList{}, err
	}

	return NonRevocProofTauList{T1: t1, T2: t2, T3: t3, T4: t4Pair, T5: t5, T6: t6, T7: t7, T8: t8}, nil
}

// FinalizeNonRevocationProof computes the fourteen Schnorr-style responses
// of the non-revocation sub-proof: x_list_i = tau_x_i - c_h*c_x_i mod q.
func FinalizeNonRevocationProof(init *NonRevocInitProof, cH *big.Int) NonRevocProof {
	tau := init.TauListParams.AsList()
	c := init.CListParams.AsList()
	x := make([]*big.Int, len(tau))
	for i := range tau {
		cx := new(big.Int).Mod(new(big.Int).Mul(cH, c[i]), GroupOrder)
		x[i] = new(big.Int).Mod(new(big.Int).Sub(tau[i], cx), GroupOrder)
	}
	return NonRevocProof{
		XList: NonRevocProofXListFromList(x),
		CList: init.CList,
	}
}

package cl

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// ProcessClaimSignature folds the prover's blinding factors into a freshly
// issued signature and, when the credential supports revocation, verifies
// the issuer's three pairing identities before the signature is trusted.
// It mutates claim in place, mirroring the issued-signature's ownership:
// the caller holds the only copy, and this call is how it becomes usable.
func ProcessClaimSignature(claim *ClaimSignature, blinded *BlindedMasterSecretData, pk *IssuerPublicKey, reg *RevocationRegistryPublic) error {
	if claim == nil || claim.PClaim == nil || blinded == nil || pk == nil || pk.Primary == nil {
		return fmt.Errorf("cl: process claim signature: %w: nil argument", ErrInvalidStructure)
	}

	claim.PClaim.V = new(big.Int).Add(blinded.VPrime, claim.PClaim.V)

	if claim.RClaim == nil || blinded.VRPrime == nil || pk.Revocation == nil || reg == nil {
		return nil
	}

	claim.RClaim.VRPrimePrime = new(big.Int).Mod(
		new(big.Int).Add(blinded.VRPrime, claim.RClaim.VRPrimePrime),
		GroupOrder,
	)

	return verifyRevocationSignature(claim.RClaim, pk.Revocation, reg)
}

// verifyRevocationSignature checks the three pairing identities of
// §4.2: accumulator membership, issuer-witness consistency, and the
// revocation-side signature equation. Any mismatch means the issuer sent
// incorrect (or malicious) data and the credential must not be trusted.
func verifyRevocationSignature(rc *NonRevocationClaimSignature, rk *RevocationPublicKey, reg *RevocationRegistryPublic) error {
	w := rc.Witness

	// e(g_i, acc) * e(g, omega)^-1 == z
	var negG bls12381.G1Affine
	negG.Neg(&rk.G)
	lhs, err := bls12381.Pair(
		[]bls12381.G1Affine{w.GI, negG},
		[]bls12381.G2Affine{reg.Acc.Acc, w.Omega},
	)
	if err != nil {
		return fmt.Errorf("cl: process claim signature: %w: %v", ErrArithmetic, err)
	}
	if !lhs.Equal(&reg.Key.Z) {
		return fmt.Errorf("cl: process claim signature: %w: accumulator membership identity failed", ErrInvalidStructure)
	}

	// e(pk + g_i, sigma_i) == e(g, g')
	var pkPlusGiJac bls12381.G1Jac
	pkPlusGiJac.FromAffine(&rk.Pk)
	var giJac bls12381.G1Jac
	giJac.FromAffine(&w.GI)
	pkPlusGiJac.AddAssign(&giJac)
	var pkPlusGi bls12381.G1Affine
	pkPlusGi.FromJacobian(&pkPlusGiJac)

	rhs, err := bls12381.Pair(
		[]bls12381.G1Affine{pkPlusGi, negG},
		[]bls12381.G2Affine{w.SigmaI, rk.GDash},
	)
	if err != nil {
		return fmt.Errorf("cl: process claim signature: %w: %v", ErrArithmetic, err)
	}
	if !rhs.IsOne() {
		return fmt.Errorf("cl: process claim signature: %w: witness consistency identity failed", ErrInvalidStructure)
	}

	// e(sigma, y + h_cap*c) == e(h0 + h1*m2 + h2*vr'' + g_i, h_cap)
	var hCapCJac bls12381.G2Jac
	hCapCJac.FromAffine(&rk.HCap)
	hCapCJac.ScalarMultiplication(&hCapCJac, rc.C)
	var yJac bls12381.G2Jac
	yJac.FromAffine(&rk.Y)
	hCapCJac.AddAssign(&yJac)
	var yPlusHCapC bls12381.G2Affine
	yPlusHCapC.FromJacobian(&hCapCJac)

	var acc bls12381.G1Jac
	acc.FromAffine(&rk.H0)
	var h1m2 bls12381.G1Jac
	h1m2.FromAffine(&rk.H1)
	h1m2.ScalarMultiplication(&h1m2, rc.M2)
	acc.AddAssign(&h1m2)
	var h2vr bls12381.G1Jac
	h2vr.FromAffine(&rk.H2)
	h2vr.ScalarMultiplication(&h2vr, rc.VRPrimePrime)
	acc.AddAssign(&h2vr)
	acc.AddAssign(&giJac)
	var sumPoint bls12381.G1Affine
	sumPoint.FromJacobian(&acc)

	var negSigma bls12381.G1Affine
	negSigma.Neg(&rc.Sigma)
	eq, err := bls12381.Pair(
		[]bls12381.G1Affine{negSigma, sumPoint},
		[]bls12381.G2Affine{yPlusHCapC, rk.HCap},
	)
	if err != nil {
		return fmt.Errorf("cl: process claim signature: %w: %v", ErrArithmetic, err)
	}
	if !eq.IsOne() {
		return fmt.Errorf("cl: process claim signature: %w: signature equation failed", ErrInvalidStructure)
	}

	return nil
}

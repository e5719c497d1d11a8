package cl

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// NewMasterSecret draws a fresh master secret: a uniform LargeMasterSecret-bit
// integer, long-lived and never sent to an issuer or verifier directly.
func NewMasterSecret() (*MasterSecret, error) {
	return newMasterSecret(rand.Reader)
}

func newMasterSecret(rng io.Reader) (*MasterSecret, error) {
	ms, err := randomBelow(rng, LargeMasterSecret)
	if err != nil {
		return nil, fmt.Errorf("cl: new master secret: %w: %v", ErrArithmetic, err)
	}
	return &MasterSecret{MS: ms}, nil
}

// Blind produces the commitment sent to an issuer and the blinding factors
// the caller must retain until ProcessClaimSignature. U leaks nothing about
// ms, statistically, due to VPrime's range; Ur is only computed when pk
// carries a revocation part.
func Blind(pk *IssuerPublicKey, ms *MasterSecret) (*BlindedMasterSecret, *BlindedMasterSecretData, error) {
	return blind(rand.Reader, pk, ms)
}

func blind(rng io.Reader, pk *IssuerPublicKey, ms *MasterSecret) (*BlindedMasterSecret, *BlindedMasterSecretData, error) {
	if pk == nil || pk.Primary == nil {
		return nil, nil, fmt.Errorf("cl: blind: %w: nil issuer primary public key", ErrInvalidStructure)
	}

	vPrime, err := randomBelow(rng, LargeVPrime)
	if err != nil {
		return nil, nil, fmt.Errorf("cl: blind: %w: %v", ErrArithmetic, err)
	}

	n := pk.Primary.N
	// U = s^v' * rms^ms mod n
	sv := new(big.Int).Exp(pk.Primary.S, vPrime, n)
	rmsMs := new(big.Int).Exp(pk.Primary.RMS, ms.MS, n)
	u := new(big.Int).Mod(new(big.Int).Mul(sv, rmsMs), n)

	blinded := &BlindedMasterSecret{U: u}
	data := &BlindedMasterSecretData{VPrime: vPrime}

	if pk.Revocation != nil {
		vrPrime, err := RandomInRange(rng, GroupOrder)
		if err != nil {
			return nil, nil, fmt.Errorf("cl: blind: %w: %v", ErrArithmetic, err)
		}
		data.VRPrime = vrPrime

		var urJac bls12381.G1Jac
		urJac.FromAffine(&pk.Revocation.H2)
		urJac.ScalarMultiplication(&urJac, vrPrime)
		var ur bls12381.G1Affine
		ur.FromJacobian(&urJac)
		blinded.Ur = &ur
	}

	return blinded, data, nil
}

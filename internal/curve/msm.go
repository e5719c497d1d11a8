package curve

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// IdentityG1 returns the G1 point at infinity in affine form.
func IdentityG1() bls12381.G1Affine {
	var jac bls12381.G1Jac
	jac.X.SetOne()
	jac.Y.SetOne()
	jac.Z.SetZero()
	var out bls12381.G1Affine
	out.FromJacobian(&jac)
	return out
}

// IdentityG2 returns the G2 point at infinity in affine form.
func IdentityG2() bls12381.G2Affine {
	var jac bls12381.G2Jac
	jac.X.SetOne()
	jac.Y.SetOne()
	jac.Z.SetZero()
	var out bls12381.G2Affine
	out.FromJacobian(&jac)
	return out
}

// ScalarMulG1 computes p*s in G1, round-tripping through Jacobian
// coordinates.
func ScalarMulG1(p bls12381.G1Affine, s *big.Int) bls12381.G1Affine {
	var jac bls12381.G1Jac
	jac.FromAffine(&p)
	jac.ScalarMultiplication(&jac, s)
	var out bls12381.G1Affine
	out.FromJacobian(&jac)
	return out
}

// AddG1 computes a+b in G1.
func AddG1(a, b bls12381.G1Affine) bls12381.G1Affine {
	var aJac, bJac bls12381.G1Jac
	aJac.FromAffine(&a)
	bJac.FromAffine(&b)
	aJac.AddAssign(&bJac)
	var out bls12381.G1Affine
	out.FromJacobian(&aJac)
	return out
}

// NegG1 computes -p in G1.
func NegG1(p bls12381.G1Affine) bls12381.G1Affine {
	var out bls12381.G1Affine
	out.Neg(&p)
	return out
}

// ScalarMulG2 computes p*s in G2.
func ScalarMulG2(p bls12381.G2Affine, s *big.Int) bls12381.G2Affine {
	var jac bls12381.G2Jac
	jac.FromAffine(&p)
	jac.ScalarMultiplication(&jac, s)
	var out bls12381.G2Affine
	out.FromJacobian(&jac)
	return out
}

// AddG2 computes a+b in G2.
func AddG2(a, b bls12381.G2Affine) bls12381.G2Affine {
	var aJac, bJac bls12381.G2Jac
	aJac.FromAffine(&a)
	bJac.FromAffine(&b)
	aJac.AddAssign(&bJac)
	var out bls12381.G2Affine
	out.FromJacobian(&aJac)
	return out
}

// NegG2 computes -p in G2.
func NegG2(p bls12381.G2Affine) bls12381.G2Affine {
	var out bls12381.G2Affine
	out.Neg(&p)
	return out
}

// MSMG1 computes sum(points[i]*scalars[i]) in G1.
func MSMG1(points []bls12381.G1Affine, scalars []*big.Int) (bls12381.G1Affine, error) {
	if len(points) != len(scalars) {
		return bls12381.G1Affine{}, fmt.Errorf("curve: msm g1: mismatched lengths: %d points, %d scalars", len(points), len(scalars))
	}
	if len(points) == 0 {
		return IdentityG1(), nil
	}

	frScalars := make([]fr.Element, len(scalars))
	for i, s := range scalars {
		if s == nil {
			return bls12381.G1Affine{}, fmt.Errorf("curve: msm g1: nil scalar at index %d", i)
		}
		frScalars[i].SetBigInt(s)
	}

	var result bls12381.G1Jac
	result.X.SetOne()
	result.Y.SetOne()
	result.Z.SetZero()
	for i := range points {
		if frScalars[i].IsZero() || points[i].IsInfinity() {
			continue
		}
		var scalarBig big.Int
		frScalars[i].ToBigIntRegular(&scalarBig)
		var tmp bls12381.G1Jac
		tmp.FromAffine(&points[i])
		tmp.ScalarMultiplication(&tmp, &scalarBig)
		result.AddAssign(&tmp)
	}

	var out bls12381.G1Affine
	out.FromJacobian(&result)
	return out, nil
}

// MSMG2 is MSMG1's G2 counterpart: it computes sum(points[i]*scalars[i])
// in G2.
func MSMG2(points []bls12381.G2Affine, scalars []*big.Int) (bls12381.G2Affine, error) {
	if len(points) != len(scalars) {
		return bls12381.G2Affine{}, fmt.Errorf("curve: msm g2: mismatched lengths: %d points, %d scalars", len(points), len(scalars))
	}
	if len(points) == 0 {
		return IdentityG2(), nil
	}

	frScalars := make([]fr.Element, len(scalars))
	for i, s := range scalars {
		if s == nil {
			return bls12381.G2Affine{}, fmt.Errorf("curve: msm g2: nil scalar at index %d", i)
		}
		frScalars[i].SetBigInt(s)
	}

	var result bls12381.G2Jac
	result.X.SetOne()
	result.Y.SetOne()
	result.Z.SetZero()
	for i := range points {
		if frScalars[i].IsZero() || points[i].IsInfinity() {
			continue
		}
		var scalarBig big.Int
		frScalars[i].ToBigIntRegular(&scalarBig)
		var tmp bls12381.G2Jac
		tmp.FromAffine(&points[i])
		tmp.ScalarMultiplication(&tmp, &scalarBig)
		result.AddAssign(&tmp)
	}

	var out bls12381.G2Affine
	out.FromJacobian(&result)
	return out, nil
}

package cl

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// InitEqualityProof builds the equality sub-proof's pre-challenge commitment
// state (spec §4.4.1). m1Tilde is sampled once per ProofBuilder and shared
// across every credential's equality proof; m2Tilde is sampled fresh unless
// the caller supplies one (a revocation-enabled credential threads its
// NonRevocProofInit's m2 scalar in here instead).
func InitEqualityProof(pk *PrimaryPublicKey, claim *PrimaryClaimSignature, schema ClaimSchema, request SubProofRequest, m1Tilde *big.Int, m2Tilde *big.Int) (*EqualityInitProof, error) {
	return initEqualityProof(rand.Reader, pk, claim, schema, request, m1Tilde, m2Tilde)
}

func initEqualityProof(rng io.Reader, pk *PrimaryPublicKey, claim *PrimaryClaimSignature, schema ClaimSchema, request SubProofRequest, m1Tilde, m2Tilde *big.Int) (*EqualityInitProof, error) {
	if pk == nil || claim == nil {
		return nil, fmt.Errorf("cl: init equality proof: %w: nil argument", ErrInvalidStructure)
	}

	r, err := randomBelow(rng, LargeVPrime)
	if err != nil {
		return nil, fmt.Errorf("cl: init equality proof: %w: %v", ErrArithmetic, err)
	}
	eTilde, err := randomBelow(rng, LargeETilde)
	if err != nil {
		return nil, fmt.Errorf("cl: init equality proof: %w: %v", ErrArithmetic, err)
	}
	vTilde, err := randomBelow(rng, LargeVTilde)
	if err != nil {
		return nil, fmt.Errorf("cl: init equality proof: %w: %v", ErrArithmetic, err)
	}
	if m2Tilde == nil {
		m2Tilde, err = randomBelow(rng, LargeMVect)
		if err != nil {
			return nil, fmt.Errorf("cl: init equality proof: %w: %v", ErrArithmetic, err)
		}
	}

	mTilde := make(map[string]*big.Int)
	for attr := range schema.Attrs {
		if _, revealed := request.RevealedAttrs[attr]; revealed {
			continue
		}
		v, err := randomBelow(rng, LargeMVect)
		if err != nil {
			return nil, fmt.Errorf("cl: init equality proof: %w: %v", ErrArithmetic, err)
		}
		mTilde[attr] = v
	}

	n := pk.N
	aPrime := new(big.Int).Mod(new(big.Int).Mul(new(big.Int).Exp(pk.S, r, n), claim.A), n)
	vPrime := new(big.Int).Sub(claim.V, new(big.Int).Mul(claim.E, r))
	ePrime := new(big.Int).Sub(claim.E, new(big.Int).Lsh(big.NewInt(1), LargeEStart))

	t := calcTEq(pk, aPrime, ePrime, eTilde, vTilde, mTilde, m1Tilde, m2Tilde)

	return &EqualityInitProof{
		APrime:  aPrime,
		T:       t,
		EPrime:  ePrime,
		ETilde:  eTilde,
		VPrime:  vPrime,
		VTilde:  vTilde,
		MTilde:  mTilde,
		M1Tilde: m1Tilde,
		M2Tilde: m2Tilde,
		M2:      claim.M2,
	}, nil
}

// calcTEq computes the equality sub-proof's single commitment: the product,
// mod n, of a'^e_tilde, s^v_tilde, rms^m1_tilde, z^m2_tilde, and
// r_attr^m_tilde[attr] for every unrevealed attribute.
func calcTEq(pk *PrimaryPublicKey, aPrime, ePrime, eTilde, vTilde *big.Int, mTilde map[string]*big.Int, m1Tilde, m2Tilde *big.Int) *big.Int {
	n := pk.N
	t := new(big.Int).Exp(aPrime, eTilde, n)
	t.Mul(t, new(big.Int).Exp(pk.S, vTilde, n))
	t.Mod(t, n)
	t.Mul(t, new(big.Int).Exp(pk.RMS, m1Tilde, n))
	t.Mod(t, n)
	t.Mul(t, new(big.Int).Exp(pk.Z, m2Tilde, n))
	t.Mod(t, n)
	for attr, m := range mTilde {
		r, ok := pk.R[attr]
		if !ok {
			continue
		}
		t.Mul(t, new(big.Int).Exp(r, m, n))
		t.Mod(t, n)
	}
	_ = ePrime // retained in the init proof, not part of T's formula itself
	return t
}

// FinalizeEqualityProof computes the Schnorr-style responses of §4.6 step 2
// from the init proof, the Fiat-Shamir challenge, and the real attribute
// values. All arithmetic here is pure, unreduced big.Int arithmetic (no
// modulus), matching the original prover's finalize step exactly.
func FinalizeEqualityProof(init *EqualityInitProof, ms *big.Int, values ClaimValues, request SubProofRequest, cH *big.Int) (*EqualityProof, error) {
	e := new(big.Int).Add(new(big.Int).Mul(cH, init.EPrime), init.ETilde)
	v := new(big.Int).Add(new(big.Int).Mul(cH, init.VPrime), init.VTilde)
	m1 := new(big.Int).Add(new(big.Int).Mul(cH, ms), init.M1Tilde)

	m := make(map[string]*big.Int, len(init.MTilde))
	for attr, mTilde := range init.MTilde {
		val, ok := values.AttrValues[attr]
		if !ok {
			return nil, fmt.Errorf("cl: finalize equality proof: %w: missing value for attribute %q", ErrInvalidStructure, attr)
		}
		m[attr] = new(big.Int).Add(new(big.Int).Mul(cH, val), mTilde)
	}

	m2 := new(big.Int).Add(new(big.Int).Mul(cH, init.M2), init.M2Tilde)

	revealed := make(map[string]*big.Int, len(request.RevealedAttrs))
	for attr := range request.RevealedAttrs {
		val, ok := values.AttrValues[attr]
		if !ok {
			return nil, fmt.Errorf("cl: finalize equality proof: %w: missing value for revealed attribute %q", ErrInvalidStructure, attr)
		}
		revealed[attr] = val
	}

	return &EqualityProof{
		RevealedAttrs: revealed,
		APrime:        init.APrime,
		E:             e,
		V:             v,
		M:             m,
		M1:            m1,
		M2:            m2,
	}, nil
}

// InitGEProof builds a single greater-or-equal predicate sub-proof's
// pre-challenge commitment state (spec §4.4.2). mTilde is the hidden
// blinding scalar InitEqualityProof sampled for this predicate's attribute,
// binding the two sub-proofs to the same hidden value.
func InitGEProof(pk *PrimaryPublicKey, predicate Predicate, claimValues ClaimValues, mTilde *big.Int) (*GEInitProof, error) {
	return initGEProof(rand.Reader, pk, predicate, claimValues, mTilde)
}

func initGEProof(rng io.Reader, pk *PrimaryPublicKey, predicate Predicate, claimValues ClaimValues, mTilde *big.Int) (*GEInitProof, error) {
	attrVal, ok := claimValues.AttrValues[predicate.AttrName]
	if !ok {
		return nil, fmt.Errorf("cl: init GE proof: %w: missing value for attribute %q", ErrInvalidStructure, predicate.AttrName)
	}

	delta := new(big.Int).Sub(attrVal, big.NewInt(predicate.Value))
	if delta.Sign() < 0 {
		return nil, fmt.Errorf("cl: init GE proof: %w: %w", ErrInvalidStructure, ErrPredicateNotSatisfied)
	}

	u, err := lagrangeFourSquares(delta)
	if err != nil {
		return nil, fmt.Errorf("cl: init GE proof: %w", err)
	}

	var r, uTilde, rTilde FourSquares
	rVals := [4]*big.Int{}
	for i := 0; i < Iteration; i++ {
		v, err := randomBelow(rng, LargeVPrime)
		if err != nil {
			return nil, fmt.Errorf("cl: init GE proof: %w: %v", ErrArithmetic, err)
		}
		rVals[i] = v
	}
	r = FourSquares{U0: rVals[0], U1: rVals[1], U2: rVals[2], U3: rVals[3]}

	rDelta, err := randomBelow(rng, LargeVPrime)
	if err != nil {
		return nil, fmt.Errorf("cl: init GE proof: %w: %v", ErrArithmetic, err)
	}

	uTildeVals := [4]*big.Int{}
	rTildeVals := [4]*big.Int{}
	for i := 0; i < Iteration; i++ {
		uv, err := randomBelow(rng, LargeUTilde)
		if err != nil {
			return nil, fmt.Errorf("cl: init GE proof: %w: %v", ErrArithmetic, err)
		}
		uTildeVals[i] = uv
		rv, err := randomBelow(rng, LargeRTilde)
		if err != nil {
			return nil, fmt.Errorf("cl: init GE proof: %w: %v", ErrArithmetic, err)
		}
		rTildeVals[i] = rv
	}
	uTilde = FourSquares{U0: uTildeVals[0], U1: uTildeVals[1], U2: uTildeVals[2], U3: uTildeVals[3]}
	rTilde = FourSquares{U0: rTildeVals[0], U1: rTildeVals[1], U2: rTildeVals[2], U3: rTildeVals[3]}

	rTildeDelta, err := randomBelow(rng, LargeRTilde)
	if err != nil {
		return nil, fmt.Errorf("cl: init GE proof: %w: %v", ErrArithmetic, err)
	}
	alphaTilde, err := randomBelow(rng, LargeAlphaTilde)
	if err != nil {
		return nil, fmt.Errorf("cl: init GE proof: %w: %v", ErrArithmetic, err)
	}

	n := pk.N
	var t [5]*big.Int
	uVals := u.Values()
	for i := 0; i < Iteration; i++ {
		zu := new(big.Int).Exp(pk.Z, uVals[i], n)
		sr := new(big.Int).Exp(pk.S, r.Values()[i], n)
		t[i] = new(big.Int).Mod(new(big.Int).Mul(zu, sr), n)
	}
	zDelta := new(big.Int).Exp(pk.Z, delta, n)
	sRDelta := new(big.Int).Exp(pk.S, rDelta, n)
	t[4] = new(big.Int).Mod(new(big.Int).Mul(zDelta, sRDelta), n)

	tauList := calcTGE(pk, uTilde, rTilde, mTilde, rTildeDelta, alphaTilde, t)

	return &GEInitProof{
		Predicate:   predicate,
		U:           u,
		UTilde:      uTilde,
		R:           r,
		RTilde:      rTilde,
		RDelta:      rDelta,
		RTildeDelta: rTildeDelta,
		AlphaTilde:  alphaTilde,
		MTilde:      mTilde,
		T:           t,
		TauList:     tauList,
	}, nil
}

// calcTGE computes the six announcement commitments of the GE sub-proof:
// one per four-squares component, the m_j binding commitment, and the
// quadratic-relation witness z^alpha_tilde.
func calcTGE(pk *PrimaryPublicKey, uTilde, rTilde FourSquares, mTilde, rTildeDelta, alphaTilde *big.Int, t [5]*big.Int) [6]*big.Int {
	n := pk.N
	var out [6]*big.Int
	uVals := uTilde.Values()
	rVals := rTilde.Values()
	for i := 0; i < Iteration; i++ {
		zu := new(big.Int).Exp(pk.Z, uVals[i], n)
		sr := new(big.Int).Exp(pk.S, rVals[i], n)
		out[i] = new(big.Int).Mod(new(big.Int).Mul(zu, sr), n)
	}

	mj := new(big.Int).Exp(pk.Z, mTilde, n)
	srd := new(big.Int).Exp(pk.S, rTildeDelta, n)
	mj.Mul(mj, srd)
	mj.Mod(mj, n)
	for i := 0; i < Iteration; i++ {
		mj.Mul(mj, new(big.Int).Exp(t[i], uVals[i], n))
		mj.Mod(mj, n)
	}
	out[4] = mj

	out[5] = new(big.Int).Exp(pk.Z, alphaTilde, n)
	return out
}

// FinalizeGEProof computes the GE sub-proof's Schnorr-style responses
// (spec §4.6 step 2), via pure unreduced big.Int arithmetic.
func FinalizeGEProof(init *GEInitProof, cH *big.Int) *GEProof {
	uVals := init.U.Values()
	uTildeVals := init.UTilde.Values()
	rVals := init.R.Values()
	rTildeVals := init.RTilde.Values()

	uResp := [4]*big.Int{}
	rResp := [4]*big.Int{}
	for i := 0; i < Iteration; i++ {
		uResp[i] = new(big.Int).Add(new(big.Int).Mul(cH, uVals[i]), uTildeVals[i])
		rResp[i] = new(big.Int).Add(new(big.Int).Mul(cH, rVals[i]), rTildeVals[i])
	}

	rDeltaResp := new(big.Int).Add(new(big.Int).Mul(cH, init.RDelta), init.RTildeDelta)

	uDotR := new(big.Int)
	for i := 0; i < Iteration; i++ {
		uDotR.Add(uDotR, new(big.Int).Mul(uVals[i], rVals[i]))
	}
	diff := new(big.Int).Sub(init.RDelta, uDotR)
	alpha := new(big.Int).Add(new(big.Int).Mul(cH, diff), init.AlphaTilde)

	return &GEProof{
		Predicate: init.Predicate,
		U:         FourSquares{U0: uResp[0], U1: uResp[1], U2: uResp[2], U3: uResp[3]},
		R:         FourSquares{U0: rResp[0], U1: rResp[1], U2: rResp[2], U3: rResp[3]},
		RDelta:    rDeltaResp,
		MJ:        init.MTilde,
		Alpha:     alpha,
	}
}

package main

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/hyperlog/clproof/cl"
)

// syntheticKeyPair builds a primary public key and a matching primary claim
// signature good enough to drive proof *construction* (the arithmetic
// InitEqualityProof/InitGEProof perform has no issuer-signature validity
// check baked in); it is not a validly issued credential, since issuer
// signing is out of scope here, same as the rest of this module.
func syntheticKeyPair(attrNames []string) (*cl.PrimaryPublicKey, *cl.PrimaryClaimSignature, error) {
	p, err := rand.Prime(rand.Reader, 1024)
	if err != nil {
		return nil, nil, fmt.Errorf("clbench: generate prime: %w", err)
	}
	q, err := rand.Prime(rand.Reader, 1024)
	if err != nil {
		return nil, nil, fmt.Errorf("clbench: generate prime: %w", err)
	}
	n := new(big.Int).Mul(p, q)

	randomBelowN := func() (*big.Int, error) {
		return rand.Int(rand.Reader, n)
	}

	s, err := randomBelowN()
	if err != nil {
		return nil, nil, err
	}
	z, err := randomBelowN()
	if err != nil {
		return nil, nil, err
	}
	rms, err := randomBelowN()
	if err != nil {
		return nil, nil, err
	}
	r := make(map[string]*big.Int, len(attrNames))
	for _, name := range attrNames {
		v, err := randomBelowN()
		if err != nil {
			return nil, nil, err
		}
		r[name] = v
	}

	pk := &cl.PrimaryPublicKey{N: n, S: s, Z: z, RMS: rms, R: r}

	e, err := rand.Prime(rand.Reader, cl.LargeEStart)
	if err != nil {
		return nil, nil, err
	}
	a, err := randomBelowN()
	if err != nil {
		return nil, nil, err
	}
	v, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), cl.LargeVPrime))
	if err != nil {
		return nil, nil, err
	}
	m2, err := randomBelowN()
	if err != nil {
		return nil, nil, err
	}

	claim := &cl.PrimaryClaimSignature{M2: m2, A: a, E: e, V: v}
	return pk, claim, nil
}

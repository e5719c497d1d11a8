package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/hyperlog/clproof/cl"
)

// This CLI drives the primary (RSA-modulus) half of the pipeline end to
// end against JSON fixtures; issuer signing and revocation setup are out
// of scope for the prover, so keypair and claim-signature fixtures are
// supplied externally. Revocation-aware proving is reachable only through
// package cl directly, not through this CLI.

// issuerPublicKeyJSON is the JSON fixture shape for a primary public key.
type issuerPublicKeyJSON struct {
	N   string            `json:"n"`
	S   string            `json:"s"`
	Z   string            `json:"z"`
	RMS string            `json:"rms"`
	R   map[string]string `json:"r"`
}

func (j issuerPublicKeyJSON) toPrimaryPublicKey() (*cl.PrimaryPublicKey, error) {
	n, ok := new(big.Int).SetString(j.N, 10)
	if !ok {
		return nil, fmt.Errorf("keypair: invalid n")
	}
	s, ok := new(big.Int).SetString(j.S, 10)
	if !ok {
		return nil, fmt.Errorf("keypair: invalid s")
	}
	z, ok := new(big.Int).SetString(j.Z, 10)
	if !ok {
		return nil, fmt.Errorf("keypair: invalid z")
	}
	rms, ok := new(big.Int).SetString(j.RMS, 10)
	if !ok {
		return nil, fmt.Errorf("keypair: invalid rms")
	}
	r := make(map[string]*big.Int, len(j.R))
	for name, v := range j.R {
		bi, ok := new(big.Int).SetString(v, 10)
		if !ok {
			return nil, fmt.Errorf("keypair: invalid r[%s]", name)
		}
		r[name] = bi
	}
	return &cl.PrimaryPublicKey{N: n, S: s, Z: z, RMS: rms, R: r}, nil
}

// masterSecretJSON is the JSON fixture shape for a master secret.
type masterSecretJSON struct {
	MS string `json:"ms"`
}

func (j masterSecretJSON) toMasterSecret() (*cl.MasterSecret, error) {
	ms, ok := new(big.Int).SetString(j.MS, 10)
	if !ok {
		return nil, fmt.Errorf("mastersecret: invalid ms")
	}
	return &cl.MasterSecret{MS: ms}, nil
}

func masterSecretToJSON(ms *cl.MasterSecret) masterSecretJSON {
	return masterSecretJSON{MS: ms.MS.String()}
}

// blindedJSON is the JSON fixture shape for the blinded commitment sent to
// an issuer, and the blinding factors the prover retains.
type blindedJSON struct {
	U      string `json:"u"`
	VPrime string `json:"v_prime"`
}

// primaryClaimJSON is the JSON fixture shape for an issued primary claim
// signature, base64-encoding its canonical binary form.
type primaryClaimJSON struct {
	Signature string `json:"signature"`
}

func primaryClaimToJSON(sig *cl.PrimaryClaimSignature) (primaryClaimJSON, error) {
	b, err := sig.MarshalBinary()
	if err != nil {
		return primaryClaimJSON{}, err
	}
	return primaryClaimJSON{Signature: base64.StdEncoding.EncodeToString(b)}, nil
}

func (j primaryClaimJSON) toPrimaryClaim() (*cl.PrimaryClaimSignature, error) {
	b, err := base64.StdEncoding.DecodeString(j.Signature)
	if err != nil {
		return nil, fmt.Errorf("claim: invalid base64: %w", err)
	}
	sig := &cl.PrimaryClaimSignature{}
	if err := sig.UnmarshalBinary(b); err != nil {
		return nil, fmt.Errorf("claim: %w", err)
	}
	return sig, nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

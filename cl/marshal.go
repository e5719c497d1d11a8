package cl

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Canonical wire format: every variable-length field is a 4-byte big-endian
// length prefix followed by its bytes; every curve point uses gnark-crypto's
// fixed-width compressed encoding (Bytes/SetBytes).

func writeBigInt(buf *bytes.Buffer, v *big.Int) error {
	b := v.Bytes()
	if err := binary.Write(buf, binary.BigEndian, uint32(len(b))); err != nil {
		return err
	}
	_, err := buf.Write(b)
	return err
}

func readBigInt(r *bytes.Reader) (*big.Int, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, err
	}
	b := make([]byte, n)
	if _, err := r.Read(b); err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}

func writeG1(buf *bytes.Buffer, p bls12381.G1Affine) error {
	b := p.Bytes()
	_, err := buf.Write(b[:])
	return err
}

func readG1(r *bytes.Reader) (bls12381.G1Affine, error) {
	var p bls12381.G1Affine
	b := make([]byte, bls12381.SizeOfG1AffineCompressed)
	if _, err := r.Read(b); err != nil {
		return p, err
	}
	_, err := p.SetBytes(b)
	return p, err
}

func writeG2(buf *bytes.Buffer, p bls12381.G2Affine) error {
	b := p.Bytes()
	_, err := buf.Write(b[:])
	return err
}

func readG2(r *bytes.Reader) (bls12381.G2Affine, error) {
	var p bls12381.G2Affine
	b := make([]byte, bls12381.SizeOfG2AffineCompressed)
	if _, err := r.Read(b); err != nil {
		return p, err
	}
	_, err := p.SetBytes(b)
	return p, err
}

// MarshalBinary encodes a PrimaryClaimSignature.
func (s *PrimaryClaimSignature) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	for _, v := range []*big.Int{s.M2, s.A, s.E, s.V} {
		if err := writeBigInt(buf, v); err != nil {
			return nil, fmt.Errorf("cl: marshal primary claim signature: %w", err)
		}
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a PrimaryClaimSignature.
func (s *PrimaryClaimSignature) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	vals := make([]*big.Int, 4)
	for i := range vals {
		v, err := readBigInt(r)
		if err != nil {
			return fmt.Errorf("cl: unmarshal primary claim signature: %w", err)
		}
		vals[i] = v
	}
	s.M2, s.A, s.E, s.V = vals[0], vals[1], vals[2], vals[3]
	return nil
}

// MarshalBinary encodes a NonRevocationClaimSignature's signature-bearing
// fields (sigma, c, v_r_prime_prime, m2, g_i, i); the witness is re-derived from the
// registry rather than serialized alongside it.
func (s *NonRevocationClaimSignature) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := writeG1(buf, s.Sigma); err != nil {
		return nil, err
	}
	for _, v := range []*big.Int{s.C, s.VRPrimePrime, s.M2} {
		if err := writeBigInt(buf, v); err != nil {
			return nil, err
		}
	}
	if err := writeG1(buf, s.GI); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, s.I); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a NonRevocationClaimSignature's signature-bearing
// fields. Callers must populate Witness separately.
func (s *NonRevocationClaimSignature) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	sigma, err := readG1(r)
	if err != nil {
		return err
	}
	s.Sigma = sigma
	vals := make([]*big.Int, 3)
	for i := range vals {
		v, err := readBigInt(r)
		if err != nil {
			return err
		}
		vals[i] = v
	}
	s.C, s.VRPrimePrime, s.M2 = vals[0], vals[1], vals[2]
	gi, err := readG1(r)
	if err != nil {
		return err
	}
	s.GI = gi
	return binary.Read(r, binary.BigEndian, &s.I)
}

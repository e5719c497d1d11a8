package cl

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/big"
)

func writeString(buf *bytes.Buffer, s string) error {
	if err := binary.Write(buf, binary.BigEndian, uint32(len(s))); err != nil {
		return err
	}
	_, err := buf.WriteString(s)
	return err
}

func readString(r *bytes.Reader) (string, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return "", err
	}
	b := make([]byte, n)
	if _, err := r.Read(b); err != nil {
		return "", err
	}
	return string(b), nil
}

func writeBigIntMap(buf *bytes.Buffer, m map[string]*big.Int) error {
	if err := binary.Write(buf, binary.BigEndian, uint32(len(m))); err != nil {
		return err
	}
	for name, v := range m {
		if err := writeString(buf, name); err != nil {
			return err
		}
		if err := writeBigInt(buf, v); err != nil {
			return err
		}
	}
	return nil
}

func readBigIntMap(r *bytes.Reader) (map[string]*big.Int, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, err
	}
	m := make(map[string]*big.Int, n)
	for i := uint32(0); i < n; i++ {
		name, err := readString(r)
		if err != nil {
			return nil, err
		}
		v, err := readBigInt(r)
		if err != nil {
			return nil, err
		}
		m[name] = v
	}
	return m, nil
}

// MarshalBinary encodes an EqualityProof: the revealed-attribute map, the
// Schnorr-style responses APrime/E/V/M1/M2, and the per-attribute hidden
// response map M.
func (p *EqualityProof) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := writeBigIntMap(buf, p.RevealedAttrs); err != nil {
		return nil, fmt.Errorf("cl: marshal equality proof: %w", err)
	}
	for _, v := range []*big.Int{p.APrime, p.E, p.V, p.M1, p.M2} {
		if err := writeBigInt(buf, v); err != nil {
			return nil, fmt.Errorf("cl: marshal equality proof: %w", err)
		}
	}
	if err := writeBigIntMap(buf, p.M); err != nil {
		return nil, fmt.Errorf("cl: marshal equality proof: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes an EqualityProof.
func (p *EqualityProof) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	revealed, err := readBigIntMap(r)
	if err != nil {
		return fmt.Errorf("cl: unmarshal equality proof: %w", err)
	}
	p.RevealedAttrs = revealed

	vals := make([]*big.Int, 5)
	for i := range vals {
		v, err := readBigInt(r)
		if err != nil {
			return fmt.Errorf("cl: unmarshal equality proof: %w", err)
		}
		vals[i] = v
	}
	p.APrime, p.E, p.V, p.M1, p.M2 = vals[0], vals[1], vals[2], vals[3], vals[4]

	m, err := readBigIntMap(r)
	if err != nil {
		return fmt.Errorf("cl: unmarshal equality proof: %w", err)
	}
	p.M = m
	return nil
}

// MarshalBinary encodes a GEProof: the predicate it proves, the four-squares
// decomposition witnesses U and R, and the Schnorr-style responses.
func (p *GEProof) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := writeString(buf, p.Predicate.AttrName); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, int32(p.Predicate.PType)); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, p.Predicate.Value); err != nil {
		return nil, err
	}
	for _, v := range p.U.Values() {
		if err := writeBigInt(buf, v); err != nil {
			return nil, err
		}
	}
	for _, v := range p.R.Values() {
		if err := writeBigInt(buf, v); err != nil {
			return nil, err
		}
	}
	for _, v := range []*big.Int{p.RDelta, p.MJ, p.Alpha} {
		if err := writeBigInt(buf, v); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a GEProof.
func (p *GEProof) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	name, err := readString(r)
	if err != nil {
		return err
	}
	var pType int32
	if err := binary.Read(r, binary.BigEndian, &pType); err != nil {
		return err
	}
	var value int64
	if err := binary.Read(r, binary.BigEndian, &value); err != nil {
		return err
	}
	p.Predicate = Predicate{AttrName: name, PType: PredicateType(pType), Value: value}

	readFour := func() (FourSquares, error) {
		var fs FourSquares
		vals := make([]*big.Int, 4)
		for i := range vals {
			v, err := readBigInt(r)
			if err != nil {
				return fs, err
			}
			vals[i] = v
		}
		fs.U0, fs.U1, fs.U2, fs.U3 = vals[0], vals[1], vals[2], vals[3]
		return fs, nil
	}
	u, err := readFour()
	if err != nil {
		return err
	}
	p.U = u
	rr, err := readFour()
	if err != nil {
		return err
	}
	p.R = rr

	vals := make([]*big.Int, 3)
	for i := range vals {
		v, err := readBigInt(r)
		if err != nil {
			return err
		}
		vals[i] = v
	}
	p.RDelta, p.MJ, p.Alpha = vals[0], vals[1], vals[2]
	return nil
}

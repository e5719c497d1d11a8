package cl

import (
	"fmt"
	"io"
	"math/big"
)

// RandomInRange samples a value uniformly from [0, max) using rejection
// sampling with constant-time-shaped masking of the top byte, to avoid the
// modulo bias a naive big.Int.Mod(random, max) would introduce.
func RandomInRange(rng io.Reader, max *big.Int) (*big.Int, error) {
	byteLen := (max.BitLen() + 7) / 8

	bits := max.BitLen() % 8
	mask := byte(0xFF)
	if bits > 0 {
		mask = byte((1 << bits) - 1)
	}

	b := make([]byte, byteLen)
	result := new(big.Int)

	for {
		if _, err := rng.Read(b); err != nil {
			return nil, fmt.Errorf("cl: generate random bytes: %w", err)
		}
		if len(b) > 0 {
			b[0] &= mask
		}
		result.SetBytes(b)
		if result.Cmp(max) < 0 {
			break
		}
	}
	return result, nil
}

// randomSigned samples a value uniformly from [-2^bitLen, 2^bitLen). The
// sub-proof "tilde" blinding factors do not use it: they are drawn from
// [0, 2^bitLen) by randomBelow.
func randomSigned(rng io.Reader, bitLen int) (*big.Int, error) {
	bound := new(big.Int).Lsh(big.NewInt(1), uint(bitLen))
	v, err := RandomInRange(rng, new(big.Int).Lsh(bound, 1))
	if err != nil {
		return nil, err
	}
	return v.Sub(v, bound), nil
}

// randomBelow samples a value uniformly from [0, 2^bitLen).
func randomBelow(rng io.Reader, bitLen int) (*big.Int, error) {
	bound := new(big.Int).Lsh(big.NewInt(1), uint(bitLen))
	return RandomInRange(rng, bound)
}

package cl

import "math/big"

// lagrangeFourSquares finds u0..u3 with delta = u0^2+u1^2+u2^2+u3^2 for a
// non-negative delta, by brute-force descending search: u0, u1, u2 are
// each tried from their largest feasible value downward, and u3 is the
// integer square root of what remains. This is adequate for the small deltas
// (attribute differences) a greater-or-equal predicate proof deals with;
// it is not a general-purpose factorization-based Lagrange algorithm.
func lagrangeFourSquares(delta *big.Int) (FourSquares, error) {
	if delta.Sign() < 0 {
		return FourSquares{}, ErrPredicateNotSatisfied
	}
	if delta.Sign() == 0 {
		zero := big.NewInt(0)
		return FourSquares{U0: zero, U1: big.NewInt(0), U2: big.NewInt(0), U3: big.NewInt(0)}, nil
	}

	d := new(big.Int).Set(delta)
	root := new(big.Int).Sqrt(d)
	limit := new(big.Int).Add(root, big.NewInt(1))

	// a^2 + b^2 + c^2 + d^2 == delta, searched from the largest component
	// down, which terminates quickly for the small (attribute-range)
	// deltas this predicate proof is used for.
	for a := new(big.Int).Set(limit); a.Sign() >= 0; a.Sub(a, big.NewInt(1)) {
		rem1 := new(big.Int).Sub(d, new(big.Int).Mul(a, a))
		if rem1.Sign() < 0 {
			continue
		}
		bLimit := new(big.Int).Sqrt(rem1)
		for b := new(big.Int).Set(bLimit); b.Sign() >= 0; b.Sub(b, big.NewInt(1)) {
			rem2 := new(big.Int).Sub(rem1, new(big.Int).Mul(b, b))
			if rem2.Sign() < 0 {
				continue
			}
			cLimit := new(big.Int).Sqrt(rem2)
			for c := new(big.Int).Set(cLimit); c.Sign() >= 0; c.Sub(c, big.NewInt(1)) {
				rem3 := new(big.Int).Sub(rem2, new(big.Int).Mul(c, c))
				if rem3.Sign() < 0 {
					continue
				}
				e := new(big.Int).Sqrt(rem3)
				if new(big.Int).Mul(e, e).Cmp(rem3) == 0 {
					return FourSquares{U0: a, U1: b, U2: c, U3: e}, nil
				}
			}
		}
	}
	// Unreachable for any non-negative delta, by Lagrange's four-square theorem.
	return FourSquares{}, ErrArithmetic
}

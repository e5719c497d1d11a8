// Package cl implements the prover side of a CL-style (Camenisch-Lysyanskaya)
// anonymous credential scheme: master-secret blinding, claim-signature
// unblinding, non-revocation witness maintenance, and zero-knowledge
// construction of equality, greater-or-equal predicate, and non-revocation
// sub-proofs under a single Fiat-Shamir challenge.
package cl

import (
	"errors"
	"math/big"

	"github.com/hyperlog/clproof/internal/common"
)

// Bit widths of the hidden scalars sampled throughout the prover pipeline.
// These are protocol constants shared with the issuer and verifier and MUST
// NOT be changed independently of them.
const (
	LargeMasterSecret = 593
	LargeVPrime       = 2128
	LargeVTilde       = 2724
	LargeETilde       = 593
	LargeEStart       = 596
	LargeMVect        = 592
	LargeM2Tilde      = 593
	LargeUTilde       = 593
	LargeRTilde       = 2724
	LargeAlphaTilde   = 2787

	// Iteration is the number of squares in the Lagrange four-squares
	// decomposition used by the greater-or-equal predicate sub-proof.
	Iteration = 4
)

var (
	// ErrInvalidStructure, ErrInvalidState, and ErrArithmetic are the
	// canonical sentinels defined in internal/common; re-exported here so
	// every file in this package can refer to them unqualified.
	ErrInvalidStructure = common.ErrInvalidStructure
	ErrInvalidState     = common.ErrInvalidState
	ErrArithmetic       = common.ErrArithmetic

	// ErrPredicateNotSatisfied is returned when attr - value < 0 for a
	// greater-or-equal predicate; it is wrapped by ErrInvalidStructure.
	ErrPredicateNotSatisfied = errors.New("predicate not satisfied")

	// ErrClaimRevoked is returned when the claim's accumulator index is no
	// longer a member of the current accumulator; wrapped by ErrInvalidState.
	ErrClaimRevoked = errors.New("claim revoked")

	// GroupOrder is the scalar field order of the BLS12-381 pairing groups,
	// used for every non-revocation scalar (rho, r, r', o, ...).
	GroupOrder, _ = new(big.Int).SetString("52435875175126190479447740508185965837690552500527637822603658699938581184513", 10)
)

package common

import "errors"

// Error taxonomy shared across the module (spec §7): every error the cl
// package's prover pipeline (blinding, unblinding, witness update, proof
// construction and finalization) surfaces wraps one of these three
// sentinels via fmt.Errorf's %w, so callers can use errors.Is against a
// stable family instead of matching message strings. Errors from
// attribute encoding and binary (un)marshaling wrap none of them.
var (
	// ErrInvalidStructure covers malformed inputs: missing attributes,
	// non-parseable integers, missing per-iteration map keys, a failing
	// issuer pairing identity, or an unsatisfiable predicate.
	ErrInvalidStructure = errors.New("invalid structure")

	// ErrInvalidState covers a non-revocation witness update against an
	// accumulator that no longer contains the claim's index.
	ErrInvalidState = errors.New("invalid state")

	// ErrArithmetic covers modulus exhaustion, RNG failure, or any other
	// failure of the underlying big-integer/pairing primitives.
	ErrArithmetic = errors.New("arithmetic failure")
)

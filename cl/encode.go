package cl

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"strconv"
)

// AttributeEncoder converts structured attribute values into the canonical
// integer encoding a ClaimValues entry requires. Integer values (int,
// int64, *big.Int) are encoded verbatim, with no range check; strings are
// encoded as the integer interpretation of their SHA-256 digest; any other
// value type is rejected.
type AttributeEncoder struct {
	// SortKeys is set by NewAttributeEncoder but not read by Encode or
	// EncodeSchema; composite (map-shaped) values are rejected as an
	// unsupported type rather than canonicalized.
	SortKeys bool
}

// NewAttributeEncoder returns an encoder with the conventional defaults.
func NewAttributeEncoder() *AttributeEncoder {
	return &AttributeEncoder{SortKeys: true}
}

// Encode converts one attribute value into its canonical *big.Int form.
// Only int, int64, string, and raw *big.Int are accepted; any other type is a
// caller error, not a data error, so it is reported as such.
func (e *AttributeEncoder) Encode(value interface{}) (*big.Int, error) {
	switch v := value.(type) {
	case *big.Int:
		return new(big.Int).Set(v), nil
	case int64:
		return big.NewInt(v), nil
	case int:
		return big.NewInt(int64(v)), nil
	case string:
		return hashToInt(v), nil
	default:
		return nil, fmt.Errorf("cl: unsupported attribute value type %T", value)
	}
}

// EncodeSchema encodes every attribute in values against the attribute
// names declared by schema, failing if the two disagree.
func (e *AttributeEncoder) EncodeSchema(schema ClaimSchema, values map[string]interface{}) (ClaimValues, error) {
	out := ClaimValues{AttrValues: make(map[string]*big.Int, len(schema.Attrs))}
	for name := range schema.Attrs {
		raw, ok := values[name]
		if !ok {
			return ClaimValues{}, fmt.Errorf("cl: missing value for attribute %q", name)
		}
		enc, err := e.Encode(raw)
		if err != nil {
			return ClaimValues{}, fmt.Errorf("cl: encode attribute %q: %w", name, err)
		}
		out.AttrValues[name] = enc
	}
	return out, nil
}

// hashToInt deterministically maps an arbitrary string to a non-negative
// integer by interpreting its SHA-256 digest as a big-endian integer.
func hashToInt(s string) *big.Int {
	h := sha256.Sum256([]byte(s))
	return new(big.Int).SetBytes(h[:])
}

// ParseAttributeInt parses a decimal-string-encoded attribute value back
// into an int64, for callers that need to compare an encoded attribute
// against a predicate's threshold.
func ParseAttributeInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

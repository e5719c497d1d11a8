// Package credential provides the claim schema / claim values / sub-proof
// request data model a prover consumes as issuer-supplied, read-only
// material, plus fluent builders for assembling it from application data.
package credential

import (
	"fmt"

	"github.com/hyperlog/clproof/cl"
)

// SchemaBuilder assembles a ClaimSchema from named attributes.
type SchemaBuilder struct {
	attrs map[string]struct{}
}

// NewSchemaBuilder creates an empty schema builder.
func NewSchemaBuilder() *SchemaBuilder {
	return &SchemaBuilder{attrs: make(map[string]struct{})}
}

// WithAttr registers an attribute name in the schema.
func (b *SchemaBuilder) WithAttr(name string) *SchemaBuilder {
	b.attrs[name] = struct{}{}
	return b
}

// Build returns the finished ClaimSchema.
func (b *SchemaBuilder) Build() cl.ClaimSchema {
	return cl.ClaimSchema{Attrs: b.attrs}
}

// ValuesBuilder assembles ClaimValues against a schema: values are staged
// as they are added and encoded via an AttributeEncoder when Build runs.
type ValuesBuilder struct {
	encoder *cl.AttributeEncoder
	values  map[string]interface{}
}

// NewValuesBuilder creates a values builder using the conventional
// attribute encoding defaults.
func NewValuesBuilder() *ValuesBuilder {
	return &ValuesBuilder{
		encoder: cl.NewAttributeEncoder(),
		values:  make(map[string]interface{}),
	}
}

// WithValue stages a raw attribute value (int64, string, or *big.Int) for
// encoding against a schema in Build.
func (b *ValuesBuilder) WithValue(name string, value interface{}) *ValuesBuilder {
	b.values[name] = value
	return b
}

// Build encodes every staged value against schema, failing if a schema
// attribute has no staged value.
func (b *ValuesBuilder) Build(schema cl.ClaimSchema) (cl.ClaimValues, error) {
	return b.encoder.EncodeSchema(schema, b.values)
}

// SubProofRequestBuilder assembles a SubProofRequest: which attributes a
// verifier wants revealed, and which greater-or-equal predicates must hold
// over the rest.
type SubProofRequestBuilder struct {
	revealed   map[string]struct{}
	predicates []cl.Predicate
}

// NewSubProofRequestBuilder creates an empty request builder.
func NewSubProofRequestBuilder() *SubProofRequestBuilder {
	return &SubProofRequestBuilder{revealed: make(map[string]struct{})}
}

// Reveal marks an attribute for disclosure in the clear.
func (b *SubProofRequestBuilder) Reveal(name string) *SubProofRequestBuilder {
	b.revealed[name] = struct{}{}
	return b
}

// RequireGE adds a "attr >= value" predicate over a hidden attribute.
func (b *SubProofRequestBuilder) RequireGE(attrName string, value int64) *SubProofRequestBuilder {
	b.predicates = append(b.predicates, cl.Predicate{
		AttrName: attrName,
		PType:    cl.PredicateGE,
		Value:    value,
	})
	return b
}

// Build validates that no attribute is both revealed and predicated, then
// returns the finished SubProofRequest.
func (b *SubProofRequestBuilder) Build() (cl.SubProofRequest, error) {
	for _, p := range b.predicates {
		if _, revealed := b.revealed[p.AttrName]; revealed {
			return cl.SubProofRequest{}, fmt.Errorf("credential: attribute %q is both revealed and predicated", p.AttrName)
		}
	}
	return cl.SubProofRequest{RevealedAttrs: b.revealed, Predicates: b.predicates}, nil
}

package main

import (
	"github.com/hyperlog/clproof/cl"
	"github.com/hyperlog/clproof/pkg/credential"
)

func schemaFor(attrNames []string) cl.ClaimSchema {
	b := credential.NewSchemaBuilder()
	for _, name := range attrNames {
		b.WithAttr(name)
	}
	return b.Build()
}

func valuesFor(attrNames []string) *credential.ValuesBuilder {
	b := credential.NewValuesBuilder()
	for i, name := range attrNames {
		b.WithValue(name, int64(i+1))
	}
	return b
}

// requestFor builds a predicate request over the first `predicates`
// attributes (attr >= 0, trivially satisfied by the synthetic values
// valuesFor assigns), leaving the rest hidden and unconstrained.
func requestFor(attrNames []string, predicates int) (cl.SubProofRequest, error) {
	b := credential.NewSubProofRequestBuilder()
	for i := 0; i < predicates && i < len(attrNames); i++ {
		b.RequireGE(attrNames[i], 0)
	}
	return b.Build()
}

package credential

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/hyperlog/clproof/cl"
)

// Presentation is the JSON wire envelope cmd/clprove emits for a finalized
// Proof: every big-integer and aggregated c-list entry hex-encoded, keyed
// by the same key_id the prover registered via AddSubProofRequest.
type Presentation struct {
	CHash string   `json:"c_hash"`
	CList []string `json:"c_list"`
	// KeyIDs lists the sub-proofs present, in no particular order; the
	// sub-proof bodies themselves are opaque to this envelope, since
	// verification (and therefore a typed wire schema for them) is out
	// of scope here.
	KeyIDs []string `json:"key_ids"`
}

// NewPresentation packages a finalized Proof into its JSON envelope.
func NewPresentation(proof *cl.Proof) (*Presentation, error) {
	if proof == nil {
		return nil, fmt.Errorf("credential: present: nil proof")
	}
	cList := make([]string, len(proof.Aggregated.CList))
	for i, b := range proof.Aggregated.CList {
		cList[i] = hex.EncodeToString(b)
	}
	keyIDs := make([]string, 0, len(proof.Proofs))
	for k := range proof.Proofs {
		keyIDs = append(keyIDs, k)
	}
	return &Presentation{
		CHash:  proof.Aggregated.CHash.Text(16),
		CList:  cList,
		KeyIDs: keyIDs,
	}, nil
}

// ToJSON renders the presentation using the struct tags above.
func (p *Presentation) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

package cl

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestInitGEProof_DeltaTenFourSquares pins spec §8 item 4: an attribute
// value of 28 against a >=18 predicate has delta=10, and InitGEProof must
// carry forward lagrangeFourSquares' pinned decomposition {3,1,0,0}
// unchanged into the init proof's U.
func TestInitGEProof_DeltaTenFourSquares(t *testing.T) {
	pk := &PrimaryPublicKey{
		N:   big.NewInt(3233), // 61*53, large enough for exponents used here
		S:   big.NewInt(7),
		Z:   big.NewInt(11),
		RMS: big.NewInt(13),
		R:   map[string]*big.Int{"age": big.NewInt(17)},
	}
	values := ClaimValues{AttrValues: map[string]*big.Int{"age": big.NewInt(28)}}
	predicate := Predicate{AttrName: "age", PType: PredicateGE, Value: 18}
	mTilde := big.NewInt(42)

	init, err := initGEProof(newDeterministicReader("ge-delta-ten"), pk, predicate, values, mTilde)
	require.NoError(t, err)
	require.Equal(t, FourSquares{U0: big.NewInt(3), U1: big.NewInt(1), U2: big.NewInt(0), U3: big.NewInt(0)}, init.U)
}

// TestInitGEProof_UnsatisfiedPredicateFails pins the delta<0 edge case:
// an attribute below the predicate threshold must fail closed rather than
// attempt a four-squares decomposition of a negative delta.
func TestInitGEProof_UnsatisfiedPredicateFails(t *testing.T) {
	pk := &PrimaryPublicKey{
		N:   big.NewInt(3233),
		S:   big.NewInt(7),
		Z:   big.NewInt(11),
		RMS: big.NewInt(13),
		R:   map[string]*big.Int{"age": big.NewInt(17)},
	}
	values := ClaimValues{AttrValues: map[string]*big.Int{"age": big.NewInt(10)}}
	predicate := Predicate{AttrName: "age", PType: PredicateGE, Value: 18}

	_, err := initGEProof(newDeterministicReader("ge-unsatisfied"), pk, predicate, values, big.NewInt(1))
	require.ErrorIs(t, err, ErrPredicateNotSatisfied)
}

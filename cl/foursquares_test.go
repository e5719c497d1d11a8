package cl

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLagrangeFourSquares_DeltaTen(t *testing.T) {
	got, err := lagrangeFourSquares(big.NewInt(10))
	require.NoError(t, err)
	require.Equal(t, big.NewInt(3), got.U0)
	require.Equal(t, big.NewInt(1), got.U1)
	require.Equal(t, big.NewInt(0), got.U2)
	require.Equal(t, big.NewInt(0), got.U3)

	sum := new(big.Int)
	for _, u := range got.Values() {
		sum.Add(sum, new(big.Int).Mul(u, u))
	}
	require.Equal(t, big.NewInt(10), sum)
}

func TestLagrangeFourSquares_Zero(t *testing.T) {
	got, err := lagrangeFourSquares(big.NewInt(0))
	require.NoError(t, err)
	for _, u := range got.Values() {
		require.Equal(t, big.NewInt(0), u)
	}
}

func TestLagrangeFourSquares_NegativeDeltaFails(t *testing.T) {
	_, err := lagrangeFourSquares(big.NewInt(-1))
	require.ErrorIs(t, err, ErrPredicateNotSatisfied)
}

func TestLagrangeFourSquares_SumAlwaysMatchesDelta(t *testing.T) {
	for _, delta := range []int64{1, 2, 7, 15, 28, 100, 255} {
		got, err := lagrangeFourSquares(big.NewInt(delta))
		require.NoError(t, err)
		sum := new(big.Int)
		for _, u := range got.Values() {
			require.True(t, u.Sign() >= 0, "component must be non-negative")
			sum.Add(sum, new(big.Int).Mul(u, u))
		}
		require.Equal(t, big.NewInt(delta), sum)
	}
}

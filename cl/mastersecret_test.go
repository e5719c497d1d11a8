package cl

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMasterSecret_Structural(t *testing.T) {
	ms, err := NewMasterSecret()
	require.NoError(t, err)
	require.NotNil(t, ms.MS)
	require.True(t, ms.MS.Sign() >= 0)
	require.True(t, ms.MS.BitLen() <= LargeMasterSecret)
}

func TestNewMasterSecret_Distinct(t *testing.T) {
	a, err := NewMasterSecret()
	require.NoError(t, err)
	b, err := NewMasterSecret()
	require.NoError(t, err)
	require.NotEqual(t, 0, a.MS.Cmp(b.MS), "two independently drawn master secrets must not collide")
}

func TestBlind_ProducesCommitmentBelowModulus(t *testing.T) {
	p, err := rand.Prime(rand.Reader, 256)
	require.NoError(t, err)
	q, err := rand.Prime(rand.Reader, 256)
	require.NoError(t, err)
	n := new(big.Int).Mul(p, q)

	pk := &IssuerPublicKey{Primary: &PrimaryPublicKey{
		N: n, S: big.NewInt(7), Z: big.NewInt(11), RMS: big.NewInt(13),
		R: map[string]*big.Int{"attr": big.NewInt(17)},
	}}

	ms, err := NewMasterSecret()
	require.NoError(t, err)

	blinded, data, err := Blind(pk, ms)
	require.NoError(t, err)
	require.NotNil(t, data.VPrime)
	require.Nil(t, data.VRPrime, "no revocation key means no VRPrime blinding factor")
	require.Nil(t, blinded.Ur)
	require.True(t, blinded.U.Cmp(n) < 0)
}

func TestBlind_NilPrimaryKeyFails(t *testing.T) {
	ms, err := NewMasterSecret()
	require.NoError(t, err)
	_, _, err = Blind(&IssuerPublicKey{}, ms)
	require.ErrorIs(t, err, ErrInvalidStructure)
}

package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/silence-labs/silence/x/bridge/types"
)

func TestAmountCommitmentDeterministic(t *testing.T) {
	a := types.AmountCommitment(math.NewInt(95), []byte("blinding"), []byte("recipient"))
	b := types.AmountCommitment(math.NewInt(95), []byte("blinding"), []byte("recipient"))
	require.Equal(t, a, b)
	require.Len(t, a, 32)
}

func TestAmountCommitmentHiding(t *testing.T) {
	base := types.AmountCommitment(math.NewInt(95), []byte("blinding"), []byte("recipient"))

	require.NotEqual(t, base, types.AmountCommitment(math.NewInt(96), []byte("blinding"), []byte("recipient")))
	require.NotEqual(t, base, types.AmountCommitment(math.NewInt(95), []byte("other"), []byte("recipient")))
	require.NotEqual(t, base, types.AmountCommitment(math.NewInt(95), []byte("blinding"), []byte("other")))
}

func TestVerifyCommitment(t *testing.T) {
	commitment := types.AmountCommitment(math.NewInt(95), []byte("blinding"), []byte("recipient"))

	require.True(t, types.VerifyCommitment(commitment, math.NewInt(95), []byte("blinding"), []byte("recipient")))
	require.False(t, types.VerifyCommitment(commitment, math.NewInt(96), []byte("blinding"), []byte("recipient")))
	require.False(t, types.VerifyCommitment(nil, math.NewInt(95), []byte("blinding"), []byte("recipient")))
}

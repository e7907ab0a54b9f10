package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/silence-labs/silence/x/bridge/types"
)

func TestChainValidate(t *testing.T) {
	require.NoError(t, types.ChainSilence.Validate())
	require.NoError(t, types.ChainZcash.Validate())
	require.Error(t, types.ChainUnspecified.Validate())
	require.Error(t, types.Chain(99).Validate())
}

func TestChainFromString(t *testing.T) {
	chain, err := types.ChainFromString("near")
	require.NoError(t, err)
	require.Equal(t, types.ChainNear, chain)

	_, err = types.ChainFromString("unspecified")
	require.Error(t, err)
	_, err = types.ChainFromString("ethereum")
	require.Error(t, err)
}

func TestChainSet(t *testing.T) {
	s := types.NewChainSet(types.ChainSilence, types.ChainZcash)
	require.True(t, s.Has(types.ChainSilence))
	require.True(t, s.Has(types.ChainZcash))
	require.False(t, s.Has(types.ChainNear))
	require.Equal(t, []types.Chain{types.ChainSilence, types.ChainZcash}, s.Chains())

	// adding twice is idempotent
	require.Equal(t, s, s.Add(types.ChainZcash))

	require.NoError(t, s.Validate())
	require.ErrorIs(t, types.NewChainSet().Validate(), types.ErrNoSupportedChains)
	require.Error(t, types.ChainSet(1<<31).Validate())
}

func TestIntentStatusTransitions(t *testing.T) {
	tests := []struct {
		from    types.IntentStatus
		to      types.IntentStatus
		allowed bool
	}{
		{types.IntentStatusCreated, types.IntentStatusMatched, true},
		{types.IntentStatusCreated, types.IntentStatusFailed, true},
		{types.IntentStatusCreated, types.IntentStatusSettled, false},
		{types.IntentStatusCreated, types.IntentStatusExecuted, false},
		{types.IntentStatusMatched, types.IntentStatusExecuting, true},
		{types.IntentStatusMatched, types.IntentStatusExecuted, true},
		{types.IntentStatusMatched, types.IntentStatusSettled, false},
		{types.IntentStatusExecuting, types.IntentStatusExecuted, true},
		{types.IntentStatusExecuting, types.IntentStatusSettled, false},
		{types.IntentStatusExecuted, types.IntentStatusSettling, true},
		{types.IntentStatusExecuted, types.IntentStatusSettled, true},
		{types.IntentStatusSettling, types.IntentStatusSettled, true},
		{types.IntentStatusSettling, types.IntentStatusMatched, false},
		{types.IntentStatusSettled, types.IntentStatusFailed, false},
		{types.IntentStatusFailed, types.IntentStatusCreated, false},
		{types.IntentStatusDisputed, types.IntentStatusSettled, false},
	}

	for _, tc := range tests {
		require.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestIntentStatusIsTerminal(t *testing.T) {
	require.True(t, types.IntentStatusSettled.IsTerminal())
	require.True(t, types.IntentStatusFailed.IsTerminal())
	require.True(t, types.IntentStatusDisputed.IsTerminal())
	require.False(t, types.IntentStatusCreated.IsTerminal())
	require.False(t, types.IntentStatusSettling.IsTerminal())
}

func TestIntentValidate(t *testing.T) {
	valid := types.Intent{
		Id:               1,
		Creator:          "creator",
		SourceChain:      types.ChainSilence,
		DestinationChain: types.ChainNear,
		SourceAmount:     math.NewInt(100),
		Status:           types.IntentStatusCreated,
	}
	require.NoError(t, valid.Validate())

	zeroID := valid
	zeroID.Id = 0
	require.Error(t, zeroID.Validate())

	shielded := valid
	shielded.IsShielded = true
	require.Error(t, shielded.Validate())
	shielded.AmountCommitment = []byte{1}
	require.NoError(t, shielded.Validate())

	badStatus := valid
	badStatus.Status = types.IntentStatus(42)
	require.Error(t, badStatus.Validate())
}

func TestSolverValidate(t *testing.T) {
	valid := types.Solver{
		Address:         "solver",
		SupportedChains: types.NewChainSet(types.ChainSilence),
		Stake:           math.NewInt(100),
		TotalVolume:     math.ZeroInt(),
	}
	require.NoError(t, valid.Validate())

	corrupted := valid
	corrupted.SuccessfulIntents = 2
	corrupted.TotalIntentsExecuted = 1
	require.Error(t, corrupted.Validate())
}

func TestIntentStatusFromString(t *testing.T) {
	status, err := types.IntentStatusFromString("created")
	require.NoError(t, err)
	require.Equal(t, types.IntentStatusCreated, status)

	status, err = types.IntentStatusFromString("settled")
	require.NoError(t, err)
	require.Equal(t, types.IntentStatusSettled, status)

	_, err = types.IntentStatusFromString("unspecified")
	require.Error(t, err)

	_, err = types.IntentStatusFromString("bogus")
	require.Error(t, err)
}

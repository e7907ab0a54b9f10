package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/silence-labs/silence/x/bridge/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	k, bank, ctx := setupKeeper(t)
	gate := configureGate(t, k, ctx)

	solver := registerTestSolver(t, k, bank, ctx, types.ChainSilence, types.ChainNear, types.ChainZcash)
	createTestIntent(t, k, bank, ctx, 1, 10_000)
	createShieldedIntent(t, k, bank, ctx, 2, 5_000, testCommitment())
	matchAndExecute(t, k, ctx, solver, 1)
	_, err := k.SettleIntent(ctx, 1)
	require.NoError(t, err)

	// leave one verification pending and one audit on record
	auditID, err := k.RequestReputationAudit(ctx, randAddr(), solver.String())
	require.NoError(t, err)
	require.NoError(t, k.SubmitReputationScore(ctx, gate, &types.MsgSubmitReputationScore{
		Gate:           gate.String(),
		VerificationId: auditID,
		Score:          700,
		Tier:           4,
	}))
	_, err = k.RequestAmountVerification(ctx, randAddr(), 2, math.NewInt(50))
	require.NoError(t, err)

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Intents, 2)
	require.Len(t, exported.Solvers, 1)
	require.Len(t, exported.Escrows, 2)
	require.Len(t, exported.PendingVerifications, 1)
	require.Len(t, exported.ReputationAudits, 1)
	require.Equal(t, uint64(3), exported.NextVerificationId)

	// importing into a fresh keeper reproduces the exact state
	k2, _, ctx2 := setupKeeper(t)
	require.NoError(t, k2.InitGenesis(ctx2, *exported))

	reexported, err := k2.ExportGenesis(ctx2)
	require.NoError(t, err)
	require.Equal(t, exported, reexported)

	// secondary indexes are rebuilt, not just the records
	require.ElementsMatch(t, []uint64{1}, k2.IntentIDsByStatus(ctx2, types.IntentStatusSettled))
	require.ElementsMatch(t, []uint64{2}, k2.IntentIDsByStatus(ctx2, types.IntentStatusCreated))
	active := k2.GetActiveSolvers(ctx2)
	require.Len(t, active, 1)
	require.Equal(t, solver.String(), active[0].Address)
}

func TestGenesisValidate(t *testing.T) {
	gen := types.DefaultGenesis()
	require.NoError(t, gen.Validate())

	gen.Params.ProtocolFeeBps = types.MaxProtocolFeeBps + 1
	require.Error(t, gen.Validate())
}

func TestDefaultGenesisInitializes(t *testing.T) {
	k, _, ctx := setupKeeper(t)

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))
	stats, err := k.GetStats(ctx)
	require.NoError(t, err)
	require.Zero(t, stats.TotalIntents)
	require.True(t, stats.TotalVolume.IsZero())
	require.Equal(t, uint64(1), k.NextVerificationIDPeek(ctx))
}

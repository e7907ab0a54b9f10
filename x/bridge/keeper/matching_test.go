package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/silence-labs/silence/x/bridge/types"
)

func TestMatchIntent(t *testing.T) {
	k, bank, ctx := setupKeeper(t)

	solver := registerTestSolver(t, k, bank, ctx, types.ChainSilence, types.ChainNear)
	createTestIntent(t, k, bank, ctx, 1, 1_000)

	require.NoError(t, k.MatchIntent(ctx, solver, 1))

	intent, found := k.GetIntent(ctx, 1)
	require.True(t, found)
	require.Equal(t, types.IntentStatusMatched, intent.Status)
	require.Equal(t, solver.String(), intent.Solver)
}

func TestMatchIntentFirstSolverWins(t *testing.T) {
	k, bank, ctx := setupKeeper(t)

	first := registerTestSolver(t, k, bank, ctx, types.ChainSilence, types.ChainNear)
	second := registerTestSolver(t, k, bank, ctx, types.ChainSilence, types.ChainNear)
	createTestIntent(t, k, bank, ctx, 1, 1_000)

	require.NoError(t, k.MatchIntent(ctx, first, 1))
	require.ErrorIs(t, k.MatchIntent(ctx, second, 1), types.ErrInvalidIntentStatus)

	// the binding is untouched by the losing attempt
	intent, _ := k.GetIntent(ctx, 1)
	require.Equal(t, first.String(), intent.Solver)
}

func TestMatchIntentRejections(t *testing.T) {
	k, bank, ctx := setupKeeper(t)

	solver := registerTestSolver(t, k, bank, ctx, types.ChainSilence, types.ChainNear)
	sourceOnly := registerTestSolver(t, k, bank, ctx, types.ChainSilence)
	inactive := registerTestSolver(t, k, bank, ctx, types.ChainSilence, types.ChainNear)
	require.NoError(t, k.DeactivateSolver(ctx, inactive.String()))

	createTestIntent(t, k, bank, ctx, 1, 1_000)

	require.ErrorIs(t, k.MatchIntent(ctx, solver, 999), types.ErrIntentNotFound)
	require.ErrorIs(t, k.MatchIntent(ctx, randAddr(), 1), types.ErrSolverNotFound)
	require.ErrorIs(t, k.MatchIntent(ctx, inactive, 1), types.ErrSolverNotActive)
	require.ErrorIs(t, k.MatchIntent(ctx, sourceOnly, 1), types.ErrChainNotSupported)
}

func TestMatchIntentExpired(t *testing.T) {
	k, bank, ctx := setupKeeper(t)

	solver := registerTestSolver(t, k, bank, ctx, types.ChainSilence, types.ChainNear)
	createTestIntent(t, k, bank, ctx, 1, 1_000)

	late := ctx.WithBlockTime(ctx.BlockTime().Add(2 * time.Hour))
	require.ErrorIs(t, k.MatchIntent(late, solver, 1), types.ErrIntentExpired)

	// still open, so the creator can reclaim the deposit
	creator, _ := k.GetIntent(ctx, 1)
	require.Equal(t, types.IntentStatusCreated, creator.Status)
}

func TestMatchIntentHighValueGating(t *testing.T) {
	k, bank, ctx := setupKeeper(t)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	params.HighValueThreshold = math.NewInt(5_000)
	require.NoError(t, k.SetParams(ctx, params))

	solver := registerTestSolver(t, k, bank, ctx, types.ChainSilence, types.ChainNear)
	createTestIntent(t, k, bank, ctx, 1, 10_000)
	createTestIntent(t, k, bank, ctx, 2, 4_999)

	// no audit on record: high value intents are off limits
	require.ErrorIs(t, k.MatchIntent(ctx, solver, 1), types.ErrNotHighValueEligible)
	// below the threshold matching is unrestricted
	require.NoError(t, k.MatchIntent(ctx, solver, 2))

	// an eligible audit unlocks the high value intent
	gate := configureGate(t, k, ctx)
	auditID, err := k.RequestReputationAudit(ctx, solver, solver.String())
	require.NoError(t, err)
	require.NoError(t, k.SubmitReputationScore(ctx, gate, &types.MsgSubmitReputationScore{
		Gate:              gate.String(),
		VerificationId:    auditID,
		Score:             950,
		Tier:              5,
		HighValueEligible: true,
	}))
	require.NoError(t, k.MatchIntent(ctx, solver, 1))
}

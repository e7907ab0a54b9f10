package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/silence-labs/silence/x/bridge/keeper"
	"github.com/silence-labs/silence/x/bridge/types"
)

func TestQueryServer(t *testing.T) {
	k, bank, ctx := setupKeeper(t)
	q := keeper.NewQueryServerImpl(*k)

	solver := registerTestSolver(t, k, bank, ctx, types.ChainSilence, types.ChainNear)
	createTestIntent(t, k, bank, ctx, 1, 1_000)

	params, err := q.Params(ctx, &types.QueryParamsRequest{})
	require.NoError(t, err)
	require.Equal(t, "usil", params.Params.EscrowDenom)

	intent, err := q.Intent(ctx, &types.QueryIntentRequest{IntentId: 1})
	require.NoError(t, err)
	require.Equal(t, uint64(1), intent.Intent.Id)

	_, err = q.Intent(ctx, &types.QueryIntentRequest{IntentId: 999})
	require.ErrorIs(t, err, types.ErrIntentNotFound)

	solverRes, err := q.Solver(ctx, &types.QuerySolverRequest{Address: solver.String()})
	require.NoError(t, err)
	require.True(t, solverRes.Solver.IsActive)

	active, err := q.ActiveSolvers(ctx, &types.QueryActiveSolversRequest{})
	require.NoError(t, err)
	require.Len(t, active.Solvers, 1)

	stats, err := q.Stats(ctx, &types.QueryStatsRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(1), stats.Stats.TotalIntents)

	escrow, err := q.Escrow(ctx, &types.QueryEscrowRequest{IntentId: 1})
	require.NoError(t, err)
	require.Equal(t, types.EscrowStatusLocked, escrow.Escrow.Status)

	_, err = q.ReputationAudit(ctx, &types.QueryReputationAuditRequest{Solver: solver.String()})
	require.Error(t, err)

	requester := randAddr()
	_, err = k.RequestAmountVerification(ctx, requester, 1, math.NewInt(95))
	require.NoError(t, err)
	pending, err := q.PendingVerifications(ctx, &types.QueryPendingVerificationsRequest{})
	require.NoError(t, err)
	require.Len(t, pending.Verifications, 1)

	// nil requests are rejected uniformly
	_, err = q.Params(ctx, nil)
	require.ErrorIs(t, err, types.ErrValidationFailed)
}

func TestQueryIntentsFilters(t *testing.T) {
	k, bank, ctx := setupKeeper(t)
	q := keeper.NewQueryServerImpl(*k)

	solver := registerTestSolver(t, k, bank, ctx, types.ChainSilence, types.ChainNear)
	creator := createTestIntent(t, k, bank, ctx, 1, 1_000)
	createTestIntent(t, k, bank, ctx, 2, 2_000)
	require.NoError(t, k.MatchIntent(ctx, solver, 1))

	byCreator, err := q.Intents(ctx, &types.QueryIntentsRequest{Creator: creator.String()})
	require.NoError(t, err)
	require.Len(t, byCreator.Intents, 1)
	require.Equal(t, uint64(1), byCreator.Intents[0].Id)

	bySolver, err := q.Intents(ctx, &types.QueryIntentsRequest{Solver: solver.String()})
	require.NoError(t, err)
	require.Len(t, bySolver.Intents, 1)
	require.Equal(t, types.IntentStatusMatched, bySolver.Intents[0].Status)

	byStatus, err := q.Intents(ctx, &types.QueryIntentsRequest{Status: types.IntentStatusCreated})
	require.NoError(t, err)
	require.Len(t, byStatus.Intents, 1)
	require.Equal(t, uint64(2), byStatus.Intents[0].Id)

	_, err = q.Intents(ctx, &types.QueryIntentsRequest{})
	require.ErrorIs(t, err, types.ErrValidationFailed)
}

func TestQuerySolversForChains(t *testing.T) {
	k, bank, ctx := setupKeeper(t)
	q := keeper.NewQueryServerImpl(*k)

	nearSolver := registerTestSolver(t, k, bank, ctx, types.ChainSilence, types.ChainNear)
	registerTestSolver(t, k, bank, ctx, types.ChainSilence, types.ChainZcash)

	res, err := q.SolversForChains(ctx, &types.QuerySolversForChainsRequest{
		SourceChain:      types.ChainSilence,
		DestinationChain: types.ChainNear,
	})
	require.NoError(t, err)
	require.Len(t, res.Solvers, 1)
	require.Equal(t, nearSolver.String(), res.Solvers[0].Address)

	res, err = q.SolversForChains(ctx, &types.QuerySolversForChainsRequest{
		SourceChain:      types.ChainSilence,
		DestinationChain: types.ChainSolana,
	})
	require.NoError(t, err)
	require.Empty(t, res.Solvers)
}

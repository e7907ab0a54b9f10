package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/silence-labs/silence/x/bridge/keeper"
	"github.com/silence-labs/silence/x/bridge/types"
)

func TestInvariantsHoldThroughLifecycle(t *testing.T) {
	k, bank, ctx := setupKeeper(t)

	feeVault := randAddr()
	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	params.FeeVault = feeVault.String()
	require.NoError(t, k.SetParams(ctx, params))

	invariant := keeper.AllInvariants(*k)

	check := func(stage string) {
		msg, broken := invariant(ctx)
		require.False(t, broken, "%s: %s", stage, msg)
	}

	check("empty state")

	solver := registerTestSolver(t, k, bank, ctx, types.ChainSilence, types.ChainNear)
	check("after register")

	createTestIntent(t, k, bank, ctx, 1, 10_000)
	check("after create")

	matchAndExecute(t, k, ctx, solver, 1)
	check("after execute")

	_, err = k.SettleIntent(ctx, 1)
	require.NoError(t, err)
	check("after settle")

	creator := createTestIntent(t, k, bank, ctx, 2, 5_000)
	require.NoError(t, k.FailIntent(ctx, creator, 2, "abandoned"))
	check("after fail")
}

func TestModuleBalanceInvariantDetectsDrift(t *testing.T) {
	k, bank, ctx := setupKeeper(t)

	createTestIntent(t, k, bank, ctx, 1, 10_000)

	// a locked escrow record with no matching balance breaks the invariant
	escrow, found := k.GetEscrowRecord(ctx, 1)
	require.True(t, found)
	escrow.Amount = math.NewInt(999_999)
	intent, found := k.GetIntent(ctx, 1)
	require.True(t, found)
	intent.SourceAmount = math.NewInt(999_999)
	require.NoError(t, k.SetIntent(ctx, intent))
	require.NoError(t, k.SetEscrowRecord(ctx, escrow))

	_, broken := keeper.ModuleBalanceInvariant(*k)(ctx)
	require.True(t, broken)
}

func TestSolverCountersInvariantDetectsCorruption(t *testing.T) {
	k, bank, ctx := setupKeeper(t)

	addr := registerTestSolver(t, k, bank, ctx, types.ChainSilence)
	solver, found := k.GetSolver(ctx, addr.String())
	require.True(t, found)
	solver.SuccessfulIntents = 5
	solver.TotalIntentsExecuted = 2
	require.NoError(t, k.SetSolver(ctx, solver))

	_, broken := keeper.SolverCountersInvariant(*k)(ctx)
	require.True(t, broken)
}

package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/silence-labs/silence/testutil/keeper"
	"github.com/silence-labs/silence/x/bridge/types"
)

func TestRegisterSolver(t *testing.T) {
	k, bank, ctx := setupKeeper(t)

	addr := randAddr()
	keepertest.FundAccount(t, ctx, bank, addr, math.NewInt(2_000_000))

	solver, err := k.RegisterSolver(ctx, addr, types.NewChainSet(types.ChainSilence, types.ChainNear), math.NewInt(1_500_000))
	require.NoError(t, err)
	require.True(t, solver.IsActive)
	require.Equal(t, uint32(100), solver.ReputationScore)
	require.True(t, solver.SupportedChains.Has(types.ChainSilence))
	require.True(t, solver.SupportedChains.Has(types.ChainNear))
	require.False(t, solver.SupportedChains.Has(types.ChainSolana))

	// stake bonded into the module account
	require.Equal(t, int64(500_000), balanceOf(ctx, bank, addr).Int64())
	require.Equal(t, int64(1_500_000), balanceOf(ctx, bank, k.GetModuleAddress()).Int64())

	stats, err := k.GetStats(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(1), stats.ActiveSolvers)
}

func TestRegisterSolverValidation(t *testing.T) {
	k, bank, ctx := setupKeeper(t)

	addr := randAddr()
	keepertest.FundAccount(t, ctx, bank, addr, math.NewInt(5_000_000))

	_, err := k.RegisterSolver(ctx, addr, types.NewChainSet(), math.NewInt(1_000_000))
	require.ErrorIs(t, err, types.ErrNoSupportedChains)

	_, err = k.RegisterSolver(ctx, addr, types.NewChainSet(types.ChainNear), math.NewInt(999_999))
	require.ErrorIs(t, err, types.ErrInsufficientStake)

	_, err = k.RegisterSolver(ctx, addr, types.NewChainSet(types.ChainNear), math.NewInt(1_000_000))
	require.NoError(t, err)

	_, err = k.RegisterSolver(ctx, addr, types.NewChainSet(types.ChainNear), math.NewInt(1_000_000))
	require.ErrorIs(t, err, types.ErrSolverExists)

	poor := randAddr()
	keepertest.FundAccount(t, ctx, bank, poor, math.NewInt(10))
	_, err = k.RegisterSolver(ctx, poor, types.NewChainSet(types.ChainNear), math.NewInt(1_000_000))
	require.Error(t, err)
}

func TestDeactivateSolver(t *testing.T) {
	k, bank, ctx := setupKeeper(t)

	addr := registerTestSolver(t, k, bank, ctx, types.ChainSilence, types.ChainNear)
	moduleBefore := balanceOf(ctx, bank, k.GetModuleAddress())

	require.NoError(t, k.DeactivateSolver(ctx, addr.String()))

	solver, found := k.GetSolver(ctx, addr.String())
	require.True(t, found)
	require.False(t, solver.IsActive)

	// stake stays bonded
	require.Equal(t, moduleBefore, balanceOf(ctx, bank, k.GetModuleAddress()))

	stats, err := k.GetStats(ctx)
	require.NoError(t, err)
	require.Zero(t, stats.ActiveSolvers)

	require.ErrorIs(t, k.DeactivateSolver(ctx, addr.String()), types.ErrSolverNotActive)
	require.ErrorIs(t, k.DeactivateSolver(ctx, randAddr().String()), types.ErrSolverNotFound)
}

func TestGetActiveSolvers(t *testing.T) {
	k, bank, ctx := setupKeeper(t)

	first := registerTestSolver(t, k, bank, ctx, types.ChainSilence, types.ChainNear)
	second := registerTestSolver(t, k, bank, ctx, types.ChainSilence, types.ChainZcash)
	require.NoError(t, k.DeactivateSolver(ctx, first.String()))

	active := k.GetActiveSolvers(ctx)
	require.Len(t, active, 1)
	require.Equal(t, second.String(), active[0].Address)
}

package keeper

import (
	"context"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/silence-labs/silence/x/bridge/types"
)

// RegisterSolver bonds stake and adds the address to the solver registry.
// The stake is held by the module account and is not returned on
// deactivation; slashing and unbonding are handled out of band.
func (k Keeper) RegisterSolver(ctx context.Context, addr sdk.AccAddress, chains types.ChainSet, stake math.Int) (types.Solver, error) {
	if err := chains.Validate(); err != nil {
		return types.Solver{}, err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return types.Solver{}, err
	}
	if stake.LT(params.MinSolverStake) {
		return types.Solver{}, types.ErrInsufficientStake.Wrapf(
			"stake %s below minimum %s", stake, params.MinSolverStake)
	}

	if _, found := k.GetSolver(ctx, addr.String()); found {
		return types.Solver{}, types.ErrSolverExists.Wrap(addr.String())
	}

	coins := sdk.NewCoins(sdk.NewCoin(params.EscrowDenom, stake))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, addr, types.ModuleName, coins); err != nil {
		return types.Solver{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	solver := types.Solver{
		Address:         addr.String(),
		SupportedChains: chains,
		Stake:           stake,
		ReputationScore: reputationStart,
		TotalVolume:     math.ZeroInt(),
		IsActive:        true,
		RegisteredAt:    sdkCtx.BlockTime(),
	}
	if err := k.SetSolver(ctx, solver); err != nil {
		return types.Solver{}, err
	}
	k.getStore(ctx).Set(types.ActiveSolverKey(solver.Address), []byte{1})

	if err := k.updateStats(ctx, func(stats *types.BridgeStats) {
		stats.ActiveSolvers++
	}); err != nil {
		return types.Solver{}, err
	}

	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSolverRegistered,
		sdk.NewAttribute(types.AttributeKeySolver, solver.Address),
		sdk.NewAttribute(types.AttributeKeyStake, stake.String()),
		sdk.NewAttribute(types.AttributeKeySupportedChains, chains.String()),
	))
	k.metrics.SolversRegistered.Inc()
	k.metrics.SolversActive.Inc()
	return solver, nil
}

// DeactivateSolver removes a solver from matching. Its stake stays bonded
// and its history is preserved.
func (k Keeper) DeactivateSolver(ctx context.Context, addr string) error {
	solver, found := k.GetSolver(ctx, addr)
	if !found {
		return types.ErrSolverNotFound.Wrap(addr)
	}
	if !solver.IsActive {
		return types.ErrSolverNotActive.Wrap(addr)
	}

	solver.IsActive = false
	if err := k.SetSolver(ctx, solver); err != nil {
		return err
	}
	k.getStore(ctx).Delete(types.ActiveSolverKey(addr))

	if err := k.updateStats(ctx, func(stats *types.BridgeStats) {
		if stats.ActiveSolvers > 0 {
			stats.ActiveSolvers--
		}
	}); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSolverDeactivated,
		sdk.NewAttribute(types.AttributeKeySolver, addr),
	))
	k.metrics.SolversActive.Dec()
	return nil
}

// GetSolver retrieves a solver record by address
func (k Keeper) GetSolver(ctx context.Context, addr string) (types.Solver, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.SolverKey(addr))
	if bz == nil {
		return types.Solver{}, false
	}

	var solver types.Solver
	mustUnmarshalRecord(bz, &solver)
	return solver, true
}

// SetSolver stores a solver record
func (k Keeper) SetSolver(ctx context.Context, solver types.Solver) error {
	bz, err := marshalRecord(solver)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.SolverKey(solver.Address), bz)
	return nil
}

// IterateSolvers calls cb for every solver until cb returns true
func (k Keeper) IterateSolvers(ctx context.Context, cb func(types.Solver) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.SolverKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var solver types.Solver
		mustUnmarshalRecord(iterator.Value(), &solver)
		if cb(solver) {
			break
		}
	}
}

// GetActiveSolvers returns all solvers currently eligible for matching
func (k Keeper) GetActiveSolvers(ctx context.Context) []types.Solver {
	var solvers []types.Solver
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.ActiveSolverKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		addr := string(iterator.Key()[len(types.ActiveSolverKeyPrefix):])
		if solver, found := k.GetSolver(ctx, addr); found {
			solvers = append(solvers, solver)
		}
	}
	return solvers
}

// FindSolversForChains returns active solvers able to serve both chains
func (k Keeper) FindSolversForChains(ctx context.Context, source, destination types.Chain) []types.Solver {
	var matched []types.Solver
	for _, solver := range k.GetActiveSolvers(ctx) {
		if solver.SupportedChains.Has(source) && solver.SupportedChains.Has(destination) {
			matched = append(matched, solver)
		}
	}
	return matched
}

// totalSolverStake sums the bonded stake of every registered solver
func (k Keeper) totalSolverStake(ctx context.Context) math.Int {
	total := math.ZeroInt()
	k.IterateSolvers(ctx, func(solver types.Solver) bool {
		total = total.Add(solver.Stake)
		return false
	})
	return total
}

package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/silence-labs/silence/x/bridge/types"
)

// RegisterInvariants registers all bridge module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "module-balance",
		ModuleBalanceInvariant(k))
	ir.RegisterRoute(types.ModuleName, "intent-escrow",
		IntentEscrowInvariant(k))
	ir.RegisterRoute(types.ModuleName, "solver-counters",
		SolverCountersInvariant(k))
}

// AllInvariants runs all invariants of the bridge module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ModuleBalanceInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = IntentEscrowInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return SolverCountersInvariant(k)(ctx)
	}
}

// ModuleBalanceInvariant checks that the module account holds exactly the
// locked escrows plus all bonded solver stakes.
func ModuleBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		params, err := k.GetParams(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "module-balance",
				fmt.Sprintf("cannot load params: %v", err)), true
		}

		expected := k.lockedEscrowTotal(ctx).Add(k.totalSolverStake(ctx))
		balance := k.bankKeeper.GetBalance(ctx, k.GetModuleAddress(), params.EscrowDenom).Amount

		broken := !balance.Equal(expected)
		return sdk.FormatInvariant(types.ModuleName, "module-balance",
			fmt.Sprintf("module account holds %s, expected %s (locked escrow + solver stake)",
				balance, expected)), broken
	}
}

// IntentEscrowInvariant checks escrow status against intent status: every
// non-terminal intent has a locked escrow, every settled intent a released
// one, every failed intent a refunded one.
func IntentEscrowInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)

		k.IterateIntents(ctx, func(intent types.Intent) bool {
			record, found := k.GetEscrowRecord(ctx, intent.Id)
			if !found {
				broken = true
				msg = fmt.Sprintf("intent %d has no escrow record", intent.Id)
				return true
			}

			var want types.EscrowStatus
			switch {
			case intent.Status == types.IntentStatusSettled:
				want = types.EscrowStatusReleased
			case intent.Status == types.IntentStatusFailed:
				want = types.EscrowStatusRefunded
			default:
				want = types.EscrowStatusLocked
			}
			if record.Status != want {
				broken = true
				msg = fmt.Sprintf("intent %d is %s but escrow is %s, expected %s",
					intent.Id, intent.Status, record.Status, want)
				return true
			}
			if !record.Amount.Equal(intent.SourceAmount) {
				broken = true
				msg = fmt.Sprintf("intent %d escrow amount %s does not match source amount %s",
					intent.Id, record.Amount, intent.SourceAmount)
				return true
			}
			return false
		})

		return sdk.FormatInvariant(types.ModuleName, "intent-escrow", msg), broken
	}
}

// SolverCountersInvariant checks that outcome counters never exceed the
// executed total and the incremental score stays within [0, ceiling].
func SolverCountersInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		params, err := k.GetParams(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "solver-counters",
				fmt.Sprintf("cannot load params: %v", err)), true
		}

		var (
			broken bool
			msg    string
		)

		k.IterateSolvers(ctx, func(solver types.Solver) bool {
			if solver.SuccessfulIntents+solver.FailedIntents > solver.TotalIntentsExecuted {
				broken = true
				msg = fmt.Sprintf("solver %s outcome counters %d+%d exceed executed total %d",
					solver.Address, solver.SuccessfulIntents, solver.FailedIntents, solver.TotalIntentsExecuted)
				return true
			}
			if solver.ReputationScore > params.ReputationCeiling {
				broken = true
				msg = fmt.Sprintf("solver %s reputation %d exceeds ceiling %d",
					solver.Address, solver.ReputationScore, params.ReputationCeiling)
				return true
			}
			return false
		})

		return sdk.FormatInvariant(types.ModuleName, "solver-counters", msg), broken
	}
}

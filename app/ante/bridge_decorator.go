package ante

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	bridgekeeper "github.com/silence-labs/silence/x/bridge/keeper"
	bridgetypes "github.com/silence-labs/silence/x/bridge/types"
)

// BridgeDecorator performs cheap pre-checks for bridge module messages so
// that obviously doomed transactions are rejected before entering the
// message server. All checks here are re-validated by the keeper; the
// decorator only exists to fail fast.
type BridgeDecorator struct {
	keeper *bridgekeeper.Keeper
}

// NewBridgeDecorator creates a new BridgeDecorator
func NewBridgeDecorator(keeper *bridgekeeper.Keeper) BridgeDecorator {
	return BridgeDecorator{
		keeper: keeper,
	}
}

// AnteHandle implements the AnteDecorator interface
func (bd BridgeDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (newCtx sdk.Context, err error) {
	// Skip validation during simulation
	if simulate {
		return next(ctx, tx, simulate)
	}

	for _, msg := range tx.GetMsgs() {
		switch msg := msg.(type) {
		case *bridgetypes.MsgRegisterSolver:
			if err := bd.validateRegisterSolver(ctx, msg); err != nil {
				return ctx, err
			}
		case *bridgetypes.MsgMatchIntent:
			if err := bd.validateMatchIntent(ctx, msg); err != nil {
				return ctx, err
			}
		case *bridgetypes.MsgExecuteIntent:
			if err := bd.validateExecuteIntent(ctx, msg); err != nil {
				return ctx, err
			}
		}
	}

	return next(ctx, tx, simulate)
}

// validateRegisterSolver rejects registrations that cannot meet the stake floor
func (bd BridgeDecorator) validateRegisterSolver(ctx sdk.Context, msg *bridgetypes.MsgRegisterSolver) error {
	ctx.GasMeter().ConsumeGas(1000, "solver registration pre-check")

	if _, found := bd.keeper.GetSolver(ctx, msg.Solver); found {
		return sdkerrors.ErrInvalidRequest.Wrap("solver already registered")
	}

	params, err := bd.keeper.GetParams(ctx)
	if err != nil {
		return err
	}

	if msg.Stake.LT(params.MinSolverStake) {
		return sdkerrors.ErrInvalidRequest.Wrapf("stake %s is less than minimum %s",
			msg.Stake.String(), params.MinSolverStake.String())
	}

	return nil
}

// validateMatchIntent rejects matches from unknown or inactive solvers
func (bd BridgeDecorator) validateMatchIntent(ctx sdk.Context, msg *bridgetypes.MsgMatchIntent) error {
	ctx.GasMeter().ConsumeGas(1000, "intent match pre-check")

	solver, found := bd.keeper.GetSolver(ctx, msg.Solver)
	if !found {
		return sdkerrors.ErrNotFound.Wrap("solver not registered")
	}
	if !solver.IsActive {
		return sdkerrors.ErrInvalidRequest.Wrap("solver is not active")
	}

	return nil
}

// validateExecuteIntent rejects executions against intents that do not exist
func (bd BridgeDecorator) validateExecuteIntent(ctx sdk.Context, msg *bridgetypes.MsgExecuteIntent) error {
	ctx.GasMeter().ConsumeGas(1000, "intent execution pre-check")

	if _, found := bd.keeper.GetIntent(ctx, msg.IntentId); !found {
		return sdkerrors.ErrNotFound.Wrapf("intent %d not found", msg.IntentId)
	}

	return nil
}

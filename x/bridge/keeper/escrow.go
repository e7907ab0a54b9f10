package keeper

import (
	"context"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/silence-labs/silence/x/bridge/types"
)

// Escrow custody for intent deposits. Funds sit in the module account from
// create_intent until they leave through exactly one of releaseEscrow
// (settlement) or refundEscrow (failure). Records flip status before any
// coins move so a re-entrant call cannot observe a spendable locked record.

// lockEscrow moves the deposit into the module account and records it.
func (k Keeper) lockEscrow(ctx context.Context, intentID uint64, depositor sdk.AccAddress, amount math.Int, denom string) error {
	if _, found := k.GetEscrowRecord(ctx, intentID); found {
		return types.ErrEscrowConflict.Wrapf("escrow for intent %d already exists", intentID)
	}

	spendable := k.bankKeeper.SpendableCoins(ctx, depositor).AmountOf(denom)
	if spendable.LT(amount) {
		return types.ErrInsufficientFunds.Wrapf("have %s%s, need %s%s", spendable, denom, amount, denom)
	}

	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, depositor, types.ModuleName, coins); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	record := types.EscrowRecord{
		IntentId:  intentID,
		Depositor: depositor.String(),
		Amount:    amount,
		Denom:     denom,
		Status:    types.EscrowStatusLocked,
		LockedAt:  sdkCtx.BlockTime(),
	}
	if err := k.SetEscrowRecord(ctx, record); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeEscrowLocked,
		sdk.NewAttribute(types.AttributeKeyIntentID, formatUint(intentID)),
		sdk.NewAttribute(types.AttributeKeyCreator, depositor.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		sdk.NewAttribute(types.AttributeKeyDenom, denom),
	))
	k.metrics.EscrowLocked.Inc()
	return nil
}

// releaseEscrow pays the solver reward and the protocol fee out of a locked
// escrow. reward + fee must equal the locked amount. A nil feeVault sends the
// fee to the auth fee collector module instead of an external account, so the
// fee never stays in the bridge module account where it would be
// indistinguishable from locked funds.
func (k Keeper) releaseEscrow(ctx context.Context, intentID uint64, solver, feeVault sdk.AccAddress, reward, fee math.Int) error {
	record, found := k.GetEscrowRecord(ctx, intentID)
	if !found {
		return types.ErrEscrowNotFound.Wrapf("intent %d", intentID)
	}
	if record.Status != types.EscrowStatusLocked {
		return types.ErrEscrowConflict.Wrapf("escrow for intent %d is %s", intentID, record.Status)
	}

	total, err := SafeAdd(reward, fee)
	if err != nil {
		return err
	}
	if !total.Equal(record.Amount) {
		return types.ErrEscrowConflict.Wrapf(
			"payout %s does not match locked amount %s", total, record.Amount)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime()
	record.Status = types.EscrowStatusReleased
	record.ClosedAt = &now
	if err := k.SetEscrowRecord(ctx, record); err != nil {
		return err
	}

	if reward.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(record.Denom, reward))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, solver, coins); err != nil {
			return err
		}
	}
	if fee.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(record.Denom, fee))
		if feeVault == nil {
			if err := k.bankKeeper.SendCoinsFromModuleToModule(ctx, types.ModuleName, authtypes.FeeCollectorName, coins); err != nil {
				return err
			}
		} else if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, feeVault, coins); err != nil {
			return err
		}
	}

	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeEscrowReleased,
		sdk.NewAttribute(types.AttributeKeyIntentID, formatUint(intentID)),
		sdk.NewAttribute(types.AttributeKeySolver, solver.String()),
		sdk.NewAttribute(types.AttributeKeySolverReward, reward.String()),
		sdk.NewAttribute(types.AttributeKeyProtocolFee, fee.String()),
	))
	k.metrics.EscrowReleased.Inc()
	return nil
}

// refundEscrow returns the full locked amount to the depositor.
func (k Keeper) refundEscrow(ctx context.Context, intentID uint64) error {
	record, found := k.GetEscrowRecord(ctx, intentID)
	if !found {
		return types.ErrEscrowNotFound.Wrapf("intent %d", intentID)
	}
	if record.Status != types.EscrowStatusLocked {
		return types.ErrEscrowConflict.Wrapf("escrow for intent %d is %s", intentID, record.Status)
	}

	depositor, err := sdk.AccAddressFromBech32(record.Depositor)
	if err != nil {
		return types.ErrInvalidAddress.Wrapf("depositor: %s", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime()
	record.Status = types.EscrowStatusRefunded
	record.ClosedAt = &now
	if err := k.SetEscrowRecord(ctx, record); err != nil {
		return err
	}

	coins := sdk.NewCoins(sdk.NewCoin(record.Denom, record.Amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, depositor, coins); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeEscrowRefunded,
		sdk.NewAttribute(types.AttributeKeyIntentID, formatUint(intentID)),
		sdk.NewAttribute(types.AttributeKeyCreator, record.Depositor),
		sdk.NewAttribute(types.AttributeKeyAmount, record.Amount.String()),
	))
	k.metrics.EscrowRefunded.Inc()
	return nil
}

// lockedEscrowTotal sums all escrow amounts still in locked status
func (k Keeper) lockedEscrowTotal(ctx context.Context) math.Int {
	total := math.ZeroInt()
	k.IterateEscrowRecords(ctx, func(record types.EscrowRecord) bool {
		if record.Status == types.EscrowStatusLocked {
			total = total.Add(record.Amount)
		}
		return false
	})
	return total
}

// GetEscrowRecord retrieves the escrow record for an intent
func (k Keeper) GetEscrowRecord(ctx context.Context, intentID uint64) (types.EscrowRecord, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.EscrowKey(intentID))
	if bz == nil {
		return types.EscrowRecord{}, false
	}

	var record types.EscrowRecord
	mustUnmarshalRecord(bz, &record)
	return record, true
}

// SetEscrowRecord stores an escrow record
func (k Keeper) SetEscrowRecord(ctx context.Context, record types.EscrowRecord) error {
	bz, err := marshalRecord(record)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.EscrowKey(record.IntentId), bz)
	return nil
}

// IterateEscrowRecords calls cb for every escrow record until cb returns true
func (k Keeper) IterateEscrowRecords(ctx context.Context, cb func(types.EscrowRecord) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.EscrowKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var record types.EscrowRecord
		mustUnmarshalRecord(iterator.Value(), &record)
		if cb(record) {
			break
		}
	}
}

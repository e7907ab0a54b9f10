package keeper

import (
	"context"
	"time"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/silence-labs/silence/x/bridge/types"
)

// CreateIntent escrows the source amount and opens a new intent in Created
// status. The intent id is chosen by the creator and must be unused.
func (k Keeper) CreateIntent(
	ctx context.Context,
	creator sdk.AccAddress,
	intentID uint64,
	destinationChain types.Chain,
	sourceAmount math.Int,
	destinationTokenID string,
	amountCommitment, recipientHash []byte,
	isShielded bool,
	ttlSeconds uint64,
) (types.Intent, error) {
	if err := destinationChain.Validate(); err != nil {
		return types.Intent{}, err
	}
	if sourceAmount.IsNil() || !sourceAmount.IsPositive() {
		return types.Intent{}, types.ErrZeroDeposit
	}
	if ttlSeconds == 0 {
		return types.Intent{}, types.ErrInvalidTimeout
	}
	if isShielded && len(amountCommitment) == 0 {
		return types.Intent{}, types.ErrInvalidIntent.Wrap("shielded intent requires an amount commitment")
	}
	if _, found := k.GetIntent(ctx, intentID); found {
		return types.Intent{}, types.ErrIntentExists.Wrapf("intent %d", intentID)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return types.Intent{}, err
	}

	if err := k.lockEscrow(ctx, intentID, creator, sourceAmount, params.EscrowDenom); err != nil {
		return types.Intent{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime()
	intent := types.Intent{
		Id:                 intentID,
		Creator:            creator.String(),
		SourceChain:        params.SourceChain,
		DestinationChain:   destinationChain,
		SourceAmount:       sourceAmount,
		DestinationTokenId: destinationTokenID,
		AmountCommitment:   amountCommitment,
		RecipientHash:      recipientHash,
		IsShielded:         isShielded,
		Status:             types.IntentStatusCreated,
		CreatedAt:          now,
		ExpiresAt:          now.Add(time.Duration(ttlSeconds) * time.Second),
	}
	if err := k.SetIntent(ctx, intent); err != nil {
		return types.Intent{}, err
	}
	store := k.getStore(ctx)
	store.Set(types.IntentByCreatorKey(intent.Creator, intentID), []byte{1})
	store.Set(types.IntentByStatusKey(types.IntentStatusCreated, intentID), []byte{1})

	if err := k.updateStats(ctx, func(stats *types.BridgeStats) {
		stats.TotalIntents++
	}); err != nil {
		return types.Intent{}, err
	}

	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeIntentCreated,
		sdk.NewAttribute(types.AttributeKeyIntentID, formatUint(intentID)),
		sdk.NewAttribute(types.AttributeKeyCreator, intent.Creator),
		sdk.NewAttribute(types.AttributeKeySourceChain, intent.SourceChain.String()),
		sdk.NewAttribute(types.AttributeKeyDestinationChain, destinationChain.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, sourceAmount.String()),
		sdk.NewAttribute(types.AttributeKeyShielded, formatBool(isShielded)),
		sdk.NewAttribute(types.AttributeKeyExpiresAt, intent.ExpiresAt.UTC().Format(time.RFC3339)),
	))
	k.metrics.IntentsCreated.Inc()
	return intent, nil
}

// MatchIntent binds a solver to an open intent. The first call to observe
// Created wins; every later attempt sees Matched and fails.
func (k Keeper) MatchIntent(ctx context.Context, solverAddr sdk.AccAddress, intentID uint64) error {
	intent, found := k.GetIntent(ctx, intentID)
	if !found {
		return types.ErrIntentNotFound.Wrapf("intent %d", intentID)
	}
	if intent.Status != types.IntentStatusCreated {
		return types.ErrInvalidIntentStatus.Wrapf(
			"intent %d is %s, expected %s", intentID, intent.Status, types.IntentStatusCreated)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if !sdkCtx.BlockTime().Before(intent.ExpiresAt) {
		return types.ErrIntentExpired.Wrapf("intent %d expired at %s", intentID, intent.ExpiresAt)
	}

	solver, found := k.GetSolver(ctx, solverAddr.String())
	if !found {
		return types.ErrSolverNotFound.Wrap(solverAddr.String())
	}
	if !solver.IsActive {
		return types.ErrSolverNotActive.Wrap(solverAddr.String())
	}
	if !solver.SupportedChains.Has(intent.SourceChain) {
		return types.ErrChainNotSupported.Wrapf(
			"solver %s does not support source chain %s", solver.Address, intent.SourceChain)
	}
	if !solver.SupportedChains.Has(intent.DestinationChain) {
		return types.ErrChainNotSupported.Wrapf(
			"solver %s does not support destination chain %s", solver.Address, intent.DestinationChain)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if params.HighValueThreshold.IsPositive() && intent.SourceAmount.GTE(params.HighValueThreshold) {
		audit, found := k.GetReputationAudit(ctx, solver.Address)
		if !found || !audit.HighValueEligible {
			return types.ErrNotHighValueEligible.Wrapf(
				"intent %d requires a high value eligible solver", intentID)
		}
	}

	if err := k.transitionIntent(ctx, &intent, types.IntentStatusMatched); err != nil {
		return err
	}
	intent.Solver = solver.Address
	if err := k.SetIntent(ctx, intent); err != nil {
		return err
	}
	k.getStore(ctx).Set(types.IntentBySolverKey(solver.Address, intentID), []byte{1})

	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeIntentMatched,
		sdk.NewAttribute(types.AttributeKeyIntentID, formatUint(intentID)),
		sdk.NewAttribute(types.AttributeKeySolver, solver.Address),
	))
	k.metrics.IntentsMatched.Inc()
	return nil
}

// ExecuteIntent records destination-side delivery reported by the bound
// solver. Public intents advance to Executed directly. Shielded intents
// enter Executing and wait for the gate to confirm the privacy proof; the
// returned verification id is non-zero in that case.
func (k Keeper) ExecuteIntent(
	ctx context.Context,
	solverAddr sdk.AccAddress,
	intentID uint64,
	destinationTxHash string,
	privacyProof []byte,
) (uint64, error) {
	intent, found := k.GetIntent(ctx, intentID)
	if !found {
		return 0, types.ErrIntentNotFound.Wrapf("intent %d", intentID)
	}
	if intent.Status != types.IntentStatusMatched {
		return 0, types.ErrInvalidIntentStatus.Wrapf(
			"intent %d is %s, expected %s", intentID, intent.Status, types.IntentStatusMatched)
	}
	if intent.Solver != solverAddr.String() {
		return 0, types.ErrNotMatchedSolver.Wrapf(
			"intent %d is bound to %s", intentID, intent.Solver)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime()
	intent.DestinationTxHash = destinationTxHash
	intent.PrivacyProof = privacyProof

	if !intent.IsShielded {
		if err := k.transitionIntent(ctx, &intent, types.IntentStatusExecuted); err != nil {
			return 0, err
		}
		intent.ExecutedAt = &now
		if err := k.SetIntent(ctx, intent); err != nil {
			return 0, err
		}

		sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeIntentExecuted,
			sdk.NewAttribute(types.AttributeKeyIntentID, formatUint(intentID)),
			sdk.NewAttribute(types.AttributeKeySolver, intent.Solver),
			sdk.NewAttribute(types.AttributeKeyDestinationTxHash, destinationTxHash),
		))
		k.metrics.IntentsExecuted.Inc()
		return 0, nil
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}
	if err := k.transitionIntent(ctx, &intent, types.IntentStatusExecuting); err != nil {
		return 0, err
	}
	if err := k.SetIntent(ctx, intent); err != nil {
		return 0, err
	}

	verificationID, err := k.queuePendingVerification(ctx, types.PendingVerification{
		Kind:            types.VerificationKindPrivacyProof,
		IntentId:        intentID,
		Solver:          intent.Solver,
		Requester:       solverAddr.String(),
		SourceAmount:    intent.SourceAmount,
		MaxAmount:       params.MaxShieldedAmount,
		MinSourceAmount: math.ZeroInt(),
		VolumeThreshold: math.ZeroInt(),
	})
	if err != nil {
		return 0, err
	}
	return verificationID, nil
}

// SettleIntent pays out an executed intent. Anyone may call it. Shielded
// intents enter Settling and wait for the gate's amount check; the returned
// verification id is non-zero in that case.
func (k Keeper) SettleIntent(ctx context.Context, intentID uint64) (uint64, error) {
	intent, found := k.GetIntent(ctx, intentID)
	if !found {
		return 0, types.ErrIntentNotFound.Wrapf("intent %d", intentID)
	}
	if intent.Status != types.IntentStatusExecuted {
		return 0, types.ErrInvalidIntentStatus.Wrapf(
			"intent %d is %s, expected %s", intentID, intent.Status, types.IntentStatusExecuted)
	}

	if !intent.IsShielded {
		if err := k.completeSettlement(ctx, &intent); err != nil {
			return 0, err
		}
		return 0, nil
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}
	if err := k.transitionIntent(ctx, &intent, types.IntentStatusSettling); err != nil {
		return 0, err
	}
	if err := k.SetIntent(ctx, intent); err != nil {
		return 0, err
	}

	verificationID, err := k.queuePendingVerification(ctx, types.PendingVerification{
		Kind:            types.VerificationKindAmounts,
		IntentId:        intentID,
		Solver:          intent.Solver,
		Requester:       intent.Creator,
		SourceAmount:    intent.SourceAmount,
		ExpectedRateBps: params.ExpectedRateBps,
		MinSourceAmount: params.MinSourceAmount,
		MaxAmount:       math.ZeroInt(),
		VolumeThreshold: math.ZeroInt(),
		SettlesIntent:   true,
	})
	if err != nil {
		return 0, err
	}
	return verificationID, nil
}

// completeSettlement is the single payout path: fee split, escrow release,
// solver counters, incremental reputation, stats, terminal status.
func (k Keeper) completeSettlement(ctx context.Context, intent *types.Intent) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	solver, found := k.GetSolver(ctx, intent.Solver)
	if !found {
		return types.ErrSolverNotFound.Wrap(intent.Solver)
	}
	solverAddr, err := sdk.AccAddressFromBech32(solver.Address)
	if err != nil {
		return types.ErrInvalidAddress.Wrapf("solver: %s", err)
	}

	protocolFee, solverReward, err := CalculateSettlement(intent.SourceAmount, params.ProtocolFeeBps)
	if err != nil {
		return err
	}

	// With no fee vault configured, releaseEscrow forwards the fee to the
	// auth fee collector. It must not be left in the bridge module account,
	// where only locked escrow and staked collateral belong.
	var feeVault sdk.AccAddress
	feeDest := authtypes.NewModuleAddress(authtypes.FeeCollectorName)
	if params.FeeVault != "" {
		feeVault, err = sdk.AccAddressFromBech32(params.FeeVault)
		if err != nil {
			return types.ErrInvalidAddress.Wrapf("fee vault: %s", err)
		}
		feeDest = feeVault
	}

	if err := k.releaseEscrow(ctx, intent.Id, solverAddr, feeVault, solverReward, protocolFee); err != nil {
		return err
	}

	solver.TotalIntentsExecuted++
	solver.SuccessfulIntents++
	newVolume, err := SafeAdd(solver.TotalVolume, intent.SourceAmount)
	if err != nil {
		return err
	}
	solver.TotalVolume = newVolume
	bumpReputation(&solver, params.ReputationCeiling)
	if err := k.SetSolver(ctx, solver); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime()
	if err := k.transitionIntent(ctx, intent, types.IntentStatusSettled); err != nil {
		return err
	}
	intent.SettledAt = &now
	if err := k.SetIntent(ctx, *intent); err != nil {
		return err
	}

	if err := k.updateStats(ctx, func(stats *types.BridgeStats) {
		stats.SettledIntents++
		stats.TotalVolume = stats.TotalVolume.Add(intent.SourceAmount)
		stats.TotalProtocolFees = stats.TotalProtocolFees.Add(protocolFee)
	}); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeIntentSettled,
		sdk.NewAttribute(types.AttributeKeyIntentID, formatUint(intent.Id)),
		sdk.NewAttribute(types.AttributeKeySolver, solver.Address),
		sdk.NewAttribute(types.AttributeKeySolverReward, solverReward.String()),
		sdk.NewAttribute(types.AttributeKeyProtocolFee, protocolFee.String()),
		sdk.NewAttribute(types.AttributeKeyFeeVault, feeDest.String()),
	))
	k.metrics.IntentsSettled.Inc()
	return nil
}

// FailIntent aborts a non-terminal intent, refunding the creator in full.
// An unmatched intent may be failed by its creator; once a solver is bound,
// only that solver may fail it.
func (k Keeper) FailIntent(ctx context.Context, caller sdk.AccAddress, intentID uint64, reason string) error {
	intent, found := k.GetIntent(ctx, intentID)
	if !found {
		return types.ErrIntentNotFound.Wrapf("intent %d", intentID)
	}
	if intent.Status.IsTerminal() {
		return types.ErrInvalidIntentStatus.Wrapf(
			"intent %d is already %s", intentID, intent.Status)
	}

	if intent.Solver != "" {
		if caller.String() != intent.Solver {
			return types.ErrNotMatchedSolver.Wrapf("intent %d is bound to %s", intentID, intent.Solver)
		}
	} else if caller.String() != intent.Creator {
		return types.ErrUnauthorized.Wrapf("only the creator may fail unmatched intent %d", intentID)
	}

	return k.failIntent(ctx, &intent, reason)
}

// failIntent refunds escrow, penalizes the bound solver if any, and parks
// the intent in Failed.
func (k Keeper) failIntent(ctx context.Context, intent *types.Intent, reason string) error {
	if err := k.refundEscrow(ctx, intent.Id); err != nil {
		return err
	}

	if intent.Solver != "" {
		solver, found := k.GetSolver(ctx, intent.Solver)
		if found {
			solver.TotalIntentsExecuted++
			solver.FailedIntents++
			penalizeReputation(&solver)
			if err := k.SetSolver(ctx, solver); err != nil {
				return err
			}
		}
	}

	if err := k.forceIntentStatus(ctx, intent, types.IntentStatusFailed); err != nil {
		return err
	}
	intent.FailureReason = reason
	if err := k.SetIntent(ctx, *intent); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	// In-flight verifications for this intent can never complete now.
	// Tombstone them so a late gate callback sees a resolved id and the
	// end blocker stops reporting them as stale.
	var orphaned []types.PendingVerification
	k.IteratePendingVerifications(ctx, func(pv types.PendingVerification) bool {
		if pv.IntentId == intent.Id {
			orphaned = append(orphaned, pv)
		}
		return false
	})
	for _, pv := range orphaned {
		k.resolvePendingVerification(ctx, pv.Id)
		k.emitVerificationRejected(sdkCtx, pv, "intent failed")
	}

	if err := k.updateStats(ctx, func(stats *types.BridgeStats) {
		stats.FailedIntents++
	}); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeIntentFailed,
		sdk.NewAttribute(types.AttributeKeyIntentID, formatUint(intent.Id)),
		sdk.NewAttribute(types.AttributeKeyReason, reason),
	))
	k.metrics.IntentsFailed.Inc()
	return nil
}

// transitionIntent moves the intent to a new status along an allowed edge,
// maintaining the status index. The caller persists the record.
func (k Keeper) transitionIntent(ctx context.Context, intent *types.Intent, to types.IntentStatus) error {
	if !intent.Status.CanTransitionTo(to) {
		return types.ErrInvalidIntentStatus.Wrapf(
			"intent %d cannot move %s -> %s", intent.Id, intent.Status, to)
	}
	return k.forceIntentStatus(ctx, intent, to)
}

// forceIntentStatus applies a status change without edge validation. Used
// for Failed, which is reachable from every non-terminal status.
func (k Keeper) forceIntentStatus(ctx context.Context, intent *types.Intent, to types.IntentStatus) error {
	store := k.getStore(ctx)
	store.Delete(types.IntentByStatusKey(intent.Status, intent.Id))
	intent.Status = to
	store.Set(types.IntentByStatusKey(to, intent.Id), []byte{1})
	return nil
}

// GetIntent retrieves an intent by id
func (k Keeper) GetIntent(ctx context.Context, intentID uint64) (types.Intent, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.IntentKey(intentID))
	if bz == nil {
		return types.Intent{}, false
	}

	var intent types.Intent
	mustUnmarshalRecord(bz, &intent)
	return intent, true
}

// SetIntent stores an intent record
func (k Keeper) SetIntent(ctx context.Context, intent types.Intent) error {
	bz, err := marshalRecord(intent)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.IntentKey(intent.Id), bz)
	return nil
}

// IterateIntents calls cb for every intent until cb returns true
func (k Keeper) IterateIntents(ctx context.Context, cb func(types.Intent) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.IntentKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var intent types.Intent
		mustUnmarshalRecord(iterator.Value(), &intent)
		if cb(intent) {
			break
		}
	}
}

// IntentIDsByCreator lists intent ids created by the given address
func (k Keeper) IntentIDsByCreator(ctx context.Context, creator string) []uint64 {
	return k.intentIDsByPrefix(ctx, types.IntentByCreatorIterPrefix(creator))
}

// IntentIDsBySolver lists intent ids bound to the given solver
func (k Keeper) IntentIDsBySolver(ctx context.Context, solver string) []uint64 {
	return k.intentIDsByPrefix(ctx, types.IntentBySolverIterPrefix(solver))
}

func (k Keeper) intentIDsByPrefix(ctx context.Context, prefix []byte) []uint64 {
	var ids []uint64
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()
		ids = append(ids, binaryBigEndianUint64(key[len(prefix):]))
	}
	return ids
}

// IntentIDsByStatus lists intent ids currently in the given status
func (k Keeper) IntentIDsByStatus(ctx context.Context, status types.IntentStatus) []uint64 {
	var ids []uint64
	store := k.getStore(ctx)
	prefix := types.IntentByStatusIterPrefix(status)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()
		ids = append(ids, binaryBigEndianUint64(key[len(prefix):]))
	}
	return ids
}

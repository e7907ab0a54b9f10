package keeper

import (
	"bytes"
	"context"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/silence-labs/silence/x/bridge/types"
)

// The verification gate round-trip is asynchronous: a request is queued as a
// PendingVerification under a fresh correlation id, and a later callback
// from the authorized gate account resolves it. Each record resolves at most
// once; a tombstone distinguishes "already resolved" from "never existed".

// RequestAmountVerification queues a standalone amount check for an intent.
// The destination amount is supplied by the requester; shielded settlement
// uses the gate's own view instead (see SettleIntent).
func (k Keeper) RequestAmountVerification(
	ctx context.Context,
	requester sdk.AccAddress,
	intentID uint64,
	destinationAmount math.Int,
) (uint64, error) {
	intent, found := k.GetIntent(ctx, intentID)
	if !found {
		return 0, types.ErrIntentNotFound.Wrapf("intent %d", intentID)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}

	// The plaintext result is computable synchronously; it is still routed
	// through the gate so public and shielded intents share one audit trail.
	if _, err := VerifyAmounts(
		intent.SourceAmount, destinationAmount,
		params.ExpectedRateBps, params.MinSourceAmount, params.ProtocolFeeBps,
	); err != nil {
		return 0, err
	}

	return k.queuePendingVerification(ctx, types.PendingVerification{
		Kind:            types.VerificationKindAmounts,
		IntentId:        intentID,
		Solver:          intent.Solver,
		Requester:       requester.String(),
		SourceAmount:    intent.SourceAmount,
		ExpectedRateBps: params.ExpectedRateBps,
		MinSourceAmount: params.MinSourceAmount,
		MaxAmount:       math.ZeroInt(),
		VolumeThreshold: math.ZeroInt(),
	})
}

// RequestReputationAudit queues a gate recompute of a solver's tiered score.
func (k Keeper) RequestReputationAudit(ctx context.Context, requester sdk.AccAddress, solverAddr string) (uint64, error) {
	if _, found := k.GetSolver(ctx, solverAddr); !found {
		return 0, types.ErrSolverNotFound.Wrap(solverAddr)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}

	return k.queuePendingVerification(ctx, types.PendingVerification{
		Kind:            types.VerificationKindReputation,
		Solver:          solverAddr,
		Requester:       requester.String(),
		SourceAmount:    math.ZeroInt(),
		MinSourceAmount: math.ZeroInt(),
		MaxAmount:       math.ZeroInt(),
		VolumeThreshold: params.VolumeThreshold,
	})
}

// SubmitAmountVerification handles the gate callback for an amount check.
// A callback queued by settlement completes or fails the payout; a
// standalone check only records the outcome.
func (k Keeper) SubmitAmountVerification(ctx context.Context, gate sdk.AccAddress, msg *types.MsgSubmitAmountVerification) error {
	pv, err := k.takePendingVerification(ctx, gate, msg.VerificationId, types.VerificationKindAmounts)
	if err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	passed := !msg.Aborted && msg.RateValid && msg.AmountSufficient

	if pv.SettlesIntent {
		intent, found := k.GetIntent(ctx, pv.IntentId)
		if !found {
			return types.ErrIntentNotFound.Wrapf("intent %d", pv.IntentId)
		}
		if intent.Status != types.IntentStatusSettling {
			return types.ErrVerificationMismatch.Wrapf(
				"intent %d is %s, expected %s", pv.IntentId, intent.Status, types.IntentStatusSettling)
		}

		if !passed {
			k.emitVerificationRejected(sdkCtx, pv, rejectReason(msg.Aborted, "amount check failed"))
			return k.failIntent(ctx, &intent, "gate rejected settlement amounts")
		}

		if err := k.completeSettlement(ctx, &intent); err != nil {
			return err
		}
	}

	k.emitVerificationResolved(sdkCtx, pv)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeAmountsVerified,
		sdk.NewAttribute(types.AttributeKeyVerificationID, formatUint(pv.Id)),
		sdk.NewAttribute(types.AttributeKeyIntentID, formatUint(pv.IntentId)),
		sdk.NewAttribute(types.AttributeKeyRateValid, formatBool(msg.RateValid)),
		sdk.NewAttribute(types.AttributeKeyAmountSufficient, formatBool(msg.AmountSufficient)),
		sdk.NewAttribute(types.AttributeKeyFee, msg.Fee.String()),
	))
	return nil
}

// SubmitPrivacyProof handles the gate callback for a shielded execution.
// The commitment must match the one the creator bound at intent creation.
func (k Keeper) SubmitPrivacyProof(ctx context.Context, gate sdk.AccAddress, msg *types.MsgSubmitPrivacyProof) error {
	pv, err := k.takePendingVerification(ctx, gate, msg.VerificationId, types.VerificationKindPrivacyProof)
	if err != nil {
		return err
	}

	intent, found := k.GetIntent(ctx, pv.IntentId)
	if !found {
		return types.ErrIntentNotFound.Wrapf("intent %d", pv.IntentId)
	}
	if intent.Status != types.IntentStatusExecuting {
		return types.ErrVerificationMismatch.Wrapf(
			"intent %d is %s, expected %s", pv.IntentId, intent.Status, types.IntentStatusExecuting)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if msg.Aborted || !msg.RangeValid {
		k.emitVerificationRejected(sdkCtx, pv, rejectReason(msg.Aborted, "range check failed"))
		return k.failIntent(ctx, &intent, "gate rejected privacy proof")
	}

	// The gate echoes the commitment it proved against. A mismatch means
	// the proof covers a different transfer and is a hard failure.
	if !bytes.Equal(msg.Commitment, intent.AmountCommitment) {
		k.emitVerificationRejected(sdkCtx, pv, "commitment mismatch")
		return k.failIntent(ctx, &intent, "privacy proof commitment mismatch")
	}

	now := sdkCtx.BlockTime()
	if err := k.transitionIntent(ctx, &intent, types.IntentStatusExecuted); err != nil {
		return err
	}
	intent.ExecutedAt = &now
	if err := k.SetIntent(ctx, intent); err != nil {
		return err
	}

	k.emitVerificationResolved(sdkCtx, pv)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeIntentExecuted,
		sdk.NewAttribute(types.AttributeKeyIntentID, formatUint(intent.Id)),
		sdk.NewAttribute(types.AttributeKeySolver, intent.Solver),
		sdk.NewAttribute(types.AttributeKeyDestinationTxHash, intent.DestinationTxHash),
	))
	k.metrics.IntentsExecuted.Inc()
	return nil
}

// SubmitReputationScore handles the gate callback for a reputation audit.
// The payload is cross-checked against the tier thresholds before the audit
// is stored; an inconsistent payload is rejected without resolving the
// pending record, so the gate can resubmit a correct one.
func (k Keeper) SubmitReputationScore(ctx context.Context, gate sdk.AccAddress, msg *types.MsgSubmitReputationScore) error {
	pv, found, err := k.peekPendingVerification(ctx, gate, msg.VerificationId, types.VerificationKindReputation)
	if err != nil {
		return err
	}
	if !found {
		return types.ErrVerificationNotFound.Wrapf("verification %d", msg.VerificationId)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if msg.Aborted {
		k.resolvePendingVerification(ctx, pv.Id)
		k.emitVerificationRejected(sdkCtx, pv, "aborted by gate")
		return nil
	}

	if msg.Score > auditScoreMax {
		return types.ErrValidationFailed.Wrapf("score %d exceeds maximum %d", msg.Score, auditScoreMax)
	}
	if msg.Tier != TierForScore(msg.Score) {
		return types.ErrVerificationMismatch.Wrapf(
			"tier %d does not match score %d", msg.Tier, msg.Score)
	}
	if msg.HighValueEligible && msg.Tier < 4 {
		return types.ErrVerificationMismatch.Wrap("high value eligibility requires tier 4 or above")
	}

	k.resolvePendingVerification(ctx, pv.Id)

	audit := types.ReputationAudit{
		Solver:            pv.Solver,
		Score:             msg.Score,
		Tier:              msg.Tier,
		HighValueEligible: msg.HighValueEligible,
		ComputedAt:        sdkCtx.BlockTime(),
	}
	if err := k.setReputationAudit(ctx, audit); err != nil {
		return err
	}

	k.emitVerificationResolved(sdkCtx, pv)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeReputationAudited,
		sdk.NewAttribute(types.AttributeKeySolver, pv.Solver),
		sdk.NewAttribute(types.AttributeKeyScore, formatUint(uint64(msg.Score))),
		sdk.NewAttribute(types.AttributeKeyTier, formatUint(uint64(msg.Tier))),
		sdk.NewAttribute(types.AttributeKeyHighValueEligible, formatBool(msg.HighValueEligible)),
	))
	return nil
}

// takePendingVerification authorizes the gate, loads a pending record of the
// expected kind, and resolves it. Used by callbacks that never resubmit.
func (k Keeper) takePendingVerification(ctx context.Context, gate sdk.AccAddress, id uint64, kind types.VerificationKind) (types.PendingVerification, error) {
	pv, found, err := k.peekPendingVerification(ctx, gate, id, kind)
	if err != nil {
		return types.PendingVerification{}, err
	}
	if !found {
		return types.PendingVerification{}, types.ErrVerificationNotFound.Wrapf("verification %d", id)
	}
	k.resolvePendingVerification(ctx, pv.Id)
	return pv, nil
}

func (k Keeper) peekPendingVerification(ctx context.Context, gate sdk.AccAddress, id uint64, kind types.VerificationKind) (types.PendingVerification, bool, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return types.PendingVerification{}, false, err
	}
	if params.VerificationGate == "" || gate.String() != params.VerificationGate {
		return types.PendingVerification{}, false, types.ErrUnauthorized.Wrap("caller is not the verification gate")
	}

	pv, found := k.GetPendingVerification(ctx, id)
	if !found {
		if k.isResolvedVerification(ctx, id) {
			return types.PendingVerification{}, false, types.ErrVerificationResolved.Wrapf("verification %d", id)
		}
		return types.PendingVerification{}, false, nil
	}
	if pv.Kind != kind {
		return types.PendingVerification{}, false, types.ErrVerificationMismatch.Wrapf(
			"verification %d is a %s request, got a %s result", id, pv.Kind, kind)
	}
	return pv, true, nil
}

// queuePendingVerification assigns a correlation id, stores the record and
// emits the request event the gate listens for.
func (k Keeper) queuePendingVerification(ctx context.Context, pv types.PendingVerification) (uint64, error) {
	id, err := k.nextVerificationID(ctx)
	if err != nil {
		return 0, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	pv.Id = id
	pv.SubmittedAt = sdkCtx.BlockTime()
	if err := k.SetPendingVerification(ctx, pv); err != nil {
		return 0, err
	}

	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeVerificationQueued,
		sdk.NewAttribute(types.AttributeKeyVerificationID, formatUint(id)),
		sdk.NewAttribute(types.AttributeKeyVerificationKind, pv.Kind.String()),
		sdk.NewAttribute(types.AttributeKeyIntentID, formatUint(pv.IntentId)),
		sdk.NewAttribute(types.AttributeKeySolver, pv.Solver),
	))
	k.metrics.VerificationsQueued.Inc()
	return id, nil
}

func (k Keeper) resolvePendingVerification(ctx context.Context, id uint64) {
	store := k.getStore(ctx)
	store.Delete(types.PendingVerificationKey(id))
	store.Set(types.ResolvedVerificationKey(id), []byte{1})
	k.metrics.VerificationsResolved.Inc()
}

func (k Keeper) isResolvedVerification(ctx context.Context, id uint64) bool {
	return k.getStore(ctx).Has(types.ResolvedVerificationKey(id))
}

// GetPendingVerification retrieves a pending verification by correlation id
func (k Keeper) GetPendingVerification(ctx context.Context, id uint64) (types.PendingVerification, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.PendingVerificationKey(id))
	if bz == nil {
		return types.PendingVerification{}, false
	}

	var pv types.PendingVerification
	mustUnmarshalRecord(bz, &pv)
	return pv, true
}

// SetPendingVerification stores a pending verification record
func (k Keeper) SetPendingVerification(ctx context.Context, pv types.PendingVerification) error {
	bz, err := marshalRecord(pv)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.PendingVerificationKey(pv.Id), bz)
	return nil
}

// IteratePendingVerifications calls cb for every pending verification until
// cb returns true
func (k Keeper) IteratePendingVerifications(ctx context.Context, cb func(types.PendingVerification) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.PendingVerificationKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pv types.PendingVerification
		mustUnmarshalRecord(iterator.Value(), &pv)
		if cb(pv) {
			break
		}
	}
}

func (k Keeper) nextVerificationID(ctx context.Context) (uint64, error) {
	store := k.getStore(ctx)
	next := uint64(1)
	if bz := store.Get(types.VerificationCountKey); bz != nil {
		next = binaryBigEndianUint64(bz)
	}

	following, err := SafeAddUint64(next, 1)
	if err != nil {
		return 0, err
	}
	store.Set(types.VerificationCountKey, bigEndianBytes(following))
	return next, nil
}

// SetNextVerificationID seeds the correlation id counter, used by genesis
func (k Keeper) SetNextVerificationID(ctx context.Context, id uint64) {
	k.getStore(ctx).Set(types.VerificationCountKey, bigEndianBytes(id))
}

// NextVerificationIDPeek returns the id the next request will be assigned
func (k Keeper) NextVerificationIDPeek(ctx context.Context) uint64 {
	if bz := k.getStore(ctx).Get(types.VerificationCountKey); bz != nil {
		return binaryBigEndianUint64(bz)
	}
	return 1
}

// GetReputationAudit retrieves the latest gate audit for a solver
func (k Keeper) GetReputationAudit(ctx context.Context, solverAddr string) (types.ReputationAudit, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.ReputationAuditKey(solverAddr))
	if bz == nil {
		return types.ReputationAudit{}, false
	}

	var audit types.ReputationAudit
	mustUnmarshalRecord(bz, &audit)
	return audit, true
}

func (k Keeper) setReputationAudit(ctx context.Context, audit types.ReputationAudit) error {
	bz, err := marshalRecord(audit)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.ReputationAuditKey(audit.Solver), bz)
	return nil
}

// IterateReputationAudits calls cb for every stored audit until cb returns true
func (k Keeper) IterateReputationAudits(ctx context.Context, cb func(types.ReputationAudit) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.ReputationAuditKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var audit types.ReputationAudit
		mustUnmarshalRecord(iterator.Value(), &audit)
		if cb(audit) {
			break
		}
	}
}

func (k Keeper) emitVerificationResolved(ctx sdk.Context, pv types.PendingVerification) {
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeVerificationResolved,
		sdk.NewAttribute(types.AttributeKeyVerificationID, formatUint(pv.Id)),
		sdk.NewAttribute(types.AttributeKeyVerificationKind, pv.Kind.String()),
	))
}

func (k Keeper) emitVerificationRejected(ctx sdk.Context, pv types.PendingVerification, reason string) {
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeVerificationRejected,
		sdk.NewAttribute(types.AttributeKeyVerificationID, formatUint(pv.Id)),
		sdk.NewAttribute(types.AttributeKeyVerificationKind, pv.Kind.String()),
		sdk.NewAttribute(types.AttributeKeyReason, reason),
	))
	k.metrics.VerificationsRejected.Inc()
}

func rejectReason(aborted bool, fallback string) string {
	if aborted {
		return "aborted by gate"
	}
	return fallback
}

package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/silence-labs/silence/x/bridge/types"
)

// EndBlocker surfaces verifications the gate has not answered within the
// configured timeout. Stale requests are flagged, never auto-failed: the
// gate remains the only party that can resolve a pending record, and a
// stuck intent is failed explicitly through fail_intent.
func (k Keeper) EndBlocker(ctx context.Context) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime()

	k.IteratePendingVerifications(ctx, func(pv types.PendingVerification) bool {
		age := now.Sub(pv.SubmittedAt)
		if age.Seconds() < float64(params.VerificationTimeoutSeconds) {
			return false
		}

		k.Logger(sdkCtx).Warn("verification overdue",
			"verification_id", pv.Id,
			"kind", pv.Kind.String(),
			"intent_id", pv.IntentId,
			"age", age.String(),
		)
		sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeVerificationStale,
			sdk.NewAttribute(types.AttributeKeyVerificationID, formatUint(pv.Id)),
			sdk.NewAttribute(types.AttributeKeyVerificationKind, pv.Kind.String()),
			sdk.NewAttribute(types.AttributeKeyIntentID, formatUint(pv.IntentId)),
			sdk.NewAttribute(types.AttributeKeyAgeSeconds, formatUint(uint64(age.Seconds()))),
		))
		k.metrics.VerificationsStale.Inc()
		return false
	})

	return nil
}

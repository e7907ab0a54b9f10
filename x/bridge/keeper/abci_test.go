package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/silence-labs/silence/x/bridge/types"
)

func eventsOfType(ctx sdk.Context, eventType string) []sdk.Event {
	var out []sdk.Event
	for _, ev := range ctx.EventManager().Events() {
		if ev.Type == eventType {
			out = append(out, ev)
		}
	}
	return out
}

func TestEndBlockerFlagsStaleVerifications(t *testing.T) {
	k, bank, ctx := setupKeeper(t)

	createTestIntent(t, k, bank, ctx, 1, 1_000)
	verificationID, err := k.RequestAmountVerification(ctx, randAddr(), 1, math.NewInt(95))
	require.NoError(t, err)

	// within the timeout nothing is flagged
	fresh := ctx.WithEventManager(sdk.NewEventManager())
	require.NoError(t, k.EndBlocker(fresh))
	require.Empty(t, eventsOfType(fresh, types.EventTypeVerificationStale))

	// past the timeout the request is flagged but left pending
	late := ctx.WithBlockTime(ctx.BlockTime().Add(2 * time.Hour)).WithEventManager(sdk.NewEventManager())
	require.NoError(t, k.EndBlocker(late))
	require.Len(t, eventsOfType(late, types.EventTypeVerificationStale), 1)

	_, found := k.GetPendingVerification(ctx, verificationID)
	require.True(t, found)

	intent, _ := k.GetIntent(ctx, 1)
	require.Equal(t, types.IntentStatusCreated, intent.Status)
}

package ante_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	silenceante "github.com/silence-labs/silence/app/ante"
	keepertest "github.com/silence-labs/silence/testutil/keeper"
	bridgetypes "github.com/silence-labs/silence/x/bridge/types"
)

func passThrough(ctx sdk.Context, _ sdk.Tx, _ bool) (sdk.Context, error) {
	return ctx, nil
}

func TestBridgeDecoratorRejectsLowStake(t *testing.T) {
	k, _, ctx := keepertest.BridgeKeeper(t)
	dec := silenceante.NewBridgeDecorator(k)

	tx := mockTx{msgs: []sdk.Msg{&bridgetypes.MsgRegisterSolver{
		Solver:          "sil1solver",
		SupportedChains: []bridgetypes.Chain{bridgetypes.ChainNear},
		Stake:           math.NewInt(1),
	}}}

	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.Error(t, err)
	require.Contains(t, err.Error(), "less than minimum")
}

func TestBridgeDecoratorRejectsUnknownSolver(t *testing.T) {
	k, _, ctx := keepertest.BridgeKeeper(t)
	dec := silenceante.NewBridgeDecorator(k)

	tx := mockTx{msgs: []sdk.Msg{&bridgetypes.MsgMatchIntent{
		Solver:   "sil1nobody",
		IntentId: 1,
	}}}

	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.Error(t, err)
	require.Contains(t, err.Error(), "solver not registered")
}

func TestBridgeDecoratorRejectsUnknownIntent(t *testing.T) {
	k, _, ctx := keepertest.BridgeKeeper(t)
	dec := silenceante.NewBridgeDecorator(k)

	tx := mockTx{msgs: []sdk.Msg{&bridgetypes.MsgExecuteIntent{
		Solver:            "sil1solver",
		IntentId:          42,
		DestinationTxHash: "deadbeef",
	}}}

	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestBridgeDecoratorSkipsSimulation(t *testing.T) {
	k, _, ctx := keepertest.BridgeKeeper(t)
	dec := silenceante.NewBridgeDecorator(k)

	tx := mockTx{msgs: []sdk.Msg{&bridgetypes.MsgMatchIntent{
		Solver:   "sil1nobody",
		IntentId: 1,
	}}}

	_, err := dec.AnteHandle(ctx, tx, true, passThrough)
	require.NoError(t, err)
}

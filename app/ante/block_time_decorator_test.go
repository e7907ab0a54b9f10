package ante_test

import (
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/silence-labs/silence/app/ante"
)

func TestBlockTimeDecorator(t *testing.T) {
	t.Parallel()

	next := func(ctx sdk.Context, _ sdk.Tx, _ bool) (sdk.Context, error) {
		return ctx, nil
	}
	dec := ante.NewBlockTimeDecorator()
	now := time.Now()

	tests := []struct {
		name      string
		height    int64
		blockTime time.Time
		simulate  bool
		wantErr   bool
	}{
		{name: "current block time", height: 10, blockTime: now},
		{name: "historical block during catch-up", height: 10, blockTime: now.Add(-24 * time.Hour)},
		{name: "within the drift bound", height: 10, blockTime: now.Add(10 * time.Second)},
		{name: "forward-dated block", height: 10, blockTime: now.Add(10 * time.Minute), wantErr: true},
		{name: "genesis block skips the check", height: 1, blockTime: now.Add(10 * time.Minute)},
		{name: "simulation skips the check", height: 10, blockTime: now.Add(10 * time.Minute), simulate: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := sdk.Context{}.WithBlockHeight(tc.height).WithBlockTime(tc.blockTime)
			_, err := dec.AnteHandle(ctx, memoTx{}, tc.simulate, next)
			if tc.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), "block time")
				return
			}
			require.NoError(t, err)
		})
	}
}

package ante_test

import (
	"strings"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	protov2 "google.golang.org/protobuf/proto"

	"github.com/stretchr/testify/require"

	"github.com/silence-labs/silence/app/ante"
)

type memoTx struct {
	memo string
}

func (m memoTx) GetMsgs() []sdk.Msg                    { return nil }
func (m memoTx) GetMsgsV2() ([]protov2.Message, error) { return nil, nil }
func (m memoTx) GetMemo() string                       { return m.memo }

func TestMemoLimitDecorator(t *testing.T) {
	t.Parallel()

	next := func(ctx sdk.Context, _ sdk.Tx, _ bool) (sdk.Context, error) {
		return ctx, nil
	}
	dec := ante.NewMemoLimitDecorator(ante.MaxMemoBytes)

	_, err := dec.AnteHandle(sdk.Context{}, memoTx{memo: "intent refund"}, false, next)
	require.NoError(t, err)

	_, err = dec.AnteHandle(sdk.Context{}, memoTx{memo: strings.Repeat("x", ante.MaxMemoBytes)}, false, next)
	require.NoError(t, err)

	_, err = dec.AnteHandle(sdk.Context{}, memoTx{memo: strings.Repeat("x", ante.MaxMemoBytes+1)}, false, next)
	require.Error(t, err)
	require.Contains(t, err.Error(), "memo")
}

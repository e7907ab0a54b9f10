package ante

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MemoLimitDecorator caps the memo size in bytes before any stateful
// processing. The SDK's ValidateMemoDecorator enforces the auth params
// limit later in the chain; this cap is tighter and runs before fees or
// signatures are touched, so an oversized payload is rejected at minimal
// cost to the node.
type MemoLimitDecorator struct {
	maxBytes int
}

func NewMemoLimitDecorator(maxBytes int) MemoLimitDecorator {
	return MemoLimitDecorator{maxBytes: maxBytes}
}

func (d MemoLimitDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (sdk.Context, error) {
	memoTx, ok := tx.(sdk.TxWithMemo)
	if !ok {
		return next(ctx, tx, simulate)
	}
	if size := len(memoTx.GetMemo()); size > d.maxBytes {
		return ctx, sdkerrors.ErrMemoTooLarge.Wrapf("%d bytes, limit is %d", size, d.maxBytes)
	}
	return next(ctx, tx, simulate)
}

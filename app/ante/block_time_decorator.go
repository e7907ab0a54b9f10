package ante

import (
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MaxFutureBlockTime is how far ahead of local wall-clock time a proposed
// block timestamp may sit before the node stops processing transactions
// against it. Intent TTLs and verification timeouts are measured in block
// time, so a forward-dated proposal would expire them early.
const MaxFutureBlockTime = 30 * time.Second

// BlockTimeDecorator rejects transactions in blocks whose timestamp has
// drifted past the future bound. Past timestamps are never rejected: a node
// replaying history during catch-up must accept arbitrarily old blocks, and
// CometBFT already guarantees monotonicity against the previous header.
type BlockTimeDecorator struct {
	now func() time.Time
}

func NewBlockTimeDecorator() BlockTimeDecorator {
	return BlockTimeDecorator{now: time.Now}
}

func (d BlockTimeDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (sdk.Context, error) {
	if simulate || ctx.BlockHeight() <= 1 {
		return next(ctx, tx, simulate)
	}

	limit := d.now().Add(MaxFutureBlockTime)
	if blockTime := ctx.BlockTime(); blockTime.After(limit) {
		return ctx, sdkerrors.ErrInvalidRequest.Wrapf(
			"block time %s exceeds local time by more than %s", blockTime, MaxFutureBlockTime)
	}

	return next(ctx, tx, simulate)
}

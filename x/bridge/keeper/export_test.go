package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
)

// StateStore exposes the module store to white-box tests.
func (k Keeper) StateStore(ctx context.Context) storetypes.KVStore {
	return k.getStore(ctx)
}

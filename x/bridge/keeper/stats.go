package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/silence-labs/silence/x/bridge/types"
)

// GetStats retrieves the lifetime module counters
func (k Keeper) GetStats(ctx context.Context) (types.BridgeStats, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.StatsKey)
	if bz == nil {
		return types.BridgeStats{
			TotalVolume:       math.ZeroInt(),
			TotalProtocolFees: math.ZeroInt(),
		}, nil
	}

	var stats types.BridgeStats
	if err := unmarshalRecord(bz, &stats); err != nil {
		return types.BridgeStats{}, err
	}
	return stats, nil
}

// SetStats stores the lifetime module counters
func (k Keeper) SetStats(ctx context.Context, stats types.BridgeStats) error {
	bz, err := marshalRecord(stats)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.StatsKey, bz)
	return nil
}

func (k Keeper) updateStats(ctx context.Context, mutate func(*types.BridgeStats)) error {
	stats, err := k.GetStats(ctx)
	if err != nil {
		return err
	}
	mutate(&stats)
	return k.SetStats(ctx, stats)
}

package keeper

import (
	"context"

	"github.com/silence-labs/silence/x/bridge/types"
)

// GetParams retrieves the module parameters from the store
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.ParamsKey)

	if bz == nil {
		return types.DefaultParams(), nil
	}

	var params types.Params
	if err := unmarshalRecord(bz, &params); err != nil {
		return types.Params{}, err
	}
	return params, nil
}

// SetParams validates and stores the module parameters
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	bz, err := marshalRecord(params)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.ParamsKey, bz)
	return nil
}

// SetProtocolFee updates only the settlement fee
func (k Keeper) SetProtocolFee(ctx context.Context, feeBps uint32) error {
	if feeBps > types.MaxProtocolFeeBps {
		return types.ErrFeeTooHigh.Wrapf("fee %d bps exceeds maximum %d", feeBps, types.MaxProtocolFeeBps)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	params.ProtocolFeeBps = feeBps
	return k.SetParams(ctx, params)
}

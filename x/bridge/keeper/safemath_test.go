package keeper_test

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/silence-labs/silence/x/bridge/keeper"
	"github.com/silence-labs/silence/x/bridge/types"
)

func bigPow2(exp uint) math.Int {
	return math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), exp))
}

func TestSafeAdd(t *testing.T) {
	sum, err := keeper.SafeAdd(math.NewInt(2), math.NewInt(3))
	require.NoError(t, err)
	require.Equal(t, int64(5), sum.Int64())

	_, err = keeper.SafeAdd(bigPow2(255), bigPow2(255))
	require.ErrorIs(t, err, types.ErrArithmeticOverflow)
}

func TestSafeSub(t *testing.T) {
	diff, err := keeper.SafeSub(math.NewInt(5), math.NewInt(3))
	require.NoError(t, err)
	require.Equal(t, int64(2), diff.Int64())

	_, err = keeper.SafeSub(math.NewInt(3), math.NewInt(5))
	require.ErrorIs(t, err, types.ErrArithmeticOverflow)
}

func TestSafeMul(t *testing.T) {
	product, err := keeper.SafeMul(math.NewInt(6), math.NewInt(7))
	require.NoError(t, err)
	require.Equal(t, int64(42), product.Int64())

	product, err = keeper.SafeMul(math.ZeroInt(), bigPow2(255))
	require.NoError(t, err)
	require.True(t, product.IsZero())

	_, err = keeper.SafeMul(bigPow2(200), bigPow2(200))
	require.ErrorIs(t, err, types.ErrArithmeticOverflow)
}

func TestSafeMulDiv(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c math.Int
		want    int64
		wantErr error
	}{
		{name: "exact division", a: math.NewInt(10_000), b: math.NewInt(250), c: math.NewInt(10_000), want: 250},
		{name: "floors toward zero", a: math.NewInt(999), b: math.NewInt(250), c: math.NewInt(10_000), want: 24},
		{name: "multiplies before dividing", a: math.NewInt(7), b: math.NewInt(3), c: math.NewInt(10), want: 2},
		{name: "division by zero", a: math.NewInt(1), b: math.NewInt(1), c: math.ZeroInt(), wantErr: types.ErrDivisionByZero},
		{name: "intermediate overflow", a: bigPow2(200), b: bigPow2(200), c: math.NewInt(2), wantErr: types.ErrArithmeticOverflow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := keeper.SafeMulDiv(tc.a, tc.b, tc.c)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got.Int64())
		})
	}
}

func TestSafeAddUint64(t *testing.T) {
	sum, err := keeper.SafeAddUint64(41, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(42), sum)

	_, err = keeper.SafeAddUint64(^uint64(0), 1)
	require.ErrorIs(t, err, types.ErrArithmeticOverflow)
}

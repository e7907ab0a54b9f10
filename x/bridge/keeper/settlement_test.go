package keeper_test

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/silence-labs/silence/x/bridge/keeper"
	"github.com/silence-labs/silence/x/bridge/types"
)

// With no fee vault configured, settlement must push the protocol fee out to
// the fee collector. A fee parked in the bridge module account would inflate
// its balance past the sum of locked escrow and stake, breaking the module
// balance invariant: settling 10,000usil at 30 bps used to leave the module
// at 1,000,030 against an expected 1,000,000.
func TestSettlementDefaultFeeVaultPaysFeeCollector(t *testing.T) {
	k, bank, ctx := setupKeeper(t)

	solver := registerTestSolver(t, k, bank, ctx, types.ChainSilence, types.ChainNear)
	createTestIntent(t, k, bank, ctx, 1, 10_000)
	matchAndExecute(t, k, ctx, solver, 1)

	_, err := k.SettleIntent(ctx, 1)
	require.NoError(t, err)

	feeCollector := authtypes.NewModuleAddress(authtypes.FeeCollectorName)
	require.Equal(t, int64(30), balanceOf(ctx, bank, feeCollector).Int64())
	require.Equal(t, int64(1_000_000), balanceOf(ctx, bank, k.GetModuleAddress()).Int64())

	msg, broken := keeper.ModuleBalanceInvariant(*k)(ctx)
	require.False(t, broken, msg)
}

func TestCalculateSettlement(t *testing.T) {
	tests := []struct {
		name       string
		amount     math.Int
		feeBps     uint32
		wantFee    int64
		wantReward int64
		wantErr    error
	}{
		{
			name:       "typical fee",
			amount:     math.NewInt(10_000),
			feeBps:     250,
			wantFee:    250,
			wantReward: 9_750,
		},
		{
			name:       "default protocol fee",
			amount:     math.NewInt(1_000),
			feeBps:     30,
			wantFee:    3,
			wantReward: 997,
		},
		{
			name:       "fee floors toward zero",
			amount:     math.NewInt(999),
			feeBps:     250,
			wantFee:    24,
			wantReward: 975,
		},
		{
			name:       "zero fee",
			amount:     math.NewInt(10_000),
			feeBps:     0,
			wantFee:    0,
			wantReward: 10_000,
		},
		{
			name:       "amount below one basis point",
			amount:     math.NewInt(3),
			feeBps:     30,
			wantFee:    0,
			wantReward: 3,
		},
		{
			name:    "zero amount rejected",
			amount:  math.ZeroInt(),
			feeBps:  30,
			wantErr: types.ErrZeroDeposit,
		},
		{
			name:    "fee above maximum rejected",
			amount:  math.NewInt(10_000),
			feeBps:  types.MaxProtocolFeeBps + 1,
			wantErr: types.ErrFeeTooHigh,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fee, reward, err := keeper.CalculateSettlement(tc.amount, tc.feeBps)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantFee, fee.Int64())
			require.Equal(t, tc.wantReward, reward.Int64())
			require.True(t, fee.Add(reward).Equal(tc.amount), "fee and reward must partition the amount")
		})
	}
}

func TestCalculateSettlementOverflow(t *testing.T) {
	huge := math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 255))
	_, _, err := keeper.CalculateSettlement(huge, 250)
	require.ErrorIs(t, err, types.ErrArithmeticOverflow)
}

func TestVerifyAmounts(t *testing.T) {
	tests := []struct {
		name            string
		source          math.Int
		destination     math.Int
		expectedRateBps uint64
		minSource       math.Int
		feeBps          uint32
		want            types.AmountVerification
		wantErr         error
	}{
		{
			name:            "all checks pass",
			source:          math.NewInt(1_000),
			destination:     math.NewInt(95),
			expectedRateBps: 10_000,
			minSource:       math.NewInt(500),
			feeBps:          30,
			want:            types.AmountVerification{RateValid: true, AmountSufficient: true, Fee: math.NewInt(3)},
		},
		{
			name:            "destination over the rate ceiling",
			source:          math.NewInt(1_000),
			destination:     math.NewInt(1_001),
			expectedRateBps: 10_000,
			minSource:       math.NewInt(500),
			feeBps:          30,
			want:            types.AmountVerification{RateValid: false, AmountSufficient: true, Fee: math.NewInt(3)},
		},
		{
			name:            "destination exactly at the ceiling",
			source:          math.NewInt(1_000),
			destination:     math.NewInt(1_000),
			expectedRateBps: 10_000,
			minSource:       math.NewInt(500),
			feeBps:          30,
			want:            types.AmountVerification{RateValid: true, AmountSufficient: true, Fee: math.NewInt(3)},
		},
		{
			name:            "source below minimum",
			source:          math.NewInt(400),
			destination:     math.NewInt(95),
			expectedRateBps: 10_000,
			minSource:       math.NewInt(500),
			feeBps:          30,
			want:            types.AmountVerification{RateValid: true, AmountSufficient: false, Fee: math.NewInt(1)},
		},
		{
			name:            "rate ceiling floors before compare",
			source:          math.NewInt(999),
			destination:     math.NewInt(500),
			expectedRateBps: 5_000,
			minSource:       math.NewInt(1),
			feeBps:          0,
			want:            types.AmountVerification{RateValid: false, AmountSufficient: true, Fee: math.NewInt(0)},
		},
		{
			name:            "negative source rejected",
			source:          math.NewInt(-1),
			destination:     math.NewInt(95),
			expectedRateBps: 10_000,
			minSource:       math.NewInt(1),
			feeBps:          30,
			wantErr:         types.ErrValidationFailed,
		},
		{
			name:            "overflowing source rejected",
			source:          math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 255)),
			destination:     math.NewInt(95),
			expectedRateBps: 10_000,
			minSource:       math.NewInt(1),
			feeBps:          30,
			wantErr:         types.ErrArithmeticOverflow,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := keeper.VerifyAmounts(tc.source, tc.destination, tc.expectedRateBps, tc.minSource, tc.feeBps)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want.RateValid, got.RateValid)
			require.Equal(t, tc.want.AmountSufficient, got.AmountSufficient)
			require.True(t, tc.want.Fee.Equal(got.Fee), "fee %s != %s", tc.want.Fee, got.Fee)
		})
	}
}

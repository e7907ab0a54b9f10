package keeper

import (
	"cosmossdk.io/math"

	"github.com/silence-labs/silence/x/bridge/types"
)

// CalculateSettlement splits an escrowed source amount into the protocol fee
// and the solver reward. The fee is floor(amount * feeBps / 10000); the
// reward is the remainder, so fee + reward == amount always holds.
func CalculateSettlement(sourceAmount math.Int, feeBps uint32) (protocolFee, solverReward math.Int, err error) {
	if sourceAmount.IsNil() || !sourceAmount.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrZeroDeposit
	}
	return splitFee(sourceAmount, feeBps)
}

// VerifyAmounts is the plaintext form of the gate's amount check, used for
// unshielded intents and to cross-check gate callbacks.
//
// rate_valid holds when destination <= source * expectedRateBps / 10000,
// amount_sufficient when source >= minSource. The fee is computed over the
// source amount with the same floor division as settlement.
func VerifyAmounts(
	sourceAmount, destinationAmount math.Int,
	expectedRateBps uint64,
	minSourceAmount math.Int,
	protocolFeeBps uint32,
) (types.AmountVerification, error) {
	if sourceAmount.IsNil() || sourceAmount.IsNegative() {
		return types.AmountVerification{}, types.ErrValidationFailed.Wrap("source amount must be non-negative")
	}
	if destinationAmount.IsNil() || destinationAmount.IsNegative() {
		return types.AmountVerification{}, types.ErrValidationFailed.Wrap("destination amount must be non-negative")
	}

	maxDestination, err := SafeMulDiv(
		sourceAmount,
		math.NewIntFromUint64(expectedRateBps),
		math.NewInt(types.BpsDenominator),
	)
	if err != nil {
		return types.AmountVerification{}, err
	}

	fee, _, err := splitFee(sourceAmount, protocolFeeBps)
	if err != nil {
		return types.AmountVerification{}, err
	}

	return types.AmountVerification{
		RateValid:        destinationAmount.LTE(maxDestination),
		AmountSufficient: sourceAmount.GTE(minSourceAmount),
		Fee:              fee,
	}, nil
}

func splitFee(amount math.Int, feeBps uint32) (fee, rest math.Int, err error) {
	if feeBps > types.MaxProtocolFeeBps {
		return math.Int{}, math.Int{}, types.ErrFeeTooHigh.Wrapf(
			"fee %d bps exceeds maximum %d", feeBps, types.MaxProtocolFeeBps)
	}
	fee, err = SafeMulDiv(amount, math.NewIntFromUint64(uint64(feeBps)), math.NewInt(types.BpsDenominator))
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	rest, err = SafeSub(amount, fee)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	return fee, rest, nil
}

package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/silence-labs/silence/x/bridge/types"
)

// Overflow-safe arithmetic over math.Int. Results are capped at 2^256 to
// stay representable on every connected ledger.

var maxSafeInt = new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)

// SafeAdd adds two math.Int values with overflow checking
func SafeAdd(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())
	if result.Cmp(maxSafeInt) >= 0 {
		return math.Int{}, types.ErrArithmeticOverflow.Wrap("addition result exceeds maximum value")
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeSub subtracts two math.Int values with underflow checking
func SafeSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, types.ErrArithmeticOverflow.Wrapf("cannot subtract %s from %s", b, a)
	}
	return math.NewIntFromBigInt(new(big.Int).Sub(a.BigInt(), b.BigInt())), nil
}

// SafeMul multiplies two math.Int values with overflow checking
func SafeMul(a, b math.Int) (math.Int, error) {
	if a.IsZero() || b.IsZero() {
		return math.ZeroInt(), nil
	}

	result := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if result.Cmp(maxSafeInt) >= 0 {
		return math.Int{}, types.ErrArithmeticOverflow.Wrap("multiplication result exceeds maximum value")
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeMulDiv performs (a * b) / c, multiplying before dividing so no
// precision is lost, with overflow protection on the intermediate product.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, types.ErrDivisionByZero
	}

	intermediate := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if intermediate.Cmp(maxSafeInt) >= 0 {
		return math.Int{}, types.ErrArithmeticOverflow.Wrap("overflow in multiplication step")
	}

	return math.NewIntFromBigInt(new(big.Int).Div(intermediate, c.BigInt())), nil
}

// SafeAddUint64 adds two uint64 values with overflow checking
func SafeAddUint64(a, b uint64) (uint64, error) {
	if a > (1<<64-1)-b {
		return 0, types.ErrArithmeticOverflow.Wrap("uint64 addition overflow")
	}
	return a + b, nil
}

package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	"github.com/stretchr/testify/require"

	keepertest "github.com/silence-labs/silence/testutil/keeper"
	"github.com/silence-labs/silence/x/bridge/keeper"
	"github.com/silence-labs/silence/x/bridge/types"
)

const testDenom = "usil"

func setupKeeper(t *testing.T) (*keeper.Keeper, bankkeeper.Keeper, sdk.Context) {
	return keepertest.BridgeKeeper(t)
}

func randAddr() sdk.AccAddress {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
}

// configureGate points params.VerificationGate at a fresh account and
// returns its address
func configureGate(t *testing.T, k *keeper.Keeper, ctx sdk.Context) sdk.AccAddress {
	t.Helper()
	gate := randAddr()
	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	params.VerificationGate = gate.String()
	require.NoError(t, k.SetParams(ctx, params))
	return gate
}

// registerTestSolver funds and registers an active solver at the minimum
// stake supporting the given chains
func registerTestSolver(t *testing.T, k *keeper.Keeper, bank bankkeeper.Keeper, ctx sdk.Context, chains ...types.Chain) sdk.AccAddress {
	t.Helper()
	addr := randAddr()
	keepertest.FundAccount(t, ctx, bank, addr, math.NewInt(2_000_000))
	_, err := k.RegisterSolver(ctx, addr, types.NewChainSet(chains...), math.NewInt(1_000_000))
	require.NoError(t, err)
	return addr
}

// createTestIntent funds a fresh creator and opens a public intent to Near
func createTestIntent(t *testing.T, k *keeper.Keeper, bank bankkeeper.Keeper, ctx sdk.Context, id uint64, amount int64) sdk.AccAddress {
	t.Helper()
	creator := randAddr()
	keepertest.FundAccount(t, ctx, bank, creator, math.NewInt(amount))
	_, err := k.CreateIntent(ctx, creator, id, types.ChainNear, math.NewInt(amount), "", nil, nil, false, 3600)
	require.NoError(t, err)
	return creator
}

// createShieldedIntent opens a shielded intent with the given commitment
func createShieldedIntent(t *testing.T, k *keeper.Keeper, bank bankkeeper.Keeper, ctx sdk.Context, id uint64, amount int64, commitment []byte) sdk.AccAddress {
	t.Helper()
	creator := randAddr()
	keepertest.FundAccount(t, ctx, bank, creator, math.NewInt(amount))
	_, err := k.CreateIntent(ctx, creator, id, types.ChainZcash, math.NewInt(amount), "", commitment, nil, true, 3600)
	require.NoError(t, err)
	return creator
}

// matchAndExecute drives a public intent to Executed via the given solver
func matchAndExecute(t *testing.T, k *keeper.Keeper, ctx sdk.Context, solver sdk.AccAddress, id uint64) {
	t.Helper()
	require.NoError(t, k.MatchIntent(ctx, solver, id))
	verificationID, err := k.ExecuteIntent(ctx, solver, id, "0xdeadbeef", nil)
	require.NoError(t, err)
	require.Zero(t, verificationID)
}

func balanceOf(ctx sdk.Context, bank bankkeeper.Keeper, addr sdk.AccAddress) math.Int {
	return bank.GetBalance(ctx, addr, testDenom).Amount
}

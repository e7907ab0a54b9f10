package ante_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cosmossdk.io/core/address"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtx "github.com/cosmos/cosmos-sdk/x/auth/tx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	silenceante "github.com/silence-labs/silence/app/ante"
)

func TestNewAnteHandlerMissingAccountKeeper(t *testing.T) {
	handler, err := silenceante.NewAnteHandler(silenceante.HandlerOptions{})
	require.Error(t, err)
	require.Nil(t, handler)
	require.Contains(t, err.Error(), "account keeper is required")
}

func TestNewAnteHandlerMissingBankKeeper(t *testing.T) {
	handler, err := silenceante.NewAnteHandler(silenceante.HandlerOptions{
		AccountKeeper: mockAccountKeeper{},
	})
	require.Error(t, err)
	require.Nil(t, handler)
	require.Contains(t, err.Error(), "bank keeper is required")
}

func TestNewAnteHandlerMissingSignModeHandler(t *testing.T) {
	handler, err := silenceante.NewAnteHandler(silenceante.HandlerOptions{
		AccountKeeper: mockAccountKeeper{},
		BankKeeper:    mockBankKeeper{},
	})
	require.Error(t, err)
	require.Nil(t, handler)
	require.Contains(t, err.Error(), "sign mode handler is required")
}

func TestNewAnteHandlerComplete(t *testing.T) {
	cdc := codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
	txConfig := authtx.NewTxConfig(cdc, authtx.DefaultSignModes)

	// The bridge keeper is optional; without it the chain is still valid.
	handler, err := silenceante.NewAnteHandler(silenceante.HandlerOptions{
		AccountKeeper:   mockAccountKeeper{},
		BankKeeper:      mockBankKeeper{},
		SignModeHandler: txConfig.SignModeHandler(),
	})
	require.NoError(t, err)
	require.NotNil(t, handler)
}

// Mock types for unit tests

type mockAccountKeeper struct{}

func (mockAccountKeeper) GetParams(ctx context.Context) authtypes.Params {
	return authtypes.DefaultParams()
}
func (mockAccountKeeper) GetAccount(ctx context.Context, addr sdk.AccAddress) sdk.AccountI {
	return nil
}
func (mockAccountKeeper) SetAccount(ctx context.Context, acc sdk.AccountI) {}
func (mockAccountKeeper) GetModuleAddress(moduleName string) sdk.AccAddress {
	return authtypes.NewModuleAddress(moduleName)
}
func (mockAccountKeeper) AddressCodec() address.Codec { return nil }

func (mockAccountKeeper) NewAccountWithAddress(ctx context.Context, addr sdk.AccAddress) sdk.AccountI {
	return nil
}
func (mockAccountKeeper) UnorderedTransactionsEnabled() bool                 { return false }
func (mockAccountKeeper) RemoveExpiredUnorderedNonces(ctx sdk.Context) error { return nil }
func (mockAccountKeeper) TryAddUnorderedNonce(ctx sdk.Context, sender []byte, timestamp time.Time) error {
	return nil
}

type mockBankKeeper struct{}

func (mockBankKeeper) IsSendEnabledCoins(ctx context.Context, coins ...sdk.Coin) error {
	return nil
}
func (mockBankKeeper) SendCoins(ctx context.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	return nil
}
func (mockBankKeeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return nil
}

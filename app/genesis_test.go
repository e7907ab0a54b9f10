package app_test

import (
	"encoding/json"
	"testing"
	"time"

	"cosmossdk.io/math"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"
	"github.com/stretchr/testify/require"

	"github.com/silence-labs/silence/app"
	bridgetypes "github.com/silence-labs/silence/x/bridge/types"
)

func TestNewDefaultGenesisState(t *testing.T) {
	genesis := app.NewDefaultGenesisState("silence-testnet")

	for _, module := range []string{"auth", "bank", "staking", "slashing", "gov", "distribution", "mint", "crisis", bridgetypes.ModuleName} {
		require.Contains(t, genesis, module, "genesis missing %s module", module)
	}

	var stakingGenesis stakingtypes.GenesisState
	require.NoError(t, json.Unmarshal(genesis[stakingtypes.ModuleName], &stakingGenesis))
	require.Equal(t, app.BondDenom, stakingGenesis.Params.BondDenom)
	require.Equal(t, uint32(100), stakingGenesis.Params.MaxValidators)

	var bridgeGenesis bridgetypes.GenesisState
	require.NoError(t, json.Unmarshal(genesis[bridgetypes.ModuleName], &bridgeGenesis))
	require.NoError(t, bridgeGenesis.Params.Validate())
	require.Equal(t, uint32(30), bridgeGenesis.Params.ProtocolFeeBps)
	require.True(t, bridgeGenesis.Params.MinSolverStake.Equal(math.NewInt(1_000_000)))
}

func TestNewGenesisStateFromConfig(t *testing.T) {
	config := app.DefaultGenesisConfig()
	config.TotalSupply = 42_000_000_000_000
	config.MaxValidators = 25
	config.UnbondingPeriodSeconds = 3600
	config.BridgeFeeBps = 50
	config.SolverMinStake = 5_000_000

	genesis := app.NewGenesisStateFromConfig(config)

	var bankGenesis banktypes.GenesisState
	require.NoError(t, json.Unmarshal(genesis[banktypes.ModuleName], &bankGenesis))
	require.Equal(t, config.TotalSupply, bankGenesis.Supply.AmountOf(app.BondDenom).Int64())

	var stakingGenesis stakingtypes.GenesisState
	require.NoError(t, json.Unmarshal(genesis[stakingtypes.ModuleName], &stakingGenesis))
	require.Equal(t, uint32(25), stakingGenesis.Params.MaxValidators)
	require.Equal(t, time.Hour, stakingGenesis.Params.UnbondingTime)

	var bridgeGenesis bridgetypes.GenesisState
	require.NoError(t, json.Unmarshal(genesis[bridgetypes.ModuleName], &bridgeGenesis))
	require.Equal(t, uint32(50), bridgeGenesis.Params.ProtocolFeeBps)
	require.True(t, bridgeGenesis.Params.MinSolverStake.Equal(math.NewInt(5_000_000)))
}

func TestDefaultGenesisConfig(t *testing.T) {
	config := app.DefaultGenesisConfig()
	require.Equal(t, "silence-testnet", config.ChainID)
	require.NotZero(t, config.TotalSupply)
	require.NotZero(t, config.MaxValidators)
}

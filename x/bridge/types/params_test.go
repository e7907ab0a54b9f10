package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/silence-labs/silence/x/bridge/types"
)

func TestDefaultParamsAreValid(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.Params)
	}{
		{"bad source chain", func(p *types.Params) { p.SourceChain = types.ChainUnspecified }},
		{"bad denom", func(p *types.Params) { p.EscrowDenom = "" }},
		{"zero min stake", func(p *types.Params) { p.MinSolverStake = math.ZeroInt() }},
		{"fee over maximum", func(p *types.Params) { p.ProtocolFeeBps = types.MaxProtocolFeeBps + 1 }},
		{"bad fee vault", func(p *types.Params) { p.FeeVault = "not-bech32" }},
		{"bad gate", func(p *types.Params) { p.VerificationGate = "not-bech32" }},
		{"zero rate", func(p *types.Params) { p.ExpectedRateBps = 0 }},
		{"zero min source", func(p *types.Params) { p.MinSourceAmount = math.ZeroInt() }},
		{"zero shielded cap", func(p *types.Params) { p.MaxShieldedAmount = math.ZeroInt() }},
		{"zero volume threshold", func(p *types.Params) { p.VolumeThreshold = math.ZeroInt() }},
		{"negative high value threshold", func(p *types.Params) { p.HighValueThreshold = math.NewInt(-1) }},
		{"zero reputation ceiling", func(p *types.Params) { p.ReputationCeiling = 0 }},
		{"zero verification timeout", func(p *types.Params) { p.VerificationTimeoutSeconds = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := types.DefaultParams()
			tc.mutate(&params)
			require.Error(t, params.Validate())
		})
	}
}

func TestHighValueThresholdZeroDisablesGating(t *testing.T) {
	params := types.DefaultParams()
	params.HighValueThreshold = math.ZeroInt()
	require.NoError(t, params.Validate())
}

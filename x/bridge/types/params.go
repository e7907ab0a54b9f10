package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Fee arithmetic constants, shared by the settlement calculator and the
// verification gate contract.
const (
	BpsDenominator    = 10000
	MaxProtocolFeeBps = 1000
)

// Params defines the bridge module parameters.
type Params struct {
	// SourceChain is the chain this module instance settles from.
	SourceChain Chain `json:"source_chain"`
	// EscrowDenom is the denom accepted for intent deposits and solver stakes.
	EscrowDenom string `json:"escrow_denom"`
	// MinSolverStake is the minimum deposit required to register a solver.
	MinSolverStake math.Int `json:"min_solver_stake"`
	// ProtocolFeeBps is the settlement fee in basis points, at most 1000.
	ProtocolFeeBps uint32 `json:"protocol_fee_bps"`
	// FeeVault receives protocol fees on settlement.
	FeeVault string `json:"fee_vault"`
	// VerificationGate is the only account allowed to post verification results.
	VerificationGate string `json:"verification_gate"`
	// ExpectedRateBps is the source-to-destination rate used by amount checks.
	ExpectedRateBps uint64 `json:"expected_rate_bps"`
	// MinSourceAmount is the floor for source amounts in amount checks.
	MinSourceAmount math.Int `json:"min_source_amount"`
	// MaxShieldedAmount bounds the committed amount of a shielded transfer.
	MaxShieldedAmount math.Int `json:"max_shielded_amount"`
	// VolumeThreshold feeds the gate's volume bonus and high-value eligibility.
	VolumeThreshold math.Int `json:"volume_threshold"`
	// HighValueThreshold marks intents that require an eligible solver.
	// Zero disables high-value gating.
	HighValueThreshold math.Int `json:"high_value_threshold"`
	// ReputationCeiling caps the incremental solver reputation score.
	ReputationCeiling uint32 `json:"reputation_ceiling"`
	// VerificationTimeoutSeconds marks pending verifications stale in EndBlock.
	VerificationTimeoutSeconds uint64 `json:"verification_timeout_seconds"`
}

// DefaultParams returns the default bridge parameters
func DefaultParams() Params {
	return Params{
		SourceChain:                ChainSilence,
		EscrowDenom:                "usil",
		MinSolverStake:             math.NewInt(1_000_000),
		ProtocolFeeBps:             30,
		FeeVault:                   "",
		VerificationGate:           "",
		ExpectedRateBps:            BpsDenominator,
		MinSourceAmount:            math.NewInt(1),
		MaxShieldedAmount:          math.NewInt(1_000_000_000_000),
		VolumeThreshold:            math.NewInt(10_000_000_000),
		HighValueThreshold:         math.NewInt(1_000_000_000),
		ReputationCeiling:          1000,
		VerificationTimeoutSeconds: 3600,
	}
}

// Validate performs basic validation of the parameter set
func (p Params) Validate() error {
	if err := p.SourceChain.Validate(); err != nil {
		return ErrInvalidParams.Wrapf("source chain: %s", err)
	}
	if err := sdk.ValidateDenom(p.EscrowDenom); err != nil {
		return ErrInvalidParams.Wrapf("escrow denom: %s", err)
	}
	if p.MinSolverStake.IsNil() || !p.MinSolverStake.IsPositive() {
		return ErrInvalidParams.Wrap("min solver stake must be positive")
	}
	if p.ProtocolFeeBps > MaxProtocolFeeBps {
		return ErrFeeTooHigh.Wrapf("protocol fee %d bps exceeds maximum %d", p.ProtocolFeeBps, MaxProtocolFeeBps)
	}
	if p.FeeVault != "" {
		if _, err := sdk.AccAddressFromBech32(p.FeeVault); err != nil {
			return ErrInvalidParams.Wrapf("fee vault: %s", err)
		}
	}
	if p.VerificationGate != "" {
		if _, err := sdk.AccAddressFromBech32(p.VerificationGate); err != nil {
			return ErrInvalidParams.Wrapf("verification gate: %s", err)
		}
	}
	if p.ExpectedRateBps == 0 {
		return ErrInvalidParams.Wrap("expected rate must be positive")
	}
	if p.MinSourceAmount.IsNil() || !p.MinSourceAmount.IsPositive() {
		return ErrInvalidParams.Wrap("min source amount must be positive")
	}
	if p.MaxShieldedAmount.IsNil() || !p.MaxShieldedAmount.IsPositive() {
		return ErrInvalidParams.Wrap("max shielded amount must be positive")
	}
	if p.VolumeThreshold.IsNil() || !p.VolumeThreshold.IsPositive() {
		return ErrInvalidParams.Wrap("volume threshold must be positive")
	}
	if p.HighValueThreshold.IsNil() || p.HighValueThreshold.IsNegative() {
		return ErrInvalidParams.Wrap("high value threshold must be non-negative")
	}
	if p.ReputationCeiling == 0 {
		return ErrInvalidParams.Wrap("reputation ceiling must be positive")
	}
	if p.VerificationTimeoutSeconds == 0 {
		return ErrInvalidParams.Wrap("verification timeout must be positive")
	}
	return nil
}

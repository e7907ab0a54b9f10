package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// GenesisState defines the bridge module's genesis state.
type GenesisState struct {
	Params               Params                `json:"params"`
	Intents              []Intent              `json:"intents"`
	Solvers              []Solver              `json:"solvers"`
	Escrows              []EscrowRecord        `json:"escrows"`
	PendingVerifications []PendingVerification `json:"pending_verifications"`
	ReputationAudits     []ReputationAudit     `json:"reputation_audits"`
	Stats                BridgeStats           `json:"stats"`
	NextVerificationId   uint64                `json:"next_verification_id"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:               DefaultParams(),
		Intents:              []Intent{},
		Solvers:              []Solver{},
		Escrows:              []EscrowRecord{},
		PendingVerifications: []PendingVerification{},
		ReputationAudits:     []ReputationAudit{},
		Stats: BridgeStats{
			TotalVolume:       math.ZeroInt(),
			TotalProtocolFees: math.ZeroInt(),
		},
		NextVerificationId: 1,
	}
}

// Validate performs basic genesis state validation returning an error upon
// any failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	seenIntents := make(map[uint64]bool)
	for _, intent := range gs.Intents {
		if err := intent.Validate(); err != nil {
			return fmt.Errorf("intent %d: %w", intent.Id, err)
		}
		if seenIntents[intent.Id] {
			return fmt.Errorf("duplicate intent id %d", intent.Id)
		}
		seenIntents[intent.Id] = true
	}

	seenSolvers := make(map[string]bool)
	for _, solver := range gs.Solvers {
		if err := solver.Validate(); err != nil {
			return fmt.Errorf("solver %s: %w", solver.Address, err)
		}
		if seenSolvers[solver.Address] {
			return fmt.Errorf("duplicate solver %s", solver.Address)
		}
		seenSolvers[solver.Address] = true
	}

	for _, escrow := range gs.Escrows {
		if !seenIntents[escrow.IntentId] {
			return fmt.Errorf("escrow references unknown intent %d", escrow.IntentId)
		}
		if escrow.Amount.IsNil() || !escrow.Amount.IsPositive() {
			return fmt.Errorf("escrow for intent %d: amount must be positive", escrow.IntentId)
		}
	}

	maxVerificationID := uint64(0)
	seenVerifications := make(map[uint64]bool)
	for _, pv := range gs.PendingVerifications {
		if pv.Id == 0 {
			return fmt.Errorf("pending verification id must be positive")
		}
		if seenVerifications[pv.Id] {
			return fmt.Errorf("duplicate pending verification id %d", pv.Id)
		}
		seenVerifications[pv.Id] = true
		if pv.Id > maxVerificationID {
			maxVerificationID = pv.Id
		}
	}
	if gs.NextVerificationId == 0 {
		return fmt.Errorf("next verification id must be positive")
	}
	if maxVerificationID >= gs.NextVerificationId {
		return fmt.Errorf("next verification id %d must exceed max pending id %d",
			gs.NextVerificationId, maxVerificationID)
	}

	for _, audit := range gs.ReputationAudits {
		if !seenSolvers[audit.Solver] {
			return fmt.Errorf("reputation audit references unknown solver %s", audit.Solver)
		}
		if audit.Score > 1000 {
			return fmt.Errorf("reputation audit for %s: score %d exceeds 1000", audit.Solver, audit.Score)
		}
	}

	if gs.Stats.TotalVolume.IsNil() || gs.Stats.TotalVolume.IsNegative() {
		return fmt.Errorf("stats total volume must be non-negative")
	}
	if gs.Stats.TotalProtocolFees.IsNil() || gs.Stats.TotalProtocolFees.IsNegative() {
		return fmt.Errorf("stats total protocol fees must be non-negative")
	}

	return nil
}

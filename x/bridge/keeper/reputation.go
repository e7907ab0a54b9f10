package keeper

import (
	"cosmossdk.io/math"

	"github.com/silence-labs/silence/x/bridge/types"
)

// Two reputation signals coexist. The incremental score on the solver
// record moves by +1 per settlement and -5 per failure. The tiered score is
// recomputed from full history by the verification gate on demand and stored
// as a ReputationAudit. They are never reconciled into one number.

const (
	reputationStart       = 100
	reputationSettleBonus = 1
	reputationFailPenalty = 5

	auditScoreMax       = 1000
	auditNeutralRate    = 500
	auditVolumeBonusCap = 100
)

// bumpReputation raises the incremental score by one, saturating at ceiling.
func bumpReputation(solver *types.Solver, ceiling uint32) {
	if solver.ReputationScore < ceiling {
		solver.ReputationScore += reputationSettleBonus
	}
	if solver.ReputationScore > ceiling {
		solver.ReputationScore = ceiling
	}
}

// penalizeReputation lowers the incremental score by five, saturating at zero.
func penalizeReputation(solver *types.Solver) {
	if solver.ReputationScore < reputationFailPenalty {
		solver.ReputationScore = 0
		return
	}
	solver.ReputationScore -= reputationFailPenalty
}

// ComputeReputationScore mirrors the gate's tiered recompute. It is used to
// cross-check gate callbacks before an audit is accepted.
//
// The success rate scales successful/total executions to 0-1000, defaulting
// to 500 with no history. The volume bonus adds up to 100 as lifetime volume
// approaches the threshold. The sum is capped at 1000.
func ComputeReputationScore(
	totalExecuted, successful uint64,
	totalVolume, volumeThreshold math.Int,
) (score uint32, tier uint32, highValueEligible bool, err error) {
	if volumeThreshold.IsNil() || !volumeThreshold.IsPositive() {
		return 0, 0, false, types.ErrInvalidParams.Wrap("volume threshold must be positive")
	}
	if totalVolume.IsNil() || totalVolume.IsNegative() {
		return 0, 0, false, types.ErrValidationFailed.Wrap("total volume must be non-negative")
	}
	if successful > totalExecuted {
		return 0, 0, false, types.ErrValidationFailed.Wrap("successful executions exceed total")
	}

	successRate := uint64(auditNeutralRate)
	if totalExecuted > 0 {
		scaled, err := SafeMulDiv(
			math.NewIntFromUint64(successful),
			math.NewInt(auditScoreMax),
			math.NewIntFromUint64(totalExecuted),
		)
		if err != nil {
			return 0, 0, false, err
		}
		successRate = scaled.Uint64()
	}

	bonus, err := SafeMulDiv(totalVolume, math.NewInt(auditVolumeBonusCap), volumeThreshold)
	if err != nil {
		return 0, 0, false, err
	}
	volumeBonus := uint64(auditVolumeBonusCap)
	if bonus.LT(math.NewInt(auditVolumeBonusCap)) {
		volumeBonus = bonus.Uint64()
	}

	total := successRate + volumeBonus
	if total > auditScoreMax {
		total = auditScoreMax
	}

	tier = TierForScore(uint32(total))
	highValueEligible = tier >= 4 && totalVolume.GTE(volumeThreshold)
	return uint32(total), tier, highValueEligible, nil
}

// TierForScore buckets a 0-1000 score into eligibility tiers 1-5.
func TierForScore(score uint32) uint32 {
	switch {
	case score >= 900:
		return 5
	case score >= 700:
		return 4
	case score >= 500:
		return 3
	case score >= 300:
		return 2
	default:
		return 1
	}
}

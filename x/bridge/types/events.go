package types

// Event types emitted by the bridge module
const (
	EventTypeIntentCreated         = "bridge_intent_created"
	EventTypeIntentMatched         = "bridge_intent_matched"
	EventTypeIntentExecuted        = "bridge_intent_executed"
	EventTypeIntentSettled         = "bridge_intent_settled"
	EventTypeIntentFailed          = "bridge_intent_failed"
	EventTypeSolverRegistered      = "bridge_solver_registered"
	EventTypeSolverDeactivated     = "bridge_solver_deactivated"
	EventTypeEscrowLocked          = "bridge_escrow_locked"
	EventTypeEscrowReleased        = "bridge_escrow_released"
	EventTypeEscrowRefunded        = "bridge_escrow_refunded"
	EventTypeVerificationQueued    = "bridge_verification_queued"
	EventTypeVerificationResolved  = "bridge_verification_resolved"
	EventTypeVerificationRejected  = "bridge_verification_rejected"
	EventTypeVerificationStale     = "bridge_verification_stale"
	EventTypeAmountsVerified       = "bridge_amounts_verified"
	EventTypeReputationAudited     = "bridge_reputation_audited"
	EventTypeProtocolFeeUpdated    = "bridge_protocol_fee_updated"
	EventTypeParamsUpdated         = "bridge_params_updated"
)

// Event attribute keys
const (
	AttributeKeyIntentID          = "intent_id"
	AttributeKeyCreator           = "creator"
	AttributeKeySolver            = "solver"
	AttributeKeySourceChain       = "source_chain"
	AttributeKeyDestinationChain  = "destination_chain"
	AttributeKeyAmount            = "amount"
	AttributeKeyDenom             = "denom"
	AttributeKeyShielded          = "shielded"
	AttributeKeyStatus            = "status"
	AttributeKeyReason            = "reason"
	AttributeKeyDestinationTxHash = "destination_tx_hash"
	AttributeKeyProtocolFee       = "protocol_fee"
	AttributeKeySolverReward      = "solver_reward"
	AttributeKeyFeeVault          = "fee_vault"
	AttributeKeyStake             = "stake"
	AttributeKeySupportedChains   = "supported_chains"
	AttributeKeyVerificationID    = "verification_id"
	AttributeKeyVerificationKind  = "verification_kind"
	AttributeKeyRateValid         = "rate_valid"
	AttributeKeyAmountSufficient  = "amount_sufficient"
	AttributeKeyFee               = "fee"
	AttributeKeyScore             = "score"
	AttributeKeyTier              = "tier"
	AttributeKeyHighValueEligible = "high_value_eligible"
	AttributeKeyFeeBps            = "fee_bps"
	AttributeKeyExpiresAt         = "expires_at"
	AttributeKeyAgeSeconds        = "age_seconds"
)

package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgCreateIntent              = "create_intent"
	TypeMsgRegisterSolver            = "register_solver"
	TypeMsgMatchIntent               = "match_intent"
	TypeMsgExecuteIntent             = "execute_intent"
	TypeMsgSettleIntent              = "settle_intent"
	TypeMsgFailIntent                = "fail_intent"
	TypeMsgRequestAmountVerification = "request_amount_verification"
	TypeMsgRequestReputationAudit    = "request_reputation_audit"
	TypeMsgSubmitAmountVerification  = "submit_amount_verification"
	TypeMsgSubmitPrivacyProof        = "submit_privacy_proof"
	TypeMsgSubmitReputationScore     = "submit_reputation_score"
	TypeMsgSetProtocolFee            = "set_protocol_fee"
	TypeMsgDeactivateSolver          = "deactivate_solver"
	TypeMsgUpdateParams              = "update_params"
)

var (
	_ sdk.Msg = &MsgCreateIntent{}
	_ sdk.Msg = &MsgRegisterSolver{}
	_ sdk.Msg = &MsgMatchIntent{}
	_ sdk.Msg = &MsgExecuteIntent{}
	_ sdk.Msg = &MsgSettleIntent{}
	_ sdk.Msg = &MsgFailIntent{}
	_ sdk.Msg = &MsgRequestAmountVerification{}
	_ sdk.Msg = &MsgRequestReputationAudit{}
	_ sdk.Msg = &MsgSubmitAmountVerification{}
	_ sdk.Msg = &MsgSubmitPrivacyProof{}
	_ sdk.Msg = &MsgSubmitReputationScore{}
	_ sdk.Msg = &MsgSetProtocolFee{}
	_ sdk.Msg = &MsgDeactivateSolver{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// GetSigners implementations assume addresses are valid (checked in ValidateBasic)

// GetSigners returns the expected signers for MsgCreateIntent
func (msg *MsgCreateIntent) GetSigners() []sdk.AccAddress {
	creator, _ := sdk.AccAddressFromBech32(msg.Creator)
	return []sdk.AccAddress{creator}
}

// GetSigners returns the expected signers for MsgRegisterSolver
func (msg *MsgRegisterSolver) GetSigners() []sdk.AccAddress {
	solver, _ := sdk.AccAddressFromBech32(msg.Solver)
	return []sdk.AccAddress{solver}
}

// GetSigners returns the expected signers for MsgMatchIntent
func (msg *MsgMatchIntent) GetSigners() []sdk.AccAddress {
	solver, _ := sdk.AccAddressFromBech32(msg.Solver)
	return []sdk.AccAddress{solver}
}

// GetSigners returns the expected signers for MsgExecuteIntent
func (msg *MsgExecuteIntent) GetSigners() []sdk.AccAddress {
	solver, _ := sdk.AccAddressFromBech32(msg.Solver)
	return []sdk.AccAddress{solver}
}

// GetSigners returns the expected signers for MsgSettleIntent
func (msg *MsgSettleIntent) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{sender}
}

// GetSigners returns the expected signers for MsgFailIntent
func (msg *MsgFailIntent) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{sender}
}

// GetSigners returns the expected signers for MsgRequestAmountVerification
func (msg *MsgRequestAmountVerification) GetSigners() []sdk.AccAddress {
	requester, _ := sdk.AccAddressFromBech32(msg.Requester)
	return []sdk.AccAddress{requester}
}

// GetSigners returns the expected signers for MsgRequestReputationAudit
func (msg *MsgRequestReputationAudit) GetSigners() []sdk.AccAddress {
	requester, _ := sdk.AccAddressFromBech32(msg.Requester)
	return []sdk.AccAddress{requester}
}

// GetSigners returns the expected signers for MsgSubmitAmountVerification
func (msg *MsgSubmitAmountVerification) GetSigners() []sdk.AccAddress {
	gate, _ := sdk.AccAddressFromBech32(msg.Gate)
	return []sdk.AccAddress{gate}
}

// GetSigners returns the expected signers for MsgSubmitPrivacyProof
func (msg *MsgSubmitPrivacyProof) GetSigners() []sdk.AccAddress {
	gate, _ := sdk.AccAddressFromBech32(msg.Gate)
	return []sdk.AccAddress{gate}
}

// GetSigners returns the expected signers for MsgSubmitReputationScore
func (msg *MsgSubmitReputationScore) GetSigners() []sdk.AccAddress {
	gate, _ := sdk.AccAddressFromBech32(msg.Gate)
	return []sdk.AccAddress{gate}
}

// GetSigners returns the expected signers for MsgSetProtocolFee
func (msg *MsgSetProtocolFee) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSigners returns the expected signers for MsgDeactivateSolver
func (msg *MsgDeactivateSolver) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSigners returns the expected signers for MsgUpdateParams
func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs stateless validation of MsgCreateIntent
func (msg *MsgCreateIntent) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return ErrInvalidAddress.Wrapf("creator: %s", err)
	}
	if msg.IntentId == 0 {
		return ErrInvalidIntent.Wrap("intent id must be positive")
	}
	if err := msg.DestinationChain.Validate(); err != nil {
		return err
	}
	if msg.SourceAmount.IsNil() || !msg.SourceAmount.IsPositive() {
		return ErrZeroDeposit
	}
	if msg.TtlSeconds == 0 {
		return ErrInvalidTimeout
	}
	if msg.IsShielded && len(msg.AmountCommitment) == 0 {
		return ErrInvalidIntent.Wrap("shielded intent requires an amount commitment")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgRegisterSolver
func (msg *MsgRegisterSolver) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Solver); err != nil {
		return ErrInvalidAddress.Wrapf("solver: %s", err)
	}
	if len(msg.SupportedChains) == 0 {
		return ErrNoSupportedChains
	}
	for _, c := range msg.SupportedChains {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	if msg.Stake.IsNil() || !msg.Stake.IsPositive() {
		return ErrInsufficientStake.Wrap("stake must be positive")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgMatchIntent
func (msg *MsgMatchIntent) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Solver); err != nil {
		return ErrInvalidAddress.Wrapf("solver: %s", err)
	}
	if msg.IntentId == 0 {
		return ErrInvalidIntent.Wrap("intent id must be positive")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgExecuteIntent
func (msg *MsgExecuteIntent) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Solver); err != nil {
		return ErrInvalidAddress.Wrapf("solver: %s", err)
	}
	if msg.IntentId == 0 {
		return ErrInvalidIntent.Wrap("intent id must be positive")
	}
	if msg.DestinationTxHash == "" {
		return ErrValidationFailed.Wrap("destination tx hash must be set")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgSettleIntent
func (msg *MsgSettleIntent) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidAddress.Wrapf("sender: %s", err)
	}
	if msg.IntentId == 0 {
		return ErrInvalidIntent.Wrap("intent id must be positive")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgFailIntent
func (msg *MsgFailIntent) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidAddress.Wrapf("sender: %s", err)
	}
	if msg.IntentId == 0 {
		return ErrInvalidIntent.Wrap("intent id must be positive")
	}
	if msg.Reason == "" {
		return ErrValidationFailed.Wrap("failure reason must be set")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgRequestAmountVerification
func (msg *MsgRequestAmountVerification) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Requester); err != nil {
		return ErrInvalidAddress.Wrapf("requester: %s", err)
	}
	if msg.IntentId == 0 {
		return ErrInvalidIntent.Wrap("intent id must be positive")
	}
	if msg.DestinationAmount.IsNil() || msg.DestinationAmount.IsNegative() {
		return ErrValidationFailed.Wrap("destination amount must be non-negative")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgRequestReputationAudit
func (msg *MsgRequestReputationAudit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Requester); err != nil {
		return ErrInvalidAddress.Wrapf("requester: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Solver); err != nil {
		return ErrInvalidAddress.Wrapf("solver: %s", err)
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgSubmitAmountVerification
func (msg *MsgSubmitAmountVerification) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Gate); err != nil {
		return ErrInvalidAddress.Wrapf("gate: %s", err)
	}
	if msg.VerificationId == 0 {
		return ErrVerificationNotFound.Wrap("verification id must be positive")
	}
	if !msg.Aborted && (msg.Fee.IsNil() || msg.Fee.IsNegative()) {
		return ErrValidationFailed.Wrap("fee must be non-negative")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgSubmitPrivacyProof
func (msg *MsgSubmitPrivacyProof) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Gate); err != nil {
		return ErrInvalidAddress.Wrapf("gate: %s", err)
	}
	if msg.VerificationId == 0 {
		return ErrVerificationNotFound.Wrap("verification id must be positive")
	}
	if !msg.Aborted && msg.RangeValid && len(msg.Commitment) == 0 {
		return ErrValidationFailed.Wrap("valid proof result requires a commitment")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgSubmitReputationScore
func (msg *MsgSubmitReputationScore) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Gate); err != nil {
		return ErrInvalidAddress.Wrapf("gate: %s", err)
	}
	if msg.VerificationId == 0 {
		return ErrVerificationNotFound.Wrap("verification id must be positive")
	}
	if !msg.Aborted {
		if msg.Score > 1000 {
			return ErrValidationFailed.Wrapf("score %d exceeds maximum 1000", msg.Score)
		}
		if msg.Tier < 1 || msg.Tier > 5 {
			return ErrValidationFailed.Wrapf("tier %d outside range 1-5", msg.Tier)
		}
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgSetProtocolFee
func (msg *MsgSetProtocolFee) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %s", err)
	}
	if msg.FeeBps > MaxProtocolFeeBps {
		return ErrFeeTooHigh.Wrapf("fee %d bps exceeds maximum %d", msg.FeeBps, MaxProtocolFeeBps)
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgDeactivateSolver
func (msg *MsgDeactivateSolver) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Solver); err != nil {
		return ErrInvalidAddress.Wrapf("solver: %s", err)
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgUpdateParams
func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %s", err)
	}
	return msg.Params.Validate()
}

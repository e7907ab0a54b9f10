package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/silence-labs/silence/x/bridge/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the bridge MsgServer
// interface for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreateIntent handles MsgCreateIntent
func (m msgServer) CreateIntent(ctx context.Context, msg *types.MsgCreateIntent) (*types.MsgCreateIntentResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("creator: %s", err)
	}

	_, err = m.Keeper.CreateIntent(
		ctx, creator, msg.IntentId, msg.DestinationChain, msg.SourceAmount,
		msg.DestinationTokenId, msg.AmountCommitment, msg.RecipientHash,
		msg.IsShielded, msg.TtlSeconds,
	)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreateIntentResponse{}, nil
}

// RegisterSolver handles MsgRegisterSolver
func (m msgServer) RegisterSolver(ctx context.Context, msg *types.MsgRegisterSolver) (*types.MsgRegisterSolverResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	solver, err := sdk.AccAddressFromBech32(msg.Solver)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("solver: %s", err)
	}

	if _, err := m.Keeper.RegisterSolver(ctx, solver, types.NewChainSet(msg.SupportedChains...), msg.Stake); err != nil {
		return nil, err
	}
	return &types.MsgRegisterSolverResponse{}, nil
}

// MatchIntent handles MsgMatchIntent
func (m msgServer) MatchIntent(ctx context.Context, msg *types.MsgMatchIntent) (*types.MsgMatchIntentResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	solver, err := sdk.AccAddressFromBech32(msg.Solver)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("solver: %s", err)
	}

	if err := m.Keeper.MatchIntent(ctx, solver, msg.IntentId); err != nil {
		return nil, err
	}
	return &types.MsgMatchIntentResponse{}, nil
}

// ExecuteIntent handles MsgExecuteIntent
func (m msgServer) ExecuteIntent(ctx context.Context, msg *types.MsgExecuteIntent) (*types.MsgExecuteIntentResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	solver, err := sdk.AccAddressFromBech32(msg.Solver)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("solver: %s", err)
	}

	verificationID, err := m.Keeper.ExecuteIntent(ctx, solver, msg.IntentId, msg.DestinationTxHash, msg.PrivacyProof)
	if err != nil {
		return nil, err
	}
	return &types.MsgExecuteIntentResponse{VerificationId: verificationID}, nil
}

// SettleIntent handles MsgSettleIntent
func (m msgServer) SettleIntent(ctx context.Context, msg *types.MsgSettleIntent) (*types.MsgSettleIntentResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	verificationID, err := m.Keeper.SettleIntent(ctx, msg.IntentId)
	if err != nil {
		return nil, err
	}
	return &types.MsgSettleIntentResponse{VerificationId: verificationID}, nil
}

// FailIntent handles MsgFailIntent
func (m msgServer) FailIntent(ctx context.Context, msg *types.MsgFailIntent) (*types.MsgFailIntentResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("sender: %s", err)
	}

	if err := m.Keeper.FailIntent(ctx, sender, msg.IntentId, msg.Reason); err != nil {
		return nil, err
	}
	return &types.MsgFailIntentResponse{}, nil
}

// RequestAmountVerification handles MsgRequestAmountVerification
func (m msgServer) RequestAmountVerification(ctx context.Context, msg *types.MsgRequestAmountVerification) (*types.MsgRequestAmountVerificationResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	requester, err := sdk.AccAddressFromBech32(msg.Requester)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("requester: %s", err)
	}

	verificationID, err := m.Keeper.RequestAmountVerification(ctx, requester, msg.IntentId, msg.DestinationAmount)
	if err != nil {
		return nil, err
	}
	return &types.MsgRequestAmountVerificationResponse{VerificationId: verificationID}, nil
}

// RequestReputationAudit handles MsgRequestReputationAudit
func (m msgServer) RequestReputationAudit(ctx context.Context, msg *types.MsgRequestReputationAudit) (*types.MsgRequestReputationAuditResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	requester, err := sdk.AccAddressFromBech32(msg.Requester)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("requester: %s", err)
	}

	verificationID, err := m.Keeper.RequestReputationAudit(ctx, requester, msg.Solver)
	if err != nil {
		return nil, err
	}
	return &types.MsgRequestReputationAuditResponse{VerificationId: verificationID}, nil
}

// SubmitAmountVerification handles the gate callback MsgSubmitAmountVerification
func (m msgServer) SubmitAmountVerification(ctx context.Context, msg *types.MsgSubmitAmountVerification) (*types.MsgSubmitAmountVerificationResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	gate, err := sdk.AccAddressFromBech32(msg.Gate)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("gate: %s", err)
	}

	if err := m.Keeper.SubmitAmountVerification(ctx, gate, msg); err != nil {
		return nil, err
	}
	return &types.MsgSubmitAmountVerificationResponse{}, nil
}

// SubmitPrivacyProof handles the gate callback MsgSubmitPrivacyProof
func (m msgServer) SubmitPrivacyProof(ctx context.Context, msg *types.MsgSubmitPrivacyProof) (*types.MsgSubmitPrivacyProofResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	gate, err := sdk.AccAddressFromBech32(msg.Gate)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("gate: %s", err)
	}

	if err := m.Keeper.SubmitPrivacyProof(ctx, gate, msg); err != nil {
		return nil, err
	}
	return &types.MsgSubmitPrivacyProofResponse{}, nil
}

// SubmitReputationScore handles the gate callback MsgSubmitReputationScore
func (m msgServer) SubmitReputationScore(ctx context.Context, msg *types.MsgSubmitReputationScore) (*types.MsgSubmitReputationScoreResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	gate, err := sdk.AccAddressFromBech32(msg.Gate)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("gate: %s", err)
	}

	if err := m.Keeper.SubmitReputationScore(ctx, gate, msg); err != nil {
		return nil, err
	}
	return &types.MsgSubmitReputationScoreResponse{}, nil
}

// SetProtocolFee handles MsgSetProtocolFee
func (m msgServer) SetProtocolFee(ctx context.Context, msg *types.MsgSetProtocolFee) (*types.MsgSetProtocolFeeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if msg.Authority != m.GetAuthority() {
		return nil, types.ErrUnauthorized.Wrapf(
			"expected %s, got %s", m.GetAuthority(), msg.Authority)
	}

	if err := m.Keeper.SetProtocolFee(ctx, msg.FeeBps); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeProtocolFeeUpdated,
		sdk.NewAttribute(types.AttributeKeyFeeBps, formatUint(uint64(msg.FeeBps))),
	))
	return &types.MsgSetProtocolFeeResponse{}, nil
}

// DeactivateSolver handles MsgDeactivateSolver
func (m msgServer) DeactivateSolver(ctx context.Context, msg *types.MsgDeactivateSolver) (*types.MsgDeactivateSolverResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if msg.Authority != m.GetAuthority() {
		return nil, types.ErrUnauthorized.Wrapf(
			"expected %s, got %s", m.GetAuthority(), msg.Authority)
	}

	if err := m.Keeper.DeactivateSolver(ctx, msg.Solver); err != nil {
		return nil, err
	}
	return &types.MsgDeactivateSolverResponse{}, nil
}

// UpdateParams handles MsgUpdateParams
func (m msgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if msg.Authority != m.GetAuthority() {
		return nil, types.ErrUnauthorized.Wrapf(
			"expected %s, got %s", m.GetAuthority(), msg.Authority)
	}

	if err := m.Keeper.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeParamsUpdated))
	return &types.MsgUpdateParamsResponse{}, nil
}

package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
)

// RegisterLegacyAminoCodec registers the necessary x/bridge interfaces and
// concrete types on the provided LegacyAmino codec. These types are used for
// Amino JSON serialization.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreateIntent{}, "silence/bridge/MsgCreateIntent", nil)
	cdc.RegisterConcrete(&MsgRegisterSolver{}, "silence/bridge/MsgRegisterSolver", nil)
	cdc.RegisterConcrete(&MsgMatchIntent{}, "silence/bridge/MsgMatchIntent", nil)
	cdc.RegisterConcrete(&MsgExecuteIntent{}, "silence/bridge/MsgExecuteIntent", nil)
	cdc.RegisterConcrete(&MsgSettleIntent{}, "silence/bridge/MsgSettleIntent", nil)
	cdc.RegisterConcrete(&MsgFailIntent{}, "silence/bridge/MsgFailIntent", nil)
	cdc.RegisterConcrete(&MsgRequestAmountVerification{}, "silence/bridge/MsgRequestAmountVerification", nil)
	cdc.RegisterConcrete(&MsgRequestReputationAudit{}, "silence/bridge/MsgRequestReputationAudit", nil)
	cdc.RegisterConcrete(&MsgSubmitAmountVerification{}, "silence/bridge/MsgSubmitAmountVerification", nil)
	cdc.RegisterConcrete(&MsgSubmitPrivacyProof{}, "silence/bridge/MsgSubmitPrivacyProof", nil)
	cdc.RegisterConcrete(&MsgSubmitReputationScore{}, "silence/bridge/MsgSubmitReputationScore", nil)
	cdc.RegisterConcrete(&MsgSetProtocolFee{}, "silence/bridge/MsgSetProtocolFee", nil)
	cdc.RegisterConcrete(&MsgDeactivateSolver{}, "silence/bridge/MsgDeactivateSolver", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "silence/bridge/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the x/bridge interface types with the
// interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreateIntent{},
		&MsgRegisterSolver{},
		&MsgMatchIntent{},
		&MsgExecuteIntent{},
		&MsgSettleIntent{},
		&MsgFailIntent{},
		&MsgRequestAmountVerification{},
		&MsgRequestReputationAudit{},
		&MsgSubmitAmountVerification{},
		&MsgSubmitPrivacyProof{},
		&MsgSubmitReputationScore{},
		&MsgSetProtocolFee{},
		&MsgDeactivateSolver{},
		&MsgUpdateParams{},
	)

	registry.RegisterImplementations((*txtypes.MsgResponse)(nil),
		&MsgCreateIntentResponse{},
		&MsgRegisterSolverResponse{},
		&MsgMatchIntentResponse{},
		&MsgExecuteIntentResponse{},
		&MsgSettleIntentResponse{},
		&MsgFailIntentResponse{},
		&MsgRequestAmountVerificationResponse{},
		&MsgRequestReputationAuditResponse{},
		&MsgSubmitAmountVerificationResponse{},
		&MsgSubmitPrivacyProofResponse{},
		&MsgSubmitReputationScoreResponse{},
		&MsgSetProtocolFeeResponse{},
		&MsgDeactivateSolverResponse{},
		&MsgUpdateParamsResponse{},
	)
}

var (
	amino = codec.NewLegacyAmino()
)

func init() {
	RegisterLegacyAminoCodec(amino)
}

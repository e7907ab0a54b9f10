package types

import (
	context "context"

	"cosmossdk.io/math"
	"github.com/cosmos/gogoproto/proto"
	grpc "google.golang.org/grpc"
)

// MsgCreateIntent locks source_amount in escrow and opens an intent.
// The intent id is chosen by the creator and must be unused.
type MsgCreateIntent struct {
	Creator            string   `json:"creator"`
	IntentId           uint64   `json:"intent_id"`
	DestinationChain   Chain    `json:"destination_chain"`
	SourceAmount       math.Int `json:"source_amount"`
	DestinationTokenId string   `json:"destination_token_id,omitempty"`
	AmountCommitment   []byte   `json:"amount_commitment,omitempty"`
	RecipientHash      []byte   `json:"recipient_hash,omitempty"`
	IsShielded         bool     `json:"is_shielded"`
	TtlSeconds         uint64   `json:"ttl_seconds"`
}

type MsgCreateIntentResponse struct{}

// MsgRegisterSolver bonds stake and registers the signer as a solver.
type MsgRegisterSolver struct {
	Solver          string   `json:"solver"`
	SupportedChains []Chain  `json:"supported_chains"`
	Stake           math.Int `json:"stake"`
}

type MsgRegisterSolverResponse struct{}

// MsgMatchIntent binds the signing solver to an open intent.
type MsgMatchIntent struct {
	Solver   string `json:"solver"`
	IntentId uint64 `json:"intent_id"`
}

type MsgMatchIntentResponse struct{}

// MsgExecuteIntent reports destination-side execution by the bound solver.
// Shielded intents enter the executing sub-state until the gate confirms
// the privacy proof.
type MsgExecuteIntent struct {
	Solver            string `json:"solver"`
	IntentId          uint64 `json:"intent_id"`
	DestinationTxHash string `json:"destination_tx_hash"`
	PrivacyProof      []byte `json:"privacy_proof,omitempty"`
}

type MsgExecuteIntentResponse struct {
	// VerificationId is set when the intent entered a gate-waiting sub-state.
	VerificationId uint64 `json:"verification_id,omitempty"`
}

// MsgSettleIntent pays the solver and the fee vault from escrow.
type MsgSettleIntent struct {
	Sender   string `json:"sender"`
	IntentId uint64 `json:"intent_id"`
}

type MsgSettleIntentResponse struct {
	VerificationId uint64 `json:"verification_id,omitempty"`
}

// MsgFailIntent aborts an intent, refunding the creator.
type MsgFailIntent struct {
	Sender   string `json:"sender"`
	IntentId uint64 `json:"intent_id"`
	Reason   string `json:"reason"`
}

type MsgFailIntentResponse struct{}

// MsgRequestAmountVerification queues a standalone amount check with the gate.
type MsgRequestAmountVerification struct {
	Requester         string   `json:"requester"`
	IntentId          uint64   `json:"intent_id"`
	DestinationAmount math.Int `json:"destination_amount"`
}

type MsgRequestAmountVerificationResponse struct {
	VerificationId uint64 `json:"verification_id"`
}

// MsgRequestReputationAudit queues a gate recompute of a solver's reputation.
type MsgRequestReputationAudit struct {
	Requester string `json:"requester"`
	Solver    string `json:"solver"`
}

type MsgRequestReputationAuditResponse struct {
	VerificationId uint64 `json:"verification_id"`
}

// MsgSubmitAmountVerification is the gate callback for an amount check.
type MsgSubmitAmountVerification struct {
	Gate             string   `json:"gate"`
	VerificationId   uint64   `json:"verification_id"`
	RateValid        bool     `json:"rate_valid"`
	AmountSufficient bool     `json:"amount_sufficient"`
	Fee              math.Int `json:"fee"`
	Aborted          bool     `json:"aborted,omitempty"`
}

type MsgSubmitAmountVerificationResponse struct{}

// MsgSubmitPrivacyProof is the gate callback for a privacy proof request.
type MsgSubmitPrivacyProof struct {
	Gate           string `json:"gate"`
	VerificationId uint64 `json:"verification_id"`
	Commitment     []byte `json:"commitment,omitempty"`
	RangeValid     bool   `json:"range_valid"`
	Aborted        bool   `json:"aborted,omitempty"`
}

type MsgSubmitPrivacyProofResponse struct{}

// MsgSubmitReputationScore is the gate callback for a reputation audit.
type MsgSubmitReputationScore struct {
	Gate              string `json:"gate"`
	VerificationId    uint64 `json:"verification_id"`
	Score             uint32 `json:"score"`
	Tier              uint32 `json:"tier"`
	HighValueEligible bool   `json:"high_value_eligible"`
	Aborted           bool   `json:"aborted,omitempty"`
}

type MsgSubmitReputationScoreResponse struct{}

// MsgSetProtocolFee updates the settlement fee, authority only.
type MsgSetProtocolFee struct {
	Authority string `json:"authority"`
	FeeBps    uint32 `json:"fee_bps"`
}

type MsgSetProtocolFeeResponse struct{}

// MsgDeactivateSolver removes a solver from matching, authority only.
type MsgDeactivateSolver struct {
	Authority string `json:"authority"`
	Solver    string `json:"solver"`
}

type MsgDeactivateSolverResponse struct{}

// MsgUpdateParams replaces the module parameters, authority only.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

func (m *MsgCreateIntent) Reset()         { *m = MsgCreateIntent{} }
func (m *MsgCreateIntent) String() string { return proto.CompactTextString(m) }
func (*MsgCreateIntent) ProtoMessage()    {}

func (m *MsgCreateIntentResponse) Reset()         { *m = MsgCreateIntentResponse{} }
func (m *MsgCreateIntentResponse) String() string { return proto.CompactTextString(m) }
func (*MsgCreateIntentResponse) ProtoMessage()    {}

func (m *MsgRegisterSolver) Reset()         { *m = MsgRegisterSolver{} }
func (m *MsgRegisterSolver) String() string { return proto.CompactTextString(m) }
func (*MsgRegisterSolver) ProtoMessage()    {}

func (m *MsgRegisterSolverResponse) Reset()         { *m = MsgRegisterSolverResponse{} }
func (m *MsgRegisterSolverResponse) String() string { return proto.CompactTextString(m) }
func (*MsgRegisterSolverResponse) ProtoMessage()    {}

func (m *MsgMatchIntent) Reset()         { *m = MsgMatchIntent{} }
func (m *MsgMatchIntent) String() string { return proto.CompactTextString(m) }
func (*MsgMatchIntent) ProtoMessage()    {}

func (m *MsgMatchIntentResponse) Reset()         { *m = MsgMatchIntentResponse{} }
func (m *MsgMatchIntentResponse) String() string { return proto.CompactTextString(m) }
func (*MsgMatchIntentResponse) ProtoMessage()    {}

func (m *MsgExecuteIntent) Reset()         { *m = MsgExecuteIntent{} }
func (m *MsgExecuteIntent) String() string { return proto.CompactTextString(m) }
func (*MsgExecuteIntent) ProtoMessage()    {}

func (m *MsgExecuteIntentResponse) Reset()         { *m = MsgExecuteIntentResponse{} }
func (m *MsgExecuteIntentResponse) String() string { return proto.CompactTextString(m) }
func (*MsgExecuteIntentResponse) ProtoMessage()    {}

func (m *MsgSettleIntent) Reset()         { *m = MsgSettleIntent{} }
func (m *MsgSettleIntent) String() string { return proto.CompactTextString(m) }
func (*MsgSettleIntent) ProtoMessage()    {}

func (m *MsgSettleIntentResponse) Reset()         { *m = MsgSettleIntentResponse{} }
func (m *MsgSettleIntentResponse) String() string { return proto.CompactTextString(m) }
func (*MsgSettleIntentResponse) ProtoMessage()    {}

func (m *MsgFailIntent) Reset()         { *m = MsgFailIntent{} }
func (m *MsgFailIntent) String() string { return proto.CompactTextString(m) }
func (*MsgFailIntent) ProtoMessage()    {}

func (m *MsgFailIntentResponse) Reset()         { *m = MsgFailIntentResponse{} }
func (m *MsgFailIntentResponse) String() string { return proto.CompactTextString(m) }
func (*MsgFailIntentResponse) ProtoMessage()    {}

func (m *MsgRequestAmountVerification) Reset()         { *m = MsgRequestAmountVerification{} }
func (m *MsgRequestAmountVerification) String() string { return proto.CompactTextString(m) }
func (*MsgRequestAmountVerification) ProtoMessage()    {}

func (m *MsgRequestAmountVerificationResponse) Reset() {
	*m = MsgRequestAmountVerificationResponse{}
}
func (m *MsgRequestAmountVerificationResponse) String() string { return proto.CompactTextString(m) }
func (*MsgRequestAmountVerificationResponse) ProtoMessage()    {}

func (m *MsgRequestReputationAudit) Reset()         { *m = MsgRequestReputationAudit{} }
func (m *MsgRequestReputationAudit) String() string { return proto.CompactTextString(m) }
func (*MsgRequestReputationAudit) ProtoMessage()    {}

func (m *MsgRequestReputationAuditResponse) Reset()         { *m = MsgRequestReputationAuditResponse{} }
func (m *MsgRequestReputationAuditResponse) String() string { return proto.CompactTextString(m) }
func (*MsgRequestReputationAuditResponse) ProtoMessage()    {}

func (m *MsgSubmitAmountVerification) Reset()         { *m = MsgSubmitAmountVerification{} }
func (m *MsgSubmitAmountVerification) String() string { return proto.CompactTextString(m) }
func (*MsgSubmitAmountVerification) ProtoMessage()    {}

func (m *MsgSubmitAmountVerificationResponse) Reset()         { *m = MsgSubmitAmountVerificationResponse{} }
func (m *MsgSubmitAmountVerificationResponse) String() string { return proto.CompactTextString(m) }
func (*MsgSubmitAmountVerificationResponse) ProtoMessage()    {}

func (m *MsgSubmitPrivacyProof) Reset()         { *m = MsgSubmitPrivacyProof{} }
func (m *MsgSubmitPrivacyProof) String() string { return proto.CompactTextString(m) }
func (*MsgSubmitPrivacyProof) ProtoMessage()    {}

func (m *MsgSubmitPrivacyProofResponse) Reset()         { *m = MsgSubmitPrivacyProofResponse{} }
func (m *MsgSubmitPrivacyProofResponse) String() string { return proto.CompactTextString(m) }
func (*MsgSubmitPrivacyProofResponse) ProtoMessage()    {}

func (m *MsgSubmitReputationScore) Reset()         { *m = MsgSubmitReputationScore{} }
func (m *MsgSubmitReputationScore) String() string { return proto.CompactTextString(m) }
func (*MsgSubmitReputationScore) ProtoMessage()    {}

func (m *MsgSubmitReputationScoreResponse) Reset()         { *m = MsgSubmitReputationScoreResponse{} }
func (m *MsgSubmitReputationScoreResponse) String() string { return proto.CompactTextString(m) }
func (*MsgSubmitReputationScoreResponse) ProtoMessage()    {}

func (m *MsgSetProtocolFee) Reset()         { *m = MsgSetProtocolFee{} }
func (m *MsgSetProtocolFee) String() string { return proto.CompactTextString(m) }
func (*MsgSetProtocolFee) ProtoMessage()    {}

func (m *MsgSetProtocolFeeResponse) Reset()         { *m = MsgSetProtocolFeeResponse{} }
func (m *MsgSetProtocolFeeResponse) String() string { return proto.CompactTextString(m) }
func (*MsgSetProtocolFeeResponse) ProtoMessage()    {}

func (m *MsgDeactivateSolver) Reset()         { *m = MsgDeactivateSolver{} }
func (m *MsgDeactivateSolver) String() string { return proto.CompactTextString(m) }
func (*MsgDeactivateSolver) ProtoMessage()    {}

func (m *MsgDeactivateSolverResponse) Reset()         { *m = MsgDeactivateSolverResponse{} }
func (m *MsgDeactivateSolverResponse) String() string { return proto.CompactTextString(m) }
func (*MsgDeactivateSolverResponse) ProtoMessage()    {}

func (m *MsgUpdateParams) Reset()         { *m = MsgUpdateParams{} }
func (m *MsgUpdateParams) String() string { return proto.CompactTextString(m) }
func (*MsgUpdateParams) ProtoMessage()    {}

func (m *MsgUpdateParamsResponse) Reset()         { *m = MsgUpdateParamsResponse{} }
func (m *MsgUpdateParamsResponse) String() string { return proto.CompactTextString(m) }
func (*MsgUpdateParamsResponse) ProtoMessage()    {}

func init() {
	proto.RegisterType((*MsgCreateIntent)(nil), "silence.bridge.v1.MsgCreateIntent")
	proto.RegisterType((*MsgCreateIntentResponse)(nil), "silence.bridge.v1.MsgCreateIntentResponse")
	proto.RegisterType((*MsgRegisterSolver)(nil), "silence.bridge.v1.MsgRegisterSolver")
	proto.RegisterType((*MsgRegisterSolverResponse)(nil), "silence.bridge.v1.MsgRegisterSolverResponse")
	proto.RegisterType((*MsgMatchIntent)(nil), "silence.bridge.v1.MsgMatchIntent")
	proto.RegisterType((*MsgMatchIntentResponse)(nil), "silence.bridge.v1.MsgMatchIntentResponse")
	proto.RegisterType((*MsgExecuteIntent)(nil), "silence.bridge.v1.MsgExecuteIntent")
	proto.RegisterType((*MsgExecuteIntentResponse)(nil), "silence.bridge.v1.MsgExecuteIntentResponse")
	proto.RegisterType((*MsgSettleIntent)(nil), "silence.bridge.v1.MsgSettleIntent")
	proto.RegisterType((*MsgSettleIntentResponse)(nil), "silence.bridge.v1.MsgSettleIntentResponse")
	proto.RegisterType((*MsgFailIntent)(nil), "silence.bridge.v1.MsgFailIntent")
	proto.RegisterType((*MsgFailIntentResponse)(nil), "silence.bridge.v1.MsgFailIntentResponse")
	proto.RegisterType((*MsgRequestAmountVerification)(nil), "silence.bridge.v1.MsgRequestAmountVerification")
	proto.RegisterType((*MsgRequestAmountVerificationResponse)(nil), "silence.bridge.v1.MsgRequestAmountVerificationResponse")
	proto.RegisterType((*MsgRequestReputationAudit)(nil), "silence.bridge.v1.MsgRequestReputationAudit")
	proto.RegisterType((*MsgRequestReputationAuditResponse)(nil), "silence.bridge.v1.MsgRequestReputationAuditResponse")
	proto.RegisterType((*MsgSubmitAmountVerification)(nil), "silence.bridge.v1.MsgSubmitAmountVerification")
	proto.RegisterType((*MsgSubmitAmountVerificationResponse)(nil), "silence.bridge.v1.MsgSubmitAmountVerificationResponse")
	proto.RegisterType((*MsgSubmitPrivacyProof)(nil), "silence.bridge.v1.MsgSubmitPrivacyProof")
	proto.RegisterType((*MsgSubmitPrivacyProofResponse)(nil), "silence.bridge.v1.MsgSubmitPrivacyProofResponse")
	proto.RegisterType((*MsgSubmitReputationScore)(nil), "silence.bridge.v1.MsgSubmitReputationScore")
	proto.RegisterType((*MsgSubmitReputationScoreResponse)(nil), "silence.bridge.v1.MsgSubmitReputationScoreResponse")
	proto.RegisterType((*MsgSetProtocolFee)(nil), "silence.bridge.v1.MsgSetProtocolFee")
	proto.RegisterType((*MsgSetProtocolFeeResponse)(nil), "silence.bridge.v1.MsgSetProtocolFeeResponse")
	proto.RegisterType((*MsgDeactivateSolver)(nil), "silence.bridge.v1.MsgDeactivateSolver")
	proto.RegisterType((*MsgDeactivateSolverResponse)(nil), "silence.bridge.v1.MsgDeactivateSolverResponse")
	proto.RegisterType((*MsgUpdateParams)(nil), "silence.bridge.v1.MsgUpdateParams")
	proto.RegisterType((*MsgUpdateParamsResponse)(nil), "silence.bridge.v1.MsgUpdateParamsResponse")
}

// MsgServer is the server API for the bridge Msg service.
type MsgServer interface {
	CreateIntent(context.Context, *MsgCreateIntent) (*MsgCreateIntentResponse, error)
	RegisterSolver(context.Context, *MsgRegisterSolver) (*MsgRegisterSolverResponse, error)
	MatchIntent(context.Context, *MsgMatchIntent) (*MsgMatchIntentResponse, error)
	ExecuteIntent(context.Context, *MsgExecuteIntent) (*MsgExecuteIntentResponse, error)
	SettleIntent(context.Context, *MsgSettleIntent) (*MsgSettleIntentResponse, error)
	FailIntent(context.Context, *MsgFailIntent) (*MsgFailIntentResponse, error)
	RequestAmountVerification(context.Context, *MsgRequestAmountVerification) (*MsgRequestAmountVerificationResponse, error)
	RequestReputationAudit(context.Context, *MsgRequestReputationAudit) (*MsgRequestReputationAuditResponse, error)
	SubmitAmountVerification(context.Context, *MsgSubmitAmountVerification) (*MsgSubmitAmountVerificationResponse, error)
	SubmitPrivacyProof(context.Context, *MsgSubmitPrivacyProof) (*MsgSubmitPrivacyProofResponse, error)
	SubmitReputationScore(context.Context, *MsgSubmitReputationScore) (*MsgSubmitReputationScoreResponse, error)
	SetProtocolFee(context.Context, *MsgSetProtocolFee) (*MsgSetProtocolFeeResponse, error)
	DeactivateSolver(context.Context, *MsgDeactivateSolver) (*MsgDeactivateSolverResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

type msgServiceRegistrar interface {
	RegisterService(sd *grpc.ServiceDesc, srv interface{})
}

// RegisterMsgServer registers the Msg service implementation with the
// module configurator.
func RegisterMsgServer(s msgServiceRegistrar, srv MsgServer) {
	s.RegisterService(&_Msg_serviceDesc, srv)
}

func msgHandler[Req any](
	fullMethod string,
	call func(MsgServer, context.Context, *Req) (interface{}, error),
) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(MsgServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(MsgServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var _Msg_serviceDesc = grpc.ServiceDesc{
	ServiceName: "silence.bridge.v1.Msg",
	HandlerType: (*MsgServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateIntent",
			Handler: msgHandler("/silence.bridge.v1.Msg/CreateIntent",
				func(s MsgServer, ctx context.Context, in *MsgCreateIntent) (interface{}, error) {
					return s.CreateIntent(ctx, in)
				}),
		},
		{
			MethodName: "RegisterSolver",
			Handler: msgHandler("/silence.bridge.v1.Msg/RegisterSolver",
				func(s MsgServer, ctx context.Context, in *MsgRegisterSolver) (interface{}, error) {
					return s.RegisterSolver(ctx, in)
				}),
		},
		{
			MethodName: "MatchIntent",
			Handler: msgHandler("/silence.bridge.v1.Msg/MatchIntent",
				func(s MsgServer, ctx context.Context, in *MsgMatchIntent) (interface{}, error) {
					return s.MatchIntent(ctx, in)
				}),
		},
		{
			MethodName: "ExecuteIntent",
			Handler: msgHandler("/silence.bridge.v1.Msg/ExecuteIntent",
				func(s MsgServer, ctx context.Context, in *MsgExecuteIntent) (interface{}, error) {
					return s.ExecuteIntent(ctx, in)
				}),
		},
		{
			MethodName: "SettleIntent",
			Handler: msgHandler("/silence.bridge.v1.Msg/SettleIntent",
				func(s MsgServer, ctx context.Context, in *MsgSettleIntent) (interface{}, error) {
					return s.SettleIntent(ctx, in)
				}),
		},
		{
			MethodName: "FailIntent",
			Handler: msgHandler("/silence.bridge.v1.Msg/FailIntent",
				func(s MsgServer, ctx context.Context, in *MsgFailIntent) (interface{}, error) {
					return s.FailIntent(ctx, in)
				}),
		},
		{
			MethodName: "RequestAmountVerification",
			Handler: msgHandler("/silence.bridge.v1.Msg/RequestAmountVerification",
				func(s MsgServer, ctx context.Context, in *MsgRequestAmountVerification) (interface{}, error) {
					return s.RequestAmountVerification(ctx, in)
				}),
		},
		{
			MethodName: "RequestReputationAudit",
			Handler: msgHandler("/silence.bridge.v1.Msg/RequestReputationAudit",
				func(s MsgServer, ctx context.Context, in *MsgRequestReputationAudit) (interface{}, error) {
					return s.RequestReputationAudit(ctx, in)
				}),
		},
		{
			MethodName: "SubmitAmountVerification",
			Handler: msgHandler("/silence.bridge.v1.Msg/SubmitAmountVerification",
				func(s MsgServer, ctx context.Context, in *MsgSubmitAmountVerification) (interface{}, error) {
					return s.SubmitAmountVerification(ctx, in)
				}),
		},
		{
			MethodName: "SubmitPrivacyProof",
			Handler: msgHandler("/silence.bridge.v1.Msg/SubmitPrivacyProof",
				func(s MsgServer, ctx context.Context, in *MsgSubmitPrivacyProof) (interface{}, error) {
					return s.SubmitPrivacyProof(ctx, in)
				}),
		},
		{
			MethodName: "SubmitReputationScore",
			Handler: msgHandler("/silence.bridge.v1.Msg/SubmitReputationScore",
				func(s MsgServer, ctx context.Context, in *MsgSubmitReputationScore) (interface{}, error) {
					return s.SubmitReputationScore(ctx, in)
				}),
		},
		{
			MethodName: "SetProtocolFee",
			Handler: msgHandler("/silence.bridge.v1.Msg/SetProtocolFee",
				func(s MsgServer, ctx context.Context, in *MsgSetProtocolFee) (interface{}, error) {
					return s.SetProtocolFee(ctx, in)
				}),
		},
		{
			MethodName: "DeactivateSolver",
			Handler: msgHandler("/silence.bridge.v1.Msg/DeactivateSolver",
				func(s MsgServer, ctx context.Context, in *MsgDeactivateSolver) (interface{}, error) {
					return s.DeactivateSolver(ctx, in)
				}),
		},
		{
			MethodName: "UpdateParams",
			Handler: msgHandler("/silence.bridge.v1.Msg/UpdateParams",
				func(s MsgServer, ctx context.Context, in *MsgUpdateParams) (interface{}, error) {
					return s.UpdateParams(ctx, in)
				}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "silence/bridge/v1/tx.proto",
}

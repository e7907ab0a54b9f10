package types

import (
	context "context"

	"github.com/cosmos/gogoproto/proto"
	grpc "google.golang.org/grpc"
)

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryIntentRequest struct {
	IntentId uint64 `json:"intent_id"`
}

type QueryIntentResponse struct {
	Intent Intent `json:"intent"`
}

// QueryIntentsRequest filters by exactly one of creator, solver or status.
type QueryIntentsRequest struct {
	Creator string       `json:"creator,omitempty"`
	Solver  string       `json:"solver,omitempty"`
	Status  IntentStatus `json:"status,omitempty"`
}

type QueryIntentsResponse struct {
	Intents []Intent `json:"intents"`
}

type QuerySolverRequest struct {
	Address string `json:"address"`
}

type QuerySolverResponse struct {
	Solver Solver `json:"solver"`
}

type QueryActiveSolversRequest struct{}

type QueryActiveSolversResponse struct {
	Solvers []Solver `json:"solvers"`
}

type QuerySolversForChainsRequest struct {
	SourceChain      Chain `json:"source_chain"`
	DestinationChain Chain `json:"destination_chain"`
}

type QuerySolversForChainsResponse struct {
	Solvers []Solver `json:"solvers"`
}

type QueryStatsRequest struct{}

type QueryStatsResponse struct {
	Stats BridgeStats `json:"stats"`
}

type QueryReputationAuditRequest struct {
	Solver string `json:"solver"`
}

type QueryReputationAuditResponse struct {
	Audit ReputationAudit `json:"audit"`
}

type QueryEscrowRequest struct {
	IntentId uint64 `json:"intent_id"`
}

type QueryEscrowResponse struct {
	Escrow EscrowRecord `json:"escrow"`
}

type QueryPendingVerificationsRequest struct{}

type QueryPendingVerificationsResponse struct {
	Verifications []PendingVerification `json:"verifications"`
}

func (m *QueryParamsRequest) Reset()         { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string { return proto.CompactTextString(m) }
func (*QueryParamsRequest) ProtoMessage()    {}

func (m *QueryParamsResponse) Reset()         { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string { return proto.CompactTextString(m) }
func (*QueryParamsResponse) ProtoMessage()    {}

func (m *QueryIntentRequest) Reset()         { *m = QueryIntentRequest{} }
func (m *QueryIntentRequest) String() string { return proto.CompactTextString(m) }
func (*QueryIntentRequest) ProtoMessage()    {}

func (m *QueryIntentResponse) Reset()         { *m = QueryIntentResponse{} }
func (m *QueryIntentResponse) String() string { return proto.CompactTextString(m) }
func (*QueryIntentResponse) ProtoMessage()    {}

func (m *QueryIntentsRequest) Reset()         { *m = QueryIntentsRequest{} }
func (m *QueryIntentsRequest) String() string { return proto.CompactTextString(m) }
func (*QueryIntentsRequest) ProtoMessage()    {}

func (m *QueryIntentsResponse) Reset()         { *m = QueryIntentsResponse{} }
func (m *QueryIntentsResponse) String() string { return proto.CompactTextString(m) }
func (*QueryIntentsResponse) ProtoMessage()    {}

func (m *QuerySolverRequest) Reset()         { *m = QuerySolverRequest{} }
func (m *QuerySolverRequest) String() string { return proto.CompactTextString(m) }
func (*QuerySolverRequest) ProtoMessage()    {}

func (m *QuerySolverResponse) Reset()         { *m = QuerySolverResponse{} }
func (m *QuerySolverResponse) String() string { return proto.CompactTextString(m) }
func (*QuerySolverResponse) ProtoMessage()    {}

func (m *QueryActiveSolversRequest) Reset()         { *m = QueryActiveSolversRequest{} }
func (m *QueryActiveSolversRequest) String() string { return proto.CompactTextString(m) }
func (*QueryActiveSolversRequest) ProtoMessage()    {}

func (m *QueryActiveSolversResponse) Reset()         { *m = QueryActiveSolversResponse{} }
func (m *QueryActiveSolversResponse) String() string { return proto.CompactTextString(m) }
func (*QueryActiveSolversResponse) ProtoMessage()    {}

func (m *QuerySolversForChainsRequest) Reset()         { *m = QuerySolversForChainsRequest{} }
func (m *QuerySolversForChainsRequest) String() string { return proto.CompactTextString(m) }
func (*QuerySolversForChainsRequest) ProtoMessage()    {}

func (m *QuerySolversForChainsResponse) Reset()         { *m = QuerySolversForChainsResponse{} }
func (m *QuerySolversForChainsResponse) String() string { return proto.CompactTextString(m) }
func (*QuerySolversForChainsResponse) ProtoMessage()    {}

func (m *QueryStatsRequest) Reset()         { *m = QueryStatsRequest{} }
func (m *QueryStatsRequest) String() string { return proto.CompactTextString(m) }
func (*QueryStatsRequest) ProtoMessage()    {}

func (m *QueryStatsResponse) Reset()         { *m = QueryStatsResponse{} }
func (m *QueryStatsResponse) String() string { return proto.CompactTextString(m) }
func (*QueryStatsResponse) ProtoMessage()    {}

func (m *QueryReputationAuditRequest) Reset()         { *m = QueryReputationAuditRequest{} }
func (m *QueryReputationAuditRequest) String() string { return proto.CompactTextString(m) }
func (*QueryReputationAuditRequest) ProtoMessage()    {}

func (m *QueryReputationAuditResponse) Reset()         { *m = QueryReputationAuditResponse{} }
func (m *QueryReputationAuditResponse) String() string { return proto.CompactTextString(m) }
func (*QueryReputationAuditResponse) ProtoMessage()    {}

func (m *QueryEscrowRequest) Reset()         { *m = QueryEscrowRequest{} }
func (m *QueryEscrowRequest) String() string { return proto.CompactTextString(m) }
func (*QueryEscrowRequest) ProtoMessage()    {}

func (m *QueryEscrowResponse) Reset()         { *m = QueryEscrowResponse{} }
func (m *QueryEscrowResponse) String() string { return proto.CompactTextString(m) }
func (*QueryEscrowResponse) ProtoMessage()    {}

func (m *QueryPendingVerificationsRequest) Reset()         { *m = QueryPendingVerificationsRequest{} }
func (m *QueryPendingVerificationsRequest) String() string { return proto.CompactTextString(m) }
func (*QueryPendingVerificationsRequest) ProtoMessage()    {}

func (m *QueryPendingVerificationsResponse) Reset()         { *m = QueryPendingVerificationsResponse{} }
func (m *QueryPendingVerificationsResponse) String() string { return proto.CompactTextString(m) }
func (*QueryPendingVerificationsResponse) ProtoMessage()    {}

func init() {
	proto.RegisterType((*QueryParamsRequest)(nil), "silence.bridge.v1.QueryParamsRequest")
	proto.RegisterType((*QueryParamsResponse)(nil), "silence.bridge.v1.QueryParamsResponse")
	proto.RegisterType((*QueryIntentRequest)(nil), "silence.bridge.v1.QueryIntentRequest")
	proto.RegisterType((*QueryIntentResponse)(nil), "silence.bridge.v1.QueryIntentResponse")
	proto.RegisterType((*QueryIntentsRequest)(nil), "silence.bridge.v1.QueryIntentsRequest")
	proto.RegisterType((*QueryIntentsResponse)(nil), "silence.bridge.v1.QueryIntentsResponse")
	proto.RegisterType((*QuerySolverRequest)(nil), "silence.bridge.v1.QuerySolverRequest")
	proto.RegisterType((*QuerySolverResponse)(nil), "silence.bridge.v1.QuerySolverResponse")
	proto.RegisterType((*QueryActiveSolversRequest)(nil), "silence.bridge.v1.QueryActiveSolversRequest")
	proto.RegisterType((*QueryActiveSolversResponse)(nil), "silence.bridge.v1.QueryActiveSolversResponse")
	proto.RegisterType((*QuerySolversForChainsRequest)(nil), "silence.bridge.v1.QuerySolversForChainsRequest")
	proto.RegisterType((*QuerySolversForChainsResponse)(nil), "silence.bridge.v1.QuerySolversForChainsResponse")
	proto.RegisterType((*QueryStatsRequest)(nil), "silence.bridge.v1.QueryStatsRequest")
	proto.RegisterType((*QueryStatsResponse)(nil), "silence.bridge.v1.QueryStatsResponse")
	proto.RegisterType((*QueryReputationAuditRequest)(nil), "silence.bridge.v1.QueryReputationAuditRequest")
	proto.RegisterType((*QueryReputationAuditResponse)(nil), "silence.bridge.v1.QueryReputationAuditResponse")
	proto.RegisterType((*QueryEscrowRequest)(nil), "silence.bridge.v1.QueryEscrowRequest")
	proto.RegisterType((*QueryEscrowResponse)(nil), "silence.bridge.v1.QueryEscrowResponse")
	proto.RegisterType((*QueryPendingVerificationsRequest)(nil), "silence.bridge.v1.QueryPendingVerificationsRequest")
	proto.RegisterType((*QueryPendingVerificationsResponse)(nil), "silence.bridge.v1.QueryPendingVerificationsResponse")
}

// QueryServer is the server API for the bridge Query service.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Intent(context.Context, *QueryIntentRequest) (*QueryIntentResponse, error)
	Intents(context.Context, *QueryIntentsRequest) (*QueryIntentsResponse, error)
	Solver(context.Context, *QuerySolverRequest) (*QuerySolverResponse, error)
	ActiveSolvers(context.Context, *QueryActiveSolversRequest) (*QueryActiveSolversResponse, error)
	SolversForChains(context.Context, *QuerySolversForChainsRequest) (*QuerySolversForChainsResponse, error)
	Stats(context.Context, *QueryStatsRequest) (*QueryStatsResponse, error)
	ReputationAudit(context.Context, *QueryReputationAuditRequest) (*QueryReputationAuditResponse, error)
	Escrow(context.Context, *QueryEscrowRequest) (*QueryEscrowResponse, error)
	PendingVerifications(context.Context, *QueryPendingVerificationsRequest) (*QueryPendingVerificationsResponse, error)
}

// RegisterQueryServer registers the Query service implementation with the
// module configurator.
func RegisterQueryServer(s msgServiceRegistrar, srv QueryServer) {
	s.RegisterService(&_Query_serviceDesc, srv)
}

func queryHandler[Req any](
	fullMethod string,
	call func(QueryServer, context.Context, *Req) (interface{}, error),
) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(QueryServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(QueryServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var _Query_serviceDesc = grpc.ServiceDesc{
	ServiceName: "silence.bridge.v1.Query",
	HandlerType: (*QueryServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Params",
			Handler: queryHandler("/silence.bridge.v1.Query/Params",
				func(s QueryServer, ctx context.Context, in *QueryParamsRequest) (interface{}, error) {
					return s.Params(ctx, in)
				}),
		},
		{
			MethodName: "Intent",
			Handler: queryHandler("/silence.bridge.v1.Query/Intent",
				func(s QueryServer, ctx context.Context, in *QueryIntentRequest) (interface{}, error) {
					return s.Intent(ctx, in)
				}),
		},
		{
			MethodName: "Intents",
			Handler: queryHandler("/silence.bridge.v1.Query/Intents",
				func(s QueryServer, ctx context.Context, in *QueryIntentsRequest) (interface{}, error) {
					return s.Intents(ctx, in)
				}),
		},
		{
			MethodName: "Solver",
			Handler: queryHandler("/silence.bridge.v1.Query/Solver",
				func(s QueryServer, ctx context.Context, in *QuerySolverRequest) (interface{}, error) {
					return s.Solver(ctx, in)
				}),
		},
		{
			MethodName: "ActiveSolvers",
			Handler: queryHandler("/silence.bridge.v1.Query/ActiveSolvers",
				func(s QueryServer, ctx context.Context, in *QueryActiveSolversRequest) (interface{}, error) {
					return s.ActiveSolvers(ctx, in)
				}),
		},
		{
			MethodName: "SolversForChains",
			Handler: queryHandler("/silence.bridge.v1.Query/SolversForChains",
				func(s QueryServer, ctx context.Context, in *QuerySolversForChainsRequest) (interface{}, error) {
					return s.SolversForChains(ctx, in)
				}),
		},
		{
			MethodName: "Stats",
			Handler: queryHandler("/silence.bridge.v1.Query/Stats",
				func(s QueryServer, ctx context.Context, in *QueryStatsRequest) (interface{}, error) {
					return s.Stats(ctx, in)
				}),
		},
		{
			MethodName: "ReputationAudit",
			Handler: queryHandler("/silence.bridge.v1.Query/ReputationAudit",
				func(s QueryServer, ctx context.Context, in *QueryReputationAuditRequest) (interface{}, error) {
					return s.ReputationAudit(ctx, in)
				}),
		},
		{
			MethodName: "Escrow",
			Handler: queryHandler("/silence.bridge.v1.Query/Escrow",
				func(s QueryServer, ctx context.Context, in *QueryEscrowRequest) (interface{}, error) {
					return s.Escrow(ctx, in)
				}),
		},
		{
			MethodName: "PendingVerifications",
			Handler: queryHandler("/silence.bridge.v1.Query/PendingVerifications",
				func(s QueryServer, ctx context.Context, in *QueryPendingVerificationsRequest) (interface{}, error) {
					return s.PendingVerifications(ctx, in)
				}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "silence/bridge/v1/query.proto",
}

// QueryClient is the client API for the bridge Query service.
type QueryClient interface {
	Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error)
	Intent(ctx context.Context, in *QueryIntentRequest, opts ...grpc.CallOption) (*QueryIntentResponse, error)
	Intents(ctx context.Context, in *QueryIntentsRequest, opts ...grpc.CallOption) (*QueryIntentsResponse, error)
	Solver(ctx context.Context, in *QuerySolverRequest, opts ...grpc.CallOption) (*QuerySolverResponse, error)
	ActiveSolvers(ctx context.Context, in *QueryActiveSolversRequest, opts ...grpc.CallOption) (*QueryActiveSolversResponse, error)
	SolversForChains(ctx context.Context, in *QuerySolversForChainsRequest, opts ...grpc.CallOption) (*QuerySolversForChainsResponse, error)
	Stats(ctx context.Context, in *QueryStatsRequest, opts ...grpc.CallOption) (*QueryStatsResponse, error)
	ReputationAudit(ctx context.Context, in *QueryReputationAuditRequest, opts ...grpc.CallOption) (*QueryReputationAuditResponse, error)
	Escrow(ctx context.Context, in *QueryEscrowRequest, opts ...grpc.CallOption) (*QueryEscrowResponse, error)
	PendingVerifications(ctx context.Context, in *QueryPendingVerificationsRequest, opts ...grpc.CallOption) (*QueryPendingVerificationsResponse, error)
}

type queryClientConn interface {
	Invoke(ctx context.Context, method string, args, reply interface{}, opts ...grpc.CallOption) error
}

type queryClient struct {
	cc queryClientConn
}

// NewQueryClient constructs a Query service client over cc.
func NewQueryClient(cc queryClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error) {
	out := new(QueryParamsResponse)
	if err := c.cc.Invoke(ctx, "/silence.bridge.v1.Query/Params", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Intent(ctx context.Context, in *QueryIntentRequest, opts ...grpc.CallOption) (*QueryIntentResponse, error) {
	out := new(QueryIntentResponse)
	if err := c.cc.Invoke(ctx, "/silence.bridge.v1.Query/Intent", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Intents(ctx context.Context, in *QueryIntentsRequest, opts ...grpc.CallOption) (*QueryIntentsResponse, error) {
	out := new(QueryIntentsResponse)
	if err := c.cc.Invoke(ctx, "/silence.bridge.v1.Query/Intents", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Solver(ctx context.Context, in *QuerySolverRequest, opts ...grpc.CallOption) (*QuerySolverResponse, error) {
	out := new(QuerySolverResponse)
	if err := c.cc.Invoke(ctx, "/silence.bridge.v1.Query/Solver", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) ActiveSolvers(ctx context.Context, in *QueryActiveSolversRequest, opts ...grpc.CallOption) (*QueryActiveSolversResponse, error) {
	out := new(QueryActiveSolversResponse)
	if err := c.cc.Invoke(ctx, "/silence.bridge.v1.Query/ActiveSolvers", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) SolversForChains(ctx context.Context, in *QuerySolversForChainsRequest, opts ...grpc.CallOption) (*QuerySolversForChainsResponse, error) {
	out := new(QuerySolversForChainsResponse)
	if err := c.cc.Invoke(ctx, "/silence.bridge.v1.Query/SolversForChains", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Stats(ctx context.Context, in *QueryStatsRequest, opts ...grpc.CallOption) (*QueryStatsResponse, error) {
	out := new(QueryStatsResponse)
	if err := c.cc.Invoke(ctx, "/silence.bridge.v1.Query/Stats", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) ReputationAudit(ctx context.Context, in *QueryReputationAuditRequest, opts ...grpc.CallOption) (*QueryReputationAuditResponse, error) {
	out := new(QueryReputationAuditResponse)
	if err := c.cc.Invoke(ctx, "/silence.bridge.v1.Query/ReputationAudit", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Escrow(ctx context.Context, in *QueryEscrowRequest, opts ...grpc.CallOption) (*QueryEscrowResponse, error) {
	out := new(QueryEscrowResponse)
	if err := c.cc.Invoke(ctx, "/silence.bridge.v1.Query/Escrow", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) PendingVerifications(ctx context.Context, in *QueryPendingVerificationsRequest, opts ...grpc.CallOption) (*QueryPendingVerificationsResponse, error) {
	out := new(QueryPendingVerificationsResponse)
	if err := c.cc.Invoke(ctx, "/silence.bridge.v1.Query/PendingVerifications", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

package keeper

import (
	"context"

	"github.com/silence-labs/silence/x/bridge/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the bridge QueryServer
// interface for the provided Keeper.
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

func (q queryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, types.ErrValidationFailed.Wrap("empty request")
	}
	params, err := q.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryParamsResponse{Params: params}, nil
}

func (q queryServer) Intent(ctx context.Context, req *types.QueryIntentRequest) (*types.QueryIntentResponse, error) {
	if req == nil {
		return nil, types.ErrValidationFailed.Wrap("empty request")
	}
	intent, found := q.GetIntent(ctx, req.IntentId)
	if !found {
		return nil, types.ErrIntentNotFound.Wrapf("intent %d", req.IntentId)
	}
	return &types.QueryIntentResponse{Intent: intent}, nil
}

func (q queryServer) Intents(ctx context.Context, req *types.QueryIntentsRequest) (*types.QueryIntentsResponse, error) {
	if req == nil {
		return nil, types.ErrValidationFailed.Wrap("empty request")
	}

	var ids []uint64
	switch {
	case req.Creator != "":
		ids = q.IntentIDsByCreator(ctx, req.Creator)
	case req.Solver != "":
		ids = q.IntentIDsBySolver(ctx, req.Solver)
	case req.Status != types.IntentStatusUnspecified:
		ids = q.IntentIDsByStatus(ctx, req.Status)
	default:
		return nil, types.ErrValidationFailed.Wrap("one of creator, solver or status is required")
	}

	intents := make([]types.Intent, 0, len(ids))
	for _, id := range ids {
		if intent, found := q.GetIntent(ctx, id); found {
			intents = append(intents, intent)
		}
	}
	return &types.QueryIntentsResponse{Intents: intents}, nil
}

func (q queryServer) Solver(ctx context.Context, req *types.QuerySolverRequest) (*types.QuerySolverResponse, error) {
	if req == nil {
		return nil, types.ErrValidationFailed.Wrap("empty request")
	}
	solver, found := q.GetSolver(ctx, req.Address)
	if !found {
		return nil, types.ErrSolverNotFound.Wrap(req.Address)
	}
	return &types.QuerySolverResponse{Solver: solver}, nil
}

func (q queryServer) ActiveSolvers(ctx context.Context, req *types.QueryActiveSolversRequest) (*types.QueryActiveSolversResponse, error) {
	if req == nil {
		return nil, types.ErrValidationFailed.Wrap("empty request")
	}
	return &types.QueryActiveSolversResponse{Solvers: q.GetActiveSolvers(ctx)}, nil
}

func (q queryServer) SolversForChains(ctx context.Context, req *types.QuerySolversForChainsRequest) (*types.QuerySolversForChainsResponse, error) {
	if req == nil {
		return nil, types.ErrValidationFailed.Wrap("empty request")
	}
	if err := req.SourceChain.Validate(); err != nil {
		return nil, err
	}
	if err := req.DestinationChain.Validate(); err != nil {
		return nil, err
	}
	return &types.QuerySolversForChainsResponse{
		Solvers: q.FindSolversForChains(ctx, req.SourceChain, req.DestinationChain),
	}, nil
}

func (q queryServer) Stats(ctx context.Context, req *types.QueryStatsRequest) (*types.QueryStatsResponse, error) {
	if req == nil {
		return nil, types.ErrValidationFailed.Wrap("empty request")
	}
	stats, err := q.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryStatsResponse{Stats: stats}, nil
}

func (q queryServer) ReputationAudit(ctx context.Context, req *types.QueryReputationAuditRequest) (*types.QueryReputationAuditResponse, error) {
	if req == nil {
		return nil, types.ErrValidationFailed.Wrap("empty request")
	}
	audit, found := q.GetReputationAudit(ctx, req.Solver)
	if !found {
		return nil, types.ErrVerificationNotFound.Wrapf("no audit for solver %s", req.Solver)
	}
	return &types.QueryReputationAuditResponse{Audit: audit}, nil
}

func (q queryServer) Escrow(ctx context.Context, req *types.QueryEscrowRequest) (*types.QueryEscrowResponse, error) {
	if req == nil {
		return nil, types.ErrValidationFailed.Wrap("empty request")
	}
	record, found := q.GetEscrowRecord(ctx, req.IntentId)
	if !found {
		return nil, types.ErrEscrowNotFound.Wrapf("intent %d", req.IntentId)
	}
	return &types.QueryEscrowResponse{Escrow: record}, nil
}

func (q queryServer) PendingVerifications(ctx context.Context, req *types.QueryPendingVerificationsRequest) (*types.QueryPendingVerificationsResponse, error) {
	if req == nil {
		return nil, types.ErrValidationFailed.Wrap("empty request")
	}
	var pending []types.PendingVerification
	q.IteratePendingVerifications(ctx, func(pv types.PendingVerification) bool {
		pending = append(pending, pv)
		return false
	})
	return &types.QueryPendingVerificationsResponse{Verifications: pending}, nil
}

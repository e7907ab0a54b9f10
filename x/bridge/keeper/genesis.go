package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/silence-labs/silence/x/bridge/types"
)

// InitGenesis initializes the bridge module state from a genesis state
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}

	store := k.getStore(ctx)
	for _, intent := range genState.Intents {
		if err := k.SetIntent(ctx, intent); err != nil {
			return err
		}
		store.Set(types.IntentByCreatorKey(intent.Creator, intent.Id), []byte{1})
		store.Set(types.IntentByStatusKey(intent.Status, intent.Id), []byte{1})
		if intent.Solver != "" {
			store.Set(types.IntentBySolverKey(intent.Solver, intent.Id), []byte{1})
		}
	}

	for _, solver := range genState.Solvers {
		if err := k.SetSolver(ctx, solver); err != nil {
			return err
		}
		if solver.IsActive {
			store.Set(types.ActiveSolverKey(solver.Address), []byte{1})
		}
	}

	for _, escrow := range genState.Escrows {
		if err := k.SetEscrowRecord(ctx, escrow); err != nil {
			return err
		}
	}

	for _, pv := range genState.PendingVerifications {
		if err := k.SetPendingVerification(ctx, pv); err != nil {
			return err
		}
	}

	for _, audit := range genState.ReputationAudits {
		if err := k.setReputationAudit(ctx, audit); err != nil {
			return err
		}
	}

	if err := k.SetStats(ctx, genState.Stats); err != nil {
		return err
	}
	k.SetNextVerificationID(ctx, genState.NextVerificationId)
	return nil
}

// ExportGenesis returns the bridge module state as a genesis state
func (k Keeper) ExportGenesis(ctx sdk.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := k.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	genState := types.GenesisState{
		Params:               params,
		Intents:              []types.Intent{},
		Solvers:              []types.Solver{},
		Escrows:              []types.EscrowRecord{},
		PendingVerifications: []types.PendingVerification{},
		ReputationAudits:     []types.ReputationAudit{},
		Stats:                stats,
		NextVerificationId:   k.NextVerificationIDPeek(ctx),
	}

	k.IterateIntents(ctx, func(intent types.Intent) bool {
		genState.Intents = append(genState.Intents, intent)
		return false
	})
	k.IterateSolvers(ctx, func(solver types.Solver) bool {
		genState.Solvers = append(genState.Solvers, solver)
		return false
	})
	k.IterateEscrowRecords(ctx, func(record types.EscrowRecord) bool {
		genState.Escrows = append(genState.Escrows, record)
		return false
	})
	k.IteratePendingVerifications(ctx, func(pv types.PendingVerification) bool {
		genState.PendingVerifications = append(genState.PendingVerifications, pv)
		return false
	})
	k.IterateReputationAudits(ctx, func(audit types.ReputationAudit) bool {
		genState.ReputationAudits = append(genState.ReputationAudits, audit)
		return false
	})

	return &genState, nil
}

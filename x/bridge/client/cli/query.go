package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/silence-labs/silence/x/bridge/types"
)

const (
	flagCreator = "creator"
	flagSolver  = "solver"
	flagStatus  = "status"
)

// GetQueryCmd returns the query commands for the bridge module
func GetQueryCmd() *cobra.Command {
	bridgeQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the bridge module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	bridgeQueryCmd.AddCommand(
		CmdQueryParams(),
		CmdQueryIntent(),
		CmdQueryIntents(),
		CmdQuerySolver(),
		CmdQueryActiveSolvers(),
		CmdQuerySolversForChains(),
		CmdQueryStats(),
		CmdQueryReputationAudit(),
		CmdQueryEscrow(),
		CmdQueryPendingVerifications(),
	)

	return bridgeQueryCmd
}

// CmdQueryParams returns a CLI command handler for querying module parameters
func CmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current bridge module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.Params(cmd.Context(), &types.QueryParamsRequest{})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryIntent returns a CLI command handler for querying a single intent
func CmdQueryIntent() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intent [intent-id]",
		Short: "Query an intent by id",
		Long: `Query an intent by id.

Example:
  $ silenced query bridge intent 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			intentID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid intent id %q: %w", args[0], err)
			}

			res, err := queryClient.Intent(cmd.Context(), &types.QueryIntentRequest{IntentId: intentID})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryIntents returns a CLI command handler for listing intents by filter
func CmdQueryIntents() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intents",
		Short: "List intents by creator, solver or status",
		Long: `List intents matching exactly one filter.

Example:
  $ silenced query bridge intents --creator sil1...
  $ silenced query bridge intents --status created`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			creator, _ := cmd.Flags().GetString(flagCreator)
			solver, _ := cmd.Flags().GetString(flagSolver)
			statusName, _ := cmd.Flags().GetString(flagStatus)

			req := &types.QueryIntentsRequest{Creator: creator, Solver: solver}
			if statusName != "" {
				status, err := types.IntentStatusFromString(strings.ToLower(statusName))
				if err != nil {
					return err
				}
				req.Status = status
			}

			res, err := queryClient.Intents(cmd.Context(), req)
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	cmd.Flags().String(flagCreator, "", "Filter by creator address")
	cmd.Flags().String(flagSolver, "", "Filter by bound solver address")
	cmd.Flags().String(flagStatus, "", "Filter by status name (created, matched, ...)")
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQuerySolver returns a CLI command handler for querying a solver
func CmdQuerySolver() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solver [address]",
		Short: "Query a solver's registration and reputation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.Solver(cmd.Context(), &types.QuerySolverRequest{Address: args[0]})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryActiveSolvers returns a CLI command handler for listing active solvers
func CmdQueryActiveSolvers() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "active-solvers",
		Short: "List all active solvers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.ActiveSolvers(cmd.Context(), &types.QueryActiveSolversRequest{})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQuerySolversForChains returns a CLI command handler for matching solvers
// to a source and destination chain pair
func CmdQuerySolversForChains() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solvers-for-chains [source-chain] [destination-chain]",
		Short: "List active solvers supporting both chains",
		Long: `List active solvers supporting both chains.

Example:
  $ silenced query bridge solvers-for-chains near zcash`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			source, err := types.ChainFromString(strings.ToLower(args[0]))
			if err != nil {
				return err
			}
			destination, err := types.ChainFromString(strings.ToLower(args[1]))
			if err != nil {
				return err
			}

			res, err := queryClient.SolversForChains(cmd.Context(), &types.QuerySolversForChainsRequest{
				SourceChain:      source,
				DestinationChain: destination,
			})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryStats returns a CLI command handler for querying module statistics
func CmdQueryStats() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Query cumulative bridge statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.Stats(cmd.Context(), &types.QueryStatsRequest{})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryReputationAudit returns a CLI command handler for querying a
// solver's last gate-computed reputation audit
func CmdQueryReputationAudit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reputation-audit [solver]",
		Short: "Query a solver's last gate-computed reputation audit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.ReputationAudit(cmd.Context(), &types.QueryReputationAuditRequest{Solver: args[0]})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryEscrow returns a CLI command handler for querying an escrow record
func CmdQueryEscrow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "escrow [intent-id]",
		Short: "Query the escrow record backing an intent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			intentID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid intent id %q: %w", args[0], err)
			}

			res, err := queryClient.Escrow(cmd.Context(), &types.QueryEscrowRequest{IntentId: intentID})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryPendingVerifications returns a CLI command handler for listing
// unresolved gate verifications
func CmdQueryPendingVerifications() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pending-verifications",
		Short: "List verifications awaiting a gate callback",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.PendingVerifications(cmd.Context(), &types.QueryPendingVerificationsRequest{})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// Query responses carry json tags rather than generated proto marshalers, so
// they are printed as indented JSON instead of through PrintProto.
func printJSON(clientCtx client.Context, res interface{}) error {
	bz, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	return clientCtx.PrintRaw(bz)
}

package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/silence-labs/silence/x/bridge/types"
)

const (
	FlagShielded      = "shielded"
	FlagCommitment    = "commitment"
	FlagRecipientHash = "recipient-hash"
	FlagTokenID       = "token-id"
	FlagPrivacyProof  = "privacy-proof"
	FlagTTLSeconds    = "ttl-seconds"
	FlagAborted       = "aborted"
)

// GetTxCmd returns the transaction commands for the bridge module
func GetTxCmd() *cobra.Command {
	bridgeTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Bridge transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	bridgeTxCmd.AddCommand(
		CmdCreateIntent(),
		CmdRegisterSolver(),
		CmdMatchIntent(),
		CmdExecuteIntent(),
		CmdSettleIntent(),
		CmdFailIntent(),
		CmdRequestAmountVerification(),
		CmdRequestReputationAudit(),
		CmdSubmitAmountVerification(),
		CmdSubmitPrivacyProof(),
		CmdSubmitReputationScore(),
	)

	return bridgeTxCmd
}

// CmdCreateIntent returns a CLI command handler for creating an intent
func CmdCreateIntent() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-intent [intent-id] [destination-chain] [source-amount]",
		Short: "Create a cross-chain intent, locking the source amount in escrow",
		Long: `Create a cross-chain intent, locking the source amount in escrow.

Example:
  $ silenced tx bridge create-intent 42 near 1000000 --from mykey
  $ silenced tx bridge create-intent 43 zcash 1000000 \
      --shielded --commitment 0a1b... --recipient-hash 2c3d... --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			intentID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid intent id %q: %w", args[0], err)
			}
			chain, err := types.ChainFromString(strings.ToLower(args[1]))
			if err != nil {
				return err
			}
			amount, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid source amount %q", args[2])
			}

			shielded, err := cmd.Flags().GetBool(FlagShielded)
			if err != nil {
				return err
			}
			commitment, err := hexFlag(cmd, FlagCommitment)
			if err != nil {
				return err
			}
			recipientHash, err := hexFlag(cmd, FlagRecipientHash)
			if err != nil {
				return err
			}
			tokenID, err := cmd.Flags().GetString(FlagTokenID)
			if err != nil {
				return err
			}
			ttl, err := cmd.Flags().GetUint64(FlagTTLSeconds)
			if err != nil {
				return err
			}

			msg := &types.MsgCreateIntent{
				Creator:            clientCtx.GetFromAddress().String(),
				IntentId:           intentID,
				DestinationChain:   chain,
				SourceAmount:       amount,
				DestinationTokenId: tokenID,
				AmountCommitment:   commitment,
				RecipientHash:      recipientHash,
				IsShielded:         shielded,
				TtlSeconds:         ttl,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Bool(FlagShielded, false, "Hide the destination amount behind a commitment")
	cmd.Flags().String(FlagCommitment, "", "Hex-encoded amount commitment (required when shielded)")
	cmd.Flags().String(FlagRecipientHash, "", "Hex-encoded recipient hash")
	cmd.Flags().String(FlagTokenID, "", "Destination token identifier")
	cmd.Flags().Uint64(FlagTTLSeconds, 3600, "Seconds until the intent expires unmatched")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRegisterSolver returns a CLI command handler for registering a solver
func CmdRegisterSolver() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register-solver [chains] [stake]",
		Short: "Register as a solver with bonded stake",
		Long: `Register as a solver. Chains is a comma-separated list of
supported chains (silence, near, solana, zcash).

Example:
  $ silenced tx bridge register-solver silence,near 1000000 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			var chains []types.Chain
			for _, name := range strings.Split(args[0], ",") {
				chain, err := types.ChainFromString(strings.TrimSpace(strings.ToLower(name)))
				if err != nil {
					return err
				}
				chains = append(chains, chain)
			}
			stake, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid stake %q", args[1])
			}

			msg := &types.MsgRegisterSolver{
				Solver:          clientCtx.GetFromAddress().String(),
				SupportedChains: chains,
				Stake:           stake,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdMatchIntent returns a CLI command handler for matching an intent
func CmdMatchIntent() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match-intent [intent-id]",
		Short: "Bind the signing solver to an open intent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			intentID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid intent id %q: %w", args[0], err)
			}

			msg := &types.MsgMatchIntent{
				Solver:   clientCtx.GetFromAddress().String(),
				IntentId: intentID,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdExecuteIntent returns a CLI command handler for reporting execution
func CmdExecuteIntent() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute-intent [intent-id] [destination-tx-hash]",
		Short: "Report destination-side execution of a matched intent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			intentID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid intent id %q: %w", args[0], err)
			}
			proof, err := hexFlag(cmd, FlagPrivacyProof)
			if err != nil {
				return err
			}

			msg := &types.MsgExecuteIntent{
				Solver:            clientCtx.GetFromAddress().String(),
				IntentId:          intentID,
				DestinationTxHash: args[1],
				PrivacyProof:      proof,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagPrivacyProof, "", "Hex-encoded privacy proof for shielded intents")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSettleIntent returns a CLI command handler for settling an intent
func CmdSettleIntent() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settle-intent [intent-id]",
		Short: "Pay out an executed intent from escrow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			intentID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid intent id %q: %w", args[0], err)
			}

			msg := &types.MsgSettleIntent{
				Sender:   clientCtx.GetFromAddress().String(),
				IntentId: intentID,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdFailIntent returns a CLI command handler for failing an intent
func CmdFailIntent() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fail-intent [intent-id] [reason]",
		Short: "Abort an intent and refund the creator",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			intentID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid intent id %q: %w", args[0], err)
			}

			msg := &types.MsgFailIntent{
				Sender:   clientCtx.GetFromAddress().String(),
				IntentId: intentID,
				Reason:   args[1],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRequestAmountVerification returns a CLI command handler for queueing an
// amount check with the verification gate
func CmdRequestAmountVerification() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request-amount-verification [intent-id] [destination-amount]",
		Short: "Queue a gate check of an intent's amounts and rate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			intentID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid intent id %q: %w", args[0], err)
			}
			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid destination amount %q", args[1])
			}

			msg := &types.MsgRequestAmountVerification{
				Requester:         clientCtx.GetFromAddress().String(),
				IntentId:          intentID,
				DestinationAmount: amount,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRequestReputationAudit returns a CLI command handler for queueing a
// reputation recompute with the verification gate
func CmdRequestReputationAudit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request-reputation-audit [solver]",
		Short: "Queue a gate recompute of a solver's reputation tier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgRequestReputationAudit{
				Requester: clientCtx.GetFromAddress().String(),
				Solver:    args[0],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSubmitAmountVerification returns a CLI command handler for the gate's
// amount check callback
func CmdSubmitAmountVerification() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit-amount-verification [verification-id] [rate-valid] [amount-sufficient] [fee]",
		Short: "Post an amount check result (verification gate only)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			verificationID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid verification id %q: %w", args[0], err)
			}
			rateValid, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("invalid rate-valid %q: %w", args[1], err)
			}
			sufficient, err := strconv.ParseBool(args[2])
			if err != nil {
				return fmt.Errorf("invalid amount-sufficient %q: %w", args[2], err)
			}
			fee, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid fee %q", args[3])
			}
			aborted, err := cmd.Flags().GetBool(FlagAborted)
			if err != nil {
				return err
			}

			msg := &types.MsgSubmitAmountVerification{
				Gate:             clientCtx.GetFromAddress().String(),
				VerificationId:   verificationID,
				RateValid:        rateValid,
				AmountSufficient: sufficient,
				Fee:              fee,
				Aborted:          aborted,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Bool(FlagAborted, false, "Mark the verification as aborted")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSubmitPrivacyProof returns a CLI command handler for the gate's privacy
// proof callback
func CmdSubmitPrivacyProof() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit-privacy-proof [verification-id] [range-valid] [commitment-hex]",
		Short: "Post a privacy proof result (verification gate only)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			verificationID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid verification id %q: %w", args[0], err)
			}
			rangeValid, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("invalid range-valid %q: %w", args[1], err)
			}
			commitment, err := hex.DecodeString(args[2])
			if err != nil {
				return fmt.Errorf("invalid commitment %q: %w", args[2], err)
			}
			aborted, err := cmd.Flags().GetBool(FlagAborted)
			if err != nil {
				return err
			}

			msg := &types.MsgSubmitPrivacyProof{
				Gate:           clientCtx.GetFromAddress().String(),
				VerificationId: verificationID,
				Commitment:     commitment,
				RangeValid:     rangeValid,
				Aborted:        aborted,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Bool(FlagAborted, false, "Mark the verification as aborted")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSubmitReputationScore returns a CLI command handler for the gate's
// reputation audit callback
func CmdSubmitReputationScore() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit-reputation-score [verification-id] [score] [tier] [high-value-eligible]",
		Short: "Post a reputation audit result (verification gate only)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			verificationID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid verification id %q: %w", args[0], err)
			}
			score, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid score %q: %w", args[1], err)
			}
			tier, err := strconv.ParseUint(args[2], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid tier %q: %w", args[2], err)
			}
			eligible, err := strconv.ParseBool(args[3])
			if err != nil {
				return fmt.Errorf("invalid high-value-eligible %q: %w", args[3], err)
			}
			aborted, err := cmd.Flags().GetBool(FlagAborted)
			if err != nil {
				return err
			}

			msg := &types.MsgSubmitReputationScore{
				Gate:              clientCtx.GetFromAddress().String(),
				VerificationId:    verificationID,
				Score:             uint32(score),
				Tier:              uint32(tier),
				HighValueEligible: eligible,
				Aborted:           aborted,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Bool(FlagAborted, false, "Mark the verification as aborted")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func hexFlag(cmd *cobra.Command, name string) ([]byte, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, nil
	}
	bz, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid hex in --%s: %w", name, err)
	}
	return bz, nil
}

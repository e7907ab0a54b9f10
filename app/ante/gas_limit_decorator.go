package ante

import (
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	bridgetypes "github.com/silence-labs/silence/x/bridge/types"
)

// Gas limits for different operation types to prevent exhaustion attacks
const (
	// Intent lifecycle operations
	MaxGasPerIntentCreation  uint64 = 250_000
	MaxGasPerIntentMatch     uint64 = 150_000
	MaxGasPerIntentExecution uint64 = 300_000
	MaxGasPerSettlement      uint64 = 200_000
	MaxGasPerIntentFailure   uint64 = 150_000

	// Solver operations
	MaxGasPerSolverRegistration uint64 = 200_000
	MaxGasPerSolverAdmin        uint64 = 100_000

	// Verification gate operations
	MaxGasPerVerificationRequest uint64 = 150_000
	MaxGasPerGateCallback        uint64 = 400_000

	// General limits
	MaxGasPerTx      uint64 = 10_000_000 // Maximum gas per transaction
	MaxGasPerMessage uint64 = 500_000    // Maximum gas per message in tx
	MaxMessagesPerTx int    = 10         // Maximum messages per transaction
)

// GasLimitDecorator enforces per-operation gas limits to prevent exhaustion attacks
type GasLimitDecorator struct{}

// NewGasLimitDecorator creates a new GasLimitDecorator
func NewGasLimitDecorator() GasLimitDecorator {
	return GasLimitDecorator{}
}

// AnteHandle enforces gas limits on transactions and individual messages
func (gld GasLimitDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (sdk.Context, error) {
	msgs := tx.GetMsgs()

	// Enforce maximum messages per transaction
	if len(msgs) > MaxMessagesPerTx {
		return ctx, sdkerrors.ErrInvalidRequest.Wrapf(
			"transaction contains too many messages: %d > %d (prevents DoS)",
			len(msgs), MaxMessagesPerTx,
		)
	}

	// Track gas meter before processing
	gasBefore := ctx.GasMeter().GasConsumed()

	// Validate each message has appropriate gas limits
	for i, msg := range msgs {
		// Get required gas for this message type
		requiredGas := requiredGasForMessage(msg)

		// Check if message gas limit exceeds maximum
		if requiredGas > MaxGasPerMessage {
			return ctx, sdkerrors.ErrInvalidRequest.Wrapf(
				"message %d requires too much gas: %d > %d",
				i, requiredGas, MaxGasPerMessage,
			)
		}

		// Create a bounded gas meter for this message
		msgGasMeter := storetypes.NewGasMeter(requiredGas)
		msgCtx := ctx.WithGasMeter(msgGasMeter)

		// Verify the message doesn't consume more than allocated
		// This is a pre-check; actual consumption happens during execution
		if err := validateMessageGasUsage(msgCtx, msg); err != nil {
			return ctx, sdkerrors.ErrInvalidRequest.Wrapf(
				"message %d failed gas validation: %v", i, err,
			)
		}
	}

	// Check total transaction gas limit
	totalGasRequired := ctx.GasMeter().Limit()
	if totalGasRequired > MaxGasPerTx && !simulate {
		return ctx, sdkerrors.ErrInvalidRequest.Wrapf(
			"transaction gas limit too high: %d > %d",
			totalGasRequired, MaxGasPerTx,
		)
	}

	newCtx, err := next(ctx, tx, simulate)
	if err != nil {
		return newCtx, err
	}

	gasAfter := newCtx.GasMeter().GasConsumed()
	gasUsed := gasAfter - gasBefore

	// Log excessive gas usage for monitoring
	if gasUsed > MaxGasPerTx/2 {
		ctx.Logger().Info("High gas consumption detected",
			"gas_used", gasUsed,
			"num_messages", len(msgs),
			"tx_hash", fmt.Sprintf("%X", ctx.TxBytes()),
		)
	}

	return newCtx, nil
}

// requiredGasForMessage returns the gas ceiling for a specific message type
func requiredGasForMessage(msg sdk.Msg) uint64 {
	switch msg.(type) {
	case *bridgetypes.MsgCreateIntent:
		return MaxGasPerIntentCreation
	case *bridgetypes.MsgMatchIntent:
		return MaxGasPerIntentMatch
	case *bridgetypes.MsgExecuteIntent:
		return MaxGasPerIntentExecution
	case *bridgetypes.MsgSettleIntent:
		return MaxGasPerSettlement
	case *bridgetypes.MsgFailIntent:
		return MaxGasPerIntentFailure

	case *bridgetypes.MsgRegisterSolver:
		return MaxGasPerSolverRegistration
	case *bridgetypes.MsgDeactivateSolver:
		return MaxGasPerSolverAdmin

	case *bridgetypes.MsgRequestAmountVerification,
		*bridgetypes.MsgRequestReputationAudit:
		return MaxGasPerVerificationRequest
	case *bridgetypes.MsgSubmitAmountVerification,
		*bridgetypes.MsgSubmitPrivacyProof,
		*bridgetypes.MsgSubmitReputationScore:
		return MaxGasPerGateCallback

	default:
		// For unknown message types, use a conservative default
		return MaxGasPerMessage
	}
}

// validateMessageGasUsage performs pre-validation of message gas requirements
func validateMessageGasUsage(ctx sdk.Context, msg sdk.Msg) error {
	// Basic validation that message won't exceed gas limits
	// This is a static check; dynamic checks happen during execution

	type validateBasicMsg interface {
		ValidateBasic() error
	}

	if vb, ok := msg.(validateBasicMsg); ok {
		if err := vb.ValidateBasic(); err != nil {
			return fmt.Errorf("message validation failed: %w", err)
		}
	}

	return nil
}

// ConsumeGasForOperation consumes gas and checks it doesn't exceed per-operation limits
func ConsumeGasForOperation(ctx sdk.Context, gas uint64, operationType string, maxGas uint64) error {
	if gas > maxGas {
		return sdkerrors.ErrInvalidRequest.Wrapf(
			"operation '%s' requires too much gas: %d > %d",
			operationType, gas, maxGas,
		)
	}

	// Consume the gas (will panic if exceeds meter limit)
	ctx.GasMeter().ConsumeGas(gas, operationType)

	return nil
}

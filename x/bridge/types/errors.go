package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/bridge module sentinel errors
var (
	// Intent lifecycle errors (2-19)
	ErrInvalidIntent       = sdkerrors.Register(ModuleName, 2, "invalid intent")
	ErrIntentNotFound      = sdkerrors.Register(ModuleName, 3, "intent not found")
	ErrIntentExists        = sdkerrors.Register(ModuleName, 4, "intent already exists")
	ErrIntentExpired       = sdkerrors.Register(ModuleName, 5, "intent expired")
	ErrInvalidIntentStatus = sdkerrors.Register(ModuleName, 6, "operation not allowed in current intent status")
	ErrZeroDeposit         = sdkerrors.Register(ModuleName, 7, "deposit amount must be positive")
	ErrInvalidTimeout      = sdkerrors.Register(ModuleName, 8, "intent timeout must be positive")

	// Solver errors (20-39)
	ErrSolverNotFound       = sdkerrors.Register(ModuleName, 20, "solver not found")
	ErrSolverExists         = sdkerrors.Register(ModuleName, 21, "solver already registered")
	ErrSolverNotActive      = sdkerrors.Register(ModuleName, 22, "solver is not active")
	ErrInsufficientStake    = sdkerrors.Register(ModuleName, 23, "insufficient solver stake")
	ErrNoSupportedChains    = sdkerrors.Register(ModuleName, 24, "solver must support at least one chain")
	ErrChainNotSupported    = sdkerrors.Register(ModuleName, 25, "solver does not support required chain")
	ErrNotMatchedSolver     = sdkerrors.Register(ModuleName, 26, "caller is not the solver bound to this intent")
	ErrNotHighValueEligible = sdkerrors.Register(ModuleName, 27, "solver is not eligible for high value intents")

	// Escrow and settlement errors (40-59)
	ErrEscrowNotFound      = sdkerrors.Register(ModuleName, 40, "escrow record not found")
	ErrEscrowConflict      = sdkerrors.Register(ModuleName, 41, "escrow record is not in the required status")
	ErrInsufficientFunds   = sdkerrors.Register(ModuleName, 42, "insufficient spendable balance")
	ErrFeeTooHigh          = sdkerrors.Register(ModuleName, 43, "protocol fee exceeds maximum")
	ErrArithmeticOverflow  = sdkerrors.Register(ModuleName, 44, "arithmetic overflow")
	ErrDivisionByZero      = sdkerrors.Register(ModuleName, 45, "division by zero")

	// Verification gate errors (60-79)
	ErrVerificationNotFound = sdkerrors.Register(ModuleName, 60, "pending verification not found")
	ErrVerificationResolved = sdkerrors.Register(ModuleName, 61, "verification already resolved")
	ErrVerificationMismatch = sdkerrors.Register(ModuleName, 62, "verification result does not match the pending request")
	ErrVerificationFailed   = sdkerrors.Register(ModuleName, 63, "verification rejected by gate")

	// General errors (80-99)
	ErrInvalidAddress   = sdkerrors.Register(ModuleName, 80, "invalid address")
	ErrInvalidChain     = sdkerrors.Register(ModuleName, 81, "invalid chain")
	ErrUnauthorized     = sdkerrors.Register(ModuleName, 82, "unauthorized")
	ErrValidationFailed = sdkerrors.Register(ModuleName, 83, "validation failed")
	ErrInvalidParams    = sdkerrors.Register(ModuleName, 84, "invalid module parameters")
)

package types

import (
	"fmt"
	"time"

	"cosmossdk.io/math"
)

// Chain identifies a ledger connected through the bridge.
type Chain int32

const (
	ChainUnspecified Chain = 0
	ChainSilence     Chain = 1
	ChainNear        Chain = 2
	ChainSolana      Chain = 3
	ChainZcash       Chain = 4
)

var chainNames = map[Chain]string{
	ChainUnspecified: "unspecified",
	ChainSilence:     "silence",
	ChainNear:        "near",
	ChainSolana:      "solana",
	ChainZcash:       "zcash",
}

func (c Chain) String() string {
	if name, ok := chainNames[c]; ok {
		return name
	}
	return fmt.Sprintf("chain(%d)", int32(c))
}

// Validate returns an error for chains outside the closed set
func (c Chain) Validate() error {
	if c <= ChainUnspecified || c > ChainZcash {
		return ErrInvalidChain.Wrapf("unknown chain %d", int32(c))
	}
	return nil
}

// ChainFromString parses a chain name, used by CLI commands
func ChainFromString(s string) (Chain, error) {
	for c, name := range chainNames {
		if name == s && c != ChainUnspecified {
			return c, nil
		}
	}
	return ChainUnspecified, ErrInvalidChain.Wrapf("unknown chain %q", s)
}

// ChainSet is a bitmap of chains a solver supports.
type ChainSet uint32

// NewChainSet builds a set from discrete chains
func NewChainSet(chains ...Chain) ChainSet {
	var s ChainSet
	for _, c := range chains {
		s = s.Add(c)
	}
	return s
}

func (s ChainSet) Add(c Chain) ChainSet {
	return s | ChainSet(1)<<uint(c)
}

func (s ChainSet) Has(c Chain) bool {
	return s&(ChainSet(1)<<uint(c)) != 0
}

func (s ChainSet) IsEmpty() bool {
	return s == 0
}

// Chains expands the bitmap back to a sorted slice
func (s ChainSet) Chains() []Chain {
	var out []Chain
	for c := ChainSilence; c <= ChainZcash; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Validate rejects empty sets and bits outside the known chain range
func (s ChainSet) Validate() error {
	if s.IsEmpty() {
		return ErrNoSupportedChains
	}
	known := NewChainSet(ChainSilence, ChainNear, ChainSolana, ChainZcash)
	if s&^known != 0 {
		return ErrInvalidChain.Wrapf("chain set %#x contains unknown chains", uint32(s))
	}
	return nil
}

func (s ChainSet) String() string {
	chains := s.Chains()
	names := make([]string, 0, len(chains))
	for _, c := range chains {
		names = append(names, c.String())
	}
	return fmt.Sprintf("%v", names)
}

// IntentStatus tracks an intent through its lifecycle.
type IntentStatus int32

const (
	IntentStatusUnspecified IntentStatus = 0
	IntentStatusCreated     IntentStatus = 1
	IntentStatusMatched     IntentStatus = 2
	// IntentStatusExecuting marks a shielded intent waiting on the
	// verification gate's privacy proof result.
	IntentStatusExecuting IntentStatus = 3
	IntentStatusExecuted  IntentStatus = 4
	// IntentStatusSettling marks a shielded intent waiting on the
	// verification gate's amount check before payout.
	IntentStatusSettling IntentStatus = 5
	IntentStatusSettled  IntentStatus = 6
	IntentStatusFailed   IntentStatus = 7
	IntentStatusDisputed IntentStatus = 8
)

var intentStatusNames = map[IntentStatus]string{
	IntentStatusUnspecified: "unspecified",
	IntentStatusCreated:     "created",
	IntentStatusMatched:     "matched",
	IntentStatusExecuting:   "executing",
	IntentStatusExecuted:    "executed",
	IntentStatusSettling:    "settling",
	IntentStatusSettled:     "settled",
	IntentStatusFailed:      "failed",
	IntentStatusDisputed:    "disputed",
}

func (s IntentStatus) String() string {
	if name, ok := intentStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int32(s))
}

// IntentStatusFromString parses a status name, used by CLI commands
func IntentStatusFromString(name string) (IntentStatus, error) {
	for status, n := range intentStatusNames {
		if n == name && status != IntentStatusUnspecified {
			return status, nil
		}
	}
	return IntentStatusUnspecified, ErrValidationFailed.Wrapf("unknown intent status %q", name)
}

// IsTerminal reports whether no further transition may leave s
func (s IntentStatus) IsTerminal() bool {
	return s == IntentStatusSettled || s == IntentStatusFailed || s == IntentStatusDisputed
}

var statusTransitions = map[IntentStatus][]IntentStatus{
	IntentStatusCreated:   {IntentStatusMatched, IntentStatusFailed},
	IntentStatusMatched:   {IntentStatusExecuting, IntentStatusExecuted, IntentStatusFailed},
	IntentStatusExecuting: {IntentStatusExecuted, IntentStatusFailed},
	IntentStatusExecuted:  {IntentStatusSettling, IntentStatusSettled, IntentStatusFailed},
	IntentStatusSettling:  {IntentStatusSettled, IntentStatusFailed},
}

// CanTransitionTo reports whether the lifecycle permits s -> to
func (s IntentStatus) CanTransitionTo(to IntentStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Intent is a cross-chain transfer order. The destination amount of a
// shielded intent is never stored in plaintext, only its commitment.
type Intent struct {
	Id                 uint64       `json:"id"`
	Creator            string       `json:"creator"`
	SourceChain        Chain        `json:"source_chain"`
	DestinationChain   Chain        `json:"destination_chain"`
	SourceAmount       math.Int     `json:"source_amount"`
	DestinationTokenId string       `json:"destination_token_id,omitempty"`
	AmountCommitment   []byte       `json:"amount_commitment,omitempty"`
	RecipientHash      []byte       `json:"recipient_hash,omitempty"`
	IsShielded         bool         `json:"is_shielded"`
	Status             IntentStatus `json:"status"`
	Solver             string       `json:"solver,omitempty"`
	DestinationTxHash  string       `json:"destination_tx_hash,omitempty"`
	PrivacyProof       []byte       `json:"privacy_proof,omitempty"`
	CreatedAt          time.Time    `json:"created_at"`
	ExpiresAt          time.Time    `json:"expires_at"`
	ExecutedAt         *time.Time   `json:"executed_at,omitempty"`
	SettledAt          *time.Time   `json:"settled_at,omitempty"`
	FailureReason      string       `json:"failure_reason,omitempty"`
}

// Validate checks structural consistency of a stored intent
func (i Intent) Validate() error {
	if i.Id == 0 {
		return ErrInvalidIntent.Wrap("id must be positive")
	}
	if i.Creator == "" {
		return ErrInvalidIntent.Wrap("creator must be set")
	}
	if err := i.SourceChain.Validate(); err != nil {
		return err
	}
	if err := i.DestinationChain.Validate(); err != nil {
		return err
	}
	if i.SourceAmount.IsNil() || !i.SourceAmount.IsPositive() {
		return ErrZeroDeposit
	}
	if i.IsShielded && len(i.AmountCommitment) == 0 {
		return ErrInvalidIntent.Wrap("shielded intent requires an amount commitment")
	}
	if _, ok := intentStatusNames[i.Status]; !ok || i.Status == IntentStatusUnspecified {
		return ErrInvalidIntent.Wrapf("unknown status %d", int32(i.Status))
	}
	return nil
}

// Solver is a registered cross-chain executor.
type Solver struct {
	Address              string    `json:"address"`
	SupportedChains      ChainSet  `json:"supported_chains"`
	Stake                math.Int  `json:"stake"`
	ReputationScore      uint32    `json:"reputation_score"`
	TotalIntentsExecuted uint64    `json:"total_intents_executed"`
	SuccessfulIntents    uint64    `json:"successful_intents"`
	FailedIntents        uint64    `json:"failed_intents"`
	TotalVolume          math.Int  `json:"total_volume"`
	IsActive             bool      `json:"is_active"`
	RegisteredAt         time.Time `json:"registered_at"`
}

// Validate checks structural consistency of a stored solver
func (s Solver) Validate() error {
	if s.Address == "" {
		return ErrInvalidAddress.Wrap("solver address must be set")
	}
	if err := s.SupportedChains.Validate(); err != nil {
		return err
	}
	if s.Stake.IsNil() || s.Stake.IsNegative() {
		return ErrInsufficientStake.Wrap("stake must be non-negative")
	}
	if s.TotalVolume.IsNil() || s.TotalVolume.IsNegative() {
		return ErrValidationFailed.Wrap("total volume must be non-negative")
	}
	if s.SuccessfulIntents+s.FailedIntents > s.TotalIntentsExecuted {
		return ErrValidationFailed.Wrap("solver outcome counters exceed executed total")
	}
	return nil
}

// EscrowStatus tracks the lifecycle of locked funds.
type EscrowStatus int32

const (
	EscrowStatusLocked   EscrowStatus = 1
	EscrowStatusReleased EscrowStatus = 2
	EscrowStatusRefunded EscrowStatus = 3
)

func (s EscrowStatus) String() string {
	switch s {
	case EscrowStatusLocked:
		return "locked"
	case EscrowStatusReleased:
		return "released"
	case EscrowStatusRefunded:
		return "refunded"
	default:
		return fmt.Sprintf("escrow_status(%d)", int32(s))
	}
}

// EscrowRecord tracks funds held by the module account for one intent.
type EscrowRecord struct {
	IntentId  uint64       `json:"intent_id"`
	Depositor string       `json:"depositor"`
	Amount    math.Int     `json:"amount"`
	Denom     string       `json:"denom"`
	Status    EscrowStatus `json:"status"`
	LockedAt  time.Time    `json:"locked_at"`
	ClosedAt  *time.Time   `json:"closed_at,omitempty"`
}

// VerificationKind distinguishes the three gate computations.
type VerificationKind int32

const (
	VerificationKindAmounts      VerificationKind = 1
	VerificationKindPrivacyProof VerificationKind = 2
	VerificationKindReputation   VerificationKind = 3
)

func (k VerificationKind) String() string {
	switch k {
	case VerificationKindAmounts:
		return "amounts"
	case VerificationKindPrivacyProof:
		return "privacy_proof"
	case VerificationKindReputation:
		return "reputation"
	default:
		return fmt.Sprintf("verification_kind(%d)", int32(k))
	}
}

// PendingVerification correlates a queued gate computation with the
// callback that will resolve it. Each record is resolved at most once.
type PendingVerification struct {
	Id              uint64           `json:"id"`
	Kind            VerificationKind `json:"kind"`
	IntentId        uint64           `json:"intent_id,omitempty"`
	Solver          string           `json:"solver,omitempty"`
	Requester       string           `json:"requester"`
	SourceAmount    math.Int         `json:"source_amount"`
	ExpectedRateBps uint64           `json:"expected_rate_bps,omitempty"`
	MinSourceAmount math.Int         `json:"min_source_amount"`
	MaxAmount       math.Int         `json:"max_amount"`
	VolumeThreshold math.Int         `json:"volume_threshold"`
	// SettlesIntent marks an amount verification queued by settlement;
	// its positive result completes the payout.
	SettlesIntent bool      `json:"settles_intent,omitempty"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// ReputationAudit is a gate-computed assessment of a solver. It is an
// independent signal from the incremental score on the solver record.
type ReputationAudit struct {
	Solver            string    `json:"solver"`
	Score             uint32    `json:"score"`
	Tier              uint32    `json:"tier"`
	HighValueEligible bool      `json:"high_value_eligible"`
	ComputedAt        time.Time `json:"computed_at"`
}

// AmountVerification is the outcome of the gate's amount check.
type AmountVerification struct {
	RateValid        bool     `json:"rate_valid"`
	AmountSufficient bool     `json:"amount_sufficient"`
	Fee              math.Int `json:"fee"`
}

// BridgeStats aggregates lifetime module activity.
type BridgeStats struct {
	TotalIntents      uint64   `json:"total_intents"`
	SettledIntents    uint64   `json:"settled_intents"`
	FailedIntents     uint64   `json:"failed_intents"`
	ActiveSolvers     uint64   `json:"active_solvers"`
	TotalVolume       math.Int `json:"total_volume"`
	TotalProtocolFees math.Int `json:"total_protocol_fees"`
}

package types

import "encoding/binary"

const (
	// ModuleName defines the module name
	ModuleName = "bridge"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// KVStore key prefixes. All numeric key segments are big-endian so that
// iteration order matches numeric order.
var (
	ParamsKey            = []byte{0x01}
	StatsKey             = []byte{0x02}
	VerificationCountKey = []byte{0x03}

	IntentKeyPrefix              = []byte{0x10}
	IntentByCreatorKeyPrefix     = []byte{0x11}
	IntentBySolverKeyPrefix      = []byte{0x12}
	IntentByStatusKeyPrefix      = []byte{0x13}
	SolverKeyPrefix              = []byte{0x20}
	ActiveSolverKeyPrefix        = []byte{0x21}
	EscrowKeyPrefix              = []byte{0x30}
	PendingVerificationKeyPrefix = []byte{0x40}
	ResolvedVerificationPrefix   = []byte{0x41}
	ReputationAuditKeyPrefix     = []byte{0x50}
)

// IntentKey returns the store key for an intent
func IntentKey(intentID uint64) []byte {
	return appendUint64(IntentKeyPrefix, intentID)
}

// IntentByCreatorKey returns the secondary index key creator -> intent
func IntentByCreatorKey(creator string, intentID uint64) []byte {
	key := append([]byte{}, IntentByCreatorKeyPrefix...)
	key = append(key, []byte(creator)...)
	key = append(key, 0x00)
	return appendUint64(key, intentID)
}

// IntentByCreatorIterPrefix returns the iteration prefix for one creator bucket
func IntentByCreatorIterPrefix(creator string) []byte {
	key := append([]byte{}, IntentByCreatorKeyPrefix...)
	key = append(key, []byte(creator)...)
	return append(key, 0x00)
}

// IntentBySolverKey returns the secondary index key solver -> intent
func IntentBySolverKey(solver string, intentID uint64) []byte {
	key := append([]byte{}, IntentBySolverKeyPrefix...)
	key = append(key, []byte(solver)...)
	key = append(key, 0x00)
	return appendUint64(key, intentID)
}

// IntentBySolverIterPrefix returns the iteration prefix for one solver bucket
func IntentBySolverIterPrefix(solver string) []byte {
	key := append([]byte{}, IntentBySolverKeyPrefix...)
	key = append(key, []byte(solver)...)
	return append(key, 0x00)
}

// IntentByStatusKey returns the secondary index key status -> intent
func IntentByStatusKey(status IntentStatus, intentID uint64) []byte {
	key := append([]byte{}, IntentByStatusKeyPrefix...)
	key = append(key, byte(status))
	return appendUint64(key, intentID)
}

// IntentByStatusIterPrefix returns the iteration prefix for one status bucket
func IntentByStatusIterPrefix(status IntentStatus) []byte {
	key := append([]byte{}, IntentByStatusKeyPrefix...)
	return append(key, byte(status))
}

// SolverKey returns the store key for a solver record
func SolverKey(addr string) []byte {
	return append(append([]byte{}, SolverKeyPrefix...), []byte(addr)...)
}

// ActiveSolverKey returns the membership key for the active solver index
func ActiveSolverKey(addr string) []byte {
	return append(append([]byte{}, ActiveSolverKeyPrefix...), []byte(addr)...)
}

// EscrowKey returns the store key for an escrow record, keyed by intent id
func EscrowKey(intentID uint64) []byte {
	return appendUint64(EscrowKeyPrefix, intentID)
}

// PendingVerificationKey returns the store key for a pending verification
func PendingVerificationKey(verificationID uint64) []byte {
	return appendUint64(PendingVerificationKeyPrefix, verificationID)
}

// ResolvedVerificationKey returns the tombstone key for a resolved verification
func ResolvedVerificationKey(verificationID uint64) []byte {
	return appendUint64(ResolvedVerificationPrefix, verificationID)
}

// ReputationAuditKey returns the store key for a solver's latest audit
func ReputationAuditKey(addr string) []byte {
	return append(append([]byte{}, ReputationAuditKeyPrefix...), []byte(addr)...)
}

func appendUint64(prefix []byte, v uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, v)
	return append(append([]byte{}, prefix...), bz...)
}

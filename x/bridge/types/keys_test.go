package types_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/silence-labs/silence/x/bridge/types"
)

func TestIntentKeyOrdering(t *testing.T) {
	// Big-endian ids must iterate in numeric order.
	prev := types.IntentKey(0)
	for _, id := range []uint64{1, 2, 255, 256, 1 << 32, 1<<63 + 7} {
		cur := types.IntentKey(id)
		require.Len(t, cur, 9)
		require.Equal(t, 1, bytes.Compare(cur, prev), "id %d must sort after predecessor", id)
		prev = cur
	}
}

func TestIndexKeysDoNotCollide(t *testing.T) {
	// The creator index terminates the address with a zero byte so that
	// one address can never be a prefix of another's bucket.
	a := types.IntentByCreatorKey("sil1aa", 1)
	b := types.IntentByCreatorKey("sil1aab", 1)
	require.False(t, bytes.HasPrefix(b, a[:len(a)-8]))

	require.NotEqual(t, types.IntentByCreatorKey("sil1aa", 1), types.IntentBySolverKey("sil1aa", 1))
	require.NotEqual(t, types.SolverKey("sil1aa"), types.ActiveSolverKey("sil1aa"))
	require.NotEqual(t, types.PendingVerificationKey(7), types.ResolvedVerificationKey(7))
}

func TestIntentByStatusIterPrefix(t *testing.T) {
	key := types.IntentByStatusKey(types.IntentStatusMatched, 42)
	prefix := types.IntentByStatusIterPrefix(types.IntentStatusMatched)
	require.True(t, bytes.HasPrefix(key, prefix))

	other := types.IntentByStatusIterPrefix(types.IntentStatusExecuted)
	require.False(t, bytes.HasPrefix(key, other))
}

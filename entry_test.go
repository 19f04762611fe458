//go:build unit

package memhashmap

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestNewEntry(t *testing.T) {
	t.Run("creates entry with owned payload", func(t *testing.T) {
		// Prepare
		payload := []byte("s3cr3t")
		before := time.Now()

		// Execute
		entry, err := NewEntry("alice", payload, 7)

		// Check
		require.NoError(t, err, "create new entry")
		assert.Equal(t, "alice", entry.Key, "correct key")
		assert.Equal(t, []byte("s3cr3t"), entry.Payload, "correct payload")
		assert.Equal(t, Permission(7), entry.Permissions, "correct permissions")
		assert.Equal(t, uint32(0), entry.SessionID, "no session yet")
		assert.False(t, entry.LastActivity.Before(before), "last activity set at creation")

		payload[0] = 'x'
		assert.Equal(t, []byte("s3cr3t"), entry.Payload, "payload not shared with caller")
	})

	t.Run("creates entry with empty payload", func(t *testing.T) {
		// Execute
		entry, err := NewEntry("guest", nil, 0)

		// Check
		require.NoError(t, err, "create new entry")
		assert.NotNil(t, entry.Payload, "payload allocated")
		assert.Len(t, entry.Payload, 0, "payload empty")
	})

	t.Run("error when key is empty", func(t *testing.T) {
		// Execute
		entry, err := NewEntry("", []byte("pw"), 0)

		// Check
		assert.ErrorIs(t, err, InvalidArgument{}, "get correct error")
		assert.Nil(t, entry, "no entry returned")
	})
}

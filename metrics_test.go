//go:build unit

package memhashmap

import (
	"fmt"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestTable_Metrics(t *testing.T) {
	t.Run("counts operations", func(t *testing.T) {
		// Prepare
		name := "metrics-operations"
		table, err := NewTable(TableConf{Name: name})
		require.NoError(t, err, "create new table")

		// Execute
		require.NoError(t, table.Insert(newTestEntry(t, "alice", "pw")), "insert entry")
		require.NoError(t, table.Insert(newTestEntry(t, "bob", "pw")), "insert entry")
		assert.Error(t, table.Insert(nil), "rejected insert")
		assert.Error(t, table.Insert(&Entry{}), "rejected empty key")
		_, _ = table.Get("alice")
		_, _ = table.Get("carol")
		_ = table.Delete("bob")
		_ = table.Delete("bob")

		// Check
		assert.Equal(t, 2.0, testutil.ToFloat64(tableInserts.WithLabelValues(name, "Inserted")), "inserted")
		assert.Equal(t, 2.0, testutil.ToFloat64(tableInserts.WithLabelValues(name, "Failed")), "invalid arguments count as failed")
		assert.Equal(t, 1.0, testutil.ToFloat64(tableGets.WithLabelValues(name, "Found")), "found")
		assert.Equal(t, 1.0, testutil.ToFloat64(tableGets.WithLabelValues(name, "NotFound")), "not found")
		assert.Equal(t, 1.0, testutil.ToFloat64(tableDeletes.WithLabelValues(name, "Removed")), "removed")
		assert.Equal(t, 1.0, testutil.ToFloat64(tableDeletes.WithLabelValues(name, "NotFound")), "delete not found")
		assert.Equal(t, 1.0, testutil.ToFloat64(tableItems.WithLabelValues(name)), "items")
		assert.Equal(t, 64.0, testutil.ToFloat64(tableCapacity.WithLabelValues(name)), "capacity")

		// Clean up
		table.Destroy()
		assert.Equal(t, 0.0, testutil.ToFloat64(tableItems.WithLabelValues(name)), "items released")
		assert.Equal(t, 0.0, testutil.ToFloat64(tableCapacity.WithLabelValues(name)), "capacity released")
	})

	t.Run("counts rehashes", func(t *testing.T) {
		// Prepare
		name := "metrics-rehash"
		table, err := NewTable(TableConf{Name: name, MaximumCapacity: 128})
		require.NoError(t, err, "create new table")
		defer table.Destroy()

		// Execute
		for i := 0; i < 97; i++ {
			_ = table.Insert(newTestEntry(t, fmt.Sprintf("user-%d", i), "pw"))
		}

		// Check
		assert.Equal(t, 96.0, testutil.ToFloat64(tableInserts.WithLabelValues(name, "Inserted")), "inserted")
		assert.Equal(t, 1.0, testutil.ToFloat64(tableInserts.WithLabelValues(name, "Failed")), "failed insert")
		assert.Equal(t, 1.0, testutil.ToFloat64(tableRehashes.WithLabelValues(name, "Grown")), "grown")
		assert.Equal(t, 1.0, testutil.ToFloat64(tableRehashes.WithLabelValues(name, "Failed")), "failed rehash")
		assert.Equal(t, 128.0, testutil.ToFloat64(tableCapacity.WithLabelValues(name)), "capacity")
		assert.Equal(t, 96.0, testutil.ToFloat64(tableItems.WithLabelValues(name)), "items")
	})
}

//go:build stress

package test

import (
	"fmt"
	"github.com/gostonefire/memhashmap"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand"
	"testing"
)

type TestCaseStress struct {
	algName string
	hFunc   hashfunc.HashAlgorithm
}

func createTestdata(amount int) (keys []string, payloads [][]byte) {
	rnd := rand.New(rand.NewSource(123))
	keys = make([]string, amount)
	payloads = make([][]byte, amount)
	for i := 0; i < amount; i++ {
		keys[i] = fmt.Sprintf("user-%d-%d", i, rnd.Int63())
		payloads[i] = make([]byte, 32)
		rnd.Read(payloads[i])
	}

	return
}

func TestStress(t *testing.T) {
	tests := []TestCaseStress{
		{algName: "Internal"},
		{algName: "XXHash", hFunc: hashfunc.NewXXHashAlgorithm()},
	}
	amount := 1000000
	keys, payloads := createTestdata(amount)

	for _, test := range tests {
		t.Run(fmt.Sprintf("insert, get and delete a million entries for %s", test.algName), func(t *testing.T) {
			// Prepare
			table, err := memhashmap.NewTable(memhashmap.TableConf{Name: "stress-" + test.algName, HashAlgorithm: test.hFunc})
			require.NoError(t, err, "create new table")
			defer table.Destroy()

			// Execute
			for i := 0; i < amount; i++ {
				entry, err := memhashmap.NewEntry(keys[i], payloads[i], memhashmap.Permission(i%4))
				require.NoError(t, err, "create entry")
				require.NoError(t, table.Insert(entry), "insert entry")
			}

			// Check
			assert.Equal(t, int64(amount), table.Len(), "all entries counted")
			assert.LessOrEqual(t, table.LoadFactor(), memhashmap.LoadFactorThreshold, "load factor kept")

			stat, err := table.Stat(false)
			require.NoError(t, err, "stat")
			assert.Equal(t, int64(amount), stat.Records, "all entries reachable")
			t.Logf("%s: buckets %d, used %d, longest chain %d", test.algName, stat.NumberOfBuckets, stat.UsedBuckets, stat.LongestChain)

			for i := 0; i < amount; i++ {
				entry, err := table.Get(keys[i])
				require.NoError(t, err, "get entry")
				require.Equal(t, payloads[i], entry.Payload, "correct payload")
			}

			for i := 0; i < amount; i += 2 {
				require.NoError(t, table.Delete(keys[i]), "delete entry")
			}
			assert.Equal(t, int64(amount/2), table.Len(), "half the entries left")
		})
	}
}

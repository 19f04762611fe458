package memhashmap

import (
	"fmt"
	"github.com/gostonefire/memhashmap/internal/arena"
	"github.com/gostonefire/memhashmap/internal/conf"
)

// rehash - Doubles the number of buckets and relocates every entry to the bucket its key hashes to at the
// new capacity. Entries stay in their arena slots, only bucket heads and successor links are rebuilt.
//
// The new bucket array and links are built on the side and swapped in only when every entry has been
// relocated. On error the table, including the hash algorithm's table size, is left as it was.
//
// Chain order is kept: the entries of an old bucket are spread over two new buckets (b and b + old capacity)
// and appended in the order they had, so the newest of several entries with the same key stays in front.
//   - pendingKey is the key of the entry about to be inserted, it must have a bucket at the new capacity as well
func (T *Table) rehash(pendingKey string) (err error) {
	oldCapacity := T.capacity
	newCapacity := oldCapacity * conf.GrowthFactor

	defer func() {
		if err != nil {
			T.metrics.rehashFailed.Inc()
		}
	}()

	if newCapacity > T.maximumCapacity {
		err = CapacityExceeded{msg: fmt.Sprintf("table can not grow beyond %d buckets", T.maximumCapacity)}
		return
	}

	T.hashAlgorithm.SetTableSize(newCapacity)
	defer func() {
		if err != nil {
			T.hashAlgorithm.SetTableSize(oldCapacity)
		}
	}()
	if tableSize := T.hashAlgorithm.GetTableSize(); tableSize != newCapacity {
		err = HashRange{msg: fmt.Sprintf("hash algorithm reports table size %d, expected %d", tableSize, newCapacity)}
		return
	}

	buckets := newBuckets(newCapacity)
	tails := newBuckets(newCapacity)
	links := make([]int32, T.entries.Slots())

	var relocated int64
	var bucketNo int64
	for _, head := range T.buckets {
		chain := arena.NewChain(T.entries, head)
		for chain.HasNext() {
			index, e := chain.Next()
			bucketNo, err = T.bucketNo(e.Key, newCapacity)
			if err != nil {
				err = fmt.Errorf("error while relocating entry during rehash: %w", err)
				return
			}

			links[index] = conf.NoEntry
			if tail := tails[bucketNo]; tail == conf.NoEntry {
				buckets[bucketNo] = index
			} else {
				links[tail] = index
			}
			tails[bucketNo] = index
			relocated++
		}
	}

	if _, err = T.bucketNo(pendingKey, newCapacity); err != nil {
		err = fmt.Errorf("error while placing pending entry during rehash: %w", err)
		return
	}

	// Every entry has a new place, commit
	for i := 0; i < T.entries.Slots(); i++ {
		index := int32(i)
		if T.entries.InUse(index) {
			T.entries.SetNext(index, links[index])
		}
	}
	T.buckets = buckets
	T.capacity = newCapacity

	T.metrics.rehashGrown.Inc()
	T.metrics.rehashRelocated.Observe(float64(relocated))
	T.metrics.capacity.Add(float64(newCapacity - oldCapacity))

	return
}

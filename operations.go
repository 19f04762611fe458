package memhashmap

import (
	"errors"
	"fmt"
	"github.com/gostonefire/memhashmap/internal/arena"
	"github.com/gostonefire/memhashmap/internal/conf"
	"github.com/prometheus/client_golang/prometheus"
	"time"
)

// Insert - Adds an entry as the new head of the chain in its key's bucket. Entries with a key that is
// already present are not deduplicated, the newest one shadows older ones for Get, Touch, Delete and Pop.
// If the insert would take the load factor above LoadFactorThreshold the table is rehashed first.
// The table stores a copy of the entry, the caller's Entry is not retained.
//   - entry is the entry to add, it must have a key
//
// It returns:
//   - err is of type InvalidArgument for a nil or destroyed table, a nil entry or an empty key, or the error
//     from a failed rehash (CapacityExceeded or HashRange). A failed insert leaves the table unchanged.
func (T *Table) Insert(entry *Entry) (err error) {
	if T == nil {
		err = InvalidArgument{msg: "table is nil"}
		return
	}

	defer func() {
		if err != nil {
			T.metrics.insertFailed.Inc()
		} else {
			T.metrics.insertInserted.Inc()
		}
	}()

	if err = T.validate(); err != nil {
		return
	}
	if entry == nil {
		err = InvalidArgument{msg: "entry can not be nil"}
		return
	}
	if entry.Key == "" {
		err = InvalidArgument{msg: "key can not be empty"}
		return
	}

	// Grow before adding if the new entry would take us above the threshold
	if float64(T.numItems+1)/float64(T.capacity) > conf.LoadFactorThreshold {
		err = T.rehash(entry.Key)
		if err != nil {
			err = fmt.Errorf("error while growing table before insert: %w", err)
			return
		}
	}

	bucketNo, err := T.bucketNo(entry.Key, T.capacity)
	if err != nil {
		return
	}

	index := T.entries.Alloc(entry.clone())
	T.entries.SetNext(index, T.buckets[bucketNo])
	T.buckets[bucketNo] = index
	T.numItems++
	T.metrics.items.Inc()

	return
}

// Get - Gets the entry that corresponds to the given key. If several entries share the key the most
// recently inserted one is returned.
//   - key is the key to look up
//
// It returns:
//   - entry is a copy of the stored entry, it shares no storage with the table
//   - err is either of type NoRecordFound, InvalidArgument for a nil or destroyed table or an empty key, or HashRange
func (T *Table) Get(key string) (entry Entry, err error) {
	if err = T.validateKey(key); err != nil {
		return
	}

	_, _, index, err := T.find(key)
	if err != nil {
		countMiss(err, T.metrics.getNotFound)
		return
	}
	T.metrics.getFound.Inc()

	entry = T.entries.Get(index).clone()

	return
}

// Touch - Sets the last activity time of the entry that corresponds to the given key, the one Get would return.
//   - key is the key of the entry to update
//   - at is the new last activity time
//
// It returns:
//   - err is either of type NoRecordFound, InvalidArgument for a nil or destroyed table or an empty key, or HashRange
func (T *Table) Touch(key string, at time.Time) (err error) {
	if err = T.validateKey(key); err != nil {
		return
	}

	_, _, index, err := T.find(key)
	if err != nil {
		return
	}

	T.entries.Get(index).LastActivity = at

	return
}

// Delete - Removes the entry that corresponds to the given key, the one Get would return.
//   - key is the key of the entry to remove
//
// It returns:
//   - err is nil if an entry was removed, of type NoRecordFound if there was none, of type InvalidArgument
//     for a nil or destroyed table or an empty key, or of type HashRange
func (T *Table) Delete(key string) (err error) {
	_, err = T.Pop(key)
	return
}

// Pop - Returns the entry that corresponds to key and removes it from the table.
//   - key is the key of the entry to remove
//
// It returns:
//   - entry is the removed entry, it is no longer referenced by the table
//   - err is either of type NoRecordFound, InvalidArgument for a nil or destroyed table or an empty key, or HashRange
func (T *Table) Pop(key string) (entry Entry, err error) {
	if err = T.validateKey(key); err != nil {
		return
	}

	bucketNo, prev, index, err := T.find(key)
	if err != nil {
		countMiss(err, T.metrics.deleteNotFound)
		return
	}

	// Relink chain past the removed entry
	next := T.entries.Next(index)
	if prev == conf.NoEntry {
		T.buckets[bucketNo] = next
	} else {
		T.entries.SetNext(prev, next)
	}

	entry = *T.entries.Get(index)
	T.entries.Free(index)
	T.numItems--
	T.metrics.items.Dec()
	T.metrics.deleteRemoved.Inc()

	return
}

// Range - Calls fn for every entry, bucket by bucket and head to tail within a bucket, until fn returns false.
// The table must not be modified from within fn.
//   - fn is called with a copy of each entry
//
// It returns:
//   - err is of type InvalidArgument for a nil or destroyed table
func (T *Table) Range(fn func(entry Entry) bool) (err error) {
	if err = T.validate(); err != nil {
		return
	}

	for _, head := range T.buckets {
		chain := arena.NewChain(T.entries, head)
		for chain.HasNext() {
			_, e := chain.Next()
			if !fn(e.clone()) {
				return
			}
		}
	}

	return
}

// Stat - Walks through the entire set of buckets and produce a HashMapStat struct with information.
// The HashMapStat.BucketDistribution slice has one entry per bucket, so for big tables it can be memory heavy.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of entries per bucket, false will set HashMapStat.BucketDistribution to nil.
func (T *Table) Stat(includeDistribution bool) (hashMapStat *HashMapStat, err error) {
	if err = T.validate(); err != nil {
		return
	}

	hms := HashMapStat{
		NumberOfBuckets: T.capacity,
		LoadFactor:      T.LoadFactor(),
	}
	if includeDistribution {
		hms.BucketDistribution = make([]int64, T.capacity)
	}

	// Iterate over every bucket
	for i, head := range T.buckets {
		var chainLength int64
		chain := arena.NewChain(T.entries, head)
		for chain.HasNext() {
			_, _ = chain.Next()
			chainLength++
		}

		hms.Records += chainLength
		if chainLength > 0 {
			hms.UsedBuckets++
		}
		if chainLength > hms.LongestChain {
			hms.LongestChain = chainLength
		}
		if includeDistribution {
			hms.BucketDistribution[i] = chainLength
		}
	}

	hashMapStat = &hms
	return
}

// GetBucketNo - Returns which bucket number that the given key results in at the current capacity
//   - key is the key of an entry
func (T *Table) GetBucketNo(key string) (bucketNo int64, err error) {
	if err = T.validateKey(key); err != nil {
		return
	}

	bucketNo, err = T.bucketNo(key, T.capacity)

	return
}

// validateKey - Returns an error of type InvalidArgument if the table is nil or destroyed or if key is empty
func (T *Table) validateKey(key string) (err error) {
	if err = T.validate(); err != nil {
		return
	}
	if key == "" {
		err = InvalidArgument{msg: "key can not be empty"}
	}

	return
}

// bucketNo - Returns the bucket number for key given by the hash algorithm, checked against tableSize.
// An algorithm that no longer reports tableSize has been resized by someone else, typically another
// table sharing the instance, and its bucket numbers can not be trusted.
func (T *Table) bucketNo(key string, tableSize int64) (bucketNo int64, err error) {
	if size := T.hashAlgorithm.GetTableSize(); size != tableSize {
		err = HashRange{msg: fmt.Sprintf("hash algorithm reports table size %d, expected %d, is it shared with another table?", size, tableSize)}
		return
	}

	bucketNo = T.hashAlgorithm.HashFunc1([]byte(key))
	if bucketNo < 0 || bucketNo >= tableSize {
		err = HashRange{msg: fmt.Sprintf("received bucket number %d from hash algorithm is outside permitted range 0 to %d", bucketNo, tableSize-1)}
		return
	}

	return
}

// find - Searches the chain of key's bucket head to tail for the first entry with a matching key.
//
// It returns:
//   - bucketNo is the bucket the key belongs to
//   - prev is the arena index of the entry before the match, conf.NoEntry if the match is the chain head
//   - index is the arena index of the match
//   - err is either of type NoRecordFound or HashRange
func (T *Table) find(key string) (bucketNo int64, prev, index int32, err error) {
	bucketNo, err = T.bucketNo(key, T.capacity)
	if err != nil {
		return
	}

	prev = conf.NoEntry
	chain := arena.NewChain(T.entries, T.buckets[bucketNo])
	for chain.HasNext() {
		i, e := chain.Next()
		if e.Key == key {
			index = i
			return
		}
		prev = i
	}

	index = conf.NoEntry
	err = NoRecordFound{}

	return
}

// countMiss - Increments notFound if err is of type NoRecordFound
func countMiss(err error, notFound prometheus.Counter) {
	if errors.Is(err, NoRecordFound{}) {
		notFound.Inc()
	}
}

package memhashmap

import (
	"fmt"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/arena"
	"github.com/gostonefire/memhashmap/internal/conf"
	"github.com/gostonefire/memhashmap/internal/hash"
	"github.com/gostonefire/memhashmap/internal/utils"
)

// LoadFactorThreshold - Highest ratio of entries to buckets a table keeps after an insert
const LoadFactorThreshold = conf.LoadFactorThreshold

// InitialCapacity - Number of buckets in a table created with a zero TableConf.InitialCapacity
const InitialCapacity = conf.InitialCapacity

// MaximumCapacity - Number of buckets a table created with a zero TableConf.MaximumCapacity may grow to
const MaximumCapacity = conf.MaximumCapacity

// TableConf - Is a struct used in the call to NewTable holding configuration for the new table.
//   - Name is used as label on the table's metrics, empty gives "default"
//   - InitialCapacity is the number of buckets to start with, it is rounded up to a power of 2, zero gives InitialCapacity
//   - MaximumCapacity is the number of buckets the table may grow to, it is rounded up to a power of 2, zero gives MaximumCapacity
//   - HashAlgorithm is an optional custom hash algorithm following the hashfunc.HashAlgorithm interface, nil gives the internal djb2 algorithm
//     An instance must not be shared between tables, every table needs its own.
type TableConf struct {
	Name            string
	InitialCapacity int64
	MaximumCapacity int64
	HashAlgorithm   hashfunc.HashAlgorithm
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of entries stored
//   - NumberOfBuckets is the current capacity
//   - UsedBuckets is the number of buckets holding at least one entry
//   - LongestChain is the number of entries in the longest chain
//   - LoadFactor is Records divided by NumberOfBuckets
//   - BucketDistribution is the number of entries stored in each bucket
type HashMapStat struct {
	Records            int64
	NumberOfBuckets    int64
	UsedBuckets        int64
	LongestChain       int64
	LoadFactor         float64
	BucketDistribution []int64
}

// Table - The main implementation struct, a separate chaining hash table of entries.
// Entries live in an index addressed arena and every bucket holds the arena index of its chain head.
//
// A Table is not safe for concurrent use. Callers sharing one between goroutines must guard every
// call, reads included, with one exclusive lock.
type Table struct {
	name              string
	buckets           []int32
	entries           *arena.Arena[Entry]
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	capacity          int64
	maximumCapacity   int64
	numItems          int64
	metrics           *tableMetrics
}

// NewTable - Returns a new, empty, table.
//   - tableConf is a TableConf struct with the configuration for the table, its zero value gives a table of InitialCapacity buckets using the internal hash algorithm
//
// It returns:
//   - table is a pointer to a Table struct, nil if something went wrong
//   - err is of type InvalidArgument for invalid capacities or of type HashRange if a custom hash algorithm does not accept the table size
func NewTable(tableConf TableConf) (table *Table, err error) {
	initialCapacity := tableConf.InitialCapacity
	if initialCapacity == 0 {
		initialCapacity = conf.InitialCapacity
	}
	maximumCapacity := tableConf.MaximumCapacity
	if maximumCapacity == 0 {
		maximumCapacity = conf.MaximumCapacity
	}

	// Check if capacities are valid
	if initialCapacity < 0 || initialCapacity > conf.MaximumCapacity {
		err = InvalidArgument{msg: fmt.Sprintf("initial capacity must be between 1 and %d", conf.MaximumCapacity)}
		return
	}
	if maximumCapacity < 0 || maximumCapacity > conf.MaximumCapacity {
		err = InvalidArgument{msg: fmt.Sprintf("maximum capacity must be between 1 and %d", conf.MaximumCapacity)}
		return
	}
	capacity := utils.RoundUp2(initialCapacity)
	maximumCapacity = utils.RoundUp2(maximumCapacity)
	if capacity > maximumCapacity {
		err = InvalidArgument{msg: "initial capacity can not be bigger than maximum capacity"}
		return
	}

	// If no HashAlgorithm was given then use the default internal
	hashAlgorithm := tableConf.HashAlgorithm
	var internalAlg bool
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewDJBHashAlgorithm(capacity)
		internalAlg = true
	} else {
		hashAlgorithm.SetTableSize(capacity)
	}
	if tableSize := hashAlgorithm.GetTableSize(); tableSize != capacity {
		err = HashRange{msg: fmt.Sprintf("hash algorithm reports table size %d, expected %d", tableSize, capacity)}
		return
	}

	name := tableConf.Name
	if name == "" {
		name = conf.DefaultTableName
	}

	table = &Table{
		name:              name,
		buckets:           newBuckets(capacity),
		entries:           arena.New[Entry](int(capacity)),
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
		capacity:          capacity,
		maximumCapacity:   maximumCapacity,
		metrics:           newTableMetrics(name),
	}
	table.metrics.capacity.Add(float64(capacity))

	return
}

// Destroy - Releases every entry and the bucket array. After Destroy every operation on the table
// returns an error of type InvalidArgument. It is safe to call on a nil table and more than once.
func (T *Table) Destroy() {
	if T == nil || T.buckets == nil {
		return
	}

	T.metrics.items.Sub(float64(T.numItems))
	T.metrics.capacity.Sub(float64(T.capacity))

	T.entries.Reset()
	T.buckets = nil
	T.capacity = 0
	T.numItems = 0
}

// Name - Returns the name the table was created with
func (T *Table) Name() string {
	if T == nil {
		return ""
	}
	return T.name
}

// Len - Returns the number of entries stored
func (T *Table) Len() int64 {
	if T == nil {
		return 0
	}
	return T.numItems
}

// Capacity - Returns the current number of buckets, zero for a destroyed table
func (T *Table) Capacity() int64 {
	if T == nil {
		return 0
	}
	return T.capacity
}

// LoadFactor - Returns the number of entries divided by the number of buckets
func (T *Table) LoadFactor() float64 {
	if T == nil || T.capacity == 0 {
		return 0
	}
	return float64(T.numItems) / float64(T.capacity)
}

// InternalAlgorithm - Returns true if the table uses the internal hash algorithm
func (T *Table) InternalAlgorithm() bool {
	return T != nil && T.internalAlgorithm
}

// validate - Returns an error of type InvalidArgument if the table is nil or has been destroyed
func (T *Table) validate() (err error) {
	if T == nil {
		err = InvalidArgument{msg: "table is nil"}
		return
	}
	if T.buckets == nil {
		err = InvalidArgument{msg: "table has no bucket array, it may have been destroyed"}
		return
	}

	return
}

// newBuckets - Returns a bucket array of capacity empty buckets
func newBuckets(capacity int64) (buckets []int32) {
	buckets = make([]int32, capacity)
	for i := range buckets {
		buckets[i] = conf.NoEntry
	}

	return
}

package hashfunc

import (
	"github.com/cespare/xxhash/v2"
)

// XXHashAlgorithm - Bucket selection algorithm using 64 bit xxhash over the key and then applying
// bucket = hash & (tableSize - 1). It spreads short, similar keys better than the internal default
// and can be given to a Table through TableConf.HashAlgorithm.
type XXHashAlgorithm struct {
	tableSize int64
}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance. The table size is set by the
// Table when it is created, so there is no need to give one here.
func NewXXHashAlgorithm() *XXHashAlgorithm {
	return &XXHashAlgorithm{tableSize: 1}
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the table will address, always a power of 2
func (X *XXHashAlgorithm) SetTableSize(tableSize int64) {
	X.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (X *XXHashAlgorithm) HashFunc1(key []byte) int64 {
	h := xxhash.Sum64(key)
	return int64(h & uint64(X.tableSize-1))
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (X *XXHashAlgorithm) GetTableSize() int64 {
	return X.tableSize
}

package hash

import (
	"github.com/gostonefire/memhashmap/internal/utils"
)

// djbSeed - Initial value of the djb2 hash
const djbSeed uint64 = 5381

// DJB - Returns the djb2 hash of key (h = h * 33 + c for every byte, starting at 5381).
// It is a pure function of the key bytes and keeps no state between calls.
func DJB(key []byte) uint64 {
	h := djbSeed
	for _, c := range key {
		h = (h << 5) + h + uint64(c)
	}

	return h
}

// DJBHashAlgorithm - The internally used bucket selection algorithm is implemented using DJB to
// create a hash value over the key and then applying bucket = hash & (tableSize - 1) to get the bucket number,
// where tableSize is the nearest bigger exponent of 2 of the requested table size.
type DJBHashAlgorithm struct {
	tableSize int64
}

// NewDJBHashAlgorithm - Returns a pointer to a new DJBHashAlgorithm instance
func NewDJBHashAlgorithm(tableSize int64) *DJBHashAlgorithm {
	ha := &DJBHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest bigger exponent of 2 of the requested table size.
//   - tableSize is the number of buckets the table will address
func (D *DJBHashAlgorithm) SetTableSize(tableSize int64) {
	D.tableSize = utils.RoundUp2(tableSize)
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (D *DJBHashAlgorithm) HashFunc1(key []byte) int64 {
	h := DJB(key)
	return int64(h & uint64(D.tableSize-1))
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (D *DJBHashAlgorithm) GetTableSize() int64 {
	return D.tableSize
}

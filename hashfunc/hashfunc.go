package hashfunc

// HashAlgorithm - Interface that permits an implementation using the Table to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
//
// An instance carries the table size of the one table using it and must not be given to several tables.
// A table whose algorithm has been resized from elsewhere refuses to use it and returns a HashRange error.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called both when creating a new table and every time the table grows in a rehash. Hence, if a
	// custom hash algorithm is supplied that already has a table size, it will be overwritten by the number
	// of buckets the table is about to address.
	//   - tableSize is the number of buckets the table will address, always a power of 2
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream,
	// and if it happens during a rehash the rehash is abandoned leaving the table as it was.
	HashFunc1(key []byte) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting
	// It must return exactly the table size given in the latest call to SetTableSize, the table verifies
	// this every time before relying on the algorithm.
	GetTableSize() int64
}

package hashfunc

// HashAlgorithm - Interface that permits an implementation using the ChainHashMap to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called once when the ChainHashMap is created, the table size is then fixed for the life of the map.
	//   - tableSize is the number of buckets the map was asked for
	SetTableSize(tableSize int64)

	// BucketIndex - Given key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	// The same key must always give the same index.
	BucketIndex(key string) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting.
	// The ChainHashMap allocates exactly this many buckets, so an implementation that rounds the requested size
	// (to a power of 2, a prime etc.) must report the rounded value here.
	GetTableSize() int64
}

package hash

import (
	"github.com/gostonefire/chainhashmap/internal/utils"
)

// SumHashAlgorithm - The internally used bucket selection algorithm sums the character codes of the key
// (see utils.SumOfCodes) and applies bucket = sum % tableSize. Keys that are anagrams of each other always share a bucket.
type SumHashAlgorithm struct {
	tableSize int64
}

// NewSumHashAlgorithm - Returns a pointer to a new SumHashAlgorithm instance
func NewSumHashAlgorithm(tableSize int64) *SumHashAlgorithm {
	ha := &SumHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// The table size is used as is, there is no rounding.
//   - tableSize is the number of buckets the map will address
func (S *SumHashAlgorithm) SetTableSize(tableSize int64) {
	S.tableSize = tableSize
}

// BucketIndex - Given key it generates an index (bucket) between 0 and table size - 1
func (S *SumHashAlgorithm) BucketIndex(key string) int64 {
	return utils.SumOfCodes(key) % S.tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (S *SumHashAlgorithm) GetTableSize() int64 {
	return S.tableSize
}

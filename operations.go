package chainhashmap

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/entry"
	"github.com/gostonefire/chainhashmap/internal/chain"
	"github.com/gostonefire/chainhashmap/maperr"
	"github.com/pkg/errors"
)

// Get - Gets the entry stored under key.
// The returned entry is the stored one, changes made through it are visible in the map.
//   - key is the identifier (entry id) to look for
//
// It returns:
//   - e is the matching entry if found
//   - err is either wrapping maperr.KeyNotFound or a standard error, if something went wrong
func (C *ChainHashMap) Get(key string) (e *entry.Entry, err error) {
	bucketNo, err := C.GetBucketNo(key)
	if err != nil {
		return
	}

	node := C.buckets[bucketNo].FindByKey(key)
	if node == nil {
		err = errors.Wrapf(maperr.KeyNotFound{}, "get %q from bucket %d", key, bucketNo)
		return
	}

	e = node.Entry()

	return
}

// Set - Updates the name of an existing entry or adds a new entry if no existing is found with same key.
// New entries are pushed to the front of their bucket chain.
//   - key is the identifier (entry id)
//   - name is the name to set
//
// It returns:
//   - err is a standard error, if something went wrong
func (C *ChainHashMap) Set(key, name string) (err error) {
	bucketNo, err := C.GetBucketNo(key)
	if err != nil {
		return
	}
	bucket := C.buckets[bucketNo]

	if existing := bucket.FindByKey(key); existing != nil {
		existing.Entry().SetName(name)
		C.logger.Debug().Str("key", key).Int64("bucket", bucketNo).Msg("updated entry")
		return
	}

	node, err := chain.NewNode(entry.NewEntry(key, name))
	if err != nil {
		return
	}

	err = bucket.PushFront(node)
	if err != nil {
		err = errors.Wrapf(err, "set %q in bucket %d", key, bucketNo)
		return
	}
	C.size++

	C.logger.Debug().Str("key", key).Int64("bucket", bucketNo).Int64("size", C.size).Msg("inserted entry")

	return
}

// Delete - Removes the entry stored under key.
//   - key is the identifier (entry id) of the entry to remove
//
// It returns:
//   - err is either wrapping maperr.KeyNotFound or a standard error, if something went wrong
func (C *ChainHashMap) Delete(key string) (err error) {
	bucketNo, err := C.GetBucketNo(key)
	if err != nil {
		return
	}
	bucket := C.buckets[bucketNo]

	// Check presence first so that chain level errors are never mistaken for a missing key
	if bucket.FindByKey(key) == nil {
		err = errors.Wrapf(maperr.KeyNotFound{}, "delete %q from bucket %d", key, bucketNo)
		return
	}

	_, err = bucket.PopByKey(key)
	if err != nil {
		err = errors.Wrapf(err, "delete %q from bucket %d", key, bucketNo)
		return
	}
	C.size--

	C.logger.Debug().Str("key", key).Int64("bucket", bucketNo).Int64("size", C.size).Msg("deleted entry")

	return
}

// Contains - Returns true if an entry is stored under key
func (C *ChainHashMap) Contains(key string) bool {
	bucketNo, err := C.GetBucketNo(key)
	if err != nil {
		return false
	}

	return C.buckets[bucketNo].FindByKey(key) != nil
}

// Len - Returns the number of entries in the map
func (C *ChainHashMap) Len() int64 {
	return C.size
}

// GetBucketNo - Returns which bucket number that the given key results in
//   - key is the identifier of an entry
func (C *ChainHashMap) GetBucketNo(key string) (bucketNo int64, err error) {
	bucketNo = C.hashAlgorithm.BucketIndex(key)
	if bucketNo < 0 || bucketNo >= C.numberOfBuckets {
		err = fmt.Errorf("received bucket number %d from hash algorithm is outside permitted range", bucketNo)
		return
	}

	return
}

// GetEntryBucketNo - Returns which bucket number that the given entry results in, using its ID as key
//   - e is the entry to locate
func (C *ChainHashMap) GetEntryBucketNo(e *entry.Entry) (bucketNo int64, err error) {
	if e == nil {
		err = maperr.InvalidEntry{}
		return
	}

	return C.GetBucketNo(e.ID())
}

// Stat - Walks through every chain and produces a HashMapStat struct with information.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of entries per bucket, false will set HashMapStat.BucketDistribution to nil.
func (C *ChainHashMap) Stat(includeDistribution bool) (hashMapStat *HashMapStat, err error) {
	var hms HashMapStat
	var iter *chain.Iterator
	var n int64

	if includeDistribution {
		hms.BucketDistribution = make([]int64, C.numberOfBuckets)
	}

	for i, bucket := range C.buckets {
		n = 0
		iter = bucket.Iterate(true)
		for iter.HasNext() {
			_, err = iter.Next()
			if err != nil {
				return
			}
			n++
		}

		hms.Records += n
		if n == 0 {
			hms.EmptyBuckets++
		}
		if n > hms.LongestChain {
			hms.LongestChain = n
		}
		if includeDistribution {
			hms.BucketDistribution[i] = n
		}
	}

	hashMapStat = &hms
	return
}

// Ranked - Returns all entries ordered by descending score, see entry.QuicksortDescending
func (C *ChainHashMap) Ranked() (entries []*entry.Entry, err error) {
	all := make([]*entry.Entry, 0, C.size)
	var iter *chain.Iterator
	var node *chain.Node

	for _, bucket := range C.buckets {
		iter = bucket.Iterate(true)
		for iter.HasNext() {
			node, err = iter.Next()
			if err != nil {
				return
			}
			all = append(all, node.Entry())
		}
	}

	entries = entry.QuicksortDescending(all)

	return
}

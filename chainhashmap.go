package chainhashmap

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/hashfunc"
	"github.com/gostonefire/chainhashmap/internal/chain"
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/gostonefire/chainhashmap/internal/hash"
	"github.com/rs/zerolog"
)

// Config - Is a struct passed in the call to NewChainHashMap
//   - BucketCount is the number of buckets to create, 0 (zero) gives the default of 10
//   - HashAlgorithm is an optional custom bucket selection algorithm, nil gives the internal sum of character codes
//   - Logger is an optional logger receiving debug events for every mutation, nil disables logging
type Config struct {
	BucketCount   int64
	HashAlgorithm hashfunc.HashAlgorithm
	Logger        *zerolog.Logger
}

// HashMapInfo - Information structure containing some information about the hash map created
//   - NumberOfBuckets is the total number of buckets, as reported by the hash algorithm
//   - InternalAlgorithm is true if the internal hash algorithm is used
type HashMapInfo struct {
	NumberOfBuckets   int64
	InternalAlgorithm bool
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of entries found when walking all chains
//   - LongestChain is the length of the longest chain
//   - EmptyBuckets is the number of buckets without any entry
//   - BucketDistribution is the number of entries stored in each bucket
type HashMapStat struct {
	Records            int64
	LongestChain       int64
	EmptyBuckets       int64
	BucketDistribution []int64
}

// ChainHashMap - The main implementation struct.
// Every bucket is a chain.Chain and the number of buckets is fixed when the map is created.
// A ChainHashMap is not safe for concurrent use.
type ChainHashMap struct {
	buckets           []*chain.Chain
	numberOfBuckets   int64
	size              int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	logger            zerolog.Logger
}

// NewChainHashMap - Returns a new hash map with all buckets created and empty.
//   - config is a Config struct, its zero value gives 10 buckets with the internal hash algorithm and no logging
//
// It returns:
//   - chainHashMap is a pointer to a ChainHashMap struct
//   - hashMapInfo is a HashMapInfo struct containing some data regarding the hash map created.
//   - err is a normal go Error which should be nil if everything went ok
func NewChainHashMap(config Config) (chainHashMap *ChainHashMap, hashMapInfo HashMapInfo, err error) {
	// Check if bucket count is valid
	if config.BucketCount < 0 {
		err = fmt.Errorf("bucket count must be a positive value or 0 (zero) for default")
		return
	}
	if config.BucketCount == 0 {
		config.BucketCount = conf.DefaultBucketCount
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if config.HashAlgorithm == nil {
		config.HashAlgorithm = hash.NewSumHashAlgorithm(config.BucketCount)
		internalAlg = true
	} else {
		config.HashAlgorithm.SetTableSize(config.BucketCount)
	}

	numberOfBuckets := config.HashAlgorithm.GetTableSize()
	if numberOfBuckets <= 0 {
		err = fmt.Errorf("hash algorithm reports a table size of %d, must be higher than 0 (zero)", numberOfBuckets)
		return
	}

	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = *config.Logger
	}

	buckets := make([]*chain.Chain, numberOfBuckets)
	for i := range buckets {
		buckets[i] = chain.NewChain()
	}

	chainHashMap = &ChainHashMap{
		buckets:           buckets,
		numberOfBuckets:   numberOfBuckets,
		hashAlgorithm:     config.HashAlgorithm,
		internalAlgorithm: internalAlg,
		logger:            logger,
	}

	hashMapInfo = HashMapInfo{
		NumberOfBuckets:   numberOfBuckets,
		InternalAlgorithm: internalAlg,
	}

	return
}

// NewFromEnv - Returns a new hash map configured from the environment.
// CHAINHASHMAP_BUCKETS sets the bucket count and CHAINHASHMAP_LOG_LEVEL (a zerolog level such as "debug") enables
// logging to stderr.
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface.
func NewFromEnv(hashAlgorithm hashfunc.HashAlgorithm) (chainHashMap *ChainHashMap, hashMapInfo HashMapInfo, err error) {
	logger, err := conf.LoggerFromEnv()
	if err != nil {
		return
	}

	return NewChainHashMap(Config{
		BucketCount:   conf.BucketCountFromEnv(),
		HashAlgorithm: hashAlgorithm,
		Logger:        &logger,
	})
}

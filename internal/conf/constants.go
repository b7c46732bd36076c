package conf

// DefaultBucketCount - Number of buckets used when none is given
const DefaultBucketCount int64 = 10

// BucketCountEnv - Environment variable overriding the bucket count in NewFromEnv
const BucketCountEnv string = "CHAINHASHMAP_BUCKETS"

// LogLevelEnv - Environment variable enabling logging to stderr at the given zerolog level in NewFromEnv
const LogLevelEnv string = "CHAINHASHMAP_LOG_LEVEL"

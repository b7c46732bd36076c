package conf

import (
	"fmt"
	"github.com/rs/zerolog"
	"github.com/xyproto/env/v2"
	"os"
)

// BucketCountFromEnv - Returns the bucket count from BucketCountEnv, or DefaultBucketCount if it is unset or not a number.
// The environment is reloaded on every call.
func BucketCountFromEnv() int64 {
	env.Load()
	return int64(env.Int(BucketCountEnv, int(DefaultBucketCount)))
}

// LoggerFromEnv - Returns a logger writing to stderr at the level given in LogLevelEnv.
// An unset variable gives a disabled logger and an unknown level gives an error.
func LoggerFromEnv() (logger zerolog.Logger, err error) {
	env.Load()
	levelName := env.Str(LogLevelEnv)
	if levelName == "" {
		logger = zerolog.Nop()
		return
	}

	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		err = fmt.Errorf("invalid %s: %s", LogLevelEnv, err)
		return
	}

	logger = zerolog.New(os.Stderr).Level(level).With().Timestamp().Str("component", "chainhashmap").Logger()

	return
}

//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestSumHashAlgorithm_GetTableSize(t *testing.T) {
	t.Run("returns table size without rounding", func(t *testing.T) {
		// Prepare
		h := NewSumHashAlgorithm(10)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, int64(10), tableSize, "correct tableSize value")
	})
}

func TestSumHashAlgorithm_BucketIndex(t *testing.T) {
	t.Run("creates a valid bucket number", func(t *testing.T) {
		// Prepare
		h := NewSumHashAlgorithm(10)

		// Execute
		bucketNo := h.BucketIndex("And12rew")

		// Check
		assert.Equal(t, int64(8), bucketNo, "create a valid bucket number")
	})

	t.Run("keys with equal character sums share bucket", func(t *testing.T) {
		// Prepare
		h := NewSumHashAlgorithm(10)

		// Execute
		a := h.BucketIndex("123")
		b := h.BucketIndex("321")

		// Check
		assert.Equal(t, int64(0), a, "correct bucket for 123")
		assert.Equal(t, a, b, "same bucket")
	})

	t.Run("stays within table", func(t *testing.T) {
		// Prepare
		h := NewSumHashAlgorithm(7)
		keys := []string{"", "a", "zzzzzzzzzz", "Karl Theodor", "é", "1_uid"}

		// Execute and Check
		for _, key := range keys {
			bucketNo := h.BucketIndex(key)
			assert.GreaterOrEqualf(t, bucketNo, int64(0), "not negative for %q", key)
			assert.Lessf(t, bucketNo, h.GetTableSize(), "less than table size for %q", key)
			assert.Equalf(t, bucketNo, h.BucketIndex(key), "stable for %q", key)
		}
	})
}

func TestSumHashAlgorithm_SetTableSize(t *testing.T) {
	t.Run("sets table size", func(t *testing.T) {
		// Prepare
		h := NewSumHashAlgorithm(10)

		// Execute
		h.SetTableSize(16 + 7)

		// Check
		assert.Equal(t, int64(23), h.GetTableSize(), "correct tableSize value")
		assert.Equal(t, int64(150%23), h.BucketIndex("123"), "bucket follows new size")
	})
}

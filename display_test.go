//go:build unit

package chainhashmap

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestChainHashMap_Display(t *testing.T) {
	t.Run("displays non-empty buckets", func(t *testing.T) {
		// Prepare
		chm := newTestHashMap(t)
		require.NoError(t, chm.Set("123", "John"), "set 123")
		require.NoError(t, chm.Set("321", "Karl"), "set 321")
		var buf bytes.Buffer

		// Execute
		err := chm.Display(&buf)

		// Check
		assert.NoError(t, err, "display")
		out := buf.String()
		assert.Contains(t, out, "Bucket", "has header")
		for _, key := range []string{"And12rew", "Raf34el", "123", "321"} {
			assert.Containsf(t, out, key, "%s displayed", key)
		}
		assert.Less(t, strings.Index(out, "321"), strings.Index(out, "123"), "chain order kept")
	})

	t.Run("displays empty hash map", func(t *testing.T) {
		// Prepare
		chm, _, err := NewChainHashMap(Config{})
		require.NoError(t, err, "create hash map")
		var buf bytes.Buffer

		// Execute
		err = chm.Display(&buf)

		// Check
		assert.NoError(t, err, "display")
		assert.Equal(t, "the hash map is empty\n", buf.String(), "empty message")
	})
}

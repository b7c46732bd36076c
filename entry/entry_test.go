//go:build unit

package entry

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewEntry(t *testing.T) {
	t.Run("creates entry with zero score", func(t *testing.T) {
		// Execute
		e := NewEntry("1_uid", "Andrew")

		// Check
		assert.Equal(t, "1_uid", e.ID(), "correct id")
		assert.Equal(t, "Andrew", e.Name(), "correct name")
		assert.Zero(t, e.Score(), "score is zero")
	})

	t.Run("creates entry with initial score", func(t *testing.T) {
		// Execute
		e := NewEntryWithScore("2_uid", "Rafael", 42)

		// Check
		assert.Equal(t, "2_uid", e.ID(), "correct id")
		assert.Equal(t, "Rafael", e.Name(), "correct name")
		assert.Equal(t, int64(42), e.Score(), "correct score")
	})
}

func TestEntry_SetScore(t *testing.T) {
	t.Run("ignores non positive scores", func(t *testing.T) {
		// Prepare
		e := NewEntryWithScore("1", "Andrew", 10)

		// Execute
		e.SetScore(-5)
		e.SetScore(0)

		// Check
		assert.Equal(t, int64(10), e.Score(), "score unchanged")
	})

	t.Run("sets positive score", func(t *testing.T) {
		// Prepare
		e := NewEntryWithScore("1", "Andrew", 10)
		e.SetScore(-5)
		e.SetScore(0)

		// Execute
		e.SetScore(50)

		// Check
		assert.Equal(t, int64(50), e.Score(), "score updated")
	})
}

func TestEntry_SetName(t *testing.T) {
	t.Run("sets name", func(t *testing.T) {
		// Prepare
		e := NewEntry("1", "Andrew")

		// Execute
		e.SetName("Andrii")

		// Check
		assert.Equal(t, "Andrii", e.Name(), "name updated")
		assert.Equal(t, "1", e.ID(), "id untouched")
	})
}

func TestEntry_Fingerprint(t *testing.T) {
	t.Run("keys with same characters have same fingerprint", func(t *testing.T) {
		// Prepare
		a := NewEntry("123", "John")
		b := NewEntry("321", "Karl")

		// Execute and Check
		assert.Equal(t, int64(150), a.Fingerprint(), "correct fingerprint")
		assert.Equal(t, a.Fingerprint(), b.Fingerprint(), "same fingerprint")
	})
}

func TestEntry_Comparisons(t *testing.T) {
	t.Run("compares by score only", func(t *testing.T) {
		// Prepare
		low := NewEntryWithScore("a", "Zed", 1)
		high := NewEntryWithScore("b", "Amy", 2)

		// Execute and Check
		assert.True(t, low.Less(high))
		assert.True(t, low.LessOrEqual(high))
		assert.True(t, high.Greater(low))
		assert.True(t, high.GreaterOrEqual(low))
		assert.True(t, low.NotEqual(high))
		assert.False(t, low.Equal(high))
		assert.Equal(t, -1, low.Compare(high))
		assert.Equal(t, 1, high.Compare(low))
	})

	t.Run("different ids with same score are equal", func(t *testing.T) {
		// Prepare
		a := NewEntryWithScore("a", "Andrew", 7)
		b := NewEntryWithScore("b", "Rafael", 7)

		// Execute and Check
		assert.True(t, a.Equal(b), "equal by score")
		assert.False(t, a.NotEqual(b), "not unequal by score")
		assert.True(t, a.LessOrEqual(b))
		assert.True(t, a.GreaterOrEqual(b))
		assert.Zero(t, a.Compare(b))
		assert.False(t, a.SameRecord(b), "still different records")
	})

	t.Run("same id is same record regardless of score", func(t *testing.T) {
		// Prepare
		a := NewEntryWithScore("a", "Andrew", 7)
		b := NewEntryWithScore("a", "Bob", 99)

		// Execute and Check
		assert.True(t, a.SameRecord(b), "same record")
		assert.False(t, a.Equal(b), "different scores")
		assert.False(t, a.SameRecord(nil), "nil is never the same record")
	})
}

func TestEntry_String(t *testing.T) {
	t.Run("formats entry", func(t *testing.T) {
		// Prepare
		e := NewEntryWithScore("1_uid", "Andrew", 3)

		// Execute
		s := e.String()

		// Check
		assert.Equal(t, "Entry(name=Andrew, id=1_uid, score=3)", s, "correct format")
	})
}

package entry

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/internal/utils"
)

// Entry - The value object stored in the hash map.
// The id is fixed at creation while name and score may change. Two entries are the same record if their ids are
// equal, but all comparison functions (Equal, Less etc.) look at the score only.
type Entry struct {
	id    string
	name  string
	score int64
}

// NewEntry - Returns a pointer to a new Entry with a zero score
//   - id is the unique identifier of the entry, no format validation is done
//   - name is the display name of the entry
func NewEntry(id, name string) *Entry {
	return &Entry{id: id, name: name}
}

// NewEntryWithScore - Returns a pointer to a new Entry with an initial score.
// The initial score is taken as is, the positive-only rule applies to SetScore.
func NewEntryWithScore(id, name string, score int64) *Entry {
	return &Entry{id: id, name: name, score: score}
}

// ID - Returns the identifier of the entry
func (E *Entry) ID() string {
	return E.id
}

// Name - Returns the name of the entry
func (E *Entry) Name() string {
	return E.name
}

// Score - Returns the current score of the entry
func (E *Entry) Score() int64 {
	return E.score
}

// SetName - Sets a new name
func (E *Entry) SetName(name string) {
	E.name = name
}

// SetScore - Sets a new score if it is higher than 0 (zero), any other value is ignored without error.
func (E *Entry) SetScore(score int64) {
	if score > 0 {
		E.score = score
	}
}

// Fingerprint - Returns the sum of the character codes of the id
func (E *Entry) Fingerprint() int64 {
	return utils.SumOfCodes(E.id)
}

// SameRecord - Returns true if other has the same id
func (E *Entry) SameRecord(other *Entry) bool {
	return other != nil && E.id == other.id
}

// Compare - Returns -1, 0 or 1 when the score is less than, equal to or greater than the score of other
func (E *Entry) Compare(other *Entry) int {
	switch {
	case E.score < other.score:
		return -1
	case E.score > other.score:
		return 1
	default:
		return 0
	}
}

// Equal - Returns true if both entries have the same score.
// Entries with different ids but equal scores are Equal, use SameRecord to compare identity.
func (E *Entry) Equal(other *Entry) bool {
	return E.score == other.score
}

// NotEqual - Returns true if the scores differ
func (E *Entry) NotEqual(other *Entry) bool {
	return E.score != other.score
}

// Less - Returns true if the score is lower than the score of other
func (E *Entry) Less(other *Entry) bool {
	return E.score < other.score
}

// LessOrEqual - Returns true if the score is lower than or equal to the score of other
func (E *Entry) LessOrEqual(other *Entry) bool {
	return E.score <= other.score
}

// Greater - Returns true if the score is higher than the score of other
func (E *Entry) Greater(other *Entry) bool {
	return E.score > other.score
}

// GreaterOrEqual - Returns true if the score is higher than or equal to the score of other
func (E *Entry) GreaterOrEqual(other *Entry) bool {
	return E.score >= other.score
}

// String - Implements fmt.Stringer
func (E *Entry) String() string {
	return fmt.Sprintf("Entry(name=%s, id=%s, score=%d)", E.name, E.id, E.score)
}

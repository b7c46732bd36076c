package chain

import (
	"github.com/gostonefire/chainhashmap/entry"
	"github.com/gostonefire/chainhashmap/maperr"
)

// Node - Wraps one entry.Entry with the links to its neighbours in a Chain.
// The links are navigational only, the Chain owns the sequence. While a node is linked, chain points at its owner,
// and all three are cleared when the node is detached.
type Node struct {
	entry *entry.Entry
	prev  *Node
	next  *Node
	chain *Chain
}

// NewNode - Returns a pointer to a new unlinked Node
//   - e is the entry to wrap, nil results in an error of type maperr.InvalidEntry
func NewNode(e *entry.Entry) (node *Node, err error) {
	if e == nil {
		err = maperr.InvalidEntry{}
		return
	}

	node = &Node{entry: e}

	return
}

// Entry - Returns the wrapped entry
func (N *Node) Entry() *entry.Entry {
	return N.entry
}

// Key - Returns the id of the wrapped entry
func (N *Node) Key() string {
	return N.entry.ID()
}

// Prev - Returns the previous node or nil if N is the head (or unlinked)
func (N *Node) Prev() *Node {
	return N.prev
}

// SetPrev - Sets the previous link
func (N *Node) SetPrev(prev *Node) {
	N.prev = prev
}

// Next - Returns the next node or nil if N is the tail (or unlinked)
func (N *Node) Next() *Node {
	return N.next
}

// SetNext - Sets the next link
func (N *Node) SetNext(next *Node) {
	N.next = next
}

// IsLinked - Returns true if the node currently belongs to a chain
func (N *Node) IsLinked() bool {
	return N.chain != nil
}

// Equals - Returns true if other is the same node, wraps the same entry or has the same key
func (N *Node) Equals(other *Node) bool {
	if other == nil || other.entry == nil {
		return false
	}

	return N == other || N.entry == other.entry || N.Key() == other.Key()
}

// detach - Clears links and owner
func (N *Node) detach() {
	N.prev = nil
	N.next = nil
	N.chain = nil
}

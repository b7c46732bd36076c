package chain

import (
	"github.com/gostonefire/chainhashmap/maperr"
)

// Chain - A doubly linked list of nodes used as one bucket in the hash map.
// Keys are unique within a chain, which is enforced at insertion.
type Chain struct {
	head   *Node
	tail   *Node
	length int64
}

// NewChain - Returns a pointer to a new empty Chain
func NewChain() *Chain {
	return &Chain{}
}

// Head - Returns the first node or nil if the chain is empty
func (C *Chain) Head() *Node {
	return C.head
}

// Tail - Returns the last node or nil if the chain is empty
func (C *Chain) Tail() *Node {
	return C.tail
}

// Len - Returns the number of nodes in the chain
func (C *Chain) Len() int64 {
	return C.length
}

// IsEmpty - Returns true if the chain has no nodes
func (C *Chain) IsEmpty() bool {
	return C.length == 0
}

// PushFront - Links node in as the new head.
// It returns:
//   - err is of type maperr.DuplicateKey if a node with the same key exists, maperr.NodeLinked if the node belongs to another chain or maperr.InvalidEntry for a node without entry. The chain is left untouched on error.
func (C *Chain) PushFront(node *Node) (err error) {
	err = C.checkInsert(node)
	if err != nil {
		return
	}

	node.prev = nil
	node.next = C.head
	if C.head != nil {
		C.head.prev = node
	} else {
		C.tail = node
	}
	C.head = node
	node.chain = C
	C.length++

	return
}

// PushBack - Links node in as the new tail.
// It returns the same errors as PushFront.
func (C *Chain) PushBack(node *Node) (err error) {
	err = C.checkInsert(node)
	if err != nil {
		return
	}

	node.next = nil
	node.prev = C.tail
	if C.tail != nil {
		C.tail.next = node
	} else {
		C.head = node
	}
	C.tail = node
	node.chain = C
	C.length++

	return
}

// PopFromFront - Detaches and returns the head node.
// It returns:
//   - node is the detached node with its links cleared
//   - err is of type maperr.EmptyChain if there was nothing to pop
func (C *Chain) PopFromFront() (node *Node, err error) {
	if C.length == 0 {
		err = maperr.EmptyChain{}
		return
	}

	node = C.head
	if C.head == C.tail {
		C.head = nil
		C.tail = nil
	} else {
		C.head = node.next
		C.head.prev = nil
	}
	node.detach()
	C.length--

	return
}

// PopFromBack - Detaches and returns the tail node.
// It returns:
//   - node is the detached node with its links cleared
//   - err is of type maperr.EmptyChain if there was nothing to pop
func (C *Chain) PopFromBack() (node *Node, err error) {
	if C.length == 0 {
		err = maperr.EmptyChain{}
		return
	}

	node = C.tail
	if C.head == C.tail {
		C.head = nil
		C.tail = nil
	} else {
		C.tail = node.prev
		C.tail.next = nil
	}
	node.detach()
	C.length--

	return
}

// PopByKey - Searches from head towards tail and detaches the node with a matching key.
// It returns:
//   - node is the detached node with its links cleared
//   - err is of type maperr.EmptyChain if the chain is empty or maperr.KeyNotFound if no node matched
func (C *Chain) PopByKey(key string) (node *Node, err error) {
	if C.length == 0 {
		err = maperr.EmptyChain{}
		return
	}

	for node = C.head; node != nil; node = node.next {
		if node.Key() == key {
			C.unlink(node)
			return
		}
	}

	err = maperr.KeyNotFound{}

	return
}

// FindByKey - Returns the node with a matching key or nil if there is none
func (C *Chain) FindByKey(key string) *Node {
	for node := C.head; node != nil; node = node.next {
		if node.Key() == key {
			return node
		}
	}

	return nil
}

// CanInsert - Returns true if the candidate holds an entry and no node in the chain Equals it
func (C *Chain) CanInsert(candidate *Node) bool {
	if candidate == nil || candidate.entry == nil {
		return false
	}

	for node := C.head; node != nil; node = node.next {
		if node.Equals(candidate) {
			return false
		}
	}

	return true
}

// Iterate - Returns a new Iterator over the nodes, from head to tail if forward is true, otherwise from tail to head.
// The chain must not be mutated while the iterator is in use.
func (C *Chain) Iterate(forward bool) *Iterator {
	start := C.head
	if !forward {
		start = C.tail
	}

	return newIterator(start, forward)
}

// checkInsert - Validates a node before any structural change is made
func (C *Chain) checkInsert(node *Node) error {
	if node == nil || node.entry == nil {
		return maperr.InvalidEntry{}
	}
	if node.chain != nil && node.chain != C {
		return maperr.NodeLinked{}
	}
	if !C.CanInsert(node) {
		return maperr.DuplicateKey{}
	}

	return nil
}

// unlink - Splices node out of the chain, node must belong to C
func (C *Chain) unlink(node *Node) {
	switch {
	case node.prev == nil && node.next == nil:
		// Only node
		C.head = nil
		C.tail = nil
	case node.prev == nil:
		// Head
		C.head = node.next
		C.head.prev = nil
	case node.next == nil:
		// Tail
		C.tail = node.prev
		C.tail.next = nil
	default:
		node.prev.next = node.next
		node.next.prev = node.prev
	}

	node.detach()
	C.length--
}

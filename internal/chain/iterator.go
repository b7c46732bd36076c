package chain

import "github.com/gostonefire/chainhashmap/maperr"

// Iterator - Is used to walk the nodes of a chain one by one.
type Iterator struct {
	next    *Node
	forward bool
}

// newIterator - Returns a pointer to a new Iterator starting at start
func newIterator(start *Node, forward bool) *Iterator {

	return &Iterator{
		next:    start,
		forward: forward,
	}
}

// HasNext - Returns true if there are more nodes to be fetched from a call to Next.
func (I *Iterator) HasNext() bool {
	return I.next != nil
}

// Next - Returns node.
// It returns:
//   - node is the next node in the direction of the iterator.
//   - err is of type maperr.KeyNotFound if there are no more nodes when calling this function.
func (I *Iterator) Next() (node *Node, err error) {
	if I.next == nil {
		err = maperr.KeyNotFound{}
		return
	}

	node = I.next
	if I.forward {
		I.next = node.next
	} else {
		I.next = node.prev
	}

	return
}

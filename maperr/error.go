package maperr

// EmptyChain - Custom error to inform that an operation was attempted on a chain with no entries
type EmptyChain struct {
	msg string
}

// Error - Used to notify that the chain is empty
func (E EmptyChain) Error() string {
	if E.msg == "" {
		return "chain is empty"
	}
	return E.msg
}

// KeyNotFound - Custom error to inform that a traversal completed without finding the key
type KeyNotFound struct {
	msg string
}

// Error - Used to notify that no entry was found
func (K KeyNotFound) Error() string {
	if K.msg == "" {
		return "key not found"
	}
	return K.msg
}

// DuplicateKey - Custom error to inform that an entry with the same key already exists in the chain
type DuplicateKey struct {
	msg string
}

// Error - Used to notify that the key is already present
func (D DuplicateKey) Error() string {
	if D.msg == "" {
		return "duplicate key"
	}
	return D.msg
}

// InvalidEntry - Custom error to inform that a node was constructed without a usable entry
type InvalidEntry struct {
	msg string
}

// Error - Used to notify that the entry is missing
func (I InvalidEntry) Error() string {
	if I.msg == "" {
		return "invalid entry"
	}
	return I.msg
}

// NodeLinked - Custom error to inform that a node is still linked into another chain
type NodeLinked struct {
	msg string
}

// Error - Used to notify that the node must be detached before it can be pushed
func (N NodeLinked) Error() string {
	if N.msg == "" {
		return "node is linked into another chain"
	}
	return N.msg
}

package linked

// Node - Single linked list cell owning an item and a pointer to the next node
type Node[T any] struct {
	Item T
	next *Node[T]
}

// Next - Returns the following node or nil at the end of a chain
func (N *Node[T]) Next() *Node[T] {
	return N.next
}

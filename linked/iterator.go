package linked

import "github.com/gostonefire/hashytables/crt"

// Iterator - Is used to walk the nodes of a list one by one, remembering the position of the node last returned.
// Mutating the list while iterating invalidates the iterator.
type Iterator[T any] struct {
	node  *Node[T]
	index int
}

// newIterator - Returns a pointer to a new Iterator starting at head
func newIterator[T any](head *Node[T]) *Iterator[T] {
	return &Iterator[T]{node: head, index: -1}
}

// HasNext - Returns true if there are more items to be fetched from a call to Next.
func (I *Iterator[T]) HasNext() bool {
	return I.node != nil
}

// Next - Returns the next item.
// It returns:
//   - item is the next item in list order.
//   - err is of type crt.NoRecordFound if there are no more items when calling this function.
func (I *Iterator[T]) Next() (item T, err error) {
	if I.node == nil {
		err = crt.NoRecordFound{}
		return
	}

	item = I.node.Item
	I.node = I.node.next
	I.index++

	return
}

// Index - Returns the position of the item last returned by Next, -1 before the first call
func (I *Iterator[T]) Index() int {
	return I.index
}

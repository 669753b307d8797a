package linked

import (
	"iter"

	"github.com/gostonefire/hashytables/crt"
)

// List - Singly linked list with head and tail pointers and a tracked length.
// Prepend and Append are O(1), indexed operations walk from the head.
type List[T any] struct {
	head   *Node[T]
	tail   *Node[T]
	length int
}

// NewList - Returns a pointer to a new List holding items in the given order
func NewList[T any](items ...T) *List[T] {
	l := &List[T]{}
	for _, item := range items {
		l.Append(item)
	}
	return l
}

// Len - Returns the number of items in the list
func (L *List[T]) Len() int {
	return L.length
}

// IsEmpty - Returns true if the list holds no items
func (L *List[T]) IsEmpty() bool {
	return L.length == 0
}

// Clear - Drops all items
func (L *List[T]) Clear() {
	L.head = nil
	L.tail = nil
	L.length = 0
}

// Head - Returns the first node or nil if the list is empty
func (L *List[T]) Head() *Node[T] {
	return L.head
}

// Insert - Inserts item before the item currently at index
//   - index has to be within [0, Len()], where Len() appends to the end
//
// It returns:
//   - err is of type crt.IndexOutOfBounds if index is outside the valid range
func (L *List[T]) Insert(index int, item T) (err error) {
	if index < 0 || index > L.length {
		err = crt.NewIndexOutOfBounds(index, L.length+1)
		return
	}

	node := &Node[T]{Item: item}
	switch {
	case index == 0:
		node.next = L.head
		L.head = node
		if L.tail == nil {
			L.tail = node
		}
	case index == L.length:
		L.tail.next = node
		L.tail = node
	default:
		prev := L.nodeAt(index - 1)
		node.next = prev.next
		prev.next = node
	}
	L.length++

	return
}

// Append - Adds item to the end of the list
func (L *List[T]) Append(item T) {
	_ = L.Insert(L.length, item)
}

// Prepend - Adds item to the front of the list
func (L *List[T]) Prepend(item T) {
	_ = L.Insert(0, item)
}

// DeleteAt - Removes and returns the item at index
//   - index has to be within [0, Len())
//
// It returns:
//   - item is the removed item
//   - err is of type crt.IndexOutOfBounds if index is outside the valid range
func (L *List[T]) DeleteAt(index int) (item T, err error) {
	if index < 0 || index >= L.length {
		err = crt.NewIndexOutOfBounds(index, L.length)
		return
	}

	var removed *Node[T]
	if index == 0 {
		removed = L.head
		L.head = removed.next
		if L.head == nil {
			L.tail = nil
		}
	} else {
		prev := L.nodeAt(index - 1)
		removed = prev.next
		prev.next = removed.next
		if removed == L.tail {
			L.tail = prev
		}
	}
	removed.next = nil
	L.length--

	item = removed.Item

	return
}

// Get - Returns the item at index, or an error of type crt.IndexOutOfBounds
func (L *List[T]) Get(index int) (item T, err error) {
	if index < 0 || index >= L.length {
		err = crt.NewIndexOutOfBounds(index, L.length)
		return
	}

	item = L.nodeAt(index).Item

	return
}

// Set - Replaces the item at index, or returns an error of type crt.IndexOutOfBounds
func (L *List[T]) Set(index int, item T) (err error) {
	if index < 0 || index >= L.length {
		err = crt.NewIndexOutOfBounds(index, L.length)
		return
	}

	L.nodeAt(index).Item = item

	return
}

// IndexFunc - Returns the position of the first item for which match returns true.
// If no item matches an error of type crt.NoRecordFound is returned.
func (L *List[T]) IndexFunc(match func(T) bool) (index int, err error) {
	_, index, err = L.FindFunc(match)
	return
}

// FindFunc - Returns the first node, and its position, for which match returns true on the item.
// The item of the returned node can be replaced in place. If no item matches an error of type crt.NoRecordFound
// is returned.
func (L *List[T]) FindFunc(match func(T) bool) (node *Node[T], index int, err error) {
	for n := L.head; n != nil; n = n.next {
		if match(n.Item) {
			node = n
			return
		}
		index++
	}

	index = 0
	err = crt.NoRecordFound{}

	return
}

// Iterator - Returns a pointer to a new Iterator positioned before the first item
func (L *List[T]) Iterator() *Iterator[T] {
	return newIterator(L.head)
}

// All - Returns a lazy iterator over the items in list order. It can be ranged over any number of times.
func (L *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := L.head; n != nil; n = n.next {
			if !yield(n.Item) {
				return
			}
		}
	}
}

// nodeAt - Walks to the node at index, the caller guarantees 0 <= index < length
func (L *List[T]) nodeAt(index int) *Node[T] {
	n := L.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n
}

// Index - Returns the position of the first item in l that equals item.
// If no item matches an error of type crt.NoRecordFound is returned.
func Index[T comparable](l *List[T], item T) (int, error) {
	return l.IndexFunc(func(v T) bool { return v == item })
}

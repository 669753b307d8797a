package array

import (
	"fmt"
	"iter"

	"github.com/gostonefire/hashytables/crt"
)

// Array - Fixed capacity, bounds checked container. The number of slots is set at creation and never changes,
// every slot starts out as the zero value of T.
type Array[T any] struct {
	items []T
}

// New - Returns a pointer to a new Array with exactly length slots
//   - length is the number of slots, it can not be negative
func New[T any](length int) (arr *Array[T], err error) {
	if length < 0 {
		err = fmt.Errorf("array length must be zero or a positive value, got %d", length)
		return
	}

	arr = &Array[T]{items: make([]T, length)}

	return
}

// Len - Returns the number of slots
func (A *Array[T]) Len() int {
	return len(A.items)
}

// Get - Returns the item stored at index
//   - index has to be within [0, Len()), otherwise an error of type crt.IndexOutOfBounds is returned
func (A *Array[T]) Get(index int) (item T, err error) {
	if index < 0 || index >= len(A.items) {
		err = crt.NewIndexOutOfBounds(index, len(A.items))
		return
	}

	item = A.items[index]

	return
}

// Set - Stores item at index
//   - index has to be within [0, Len()), otherwise an error of type crt.IndexOutOfBounds is returned
func (A *Array[T]) Set(index int, item T) (err error) {
	if index < 0 || index >= len(A.items) {
		err = crt.NewIndexOutOfBounds(index, len(A.items))
		return
	}

	A.items[index] = item

	return
}

// All - Returns an iterator over index and item for every slot in index order
func (A *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range A.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

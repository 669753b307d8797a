package linked

import (
	"iter"

	"github.com/gostonefire/hashytables/crt"
)

// Queue - FIFO queue built on List, items are enqueued at the tail and dequeued from the head
type Queue[T any] struct {
	list List[T]
}

// NewQueue - Returns a pointer to a new empty Queue
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue - Adds item to the back of the queue
func (Q *Queue[T]) Enqueue(item T) {
	Q.list.Append(item)
}

// Dequeue - Removes and returns the item at the front of the queue.
// An error of type crt.EmptyQueue is returned if there is nothing to dequeue.
func (Q *Queue[T]) Dequeue() (item T, err error) {
	if Q.list.IsEmpty() {
		err = crt.EmptyQueue{}
		return
	}

	return Q.list.DeleteAt(0)
}

// Peek - Returns the item at the front of the queue without removing it, or an error of type crt.EmptyQueue
func (Q *Queue[T]) Peek() (item T, err error) {
	if Q.list.IsEmpty() {
		err = crt.EmptyQueue{}
		return
	}

	item = Q.list.head.Item

	return
}

// Len - Returns the number of queued items
func (Q *Queue[T]) Len() int {
	return Q.list.Len()
}

// IsEmpty - Returns true if nothing is queued
func (Q *Queue[T]) IsEmpty() bool {
	return Q.list.IsEmpty()
}

// Clear - Drops all queued items
func (Q *Queue[T]) Clear() {
	Q.list.Clear()
}

// All - Returns a lazy iterator over the queued items from front to back
func (Q *Queue[T]) All() iter.Seq[T] {
	return Q.list.All()
}

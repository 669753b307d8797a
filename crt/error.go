package crt

import "fmt"

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// Is - Matches any NoRecordFound regardless of message
func (E NoRecordFound) Is(target error) bool {
	_, ok := target.(NoRecordFound)
	return ok
}

// TableFull - Custom error to inform that the table is at its largest capacity and can't take more records
type TableFull struct {
	msg string
}

// Error - Used to notify that table is full
func (E TableFull) Error() string {
	if E.msg == "" {
		return "table full"
	}
	return E.msg
}

// Is - Matches any TableFull regardless of message
func (E TableFull) Is(target error) bool {
	_, ok := target.(TableFull)
	return ok
}

// IndexOutOfBounds - Custom error to inform that an index was outside the valid range of a list or an array
type IndexOutOfBounds struct {
	msg string
}

// Error - Used to notify that an index is out of bounds
func (E IndexOutOfBounds) Error() string {
	if E.msg == "" {
		return "index out of bounds"
	}
	return E.msg
}

// Is - Matches any IndexOutOfBounds regardless of message
func (E IndexOutOfBounds) Is(target error) bool {
	_, ok := target.(IndexOutOfBounds)
	return ok
}

// EmptyQueue - Custom error to inform that nothing can be taken from an empty queue
type EmptyQueue struct {
	msg string
}

// Error - Used to notify that the queue is empty
func (E EmptyQueue) Error() string {
	if E.msg == "" {
		return "empty queue"
	}
	return E.msg
}

// Is - Matches any EmptyQueue regardless of message
func (E EmptyQueue) Is(target error) bool {
	_, ok := target.(EmptyQueue)
	return ok
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a probing algorithm
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that the probing algorithm never produced a usable slot
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}

// Is - Matches any ProbingAlgorithm regardless of message
func (P ProbingAlgorithm) Is(target error) bool {
	_, ok := target.(ProbingAlgorithm)
	return ok
}

// NewIndexOutOfBounds - Returns an IndexOutOfBounds error naming the offending index and the valid range
func NewIndexOutOfBounds(index, upper int) IndexOutOfBounds {
	return IndexOutOfBounds{msg: fmt.Sprintf("index %d out of bounds [0, %d)", index, upper)}
}

// NewNoRecordFound - Returns a NoRecordFound error carrying a custom message
func NewNoRecordFound(msg string) NoRecordFound {
	return NoRecordFound{msg: msg}
}

package model

import "github.com/gostonefire/hashytables/hashfunc"

// SlotEmpty - State indicating a slot that has never been in use since the table was (re)built
const SlotEmpty uint8 = 0

// SlotOccupied - State indicating a slot that holds a live record
const SlotOccupied uint8 = 1

// SlotDeleted - State indicating a slot that held a record that was deleted (tombstone)
const SlotDeleted uint8 = 2

// Key - Keys are sequences of characters
type Key interface {
	~string
}

// Slot - Represents one slot in an open addressing table. Key and Value are only meaningful when State is SlotOccupied.
type Slot[K Key, V any] struct {
	State uint8
	Key   K
	Value V
}

// Entry - Represents one record in a separate chaining bucket
type Entry[K Key, V any] struct {
	Key   K
	Value V
}

// StorageParameters - Represents parameters specific for any implementation of storage
type StorageParameters struct {
	CollisionResolutionTechnique int
	TableSize                    int64
	TableSizes                   []int64
	SizeIndex                    int
	Records                      int64
	Tombstones                   int64
	InternalAlgorithm            bool
}

// CRTConf - Is a struct to be passed in the call to NewXXTable and contains configuration that affects
// table creation and processing.
//   - TableSizes is the ascending capacity schedule, separate chaining only uses its first entry
//   - HashAlgorithm is the hash function(s) to use, nil selects the internal algorithm
type CRTConf struct {
	TableSizes    []int64
	HashAlgorithm hashfunc.HashAlgorithm
}

package openaddressing

import (
	"errors"
	"fmt"
	"iter"

	"github.com/gostonefire/hashytables/array"
	"github.com/gostonefire/hashytables/crt"
	"github.com/gostonefire/hashytables/hashfunc"
	"github.com/gostonefire/hashytables/internal/hash"
	"github.com/gostonefire/hashytables/internal/model"
	"github.com/gostonefire/hashytables/internal/storage"
)

// OATable - Represents an implementation of the step probing (double hashing) Open Addressing Collision
// Resolution Technique. Each slot holds at most one record. In case of a collision, it probes through the table
// with a key dependent step size looking for an empty slot. Deleted records leave tombstones that are reused by
// later inserts and cleared at the next rehash. Once the load factor passes 2/3 the table moves to the next
// capacity in its schedule, at the last capacity it keeps accepting records until every slot is taken.
type OATable[K model.Key, V any] struct {
	slots             *array.Array[model.Slot[K, V]]
	tableSizes        []int64
	sizeIndex         int
	tableSize         int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	nOccupied         int64
	nDeleted          int64
}

// NewOATable - Returns a pointer to a new instance of the step probing table.
//   - crtConf is a model.CRTConf struct providing the capacity schedule and an optional hash algorithm
//
// It returns:
//   - oaTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewOATable[K model.Key, V any](crtConf model.CRTConf) (oaTable *OATable[K, V], err error) {
	tableSizes := crtConf.TableSizes
	if tableSizes == nil {
		tableSizes = storage.DefaultTableSizes
	}
	tableSizes, err = storage.ValidateTableSizes(tableSizes)
	if err != nil {
		return
	}

	// If no HashAlgorithm was given then use the default internal, its probe sequence covers the table only for
	// prime table sizes
	var internalAlg bool
	if crtConf.HashAlgorithm == nil {
		err = storage.ValidatePrimeTableSizes(tableSizes)
		if err != nil {
			return
		}
		crtConf.HashAlgorithm = hash.NewStepHashAlgorithm(tableSizes[0])
		internalAlg = true
	} else {
		crtConf.HashAlgorithm.SetTableSize(tableSizes[0])
	}

	oaTable = &OATable[K, V]{
		tableSizes:        tableSizes,
		hashAlgorithm:     crtConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	err = oaTable.allocate(crtConf.HashAlgorithm.GetTableSize())
	if err != nil {
		oaTable = nil
		return
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from OATable
func (Q *OATable[K, V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.StepProbing,
		TableSize:                    Q.tableSize,
		TableSizes:                   Q.tableSizes,
		SizeIndex:                    Q.sizeIndex,
		Records:                      Q.nOccupied,
		Tombstones:                   Q.nDeleted,
		InternalAlgorithm:            Q.internalAlgorithm,
	}

	return
}

// GetSlot - Returns the slot at a given slot number
//   - slotNo has to be within [0, table size)
func (Q *OATable[K, V]) GetSlot(slotNo int64) (slot model.Slot[K, V], err error) {
	slot, err = Q.slots.Get(int(slotNo))
	if err != nil {
		err = fmt.Errorf("error while getting slot: %w", err)
	}

	return
}

// Get - Gets the value that corresponds to the given key.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found
//   - err is either of type crt.NoRecordFound, crt.ProbingAlgorithm or a standard error, if something went wrong
func (Q *OATable[K, V]) Get(key K) (value V, err error) {
	_, slot, err := Q.probingForGet(key)
	if err != nil {
		return
	}

	value = slot.Value

	return
}

// Set - Updates an existing record with new data or adds it if no existing is found with same key.
// Adding a record may trigger a rehash into the next capacity of the schedule. If probing runs out of slots before
// the load factor calls for a rehash, which a custom hash algorithm may cause, the table grows and tries again.
//   - key is the identifier of a record
//   - value is the data to store along with the key
//
// It returns:
//   - err is of type crt.TableFull if the table can't grow any further and has no room for a new key, or a
//     standard error. A failed rehash leaves every record in place at the current capacity.
func (Q *OATable[K, V]) Set(key K, value V) (err error) {
	err = Q.place(key, value)
	for errors.Is(err, crt.TableFull{}) && Q.sizeIndex < len(Q.tableSizes)-1 {
		err = Q.grow()
		if err != nil {
			return
		}
		err = Q.place(key, value)
	}
	if err != nil {
		return
	}

	if storage.ExceedsLoadFactor(Q.nOccupied, Q.tableSize) {
		err = Q.rehash()
		if errors.Is(err, crt.TableFull{}) {
			// No larger capacity can take the records, they stay where they are
			err = nil
		}
	}

	return
}

// Delete - Deletes a record by turning its slot into a tombstone
//   - key is the identifier of the record to delete
//
// It returns:
//   - value is the value of the deleted record
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (Q *OATable[K, V]) Delete(key K) (value V, err error) {
	slotNo, slot, err := Q.probingForGet(key)
	if err != nil {
		return
	}

	err = Q.slots.Set(int(slotNo), model.Slot[K, V]{State: model.SlotDeleted})
	if err != nil {
		err = fmt.Errorf("error while marking slot as deleted: %w", err)
		return
	}
	Q.updateUtilizationInfo(slot.State, model.SlotDeleted)

	value = slot.Value

	return
}

// Contains - Returns true if there is a record with the given key
func (Q *OATable[K, V]) Contains(key K) bool {
	_, _, err := Q.probingForGet(key)
	return err == nil
}

// Len - Returns the number of live records
func (Q *OATable[K, V]) Len() int {
	return int(Q.nOccupied)
}

// Capacity - Returns the current number of slots
func (Q *OATable[K, V]) Capacity() int {
	return int(Q.tableSize)
}

// IsEmpty - Returns true if there are no live records
func (Q *OATable[K, V]) IsEmpty() bool {
	return Q.nOccupied == 0
}

// IsFull - Returns true if every slot holds a live record
func (Q *OATable[K, V]) IsFull() bool {
	return Q.nOccupied == Q.tableSize
}

// All - Returns an iterator over all live records in slot order
func (Q *OATable[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, slot := range Q.slots.All() {
			if slot.State != model.SlotOccupied {
				continue
			}
			if !yield(slot.Key, slot.Value) {
				return
			}
		}
	}
}

// Keys - Returns the keys of all live records in slot order
func (Q *OATable[K, V]) Keys() (keys []K) {
	keys = make([]K, 0, Q.nOccupied)
	for k := range Q.All() {
		keys = append(keys, k)
	}

	return
}

// Values - Returns the values of all live records in slot order
func (Q *OATable[K, V]) Values() (values []V) {
	values = make([]V, 0, Q.nOccupied)
	for _, v := range Q.All() {
		values = append(values, v)
	}

	return
}

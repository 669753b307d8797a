package openaddressing

import (
	"errors"
	"fmt"

	"github.com/gostonefire/hashytables/array"
	"github.com/gostonefire/hashytables/crt"
	"github.com/gostonefire/hashytables/internal/model"
	"github.com/gostonefire/hashytables/internal/storage"
)

// allocate - Replaces the slots with tableSize empty slots and resets utilization info
func (Q *OATable[K, V]) allocate(tableSize int64) (err error) {
	if tableSize < storage.MinTableSize {
		err = fmt.Errorf("hash algorithm reports table size %d, must be at least %d", tableSize, storage.MinTableSize)
		return
	}

	slots, err := array.New[model.Slot[K, V]](int(tableSize))
	if err != nil {
		err = fmt.Errorf("error while allocating slots: %w", err)
		return
	}

	Q.slots = slots
	Q.tableSize = tableSize
	Q.nOccupied = 0
	Q.nDeleted = 0

	return
}

// place - Stores a record in the slot chosen by probingForSet without checking the load factor
func (Q *OATable[K, V]) place(key K, value V) (err error) {
	slotNo, slot, err := Q.probingForSet(key)
	if err != nil {
		return
	}

	err = Q.slots.Set(int(slotNo), model.Slot[K, V]{State: model.SlotOccupied, Key: key, Value: value})
	if err != nil {
		err = fmt.Errorf("error while updating or adding record to slot: %w", err)
		return
	}
	Q.updateUtilizationInfo(slot.State, model.SlotOccupied)

	return
}

// rehash - Grows the table while its load factor is above 2/3 and there is a larger capacity in the schedule.
// At the last capacity of the schedule this is a no-op.
func (Q *OATable[K, V]) rehash() (err error) {
	for storage.ExceedsLoadFactor(Q.nOccupied, Q.tableSize) && Q.sizeIndex < len(Q.tableSizes)-1 {
		err = Q.grow()
		if err != nil {
			return
		}
	}

	return
}

// grow - Moves to the next capacity in the schedule that can hold every live record. The hash values depend on
// the table size so all of them are recomputed, tombstones are dropped in the process. A capacity where the
// records can't all be placed is skipped. The records are placed in a separate table that replaces the current
// one only on success, if no capacity works the table is left as it was.
func (Q *OATable[K, V]) grow() (err error) {
	var rebuilt *OATable[K, V]

	for sizeIndex := Q.sizeIndex + 1; sizeIndex < len(Q.tableSizes); sizeIndex++ {
		rebuilt, err = Q.rebuild(sizeIndex)
		if err == nil {
			*Q = *rebuilt
			return
		}
		if !errors.Is(err, crt.TableFull{}) {
			break
		}
	}

	Q.hashAlgorithm.SetTableSize(Q.tableSizes[Q.sizeIndex])

	return
}

// rebuild - Returns a new table at the given schedule position holding every live record of Q.
// It leaves the hash algorithm set to the new size.
func (Q *OATable[K, V]) rebuild(sizeIndex int) (rebuilt *OATable[K, V], err error) {
	Q.hashAlgorithm.SetTableSize(Q.tableSizes[sizeIndex])

	rebuilt = &OATable[K, V]{
		tableSizes:        Q.tableSizes,
		sizeIndex:         sizeIndex,
		hashAlgorithm:     Q.hashAlgorithm,
		internalAlgorithm: Q.internalAlgorithm,
	}
	err = rebuilt.allocate(Q.hashAlgorithm.GetTableSize())
	if err != nil {
		rebuilt = nil
		return
	}

	for _, slot := range Q.slots.All() {
		if slot.State != model.SlotOccupied {
			continue
		}
		err = rebuilt.place(slot.Key, slot.Value)
		if err != nil {
			err = fmt.Errorf("error while rehashing into table size %d: %w", rebuilt.tableSize, err)
			rebuilt = nil
			return
		}
	}

	return
}

// updateUtilizationInfo - Updates counters for occupied and deleted slots given a slot state transition
func (Q *OATable[K, V]) updateUtilizationInfo(fromState, toState uint8) {
	if fromState == toState {
		return
	}

	switch fromState {
	case model.SlotOccupied:
		Q.nOccupied--
	case model.SlotDeleted:
		Q.nDeleted--
	}

	switch toState {
	case model.SlotOccupied:
		Q.nOccupied++
	case model.SlotDeleted:
		Q.nDeleted++
	}
}

// probingForGet - Is the step probing algorithm for finding an existing record.
// Tombstones are stepped over, an empty slot ends the search.
func (Q *OATable[K, V]) probingForGet(key K) (slotNo int64, slot model.Slot[K, V], err error) {
	var probe, n int64

	hf1Value := Q.hashAlgorithm.HashFunc1(string(key))
	hf2Value := Q.hashAlgorithm.HashFunc2(string(key))

	iMax := Q.tableSize * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = Q.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		if probe < Q.tableSize && probe >= 0 {
			slot, err = Q.slots.Get(int(probe))
			if err != nil {
				err = fmt.Errorf("error while reading slot: %w", err)
				return
			}

			switch slot.State {
			case model.SlotEmpty:
				slot = model.Slot[K, V]{}
				err = notFound(key)
				return

			case model.SlotOccupied:
				if slot.Key == key {
					slotNo = probe
					return
				}
			}

			// Every slot has been visited once, the record is not in a table without empty slots
			n++
			if n >= Q.tableSize {
				slot = model.Slot[K, V]{}
				err = notFound(key)
				return
			}
		}
	}

	// This is just a failsafe for custom hash algorithms that never land within the table
	slot = model.Slot[K, V]{}
	err = crt.ProbingAlgorithm{}
	return
}

// probingForSet - Is the step probing algorithm for finding the slot to set a record in.
// A slot already holding the key wins, otherwise the first tombstone on the probe sequence is reused, otherwise the
// empty slot that ended the search. Probing continues past tombstones so that an existing record further down the
// sequence is updated rather than duplicated.
func (Q *OATable[K, V]) probingForSet(key K) (slotNo int64, slot model.Slot[K, V], err error) {
	var probe, n, deletedSlotNo int64
	var hasCached bool

	hf1Value := Q.hashAlgorithm.HashFunc1(string(key))
	hf2Value := Q.hashAlgorithm.HashFunc2(string(key))

	iMax := Q.tableSize * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = Q.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		if probe < Q.tableSize && probe >= 0 {
			slot, err = Q.slots.Get(int(probe))
			if err != nil {
				err = fmt.Errorf("error while reading slot: %w", err)
				return
			}

			switch slot.State {
			case model.SlotEmpty:
				if hasCached {
					slotNo = deletedSlotNo
					slot = model.Slot[K, V]{State: model.SlotDeleted}
				} else {
					slotNo = probe
				}
				return

			case model.SlotOccupied:
				if slot.Key == key {
					slotNo = probe
					return
				}

			case model.SlotDeleted:
				if !hasCached {
					deletedSlotNo = probe
					hasCached = true
				}
			}

			n++
			if n >= Q.tableSize {
				if hasCached {
					slotNo = deletedSlotNo
					slot = model.Slot[K, V]{State: model.SlotDeleted}
					return
				}
				slot = model.Slot[K, V]{}
				err = crt.TableFull{}
				return
			}
		}
	}

	// This is just a failsafe for custom hash algorithms that never land within the table
	slot = model.Slot[K, V]{}
	err = crt.ProbingAlgorithm{}
	return
}

// notFound - Returns a crt.NoRecordFound naming the key
func notFound[K model.Key](key K) error {
	return crt.NewNoRecordFound(fmt.Sprintf("key %q not found", string(key)))
}

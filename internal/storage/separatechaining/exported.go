package separatechaining

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
	"github.com/gostonefire/hashytables/linked"
)

// SCTable - Represents an implementation of the Separate Chaining Collision Resolution Technique.
// It uses a fixed number of directly addressable buckets where each non-empty bucket holds a singly linked
// list of records. The number of buckets never changes, callers that need short chains choose it up front.
type SCTable[K model.Key, V any] struct {
	buckets           *array.Array[*linked.List[model.Entry[K, V]]]
	tableSize         int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	nRecords          int64
}

// NewSCTable - Returns a pointer to a new instance of the Separate Chaining table.
//   - crtConf is a model.CRTConf struct, the first entry of TableSizes is the number of buckets
//
// It returns:
//   - scTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewSCTable[K model.Key, V any](crtConf model.CRTConf) (scTable *SCTable[K, V], err error) {
	tableSizes := crtConf.TableSizes
	if tableSizes == nil {
		tableSizes = []int64{storage.DefaultChainingTableSize}
	}
	tableSizes, err = storage.ValidateTableSizes(tableSizes)
	if err != nil {
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if crtConf.HashAlgorithm == nil {
		crtConf.HashAlgorithm = hash.NewSeparateChainingHashAlgorithm(tableSizes[0])
		internalAlg = true
	} else {
		crtConf.HashAlgorithm.SetTableSize(tableSizes[0])
	}

	tableSize := crtConf.HashAlgorithm.GetTableSize()
	if tableSize < 1 {
		err = fmt.Errorf("hash algorithm reports table size %d, must be a positive value", tableSize)
		return
	}

	buckets, err := array.New[*linked.List[model.Entry[K, V]]](int(tableSize))
	if err != nil {
		err = fmt.Errorf("error while allocating buckets: %w", err)
		return
	}

	scTable = &SCTable[K, V]{
		buckets:           buckets,
		tableSize:         tableSize,
		hashAlgorithm:     crtConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from SCTable
func (S *SCTable[K, V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.SeparateChaining,
		TableSize:                    S.tableSize,
		TableSizes:                   []int64{S.tableSize},
		Records:                      S.nRecords,
		InternalAlgorithm:            S.internalAlgorithm,
	}

	return
}

// GetBucket - Returns the chain of a bucket given the bucket number, nil if the bucket is empty.
// The chain is owned by the table and must not be modified.
//   - bucketNo has to be within [0, table size)
func (S *SCTable[K, V]) GetBucket(bucketNo int64) (chain *linked.List[model.Entry[K, V]], err error) {
	chain, err = S.buckets.Get(int(bucketNo))
	if err != nil {
		err = fmt.Errorf("error while getting bucket: %w", err)
	}

	return
}

// Get - Gets the value that corresponds to the given key.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (S *SCTable[K, V]) Get(key K) (value V, err error) {
	_, _, node, _, err := S.find(key)
	if err != nil {
		return
	}

	value = node.Item.Value

	return
}

// Set - Updates an existing record with new data or adds it to the end of the bucket chain if no existing is found
// with same key.
//   - key is the identifier of a record
//   - value is the data to store along with the key
//
// It returns:
//   - err is a standard error, if something went wrong
func (S *SCTable[K, V]) Set(key K, value V) (err error) {
	bucketNo, chain, node, _, err := S.find(key)
	switch {
	case err == nil:
		node.Item.Value = value
		return

	case !errors.Is(err, crt.NoRecordFound{}):
		return
	}
	err = nil

	// A bucket without a chain gets a new one holding just this record
	if chain == nil {
		err = S.buckets.Set(int(bucketNo), linked.NewList(model.Entry[K, V]{Key: key, Value: value}))
		if err != nil {
			err = fmt.Errorf("error while adding record to bucket: %w", err)
			return
		}
		S.nRecords++
		return
	}

	chain.Append(model.Entry[K, V]{Key: key, Value: value})
	S.nRecords++

	return
}

// Delete - Unlinks the record with the given key from its chain. A chain left empty is released.
//   - key is the identifier of the record to delete
//
// It returns:
//   - value is the value of the deleted record
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (S *SCTable[K, V]) Delete(key K) (value V, err error) {
	bucketNo, chain, _, index, err := S.find(key)
	if err != nil {
		return
	}

	entry, err := chain.DeleteAt(index)
	if err != nil {
		err = fmt.Errorf("error while removing record from chain: %w", err)
		return
	}
	S.nRecords--

	if chain.IsEmpty() {
		err = S.buckets.Set(int(bucketNo), nil)
		if err != nil {
			err = fmt.Errorf("error while releasing empty bucket: %w", err)
			return
		}
	}

	value = entry.Value

	return
}

// Contains - Returns true if there is a record with the given key
func (S *SCTable[K, V]) Contains(key K) bool {
	_, err := S.Get(key)
	return err == nil
}

// Len - Returns the number of records
func (S *SCTable[K, V]) Len() int {
	return int(S.nRecords)
}

// Capacity - Returns the number of buckets
func (S *SCTable[K, V]) Capacity() int {
	return int(S.tableSize)
}

// IsEmpty - Returns true if there are no records
func (S *SCTable[K, V]) IsEmpty() bool {
	return S.nRecords == 0
}

// IsFull - Chains grow without bound, so the table is never full
func (S *SCTable[K, V]) IsFull() bool {
	return false
}

// All - Returns an iterator over all records in bucket order, and chain order within a bucket
func (S *SCTable[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, chain := range S.buckets.All() {
			if chain == nil {
				continue
			}
			for e := range chain.All() {
				if !yield(e.Key, e.Value) {
					return
				}
			}
		}
	}
}

// Keys - Returns the keys of all records in bucket order
func (S *SCTable[K, V]) Keys() (keys []K) {
	keys = make([]K, 0, S.nRecords)
	for k := range S.All() {
		keys = append(keys, k)
	}

	return
}

// Values - Returns the values of all records in bucket order
func (S *SCTable[K, V]) Values() (values []V) {
	values = make([]V, 0, S.nRecords)
	for _, v := range S.All() {
		values = append(values, v)
	}

	return
}

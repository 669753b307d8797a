package hashytables

import (
	"fmt"
	"iter"
	"strings"
)

// Get - Gets the value that corresponds to the given key.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (H *HashTable[K, V]) Get(key K) (value V, err error) {
	return H.tableManagement.Get(key)
}

// Set - Updates an existing record with new data or adds it if no existing is found with same key.
//   - key is the identifier of a record
//   - value is the data stored along with the key
//
// It returns:
//   - err is of type crt.TableFull if a step probing table at its largest capacity has no room for a new key,
//     or a standard error if something went wrong
func (H *HashTable[K, V]) Set(key K, value V) (err error) {
	return H.tableManagement.Set(key, value)
}

// Delete - Returns the value corresponding to key and removes the record from the hash table.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (H *HashTable[K, V]) Delete(key K) (value V, err error) {
	return H.tableManagement.Delete(key)
}

// Contains - Returns true if a record with the given key exists
func (H *HashTable[K, V]) Contains(key K) bool {
	return H.tableManagement.Contains(key)
}

// Len - Returns the number of records
func (H *HashTable[K, V]) Len() int {
	return H.tableManagement.Len()
}

// Capacity - Returns the current number of slots or buckets
func (H *HashTable[K, V]) Capacity() int {
	return H.tableManagement.Capacity()
}

// IsEmpty - Returns true if there are no records
func (H *HashTable[K, V]) IsEmpty() bool {
	return H.tableManagement.IsEmpty()
}

// IsFull - Returns true if a step probing table has a record in every slot, always false for separate chaining
func (H *HashTable[K, V]) IsFull() bool {
	return H.tableManagement.IsFull()
}

// Keys - Returns all keys, the order follows the internal layout and not the order of insertion
func (H *HashTable[K, V]) Keys() []K {
	return H.tableManagement.Keys()
}

// Values - Returns all values in the same order as Keys
func (H *HashTable[K, V]) Values() []V {
	return H.tableManagement.Values()
}

// All - Returns an iterator over all records in the same order as Keys.
// The table must not be modified while iterating.
func (H *HashTable[K, V]) All() iter.Seq2[K, V] {
	return H.tableManagement.All()
}

// String - Returns every record as a (key,value) line
func (H *HashTable[K, V]) String() string {
	var sb strings.Builder
	for k, v := range H.All() {
		_, _ = fmt.Fprintf(&sb, "(%s,%v)\n", string(k), v)
	}

	return sb.String()
}

// Stat - Walks through the entire set of slots or buckets and produces a HashMapStat struct with information.
//   - includeDistribution set to true will include a slice of length TableSize with number of records per slot or bucket, false will set HashMapStat.BucketDistribution to nil.
func (H *HashTable[K, V]) Stat(includeDistribution bool) (hashMapStat *HashMapStat, err error) {
	sp := H.tableManagement.GetStorageParameters()

	hms := HashMapStat{
		Records:    sp.Records,
		TableSize:  sp.TableSize,
		Tombstones: sp.Tombstones,
		LoadFactor: float64(sp.Records) / float64(sp.TableSize),
	}

	if includeDistribution {
		hms.BucketDistribution = make([]int64, sp.TableSize)
	}

	var n int64
	for i := int64(0); i < sp.TableSize; i++ {
		n, err = H.bucketCounter(i)
		if err != nil {
			return
		}
		if n > hms.LongestChain {
			hms.LongestChain = n
		}
		if includeDistribution {
			hms.BucketDistribution[i] = n
		}
	}

	hashMapStat = &hms

	return
}

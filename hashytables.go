package hashytables

import (
	"fmt"
	"iter"

	"github.com/gostonefire/hashytables/crt"
	"github.com/gostonefire/hashytables/hashfunc"
	"github.com/gostonefire/hashytables/internal/model"
	"github.com/gostonefire/hashytables/internal/storage/openaddressing"
	"github.com/gostonefire/hashytables/internal/storage/separatechaining"
)

// Key - Keys are sequences of characters, any type with string as underlying type will do
type Key = model.Key

// TableManagement - Interface for any storage implementation behind a HashTable
type TableManagement[K Key, V any] interface {
	Get(key K) (value V, err error)
	Set(key K, value V) (err error)
	Delete(key K) (value V, err error)
	Contains(key K) bool
	Len() int
	Capacity() int
	IsEmpty() bool
	IsFull() bool
	All() iter.Seq2[K, V]
	Keys() []K
	Values() []V
	GetStorageParameters() (params model.StorageParameters)
}

// Conf - Configuration given to NewHashTable
//   - CollisionResolutionTechnique is one of crt.StepProbing or crt.SeparateChaining
//   - TableSizes is an optional ascending capacity schedule. Step probing starts at the first entry and moves on to
//     the next each time the load factor passes 2/3. Separate chaining uses the first entry as its fixed number of
//     buckets. If nil the defaults are used.
//   - HashAlgorithm is an optional custom hash algorithm following the hashfunc.HashAlgorithm interface
type Conf struct {
	CollisionResolutionTechnique int
	TableSizes                   []int64
	HashAlgorithm                hashfunc.HashAlgorithm
}

// HashMapInfo - Information structure containing some information about the hash table created
//   - CollisionResolutionTechnique is the technique in use
//   - TableSize is the current number of slots (step probing) or buckets (separate chaining)
//   - TableSizes is the capacity schedule in use
//   - InternalAlgorithm is true if the built-in hash algorithm is used
type HashMapInfo struct {
	CollisionResolutionTechnique int
	TableSize                    int64
	TableSizes                   []int64
	InternalAlgorithm            bool
}

// HashMapStat - Statistics on the overall usage and distribution over slots or buckets
//   - Records is the total number of live records stored
//   - TableSize is the current number of slots or buckets
//   - Tombstones is the number of deleted slots waiting for the next rehash (always 0 for separate chaining)
//   - LoadFactor is Records divided by TableSize
//   - LongestChain is the highest number of records in one bucket (0 or 1 for step probing)
//   - BucketDistribution is the number of records stored in each slot or bucket
type HashMapStat struct {
	Records            int64
	TableSize          int64
	Tombstones         int64
	LoadFactor         float64
	LongestChain       int64
	BucketDistribution []int64
}

// HashTable - The main implementation struct, a hash table of string like keys and any values
type HashTable[K Key, V any] struct {
	tableManagement TableManagement[K, V]
	bucketCounter   func(bucketNo int64) (int64, error)
}

// NewHashTable - Returns a new hash table using the collision resolution technique given in conf.
//   - conf is a Conf struct, its zero value apart from CollisionResolutionTechnique gives a table with defaults
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - hashMapInfo is a HashMapInfo struct containing some data regarding the hash table created.
//   - err is a normal go Error which should be nil if everything went ok
func NewHashTable[K Key, V any](conf Conf) (hashTable *HashTable[K, V], hashMapInfo HashMapInfo, err error) {
	crtConf := model.CRTConf{
		TableSizes:    conf.TableSizes,
		HashAlgorithm: conf.HashAlgorithm,
	}

	switch conf.CollisionResolutionTechnique {
	case crt.StepProbing:
		var oa *openaddressing.OATable[K, V]
		oa, err = openaddressing.NewOATable[K, V](crtConf)
		if err != nil {
			return
		}
		hashTable = &HashTable[K, V]{
			tableManagement: oa,
			bucketCounter: func(bucketNo int64) (int64, error) {
				slot, err := oa.GetSlot(bucketNo)
				if err != nil || slot.State != model.SlotOccupied {
					return 0, err
				}
				return 1, nil
			},
		}

	case crt.SeparateChaining:
		var sc *separatechaining.SCTable[K, V]
		sc, err = separatechaining.NewSCTable[K, V](crtConf)
		if err != nil {
			return
		}
		hashTable = &HashTable[K, V]{
			tableManagement: sc,
			bucketCounter: func(bucketNo int64) (int64, error) {
				chain, err := sc.GetBucket(bucketNo)
				if err != nil || chain == nil {
					return 0, err
				}
				return int64(chain.Len()), nil
			},
		}

	default:
		err = fmt.Errorf("unknown collision resolution technique %d", conf.CollisionResolutionTechnique)
		return
	}

	hashMapInfo = hashTable.Info()

	return
}

// NewStepTable - Convenience for NewHashTable with crt.StepProbing and an optional capacity schedule
func NewStepTable[K Key, V any](tableSizes ...int64) (*HashTable[K, V], error) {
	if len(tableSizes) == 0 {
		tableSizes = nil
	}
	hashTable, _, err := NewHashTable[K, V](Conf{CollisionResolutionTechnique: crt.StepProbing, TableSizes: tableSizes})
	return hashTable, err
}

// NewChainTable - Convenience for NewHashTable with crt.SeparateChaining, a tableSize of 0 gives the default bucket count
func NewChainTable[K Key, V any](tableSize int64) (*HashTable[K, V], error) {
	var tableSizes []int64
	if tableSize != 0 {
		tableSizes = []int64{tableSize}
	}
	hashTable, _, err := NewHashTable[K, V](Conf{CollisionResolutionTechnique: crt.SeparateChaining, TableSizes: tableSizes})
	return hashTable, err
}

// Info - Returns a HashMapInfo describing the table as it is now, the table size of a step probing table changes as it grows
func (H *HashTable[K, V]) Info() (hashMapInfo HashMapInfo) {
	sp := H.tableManagement.GetStorageParameters()

	hashMapInfo = HashMapInfo{
		CollisionResolutionTechnique: sp.CollisionResolutionTechnique,
		TableSize:                    sp.TableSize,
		TableSizes:                   append([]int64(nil), sp.TableSizes...),
		InternalAlgorithm:            sp.InternalAlgorithm,
	}

	return
}

package separatechaining

import (
	"fmt"

	"github.com/gostonefire/hashytables/crt"
	"github.com/gostonefire/hashytables/internal/model"
	"github.com/gostonefire/hashytables/linked"
)

// getBucketNo - Returns the bucket a key belongs to, checking that the hash algorithm stays within the table
func (S *SCTable[K, V]) getBucketNo(key K) (bucketNo int64, err error) {
	bucketNo = S.hashAlgorithm.HashFunc1(string(key))
	if bucketNo < 0 || bucketNo >= S.tableSize {
		err = crt.ProbingAlgorithm{}
		err = fmt.Errorf("bucket number %d outside table size %d: %w", bucketNo, S.tableSize, err)
	}

	return
}

// find - Locates the record with the given key in a single walk of its chain. It returns the bucket number, the
// chain of that bucket, the node holding the record and its position within the chain.
func (S *SCTable[K, V]) find(key K) (bucketNo int64, chain *linked.List[model.Entry[K, V]], node *linked.Node[model.Entry[K, V]], index int, err error) {
	bucketNo, err = S.getBucketNo(key)
	if err != nil {
		return
	}
	chain, err = S.GetBucket(bucketNo)
	if err != nil {
		return
	}

	if chain != nil {
		node, index, err = chain.FindFunc(func(e model.Entry[K, V]) bool { return e.Key == key })
	}
	if chain == nil || err != nil {
		err = crt.NewNoRecordFound(fmt.Sprintf("key %q not found", string(key)))
	}

	return
}

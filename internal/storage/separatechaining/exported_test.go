package separatechaining

import (
	"fmt"
	"slices"
	"testing"

	"github.com/gostonefire/hashytables/crt"
	"github.com/gostonefire/hashytables/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// sameBucketHashAlgorithm - Sends every key to the same bucket
type sameBucketHashAlgorithm struct {
	tableSize int64
	bucket    int64
}

func (s *sameBucketHashAlgorithm) SetTableSize(tableSize int64) { s.tableSize = tableSize }
func (s *sameBucketHashAlgorithm) HashFunc1(key string) int64   { return s.bucket }
func (s *sameBucketHashAlgorithm) HashFunc2(key string) int64   { return 0 }
func (s *sameBucketHashAlgorithm) GetTableSize() int64          { return s.tableSize }
func (s *sameBucketHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return 0
}

func newTestTable(t *testing.T, crtConf model.CRTConf) *SCTable[string, int] {
	scTable, err := NewSCTable[string, int](crtConf)
	require.NoError(t, err, "create new SCTable instance")
	return scTable
}

func TestNewSCTable(t *testing.T) {
	t.Run("creates a table with the default bucket count", func(t *testing.T) {
		// Execute
		scTable, err := NewSCTable[string, int](model.CRTConf{})

		// Check
		assert.NoError(t, err, "create new SCTable instance")
		assert.Equal(t, 97, scTable.Capacity(), "default bucket count")
		assert.True(t, scTable.IsEmpty(), "new table is empty")
		assert.False(t, scTable.IsFull(), "never full")

		sp := scTable.GetStorageParameters()
		assert.Equal(t, crt.SeparateChaining, sp.CollisionResolutionTechnique, "correct crt")
		assert.True(t, sp.InternalAlgorithm, "indicates using internal hash algorithm")
	})

	t.Run("uses the first entry of the schedule", func(t *testing.T) {
		// Execute
		scTable := newTestTable(t, model.CRTConf{TableSizes: []int64{4, 8}})

		// Check
		assert.Equal(t, 4, scTable.Capacity(), "first schedule entry")
	})

	t.Run("rejects an invalid schedule", func(t *testing.T) {
		// Execute
		_, err := NewSCTable[string, int](model.CRTConf{TableSizes: []int64{}})

		// Check
		assert.Error(t, err, "empty schedule rejected")
	})
}

func TestSCTable_Set(t *testing.T) {
	t.Run("chains colliding keys", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, model.CRTConf{TableSizes: []int64{4}, HashAlgorithm: &sameBucketHashAlgorithm{bucket: 2}})
		keys := []string{"alpha", "beta", "gamma", "delta", "epsilon"}

		// Execute
		for i, key := range keys {
			require.NoErrorf(t, scTable.Set(key, i), "set %s", key)
		}

		// Check
		assert.Equal(t, len(keys), scTable.Len(), "length equals insert count")
		for i, key := range keys {
			v, err := scTable.Get(key)
			assert.NoErrorf(t, err, "get %s", key)
			assert.Equalf(t, i, v, "value of %s", key)
		}
		chain, err := scTable.GetBucket(2)
		assert.NoError(t, err, "get bucket 2")
		assert.Equal(t, len(keys), chain.Len(), "all records in one chain")
		empty, err := scTable.GetBucket(0)
		assert.NoError(t, err, "get bucket 0")
		assert.Nil(t, empty, "other buckets untouched")
		assert.Equal(t, keys, scTable.Keys(), "records appended in insert order")
	})

	t.Run("overwrites an existing key", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, model.CRTConf{TableSizes: []int64{4}, HashAlgorithm: &sameBucketHashAlgorithm{}})
		require.NoError(t, scTable.Set("a", 1), "set a")
		require.NoError(t, scTable.Set("b", 2), "set b")

		// Execute
		err := scTable.Set("b", 20)
		errAgain := scTable.Set("b", 20)

		// Check
		assert.NoError(t, err, "overwrite b")
		assert.NoError(t, errAgain, "overwrite b with same value")
		assert.Equal(t, 2, scTable.Len(), "count unchanged")
		assert.Equal(t, []int{1, 20}, scTable.Values(), "value replaced in place")
	})

	t.Run("updates a record in the middle of a chain in place", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, model.CRTConf{TableSizes: []int64{4}, HashAlgorithm: &sameBucketHashAlgorithm{bucket: 1}})
		for i, key := range []string{"a", "b", "c"} {
			require.NoErrorf(t, scTable.Set(key, i), "set %s", key)
		}
		chain, err := scTable.GetBucket(1)
		require.NoError(t, err, "get bucket 1")
		middle := chain.Head().Next()

		// Execute
		err = scTable.Set("b", 20)

		// Check
		assert.NoError(t, err, "overwrite b")
		assert.Equal(t, model.Entry[string, int]{Key: "b", Value: 20}, middle.Item, "same node holds the new value")
		assert.Equal(t, 3, chain.Len(), "chain length unchanged")
		assert.Equal(t, []string{"a", "b", "c"}, scTable.Keys(), "chain order kept")
	})

	t.Run("fails on a hash algorithm outside the table", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, model.CRTConf{TableSizes: []int64{4}, HashAlgorithm: &sameBucketHashAlgorithm{bucket: 4}})

		// Execute
		err := scTable.Set("key", 1)

		// Check
		assert.ErrorIs(t, err, crt.ProbingAlgorithm{}, "bucket out of range")
		assert.Zero(t, scTable.Len(), "nothing stored")
	})
}

func TestSCTable_Delete(t *testing.T) {
	t.Run("unlinks records from the middle and the end of a chain", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, model.CRTConf{TableSizes: []int64{4}, HashAlgorithm: &sameBucketHashAlgorithm{bucket: 1}})
		for i, key := range []string{"a", "b", "c"} {
			require.NoErrorf(t, scTable.Set(key, i), "set %s", key)
		}

		// Execute
		vb, errB := scTable.Delete("b")
		vc, errC := scTable.Delete("c")

		// Check
		assert.NoError(t, errB, "delete b")
		assert.NoError(t, errC, "delete c")
		assert.Equal(t, 1, vb, "value of b")
		assert.Equal(t, 2, vc, "value of c")
		assert.Equal(t, 1, scTable.Len(), "one record left")
		assert.False(t, scTable.Contains("b"), "b gone")
		assert.True(t, scTable.Contains("a"), "a kept")
		require.NoError(t, scTable.Set("d", 3), "append after tail removal")
		assert.Equal(t, []string{"a", "d"}, scTable.Keys(), "chain intact")
	})

	t.Run("releases an emptied chain", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, model.CRTConf{TableSizes: []int64{4}, HashAlgorithm: &sameBucketHashAlgorithm{bucket: 3}})
		require.NoError(t, scTable.Set("only", 1), "set record")

		// Execute
		_, err := scTable.Delete("only")

		// Check
		assert.NoError(t, err, "delete record")
		chain, err := scTable.GetBucket(3)
		assert.NoError(t, err, "get bucket")
		assert.Nil(t, chain, "bucket empty again")
		assert.True(t, scTable.IsEmpty(), "table empty")
		_, err = scTable.Get("only")
		assert.ErrorIs(t, err, crt.NoRecordFound{}, "deleted key not found")
	})

	t.Run("fails on a missing key", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, model.CRTConf{TableSizes: []int64{4}, HashAlgorithm: &sameBucketHashAlgorithm{}})
		require.NoError(t, scTable.Set("present", 1), "set record")

		// Execute
		_, errChain := scTable.Delete("absent")
		scTable.hashAlgorithm = &sameBucketHashAlgorithm{tableSize: 4, bucket: 1}
		_, errEmpty := scTable.Delete("absent")

		// Check
		assert.ErrorIs(t, errChain, crt.NoRecordFound{}, "miss in a populated chain")
		assert.ErrorIs(t, errEmpty, crt.NoRecordFound{}, "miss in an empty bucket")
		assert.Equal(t, 1, scTable.Len(), "count unchanged")
	})
}

func TestSCTable_OutsideTable(t *testing.T) {
	t.Run("lookups fail on a hash algorithm outside the table", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, model.CRTConf{TableSizes: []int64{4}, HashAlgorithm: &sameBucketHashAlgorithm{bucket: -1}})

		// Execute
		_, errGet := scTable.Get("key")
		_, errDelete := scTable.Delete("key")

		// Check
		assert.ErrorIs(t, errGet, crt.ProbingAlgorithm{}, "get reports bucket out of range")
		assert.ErrorIs(t, errDelete, crt.ProbingAlgorithm{}, "delete reports bucket out of range")
		assert.False(t, scTable.Contains("key"), "nothing contained")
	})
}

func TestSCTable_All(t *testing.T) {
	t.Run("visits every record once", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, model.CRTConf{TableSizes: []int64{13}})
		for i := 0; i < 40; i++ {
			require.NoErrorf(t, scTable.Set(fmt.Sprintf("key-%d", i), i), "set record #%d", i)
		}

		// Execute
		var values []int
		for _, v := range scTable.All() {
			values = append(values, v)
		}

		// Check
		slices.Sort(values)
		assert.Len(t, values, 40, "all records visited")
		for i, v := range values {
			assert.Equalf(t, i, v, "value #%d visited", i)
		}
	})
}

func TestSCTable_Model(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		size := rapid.Int64Range(2, 17).Draw(t, "size")
		scTable, err := NewSCTable[string, int](model.CRTConf{TableSizes: []int64{size}})
		if err != nil {
			t.Fatalf("create table: %v", err)
		}
		reference := make(map[string]int)
		keyGen := rapid.StringMatching(`[a-d]{1,3}`)

		t.Run(map[string]func(*rapid.T){
			"set": func(t *rapid.T) {
				key := keyGen.Draw(t, "key")
				value := rapid.Int().Draw(t, "value")
				if err := scTable.Set(key, value); err != nil {
					t.Fatalf("set %q: %v", key, err)
				}
				reference[key] = value
			},
			"delete": func(t *rapid.T) {
				key := keyGen.Draw(t, "key")
				v, err := scTable.Delete(key)
				expected, ok := reference[key]
				if !ok {
					if err == nil {
						t.Fatalf("deleted missing key %q", key)
					}
					return
				}
				if err != nil || v != expected {
					t.Fatalf("delete %q: %v %v, expected %v", key, v, err, expected)
				}
				delete(reference, key)
			},
			"": func(t *rapid.T) {
				if scTable.Len() != len(reference) {
					t.Fatalf("length %d, expected %d", scTable.Len(), len(reference))
				}
				for key, expected := range reference {
					v, err := scTable.Get(key)
					if err != nil || v != expected {
						t.Fatalf("get %q: %v %v, expected %v", key, v, err, expected)
					}
				}
			},
		})
	})
}

package storage

import "fmt"

// DefaultTableSizes - Capacity schedule used by the step probing table when none is given.
// No realistic usage is expected to exceed a million records.
var DefaultTableSizes = []int64{
	5, 13, 29, 53, 97, 193, 389, 769, 1543, 3079, 6151, 12289, 24593, 49157, 98317, 196613, 393241, 786433, 1572869,
}

// DefaultChainingTableSize - Number of buckets used by the separate chaining table when none is given
const DefaultChainingTableSize int64 = 97

// MinTableSize - The polynomial hash reduces modulo table size - 1, so anything smaller is unusable
const MinTableSize int64 = 2

// ValidateTableSizes - Checks that a capacity schedule is non-empty, strictly ascending and that no entry
// is below MinTableSize. A copy is returned so the caller can't change the schedule of a live table.
func ValidateTableSizes(tableSizes []int64) (sizes []int64, err error) {
	if len(tableSizes) == 0 {
		err = fmt.Errorf("table sizes can not be empty")
		return
	}

	for i, size := range tableSizes {
		if size < MinTableSize {
			err = fmt.Errorf("table size #%d is %d, must be at least %d", i, size, MinTableSize)
			return
		}
		if i > 0 && size <= tableSizes[i-1] {
			err = fmt.Errorf("table sizes must be strictly ascending, #%d (%d) follows %d", i, size, tableSizes[i-1])
			return
		}
	}

	sizes = make([]int64, len(tableSizes))
	_ = copy(sizes, tableSizes)

	return
}

// ValidatePrimeTableSizes - Checks that every entry of a capacity schedule is a prime. The step probing hash
// algorithm steps through the table by a key dependent amount, only a prime table size guarantees that every
// slot is visited whatever the step.
func ValidatePrimeTableSizes(tableSizes []int64) (err error) {
	for i, size := range tableSizes {
		if !IsPrime(size) {
			err = fmt.Errorf("table size #%d is %d, must be a prime", i, size)
			return
		}
	}

	return
}

// IsPrime - Returns true if n is a prime
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := int64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// ExceedsLoadFactor - Returns true if records live records in a table of tableSize slots is above the 2/3 load factor
func ExceedsLoadFactor(records, tableSize int64) bool {
	return 3*records > 2*tableSize
}

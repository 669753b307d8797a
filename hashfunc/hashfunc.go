package hashfunc

// HashAlgorithm - Interface that permits a user of HashTable to supply a custom hash and probing
// algorithm suited for its particular distribution of keys. Keys are always handed over as strings.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when a table is created and again every time a step probing table is resized, so any
	// table size the instance held before is overwritten.
	//   - tableSize is the number of slots (or buckets) the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (slot or bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) is skipped by the probing loop, and
	// results in an error for separate chaining.
	HashFunc1(key string) int64

	// HashFunc2 - Given key it generates the step that is used together with the value from HashFunc1 in
	// a call to ProbeIteration. The function is only used by the step probing table.
	HashFunc2(key string) int64

	// GetTableSize - Returns the table size the implemented hash functions are supporting
	// The table allocates exactly this number of slots, so an implementation that adjusts the size given in
	// SetTableSize must report the adjusted size here.
	GetTableSize() int64

	// ProbeIteration - Returns a slot index given values from HashFunc1 and HashFunc2 in iteration.
	// Since this function will be called repeatedly in a collision resolution situation, and the actual hash values
	// from the HashFunc1 and HashFunc2 are the same throughout iterations for one key, the function takes those values
	// rather than using the actual key as input.
	// The function is not used by the separate chaining table.
	ProbeIteration(hf1Value, hf2Value, iteration int64) int64
}

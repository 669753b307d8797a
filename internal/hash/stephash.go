package hash

// StepHashAlgorithm - The internally used algorithm for the step probing table. HashFunc1 is the polynomial
// rolling hash and HashFunc2 derives a step size from it that is never zero, so the probe sequence keeps
// moving and visits every slot when the table size is prime.
type StepHashAlgorithm struct {
	tableSize int64
}

// NewStepHashAlgorithm - Returns a pointer to a new StepHashAlgorithm instance
func NewStepHashAlgorithm(tableSize int64) *StepHashAlgorithm {
	ha := &StepHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// The size is used as is, the capacity schedule of the table is expected to hold primes.
func (S *StepHashAlgorithm) SetTableSize(tableSize int64) {
	S.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index between 0 and table size - 1
func (S *StepHashAlgorithm) HashFunc1(key string) int64 {
	return Polynomial(key, S.tableSize)
}

// HashFunc2 - Given key it generates a step size between 1 and table size - 1
func (S *StepHashAlgorithm) HashFunc2(key string) int64 {
	return 1 + (Polynomial(key, S.tableSize) % (S.tableSize - 1))
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (S *StepHashAlgorithm) GetTableSize() int64 {
	return S.tableSize
}

// ProbeIteration - Returns the slot visited in the given iteration, i.e. the start slot advanced by
// iteration steps and wrapped around the table.
func (S *StepHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return (hf1Value + iteration*hf2Value) % S.tableSize
}

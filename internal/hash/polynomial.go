package hash

// Seed - Initial multiplier of the polynomial rolling hash
const Seed int64 = 31415

// Base - Factor the multiplier is advanced with for every character
const Base int64 = 31

// Polynomial - Rolling hash over the characters (runes) of key, reduced modulo tableSize.
// The multiplier starts at Seed and is advanced as a = a*Base mod (tableSize-1) for every character,
// which makes the result depend on tableSize; a table must rehash all keys when its size changes.
// tableSize must be at least 2.
func Polynomial(key string, tableSize int64) int64 {
	var value int64
	a := Seed
	for _, c := range key {
		value = (int64(c) + a*value) % tableSize
		a = a * Base % (tableSize - 1)
	}

	return value
}

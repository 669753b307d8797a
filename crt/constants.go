package crt

// StepProbing - Open addressing with double hashing, the step size is derived from the key
const StepProbing = 1

// SeparateChaining - Each bucket holds a singly linked chain of records
const SeparateChaining = 2

// Name - Returns a human readable name of a collision resolution technique
func Name(technique int) string {
	switch technique {
	case StepProbing:
		return "StepProbing"
	case SeparateChaining:
		return "SeparateChaining"
	default:
		return "Unknown"
	}
}

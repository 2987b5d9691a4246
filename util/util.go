package util

// Unpack spreads a slice over the given pointers, mainly for splitting
// command strings into named parts.
// Extra slice elements are dropped; pointers beyond the slice length
// keep their current value.
func Unpack[T any](toUnpack []T, unpackInto ...*T) {
	n := len(toUnpack)
	if len(unpackInto) < n {
		n = len(unpackInto)
	}
	for i := 0; i < n; i++ {
		*unpackInto[i] = toUnpack[i]
	}
}

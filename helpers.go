package texel

func ensureSliceSize[T any](slice []T, size int) []T {
	// easy case: slice is big enough already
	if len(slice) >= size { return slice }

	// see if we have enough capacity...
	if cap(slice) >= size {
		return slice[ : size]
	} else { // ...or allocate new slice otherwise
		return make([]T, size)
	}
}

package domain

// PickDistinct returns count elements of pool in shuffled order, without
// replacement. The shuffle is Fisher-Yates where step i swaps with
// j = floor(SeededRandom(seed+i) * (i+1)). pool is not modified.
func PickDistinct[T any](pool []T, count, seed int) ([]T, error) {
	if count < 0 || count > len(pool) {
		return nil, ErrInvalidCount
	}

	shuffled := make([]T, len(pool))
	copy(shuffled, pool)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := pickIndex(seed+i, i+1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled[:count:count], nil
}

package predicate

// Filter returns the elements of items satisfying p, in input order. The
// input slice is never mutated; a nil input yields an empty, non-nil result.
func Filter[T any](items []T, p Predicate[T]) []T {
	result := make([]T, 0, len(items))

	for _, item := range items {
		if p(item) {
			result = append(result, item)
		}
	}

	return result
}

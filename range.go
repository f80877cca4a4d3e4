package mathx

// Range is an ordered pair of bounds. No Min <= Max invariant is
// enforced; inverted ranges are valid remap sources and targets.
type Range[T Float] struct {
	Min T
	Max T
}

// Length returns Max - Min. Negative for inverted ranges.
func (r Range[T]) Length() T {
	return r.Max - r.Min
}

// Contains reports whether x lies within the bounds, ends included.
// Swapped bounds are tolerated.
func (r Range[T]) Contains(x T) bool {
	min, max := r.Min, r.Max
	if min > max {
		min, max = max, min
	}

	return x >= min && x <= max
}

// Clamp limits x to the inclusive range, tolerating swapped bounds.
func (r Range[T]) Clamp(x T) T {
	min, max := r.Min, r.Max
	if min > max {
		min, max = max, min
	}

	if x < min {
		return min
	}

	if x > max {
		return max
	}

	return x
}

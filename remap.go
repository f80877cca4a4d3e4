package mathx

// RemapUnit rescales x, treated as normalized in [0, 1], into the range
// [newMin, newMax]. Inputs outside [0, 1] extrapolate.
func RemapUnit[T Float](x, newMin, newMax T) T {
	return x*(newMax-newMin) + newMin
}

// Remap normalizes x relative to [srcMin, srcMax] and rescales it into
// [newMin, newMax]. Equal source bounds divide by zero and propagate
// NaN/Inf per floating-point semantics; callers are responsible for
// supplying distinct source bounds.
func Remap[T Float](x, srcMin, srcMax, newMin, newMax T) T {
	normalized := (x - srcMin) / (srcMax - srcMin)

	return RemapUnit(normalized, newMin, newMax)
}

// RemapUnitRange rescales x, treated as normalized in [0, 1], into newRange.
func RemapUnitRange[T Float](x T, newRange Range[T]) T {
	return RemapUnit(x, newRange.Min, newRange.Max)
}

// RemapRange normalizes x relative to srcRange and rescales it into newRange.
func RemapRange[T Float](x T, srcRange, newRange Range[T]) T {
	return Remap(x, srcRange.Min, srcRange.Max, newRange.Min, newRange.Max)
}

package mathx

import "unsafe"

// InterleavedToComplex reinterprets an interleaved [re, im, re, im, ...]
// buffer as a complex view of half the length over the same memory. No
// copy is made and no arithmetic occurs: writes through the view are
// immediately visible in data and vice versa, and the view is valid only
// as long as data's backing array.
//
// data must have even length, and C must be the complex counterpart of F
// (float32 pairs with complex64, float64 with complex128). Both are
// programmer-error preconditions and violations panic.
//
// Concurrent access to the same memory through both views requires
// external synchronization, exactly as for the underlying slice itself.
func InterleavedToComplex[F Float, C Complex](data []F) []C {
	checkPairLayout[F, C]()

	if len(data)%2 != 0 {
		panic("mathx: interleaved buffer length must be even")
	}

	if len(data) == 0 {
		return nil
	}

	return unsafe.Slice((*C)(unsafe.Pointer(&data[0])), len(data)/2)
}

// ComplexToInterleaved reinterprets a complex buffer as an interleaved
// [re, im, re, im, ...] view of twice the length over the same memory.
// The aliasing, lifetime, and type-pairing rules of
// [InterleavedToComplex] apply unchanged.
func ComplexToInterleaved[F Float, C Complex](data []C) []F {
	checkPairLayout[F, C]()

	if len(data) == 0 {
		return nil
	}

	return unsafe.Slice((*F)(unsafe.Pointer(&data[0])), len(data)*2)
}

// checkPairLayout panics unless C occupies exactly two adjacent Fs.
// The sizes are compile-time constants per instantiation, so mismatched
// pairings fail on first use.
func checkPairLayout[F Float, C Complex]() {
	var f F
	var c C

	if unsafe.Sizeof(c) != 2*unsafe.Sizeof(f) {
		panic("mathx: complex element must be exactly two adjacent reals")
	}
}

// InterleavedToComplex64 views an interleaved float32 buffer as complex64.
func InterleavedToComplex64(data []float32) []complex64 {
	return InterleavedToComplex[float32, complex64](data)
}

// InterleavedToComplex128 views an interleaved float64 buffer as complex128.
func InterleavedToComplex128(data []float64) []complex128 {
	return InterleavedToComplex[float64, complex128](data)
}

// Complex64ToInterleaved views a complex64 buffer as interleaved float32.
func Complex64ToInterleaved(data []complex64) []float32 {
	return ComplexToInterleaved[float32](data)
}

// Complex128ToInterleaved views a complex128 buffer as interleaved float64.
func Complex128ToInterleaved(data []complex128) []float64 {
	return ComplexToInterleaved[float64](data)
}

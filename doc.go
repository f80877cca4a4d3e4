// Package mathx provides small numeric primitives shared by the algo-*
// audio/DSP modules: linear interpolation, range remapping, RMS energy,
// the normalized sinc function, and zero-copy reinterpretation between
// interleaved real sample buffers and complex buffers.
//
// Scalar functions are generic over [Float] and compute in the precision
// of their call site. Nothing here allocates or owns memory; the view
// helpers ([InterleavedToComplex], [ComplexToInterleaved]) return
// non-owning views into caller-owned storage.
//
// There is no recoverable-error surface. Numeric degeneracy (for example
// equal source bounds passed to [Remap]) propagates IEEE NaN/Inf results
// unguarded; violated view preconditions are programmer errors and panic.
package mathx

package mathx

import (
	"math"

	algofft "github.com/cwbudde/algo-fft"
)

// Float is the type constraint for scalar precisions supported by this
// package. The canonical definition lives in algo-fft so that buffers
// flow between the two modules without conversion.
type Float = algofft.Float

// Complex is the type constraint for complex element types accepted by
// the view helpers.
type Complex = algofft.Complex

// sincEpsilon bounds the region around zero where Sinc returns 1,
// sidestepping the removable 0/0 singularity at the origin.
const sincEpsilon = 1e-6

// Lerp returns the point ratio of the way between start and end.
// ratio is not clamped; values outside [0, 1] extrapolate.
func Lerp[T Float](start, end, ratio T) T {
	return start + (end-start)*ratio
}

// Sinc returns the normalized sinc sin(πx)/(πx), with Sinc(0) == 1.
func Sinc[T Float](x T) T {
	if x < 0 {
		x = -x
	}

	if x < sincEpsilon {
		return 1
	}

	px := math.Pi * float64(x)

	return T(math.Sin(px) / px)
}

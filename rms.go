package mathx

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// RMS returns the root-mean-square of data. Returns 0 for empty input.
func RMS[T Float](data []T) T {
	if len(data) == 0 {
		return 0
	}

	var sumSq T
	for _, x := range data {
		sumSq += x * x
	}

	return T(math.Sqrt(float64(sumSq / T(len(data)))))
}

// meanSquare returns the mean of squares of one channel, 0 if empty.
func meanSquare[T Float](channel []T) T {
	if len(channel) == 0 {
		return 0
	}

	var sumSq T
	for _, x := range channel {
		sumSq += x * x
	}

	return sumSq / T(len(channel))
}

// RMSChannels returns the combined RMS across channels:
//
//	sqrt(mean_over_channels(mean_over_samples(x²)))
//
// equivalent to sqrt((RMS_1² + ... + RMS_N²)/N) when all channels have
// equal length, which is the standard way to report stereo or
// multi-channel level as a single value. Empty channels contribute 0 to
// the channel mean; an empty outer slice returns 0.
func RMSChannels[T Float](channels [][]T) T {
	if len(channels) == 0 {
		return 0
	}

	var sum T
	for _, ch := range channels {
		sum += meanSquare(ch)
	}

	return T(math.Sqrt(float64(sum / T(len(channels)))))
}

// MeanSquare returns the mean of squares of data, 0 for empty input.
// It is the per-channel building block of [RMSChannels], exposed for
// level meters that combine channels themselves.
func MeanSquare(data []float64) float64 {
	return meanSquare(data)
}

// NormalizeRMS scales buf in place so that its RMS equals target, and
// returns the applied gain. Silent or empty buffers are left untouched
// and report a gain of 0.
func NormalizeRMS(buf []float64, target float64) float64 {
	current := RMS(buf)
	if current == 0 {
		return 0
	}

	gain := target / current
	vecmath.ScaleBlock(buf, buf, gain)

	return gain
}

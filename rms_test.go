package mathx

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-mathx/internal/testutil"
)

func TestRMS(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		expected float64
	}{
		{name: "empty", data: nil, expected: 0},
		{name: "silence", data: []float64{0, 0, 0}, expected: 0},
		{name: "square wave", data: []float64{1, -1, 1, -1}, expected: 1},
		{name: "single sample", data: []float64{3}, expected: 3},
		{name: "dc", data: testutil.DC(0.5, 64), expected: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RMS(tt.data)
			if got != tt.expected {
				t.Fatalf("RMS() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRMSSine(t *testing.T) {
	// Ten full cycles, so the discrete RMS is amplitude/sqrt(2).
	sine := testutil.DeterministicSine(1000, 48000, 0.5, 480)
	testutil.RequireNear(t, RMS(sine), 0.5/math.Sqrt2, 1e-9)
}

func TestRMSFloat32(t *testing.T) {
	got := RMS([]float32{1, -1, 1, -1})
	if got != 1 {
		t.Fatalf("RMS() = %v, want 1", got)
	}
}

func TestRMSChannels(t *testing.T) {
	tests := []struct {
		name     string
		channels [][]float64
		expected float64
	}{
		{name: "empty outer", channels: nil, expected: 0},
		{name: "stereo square", channels: [][]float64{{1, -1}, {1, -1}}, expected: 1},
		{name: "empty channel counts as zero", channels: [][]float64{{}, {1, 1}}, expected: math.Sqrt(0.5)},
		{name: "single channel", channels: [][]float64{{1, -1, 1, -1}}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RMSChannels(tt.channels)
			testutil.RequireNear(t, got, tt.expected, 1e-15)
		})
	}
}

func TestRMSChannelsMatchesCombinationFormula(t *testing.T) {
	left := testutil.DeterministicSine(997, 48000, 0.8, 512)
	right := testutil.DeterministicSine(1499, 48000, 0.3, 512)

	l := RMS(left)
	r := RMS(right)
	want := math.Sqrt((l*l + r*r) / 2)

	testutil.RequireNear(t, RMSChannels([][]float64{left, right}), want, 1e-12)
}

func TestMeanSquare(t *testing.T) {
	if got := MeanSquare(nil); got != 0 {
		t.Fatalf("MeanSquare() = %v, want 0", got)
	}

	if got := MeanSquare([]float64{1, 2}); got != 2.5 {
		t.Fatalf("MeanSquare() = %v, want 2.5", got)
	}
}

func TestNormalizeRMS(t *testing.T) {
	buf := testutil.DeterministicSine(1000, 48000, 0.25, 480)

	gain := NormalizeRMS(buf, 0.5)
	testutil.RequireNear(t, RMS(buf), 0.5, 1e-9)

	if gain <= 0 {
		t.Fatalf("gain = %v, want > 0", gain)
	}
}

func TestNormalizeRMSSilence(t *testing.T) {
	buf := []float64{0, 0, 0, 0}

	if gain := NormalizeRMS(buf, 1); gain != 0 {
		t.Fatalf("gain = %v, want 0", gain)
	}

	for i, v := range buf {
		if v != 0 {
			t.Fatalf("index %d: buffer mutated to %v", i, v)
		}
	}

	if gain := NormalizeRMS(nil, 1); gain != 0 {
		t.Fatalf("gain = %v, want 0 for empty buffer", gain)
	}
}

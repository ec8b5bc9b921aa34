package core

import "math"

// PingPong returns a value that moves from 0 to length and back as t grows.
func PingPong(t, length float64) float64 {
	if length <= 0 {
		return 0
	}
	t = math.Mod(t, length*2)
	if t < 0 {
		t += length * 2
	}
	return length - math.Abs(t-length)
}

// Lerp interpolates between a and b; t is clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	return a + (b-a)*t
}

// Background describes the oscillating decoration behind the lane.
// Each character swings between base-Amplitude and base+Amplitude.
type Background struct {
	Amplitude float64
	Period    float64 // Time to travel from one extreme to the other
}

// Offset returns the horizontal offset of the decoration at time t.
func (b Background) Offset(t float64) float64 {
	if b.Period <= 0 {
		return -b.Amplitude
	}
	return Lerp(-b.Amplitude, b.Amplitude, PingPong(t, b.Period)/b.Period)
}

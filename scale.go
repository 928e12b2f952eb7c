package funtils

import "math"

// NewScale builds a clamped linear interpolation function mapping the input
// range [inMin, inMax] onto the output range [outMin, outMax]:
//
//	out = outMin + (outMax-outMin) * (x-inMin) / (inMax-inMin)
//
// The result is clamped into the numeric span of the output pair, so a
// descending range (outMin > outMax) interpolates downward and still clamps
// correctly. Inputs below inMin map to outMin and inputs above inMax map to
// outMax.
//
// The input range is not validated: inMin == inMax divides by zero and the
// resulting Inf/NaN propagates per IEEE semantics.
//
// Example:
//
//	toPercent := funtils.NewScale(5, 10, 0, 100)
//	toPercent(7.5) // 50
//	toPercent(4)   // 0 (clamped)
func NewScale(inMin, inMax, outMin, outMax float64) func(float64) float64 {
	lo := math.Min(outMin, outMax)
	hi := math.Max(outMin, outMax)
	return func(x float64) float64 {
		out := outMin + (outMax-outMin)*(x-inMin)/(inMax-inMin)
		return math.Min(math.Max(out, lo), hi)
	}
}

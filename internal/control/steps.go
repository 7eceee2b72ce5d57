package control

import "math"

// ladder holds the mantissas of the 1-2-5 sequence within one decade.
var ladder = [...]float64{1, 2, 5}

// decompose splits v > 0 into mantissa in [1, 10) and a power of ten.
func decompose(v float64) (mant, scale float64) {
	scale = math.Pow(10, math.Floor(math.Log10(v)))
	mant = v / scale
	// Log10 of exact powers of ten can land a hair below the integer.
	if mant >= 10 {
		mant /= 10
		scale *= 10
	}
	if mant < 1 {
		mant *= 10
		scale /= 10
	}
	return mant, scale
}

const ladderEps = 1e-9

// nextStep returns the smallest 1-2-5 ladder value strictly above v. Values
// below 1 step to 1.
func nextStep(v float64) float64 {
	if v < 1 {
		return 1
	}
	mant, scale := decompose(v)
	for _, m := range ladder {
		if m > mant*(1+ladderEps) {
			return m * scale
		}
	}
	return 10 * scale
}

// prevStep returns the largest 1-2-5 ladder value strictly below v, but never
// less than floor.
func prevStep(v, floor float64) float64 {
	if v <= floor {
		return floor
	}
	mant, scale := decompose(v)
	next := floor
	found := false
	for i := len(ladder) - 1; i >= 0; i-- {
		if ladder[i] < mant*(1-ladderEps) {
			next = ladder[i] * scale
			found = true
			break
		}
	}
	if !found {
		next = 5 * scale / 10
	}
	if next < floor {
		return floor
	}
	return next
}

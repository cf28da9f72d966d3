package utils

import "math"

// FloorDiv divides a by b and rounds toward negative infinity, so that
// positions just before an origin land on index -1 rather than 0.
func FloorDiv(a, b float32) int {
	return int(math.Floor(float64(a) / float64(b)))
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

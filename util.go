package peekmore

import "math"

// minInt returns the minimum of two integers.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// saturatingAdd adds two non-negative integers, saturating at the maximum
// integer value instead of overflowing.
func saturatingAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

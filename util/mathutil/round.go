package mathutil

import (
	"math"

	"github.com/chewxy/math32"
)

// Rounds to the nearest integer, ties to even.
func Rint(v float32) float32 {
	// float32 -> float64 is exact, so is the result back to float32
	return float32(math.RoundToEven(float64(v)))
}

// Nearest even integer: round half the value, then double it.
func RoundEven(v float32) float32 {
	return 2 * Rint(v*0.5)
}

func NearlyEqual(a, b, tol float32) bool {
	return math32.Abs(a-b) <= tol
}

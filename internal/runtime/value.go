package runtime

import (
	"math"
	"strconv"
)

// Truncate converts an evaluation result to the integer returned to callers.
// It truncates toward zero and saturates like a Java (int) cast: NaN becomes
// 0 and values beyond the int32 range clamp to MinInt32 / MaxInt32. Division
// by zero therefore yields MaxInt32, MinInt32 or 0 instead of failing.
func Truncate(v float64) int32 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	default:
		return int32(v)
	}
}

// FormatNumber renders an intermediate value the way it is stored, e.g.
// "3.5", "+Inf" or "NaN".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

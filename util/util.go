package util

// RangeLinearF returns n values evenly spaced inside (min, max),
// endpoints excluded.
func RangeLinearF(n int, min, max float64) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	step := (max - min) / (float64(n) + 1)
	for i := 0; i < n; i++ {
		out[i] = min + step*(float64(i)+1)
	}
	return out
}

func ClampF(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

package modem

// Int32ToFloat64 converts full-scale int32 PCM to unit-range float64.
func Int32ToFloat64(input []int32) []float64 {
	output := make([]float64, len(input))
	for i, v := range input {
		output[i] = float64(v) / 0x7fffffff
	}
	return output
}

// Float64ToInt32 converts unit-range float64 samples to full-scale int32 PCM.
func Float64ToInt32(input []float64) []int32 {
	output := make([]int32, len(input))
	for i, v := range input {
		output[i] = int32(v * 0x7fffffff)
	}
	return output
}

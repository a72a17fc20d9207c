package tables

// q15 divides each value by 2^15.
func q15(values ...int32) []float32 { return scaled(32768, values...) }

// q13 divides each value by 2^13.
func q13(values ...int32) []float32 { return scaled(8192, values...) }

func scaled(divisor float32, values ...int32) []float32 {
	out := make([]float32, len(values))
	for i, v := range values {
		out[i] = float32(v) / divisor
	}
	return out
}

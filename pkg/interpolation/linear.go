package interpolation

type linear struct{}

// NewLinear returns an Interpolator that ramps linearly from the last value
// of `before` to the first value of `after`.
//
// The ramp is accumulated sample by sample (each value is the previous one
// plus a constant step) rather than computed in a closed form, so the last
// synthesized value only approximates the value it ramps to.
func NewLinear() Interpolator {
	return &linear{}
}

func (l *linear) Interpolate(before, after []float64, gapLen int) []float64 {
	result := make([]float64, gapLen)
	if len(before) == 0 || len(after) == 0 {
		return result
	}
	leftValue := before[len(before)-1]
	rightValue := after[0]

	// the flanks are at positions -1 and gapLen
	left, right := -1, gapLen
	step := (leftValue - rightValue) / float64(left-right)

	prev := leftValue
	for i := range gapLen {
		prev += step
		result[i] = prev
	}
	return result
}

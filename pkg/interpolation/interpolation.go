package interpolation

// Interpolator synthesizes the values of a gap of gapLen samples
// located between `before` and `after`.
type Interpolator interface {
	Interpolate(before, after []float64, gapLen int) []float64
}

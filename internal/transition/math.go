package transition

// FractionComplete clamps v to [0, 1].
func FractionComplete(v float64) float64 {
	return max(0, min(v, 1))
}

// OneThird returns a third of v.
func OneThird(v float64) float64 {
	return v / 3
}

// TwoThirds returns v minus a third of v.
func TwoThirds(v float64) float64 {
	return v - OneThird(v)
}

// Lerp interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

package salary

const (
	lowerOnlyFactor = 1.2
	upperOnlyFactor = 0.8
)

// Estimate picks one representative salary from a possibly open range.
// A nil bound is absent. The second result is false when neither bound is set.
func Estimate(from, to *int) (int, bool) {
	switch {
	case from != nil && to != nil:
		return floorDiv(*from+*to, 2), true
	case from != nil:
		return int(float64(*from) * lowerOnlyFactor), true
	case to != nil:
		return int(float64(*to) * upperOnlyFactor), true
	default:
		return 0, false
	}
}

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

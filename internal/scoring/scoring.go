// Package scoring maps a signed ounce deviation to a point value.
package scoring

// Points returns the score for an ounce amount using the fixed step table.
// The table is monotonic non-decreasing and symmetric around the neutral
// band [-24, 24), which scores exactly 0. Each threshold is a strict `<`
// against ascending cutoffs, so e.g. Points(-24) == 0 and Points(120) == 2.
//
// The curve is fixed at compile time. Records store the value returned at
// creation, so changing the table never rewrites history.
func Points(oz float64) float64 {
	switch {
	case oz < -120:
		return -2
	case oz < -90:
		return -1.5
	case oz < -60:
		return -1
	case oz < -24:
		return -0.5
	case oz < 24:
		return 0
	case oz < 60:
		return 0.5
	case oz < 90:
		return 1
	case oz < 120:
		return 1.5
	default:
		return 2
	}
}

package validate

import "math"

// TotalInches converts a feet+inches form entry into total inches, the
// unit the height column stores.
func TotalInches(feet, inches float64) float64 {
	return feet*12 + inches
}

// FeetInches splits a stored total back into feet and inches for display.
// Totals of zero or less mean "not specified" and split to (0, 0).
func FeetInches(total float64) (feet, inches float64) {
	if total <= 0 {
		return 0, 0
	}
	feet = math.Floor(total / 12)
	return feet, total - feet*12
}

package oop

import "strconv"

// formatFloat renders f the way a default-configured C stream does: %g with six
// significant digits and no trailing zeros.
func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', 6, 32)
}

package taylor

import "strconv"

// ResultLabel prefixes the single line of user-facing output.
const ResultLabel = "The calculated interest rate is: "

// FormatRate renders a recommendation with exactly two decimal places and
// a percent sign, e.g. 2.0 -> "2.00%", -0.5 -> "-0.50%". Rounding happens
// only here; the computed value is never rounded internally.
func FormatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 2, 64) + "%"
}

// ResultLine returns the complete output line for a recommendation.
func ResultLine(rate float64) string {
	return ResultLabel + FormatRate(rate)
}

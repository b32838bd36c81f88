package taylor

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field names used in prompts and error messages, in prompt order.
const (
	FieldEquilibrium = "equilibrium rate"
	FieldInflation   = "inflation rate"
	FieldTarget      = "target inflation rate"
	FieldGap         = "output gap"
)

// InvalidInputError reports a value that failed numeric parsing. It is the
// only domain error kind: once all four inputs parse, the computation
// cannot fail.
type InvalidInputError struct {
	Field string // which input the value answered
	Raw   string // the offending text
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %q is not a numeric value", e.Field, e.Raw)
}

// ParseInput parses one raw text value for the named field. Surrounding
// whitespace is tolerated; anything strconv cannot read as a finite float,
// including NaN and infinities, yields an *InvalidInputError.
func ParseInput(field, raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &InvalidInputError{Field: field, Raw: trimmed}
	}
	return value, nil
}

func formatRaw(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

package taylor

import "math"

// Weights of the modified Taylor Rule. Fixed by construction: the rule is
// a policy heuristic, not a fitted model, so the coefficients are not
// configurable.
const (
	InflationWeight = 1.5
	OutputGapWeight = 0.5
)

// Conventional ECB anchors, used as flag defaults for non-interactive runs.
const (
	DefaultEquilibrium = 1.0 // long-run neutral rate estimate (%)
	DefaultTarget      = 2.0 // inflation target (%)
)

// Inputs holds the four terms of the rule. All values are plain percent
// numbers (3 means 3%, not 0.03) and each may be negative.
type Inputs struct {
	Equilibrium float64 // long-term neutral rate
	Inflation   float64 // current inflation rate
	Target      float64 // target inflation rate
	Gap         float64 // output gap vs potential GDP
}

// Validate rejects non-finite terms. The rule itself places no bound on
// sign or magnitude.
func (in Inputs) Validate() error {
	for _, term := range []struct {
		field string
		value float64
	}{
		{FieldEquilibrium, in.Equilibrium},
		{FieldInflation, in.Inflation},
		{FieldTarget, in.Target},
		{FieldGap, in.Gap},
	} {
		if math.IsNaN(term.value) || math.IsInf(term.value, 0) {
			return &InvalidInputError{Field: term.field, Raw: formatRaw(term.value)}
		}
	}
	return nil
}

// Recommend applies the modified Taylor Rule:
//
//	rate = equilibrium + 1.5*(inflation - target) + 0.5*gap
//
// Pure computation, no rounding, no clamping. Negative recommendations
// are valid outputs; the ECB has operated below zero.
func Recommend(in Inputs) float64 {
	return in.Equilibrium + InflationWeight*(in.Inflation-in.Target) + OutputGapWeight*in.Gap
}

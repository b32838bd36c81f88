package taylor_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawpanic/policyrate/internal/taylor"
)

func TestRecommend_Scenarios(t *testing.T) {
	testCases := []struct {
		name     string
		inputs   taylor.Inputs
		expected float64
	}{
		{
			name:     "below_potential_economy",
			inputs:   taylor.Inputs{Equilibrium: 1, Inflation: 3, Target: 2, Gap: -1},
			expected: 2.0, // 1 + 1.5*1 - 0.5
		},
		{
			name:     "on_target_no_gap",
			inputs:   taylor.Inputs{Equilibrium: 0, Inflation: 2, Target: 2, Gap: 0},
			expected: 0.0,
		},
		{
			name:     "undershooting_inflation_overheating_output",
			inputs:   taylor.Inputs{Equilibrium: 1, Inflation: 1, Target: 2, Gap: 2},
			expected: 0.5, // 1 - 1.5 + 1
		},
		{
			name:     "high_inflation_boom",
			inputs:   taylor.Inputs{Equilibrium: 2, Inflation: 5, Target: 2, Gap: 3},
			expected: 8.0, // 2 + 4.5 + 1.5
		},
		{
			name:     "negative_recommendation",
			inputs:   taylor.Inputs{Equilibrium: 0, Inflation: 1, Target: 2, Gap: -2},
			expected: -2.5, // 0 - 1.5 - 1
		},
		{
			name:     "all_zero",
			inputs:   taylor.Inputs{},
			expected: 0.0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, taylor.Recommend(tc.inputs), 1e-9)
		})
	}
}

func TestRecommend_GapLinearity(t *testing.T) {
	base := taylor.Inputs{Equilibrium: 1.25, Inflation: 3.7, Target: 2}

	for _, gap := range []float64{-10, -2.5, -1, 0, 0.5, 1, 4, 25} {
		withGap := base
		withGap.Gap = gap
		delta := taylor.Recommend(withGap) - taylor.Recommend(base)
		assert.InDelta(t, taylor.OutputGapWeight*gap, delta, 1e-9, "gap=%v", gap)
	}
}

func TestInputs_Validate(t *testing.T) {
	valid := taylor.Inputs{Equilibrium: 1, Inflation: -3, Target: 2, Gap: -1.5}
	require.NoError(t, valid.Validate())

	nonFinite := []taylor.Inputs{
		{Equilibrium: math.NaN()},
		{Inflation: math.Inf(1)},
		{Target: math.Inf(-1)},
		{Gap: math.NaN()},
	}
	for _, in := range nonFinite {
		err := in.Validate()
		require.Error(t, err)

		var invalid *taylor.InvalidInputError
		assert.True(t, errors.As(err, &invalid))
	}
}

func TestParseInput(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected float64
		wantErr  bool
	}{
		{name: "plain_integer", raw: "3", expected: 3},
		{name: "decimal", raw: "2.5", expected: 2.5},
		{name: "negative", raw: "-1", expected: -1},
		{name: "surrounding_whitespace", raw: "  0.75\n", expected: 0.75},
		{name: "scientific_notation", raw: "1e1", expected: 10},
		{name: "words", raw: "two", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "comma_decimal_separator", raw: "1,5", wantErr: true},
		{name: "trailing_units", raw: "3%", wantErr: true},
		{name: "nan_literal", raw: "NaN", wantErr: true},
		{name: "inf_literal", raw: "+Inf", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value, err := taylor.ParseInput(taylor.FieldInflation, tc.raw)
			if tc.wantErr {
				require.Error(t, err)

				var invalid *taylor.InvalidInputError
				require.True(t, errors.As(err, &invalid))
				assert.Equal(t, taylor.FieldInflation, invalid.Field)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, value, 1e-9)
		})
	}
}

func TestFormatRate(t *testing.T) {
	testCases := []struct {
		rate     float64
		expected string
	}{
		{2.0, "2.00%"},
		{0.0, "0.00%"},
		{0.5, "0.50%"},
		{-0.5, "-0.50%"},
		{8.0, "8.00%"},
		{0.25, "0.25%"},
		{10, "10.00%"},
		{123.456, "123.46%"},
		{-2.5, "-2.50%"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, taylor.FormatRate(tc.rate), "rate=%v", tc.rate)
	}
}

func TestResultLine(t *testing.T) {
	rate := taylor.Recommend(taylor.Inputs{Equilibrium: 1, Inflation: 3, Target: 2, Gap: -1})
	assert.Equal(t, "The calculated interest rate is: 2.00%", taylor.ResultLine(rate))
}

func TestInvalidInputError_Message(t *testing.T) {
	err := &taylor.InvalidInputError{Field: taylor.FieldGap, Raw: "abc"}
	assert.Equal(t, `invalid output gap: "abc" is not a numeric value`, err.Error())
}

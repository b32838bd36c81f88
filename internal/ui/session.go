package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/sawpanic/policyrate/internal/config"
	"github.com/sawpanic/policyrate/internal/taylor"
)

const banner = "ECB Interest Rate Calculator based on Modified Taylor Rule"

// Session drives the canonical interactive flow: banner, four prompts in
// fixed order, one result line. Input and output are injected so the flow
// is testable without a TTY.
type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	prompt config.PromptConfig
}

// NewSession builds a session reading prompted values from in and writing
// prompts and the result line to out.
func NewSession(in io.Reader, out io.Writer, prompt config.PromptConfig) *Session {
	return &Session{
		in:     bufio.NewScanner(in),
		out:    out,
		prompt: prompt,
	}
}

// Run executes one calculation. On invalid input under the terminate
// policy it returns the *taylor.InvalidInputError without printing a
// result line; under the reprompt policy it asks again up to the
// configured attempt budget. No partial output is ever produced.
func (s *Session) Run() error {
	fmt.Fprintln(s.out, banner)

	var inputs taylor.Inputs
	prompts := []struct {
		label string
		field string
		dst   *float64
	}{
		{"Enter the equilibrium rate (%): ", taylor.FieldEquilibrium, &inputs.Equilibrium},
		{"Enter the current inflation rate (%): ", taylor.FieldInflation, &inputs.Inflation},
		{"Enter the target inflation rate (%): ", taylor.FieldTarget, &inputs.Target},
		{"Enter the output gap (%): ", taylor.FieldGap, &inputs.Gap},
	}

	for _, p := range prompts {
		value, err := s.promptValue(p.label, p.field)
		if err != nil {
			return err
		}
		*p.dst = value
	}

	rate := taylor.Recommend(inputs)
	log.Debug().
		Float64("equilibrium", inputs.Equilibrium).
		Float64("inflation", inputs.Inflation).
		Float64("target", inputs.Target).
		Float64("gap", inputs.Gap).
		Float64("rate", rate).
		Msg("recommendation computed")

	fmt.Fprintln(s.out, taylor.ResultLine(rate))
	return nil
}

// promptValue asks for one value, applying the configured invalid-input
// policy. Attempts are budgeted per prompt, not per session.
func (s *Session) promptValue(label, field string) (float64, error) {
	attempts := 1
	if s.prompt.OnInvalid == config.OnInvalidReprompt {
		attempts = s.prompt.MaxAttempts
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		fmt.Fprint(s.out, label)

		raw, err := s.readLine(field)
		if err != nil {
			return 0, err
		}

		value, err := taylor.ParseInput(field, raw)
		if err == nil {
			return value, nil
		}
		lastErr = err

		if i < attempts-1 {
			var invalid *taylor.InvalidInputError
			if errors.As(err, &invalid) {
				fmt.Fprintf(s.out, "Not a numeric value: %q. Try again.\n", invalid.Raw)
			}
		}
	}
	return 0, lastErr
}

func (s *Session) readLine(field string) (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read %s: %w", field, err)
		}
		return "", fmt.Errorf("failed to read %s: %w", field, io.EOF)
	}
	return s.in.Text(), nil
}

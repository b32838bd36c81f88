package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sawpanic/policyrate/internal/config"
	"github.com/sawpanic/policyrate/internal/taylor"
	"github.com/sawpanic/policyrate/internal/ui"
)

const (
	appName = "PolicyRate"
	version = "v1.0.0"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	rootCmd := &cobra.Command{
		Use:     "policyrate",
		Short:   "Interest-rate recommendations from the modified Taylor Rule",
		Version: version,
		Long: `PolicyRate computes an interest-rate recommendation from the modified
Taylor Rule: equilibrium + 1.5*(inflation - target) + 0.5*(output gap).

THE INTERACTIVE PROMPT IS THE PRIMARY INTERFACE
   Run 'policyrate' in a terminal to be prompted for the four inputs.
   The 'rate' subcommand is an automation shim for non-interactive use.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDefaultEntry, // TTY detection and prompt routing
	}

	rootCmd.PersistentFlags().String("config", "config/policyrate.yaml", "Path to YAML configuration")
	rootCmd.PersistentFlags().Bool("quiet", false, "Log warnings and errors only")

	promptCmd := &cobra.Command{
		Use:   "prompt",
		Short: "Interactive calculator (canonical UX)",
		Long:  "Prompt for the four rule inputs and print the recommendation",
		RunE:  runPrompt,
	}

	rateCmd := &cobra.Command{
		Use:   "rate",
		Short: "Compute a recommendation from flags",
		Long:  "Automation shim: compute the Taylor Rule recommendation from flags instead of prompts",
		RunE:  runRate,
	}

	rateCmd.Flags().Float64("equilibrium", taylor.DefaultEquilibrium, "Long-term neutral rate (%)")
	rateCmd.Flags().Float64("inflation", 0, "Current inflation rate (%)")
	rateCmd.Flags().Float64("target", taylor.DefaultTarget, "Target inflation rate (%)")
	rateCmd.Flags().Float64("gap", 0, "Output gap vs potential GDP (%)")
	rateCmd.MarkFlagRequired("inflation")

	rootCmd.AddCommand(promptCmd) // Prompt first
	rootCmd.AddCommand(rateCmd)   // Automation

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// runDefaultEntry implements TTY detection and routing to the prompt flow
func runDefaultEntry(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(os.Stderr, "Interactive prompting requires a TTY terminal.\n")
		fmt.Fprintf(os.Stderr, "Use the rate subcommand for non-interactive automation:\n\n")
		fmt.Fprintf(os.Stderr, "  policyrate rate --inflation 3 --gap -1\n")
		fmt.Fprintf(os.Stderr, "  policyrate --help\n")
		os.Exit(2)
	}

	return runPrompt(cmd, args)
}

// runPrompt starts the interactive calculator session
func runPrompt(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log.Debug().Str("on_invalid", cfg.Prompt.OnInvalid).Msg("starting interactive session")

	session := ui.NewSession(os.Stdin, os.Stdout, cfg.Prompt)
	if err := session.Run(); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}
	return nil
}

// runRate computes the recommendation directly from CLI flags
func runRate(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}

	equilibrium, _ := cmd.Flags().GetFloat64("equilibrium")
	inflation, _ := cmd.Flags().GetFloat64("inflation")
	target, _ := cmd.Flags().GetFloat64("target")
	gap, _ := cmd.Flags().GetFloat64("gap")

	inputs := taylor.Inputs{
		Equilibrium: equilibrium,
		Inflation:   inflation,
		Target:      target,
		Gap:         gap,
	}
	if err := inputs.Validate(); err != nil {
		return err
	}

	rate := taylor.Recommend(inputs)
	log.Debug().Float64("rate", rate).Msg("recommendation computed")

	fmt.Println(taylor.ResultLine(rate))
	return nil
}

// loadConfig resolves the persistent config flags and applies log settings
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	quiet, _ := cmd.Flags().GetBool("quiet")

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	level := cfg.LogLevel()
	if quiet && level < zerolog.WarnLevel {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)

	return cfg, nil
}

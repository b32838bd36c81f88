package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Invalid-input policies for the interactive session.
const (
	OnInvalidTerminate = "terminate" // reject and exit, no result line
	OnInvalidReprompt  = "reprompt"  // ask again, bounded by max_attempts
)

// Config is the runtime configuration for policyrate.
type Config struct {
	Prompt PromptConfig `yaml:"prompt"`
	Log    LogConfig    `yaml:"log"`
}

// PromptConfig controls the interactive session's handling of bad input.
type PromptConfig struct {
	OnInvalid   string `yaml:"on_invalid"`   // terminate | reprompt
	MaxAttempts int    `yaml:"max_attempts"` // per prompt, reprompt mode only
}

// LogConfig controls log verbosity.
type LogConfig struct {
	Level string `yaml:"level"` // zerolog level name
}

// Default returns the built-in configuration: terminate on invalid input,
// matching the calculator's historical behavior.
func Default() Config {
	return Config{
		Prompt: PromptConfig{
			OnInvalid:   OnInvalidTerminate,
			MaxAttempts: 3,
		},
		Log: LogConfig{
			Level: zerolog.InfoLevel.String(),
		},
	}
}

// Load reads the YAML configuration at path over the defaults. A missing
// file is not an error: the defaults apply unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if problems := cfg.Validate(); len(problems) > 0 {
		return cfg, fmt.Errorf("invalid config %s: %s", path, strings.Join(problems, "; "))
	}

	return cfg, nil
}

// Validate collects every problem found rather than stopping at the first.
func (c Config) Validate() []string {
	var problems []string

	switch c.Prompt.OnInvalid {
	case OnInvalidTerminate, OnInvalidReprompt:
	default:
		problems = append(problems, fmt.Sprintf("prompt.on_invalid %q must be %q or %q",
			c.Prompt.OnInvalid, OnInvalidTerminate, OnInvalidReprompt))
	}

	if c.Prompt.MaxAttempts < 1 {
		problems = append(problems, fmt.Sprintf("prompt.max_attempts %d must be at least 1", c.Prompt.MaxAttempts))
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, fmt.Sprintf("log.level %q is not a known level", c.Log.Level))
	}

	return problems
}

// LogLevel parses the configured level. Call only after Validate.
func (c Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"guessgame/internal/game"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "guess.yaml"

// Config holds all guess configuration.
type Config struct {
	// Target range, inclusive on both ends
	Range RangeConfig `yaml:"range"`

	// Print the secret after the banner. Debugging aid, spoils the game.
	RevealTarget bool `yaml:"reveal_target"`

	// Terminal output
	Output OutputConfig `yaml:"output"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// RangeConfig bounds the target value.
type RangeConfig struct {
	Min uint32 `yaml:"min"`
	Max uint32 `yaml:"max"`
}

// OutputConfig controls how messages are rendered.
type OutputConfig struct {
	Style string `yaml:"style"` // auto, plain, color
	Theme string `yaml:"theme"` // dark, light
}

// LoggingConfig configures diagnostic logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
	File   string `yaml:"file"`   // empty means stderr
}

// Valid values for the enumerated settings.
var (
	ValidStyles     = []string{"auto", "plain", "color"}
	ValidThemes     = []string{"dark", "light"}
	ValidLogLevels  = []string{"debug", "info", "warn", "error"}
	ValidLogFormats = []string{"console", "json"}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Range: RangeConfig{
			Min: game.DefaultRange.Min,
			Max: game.DefaultRange.Max,
		},
		RevealTarget: false,
		Output: OutputConfig{
			Style: "auto",
			Theme: "dark",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Defaults if the file doesn't exist
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// applyEnvOverrides applies environment variable overrides.
// Values that do not parse are ignored.
func (c *Config) applyEnvOverrides() {
	if v, ok := envUint32("GUESS_MIN"); ok {
		c.Range.Min = v
	}
	if v, ok := envUint32("GUESS_MAX"); ok {
		c.Range.Max = v
	}
	if s := os.Getenv("GUESS_REVEAL_TARGET"); s != "" {
		if b, err := strconv.ParseBool(s); err == nil {
			c.RevealTarget = b
		}
	}
	if s := os.Getenv("GUESS_LOG_LEVEL"); s != "" {
		c.Logging.Level = strings.ToLower(s)
	}
	if s := os.Getenv("GUESS_OUTPUT_STYLE"); s != "" {
		c.Output.Style = strings.ToLower(s)
	}
}

func envUint32(key string) (uint32, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

// GameRange returns the configured target range.
func (c *Config) GameRange() game.Range {
	return game.Range{Min: c.Range.Min, Max: c.Range.Max}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.GameRange().Validate(); err != nil {
		return fmt.Errorf("range: %w", err)
	}
	if !oneOf(c.Output.Style, ValidStyles) {
		return fmt.Errorf("invalid output style: %s (valid: %v)", c.Output.Style, ValidStyles)
	}
	if !oneOf(c.Output.Theme, ValidThemes) {
		return fmt.Errorf("invalid output theme: %s (valid: %v)", c.Output.Theme, ValidThemes)
	}
	if !oneOf(c.Logging.Level, ValidLogLevels) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	if !oneOf(c.Logging.Format, ValidLogFormats) {
		return fmt.Errorf("invalid log format: %s (valid: %v)", c.Logging.Format, ValidLogFormats)
	}
	return nil
}

func oneOf(v string, valid []string) bool {
	for _, s := range valid {
		if v == s {
			return true
		}
	}
	return false
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mimicfs/mimicfs/internal/util"
)

// Config contains runtime configuration values for the simulated filesystem
// and its interactive front ends.
type Config struct {
	LogLvl           util.LogLevel // Internal log level (Default info)
	Prompt           string        `validate:"required"` // Prompt prefix for interactive modes (Default "FileSystem")
	SortListings     bool          // Sort directory listings alphabetically for display (Default true)
	SuggestEnabled   bool          // Offer "did you mean" hints for unknown commands (Default true)
	SuggestThreshold float64       `validate:"gte=0,lte=1"` // Minimum similarity for a suggestion (Default 0.72)
	EndMarker        string        `validate:"required"` // Line terminating multi-line content entry (Default "END")
}

// ConfigOverride uses pointer fields to distinguish between unset and zero
// values when loading partial configuration. See [Config] for field
// descriptions. LogLvl here is the CLI verbosity (1 error .. 5 trace), not
// the internal level.
type ConfigOverride struct {
	LogLvl           *int     `yaml:"verbose,omitempty" json:"verbose,omitempty"`
	Prompt           *string  `yaml:"prompt,omitempty" json:"prompt,omitempty"`
	SortListings     *bool    `yaml:"sort_listings,omitempty" json:"sort_listings,omitempty"`
	SuggestEnabled   *bool    `yaml:"suggest_enabled,omitempty" json:"suggest_enabled,omitempty"`
	SuggestThreshold *float64 `yaml:"suggest_threshold,omitempty" json:"suggest_threshold,omitempty"`
	EndMarker        *string  `yaml:"end_marker,omitempty" json:"end_marker,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLvl:           DefaultLogLvl,
		Prompt:           DefaultPrompt,
		SortListings:     DefaultSortListings,
		SuggestEnabled:   DefaultSuggestEnabled,
		SuggestThreshold: DefaultSuggestThreshold,
		EndMarker:        DefaultEndMarker,
	}
}

// NewConfig creates a Config from defaults merged with the provided
// override. A nil override yields all defaults.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.LogLvl != nil {
		c.LogLvl = verboseToLevel(*override.LogLvl)
	}
	if override.Prompt != nil {
		c.Prompt = *override.Prompt
	}
	if override.SortListings != nil {
		c.SortListings = *override.SortListings
	}
	if override.SuggestEnabled != nil {
		c.SuggestEnabled = *override.SuggestEnabled
	}
	if override.SuggestThreshold != nil {
		c.SuggestThreshold = *override.SuggestThreshold
	}
	if override.EndMarker != nil {
		c.EndMarker = *override.EndMarker
	}
}

// verboseToLevel converts a CLI verbosity (1 error .. 5 trace) to an
// internal log level, clamping out-of-range values.
func verboseToLevel(verbose int) util.LogLevel {
	if verbose < ErrorVerbose {
		verbose = ErrorVerbose
	}
	if verbose > TraceVerbose {
		verbose = TraceVerbose
	}
	lvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	return lvls[verbose-1]
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with
// defaults and validating the result.
func NewConfigFromFile(path string) (*Config, error) {
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg := NewConfig(override)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Package cliconfig provides configuration types and loading for the randr CLI.
package cliconfig

import (
	"fmt"
	"slices"
	"strings"
)

// CLIConfig represents the complete configuration for the randr CLI.
// Configuration values can come from multiple sources with the following precedence:
// 1. Command-line flags (highest priority)
// 2. Environment variables (RANDR_*)
// 3. Local config file (.randrrc.yaml in current directory)
// 4. Global config file (~/.config/randr/config.yaml)
// 5. Default values (lowest priority)
type CLIConfig struct {
	// Sampling
	Count int `yaml:"count" json:"count"`

	// Grid layout
	Grid        bool `yaml:"grid" json:"grid"`
	GridCount   int  `yaml:"gridCount" json:"gridCount"`
	GridColumns int  `yaml:"gridColumns" json:"gridColumns"`
	Width       int  `yaml:"width,omitempty" json:"width,omitempty"`

	// Output settings
	JSON      bool   `yaml:"json" json:"json"`
	Verbose   bool   `yaml:"verbose" json:"verbose"`
	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`

	// Sources tracks where each value came from (for debugging)
	Sources map[string]string `yaml:"-" json:"-"`

	// SetFields records which yaml keys were present in a loaded file, so an
	// explicit false can override a true from a lower layer.
	SetFields map[string]bool `yaml:"-" json:"-"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFlag    = "flag"
)

// LogLevels are the accepted logLevel values, matched ignoring case.
var LogLevels = []string{"debug", "info", "warn", "warning", "error"}

// MaxGridCount caps the number of samples a single-format grid may request.
const MaxGridCount = 1000

// Validate checks that every value is usable by the CLI.
func (c *CLIConfig) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("count %d must be at least 1", c.Count)
	}
	if c.GridCount < 1 || c.GridCount > MaxGridCount {
		return fmt.Errorf("gridCount %d is out of range (1-%d)", c.GridCount, MaxGridCount)
	}
	if c.GridColumns < 1 {
		return fmt.Errorf("gridColumns %d must be at least 1", c.GridColumns)
	}
	if c.Width < 0 {
		return fmt.Errorf("width %d cannot be negative", c.Width)
	}
	if c.LogLevel != "" && !slices.Contains(LogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("logLevel %q is not one of %s", c.LogLevel, strings.Join(LogLevels, ", "))
	}
	return nil
}

package cliconfig

import (
	"os"
	"strconv"
)

// Environment variable names
const (
	EnvCount       = "RANDR_COUNT"
	EnvGrid        = "RANDR_GRID"
	EnvGridCount   = "RANDR_GRID_COUNT"
	EnvGridColumns = "RANDR_GRID_COLUMNS"
	EnvWidth       = "RANDR_WIDTH"
	EnvJSON        = "RANDR_JSON"
	EnvVerbose     = "RANDR_VERBOSE"
	EnvLogLevel    = "RANDR_LOG_LEVEL"
	EnvLogFormat   = "RANDR_LOG_FORMAT"
)

// LoadEnvConfig loads configuration from environment variables.
// It only sets values that are present in the environment; unparsable
// numbers are ignored.
func LoadEnvConfig(cfg *CLIConfig) {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	envInt(EnvCount, "count", &cfg.Count, cfg.Sources)
	envInt(EnvGridCount, "gridCount", &cfg.GridCount, cfg.Sources)
	envInt(EnvGridColumns, "gridColumns", &cfg.GridColumns, cfg.Sources)
	envInt(EnvWidth, "width", &cfg.Width, cfg.Sources)

	envBool(EnvGrid, "grid", &cfg.Grid, cfg.Sources)
	envBool(EnvJSON, "json", &cfg.JSON, cfg.Sources)
	envBool(EnvVerbose, "verbose", &cfg.Verbose, cfg.Sources)

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		cfg.Sources["logLevel"] = SourceEnv
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
		cfg.Sources["logFormat"] = SourceEnv
	}
}

func envInt(name, key string, dst *int, sources map[string]string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*dst = n
	sources[key] = SourceEnv
}

func envBool(name, key string, dst *bool, sources map[string]string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*dst = v == "true" || v == "1" || v == "yes"
	sources[key] = SourceEnv
}

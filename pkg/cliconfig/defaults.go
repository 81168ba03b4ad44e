package cliconfig

// DefaultCount is the number of samples printed per format.
const DefaultCount = 3

// DefaultGridCount is the number of samples in a single-format grid.
const DefaultGridCount = 30

// DefaultGridColumns is the column count of a single-format grid.
const DefaultGridColumns = 3

// DefaultLogLevel is the minimum diagnostic log level.
const DefaultLogLevel = "warn"

// DefaultLogFormat is the diagnostic log format.
const DefaultLogFormat = "text"

// NewDefault creates a new CLIConfig with default values.
func NewDefault() *CLIConfig {
	cfg := &CLIConfig{
		Count:       DefaultCount,
		GridCount:   DefaultGridCount,
		GridColumns: DefaultGridColumns,
		LogLevel:    DefaultLogLevel,
		LogFormat:   DefaultLogFormat,
		Sources:     make(map[string]string),
	}

	// Mark all as default source
	for _, key := range []string{"count", "grid", "gridCount", "gridColumns", "width", "json", "verbose", "logLevel", "logFormat"} {
		cfg.Sources[key] = SourceDefault
	}

	return cfg
}

package cliconfig

// MergeConfig merges source config into target, updating sources tracking.
// Only non-zero values from source are applied.
func MergeConfig(target, source *CLIConfig, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	if source.Count != 0 {
		target.Count = source.Count
		target.Sources["count"] = sourceType
	}
	if source.GridCount != 0 {
		target.GridCount = source.GridCount
		target.Sources["gridCount"] = sourceType
	}
	if source.GridColumns != 0 {
		target.GridColumns = source.GridColumns
		target.Sources["gridColumns"] = sourceType
	}
	if source.Width != 0 {
		target.Width = source.Width
		target.Sources["width"] = sourceType
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
		target.Sources["logLevel"] = sourceType
	}
	if source.LogFormat != "" {
		target.LogFormat = source.LogFormat
		target.Sources["logFormat"] = sourceType
	}
	// For booleans, checking `if source.X` cannot detect an explicit false.
	// SetFields (populated during file loading) says whether the key was
	// present; programmatic configs without it only merge true values.
	if boolIsSet(source, "grid") {
		target.Grid = source.Grid
		target.Sources["grid"] = sourceType
	}
	if boolIsSet(source, "json") {
		target.JSON = source.JSON
		target.Sources["json"] = sourceType
	}
	if boolIsSet(source, "verbose") {
		target.Verbose = source.Verbose
		target.Sources["verbose"] = sourceType
	}
}

// boolIsSet reports whether a boolean field identified by its YAML key was
// explicitly set in the source config.
func boolIsSet(cfg *CLIConfig, yamlKey string) bool {
	if cfg.SetFields != nil {
		return cfg.SetFields[yamlKey]
	}
	switch yamlKey {
	case "grid":
		return cfg.Grid
	case "json":
		return cfg.JSON
	case "verbose":
		return cfg.Verbose
	}
	return false
}

package cliconfig

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// GlobalConfigDir is the directory for global config
	GlobalConfigDir = "randr"
)

// LocalConfigFileNames are the names to search for local config (in order).
var LocalConfigFileNames = []string{".randrrc.yaml", ".randrrc.yml"}

// GlobalConfigFileNames are the names to search for global config (in order).
var GlobalConfigFileNames = []string{"config.yaml", "config.yml"}

// FindLocalConfig searches for .randrrc.yaml or .randrrc.yml in the current directory.
func FindLocalConfig() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return firstExisting(cwd, LocalConfigFileNames), nil
}

// FindGlobalConfig returns the path to the global config file.
// Returns empty string if not found.
func FindGlobalConfig() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		//nolint:nilerr // no config dir means no global config
		return "", nil
	}
	return firstExisting(filepath.Join(configDir, GlobalConfigDir), GlobalConfigFileNames), nil
}

func firstExisting(dir string, names []string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadConfigFile loads a CLIConfig from a YAML file.
func LoadConfigFile(path string) (*CLIConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg CLIConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, configError(path, err)
	}

	var keys map[string]any
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return nil, configError(path, err)
	}
	cfg.SetFields = make(map[string]bool, len(keys))
	for k := range keys {
		cfg.SetFields[k] = true
	}

	cfg.Sources = make(map[string]string)
	return &cfg, nil
}

func configError(path string, err error) *ConfigError {
	ce := &ConfigError{Path: path, Message: err.Error()}
	var te *yaml.TypeError
	if errors.As(err, &te) && len(te.Errors) > 0 {
		ce.Message = te.Errors[0]
	}
	return ce
}

// ConfigError represents a configuration file error with location info.
type ConfigError struct {
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Path + ": " + e.Message
}

// LoadAll loads configuration from all sources and merges them.
// Precedence: env > local config > global config > defaults. Flags are
// applied by the caller on top of the result.
func LoadAll() (*CLIConfig, error) {
	cfg := NewDefault()

	globalPath, err := FindGlobalConfig()
	if err != nil {
		return nil, err
	}
	if err := mergeFile(cfg, globalPath, SourceGlobal); err != nil {
		return nil, err
	}

	localPath, err := FindLocalConfig()
	if err != nil {
		return nil, err
	}
	if err := mergeFile(cfg, localPath, SourceLocal); err != nil {
		return nil, err
	}

	LoadEnvConfig(cfg)

	return cfg, nil
}

func mergeFile(cfg *CLIConfig, path, source string) error {
	if path == "" {
		return nil
	}
	fileCfg, err := LoadConfigFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	MergeConfig(cfg, fileCfg, source)
	return nil
}

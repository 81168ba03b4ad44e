package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  CLIConfig
		wantErr string
	}{
		{
			name:    "valid defaults",
			config:  *NewDefault(),
			wantErr: "",
		},
		{
			name:    "valid custom values",
			config:  CLIConfig{Count: 10, GridCount: 60, GridColumns: 4, Width: 200},
			wantErr: "",
		},
		{
			name:    "zero count",
			config:  CLIConfig{Count: 0, GridCount: 30, GridColumns: 3},
			wantErr: "count 0 must be at least 1",
		},
		{
			name:    "grid count too high",
			config:  CLIConfig{Count: 3, GridCount: 5000, GridColumns: 3},
			wantErr: "gridCount 5000 is out of range",
		},
		{
			name:    "zero grid columns",
			config:  CLIConfig{Count: 3, GridCount: 30, GridColumns: 0},
			wantErr: "gridColumns 0 must be at least 1",
		},
		{
			name:    "mixed-case log level",
			config:  CLIConfig{Count: 3, GridCount: 30, GridColumns: 3, LogLevel: "Debug"},
			wantErr: "",
		},
		{
			name:    "unknown log level",
			config:  CLIConfig{Count: 3, GridCount: 30, GridColumns: 3, LogLevel: "trace"},
			wantErr: `logLevel "trace" is not one of debug, info, warn, warning, error`,
		},
		{
			name:    "negative width",
			config:  CLIConfig{Count: 3, GridCount: 30, GridColumns: 3, Width: -1},
			wantErr: "width -1 cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.wantErr)
				} else if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
				}
			}
		})
	}
}

func TestMergeConfig_BasicFields(t *testing.T) {
	t.Run("merges non-zero values", func(t *testing.T) {
		target := NewDefault()
		source := &CLIConfig{
			Count:     7,
			LogLevel:  "debug",
			LogFormat: "json",
			SetFields: map[string]bool{"count": true, "logLevel": true, "logFormat": true},
		}

		MergeConfig(target, source, SourceLocal)

		assert.Equal(t, 7, target.Count)
		assert.Equal(t, "debug", target.LogLevel)
		assert.Equal(t, SourceLocal, target.Sources["logLevel"])
		assert.Equal(t, "json", target.LogFormat)
		assert.Equal(t, SourceLocal, target.Sources["count"])
		assert.Equal(t, SourceDefault, target.Sources["gridCount"])
	})

	t.Run("does not overwrite with zero values", func(t *testing.T) {
		target := NewDefault()
		MergeConfig(target, &CLIConfig{Count: 0}, SourceLocal)
		assert.Equal(t, DefaultCount, target.Count)
	})

	t.Run("handles boolean false with SetFields", func(t *testing.T) {
		target := NewDefault()
		target.Grid = true

		source := &CLIConfig{
			Grid:      false,
			SetFields: map[string]bool{"grid": true},
		}

		MergeConfig(target, source, SourceLocal)

		assert.False(t, target.Grid)
		assert.Equal(t, SourceLocal, target.Sources["grid"])
	})

	t.Run("does not merge boolean false without SetFields", func(t *testing.T) {
		target := NewDefault()
		target.Verbose = true

		MergeConfig(target, &CLIConfig{Verbose: false}, SourceLocal)

		assert.True(t, target.Verbose)
	})

	t.Run("nil source is no-op", func(t *testing.T) {
		target := NewDefault()
		MergeConfig(target, nil, SourceLocal)
		assert.Equal(t, NewDefault(), target)
	})
}

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv(EnvCount, "5")
	t.Setenv(EnvGrid, "yes")
	t.Setenv(EnvGridColumns, "not-a-number")
	t.Setenv(EnvWidth, "132")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvLogLevel, "info")

	cfg := NewDefault()
	LoadEnvConfig(cfg)

	assert.Equal(t, 5, cfg.Count)
	assert.True(t, cfg.Grid)
	assert.Equal(t, DefaultGridColumns, cfg.GridColumns, "unparsable value is ignored")
	assert.Equal(t, 132, cfg.Width)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, SourceEnv, cfg.Sources["logLevel"])
	assert.Equal(t, SourceEnv, cfg.Sources["count"])
	assert.Equal(t, SourceDefault, cfg.Sources["gridColumns"])
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: 4\ngrid: false\ngridColumns: 5\n"), 0o600))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Count)
	assert.Equal(t, 5, cfg.GridColumns)
	assert.True(t, cfg.SetFields["grid"])
	assert.False(t, cfg.SetFields["json"])
}

func TestLoadConfigFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: lots\n"), 0o600))

	_, err := LoadConfigFile(path)
	require.Error(t, err)

	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, path, ce.Path)
	assert.Contains(t, err.Error(), path+": ")
}

func TestLoadAll_Precedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	t.Setenv("AppData", home)

	configDir, err := os.UserConfigDir()
	require.NoError(t, err)
	globalDir := filepath.Join(configDir, GlobalConfigDir)
	require.NoError(t, os.MkdirAll(globalDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.yaml"),
		[]byte("count: 4\ngridColumns: 6\ngrid: true\n"), 0o600))

	work := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(work, ".randrrc.yaml"),
		[]byte("count: 8\ngrid: false\n"), 0o600))
	t.Chdir(work)

	t.Setenv(EnvGridColumns, "2")

	cfg, err := LoadAll()
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Count)
	assert.Equal(t, SourceLocal, cfg.Sources["count"])
	assert.False(t, cfg.Grid, "local explicit false overrides global true")
	assert.Equal(t, 2, cfg.GridColumns)
	assert.Equal(t, SourceEnv, cfg.Sources["gridColumns"])
	assert.Equal(t, DefaultGridCount, cfg.GridCount)
}

func TestLoadAll_BrokenLocalFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)

	work := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(work, ".randrrc.yml"), []byte("count: [1, 2\n"), 0o600))
	t.Chdir(work)

	_, err := LoadAll()
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ".randrrc.yml", filepath.Base(ce.Path))
}

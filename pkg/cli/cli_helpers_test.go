package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/getmockd/randr/pkg/cliconfig"
)

// ─── Test infrastructure ────────────────────────────────────────────────────

var testBuildInfo = BuildInfo{Version: "1.2.3", Commit: "abc123", BuildDate: "2026-01-01"}

// isolate keeps the user's config files and RANDR_* variables out of a test.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("HOME", dir)
	t.Setenv("COLUMNS", "")
	for _, env := range []string{
		cliconfig.EnvCount, cliconfig.EnvGrid, cliconfig.EnvGridCount, cliconfig.EnvGridColumns,
		cliconfig.EnvWidth, cliconfig.EnvJSON, cliconfig.EnvVerbose, cliconfig.EnvLogLevel, cliconfig.EnvLogFormat,
	} {
		t.Setenv(env, "")
	}
	t.Chdir(dir)
	return dir
}

// runCLI executes randr with args in an isolated environment.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	isolate(t)

	var out, errOut bytes.Buffer
	code = ExecuteArgs(testBuildInfo, args, &out, &errOut)
	return out.String(), errOut.String(), code
}

// gridCells returns the non-empty cell texts of every table row in s.
// Border-only lines contribute nothing.
func gridCells(s string) []string {
	var cells []string
	for _, line := range strings.Split(s, "\n") {
		if !strings.Contains(line, "│") {
			continue
		}
		for _, cell := range strings.Split(line, "│") {
			if c := strings.TrimSpace(cell); c != "" {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

package cli

import (
	"io"

	"github.com/getmockd/randr/pkg/cli/internal/output"
)

// printResult outputs a command result.
//
// Contract: when --json is active, ONLY the JSON encoding of data is written
// to out. Human-readable prose (hints, warnings) must go to stderr or be
// omitted entirely. textFn is called only in text mode.
func printResult(out io.Writer, jsonOutput bool, data any, textFn func() error) error {
	if jsonOutput {
		return output.JSON(out, data)
	}
	return textFn()
}

// randr CLI - print random identifiers in memorable and machine-friendly formats
package main

import (
	"os"

	"github.com/getmockd/randr/pkg/cli"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	return cli.Execute(cli.BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
	})
}

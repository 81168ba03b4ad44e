// Package cli provides the command-line interface for randr.
//
// The root command prints random identifiers:
//   - randr: three samples of every format, ranked by entropy
//   - randr FORMAT: samples of one format, matched case- and space-insensitively
//   - randr list: the format catalog with entropy and one example each
//   - randr version: build information
//   - randr completion: shell completion scripts
//
// Layout flags:
//   - --grid: lay out samples as tables sized to the terminal
//   - --count, --grid-count, --grid-columns, --width: tune sample counts and layout
//   - --json: machine-readable output for every command
//   - --interactive: pick the format from a menu
//
// Settings may also come from .randrrc.yaml, ~/.config/randr/config.yaml and
// RANDR_* environment variables (see package cliconfig).
//
// Usage:
//
//	randr
//	randr geo --count 5
//	randr name --grid
//	randr --grid --width 160
//	randr list --json
package cli

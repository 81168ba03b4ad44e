package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/getmockd/randr/pkg/cli/internal/output"
	"github.com/getmockd/randr/pkg/cli/internal/termsize"
	"github.com/getmockd/randr/pkg/format"
	"github.com/spf13/cobra"
)

// FormatSamples is the JSON shape of one format and its generated samples.
type FormatSamples struct {
	Format  format.Format `json:"format"`
	Name    string        `json:"name"`
	Entropy int           `json:"entropy"`
	Samples []string      `json:"samples"`
}

// UnknownFormatOutput is the JSON shape printed when FORMAT matches nothing.
type UnknownFormatOutput struct {
	Error     string   `json:"error"`
	Input     string   `json:"input"`
	Available []string `json:"available"`
}

func newFormatSamples(f format.Format, n int) FormatSamples {
	return FormatSamples{
		Format:  f,
		Name:    f.DisplayName(),
		Entropy: f.Entropy(),
		Samples: format.Samples(f, n),
	}
}

// runGenerate is the root command: one format when FORMAT is given, every
// format otherwise.
func runGenerate(cmd *cobra.Command, opts *rootOptions, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		if !opts.flags.interactive {
			return printAllFormats(out, opts)
		}
		f, err := pickFormat()
		if err != nil {
			return err
		}
		return printFormat(out, opts, f)
	}

	if opts.flags.interactive {
		output.Warn(cmd.ErrOrStderr(), "--interactive is ignored when FORMAT is given")
	}

	f, ok := format.Resolve(args[0])
	if !ok {
		opts.logger.Debug("no format matched", "input", args[0])
		return printUnknownFormat(out, opts, args[0])
	}
	opts.logger.Debug("resolved format", "input", args[0], "format", f.Label())
	return printFormat(out, opts, f)
}

// printFormat prints samples of a single format, as a list or as a grid.
func printFormat(out io.Writer, opts *rootOptions, f format.Format) error {
	cfg := opts.cfg
	n := cfg.Count
	if cfg.Grid {
		n = cfg.GridCount
	}
	result := newFormatSamples(f, n)

	return printResult(out, cfg.JSON, result, func() error {
		if cfg.Grid {
			_, err := fmt.Fprintf(out, "%s:\n%s\n", result.Name, renderSampleGrid(result.Samples, cfg.GridColumns))
			return err
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%s:\n", result.Name)
		for _, s := range result.Samples {
			fmt.Fprintf(&b, "  %s\n", s)
		}
		_, err := io.WriteString(out, b.String())
		return err
	})
}

// printAllFormats prints samples of every format in catalog order.
func printAllFormats(out io.Writer, opts *rootOptions) error {
	cfg := opts.cfg
	all := format.All()
	results := make([]FormatSamples, 0, len(all))
	for _, f := range all {
		results = append(results, newFormatSamples(f, cfg.Count))
	}

	return printResult(out, cfg.JSON, results, func() error {
		if cfg.Grid {
			width := termsize.Resolve(cfg.Width, out)
			grid, cols := renderFormatGrid(results, width)
			opts.logger.Debug("grid layout", "width", width, "columns", cols)
			_, err := fmt.Fprintln(out, grid)
			return err
		}

		w := output.Table(out)
		_, _ = fmt.Fprintln(w, "FORMAT\tEXAMPLES")
		for _, r := range results {
			_, _ = fmt.Fprintf(w, "%s\t%s\n", r.Name, strings.Join(r.Samples, ", "))
		}
		return w.Flush()
	})
}

// printUnknownFormat reports an unmatched FORMAT together with every valid
// name. It is not an error: the command still succeeds.
func printUnknownFormat(out io.Writer, opts *rootOptions, input string) error {
	result := UnknownFormatOutput{
		Error:     "unknown format",
		Input:     input,
		Available: format.Names(),
	}

	return printResult(out, opts.cfg.JSON, result, func() error {
		var b strings.Builder
		fmt.Fprintf(&b, "Unknown format: %s\n", input)
		b.WriteString("Available formats:\n")
		for _, name := range result.Available {
			fmt.Fprintf(&b, "  - %s\n", name)
		}
		_, err := io.WriteString(out, b.String())
		return err
	})
}

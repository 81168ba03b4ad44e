package cli

import (
	"fmt"

	"github.com/getmockd/randr/pkg/cli/internal/output"
	"github.com/getmockd/randr/pkg/format"
	"github.com/spf13/cobra"
)

// ListEntry is the JSON shape of one catalog entry.
type ListEntry struct {
	Format  format.Format `json:"format"`
	Name    string        `json:"name"`
	Entropy int           `json:"entropy"`
	Example string        `json:"example"`
}

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "formats"},
		Short:   "List every format with its entropy and an example",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			all := format.All()
			entries := make([]ListEntry, 0, len(all))
			for _, f := range all {
				entries = append(entries, ListEntry{
					Format:  f,
					Name:    f.DisplayName(),
					Entropy: f.Entropy(),
					Example: format.Generate(f),
				})
			}

			return printResult(out, opts.cfg.JSON, entries, func() error {
				w := output.Table(out)
				_, _ = fmt.Fprintln(w, "FORMAT\tBITS\tEXAMPLE")
				for _, e := range entries {
					_, _ = fmt.Fprintf(w, "%s\t%d\t%s\n", e.Format.Label(), e.Entropy, e.Example)
				}
				return w.Flush()
			})
		},
	}
}

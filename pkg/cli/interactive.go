package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/getmockd/randr/pkg/cli/internal/termsize"
	"github.com/getmockd/randr/pkg/format"
)

// pickFormat asks the user to choose a format from a menu ordered like the
// catalog.
func pickFormat() (format.Format, error) {
	if !termsize.IsTerminal(os.Stdin) {
		return 0, ErrNotInteractive
	}

	all := format.All()
	options := make([]huh.Option[format.Format], 0, len(all))
	for _, f := range all {
		options = append(options, huh.NewOption(f.DisplayName(), f))
	}

	picked := all[0]
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[format.Format]().
				Title("Which format should be generated?").
				Options(options...).
				Value(&picked),
		),
	)
	if err := form.Run(); err != nil {
		return 0, fmt.Errorf("format picker: %w", err)
	}
	return picked, nil
}

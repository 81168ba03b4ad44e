package format

import (
	"strings"

	"golang.org/x/text/cases"
)

// Resolve looks up a format by name. Matching ignores case and whitespace and
// accepts either the canonical label ("geo", "G E O") or the full display name
// ("geo (21)"). The second result is false when nothing matches.
func Resolve(name string) (Format, bool) {
	fold := cases.Fold()
	want := normalize(fold, name)
	if want == "" {
		return 0, false
	}
	for _, f := range ranked {
		if normalize(fold, f.Label()) == want || normalize(fold, f.DisplayName()) == want {
			return f, true
		}
	}
	return 0, false
}

func normalize(fold cases.Caser, s string) string {
	return fold.String(strings.Join(strings.Fields(s), ""))
}

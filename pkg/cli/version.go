package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// VersionOutput represents JSON output format
type VersionOutput struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

// resolveBuildInfo fills values that were not injected via ldflags from the
// module build info embedded by the Go toolchain.
func resolveBuildInfo(info BuildInfo) BuildInfo {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.BuildDate == "" {
		info.BuildDate = "unknown"
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" {
		info.Version = bi.Main.Version
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.Commit == "none" {
				info.Commit = setting.Value
			}
		case "vcs.time":
			if info.BuildDate == "unknown" {
				info.BuildDate = setting.Value
			}
		case "vcs.modified":
			if setting.Value == "true" {
				info.Commit += "-dirty"
			}
		}
	}
	return info
}

// displayVersion prefixes release versions with "v".
func displayVersion(info BuildInfo) string {
	v := info.Version
	if len(v) > 0 && v[0] != 'v' && v != "dev" && v != "(devel)" {
		v = "v" + v
	}
	return v
}

func newVersionCmd(info BuildInfo, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show randr version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved := resolveBuildInfo(info)
			out := VersionOutput{
				Version: resolved.Version,
				Commit:  resolved.Commit,
				Date:    resolved.BuildDate,
				Go:      runtime.Version(),
				OS:      runtime.GOOS,
				Arch:    runtime.GOARCH,
			}

			w := cmd.OutOrStdout()
			return printResult(w, opts.cfg.JSON, out, func() error {
				_, err := fmt.Fprintf(w, "randr %s (%s, %s)\n%s %s/%s\n",
					displayVersion(resolved), out.Commit, out.Date, out.Go, out.OS, out.Arch)
				return err
			})
		},
	}
}

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/getmockd/randr/pkg/cliconfig"
	"github.com/getmockd/randr/pkg/format"
	"github.com/getmockd/randr/pkg/logging"
	"github.com/spf13/cobra"
)

// BuildInfo carries version metadata injected at build time via ldflags.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

// rootOptions is the state shared by every command of one invocation.
type rootOptions struct {
	flags struct {
		count       int
		grid        bool
		gridCount   int
		gridColumns int
		width       int
		json        bool
		verbose     bool
		logLevel    string
		logFormat   string
		interactive bool
	}

	// cfg is the effective configuration once flags are applied.
	cfg    *cliconfig.CLIConfig
	logger *slog.Logger
}

// NewRootCmd builds the randr command tree.
func NewRootCmd(info BuildInfo) *cobra.Command {
	opts := &rootOptions{logger: logging.Nop()}

	rootCmd := &cobra.Command{
		Use:   "randr [FORMAT]",
		Short: "Generate random identifiers in memorable and machine-friendly formats",
		Long: `randr prints random identifiers: UUIDs, URL-safe tokens, API keys and
word-based names such as "brave-dolphin-42" or "orion-a7b".

Without FORMAT, three samples of every format are shown, ranked by estimated
entropy. FORMAT is matched against the format labels ignoring case and spaces,
so "geo", "GEO" and "Geo (21)" are equivalent. Run 'randr list' to see every
format.`,
		Args:              cobra.MaximumNArgs(1),
		Version:           displayVersion(resolveBuildInfo(info)),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.load,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, args)
		},
		ValidArgsFunction: completeFormats,
	}
	rootCmd.SetVersionTemplate("randr {{.Version}}\n")

	f := rootCmd.Flags()
	f.IntVarP(&opts.flags.count, "count", "n", cliconfig.DefaultCount, "Samples per format")
	f.BoolVarP(&opts.flags.grid, "grid", "g", false, "Lay out samples as tables sized to the terminal")
	f.IntVar(&opts.flags.gridCount, "grid-count", cliconfig.DefaultGridCount, "Samples in a single-format grid")
	f.IntVar(&opts.flags.gridColumns, "grid-columns", cliconfig.DefaultGridColumns, "Columns in a single-format grid")
	f.IntVar(&opts.flags.width, "width", 0, "Display width for --grid (default: detect, then $COLUMNS, then 80)")
	f.BoolVarP(&opts.flags.interactive, "interactive", "i", false, "Pick the format from a menu")

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&opts.flags.json, "json", false, "Output results in JSON format")
	pf.BoolVar(&opts.flags.verbose, "verbose", false, "Log diagnostics to stderr")
	pf.StringVar(&opts.flags.logLevel, "log-level", cliconfig.DefaultLogLevel, "Diagnostic log level: debug, info, warn or error")
	pf.StringVar(&opts.flags.logFormat, "log-format", cliconfig.DefaultLogFormat, "Diagnostic log format: text or json")

	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newVersionCmd(info, opts))

	return rootCmd
}

// Execute runs the CLI with os.Args and returns the process exit code.
func Execute(info BuildInfo) int {
	return ExecuteArgs(info, os.Args[1:], os.Stdout, os.Stderr)
}

// ExecuteArgs runs the CLI with explicit arguments and writers.
func ExecuteArgs(info BuildInfo, args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd(info)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// load merges file and environment configuration with the flags given on the
// command line, then validates the result.
func (o *rootOptions) load(cmd *cobra.Command, _ []string) error {
	cfg, err := cliconfig.LoadAll()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	applyFlag(cmd, cfg, "count", &cfg.Count, o.flags.count)
	applyFlag(cmd, cfg, "grid", &cfg.Grid, o.flags.grid)
	applyFlag(cmd, cfg, "grid-count", &cfg.GridCount, o.flags.gridCount)
	applyFlag(cmd, cfg, "grid-columns", &cfg.GridColumns, o.flags.gridColumns)
	applyFlag(cmd, cfg, "width", &cfg.Width, o.flags.width)
	applyFlag(cmd, cfg, "json", &cfg.JSON, o.flags.json)
	applyFlag(cmd, cfg, "verbose", &cfg.Verbose, o.flags.verbose)
	applyFlag(cmd, cfg, "log-level", &cfg.LogLevel, o.flags.logLevel)
	applyFlag(cmd, cfg, "log-format", &cfg.LogFormat, o.flags.logFormat)

	o.cfg = cfg
	o.logger = logging.ForCLI(cmd.ErrOrStderr(), cfg.LogLevel, cfg.Verbose, cfg.LogFormat)
	o.logger.Debug("configuration loaded", "sources", cfg.Sources)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// applyFlag copies a flag value into the config when the user set it
// explicitly. Flags that do not exist on cmd are skipped.
func applyFlag[T any](cmd *cobra.Command, cfg *cliconfig.CLIConfig, name string, dst *T, val T) {
	fl := cmd.Flags().Lookup(name)
	if fl == nil || !fl.Changed {
		return
	}
	*dst = val
	cfg.Sources[flagKey(name)] = cliconfig.SourceFlag
}

// flagKey maps a kebab-case flag name to its camelCase config key.
func flagKey(name string) string {
	parts := strings.Split(name, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

// completeFormats offers the lower-case format labels for shell completion.
func completeFormats(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, f := range format.All() {
		label := strings.ToLower(f.Label())
		if strings.HasPrefix(label, strings.ToLower(toComplete)) {
			out = append(out, label)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

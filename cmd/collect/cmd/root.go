package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	verbose    bool
	outputFmt  string
	selectPath string
	colorize   bool

	cfg    = DefaultConfig()
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:   "collect",
	Short: "Ordered collection operations on JSON, YAML and TOML documents",
	Long: `collect loads a JSON, YAML or TOML document as an ordered collection and
applies one operation to it. Top-level arrays become densely indexed
collections; top-level objects keep their document key order.

The input format is taken from the file extension; "-" reads standard input
in the format configured under [input].

Examples:
  collect unique --by id,age users.json
  collect group --by team --path data.people staff.yaml
  collect column --field name --index-by id users.json
  collect sum --field price -o yaml cart.toml
  collect pack --format toml users.json > users.pack.toml`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file, TOML or YAML (default: $COLLECT_CONFIG)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	pf.StringVarP(&outputFmt, "output", "o", "", "output format: json or yaml (default from config)")
	pf.StringVar(&selectPath, "path", "", "dot path of the collection inside the input document")
	pf.BoolVar(&colorize, "color", false, "colorize JSON output")
}

// setup loads the configuration, applies flag overrides and builds the
// logger shared by all commands.
func setup(cmd *cobra.Command, _ []string) error {
	path := cfgFile
	if path == "" {
		path = os.Getenv("COLLECT_CONFIG")
	}

	cfg = DefaultConfig()
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.Format = outputFmt
	}
	if cmd.Flags().Changed("color") {
		cfg.Output.Color = colorize
	}

	level := parseLevel(cfg.Log.Level)
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	logger.Debug("configuration ready", "config", path, "output", cfg.Output.Format, "pack", cfg.Output.Pack)
	return nil
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelWarn
	}
	return l
}

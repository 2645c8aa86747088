// Package main provides the CLI entry point for filtergen.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/filtergen/filtergen"
	"github.com/filtergen/filtergen/internal/config"
	"github.com/filtergen/filtergen/internal/logging"
	"github.com/filtergen/filtergen/internal/reporter"
)

const (
	appName    = "filtergen"
	appVersion = "0.2.0"
)

// cliFlags holds the root command flags before they are merged over the
// configuration file.
type cliFlags struct {
	configPath     string
	outputPath     string
	dangling       string
	unknownFilters string
	jsonEvents     bool
	verbose        bool
	showVersion    bool
}

func main() {
	var fl cliFlags

	root := &cobra.Command{
		Use:   appName + " [flags] -- <ffmpeg arguments>",
		Short: "Compile ffmpeg filtergraph expressions to C source text",
		Long: `Filtergen reads an ffmpeg-style command line, resolves every
filtergraph expression attached to an output file, and prints the C calls
that would rebuild those graphs through the libavfilter API.

Example:

  filtergen -- -i in.mp4 -vf "split [a][b]; [a] vflip [flip]; [b][flip] overlay=0:0" out.mp4`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fl.showVersion {
				fmt.Printf("%s version %s\n", appName, appVersion)
				return nil
			}
			if len(args) == 0 {
				return cmd.Usage()
			}
			return run(cmd, fl, args)
		},
	}

	root.Flags().StringVarP(&fl.configPath, "config", "c", "", "Path to a TOML configuration file")
	root.Flags().StringVarP(&fl.outputPath, "output", "o", "", "Write the rendered text to a file instead of stdout")
	root.Flags().StringVar(&fl.dangling, "dangling", "", "Dangling pad policy (expose, strict)")
	root.Flags().StringVar(&fl.unknownFilters, "unknown-filters", "", "Unknown filter policy (reject, assume)")
	root.Flags().BoolVar(&fl.jsonEvents, "json", false, "Emit NDJSON compile events on stderr")
	root.Flags().BoolVarP(&fl.verbose, "verbose", "v", false, "Enable verbose output")
	root.Flags().BoolVar(&fl.showVersion, "version", false, "Print version information")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run builds the configuration (file first, flags on top), compiles the
// argument list, and writes the rendered text.
func run(cmd *cobra.Command, fl cliFlags, args []string) error {
	cfg := config.Default()
	if fl.configPath != "" {
		loaded, err := config.Load(fl.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if fl.dangling != "" {
		p, err := config.ParseDanglingPolicy(fl.dangling)
		if err != nil {
			return err
		}
		cfg.Dangling = p
	}
	if fl.unknownFilters != "" {
		p, err := config.ParseUnknownFilterPolicy(fl.unknownFilters)
		if err != nil {
			return err
		}
		cfg.UnknownFilters = p
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputPath = fl.outputPath
	}
	if fl.verbose {
		cfg.Verbose = true
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logging.Init(level, os.Stderr)

	var rep reporter.Reporter = reporter.NewTerminalReporter(cfg.Verbose)
	if fl.jsonEvents {
		rep = reporter.NewCompositeReporter(rep, reporter.NewJSONReporter())
	}

	compiler, err := filtergen.New(filtergen.WithConfig(cfg))
	if err != nil {
		return err
	}

	result, err := compiler.Compile(args, rep)
	if err != nil {
		return err
	}

	if cfg.OutputPath == "" {
		fmt.Print(result.Text)
		return nil
	}
	if err := os.WriteFile(cfg.OutputPath, []byte(result.Text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.OutputPath, err)
	}
	logging.Global().Info("wrote rendered text", "path", cfg.OutputPath, "bytes", len(result.Text))
	return nil
}

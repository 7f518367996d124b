/*
Package commands implements the CLI command structure for dirtree. The
root command renders a directory tree; subcommands cover version
information.
*/
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/a2hop/dirtree/cmd/dirtree/app"
	"github.com/a2hop/dirtree/internal/config"
	"github.com/a2hop/dirtree/pkg/logger"
	"github.com/a2hop/dirtree/pkg/tree"
)

// Options holds the root command flag values alongside the loaded
// configuration.
type Options struct {
	Config *config.Config
	Log    logger.Logger

	depth     int
	all       bool
	unicode   bool
	ascii     bool
	skipDirs  []string
	skipFiles []string
	output    string
	file      string
	stats     bool
	withColor bool
	verbose   int
}

// NewRootCommand creates the root command for the application.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "dirtree [flags] [directory]",
		Short: "Render a directory hierarchy as a tree",
		Long: `dirtree renders a textual tree of a directory hierarchy, skipping
common noise entries like node_modules and .git by default. Output can
be plain text, JSON, or YAML, with configurable depth and skip lists.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeCommand(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runTree(dir, opts)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().IntVarP(&opts.depth, "depth", "d", config.UnlimitedDepth,
		"maximum depth to display (-1 for unlimited)")
	rootCmd.Flags().BoolVarP(&opts.all, "all", "a", false,
		"show all entries, including hidden and commonly skipped ones")
	rootCmd.Flags().BoolVarP(&opts.unicode, "unicode", "u", false,
		"use Unicode box-drawing connectors")
	rootCmd.Flags().BoolVarP(&opts.ascii, "ascii", "A", false,
		"use ASCII connectors")
	rootCmd.Flags().StringSliceVar(&opts.skipDirs, "skip-dir", nil,
		"additional directory name to skip (can be repeated)")
	rootCmd.Flags().StringSliceVar(&opts.skipFiles, "skip-file", nil,
		"additional file name to skip (can be repeated)")
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", config.OutputText,
		"output format: text|json|yaml")
	rootCmd.Flags().StringVarP(&opts.file, "file", "f", "",
		"write output to file instead of stdout")
	rootCmd.Flags().BoolVar(&opts.stats, "stats", false,
		"append directory and file counts after the tree")
	rootCmd.Flags().BoolVar(&opts.withColor, "color", false,
		"colorize directory and symlink names")
	rootCmd.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v",
		"verbose output (can be used multiple times)")

	rootCmd.AddCommand(newVersionCommand(opts))

	return rootCmd
}

// initializeCommand loads the environment configuration and overlays
// any flags the user set explicitly.
func initializeCommand(cmd *cobra.Command, opts *Options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.verbose > 0 {
		cfg.Verbose = opts.verbose
	}

	flags := cmd.Flags()
	if flags.Changed("depth") {
		cfg.Depth = opts.depth
	}
	if flags.Changed("all") {
		cfg.All = opts.all
	}
	if flags.Changed("unicode") {
		cfg.Format = config.FormatUnicode
	}
	if flags.Changed("ascii") {
		cfg.Format = config.FormatASCII
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("file") {
		cfg.OutputFile = opts.file
	}
	cfg.SkipDirs = append(cfg.SkipDirs, opts.skipDirs...)
	cfg.SkipFiles = append(cfg.SkipFiles, opts.skipFiles...)

	if err := cfg.Validate(); err != nil {
		return err
	}

	opts.Config = &cfg
	opts.Log = logger.NewLogger(logger.Config{
		Verbosity: cfg.Verbose,
	})

	opts.Log.WithFields(logger.Fields{
		"command": cmd.Name(),
		"config":  cfg.String(),
	}).Debug("Command initialized")

	return nil
}

// runTree translates the CLI configuration into a tree.Config and runs
// the render through the application container.
func runTree(dir string, opts *Options) error {
	cfg := opts.Config

	treeCfg := tree.DefaultConfig()
	treeCfg.MaxDepth = cfg.Depth
	if cfg.All {
		treeCfg.SkipCommon = false
		treeCfg.SkipHidden = false
	}
	switch cfg.Format {
	case config.FormatASCII:
		treeCfg.Format = tree.FormatASCII
	case config.FormatUnicode:
		treeCfg.Format = tree.FormatUnicode
	}
	for _, name := range cfg.SkipDirs {
		treeCfg.AddSkipDir(name)
	}
	for _, name := range cfg.SkipFiles {
		treeCfg.AddSkipFile(name)
	}
	treeCfg.WithColors = opts.withColor && !cfg.NoColor
	treeCfg.WithStats = opts.stats

	application := app.New(cfg, opts.Log)
	defer application.Shutdown()

	return application.Run(dir, treeCfg)
}

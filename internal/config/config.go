/*
Package config loads CLI configuration for dirtree from environment
variables and validates it. Command-line flags take precedence over the
environment; both feed the caller-owned tree.Config handed to the
renderer, so no process-wide mutable state survives loading.

Environment Variables:

	DIRTREE_DEPTH         Maximum depth to display (-1 for unlimited)
	DIRTREE_ALL           Disable skipping of common and hidden entries
	DIRTREE_FORMAT        Connector style: ascii|unicode (default: platform)
	DIRTREE_OUTPUT        Output format: text|json|yaml
	DIRTREE_OUTPUT_FILE   Write output to this file instead of stdout
	DIRTREE_SKIP_DIRS     Comma-separated extra directory names to skip
	DIRTREE_SKIP_FILES    Comma-separated extra file names to skip
	DIRTREE_NO_COLOR      Disable colored output
	DIRTREE_VERBOSE       Verbosity level
*/
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all CLI-level settings.
type Config struct {
	// Depth is the maximum directory depth to display (-1 for unlimited).
	Depth int

	// All disables the common and hidden skip rules.
	All bool

	// Format selects the connector style: "ascii", "unicode", or empty
	// for the platform default.
	Format string

	// Output selects the output format: "text", "json", or "yaml".
	Output string

	// OutputFile is the path to write output to (empty for stdout).
	OutputFile string

	// SkipDirs and SkipFiles extend the built-in skip lists.
	SkipDirs  []string
	SkipFiles []string

	// NoColor disables colored output.
	NoColor bool

	// Verbose sets the logging verbosity.
	Verbose int
}

var validFormats = map[string]bool{
	"":            true,
	FormatASCII:   true,
	FormatUnicode: true,
}

var validOutputs = map[string]bool{
	OutputText: true,
	OutputJSON: true,
	OutputYAML: true,
}

// Load reads configuration from the environment and validates it.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("depth", UnlimitedDepth)
	v.SetDefault("all", false)
	v.SetDefault("format", "")
	v.SetDefault("output", OutputText)
	v.SetDefault("no_color", false)
	v.SetDefault("verbose", 0)

	v.SetEnvPrefix("DIRTREE")
	v.AutomaticEnv()

	v.BindEnv("depth")
	v.BindEnv("all")
	v.BindEnv("format")
	v.BindEnv("output")
	v.BindEnv("output_file")
	v.BindEnv("skip_dirs")
	v.BindEnv("skip_files")
	v.BindEnv("no_color")
	v.BindEnv("verbose")

	cfg := Config{
		Depth:      v.GetInt("depth"),
		All:        v.GetBool("all"),
		Format:     strings.ToLower(v.GetString("format")),
		Output:     strings.ToLower(v.GetString("output")),
		OutputFile: v.GetString("output_file"),
		SkipDirs:   splitList(v.GetString("skip_dirs")),
		SkipFiles:  splitList(v.GetString("skip_files")),
		NoColor:    v.GetBool("no_color"),
		Verbose:    v.GetInt("verbose"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the configuration for out-of-range values.
func (c Config) Validate() error {
	if c.Depth < UnlimitedDepth {
		return fmt.Errorf("depth must be %d (unlimited) or positive", UnlimitedDepth)
	}

	if !validFormats[c.Format] {
		return fmt.Errorf("invalid format: must be one of [ascii unicode]")
	}

	if !validOutputs[c.Output] {
		return fmt.Errorf("invalid output format: must be one of [text json yaml]")
	}

	if c.Verbose < 0 {
		return fmt.Errorf("verbosity must be non-negative")
	}

	return nil
}

// String returns a string representation of the configuration.
func (c Config) String() string {
	return fmt.Sprintf(
		"Config{Depth: %d, All: %v, Format: %s, Output: %s, OutputFile: %s, "+
			"SkipDirs: %v, SkipFiles: %v, NoColor: %v, Verbose: %d}",
		c.Depth, c.All, c.Format, c.Output, c.OutputFile,
		c.SkipDirs, c.SkipFiles, c.NoColor, c.Verbose,
	)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}

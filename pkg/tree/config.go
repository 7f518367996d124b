package tree

import "runtime"

// Format selects the glyph table used to draw tree connectors.
type Format int

const (
	// FormatASCII draws connectors with plain ASCII characters.
	FormatASCII Format = iota
	// FormatUnicode draws connectors with Unicode box-drawing characters.
	FormatUnicode
)

// Config holds the options for one tree traversal. It is owned by the
// caller and read-only for the duration of a render; reusing the same
// Config across renders is safe because each render constructs its own
// visited set.
type Config struct {
	// MaxDepth limits how deep the walk descends. Zero or negative
	// means unlimited.
	MaxDepth int

	// SkipHidden drops entries whose name starts with a dot. The rule
	// applies at every depth, including the root's immediate children.
	SkipHidden bool

	// SkipCommon drops entries matching the built-in skip lists and any
	// names added via AddSkipDir/AddSkipFile.
	SkipCommon bool

	// Format selects ASCII or Unicode connectors.
	Format Format

	// SkipDirs and SkipFiles extend the built-in skip lists. Duplicates
	// are permitted and harmless.
	SkipDirs  []string
	SkipFiles []string

	// WithColors wraps directory and symlink names in ANSI colors.
	// Off by default; the rendered bytes are otherwise deterministic.
	WithColors bool

	// WithStats appends a summary of directory and file counts after
	// the tree.
	WithStats bool
}

// DefaultConfig returns the stock configuration: unlimited depth, hidden
// and common entries skipped, Unicode connectors except on Windows.
func DefaultConfig() Config {
	format := FormatUnicode
	if runtime.GOOS == "windows" {
		format = FormatASCII
	}

	return Config{
		MaxDepth:   -1,
		SkipHidden: true,
		SkipCommon: true,
		Format:     format,
	}
}

// AddSkipDir appends a directory name to the custom skip list.
func (c *Config) AddSkipDir(name string) {
	c.SkipDirs = append(c.SkipDirs, name)
}

// AddSkipFile appends a file name to the custom skip list.
func (c *Config) AddSkipFile(name string) {
	c.SkipFiles = append(c.SkipFiles, name)
}

const version = "1.0.0"

// Version returns the library version string.
func Version() string {
	return "dirtree " + version
}

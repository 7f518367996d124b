package tree

// glyphs is the set of connector strings for one output format. branch
// and corner draw the entry's own line; vertical and space extend the
// prefix for that entry's subtree.
type glyphs struct {
	branch   string
	corner   string
	vertical string
	space    string
}

var (
	asciiGlyphs = glyphs{
		branch:   "|-- ",
		corner:   "+-- ",
		vertical: "|   ",
		space:    "    ",
	}

	unicodeGlyphs = glyphs{
		branch:   "├── ",
		corner:   "└── ",
		vertical: "│   ",
		space:    "    ",
	}
)

func glyphsFor(format Format) glyphs {
	if format == FormatUnicode {
		return unicodeGlyphs
	}
	return asciiGlyphs
}

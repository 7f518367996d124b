package config

// Connector styles accepted by the format setting.
const (
	// FormatASCII selects ASCII tree connectors.
	FormatASCII = "ascii"

	// FormatUnicode selects Unicode box-drawing connectors.
	FormatUnicode = "unicode"
)

// Output formats accepted by the output setting.
const (
	// OutputText is the plain tree rendering.
	OutputText = "text"

	// OutputJSON serializes the tree as JSON.
	OutputJSON = "json"

	// OutputYAML serializes the tree as YAML.
	OutputYAML = "yaml"
)

// UnlimitedDepth disables the depth bound.
const UnlimitedDepth = -1

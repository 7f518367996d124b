/*
Package export serializes a captured directory tree as JSON or YAML.
It works on the Node snapshots produced by the tree package; the plain
text format is rendered directly by the tree package and never passes
through here.

Basic usage:

	formatter := export.NewFormatter(export.Config{Format: export.FormatJSON}, log)
	out, err := formatter.Format(node)
*/
package export

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/a2hop/dirtree/pkg/logger"
	"github.com/a2hop/dirtree/pkg/tree"
)

// Format names a serialization format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Config holds formatter options.
type Config struct {
	Format Format
}

// Formatter serializes a Node tree.
type Formatter interface {
	Format(*tree.Node) (string, error)
}

type formatter struct {
	config Config
	log    logger.Logger
}

// NewFormatter creates a Formatter for the configured format.
func NewFormatter(config Config, log logger.Logger) Formatter {
	return &formatter{
		config: config,
		log:    log,
	}
}

// node is the serialized shape of one tree entry.
type node struct {
	Name     string  `json:"name" yaml:"name"`
	Type     string  `json:"type" yaml:"type"`
	Children []*node `json:"children,omitempty" yaml:"children,omitempty"`
}

func (f *formatter) Format(root *tree.Node) (string, error) {
	if root == nil {
		f.log.Error("nil tree provided for export")
		return "", fmt.Errorf("nil tree provided for export")
	}

	f.log.WithFields(logger.Fields{
		"format": f.config.Format,
	}).Debug("Serializing tree")

	converted := convert(root)

	switch f.config.Format {
	case FormatJSON:
		bytes, err := json.MarshalIndent(converted, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(bytes), nil
	case FormatYAML:
		bytes, err := yaml.Marshal(converted)
		if err != nil {
			return "", fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return string(bytes), nil
	default:
		f.log.WithFields(logger.Fields{
			"format": f.config.Format,
		}).Error("Unsupported export format")
		return "", fmt.Errorf("unsupported format: %s", f.config.Format)
	}
}

func convert(n *tree.Node) *node {
	out := &node{
		Name: n.Name,
		Type: kindName(n.Kind),
	}

	for _, child := range n.Children {
		out.Children = append(out.Children, convert(child))
	}

	return out
}

func kindName(k tree.Kind) string {
	switch k {
	case tree.KindDir:
		return "directory"
	case tree.KindFile:
		return "file"
	default:
		return "other"
	}
}

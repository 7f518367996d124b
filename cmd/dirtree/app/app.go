/*
Package app provides the application container for the dirtree CLI. It
wires the logger, filesystem, renderer, and export formatter together,
writes the result to stdout or a file, and installs signal handling.
*/
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/a2hop/dirtree/internal/config"
	"github.com/a2hop/dirtree/pkg/export"
	"github.com/a2hop/dirtree/pkg/logger"
	"github.com/a2hop/dirtree/pkg/tree"
)

// App represents the application container.
type App struct {
	config *config.Config
	log    logger.Logger
	fs     afero.Fs
}

// New creates a new application instance over the real filesystem.
func New(cfg *config.Config, log logger.Logger) *App {
	app := &App{
		config: cfg,
		log:    log,
		fs:     afero.NewOsFs(),
	}

	app.setupSignalHandling()

	return app
}

// Run renders the tree for path with the given configuration and writes
// it to the configured destination.
func (a *App) Run(path string, treeCfg tree.Config) error {
	// Keep the running binary itself out of listings of its own
	// directory.
	treeCfg.AddSkipFile(filepath.Base(os.Args[0]))

	a.log.WithFields(logger.Fields{
		"path":   path,
		"output": a.config.Output,
		"file":   a.config.OutputFile,
	}).Info("Starting render")

	renderer := tree.NewRenderer(treeCfg, a.fs, a.log)

	var out string
	switch a.config.Output {
	case config.OutputText:
		rendered, err := renderer.GenerateString(path)
		if err != nil {
			return err
		}
		out = rendered
	default:
		node, err := renderer.Snapshot(path)
		if err != nil {
			return err
		}

		formatter := export.NewFormatter(export.Config{
			Format: export.Format(a.config.Output),
		}, a.log)

		serialized, err := formatter.Format(node)
		if err != nil {
			return fmt.Errorf("output formatting failed: %w", err)
		}
		out = serialized
	}

	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}

	return a.writeOutput(out)
}

// Shutdown releases the signal handler.
func (a *App) Shutdown() {
	a.stopSignalHandling()
	a.log.Debug("Shutdown complete")
}

// writeOutput writes the rendered content to the configured destination.
func (a *App) writeOutput(content string) error {
	if a.config.OutputFile == "" {
		if _, err := os.Stdout.WriteString(content); err != nil {
			a.log.WithFields(logger.Fields{
				"error": err,
			}).Error("Failed to write to stdout")
			return err
		}
		return nil
	}

	if err := afero.WriteFile(a.fs, a.config.OutputFile, []byte(content), 0644); err != nil {
		a.log.WithFields(logger.Fields{
			"error": err,
			"path":  a.config.OutputFile,
		}).Error("Failed to write output file")
		return fmt.Errorf("failed to write output file: %w", err)
	}

	a.log.WithFields(logger.Fields{
		"path": a.config.OutputFile,
	}).Info("Output written")

	return nil
}

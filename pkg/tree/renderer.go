/*
Package tree renders a textual tree of a directory hierarchy, in the
style of the classic tree utility. It supports depth limits, skip lists
for common noise entries, ASCII or Unicode connectors, and a visited-set
cycle guard so traversal terminates even when symlinks or bind mounts
make the directory graph cyclic.

The walk is synchronous and depth-first. All filesystem access goes
through an afero.Fs, so the engine runs unchanged against an in-memory
filesystem in tests.

Basic usage:

	cfg := tree.DefaultConfig()
	cfg.MaxDepth = 3

	renderer := tree.NewRenderer(cfg, afero.NewOsFs(), log)
	out, err := renderer.GenerateString("/path/to/dir")
*/
package tree

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/a2hop/dirtree/pkg/logger"
)

// Renderer walks a directory hierarchy and writes one tree line per
// surviving entry. A Renderer is safe to reuse across calls; every call
// builds its own visited set.
type Renderer struct {
	cfg      Config
	fs       afero.Fs
	log      logger.Logger
	resolver Resolver
}

// NewRenderer creates a Renderer over the given filesystem. The config
// is copied and read-only for the lifetime of the renderer.
func NewRenderer(cfg Config, fs afero.Fs, log logger.Logger) *Renderer {
	return &Renderer{
		cfg:      cfg,
		fs:       fs,
		log:      log,
		resolver: resolverFor(fs),
	}
}

// walkStats counts what the walk emitted, for the optional summary line.
type walkStats struct {
	dirs  int64
	files int64
}

// Render resolves path and writes the tree to w: the root's basename
// first, then one prefixed line per entry. Root failures return a typed
// error before any output; I/O failures on individual entries degrade
// to omission of that branch.
func (r *Renderer) Render(path string, w io.Writer) error {
	abs, err := r.resolveRoot(path)
	if err != nil {
		r.log.WithFields(logger.Fields{
			"path":  path,
			"error": err,
		}).Warn("Root path rejected")
		return err
	}

	r.log.WithFields(logger.Fields{
		"path":     abs,
		"maxDepth": r.cfg.MaxDepth,
	}).Debug("Starting render")

	if _, err := fmt.Fprintln(w, filepath.Base(abs)); err != nil {
		return err
	}

	stats := &walkStats{}
	if err := r.walk(w, abs, "", 1, newVisitedSet(), stats); err != nil {
		return err
	}

	if r.cfg.WithStats {
		if _, err := fmt.Fprintf(w, "\n%d directories, %d files\n", stats.dirs, stats.files); err != nil {
			return err
		}
	}

	r.log.WithFields(logger.Fields{
		"path":  abs,
		"dirs":  stats.dirs,
		"files": stats.files,
	}).Debug("Render complete")

	return nil
}

// GenerateString renders the tree into a string. Failures are wrapped
// in a TraversalError.
func (r *Renderer) GenerateString(path string) (string, error) {
	var b strings.Builder
	if err := r.Render(path, &b); err != nil {
		return "", &TraversalError{Path: path, Err: err}
	}
	return b.String(), nil
}

// resolveRoot canonicalizes the root path and verifies it names a
// directory.
func (r *Renderer) resolveRoot(path string) (string, error) {
	abs, err := r.resolver.Resolve(path)
	if err != nil {
		return "", &ResolutionError{Path: path, Err: err}
	}

	info, err := r.fs.Stat(abs)
	if err != nil {
		return "", &ResolutionError{Path: path, Err: err}
	}
	if !info.IsDir() {
		return "", &NotADirectoryError{Path: path}
	}

	return abs, nil
}

// walk emits the subtree rooted at dir. The directory is marked visited
// before its children are listed, so a path expands at most once per
// traversal regardless of how many routes reach it. Returned errors are
// sink write failures only.
func (r *Renderer) walk(w io.Writer, dir, prefix string, depth int, visited visitedSet, stats *walkStats) error {
	if r.cfg.MaxDepth > 0 && depth > r.cfg.MaxDepth {
		return nil
	}

	if visited.seen(dir) {
		r.log.WithFields(logger.Fields{
			"path": dir,
		}).Debug("Cycle detected, skipping")
		return nil
	}
	visited.mark(dir)

	entries := r.children(dir)
	g := glyphsFor(r.cfg.Format)

	for i, e := range entries {
		connector, continuation := g.branch, g.vertical
		if i == len(entries)-1 {
			connector, continuation = g.corner, g.space
		}

		if _, err := io.WriteString(w, prefix+connector+r.displayName(e)+"\n"); err != nil {
			return err
		}

		if e.Kind == KindDir {
			stats.dirs++
			if err := r.walk(w, e.Path, prefix+continuation, depth+1, visited, stats); err != nil {
				return err
			}
		} else {
			stats.files++
		}
	}

	return nil
}

// children lists, filters, and sorts the immediate entries of dir.
// Siblings are ordered by byte-wise name comparison, which keeps the
// output deterministic.
func (r *Renderer) children(dir string) []Entry {
	entries := listEntries(r.fs, dir)

	kept := entries[:0]
	for _, e := range entries {
		if skipEntry(&r.cfg, e) {
			continue
		}
		kept = append(kept, e)
	}

	sort.Slice(kept, func(i, j int) bool {
		return kept[i].Name < kept[j].Name
	})

	return kept
}

func (r *Renderer) displayName(e Entry) string {
	if !r.cfg.WithColors {
		return e.Name
	}

	switch e.Kind {
	case KindDir:
		return color.New(color.FgBlue, color.Bold).Sprint(e.Name)
	case KindOther:
		return color.New(color.FgCyan).Sprint(e.Name)
	default:
		return e.Name
	}
}

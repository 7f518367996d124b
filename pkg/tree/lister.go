package tree

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Kind classifies a directory entry by its own type, without following
// symlinks. A symlink pointing at a directory is KindOther: it renders
// as a leaf and is never recursed into.
type Kind int

const (
	// KindFile is a regular file.
	KindFile Kind = iota
	// KindDir is a directory.
	KindDir
	// KindOther is anything else: symlinks, sockets, devices.
	KindOther
)

// Entry is one immediate child of a directory, alive only for the
// duration of its parent's listing.
type Entry struct {
	Name string
	Path string
	Kind Kind
}

// listEntries reads the immediate children of dir. A directory that
// cannot be opened yields an empty listing; the branch simply ends
// there. Entries that fail to stat individually are dropped by the
// underlying read rather than aborting the listing.
func listEntries(fs afero.Fs, dir string) []Entry {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, Entry{
			Name: info.Name(),
			Path: filepath.Join(dir, info.Name()),
			Kind: classify(info),
		})
	}

	return entries
}

func classify(info os.FileInfo) Kind {
	switch {
	case info.IsDir():
		return KindDir
	case info.Mode().IsRegular():
		return KindFile
	default:
		return KindOther
	}
}

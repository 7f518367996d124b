package tree

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// Resolver canonicalizes a path into the absolute, normalized form used
// as the visited-set key. Implementations fail when the path does not
// exist or cannot be resolved.
type Resolver interface {
	Resolve(path string) (string, error)
}

// osResolver resolves against the real filesystem: absolute form with
// symlinks followed and relative segments collapsed.
type osResolver struct{}

func (osResolver) Resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// plainResolver normalizes lexically only. Virtual afero filesystems
// carry no symlinks, so cleaning an absolute path is already canonical.
type plainResolver struct{}

func (plainResolver) Resolve(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	return filepath.Abs(path)
}

// resolverFor picks the resolver matching the filesystem: full OS
// resolution for the real filesystem, lexical normalization otherwise.
func resolverFor(fs afero.Fs) Resolver {
	if _, ok := fs.(*afero.OsFs); ok {
		return osResolver{}
	}
	return plainResolver{}
}

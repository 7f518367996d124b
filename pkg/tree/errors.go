package tree

import "fmt"

// ResolutionError reports a root path that is missing, inaccessible, or
// cannot be canonicalized.
type ResolutionError struct {
	Path string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve %s: %v", e.Path, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// NotADirectoryError reports a root path that exists but is not a
// directory.
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("%s is not a directory", e.Path)
}

// TraversalError wraps a failure surfacing through GenerateString or
// Snapshot. Per-entry I/O failures inside the walk are absorbed as
// omissions and never reach this type.
type TraversalError struct {
	Path string
	Err  error
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("traversal of %s failed: %v", e.Path, e.Err)
}

func (e *TraversalError) Unwrap() error {
	return e.Err
}

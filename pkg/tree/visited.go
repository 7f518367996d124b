package tree

// visitedSet records canonical absolute paths already expanded during
// one traversal, guarding against cycles introduced by symlinks or bind
// mounts. Paths are never removed: each one is expanded at most once no
// matter how many routes reach it. One set belongs to exactly one
// render call and is discarded with it.
type visitedSet map[string]struct{}

func newVisitedSet() visitedSet {
	return make(visitedSet)
}

// seen reports whether path was already marked.
func (v visitedSet) seen(path string) bool {
	_, ok := v[path]
	return ok
}

// mark records path. Marking an already-present path is a no-op.
func (v visitedSet) mark(path string) {
	v[path] = struct{}{}
}

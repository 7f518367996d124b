package tree

import "path/filepath"

// Node is one element of a captured directory tree, used by the export
// formats. The text renderer does not build Nodes; it streams lines
// directly.
type Node struct {
	Name     string
	Path     string
	Kind     Kind
	Children []*Node
}

// Snapshot captures the filtered hierarchy as a Node tree, applying the
// same skip rules, ordering, depth bound, and cycle guard as Render.
func (r *Renderer) Snapshot(path string) (*Node, error) {
	abs, err := r.resolveRoot(path)
	if err != nil {
		return nil, &TraversalError{Path: path, Err: err}
	}

	root := &Node{
		Name: filepath.Base(abs),
		Path: abs,
		Kind: KindDir,
	}
	r.collect(root, 1, newVisitedSet())

	return root, nil
}

func (r *Renderer) collect(n *Node, depth int, visited visitedSet) {
	if r.cfg.MaxDepth > 0 && depth > r.cfg.MaxDepth {
		return
	}

	if visited.seen(n.Path) {
		return
	}
	visited.mark(n.Path)

	for _, e := range r.children(n.Path) {
		child := &Node{
			Name: e.Name,
			Path: e.Path,
			Kind: e.Kind,
		}
		n.Children = append(n.Children, child)

		if e.Kind == KindDir {
			r.collect(child, depth+1, visited)
		}
	}
}

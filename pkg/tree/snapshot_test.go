package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a2hop/dirtree/pkg/logger"
)

func TestSnapshot(t *testing.T) {
	fs := setupNestedFS(t)
	renderer := NewRenderer(DefaultConfig(), fs, logger.NewNop())

	root, err := renderer.Snapshot("/root")
	require.NoError(t, err)

	assert.Equal(t, "root", root.Name)
	assert.Equal(t, KindDir, root.Kind)
	require.Len(t, root.Children, 2)

	// Same ordering as the text renderer.
	assert.Equal(t, "dir1", root.Children[0].Name)
	assert.Equal(t, "dir2", root.Children[1].Name)

	dir1 := root.Children[0]
	require.Len(t, dir1.Children, 2)
	assert.Equal(t, "file1.txt", dir1.Children[0].Name)
	assert.Equal(t, KindFile, dir1.Children[0].Kind)
}

func TestSnapshotHonorsFilters(t *testing.T) {
	renderer := NewRenderer(DefaultConfig(), setupProjFS(t), logger.NewNop())

	root, err := renderer.Snapshot("/proj")
	require.NoError(t, err)

	names := make([]string, 0, len(root.Children))
	for _, c := range root.Children {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"a", "b.txt"}, names)
}

func TestSnapshotHonorsDepthBound(t *testing.T) {
	fs := setupNestedFS(t)

	cfg := DefaultConfig()
	cfg.MaxDepth = 1
	renderer := NewRenderer(cfg, fs, logger.NewNop())

	root, err := renderer.Snapshot("/root")
	require.NoError(t, err)

	// The directories themselves are captured; their contents are not.
	require.Len(t, root.Children, 2)
	assert.Empty(t, root.Children[0].Children)
	assert.Empty(t, root.Children[1].Children)
}

func TestSnapshotRootError(t *testing.T) {
	renderer := NewRenderer(DefaultConfig(), setupProjFS(t), logger.NewNop())

	_, err := renderer.Snapshot("/gone")
	require.Error(t, err)

	var travErr *TraversalError
	assert.ErrorAs(t, err, &travErr)
}

package tree

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEntries(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/dir/sub", 0755))
	require.NoError(t, afero.WriteFile(fs, "/dir/f.txt", []byte("x"), 0644))

	entries := listEntries(fs, "/dir")
	require.Len(t, entries, 2)

	byName := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byName[e.Name] = e
	}

	assert.Equal(t, KindFile, byName["f.txt"].Kind)
	assert.Equal(t, "/dir/f.txt", byName["f.txt"].Path)
	assert.Equal(t, KindDir, byName["sub"].Kind)
	assert.Equal(t, "/dir/sub", byName["sub"].Path)
}

func TestListEntriesUnopenableDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()

	// A directory that cannot be opened yields an empty listing rather
	// than an error.
	assert.Empty(t, listEntries(fs, "/missing"))
}

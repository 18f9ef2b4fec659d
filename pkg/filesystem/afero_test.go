package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fsys := NewOS()
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "agents.md")

	require.NoError(t, os.WriteFile(testFile, []byte("# rules\n"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, ".builder", "rules"), 0755))

	assert.True(t, Exists(fsys, testFile))
	assert.True(t, IsFile(fsys, testFile))
	assert.False(t, IsDir(fsys, testFile))
	assert.True(t, IsDir(fsys, filepath.Join(tmpDir, ".builder", "rules")))
	assert.False(t, Exists(fsys, filepath.Join(tmpDir, "missing.md")))
}

func TestReadDir_SortedByName(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, afero.WriteFile(fsys, "/p/rules/b.mdc", []byte("b"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/p/rules/a.mdc", []byte("a"), 0644))
	require.NoError(t, fsys.MkdirAll("/p/rules/nested", 0755))

	entries, err := ReadDir(fsys, "/p/rules")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "a.mdc", entries[0].Name())
	assert.Equal(t, "b.mdc", entries[1].Name())
	assert.Equal(t, "nested", entries[2].Name())
	assert.True(t, entries[2].IsDir())
}

func TestReadDir_Missing(t *testing.T) {
	_, err := ReadDir(NewMemory(), "/nope")
	assert.Error(t, err)
}

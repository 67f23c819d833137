package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFiles(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	nested := filepath.Join(dir, "nested")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	for _, name := range []string{
		filepath.Join(dir, "a.hcl"),
		filepath.Join(dir, "b.yaml"),
		filepath.Join(dir, "notes.txt"),
		filepath.Join(nested, "c.yml"),
	} {
		require.NoError(t, os.WriteFile(name, []byte("x"), 0o600))
	}

	// --- Act ---
	hclFiles, err := FindFiles(dir, ".hcl")
	require.NoError(t, err)
	yamlFiles, err := FindFiles(dir, ".yaml", ".yml")
	require.NoError(t, err)
	single, err := FindFiles(filepath.Join(dir, "a.hcl"), ".hcl")
	require.NoError(t, err)

	// --- Assert ---
	assert.Equal(t, []string{filepath.Join(dir, "a.hcl")}, hclFiles)
	assert.Equal(t, []string{filepath.Join(dir, "b.yaml"), filepath.Join(nested, "c.yml")}, yamlFiles)
	assert.Equal(t, hclFiles, single)
}

func TestFindFiles_MissingPath(t *testing.T) {
	_, err := FindFiles(filepath.Join(t.TempDir(), "missing"), ".hcl")
	require.Error(t, err)
}

func TestFindFiles_PanicsWithoutExtension(t *testing.T) {
	assert.Panics(t, func() { _, _ = FindFiles(t.TempDir()) })
}

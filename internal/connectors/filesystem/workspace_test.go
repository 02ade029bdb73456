package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/csvnorm/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func newWorkspace(t *testing.T, root string) *Workspace {
	t.Helper()
	ws, err := New(root, domain.DefaultArchivePattern, domain.DefaultTablePattern)
	require.NoError(t, err)
	return ws
}

func TestNew(t *testing.T) {
	t.Run("creates workspace with valid patterns", func(t *testing.T) {
		ws, err := New("/tmp/in", "*.zip", "**/*.csv")

		require.NoError(t, err)
		assert.Equal(t, "/tmp/in", ws.Root())
	})

	t.Run("rejects bad pattern", func(t *testing.T) {
		_, err := New("/tmp/in", "[", "*.csv")

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestFactory_Open(t *testing.T) {
	ws, err := Factory{}.Open("/tmp/in", "*.zip", "*.csv")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/in", ws.Root())

	_, err = Factory{}.Open("/tmp/in", "*.zip", "{")
	assert.Error(t, err)
}

func TestWorkspace_Exists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	writeFile(t, file, "x")

	assert.True(t, newWorkspace(t, dir).Exists())
	assert.False(t, newWorkspace(t, filepath.Join(dir, "missing")).Exists())
	assert.False(t, newWorkspace(t, file).Exists(), "a file is not a workspace")
}

func TestWorkspace_ListArchives(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.zip"), "")
	writeFile(t, filepath.Join(dir, "a.zip"), "")
	writeFile(t, filepath.Join(dir, "notes.txt"), "")
	writeFile(t, filepath.Join(dir, ".hidden.zip"), "")
	writeFile(t, filepath.Join(dir, "sub", "c.zip"), "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.zip"), 0755))

	archives, err := newWorkspace(t, dir).ListArchives()

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.zip"),
		filepath.Join(dir, "b.zip"),
	}, archives)
}

func TestWorkspace_ListTables_Recursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "top.csv"), "")
	writeFile(t, filepath.Join(dir, "nested", "inner.csv"), "")

	ws, err := New(dir, "*.zip", "**/*.csv")
	require.NoError(t, err)

	tables, err := ws.ListTables()

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "nested", "inner.csv"),
		filepath.Join(dir, "top.csv"),
	}, tables)
}

func TestWorkspace_ListTables_Empty(t *testing.T) {
	tables, err := newWorkspace(t, t.TempDir()).ListTables()

	require.NoError(t, err)
	assert.Empty(t, tables)
}

func TestWorkspace_IsArchive(t *testing.T) {
	ws := newWorkspace(t, "/tmp")

	assert.True(t, ws.IsArchive("data.zip"))
	assert.True(t, ws.IsArchive("DATA.ZIP"))
	assert.False(t, ws.IsArchive("data.csv"))
	assert.False(t, ws.IsArchive("zip"))
}

func TestWorkspace_Cleanup(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.zip"), "")
	writeFile(t, filepath.Join(dir, "KEEP2.ZIP"), "")
	writeFile(t, filepath.Join(dir, "a.csv"), "")
	writeFile(t, filepath.Join(dir, "readme.txt"), "")
	writeFile(t, filepath.Join(dir, "sub", "inner.csv"), "")

	results := newWorkspace(t, dir).Cleanup()

	require.Len(t, results, 2)
	for _, r := range results {
		assert.True(t, r.OK(), r.Path)
		assert.Equal(t, domain.PhaseCleanup, r.Phase)
	}
	assert.FileExists(t, filepath.Join(dir, "keep.zip"))
	assert.FileExists(t, filepath.Join(dir, "KEEP2.ZIP"))
	assert.FileExists(t, filepath.Join(dir, "sub", "inner.csv"))
	assert.NoFileExists(t, filepath.Join(dir, "a.csv"))
	assert.NoFileExists(t, filepath.Join(dir, "readme.txt"))
}

func TestWorkspace_Cleanup_MissingRoot(t *testing.T) {
	results := newWorkspace(t, filepath.Join(t.TempDir(), "missing")).Cleanup()

	require.Len(t, results, 1)
	assert.False(t, results[0].OK())
}

// TestIsHidden tests the isHidden function with various path scenarios.
func TestIsHidden(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		// Hidden files
		{".hidden", ".hidden", true},
		{"path/to/.hidden", "path/to/.hidden", true},
		{"/root/.config/file.txt", "/root/.config/file.txt", true},

		// Hidden directories in path
		{"dir/.git/config", "dir/.git/config", true},

		// Not hidden
		{"file.txt", "file.txt", false},
		{"path/to/file.zip", "path/to/file.zip", false},

		// Special cases - . and .. are not considered hidden
		{".", ".", false},
		{"..", "..", false},
		{"path/./file", "path/./file", false},
		{"path/../file", "path/../file", false},

		// Edge cases
		{"", "", false},
		{"/", "/", false},
		{"file.hidden", "file.hidden", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isHidden(tt.path))
		})
	}
}

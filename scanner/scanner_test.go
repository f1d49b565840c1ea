package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for path, content := range files {
		fullPath := filepath.Join(root, path)
		err := os.MkdirAll(filepath.Dir(fullPath), 0o755)
		require.NoError(t, err)
		err = os.WriteFile(fullPath, []byte(content), 0o644)
		require.NoError(t, err)
	}
}

func TestScanner_Scan(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	writeFiles(t, tempDir, map[string]string{
		"b-small.in":        "1\n1 1\n1\n",
		"a-large.in":        "1\n3 0\n1 0\n1\n1\n",
		"notes.txt":         "not an input",
		"expected/a.out":    "Case #1: 0",
		"subdir/c-extra.in": "1\n1 0\n0\n",
	})

	scannedFiles, err := New(tempDir).Scan()
	require.NoError(t, err)

	var paths []string
	for _, file := range scannedFiles {
		paths = append(paths, file.Path)
		assert.Greater(t, file.Size, int64(0), "File size should be greater than 0")
	}

	assert.Equal(t, []string{
		filepath.Join(tempDir, "a-large.in"),
		filepath.Join(tempDir, "b-small.in"),
		filepath.Join(tempDir, "subdir/c-extra.in"),
	}, paths)
}

func TestScanner_CustomExtensions(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{
		"one.in":  "1 1 1 1",
		"two.txt": "1 1 1 1",
	})

	scannedFiles, err := New(tempDir, ".txt").Scan()
	require.NoError(t, err)
	require.Len(t, scannedFiles, 1)
	assert.Equal(t, filepath.Join(tempDir, "two.txt"), scannedFiles[0].Path)
}

func TestScanner_Match(t *testing.T) {
	t.Parallel()

	s := New(".", ".in", ".txt")
	assert.True(t, s.Match("case.in"))
	assert.True(t, s.Match("dir/case.txt"))
	assert.False(t, s.Match("case.out"))
	assert.False(t, s.Match("in"))
}

func TestScanner_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := New(filepath.Join(t.TempDir(), "missing")).Scan()
	assert.Error(t, err)
}

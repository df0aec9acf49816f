package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFiles(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub/sub"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".nt"), 0755))
	for _, path := range []string{
		"a.md",
		"b.txt",
		".draft.md",
		"sub/c.md",
		"sub/sub/d.md",
		".nt/config.md",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, path), []byte("[정답]"), 0644))
	}

	isMarkdown := func(path string) bool {
		return strings.HasSuffix(path, ".md")
	}

	paths, err := ListFiles([]string{dir}, isMarkdown)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.md"),
		filepath.Join(dir, "sub/c.md"),
		filepath.Join(dir, "sub/sub/d.md"),
	}, paths)

	t.Run("Files", func(t *testing.T) {
		paths, err := ListFiles([]string{
			filepath.Join(dir, ".draft.md"),
			filepath.Join(dir, "b.txt"),
			filepath.Join(dir, "sub"),
		}, isMarkdown)
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, ".draft.md"),
			filepath.Join(dir, "sub/c.md"),
			filepath.Join(dir, "sub/sub/d.md"),
		}, paths)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := ListFiles([]string{filepath.Join(dir, "missing")}, isMarkdown)
		assert.Error(t, err)
	})
}

package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestListImages(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.jpg"))
	touch(t, filepath.Join(root, "b.PNG"))
	touch(t, filepath.Join(root, "notas.txt"))
	touch(t, filepath.Join(root, "sub", "c.jpeg"))
	touch(t, filepath.Join(root, ".oculto", "d.jpg"))
	touch(t, filepath.Join(root, ".escondido.png"))

	paths, stats, err := ListImages(root, nil, true)
	require.NoError(t, err)

	var names []string
	for _, p := range paths {
		rel, rerr := filepath.Rel(root, p)
		require.NoError(t, rerr)
		names = append(names, filepath.ToSlash(rel))
	}
	require.ElementsMatch(t, []string{"a.jpg", "b.PNG", "sub/c.jpeg"}, names)
	require.Equal(t, uint32(3), stats.Matched)
}

func TestListImagesHiddenIncludedWhenAllowed(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, ".escondido.png"))

	paths, _, err := ListImages(root, nil, false)
	require.NoError(t, err)
	require.Len(t, paths, 1)
}

func TestListImagesCustomExtensions(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.jpg"))
	touch(t, filepath.Join(root, "b.png"))

	paths, _, err := ListImages(root, []string{".PNG"}, false)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Equal(t, "b.png", filepath.Base(paths[0]))
}

func TestListImagesEmptyRoot(t *testing.T) {
	_, _, err := ListImages("  ", nil, false)
	require.Error(t, err)
}

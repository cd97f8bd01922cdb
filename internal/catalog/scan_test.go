package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/comrad/internal/playlist"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestScan(t *testing.T) {
	root := filepath.Join(t.TempDir(), "Albums")
	files := []string{
		"z.mp3",
		"cover.jpg",
		"A/01.flac",
		"A/02.m4a",
		"A/B/03.wav",
		"A/B/C/04.mp3",
		"A/B/notes.txt",
	}
	for _, f := range files {
		touch(t, filepath.Join(root, f))
	}

	p, err := Scan(root)
	require.NoError(t, err)

	assert.Equal(t, "Albums", p.Name())
	assert.Len(t, p.ID(), playlist.IDLength)
	assert.Equal(t, []string{
		filepath.Join(root, "A/01.flac"),
		filepath.Join(root, "A/02.m4a"),
		filepath.Join(root, "A/B/03.wav"),
		filepath.Join(root, "z.mp3"),
	}, p.Sources())
}

func TestScan_EmptyDir(t *testing.T) {
	root := t.TempDir()

	p, err := Scan(root)
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
	assert.Equal(t, filepath.Base(root), p.Name())
}

func TestScan_Missing(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, errors.Is(err, ErrIO))
}

func TestNameFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/music/Jazz", "Jazz"},
		{"/music/Jazz/", "Jazz"},
		{"/", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NameFromPath(tt.path), tt.path)
	}
}

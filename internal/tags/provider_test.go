package tags

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeReader(tag *Tag, tagErr error, d time.Duration, durErr error, calls *int) *Reader {
	r := NewReader()
	r.readTags = func(string) (*Tag, error) {
		*calls++
		return tag, tagErr
	}
	r.readDuration = func(string) (time.Duration, error) {
		return d, durErr
	}
	return r
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReader_Lookup_PadsDuration(t *testing.T) {
	path := writeFile(t, "a.mp3", "x")
	var calls int
	r := fakeReader(&Tag{Title: "T", Artist: "Ar", Album: "Al"}, nil, 10*time.Second, nil, &calls)

	got := r.Lookup(path)

	assert.Equal(t, Info{Album: "Al", Artist: "Ar", Title: "T", Duration: 11 * time.Second}, got)
}

func TestReader_Lookup_ZeroDurationStaysZero(t *testing.T) {
	path := writeFile(t, "a.mp3", "x")
	var calls int
	r := fakeReader(&Tag{Title: "T"}, nil, 0, errors.New("no frames"), &calls)

	got := r.Lookup(path)

	assert.Equal(t, time.Duration(0), got.Duration)
	assert.Equal(t, "T", got.Title)
}

func TestReader_Lookup_UnreadableTags(t *testing.T) {
	path := writeFile(t, "a.mp3", "x")
	var calls int
	r := fakeReader(nil, errors.New("bad tag"), 2*time.Second, nil, &calls)

	got := r.Lookup(path)

	assert.Equal(t, Info{Duration: 3 * time.Second}, got)
}

func TestReader_Lookup_MissingFile(t *testing.T) {
	var calls int
	r := fakeReader(&Tag{Title: "T"}, nil, time.Second, nil, &calls)

	assert.True(t, r.Lookup(filepath.Join(t.TempDir(), "gone.mp3")).IsZero())
	assert.True(t, r.Lookup("").IsZero())
	assert.Equal(t, 0, calls)
}

func TestReader_Lookup_Caches(t *testing.T) {
	path := writeFile(t, "a.mp3", "x")
	var calls int
	r := fakeReader(&Tag{Title: "T"}, nil, time.Second, nil, &calls)

	r.Lookup(path)
	r.Lookup(path)
	assert.Equal(t, 1, calls)

	// Size change invalidates
	require.NoError(t, os.WriteFile(path, []byte("longer"), 0o600))
	r.Lookup(path)
	assert.Equal(t, 2, calls)
}

func TestStatic_Lookup(t *testing.T) {
	s := Static{"/a": {Title: "A", Duration: time.Second}}

	assert.Equal(t, "A", s.Lookup("/a").Title)
	assert.True(t, s.Lookup("/b").IsZero())
}

package player

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/comrad/internal/tags"
)

func TestPlayer_Try_Contended(t *testing.T) {
	p := New()

	var inner bool
	ran := p.Try(func(Device) {
		// Re-entering while the device is held must not block
		inner = p.Try(func(Device) {})
	})

	assert.True(t, ran)
	assert.False(t, inner)
	assert.True(t, p.Try(func(Device) {}), "device should be free again")
}

func TestPlayer_Seek_NoStream(t *testing.T) {
	p := New()

	var err error
	p.Try(func(d Device) { err = d.Seek(time.Second) })

	assert.ErrorIs(t, err, ErrNoStream)
}

func TestPlayer_Play_MissingFile(t *testing.T) {
	p := New()
	path := filepath.Join(t.TempDir(), "missing.mp3")

	var err error
	p.Try(func(d Device) { err = d.Play(path) })

	var mediaErr *MediaError
	require.True(t, errors.As(err, &mediaErr))
	assert.Equal(t, path, mediaErr.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestPlayer_Play_Unsupported(t *testing.T) {
	p := New()
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	var err error
	p.Try(func(d Device) { err = d.Play(path) })

	assert.ErrorIs(t, err, tags.ErrUnsupported)
}

func TestPlayer_Play_Undecodable(t *testing.T) {
	p := New()
	path := filepath.Join(t.TempDir(), "broken.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF but not really"), 0o600))

	var err error
	p.Try(func(d Device) { err = d.Play(path) })

	var mediaErr *MediaError
	assert.True(t, errors.As(err, &mediaErr))
}

func TestPlayer_SetVolume_WithoutStream(t *testing.T) {
	p := New()

	p.Try(func(d Device) { d.SetVolume(2) })

	assert.InDelta(t, 1.0, p.out.level, 1e-9)

	p.Try(func(d Device) { d.Pause() })
	assert.InDelta(t, 1.0, p.out.level, 1e-9, "pause keeps the volume level")
}

func TestPlayer_Close(t *testing.T) {
	p := New()

	assert.NoError(t, p.Close())
	assert.True(t, p.Try(func(Device) {}))
}

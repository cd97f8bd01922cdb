package tags

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkipID3v2(t *testing.T) {
	t.Run("with tag", func(t *testing.T) {
		// 10-byte header declaring a 5-byte body, then payload
		data := append([]byte("ID3\x04\x00\x00\x00\x00\x00\x05"), []byte("xxxxxfLaC")...)
		r := bytes.NewReader(data)

		require.NoError(t, SkipID3v2(r))

		rest, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "fLaC", string(rest))
	})

	t.Run("without tag", func(t *testing.T) {
		r := bytes.NewReader([]byte("fLaC0123456789"))

		require.NoError(t, SkipID3v2(r))

		rest, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "fLaC0123456789", string(rest))
	})

	t.Run("short stream", func(t *testing.T) {
		r := bytes.NewReader([]byte("ID3"))

		require.NoError(t, SkipID3v2(r))

		rest, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "ID3", string(rest))
	})
}

func TestReadDuration_Unsupported(t *testing.T) {
	_, err := ReadDuration("/music/cover.jpg")

	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestReadDuration_Garbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.wav")
	require.NoError(t, os.WriteFile(path, []byte("not audio"), 0o600))

	_, err := ReadDuration(path)

	assert.Error(t, err)
}

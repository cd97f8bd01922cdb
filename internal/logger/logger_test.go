package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"", zerolog.InfoLevel},
		{"info", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"nonsense", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), tt.in)
	}
}

func TestShortCaller(t *testing.T) {
	got := shortCaller(0, filepath.Join("a", "b", "pkg", "file.go"), 12)
	assert.Equal(t, filepath.Join("pkg", "file.go")+":12", got)
	assert.Equal(t, "file.go:3", shortCaller(0, "file.go", 3))
}

func TestInit_File(t *testing.T) {
	prev := zlog.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		zlog.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})

	path := filepath.Join(t.TempDir(), "logs", "comrad.log")
	closer, err := Init(Config{Level: "warn", File: path})
	require.NoError(t, err)

	zlog.Info().Msg("hidden")
	zlog.Warn().Str("path", "/m/a.mp3").Msg("shown")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.False(t, strings.Contains(out, "hidden"))
	assert.Contains(t, out, `"message":"shown"`)
	assert.Contains(t, out, `"path":"/m/a.mp3"`)
}

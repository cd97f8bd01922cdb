// Package catalog is the flat-file side of the player: directory listings
// for the browser, recursive scans into playlists, and the two text files
// that hold saved playlists and the last browse settings.
package catalog

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

const (
	appName       = "comrad"
	settingsFile  = "config.ini"
	playlistsFile = "playlists.ini"
)

// ErrIO marks every file system failure surfaced by this package. Callers
// test for it with errors.Is and fall back to defaults.
var ErrIO = errors.New("catalog i/o failure")

// Store owns the data directory holding the playlist and settings files.
type Store struct {
	dir string
}

// DefaultDir returns the per-user data directory.
func DefaultDir() string {
	return filepath.Join(xdg.DataHome, appName)
}

// Open prepares dir for use, creating it and both files with their default
// content when they are missing. Existing files are left untouched.
func Open(dir string) (*Store, error) {
	if dir == "" {
		dir = DefaultDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, ioError(err, "create data dir %s", dir)
	}

	s := &Store{dir: dir}
	defaults := []struct {
		path    string
		content string
	}{
		{s.SettingsPath(), formatSettings(DefaultSettings())},
		{s.PlaylistsPath(), ""},
	}
	for _, d := range defaults {
		if err := createIfMissing(d.path, d.content); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Dir returns the data directory.
func (s *Store) Dir() string { return s.dir }

// SettingsPath returns the location of the settings file.
func (s *Store) SettingsPath() string { return filepath.Join(s.dir, settingsFile) }

// PlaylistsPath returns the location of the playlists file.
func (s *Store) PlaylistsPath() string { return filepath.Join(s.dir, playlistsFile) }

func createIfMissing(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, os.ErrExist) {
		return nil
	}
	if err != nil {
		return ioError(err, "create %s", path)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return ioError(err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return ioError(err, "close %s", path)
	}
	return nil
}

func ioError(err error, format string, args ...any) error {
	return errors.Mark(errors.Wrapf(err, format, args...), ErrIO)
}

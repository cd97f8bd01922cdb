package catalog

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// Entry is one child of a listed directory.
type Entry struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
	mode    fs.FileMode
}

// IsDir reports whether the entry is a directory, following symlinks.
func (e Entry) IsDir() bool { return e.mode.IsDir() }

// ListDir returns the immediate children of dir sorted by full path.
func ListDir(dir string) ([]Entry, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, ioError(err, "resolve %s", dir)
	}

	des, err := os.ReadDir(abs)
	if err != nil {
		return nil, ioError(err, "read dir %s", abs)
	}

	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		path := filepath.Join(abs, de.Name())
		e := Entry{Name: de.Name(), Path: path}

		// Stat follows links; a dangling link falls back to the link itself.
		info, err := os.Stat(path)
		if err != nil {
			info, err = de.Info()
		}
		if err == nil {
			e.Size = info.Size()
			e.ModTime = info.ModTime()
			e.mode = info.Mode()
		}
		entries = append(entries, e)
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Path, b.Path)
	})
	return entries, nil
}

// Parent returns the directory containing dir. The root is its own parent.
func Parent(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return filepath.Dir(dir)
	}
	return filepath.Dir(abs)
}

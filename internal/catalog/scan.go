package catalog

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/llehouerou/comrad/internal/playlist"
	"github.com/llehouerou/comrad/internal/tags"
)

// MaxScanDepth bounds how far below the scanned directory files are
// collected. Files directly inside it are at depth 1.
const MaxScanDepth = 3

// Scan builds a new playlist named after root holding every playable file
// found at most MaxScanDepth levels below it, in path order. Unreadable
// subdirectories are skipped.
func Scan(root string) (*playlist.Playlist, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, ioError(err, "resolve %s", root)
	}

	var sources []string
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == abs {
				return err
			}
			log.Debug().Err(err).Str("path", path).Msg("scan skip")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != abs && depth(abs, path) >= MaxScanDepth {
				return filepath.SkipDir
			}
			return nil
		}
		if tags.IsMusicFile(path) {
			sources = append(sources, path)
		}
		return nil
	})
	if err != nil {
		return nil, ioError(err, "scan %s", abs)
	}

	slices.Sort(sources)
	p := playlist.New(NameFromPath(abs))
	p.Add(sources...)
	return p, nil
}

// NameFromPath returns the last element of path, or "" when there is none.
func NameFromPath(path string) string {
	name := filepath.Base(filepath.Clean(path))
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	return name
}

func depth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

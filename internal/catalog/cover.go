package catalog

import (
	"os"
	"path/filepath"
	"strings"
)

// coverNames lists common album art filenames in priority order.
var coverNames = []string{
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png", "folder.jpeg",
	"album.jpg", "album.png", "album.jpeg",
	"front.jpg", "front.png", "front.jpeg",
}

// FindCover looks for album art next to a track, ignoring the case of
// file names. It returns "" when there is none.
func FindCover(trackPath string) string {
	dir := filepath.Dir(trackPath)
	des, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	found := make(map[string]string, len(des))
	for _, de := range des {
		if de.Type().IsRegular() {
			found[strings.ToLower(de.Name())] = de.Name()
		}
	}
	for _, name := range coverNames {
		if actual, ok := found[name]; ok {
			return filepath.Join(dir, actual)
		}
	}
	return ""
}

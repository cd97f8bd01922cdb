// Package tags reads the metadata the player shows and times playback
// against: album, artist, title and total duration.
package tags

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// File extensions the player can decode.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtWAV  = ".wav"
	ExtM4A  = ".m4a"
	ExtMP4  = ".mp4"
)

// id3Magic is the magic bytes for ID3v2 header detection.
const id3Magic = "ID3"

// trailingPad is added to every non-zero measured duration. Decoders tend
// to lose the last few frames, so the measured length would otherwise end
// the track slightly before the audio does.
const trailingPad = time.Second

// Tag contains the textual metadata read from a file.
type Tag struct {
	Path        string
	Title       string
	Artist      string
	AlbumArtist string
	Album       string
	Genre       string
	TrackNumber int
}

// Info is what the player needs for a source. Missing tags are empty
// strings; an unreadable file yields a zero Duration.
type Info struct {
	Album    string
	Artist   string
	Title    string
	Duration time.Duration
}

// IsZero reports whether nothing at all is known about the source.
func (i Info) IsZero() bool {
	return i == Info{}
}

// IsMusicFile returns true if the path has a supported music file extension.
func IsMusicFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMP3, ExtFLAC, ExtWAV, ExtM4A, ExtMP4:
		return true
	}
	return false
}

// DisplayTitle returns the title to show for a source: the tag title when
// present, the file name otherwise.
func DisplayTitle(path string, info Info) string {
	if info.Title != "" {
		return info.Title
	}
	return filepath.Base(path)
}

// padDuration applies the trailing pad to a measured duration.
func padDuration(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	return d + trailingPad
}

// FormatDuration renders d as HH:MM:SS when it spans an hour or more and
// as MM:SS otherwise. Negative durations render as zero.
func FormatDuration(d time.Duration) string {
	total := int(max(d, 0) / time.Second)
	h, m, s := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

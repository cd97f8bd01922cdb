package tags

import (
	"strconv"
	"strings"

	"github.com/bogem/id3v2/v2"
)

// readMP3WithID3v2 reads MP3 metadata using only the id3v2 library.
func readMP3WithID3v2(path string) (*Tag, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer id3tag.Close()

	artist := id3tag.Artist()
	albumArtist := getID3TextFrame(id3tag, "TPE2")
	if albumArtist == "" {
		albumArtist = artist
	}

	return &Tag{
		Path:        path,
		Title:       strings.TrimSpace(id3tag.Title()),
		Artist:      strings.TrimSpace(artist),
		AlbumArtist: strings.TrimSpace(albumArtist),
		Album:       strings.TrimSpace(id3tag.Album()),
		Genre:       id3tag.Genre(),
		TrackNumber: parseTrackNumber(getID3TextFrame(id3tag, "TRCK")),
	}, nil
}

// parseTrackNumber parses a track number string like "5" or "5/10".
func parseTrackNumber(s string) int {
	if s == "" {
		return 0
	}
	num, _, _ := strings.Cut(s, "/")
	n, _ := strconv.Atoi(strings.TrimSpace(num))
	return n
}

// getID3TextFrame reads a text frame value from an ID3v2 tag.
func getID3TextFrame(id3tag *id3v2.Tag, frameID string) string {
	frames := id3tag.GetFrames(frameID)
	if len(frames) == 0 {
		return ""
	}
	if tf, ok := frames[0].(id3v2.TextFrame); ok {
		return tf.Text
	}
	return ""
}

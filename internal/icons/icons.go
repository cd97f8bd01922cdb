// Package icons selects the glyphs used for entries and player status.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Set holds the glyphs of one style.
type Set struct {
	Folder    string
	Audio     string
	Playlist  string
	Play      string
	Pause     string
	Stop      string
	Shuffle   string
	RepeatAll string
	RepeatOne string
	Volume    string
	Mute      string
}

var (
	nerdIcons = Set{
		Folder:    "\uf07b ", // nf-fa-folder
		Audio:     "\uf001 ", // nf-fa-music
		Playlist:  "󰲸 ",      // nf-md-playlist_music
		Play:      "\uf04b", // nf-fa-play
		Pause:     "\uf04c", // nf-fa-pause
		Stop:      "\uf04d", // nf-fa-stop
		Shuffle:   "󰒟",       // nf-md-shuffle
		RepeatAll: "󰑖",       // nf-md-repeat
		RepeatOne: "󰑘",       // nf-md-repeat_once
		Volume:    "󰕾",       // nf-md-volume_high
		Mute:      "󰖁",       // nf-md-volume_off
	}

	unicodeIcons = Set{
		Folder:    "📁 ",
		Audio:     "🎵 ",
		Playlist:  "📋 ",
		Play:      "▶",
		Pause:     "⏸",
		Stop:      "■",
		Shuffle:   "🔀",
		RepeatAll: "🔁",
		RepeatOne: "🔂",
		Volume:    "🔊",
		Mute:      "🔇",
	}

	noneIcons = Set{
		Folder:    "/",
		Play:      ">",
		Pause:     "||",
		Stop:      "[]",
		Shuffle:   "[S]",
		RepeatAll: "[R]",
		RepeatOne: "[1]",
		Volume:    "vol",
		Mute:      "mute",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init selects the icon style. Unknown styles fall back to none.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// Current returns the active set.
func Current() Set {
	return current
}

// FormatEntry formats a browser entry. With the none style directories
// get a trailing slash; other styles prefix a glyph.
func FormatEntry(name string, isDir bool) string {
	if current == noneIcons {
		if isDir {
			return name + current.Folder
		}
		return name
	}
	if isDir {
		return current.Folder + name
	}
	return current.Audio + name
}

// FormatPlaylist formats a playlist name with the appropriate icon.
func FormatPlaylist(name string) string {
	return current.Playlist + name
}

// Status returns the glyph for the player state.
func Status(playing, paused bool) string {
	switch {
	case playing:
		return current.Play
	case paused:
		return current.Pause
	default:
		return current.Stop
	}
}

// Volume returns the volume glyph for a gain in [0, 1].
func Volume(level float64) string {
	if level <= 0 {
		return current.Mute
	}
	return current.Volume
}

package catalog

import (
	"os"
	"strconv"
	"strings"
)

// Defaults written to a fresh settings file.
const (
	DefaultDirectory = "/"
	DefaultVolume    = 100
)

// Settings is what the player remembers between runs outside of the
// resume store: where the browser was and how loud playback was.
type Settings struct {
	Directory string
	// Volume is a percentage in [0, 100].
	Volume int
}

// DefaultSettings returns the settings of a first run.
func DefaultSettings() Settings {
	return Settings{Directory: DefaultDirectory, Volume: DefaultVolume}
}

// Level returns the volume as a gain in [0, 1].
func (s Settings) Level() float64 {
	return float64(clampVolume(s.Volume)) / 100
}

// LoadSettings reads the settings file. On failure the defaults are
// returned along with an error marked ErrIO.
func (s *Store) LoadSettings() (Settings, error) {
	path := s.SettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultSettings(), ioError(err, "read %s", path)
	}
	return ParseSettings(string(data)), nil
}

// SaveSettings overwrites the settings file.
func (s *Store) SaveSettings(st Settings) error {
	path := s.SettingsPath()
	if err := os.WriteFile(path, []byte(formatSettings(st)), 0o644); err != nil {
		return ioError(err, "write %s", path)
	}
	return nil
}

// ParseSettings reads the two-line settings format. A missing or empty
// directory and a missing or non-numeric volume take their defaults; an
// out of range volume is clamped.
func ParseSettings(data string) Settings {
	st := DefaultSettings()
	lines := strings.Split(data, "\n")

	if dir := strings.TrimRight(lines[0], "\r"); dir != "" {
		st.Directory = dir
	}
	if len(lines) > 1 {
		if v, err := strconv.Atoi(strings.TrimSpace(lines[1])); err == nil {
			st.Volume = clampVolume(v)
		}
	}
	return st
}

func formatSettings(st Settings) string {
	dir := st.Directory
	if dir == "" {
		dir = DefaultDirectory
	}
	return dir + "\n" + strconv.Itoa(clampVolume(st.Volume)) + "\n"
}

func clampVolume(v int) int {
	return min(max(v, 0), 100)
}

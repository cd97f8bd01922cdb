package player

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/wav"

	"github.com/llehouerou/comrad/internal/tags"
)

// decode picks a decoder from the file extension.
func decode(f *os.File, path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case tags.ExtMP3:
		return decodeGoMP3(f)
	case tags.ExtFLAC:
		// Skip ID3v2 tag if present (some taggers add it to FLAC files)
		if err := tags.SkipID3v2(f); err != nil {
			return nil, beep.Format{}, err
		}
		return flac.Decode(f)
	case tags.ExtWAV:
		return wav.Decode(f)
	case tags.ExtM4A, tags.ExtMP4:
		return decodeM4A(f)
	}
	return nil, beep.Format{}, errors.Wrap(tags.ErrUnsupported, ext)
}

package playerbar

import (
	"fmt"

	"github.com/llehouerou/comrad/internal/icons"
	"github.com/llehouerou/comrad/internal/playback"
)

// RenderVolume renders the volume indicator, e.g. "vol  80%".
func RenderVolume(level float64) string {
	pct := int(level*100 + 0.5)
	return timeStyle().Render(fmt.Sprintf("%s %3d%%", icons.Volume(level), pct))
}

func statusIcon(state playback.State) string {
	return icons.Status(state == playback.StatePlaying, state == playback.StatePaused)
}

func shuffleIcon() string {
	return icons.Current().Shuffle
}

// repeatIcon shows the one-track glyph only in RepeatOne; RepeatOff is
// told apart from RepeatAll by style.
func repeatIcon(mode playback.RepeatMode) string {
	if mode == playback.RepeatOne {
		return icons.Current().RepeatOne
	}
	return icons.Current().RepeatAll
}

package playerbar

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/comrad/internal/icons"
	"github.com/llehouerou/comrad/internal/playback"
	"github.com/llehouerou/comrad/internal/tags"
)

func TestNewState(t *testing.T) {
	snap := playback.Snapshot{
		State:      playback.StatePlaying,
		Repeat:     playback.RepeatAll,
		NowPlaying: "/music/b.mp3",
		Info:       tags.Info{Artist: "Artist", Album: "Album", Duration: 3 * time.Minute},
		Elapsed:    time.Minute,
		Volume:     0.5,
		Queue:      []string{"/music/a.mp3", "/music/b.mp3"},
		Position:   1,
		QueueName:  "music",
	}

	s := NewState(snap)

	assert.Equal(t, "b.mp3", s.Title)
	assert.Equal(t, 1, s.Index)
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, 3*time.Minute, s.Duration, "falls back to the tag duration")
	assert.Equal(t, time.Minute, s.Position)
	assert.Equal(t, playback.RepeatAll, s.Repeat)
}

func TestNewState_RepeatedSource(t *testing.T) {
	snap := playback.Snapshot{
		NowPlaying: "/music/a.mp3",
		Queue:      []string{"/music/a.mp3", "/music/b.mp3", "/music/a.mp3"},
		Position:   2,
	}

	assert.Equal(t, 2, NewState(snap).Index)
}

func TestNewState_NothingSelected(t *testing.T) {
	s := NewState(playback.Snapshot{})

	assert.Empty(t, s.Title)
	assert.Equal(t, -1, s.Index)
}

func TestRender(t *testing.T) {
	icons.Init("none")
	s := State{
		Status:    playback.StatePaused,
		Title:     "Song",
		Artist:    "Artist",
		Position:  30 * time.Second,
		Duration:  2 * time.Minute,
		Volume:    0.8,
		QueueName: "album",
		Index:     0,
		Count:     3,
	}

	out := Render(s, 80)
	plain := ansi.Strip(out)

	assert.Equal(t, Height, lipgloss.Height(out))
	assert.Equal(t, 80, lipgloss.Width(out))
	assert.Contains(t, plain, "|| Song · Artist")
	assert.Contains(t, plain, "album 1/3")
	assert.Contains(t, plain, "vol  80%")
	assert.Contains(t, plain, "00:30")
	assert.Contains(t, plain, "02:00")
}

func TestRender_Stopped(t *testing.T) {
	icons.Init("none")
	plain := ansi.Strip(Render(State{Index: -1}, 60))

	assert.Contains(t, plain, "[] Nothing selected")
	assert.Contains(t, plain, "--:--")
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name     string
		pos, dur time.Duration
		filled   int
	}{
		{"start", 0, time.Minute, 0},
		{"half", 30 * time.Second, time.Minute, 10},
		{"past end", 2 * time.Minute, time.Minute, 20},
		{"unknown duration", 30 * time.Second, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plain := ansi.Strip(ProgressBar(tt.pos, tt.dur, 20))
			assert.Equal(t, tt.filled, strings.Count(plain, filledCell))
			assert.Equal(t, 20-tt.filled, strings.Count(plain, emptyCell))
		})
	}
}

func TestRenderVolume(t *testing.T) {
	icons.Init("none")
	assert.Equal(t, "mute   0%", ansi.Strip(RenderVolume(0)))
	assert.Equal(t, "vol 100%", ansi.Strip(RenderVolume(1)))
}
